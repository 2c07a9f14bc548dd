package auth

import (
	"context"
	"errors"
	"net/http"
)

// SigninHandler authenticates existing users and issues access tokens
type SigninHandler struct {
	store  Users
	tokens TokenService
	logger Logger
}

// NewSigninHandler will create a new SigninHandler
func NewSigninHandler(store Users, tokens TokenService) *SigninHandler {
	return &SigninHandler{
		store:  store,
		tokens: tokens,
		logger: defLogger{},
	}
}

func (h *SigninHandler) WithLogger(logger Logger) *SigninHandler {
	h.logger = logger
	return h
}

// Execute runs the signin flow. Unknown identifiers and wrong passwords
// produce the same envelope so a caller cannot enumerate accounts.
func (h *SigninHandler) Execute(ctx context.Context, req SigninRequest) *Response[*LoginData] {
	if err := req.Validate(); err != nil {
		return BadInput[*LoginData](err.Error())
	}

	user, err := h.store.FindByUsernameOrEmail(ctx, req.UsernameOrEmail)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return incorrectUserOrPassword()
		}
		h.logger.Error("signin lookup failed: %v", err)
		return InternalServerError[*LoginData]()
	}

	if err := ComparePasswordAndHash(req.Password, user.PasswordHash); err != nil {
		if errors.Is(err, ErrMismatchedHashAndPassword) {
			return incorrectUserOrPassword()
		}
		h.logger.Error("signin password compare failed: %v", err)
		return InternalServerError[*LoginData]()
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		h.logger.Error("signin token generation failed: %v", err)
		return InternalServerError[*LoginData]()
	}

	return Success(http.StatusOK, MsgLoginSuccessful, &LoginData{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
	})
}

func incorrectUserOrPassword() *Response[*LoginData] {
	return Failure[*LoginData](http.StatusNotFound, MsgUserNotFound)
}
