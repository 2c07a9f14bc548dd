package auth

import (
	"context"
	"errors"
	"net/http"
)

// SignupHandler registers new user accounts
type SignupHandler struct {
	store  Users
	logger Logger
}

// NewSignupHandler will create a new SignupHandler
func NewSignupHandler(store Users) *SignupHandler {
	return &SignupHandler{
		store:  store,
		logger: defLogger{},
	}
}

func (h *SignupHandler) WithLogger(logger Logger) *SignupHandler {
	h.logger = logger
	return h
}

// Execute runs the signup flow, short circuiting on the first failure. Every
// outcome is an envelope, infrastructure errors go to the logger and the
// caller only sees the generic 500.
func (h *SignupHandler) Execute(ctx context.Context, req SignupRequest) *Response[*PublicUser] {
	if err := req.Validate(); err != nil {
		return BadInput[*PublicUser](err.Error())
	}

	// the schema only checks presence of the repeat field, equality is
	// enforced here so the mismatch keeps its dedicated message
	if req.Password != req.RepeatPassword {
		return Failure[*PublicUser](http.StatusBadRequest, MsgPasswordMismatch)
	}

	byEmail, byUsername, err := h.store.FindForRegistration(ctx, req.Email, req.Username)
	if err != nil {
		h.logger.Error("signup duplicate check failed: %v", err)
		return InternalServerError[*PublicUser]()
	}

	if byEmail != nil || byUsername != nil {
		return Failure[*PublicUser](http.StatusConflict, MsgUserExists)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		h.logger.Error("signup password hash failed: %v", err)
		return InternalServerError[*PublicUser]()
	}

	user := &User{
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		Address:      req.Address,
		PasswordHash: hash,
	}

	created, err := h.store.Register(ctx, user)
	if err != nil {
		// a concurrent signup can slip in between the pre check and the
		// insert, the store constraint settles the race
		if errors.Is(err, ErrUserExists) {
			return Failure[*PublicUser](http.StatusConflict, MsgUserExists)
		}
		h.logger.Error("signup create user failed: %v", err)
		return InternalServerError[*PublicUser]()
	}

	return Success(http.StatusCreated, MsgSignupSuccessful, created.PublicView())
}
