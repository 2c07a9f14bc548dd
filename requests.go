package auth

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var (
	passwordPattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,30}$`)
	zipPattern      = regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`)
)

// allowedEmailTLDs restricts signup emails to a small set of top level
// domains, matching the account policy of the hosted service.
var allowedEmailTLDs = []string{"com", "net", "org"}

// SignupRequest is the raw signup payload
type SignupRequest struct {
	Username       string  `json:"username"`
	Password       string  `json:"password"`
	RepeatPassword string  `json:"repeatPassword"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Address        Address `json:"address"`
}

// Validate will run validation rules
func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, is.Alphanumeric, validation.Length(3, 30)),
		validation.Field(&r.Password, validation.Required, validation.Match(passwordPattern)),
		validation.Field(&r.RepeatPassword, validation.Required),
		validation.Field(&r.Name, validation.Required, validation.Length(3, 30)),
		validation.Field(&r.Email, validation.Required, is.Email, validation.By(validateEmailDomain)),
		validation.Field(&r.Address, validation.Required),
	)
}

// Validate will run validation rules
func (a Address) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.City, validation.Required),
		validation.Field(&a.Zip, validation.Required, validation.Match(zipPattern)),
	)
}

// SigninRequest is the raw signin payload, the identifier matches either a
// username or an email
type SigninRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// Validate will run validation rules
func (r SigninRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UsernameOrEmail, validation.Required, validation.Length(3, 30)),
		validation.Field(&r.Password, validation.Required, validation.Match(passwordPattern)),
	)
}

// validateEmailDomain enforces at least two domain segments and the TLD
// allow list on top of the basic format check.
func validateEmailDomain(value any) error {
	email, _ := value.(string)
	if email == "" {
		return nil
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return errors.New("must be a valid email address")
	}

	segments := strings.Split(email[at+1:], ".")
	if len(segments) < 2 {
		return errors.New("email domain must have at least 2 segments")
	}

	tld := strings.ToLower(segments[len(segments)-1])
	for _, allowed := range allowedEmailTLDs {
		if tld == allowed {
			return nil
		}
	}

	return fmt.Errorf("email domain must end in one of: %s", strings.Join(allowedEmailTLDs, ", "))
}
