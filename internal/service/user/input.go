package user

import (
	"regexp"

	"github.com/heartmarshall/tagger-backend/internal/domain"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
	MaxUsernameLength = 150
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_.@+-]+$`)

// CreateUserInput holds the parameters for creating an account.
type CreateUserInput struct {
	Username string
	Password string
	IsAdmin  bool
}

// Validate checks all fields and collects all errors. Username is expected
// to be normalized already.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case len(i.Username) > MaxUsernameLength:
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 150 characters"})
	case !usernamePattern.MatchString(i.Username):
		errs = append(errs, domain.FieldError{Field: "username", Message: "letters, digits and @.+-_ only"})
	}

	if len(i.Password) < MinPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	}
	if len(i.Password) > MaxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 bytes"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
