package commands

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingEmail    = errors.New("email address is required")
	ErrInvalidEmail    = errors.New("email address is invalid")
	ErrMissingActivity = errors.New("activity is required")
)

// Status texts for the validation errors
const (
	MissingEmailText    = "Please enter an email address."
	InvalidEmailText    = "Please enter a valid email address."
	MissingActivityText = "Please select an activity."
)

var validate = validator.New()

// ValidateSignup checks the signup form before a request is sent
func ValidateSignup(activity, email string) error {
	email = strings.TrimSpace(email)
	if err := validate.Var(email, "required"); err != nil {
		return ErrMissingEmail
	}
	if err := validate.Var(email, "email"); err != nil {
		return ErrInvalidEmail
	}
	if activity == "" {
		return ErrMissingActivity
	}
	return nil
}

// ValidationText maps a ValidateSignup error onto the status line text
func ValidationText(err error) string {
	switch {
	case errors.Is(err, ErrMissingEmail):
		return MissingEmailText
	case errors.Is(err, ErrInvalidEmail):
		return InvalidEmailText
	case errors.Is(err, ErrMissingActivity):
		return MissingActivityText
	default:
		return GenericErrorText
	}
}
