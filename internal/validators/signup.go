package validators

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// Field names reported in [models.FieldError].
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldBody     = "body"
)

const (
	MaxUsernameLength = 20
	MinPasswordLength = 6
	MaxCommentLength  = 2000
)

var signupChains = []Chain{
	{
		Field: FieldUsername,
		Rules: []Rule{
			Required("Username is required"),
			MaxLength(MaxUsernameLength, "Username must be no more than 20 characters"),
		},
	},
	{
		Field: FieldPassword,
		Rules: []Rule{
			Required("Password is required"),
			MinLength(MinPasswordLength, "Password must be at least 6 characters long"),
		},
	},
}

// SignupValidator checks the credentials submitted by the signup form.
type SignupValidator struct{}

func NewSignupValidator() Validator {
	return &SignupValidator{}
}

func (v *SignupValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SignupValidator) validateCredentials(c models.Credentials, fields ...string) error {
	return check(signupChains, map[string]string{
		FieldUsername: c.Username,
		FieldPassword: c.Password,
	}, fields...)
}
