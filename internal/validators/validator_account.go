package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/course-api/models"
	"github.com/go-playground/validator/v10"
)

const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldEmailAddress = "emailAddress"
	FieldPassword     = "password"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

var accountFields = []string{FieldFirstName, FieldLastName, FieldEmailAddress, FieldPassword}

type AccountValidator struct {
	email *validator.Validate
}

func NewAccountValidator() Validator {
	return &AccountValidator{email: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks a registration request. Passing field names limits the
// check to those fields.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateAccountRequest:
		return v.validateCreateAccount(ctx, value, fields...)
	case *models.CreateAccountRequest:
		return v.validateCreateAccount(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *AccountValidator) validateCreateAccount(ctx context.Context, req models.CreateAccountRequest, fields ...string) error {
	selected, err := selectFields(accountFields, fields)
	if err != nil {
		return err
	}

	var errs violations
	for _, field := range selected {
		switch field {
		case FieldFirstName:
			checkRequired(&errs, req.FirstName, MsgFirstNameRequired, MsgFirstNameEmpty)
		case FieldLastName:
			checkRequired(&errs, req.LastName, MsgLastNameRequired, MsgLastNameEmpty)
		case FieldEmailAddress:
			v.checkEmail(ctx, &errs, req.EmailAddress)
		case FieldPassword:
			checkPassword(&errs, req.Password)
		}
	}

	return errs.err()
}

func (v *AccountValidator) checkEmail(ctx context.Context, errs *violations, email *string) {
	if email == nil {
		errs.add(MsgEmailRequired)
		return
	}
	if strings.TrimSpace(*email) == "" || v.email.VarCtx(ctx, *email, "email") != nil {
		errs.add(MsgEmailInvalid)
	}
}

func checkPassword(errs *violations, password *string) {
	switch {
	case password == nil:
		errs.add(MsgPasswordRequired)
	case strings.TrimSpace(*password) == "":
		errs.add(MsgPasswordEmpty)
	case len(*password) > maxPasswordBytes:
		errs.add(MsgPasswordTooLong)
	}
}

// checkRequired rejects absent values with required and blank values with
// empty.
func checkRequired(errs *violations, value *string, required, empty string) {
	switch {
	case value == nil:
		errs.add(required)
	case strings.TrimSpace(*value) == "":
		errs.add(empty)
	}
}

// selectFields returns the requested fields in declaration order, or every
// field when none were requested.
func selectFields(declared, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return declared, nil
	}

	for _, f := range requested {
		if !slices.Contains(declared, f) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	selected := make([]string, 0, len(requested))
	for _, f := range declared {
		if slices.Contains(requested, f) {
			selected = append(selected, f)
		}
	}
	return selected, nil
}
