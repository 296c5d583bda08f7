package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "gogomedia/internal/errors"
)

// Validator adapts go-playground/validator to echo.Validator and reports the
// first failing field with its json name.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	field := verrs[0].Field()
	switch verrs[0].Tag() {
	case "required":
		return apperrors.NewValidationError(field, MissingUserParam(field))
	case "max":
		max, err := strconv.Atoi(verrs[0].Param())
		if err != nil {
			return err
		}
		return apperrors.NewValidationError(field, TooLong(field, max))
	default:
		return apperrors.NewValidationError(field, notString(field))
	}
}
