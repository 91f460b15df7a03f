package web

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/go-petr/gic-bank/internal/domain"
	"github.com/go-petr/gic-bank/pkg/datepkg"
	"github.com/go-petr/gic-bank/pkg/moneypkg"
)

// GetErrorMsg returns a human readable suffix for a failed validation tag.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "yyyymmdd":
		return " should be in YYYYMMdd format"
	case "yyyymm":
		return " should be in YYYYMM format"
	case "amount":
		return " should be greater than 0 with at most 2 decimals"
	case "txtype":
		return " should be D or W"
	case "max":
		return " should be at most " + fe.Param() + " characters"
	}

	return " is invalid"
}

// ValidDate validates a YYYYMMDD date.
var ValidDate validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		_, err := datepkg.Parse(s)
		return err == nil
	}

	return false
}

// ValidMonth validates a YYYYMM month.
var ValidMonth validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		_, err := datepkg.ParseMonth(s)
		return err == nil
	}

	return false
}

// ValidAmount validates a positive amount with at most two decimals.
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return moneypkg.ValidAmount(s)
	}

	return false
}

// ValidTransactionType validates a user entered transaction type.
var ValidTransactionType validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		_, err := domain.ParseTransactionType(s)
		return err == nil
	}

	return false
}

// RegisterValidations registers the custom tags used by request bindings.
func RegisterValidations(v *validator.Validate) error {
	validations := map[string]validator.Func{
		"yyyymmdd": ValidDate,
		"yyyymm":   ValidMonth,
		"amount":   ValidAmount,
		"txtype":   ValidTransactionType,
	}

	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}

	return nil
}

// BindingErrorMsg turns a request binding error into a client facing message.
func BindingErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + GetErrorMsg(field)
	}

	return "invalid request body"
}
