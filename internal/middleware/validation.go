package middleware

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nttbank/account-service/internal/core/domain"
	"github.com/nttbank/account-service/internal/dto"
	"github.com/shopspring/decimal"
)

const maxCustomerRefLength = 64

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Decimals validate as numbers, so gte/lte tags apply to money fields.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
		return domain.AccountType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("customerref", func(fl validator.FieldLevel) bool {
		ref := fl.Field().String()
		return strings.TrimSpace(ref) != "" && len(ref) <= maxCustomerRefLength
	})
	return v
}

// ValidateRequest checks obj against its validate tags and returns one entry per failed field.
func ValidateRequest(obj any) []dto.ValidationError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []dto.ValidationError{{Field: "", Message: err.Error(), Type: "invalid"}}
	}

	validationErrors := make([]dto.ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		validationErrors = append(validationErrors, dto.ValidationError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
			Type:    fe.Tag(),
		})
	}
	return validationErrors
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "accounttype":
		return "Account type must be one of SAVINGS, CURRENT, FIXED_TERM"
	case "customerref":
		return "Customer reference must be a non-blank id"
	case "min":
		return "Value is too short"
	case "gte":
		return "Value must be greater than or equal to " + fe.Param()
	case "lte":
		return "Value must be less than or equal to " + fe.Param()
	default:
		return "Invalid value"
	}
}
