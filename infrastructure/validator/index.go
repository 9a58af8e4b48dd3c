package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	validate.RegisterValidation("image_payload", validateImagePayload)
}

type Validator struct{}

func (v *Validator) ValidateStruct(payload interface{}) *[]error {
	return validateStruct(payload)
}

func (v *Validator) ValidateValue(value any, rules string) error {
	return validateField(value, rules)
}

var ValidatorInstance = Validator{}

func validateStruct(payload interface{}) *[]error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	errs := []error{}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errs = append(errs, err)
		return &errs
	}
	for _, fieldError := range validationErrors {
		errs = append(errs, fmt.Errorf("%s", translateFieldError(fieldError)))
	}
	return &errs
}

func validateField(value any, rules string) error {
	return validate.Var(value, rules)
}

func translateFieldError(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldError.Field())
	case "min":
		return fmt.Sprintf("%s must have at least %s items", fieldError.Field(), fieldError.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s items", fieldError.Field(), fieldError.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fieldError.Field(), fieldError.Param())
	case "ulid":
		return fmt.Sprintf("%s must be a valid record id", fieldError.Field())
	case "image_payload":
		return fmt.Sprintf("%s must be a base64 encoded image", fieldError.Field())
	default:
		return fmt.Sprintf("%s failed validation for rule %s", fieldError.Field(), fieldError.Tag())
	}
}
