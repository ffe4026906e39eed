package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/go-playground/validator/v10"
	"github.com/undeniable-app/undeniable/utils/constant"
)

var alphaSpaceRegex = regexp.MustCompile("^[" + constant.NameCharClass + "]*$")

// Validator is a high-level wrapper for go-playground/validator.
type Validator struct {
	validator *validator.Validate
}

// NewValidator creates a new Validator instance with the alphaspace and
// email_or_blank tags registered. Field names in errors follow the json tag.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation("alphaspace", isAlphaSpace)
	_ = v.RegisterValidation("email_or_blank", isEmailOrBlank)
	return &Validator{
		validator: v,
	}
}

func isAlphaSpace(fl validator.FieldLevel) bool {
	return alphaSpaceRegex.MatchString(fl.Field().String())
}

// isEmailOrBlank accepts a syntactically valid address or the blank sentinel.
func isEmailOrBlank(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constant.BlankEmail || govalidator.IsEmail(value)
}

// ValidateStruct validates a struct and returns a map of field names to error messages.
func (v *Validator) ValidateStruct(s interface{}) map[string]string {
	err := v.validator.Struct(s)
	if err == nil {
		return nil // No errors
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"error": "unexpected validation error"}
	}

	errorMap := make(map[string]string)
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorMessage := v.getErrorMessage(fieldError)
		errorMap[fieldName] = errorMessage
	}

	return errorMap
}

// ValidateField validates a single field of a struct.
func (v *Validator) ValidateField(field interface{}, tag string) string {
	err := v.validator.Var(field, tag)
	if err == nil {
		return "" // No error
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "unexpected validation error"
	}

	if len(validationErrors) > 0 {
		return v.getErrorMessage(validationErrors[0])
	}

	return "validation error" // Generic error if no FieldError found.
}

// RegisterValidation registers a custom validation function for a specific tag.
func (v *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return v.validator.RegisterValidation(tag, fn)
}

// RegisterStructValidation registers a custom struct-level validation function.
func (v *Validator) RegisterStructValidation(fn validator.StructLevelFunc, types ...interface{}) {
	v.validator.RegisterStructValidation(fn, types...)
}

// getErrorMessage generates a user-friendly error message from a FieldError.
func (v *Validator) getErrorMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldError.Field())
	case "email", "email_or_blank":
		return fmt.Sprintf("%s must be a valid email address", fieldError.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fieldError.Field(), fieldError.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fieldError.Field(), fieldError.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long", fieldError.Field(), fieldError.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fieldError.Field(), fieldError.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fieldError.Field(), fieldError.Param())
	case "alphaspace":
		return fmt.Sprintf("%s may only contain letters and spaces", fieldError.Field())
	case "alphanum":
		return fmt.Sprintf("%s may only contain letters and numbers", fieldError.Field())
	case "oneof", "usstate":
		return fmt.Sprintf("%s is not a recognised option", fieldError.Field())
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", fieldError.Field())
	default:
		return fmt.Sprintf("invalid %s", fieldError.Field())
	}
}
