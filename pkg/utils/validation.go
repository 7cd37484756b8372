package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Symbols accepted by the password complexity policy.
const passwordSymbols = `!@#$%^&*()_+-=[]{}|;:'",.<>/?~`

var (
	swiftCodeRegex     = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
	accountNumberRegex = regexp.MustCompile(`^[a-zA-Z0-9]{4,20}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("strongpassword", validateStrongPassword)
	v.RegisterValidation("swiftcode", validateSwiftCode)
	v.RegisterValidation("accountnumber", validateAccountNumber)
	return v
}

// validateStrongPassword enforces the canonical policy: at least 8 chars with
// one uppercase, one lowercase, one digit, and one symbol from the fixed set.
func validateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, c):
			hasSymbol = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSymbol
}

func validateSwiftCode(fl validator.FieldLevel) bool {
	return swiftCodeRegex.MatchString(fl.Field().String())
}

func validateAccountNumber(fl validator.FieldLevel) bool {
	return accountNumberRegex.MatchString(fl.Field().String())
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ValidateStruct(data interface{}) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var errors []FieldError
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors = append(errors, FieldError{
				Field:   err.Field(),
				Message: getErrorMessage(err),
			})
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "uuid":
		return "Must be a valid UUID"
	case "strongpassword":
		return "Password must be at least 8 characters with uppercase, lowercase, digit, and symbol"
	case "swiftcode":
		return "Invalid SWIFT code format"
	case "accountnumber":
		return "Account number must be 4-20 alphanumeric characters"
	case "gt":
		return fmt.Sprintf("Must be greater than %s", err.Param())
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// formats validation errors into a single string
func FormatValidationErrors(errors []FieldError) string {
	var msgs []string
	for _, fieldErr := range errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fieldErr.Field, fieldErr.Message))
	}
	return strings.Join(msgs, "; ")
}
