package validation

import (
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"cardwall/internal/core/policy"
)

// FieldError is a single translated validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	Validator  *validator.Validate
	Translator ut.Translator
)

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)

	var found bool
	Translator, found = uni.GetTranslator("en")

	if !found {
		panic("translator en not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Translator); err != nil {
		panic(err)
	}

	// Custom tags delegate to the same policy predicates the services
	// enforce, so handler and service never disagree.
	Validator.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return policy.ValidUsername(fl.Field().String())
	})

	Validator.RegisterValidation("passwd", func(fl validator.FieldLevel) bool {
		return policy.ValidPassword(fl.Field().String())
	})

	addCustomTranslations()
}

func addCustomTranslations() {
	Validator.RegisterTranslation("username", Translator, func(ut ut.Translator) error {
		return ut.Add("username", "{0} must be 3-16 lowercase letters, digits, underscores or hyphens", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("username", fe.Field())
		return t
	})

	Validator.RegisterTranslation("passwd", Translator, func(ut ut.Translator) error {
		return ut.Add("passwd", "{0} must be at least 8 characters with a lowercase letter, an uppercase letter, a digit and a symbol", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("passwd", fe.Field())
		return t
	})
}

func FormatValidationErrors(err error) []FieldError {
	var fieldErrors []FieldError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			fieldErrors = append(fieldErrors, FieldError{
				Field:   strings.ToLower(fieldError.Field()),
				Message: fieldError.Translate(Translator),
			})
		}
	}

	return fieldErrors
}
