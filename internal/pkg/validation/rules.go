package validation

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

const notBlankTag = "notblank"

func registerRules(validate *validator.Validate, trans ut.Translator) {
	_ = validate.RegisterValidation(notBlankTag, notBlank)

	// The translator already has default registrations, so the register step is a no-op
	_ = validate.RegisterTranslation(notBlankTag, trans,
		func(ut.Translator) error { return nil },
		func(_ ut.Translator, fe validator.FieldError) string {
			return fe.Field() + " cannot be blank"
		},
	)
}

func notBlank(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}
