package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validator checks input structs against their `validate` tags and reports
// violations keyed by JSON field name.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New creates a Validator with English messages and the custom rules registered
func New() *Validator {
	validate := validator.New()

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerRules(validate, trans)

	return &Validator{validate: validate, trans: trans}
}

// Validate runs every rule, including `required`
func (v *Validator) Validate(s interface{}) error {
	return v.convert(v.validate.Struct(s))
}

// ValidatePartial validates only the fields present in a partial update.
// A field is present when it is a non-nil pointer; non-pointer fields are always checked.
func (v *Validator) ValidatePartial(s interface{}) error {
	val := reflect.Indirect(reflect.ValueOf(s))
	if val.Kind() != reflect.Struct {
		return v.Validate(s)
	}

	var present []string
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := val.Field(i)
		if fv.Kind() == reflect.Ptr && fv.IsNil() {
			continue
		}
		present = append(present, field.Name)
	}

	if len(present) == 0 {
		return nil
	}
	return v.convert(v.validate.StructPartial(s, present...))
}

func (v *Validator) convert(err error) error {
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := make(Errors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fe.Translate(v.trans),
		})
	}
	return out
}
