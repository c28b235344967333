package core

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags
	NotBlankTag  = "notblank"
	notBlankText = "this field cannot be blank"
)

// Instantiate the validator for use.
func init() {
	Validate = validator.New()

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = Validate.RegisterValidation(NotBlankTag, notBlankValidation)
	RegisterCustomTranslation(NotBlankTag, notBlankText)
}

// RegisterCustomTranslation registers the error message for a custom tag.
// A validator.RegisterTranslationsFunc is required for registering the
// Translator, but the default translation is already registered; a noop func
// bypasses this requirement.
func RegisterCustomTranslation(tag, text string) {
	registerFn := func(ut.Translator) error { return nil }
	transFn := func(_ ut.Translator, _ validator.FieldError) string { return text }
	_ = Validate.RegisterTranslation(tag, Translator, registerFn, transFn)
}

// TranslateValidationErrors flattens validator errors into FieldErrors,
// optionally prefixing field names (eg. with a slot index).
func TranslateValidationErrors(err error, fieldPrefix string) []FieldError {
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: fieldPrefix, Error: err.Error()}}
	}
	flds := make([]FieldError, 0, len(vErrs))
	for _, vErr := range vErrs {
		flds = append(flds, FieldError{
			Field: fieldPrefix + vErr.Field(),
			Error: vErr.Translate(Translator),
		})
	}
	return flds
}

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}
