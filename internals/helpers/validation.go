package helper

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"halaqat_backend/internals/helpers/apperror"
)

// NewValidator builds a validator that reports form/json tag names and
// carries an English translator for its messages.
func NewValidator() *Validator {
	v := validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		return ok && strings.TrimSpace(s) != ""
	})
	_ = v.RegisterTranslation("notblank", trans,
		func(ut.Translator) error { return nil },
		func(_ ut.Translator, fe validator.FieldError) string { return fe.Field() + " cannot be blank" },
	)

	return &Validator{v: v, trans: trans}
}

type Validator struct {
	v     *validator.Validate
	trans ut.Translator
}

// Struct validates s and converts failures into *apperror.ValidationError.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.NewValidationError(err.Error())
	}
	fields := make([]apperror.FieldError, 0, len(ves))
	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		msg := fe.Translate(val.trans)
		fields = append(fields, apperror.FieldError{Field: fe.Field(), Error: msg})
		msgs = append(msgs, msg)
	}
	return apperror.NewValidationError(strings.Join(msgs, "; "), fields...)
}
