package helpers

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/anuntech/budget-manager/internal/domain/models"
	"github.com/anuntech/budget-manager/internal/utils"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const (
	expenseCategoryTag = "expense_category"
	bcryptLenTag       = "bcrypt_len"
)

// FormValidator pairs a validator with its English translator. Both are set
// up once; registering translations per request is not safe for concurrent use.
type FormValidator struct {
	*validator.Validate
	trans ut.Translator
}

func NewFormValidator() *FormValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation(expenseCategoryTag, func(fl validator.FieldLevel) bool {
		return models.IsExpenseCategory(fl.Field().String())
	})

	validate.RegisterValidation(bcryptLenTag, func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= utils.MaxPasswordBytes
	})

	eng := en.New()
	uni := ut.New(eng, eng)
	trans, _ := uni.GetTranslator("en")
	en_translations.RegisterDefaultTranslations(validate, trans)

	validate.RegisterTranslation(expenseCategoryTag, trans, func(ut ut.Translator) error {
		return ut.Add(expenseCategoryTag, "{0} must be one of the listed categories", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(expenseCategoryTag, fe.Field())
		return t
	})

	validate.RegisterTranslation(bcryptLenTag, trans, func(ut ut.Translator) error {
		return ut.Add(bcryptLenTag, fmt.Sprintf("{0} must be at most %d bytes long", utils.MaxPasswordBytes), true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(bcryptLenTag, fe.Field())
		return t
	})

	return &FormValidator{Validate: validate, trans: trans}
}

// FieldErrors maps each failing json field to its first translated message.
func (v *FormValidator) FieldErrors(errs error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(errs, &validationErrors) {
		return map[string]string{"": errs.Error()}
	}

	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		if _, exists := fields[e.Field()]; exists {
			continue
		}
		fields[e.Field()] = e.Translate(v.trans)
	}
	return fields
}

func (v *FormValidator) ErrorMessages(errs error) string {
	fields := v.FieldErrors(errs)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	errorMessages := make([]string, 0, len(names))
	for _, name := range names {
		errorMessages = append(errorMessages, fields[name])
	}
	return strings.Join(errorMessages, ", ")
}
