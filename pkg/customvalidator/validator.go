package customvalidator

import (
	"reflect"
	"regexp"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// RegisterCustomValidations вешает наши правила на общий валидатор.
// Вызывается один раз при старте.
func RegisterCustomValidations(v *validator.Validate) error {
	// Опциональные поля хранятся как null.String; валидатору отдаём
	// внутреннюю строку, отсутствующее значение выглядит пустым.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if ns, ok := field.Interface().(null.String); ok {
			if ns.Valid {
				return ns.String
			}
			return ""
		}
		return nil
	}, null.String{})

	// Даты в хранилище — строки YYYY-MM-DD (или отсутствуют вовсе).
	return v.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return isoDateRe.MatchString(value)
	})
}
