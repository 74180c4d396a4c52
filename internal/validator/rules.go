package validator

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные функции валидации
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации - ошибка сборки приложения, запускаться нельзя
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'not_blank': строка не состоит из одних пробелов
	mustRegister("not_blank", validateNotBlank)

	// 'salary_gte=FromSalary': верхняя граница зарплаты не меньше нижней
	mustRegister("salary_gte", validateSalaryGTE)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

func validateSalaryGTE(fl validator.FieldLevel) bool {
	to, ok := numeric(fl.Field())
	if !ok {
		return true
	}

	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return true
	}

	from, ok := numeric(parent.FieldByName(fl.Param()))
	if !ok {
		// Нижняя граница не задана - сравнивать не с чем
		return true
	}
	return to >= from
}

func numeric(v reflect.Value) (float64, bool) {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return 0, false
	}

	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	default:
		return 0, false
	}
}
