package api

import (
	"time"

	"github.com/go-playground/validator/v10"

	"mados/internal/domain/entity"
)

// Validator adapts validator/v10 to echo.Validator.
type Validator struct {
	validator *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("ymd", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		_, err := time.Parse("2006-01-02", value)
		return err == nil
	})
	_ = v.RegisterValidation("interest", func(fl validator.FieldLevel) bool {
		return contains(entity.InterestCategories, fl.Field().String())
	})
	return &Validator{validator: v}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
