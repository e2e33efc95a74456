package handlers

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/moedinha/moedinha_backend/internal/utils/dates"
)

// yearMonth validates a YYYY-MM string.
var yearMonth validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := time.Parse(dates.YearMonthLayout, value)
	return err == nil
}

// registerValidators adds the custom tags used by the request DTOs to gin's validator.
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("yearmonth", yearMonth)
}
