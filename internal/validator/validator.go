// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"condominio/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("month_label", validateMonthLabel)
		_ = v.RegisterValidation("payment_status", validatePaymentStatus)
		_ = v.RegisterValidation("year", validateYear)
	}
}

func validateMonthLabel(fl validator.FieldLevel) bool {
	return models.IsValidMonth(models.Month(fl.Field().String()))
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "paid", "pending":
		return true
	}
	return false
}

// validateYear keeps years within a sane accounting range.
func validateYear(fl validator.FieldLevel) bool {
	y := fl.Field().Int()
	return y >= 2000 && y <= 2100
}
