// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"budgetly/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("budget_period", validateBudgetPeriod)
	_ = v.RegisterValidation("rating", validateRating)
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).IsValid()
}

// validateBudgetPeriod accepts an empty value, which defaults to monthly.
func validateBudgetPeriod(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || models.PeriodType(s).IsValid()
}

func validateRating(fl validator.FieldLevel) bool {
	r := fl.Field().Int()
	return r >= 0 && r <= models.MaxRating
}
