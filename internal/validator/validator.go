// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("entry_type", validateEntryType)
	}
}

// validateEntryType accepts the two category type values the grouped
// category listing can represent. Transaction types are deliberately
// not bound to this validator; the ledger accepts them as given.
func validateEntryType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Income", "Expense":
		return true
	}
	return false
}
