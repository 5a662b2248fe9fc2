package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// gstinPattern matches a 15-character Indian GSTIN: state code, PAN, entity
// number, the literal Z and a checksum character.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

func validateGSTIN(fl validator.FieldLevel) bool {
	return gstinPattern.MatchString(fl.Field().String())
}

// registerCustomValidations hooks domain-specific rules into gin's binding
// validator so DTO tags can use them.
func registerCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("gstin", validateGSTIN)
	}
}
