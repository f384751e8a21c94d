// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"encoding/json"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("json_document", validateJSONDocument)
	}
}

// validateJSONDocument asserts that a raw-JSON field holds a syntactically
// valid document. Empty fields are left to required/omitempty tags.
func validateJSONDocument(fl validator.FieldLevel) bool {
	switch raw := fl.Field().Interface().(type) {
	case json.RawMessage:
		return len(raw) == 0 || json.Valid(raw)
	case []byte:
		return len(raw) == 0 || json.Valid(raw)
	case string:
		return raw == "" || json.Valid([]byte(raw))
	}
	return false
}
