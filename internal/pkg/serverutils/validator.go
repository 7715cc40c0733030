// FILE: internal/pkg/serverutils/validator.go
package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest checks struct tags and reports every failing field in
// one 400 error.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var messages []string
		for _, fieldErr := range err.(validator.ValidationErrors) {
			messages = append(messages, fmt.Sprintf("field '%s' failed on '%s' rule", fieldErr.Field(), fieldErr.Tag()))
		}
		return NewApiError(fiber.StatusBadRequest, strings.Join(messages, "; "))
	}
	return nil
}
