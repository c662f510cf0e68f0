package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"atrium/internal/domain/forms"
)

// registerCustomValidators adds domain-specific rules to the binding engine.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("formtype", func(fl validator.FieldLevel) bool {
		return forms.FormType(fl.Field().String()).IsValid()
	})
}
