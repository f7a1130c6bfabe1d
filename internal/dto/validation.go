package dto

import (
	"errors"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var stateCodeRegex = regexp.MustCompile(`^[A-Za-z]{2}$`)

// RegisterCustomValidators wires the DTO-level custom rules into gin's
// validator engine. Call once during startup, before routes are served.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine is not *validator.Validate")
	}
	return v.RegisterValidation("statecode", func(fl validator.FieldLevel) bool {
		return stateCodeRegex.MatchString(fl.Field().String())
	})
}
