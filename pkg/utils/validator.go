package utils

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator for request structs.
type CustomValidator struct {
	validate *validator.Validate
}

var (
	validatorOnce     sync.Once
	validatorInstance *CustomValidator
)

// GetValidator returns the shared validator instance.
func GetValidator() *CustomValidator {
	validatorOnce.Do(func() {
		validatorInstance = &CustomValidator{validate: validator.New()}
	})
	return validatorInstance
}

// Validate checks struct tags on i and returns the first validation error.
func (v *CustomValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
