package utils

import (
	"errors"
	"medtrack-portal/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
)

// Form is a request DTO carrying the user facing message for each
// "Field.tag" rule it declares.
type Form interface {
	ValidationMessages() map[string]string
}

// ValidateForm runs the struct rules of form and reports the first failing
// rule with the form's own message.
func ValidateForm(form Form) error {
	err := ValidateStruct(form)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		key := first.StructField() + "." + first.Tag()
		if message, ok := form.ValidationMessages()[key]; ok {
			return exceptions.ErrFormValidation(message)
		}
	}
	return exceptions.ErrInputValidation(err)
}
