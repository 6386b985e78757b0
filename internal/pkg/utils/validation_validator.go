package utils

import (
	"medtrack-portal/internal/app/models"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate       *validator.Validate
	clockTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("refillstatus", validateRefillStatus)
	validate.RegisterValidation("clocktime", validateClockTime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateRole(fl validator.FieldLevel) bool {
	_, err := models.ParseRole(fl.Field().String())
	return err == nil
}

func validateRefillStatus(fl validator.FieldLevel) bool {
	_, err := models.ParseRefillStatus(fl.Field().String())
	return err == nil
}

func validateClockTime(fl validator.FieldLevel) bool {
	return clockTimeRegex.MatchString(fl.Field().String())
}
