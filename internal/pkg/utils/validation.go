package utils

import (
	"plantao-service/internal/pkg/constvars"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	specialCharRegex = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	uppercaseRegex   = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	clockRegex       = regexp.MustCompile(constvars.RegexClockHHMM)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("user_type", validateUserType)
	validate.RegisterValidation("clock", validateClock)
	validate.RegisterValidation("date_only", validateDateOnly)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	return hasMinLen && specialCharRegex.MatchString(password) && uppercaseRegex.MatchString(password)
}

func validateUserType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.UserTypeDoctor || value == constvars.UserTypeHospital
}

func validateClock(fl validator.FieldLevel) bool {
	return IsClock(fl.Field().String())
}

func validateDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateLayout, fl.Field().String())
	return err == nil
}

// IsClock reports whether s is a zero-padded 24h HH:MM.
func IsClock(s string) bool {
	return clockRegex.MatchString(s)
}
