package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// Username accepts 3-20 characters of ASCII letters, digits and underscores.
func Username(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return usernameRegex.MatchString(val)
}
