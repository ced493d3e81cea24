package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var errMsgs []string
		for _, err := range err.(validator.ValidationErrors) {
			errMsgs = append(errMsgs, fmt.Sprintf(
				"field %s failed on %s(%s)", err.Field(), err.Tag(), err.Param(),
			))
		}
		return fmt.Errorf("config validation failed: %s", strings.Join(errMsgs, "; "))
	}
	return nil
}
