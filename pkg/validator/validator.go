package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report failures under the wire field name, not the Go field name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct runs the struct's validate tags and returns a
// field -> message map, empty when the value is valid.
func ValidateStruct(data interface{}) map[string]string {
	errs := map[string]string{}
	if err := validate.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs[fe.Field()] = messageFor(fe)
		}
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "productName":
		return "Product name is required"
	case "productPrice":
		if fe.Tag() == "required" {
			return "Product price is required"
		}
		return "Price must be greater than or equal to 0"
	case "productStock":
		return "Stock must be greater than or equal to 0"
	}
	return fmt.Sprintf("Field '%s' failed on tag '%s'", fe.Field(), fe.Tag())
}
