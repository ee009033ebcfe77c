package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators configures v so that field errors are reported under
// their JSON names instead of Go struct field names.
func RegisterValidators(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
