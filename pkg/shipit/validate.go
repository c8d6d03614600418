package shipit

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}); err != nil {
		panic(err)
	}
	return v
}

// violations runs the struct tags of s and returns field path to message.
func violations(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"body": err.Error()}
	}
	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		out[path] = msgForTag(fe)
	}
	return out
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "finite":
		return "must be a finite number"
	default:
		return fmt.Sprintf("failed on '%s' validation", fe.Tag())
	}
}

// checkPayload validates s and any present nested values in extra, keyed
// by their wire name.
func checkPayload(typeName string, s any, extra map[string]any) error {
	fields := violations(s)
	for prefix, nested := range extra {
		for path, msg := range violations(nested) {
			if fields == nil {
				fields = make(map[string]string)
			}
			fields[prefix+"."+path] = msg
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &InvalidPayloadError{Type: typeName, Fields: fields}
}
