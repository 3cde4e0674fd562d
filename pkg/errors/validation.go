package errors

import (
	stdErrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// UseJSONFieldNames makes v report fields by their json name instead of the Go name.
func UseJSONFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
}

// Messages maps "<field>.<tag>" to the message shown for that failure.
type Messages map[string]string

// FromValidator converts validator errors into a ValidationError. Field names are
// whatever the validator's tag name func reports (json names once registered).
// Returns nil when err is not a validator.ValidationErrors.
func FromValidator(err error, messages Messages) *ValidationError {
	var verrs validator.ValidationErrors
	if !stdErrors.As(err, &verrs) {
		return nil
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: messages.lookup(fe),
		})
	}
	return out
}

func (m Messages) lookup(fe validator.FieldError) string {
	if msg, ok := m[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if fe.Param() != "" {
		return fmt.Sprintf("The %s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("The %s must satisfy %s", fe.Field(), fe.Tag())
}
