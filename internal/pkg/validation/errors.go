package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/yigit/madrasah/internal/pkg/apperrors"
)

// FieldError is one violated rule on one input field
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Errors is the list of violations returned for an invalid input
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Is makes Errors match apperrors.ErrValidationFailed
func (e Errors) Is(target error) bool {
	return target == apperrors.ErrValidationFailed
}

var timeType = reflect.TypeOf(time.Time{})

// FromBindError turns a JSON decoding failure into field violations
func FromBindError(err error) Errors {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		if typeErr.Type == timeType {
			return Errors{{
				Field:   typeErr.Field,
				Rule:    "date",
				Message: typeErr.Field + " must be an RFC 3339 timestamp or a YYYY-MM-DD date",
			}}
		}
		return Errors{{
			Field:   typeErr.Field,
			Rule:    "type",
			Message: typeErr.Field + " must be of type " + jsonTypeName(typeErr.Type.Kind().String()),
		}}
	}

	return Errors{{
		Field:   "body",
		Rule:    "json",
		Message: "request body is not valid JSON",
	}}
}

func jsonTypeName(kind string) string {
	switch {
	case strings.HasPrefix(kind, "int"), strings.HasPrefix(kind, "uint"), strings.HasPrefix(kind, "float"):
		return "number"
	case kind == "bool":
		return "boolean"
	case kind == "string":
		return "string"
	default:
		return kind
	}
}
