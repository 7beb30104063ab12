// Package validation runs schema checks over request payloads and reports
// every failing field at once.
//
// Structs declare their rules with `validate` tags. Field names in
// violations use the json tag so clients can map them back to inputs.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldViolation is one rejected field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a structured validation failure.
type Error struct {
	Violations []FieldViolation
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Error) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

func (e *Error) Empty() bool { return len(e.Violations) == 0 }

// Has reports whether field was rejected.
func (e *Error) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// OrNil returns e as an error, or nil when nothing was rejected.
func (e *Error) OrNil() error {
	if e == nil || e.Empty() {
		return nil
	}
	return e
}

var (
	once     sync.Once
	instance *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		instance = v
	})
	return instance
}

// Check validates s and returns the collected violations. The result is
// never nil so callers can keep adding their own checks.
func Check(s any) *Error {
	out := &Error{}
	err := engine().Struct(s)
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out.Add("", err.Error())
		return out
	}
	for _, fe := range verrs {
		out.Add(fieldPath(fe.Namespace()), message(fe))
	}
	return out
}

// fieldPath drops the root struct name: "Req.items[0].service" -> "items[0].service".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func message(fe validator.FieldError) string {
	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid email"
	case "gte", "min":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array {
			return fmt.Sprintf("At least %s %s required", fe.Param(), pluralize(fe.Field(), fe.Param()))
		}
		return label + " must be positive"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed %q", label, fe.Tag())
	}
}

// humanize turns a json field name into a label: "invoiceNumber" -> "Invoice number".
func humanize(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// pluralize returns the singular of a plural slice name when n is "1":
// ("items", "1") -> "item is".
func pluralize(field, n string) string {
	noun := strings.ToLower(humanize(field))
	if n == "1" {
		return strings.TrimSuffix(noun, "s") + " is"
	}
	return noun + " are"
}
