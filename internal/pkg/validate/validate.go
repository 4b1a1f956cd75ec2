package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Fields converts a binding/validation error into the {field: message}
// map rendered back into the form. Non-validator errors collapse into a
// single catch-all entry so the handler never re-renders empty-handed.
func Fields(err error) map[string]string {
	out := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["__all__"] = err.Error()
		return out
	}

	for _, fe := range verrs {
		out[fieldName(fe)] = message(fe)
	}
	return out
}

// Conflict builds the single-field error map for a uniqueness violation.
func Conflict(field, value string) map[string]string {
	return map[string]string{field: fmt.Sprintf("%s %q is already taken", field, value)}
}

func fieldName(fe validator.FieldError) string {
	return toSnake(fe.Field())
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func toSnake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		// break before the first capital of a word, but keep acronyms
		// like "ID" together
		if i > 0 && (!unicode.IsUpper(runes[i-1]) ||
			(i+1 < len(runes) && !unicode.IsUpper(runes[i+1]))) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
