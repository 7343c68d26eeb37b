package validator

import (
	"errors"
	"slices"
	"strings"
)

// Rule pairs a predicate over the loaded value with the failure reported when
// it does not hold. Error is only called for a failed check.
type Rule struct {
	Check func() bool
	Error func() ValidationError
}

// ValidationError describes one failed check. TranslationKey names the check
// ("validation.email") and TranslationValues carries its arguments, so callers
// can render their own message.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Marker returns the error marker token for the failed field: "<field>_error".
func (e ValidationError) Marker() string {
	return markerFor(e.Field)
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func markerFor(field string) string {
	return field + "_error"
}

// ValidationErrors lists failures in the order the checks ran.
type ValidationErrors []ValidationError

// Error groups messages per field, fields ordered by their first failure:
// "validation failed: email: field is required, must be a valid email address; age: ...".
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, field := range ve.Fields() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(strings.Join(ve.Get(field), ", "))
	}
	return b.String()
}

// Is matches ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Get returns the messages recorded for field, oldest first.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, e := range ve {
		if e.Field == field {
			messages = append(messages, e.Message)
		}
	}
	return messages
}

// Fields returns each failed field once, in order of first failure.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	for _, e := range ve {
		if !slices.Contains(fields, e.Field) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// Markers returns the "<field>_error" token of every failed field, in the
// same order as Fields.
func (ve ValidationErrors) Markers() []string {
	fields := ve.Fields()
	for i, f := range fields {
		fields[i] = markerFor(f)
	}
	return fields
}

// Last returns the most recent failure.
func (ve ValidationErrors) Last() (ValidationError, bool) {
	if len(ve) == 0 {
		return ValidationError{}, false
	}
	return ve[len(ve)-1], true
}

// ExtractValidationErrors unwraps ValidationErrors from err, or returns nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
