package validator

import (
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

// Entry is one history record: the field and value as they were when a check ran.
type Entry struct {
	Field string
	Value string
}

// Validator runs a chain of checks against one field at a time.
//
// Every check evaluates its predicate against the loaded value, sets the error
// marker when the predicate fails, appends one history entry and returns the
// same Validator. The marker is overwritten by each failing check and left
// untouched by passing ones, so it only ever holds the latest failure.
//
// A Validator is not safe for concurrent use; create one per form.
type Validator struct {
	field  string
	value  Value
	loaded bool

	lastError *string
	history   []Entry
	failures  ValidationErrors

	clock             Clock
	location          *time.Location
	dateFormat        string
	legacyCoordinates bool
	logger            *slog.Logger
}

// New creates a Validator with no field loaded.
func New(opts ...Option) *Validator {
	v := &Validator{
		clock:      SystemClock,
		location:   time.Local,
		dateFormat: DefaultDateFormat,
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetField loads a field and value for the following checks.
// The field name is trimmed and lower-cased; the value is converted to its
// string form and trimmed. Error marker, history and failures are kept.
func (v *Validator) SetField(field string, value any) *Validator {
	v.field = strings.ToLower(strings.TrimSpace(field))
	v.value = newValue(value, v.defaultLayout())
	v.loaded = true
	return v
}

// Field returns the normalized name of the loaded field.
func (v *Validator) Field() string {
	return v.field
}

// Value returns the normalized loaded value.
func (v *Validator) Value() Value {
	return v.value
}

// LastError returns the marker of the most recent failed check, "<field>_error".
// The boolean is false when no check has failed yet.
func (v *Validator) LastError() (string, bool) {
	if v.lastError == nil {
		return "", false
	}
	return *v.lastError, true
}

// DumpHistory returns a copy of every (field, value) pair recorded so far,
// one per executed check, in call order.
func (v *Validator) DumpHistory() []Entry {
	return slices.Clone(v.history)
}

// Failures returns every failed check in call order. Unlike LastError,
// earlier failures are not lost.
func (v *Validator) Failures() ValidationErrors {
	return slices.Clone(v.failures)
}

// Err returns the collected failures as an error, or nil when every check passed.
func (v *Validator) Err() error {
	if len(v.failures) == 0 {
		return nil
	}
	return v.Failures()
}

// Valid reports whether no check has failed.
func (v *Validator) Valid() bool {
	return len(v.failures) == 0
}

// Reset clears the loaded field, the error marker, the history and the failures.
func (v *Validator) Reset() *Validator {
	v.field = ""
	v.value = Value{}
	v.loaded = false
	v.lastError = nil
	v.history = nil
	v.failures = nil
	return v
}

// run is the single path every check goes through.
func (v *Validator) run(rule Rule) *Validator {
	if !v.loaded {
		panic(ErrNoFieldLoaded)
	}
	if !rule.Check() {
		v.markFailure(rule.Error())
	}
	v.record()
	return v
}

func (v *Validator) markFailure(err ValidationError) {
	marker := err.Marker()
	v.lastError = &marker
	v.failures = append(v.failures, err)

	v.logger.Debug("field check failed",
		logger.Field(v.field),
		logger.Value(v.value.Raw),
		logger.Check(err.TranslationKey),
	)
}

func (v *Validator) record() {
	v.history = append(v.history, Entry{Field: v.field, Value: v.value.Raw})
}

// newError builds the failure details for the loaded field.
func (v *Validator) newError(key, message string, values map[string]any) ValidationError {
	tv := map[string]any{"field": v.field}
	maps.Copy(tv, values)
	return ValidationError{
		Field:             v.field,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: tv,
	}
}

func (v *Validator) defaultLayout() string {
	layout, err := Layout(v.dateFormat)
	if err != nil {
		return time.DateOnly
	}
	return layout
}
