package validator

import (
	"log/slog"
	"time"
)

// Option configures a Validator.
type Option func(*Validator)

// WithClock sets the source of "now" for IsToday, BeforeToday and the other
// checks relative to the current date. Nil is ignored.
func WithClock(c Clock) Option {
	return func(v *Validator) {
		if c != nil {
			v.clock = c
		}
	}
}

// WithLocation sets the timezone used to parse dates and to determine today.
// Nil is ignored.
func WithLocation(loc *time.Location) Option {
	return func(v *Validator) {
		if loc != nil {
			v.location = loc
		}
	}
}

// WithDateFormat sets the format used by date checks called without an
// explicit format, by generic comparisons against time.Time controls and by
// SetField when rendering time.Time values.
func WithDateFormat(format string) Option {
	return func(v *Validator) {
		if format != "" {
			v.dateFormat = format
		}
	}
}

// WithLegacyCoordinates makes IsValidLat and IsValidLongt accept any numeric
// value regardless of range.
func WithLegacyCoordinates() Option {
	return func(v *Validator) {
		v.legacyCoordinates = true
	}
}

// WithLogger sets the logger that receives a debug record for every failed check.
// Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}
