// Package validator provides a fluent, chainable validator for form fields.
//
// A Validator holds one loaded field at a time. SetField loads a name and a
// value, then checks are chained on the returned *Validator:
//
//	v := validator.New()
//	v.SetField("Email", " user@example.com ").Required().IsEmail()
//	v.SetField("age", 15).Min(18).Max(65)
//
//	if marker, failed := v.LastError(); failed {
//	    // marker == "age_error"
//	}
//
// # Recording protocol
//
// Every check follows the same steps: evaluate the predicate against the
// loaded value, on failure overwrite the error marker with "<field>_error",
// append one (field, value) entry to the history, and return the receiver.
//
// The error marker holds only the most recent failure and is never cleared by
// a passing check or by SetField. Callers that need every failure should use
// Failures or Err, which collect a ValidationError per failed check with a
// translation key such as "validation.email". DumpHistory returns the raw audit
// trail with exactly one entry per executed check.
//
// # Values
//
// Field names are trimmed and lower-cased. Values of any Go type are converted
// to a trimmed string; the original type family is kept as a Kind. Numeric and
// date checks parse the string explicitly and treat a parse failure as a failed
// check.
//
// # Dates
//
// Date checks take an optional format in token style ("YYYY-MM-DD"),
// single-letter style ("Y-m-d") or as a Go layout ("2006-01-02"). Checks
// relative to today read the time from a Clock, which tests replace with
// FixedClock.
//
// # Misuse
//
// Running a check before the first SetField panics with ErrNoFieldLoaded.
//
// # Configuration
//
// LoadConfig reads FIELDCHECK_DATE_FORMAT, FIELDCHECK_TIMEZONE,
// FIELDCHECK_LEGACY_COORDINATES and the FIELDCHECK_LOG_* pair; NewFromConfig
// turns the result into a Validator.
package validator
