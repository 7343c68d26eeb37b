package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNoFieldLoaded is the panic value when a check runs before SetField.
	ErrNoFieldLoaded = errors.New("validator: no field loaded, call SetField before running checks")

	// ErrInvalidDateFormat is returned when a date format cannot be translated to a layout.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidTimezone is returned when a configured timezone cannot be loaded.
	ErrInvalidTimezone = errors.New("invalid timezone")
)
