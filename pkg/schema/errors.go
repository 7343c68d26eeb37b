package schema

import "errors"

var (
	// ErrInvalidSchema is returned when the document cannot be decoded or is structurally wrong.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrUnknownCheck is returned for a check name with no matching validator method.
	ErrUnknownCheck = errors.New("unknown check")

	// ErrInvalidArgument is returned when a check argument is missing or has the wrong shape.
	ErrInvalidArgument = errors.New("invalid check argument")
)
