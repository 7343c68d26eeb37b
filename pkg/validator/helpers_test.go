package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

type check func(*validator.Validator) *validator.Validator

// passes loads value into a fresh validator, runs c once and reports whether it passed.
func passes(t *testing.T, value any, c check, opts ...validator.Option) bool {
	t.Helper()
	v := validator.New(opts...)
	c(v.SetField("x", value))
	assert.Len(t, v.DumpHistory(), 1)
	marker, failed := v.LastError()
	if failed {
		assert.Equal(t, "x_error", marker)
	}
	return !failed
}
