package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func sampleFailures() validator.ValidationErrors {
	return validator.ValidationErrors{
		{Field: "password", Message: "too short", TranslationKey: "validation.min"},
		{Field: "email", Message: "field is required", TranslationKey: "validation.required"},
		{Field: "password", Message: "must be a number", TranslationKey: "validation.numeric"},
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	e := validator.ValidationError{Field: "email", Message: "must be a valid email address"}
	assert.Equal(t, "email_error", e.Marker())
	assert.EqualError(t, e, "email: must be a valid email address")
}

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		errs validator.ValidationErrors
		want string
	}{
		{"empty", nil, "validation failed"},
		{
			"single",
			validator.ValidationErrors{{Field: "email", Message: "field is required"}},
			"validation failed: email: field is required",
		},
		{
			"grouped by field",
			sampleFailures(),
			"validation failed: password: too short, must be a number; email: field is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.errs.Error())
		})
	}
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()
	errs := sampleFailures()

	assert.Equal(t, []string{"too short", "must be a number"}, errs.Get("password"))
	assert.Nil(t, errs.Get("age"))
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
	assert.Equal(t, []string{"password_error", "email_error"}, errs.Markers())

	last, ok := errs.Last()
	require.True(t, ok)
	assert.Equal(t, "validation.numeric", last.TranslationKey)

	_, ok = validator.ValidationErrors{}.Last()
	assert.False(t, ok)
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	errs := sampleFailures()
	assert.Equal(t, errs, validator.ExtractValidationErrors(errs))
	assert.Equal(t, errs, validator.ExtractValidationErrors(fmt.Errorf("signup: %w", errs)))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))
	assert.Nil(t, validator.ExtractValidationErrors(nil))

	assert.ErrorIs(t, errs, validator.ErrValidationFailed)
	assert.ErrorIs(t, fmt.Errorf("signup: %w", errs), validator.ErrValidationFailed)
}
