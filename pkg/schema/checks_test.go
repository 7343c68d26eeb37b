package schema_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/schema"
)

// single parses a schema with one field "x" holding the given check.
func single(t *testing.T, check string) (schema.Check, error) {
	t.Helper()
	s, err := schema.Parse([]byte(fmt.Sprintf("fields:\n  - name: x\n    checks:\n      - %s\n", check)))
	if err != nil {
		return schema.Check{}, err
	}
	require.Len(t, s.Fields, 1)
	require.Len(t, s.Fields[0].Checks, 1)
	return s.Fields[0].Checks[0], nil
}

// run applies c to value loaded as field "x" and reports whether it passed.
func run(t *testing.T, c schema.Check, value any) bool {
	t.Helper()
	v := newValidator()
	c.Apply(v.SetField("x", value))
	_, failed := v.LastError()
	return !failed
}

func TestCheckNames(t *testing.T) {
	t.Parallel()

	spellings := map[string][]string{
		"isemail":      {"is_email", "isEmail", "IsEmail", "is-email", "email"},
		"isvalidlat":   {"is_valid_lat", "isValidLat", "latitude"},
		"isvalidlongt": {"is_valid_longt", "isValidLongt", "longitude"},
		"isnumeric":    {"is_numeric", "IsNumeric", "numeric"},
		"required":     {"required", "Required", "REQUIRED"},
	}

	for want, names := range spellings {
		for _, name := range names {
			t.Run(name, func(t *testing.T) {
				c, err := single(t, name)
				require.NoError(t, err)
				assert.Equal(t, want, c.Name)
			})
		}
	}
}

func TestCheckBehavior(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		check string
		pass  []any
		fail  []any
	}{
		{"required", "required", []any{"a", 0, "0"}, []any{"", "  ", nil, false}},
		{"email", "is_email", []any{"user@example.com"}, []any{"user@", "plain"}},
		{"url", "is_url", []any{"https://example.com/path"}, []any{"example", ""}},
		{"uuid", "is_uuid", []any{"123e4567-e89b-12d3-a456-426614174000"}, []any{"123e4567e89b12d3a456426614174000", "x"}},
		{"in array", "in_array: [free, pro]", []any{"free", "pro"}, []any{"gold", ""}},
		{"in array numbers", "in_array: [1, 2]", []any{1, "2", "2.0"}, []any{3}},
		{"equals", "equals: secret", []any{"secret", " secret "}, []any{"Secret"}},
		{"min", "min: 18", []any{18, "18.5", 99}, []any{17, "abc", ""}},
		{"max", "max: 65.5", []any{65.5, -1}, []any{66, "abc"}},
		{"numeric", "is_numeric", []any{"1e3", -4, ".5"}, []any{"1,000", "abc"}},
		{"float", "is_float", []any{"1.5", 2.25}, []any{"15", 3}},
		{"date", "is_date", []any{"2024-02-29"}, []any{"2023-02-29", "29/02/2024"}},
		{"date with format", "is_date: DD/MM/YYYY", []any{"29/02/2024"}, []any{"2024-02-29"}},
		{"today", "is_today", []any{"2024-06-15"}, []any{"2024-06-14"}},
		{"before today", "before_today", []any{"2024-06-14"}, []any{"2024-06-15"}},
		{"after today", "after_today", []any{"2024-06-16"}, []any{"2024-06-15"}},
		{"before tomorrow", "before_tomorrow", []any{"2024-06-15"}, []any{"2024-06-16"}},
		{"after yesterday", "after_yesterday", []any{"2024-06-15"}, []any{"2024-06-14"}},
		{"not before", "date_not_before: 2024-01-01", []any{"2024-01-01", "2024-03-01"}, []any{"2023-12-31"}},
		{"not after", "date_not_after: today", []any{"2024-06-15", "2024-01-01"}, []any{"2024-06-16"}},
		{"not greater than", "not_greater_than: 10", []any{10, "9.5"}, []any{11, "abc"}},
		{"not lesser than", "not_lesser_than: 10", []any{10, 100}, []any{9}},
		{"latitude", "is_valid_lat", []any{"-90", 45.5}, []any{"90.1", "abc"}},
		{"longitude", "is_valid_longt", []any{"180", -122.6}, []any{"-180.5", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := single(t, tt.check)
			require.NoError(t, err)
			for _, value := range tt.pass {
				assert.True(t, run(t, c, value), "%s should pass for %v", tt.check, value)
			}
			for _, value := range tt.fail {
				assert.False(t, run(t, c, value), "%s should fail for %v", tt.check, value)
			}
		})
	}
}

func TestCheckArguments(t *testing.T) {
	t.Parallel()

	t.Run("decoded values", func(t *testing.T) {
		c, err := single(t, "in_array: [1, 2]")
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, c.Arg)

		c, err = single(t, "not_greater_than: 10")
		require.NoError(t, err)
		assert.Equal(t, 10, c.Arg)

		c, err = single(t, "date_not_before: 2024-01-01")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", c.Arg)

		c, err = single(t, "is_date")
		require.NoError(t, err)
		assert.Nil(t, c.Arg, "no schema date_format means the validator default")
	})

	t.Run("explicit format overrides schema format", func(t *testing.T) {
		s, err := schema.Parse([]byte("date_format: DD/MM/YYYY\nfields:\n  - name: x\n    checks:\n      - is_date\n      - is_date: Y-m-d\n"))
		require.NoError(t, err)
		checks := s.Fields[0].Checks
		assert.Equal(t, "DD/MM/YYYY", checks[0].Arg)
		assert.Equal(t, "Y-m-d", checks[1].Arg)
		assert.True(t, run(t, checks[0], "15/06/2024"))
		assert.True(t, run(t, checks[1], "2024-06-15"))
	})

	invalid := []string{
		"required: true",
		"is_email: yes",
		"min",
		"min: abc",
		"max: [1]",
		"in_array: free",
		"in_array",
		"equals",
		"equals: [a]",
		"date_not_before",
		"date_not_after: {a: b}",
		"not_greater_than",
		"not_lesser_than: [1, 2]",
		"is_date: '???'",
		"is_today: [Y]",
	}
	for _, check := range invalid {
		t.Run(check, func(t *testing.T) {
			_, err := single(t, check)
			assert.ErrorIs(t, err, schema.ErrInvalidArgument)
		})
	}
}
