package validator

import (
	"fmt"
	"strings"
	"time"
)

// Min fails when the value is not numeric or is less than control.
func (v *Validator) Min(control float64) *Validator {
	return v.run(Rule{
		Check: func() bool {
			n, ok := v.value.Number()
			return ok && n >= control
		},
		Error: func() ValidationError {
			return v.newError("validation.min", fmt.Sprintf("must be at least %v", control), map[string]any{
				"min": control,
			})
		},
	})
}

// Max fails when the value is not numeric or is greater than control.
func (v *Validator) Max(control float64) *Validator {
	return v.run(Rule{
		Check: func() bool {
			n, ok := v.value.Number()
			return ok && n <= control
		},
		Error: func() ValidationError {
			return v.newError("validation.max", fmt.Sprintf("must be at most %v", control), map[string]any{
				"max": control,
			})
		},
	})
}

// IsNumeric fails unless the value is an optionally signed integer, decimal or
// exponent-notation number.
func (v *Validator) IsNumeric() *Validator {
	return v.run(Rule{
		Check: func() bool {
			return isNumeric(v.value.Raw)
		},
		Error: func() ValidationError {
			return v.newError("validation.numeric", "must be a number", nil)
		},
	})
}

// IsFloat passes when the value was loaded as a Go float, or is a numeric
// string written with a fractional part or an exponent. Integers fail.
func (v *Validator) IsFloat() *Validator {
	return v.run(Rule{
		Check: func() bool {
			if v.value.Kind == KindFloat {
				return true
			}
			if v.value.Kind != KindString || !isNumeric(v.value.Raw) {
				return false
			}
			return strings.ContainsAny(v.value.Raw, ".eE")
		},
		Error: func() ValidationError {
			return v.newError("validation.float", "must be a floating-point number", nil)
		},
	})
}

// NotGreaterThan fails when the value is greater than control or cannot be
// compared with it. See compare for the supported control types.
func (v *Validator) NotGreaterThan(control any) *Validator {
	return v.run(Rule{
		Check: func() bool {
			c, ok := v.compare(control)
			return ok && c <= 0
		},
		Error: func() ValidationError {
			return v.newError("validation.not_greater_than", fmt.Sprintf("must not be greater than %v", control), map[string]any{
				"control": control,
			})
		},
	})
}

// NotLesserThan fails when the value is less than control or cannot be
// compared with it.
func (v *Validator) NotLesserThan(control any) *Validator {
	return v.run(Rule{
		Check: func() bool {
			c, ok := v.compare(control)
			return ok && c >= 0
		},
		Error: func() ValidationError {
			return v.newError("validation.not_lesser_than", fmt.Sprintf("must not be less than %v", control), map[string]any{
				"control": control,
			})
		},
	})
}

// compare orders the loaded value against control and returns -1, 0 or 1.
//
//   - Go numbers: the value must be numeric and is compared numerically.
//   - time.Time: the value is parsed with the default date format.
//   - strings: numeric when both sides are numeric, lexical otherwise.
//
// Any other control, or a value that cannot be parsed, is not comparable.
func (v *Validator) compare(control any) (int, bool) {
	switch c := control.(type) {
	case nil:
		return 0, false
	case time.Time:
		t, ok := v.parseDate(v.value.Raw, v.dateFormat)
		if !ok {
			return 0, false
		}
		return t.Compare(c), true
	case string:
		c = strings.TrimSpace(c)
		if a, ok := v.value.Number(); ok {
			if b, ok := parseNumber(c); ok {
				return compareFloat(a, b), true
			}
		}
		return strings.Compare(v.value.Raw, c), true
	default:
		b, ok := toFloat(control)
		if !ok {
			return 0, false
		}
		a, ok := v.value.Number()
		if !ok {
			return 0, false
		}
		return compareFloat(a, b), true
	}
}
