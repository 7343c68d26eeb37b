package validator

import (
	"fmt"
	"strings"
)

// Required fails when the value is empty after trimming, which includes nil
// and false inputs.
func (v *Validator) Required() *Validator {
	return v.run(Rule{
		Check: func() bool {
			return !v.value.IsEmpty()
		},
		Error: func() ValidationError {
			return v.newError("validation.required", "field is required", nil)
		},
	})
}

// Equals fails unless the value is exactly control.
func (v *Validator) Equals(control string) *Validator {
	return v.run(Rule{
		Check: func() bool {
			return v.value.Raw == control
		},
		Error: func() ValidationError {
			return v.newError("validation.equals", fmt.Sprintf("must be equal to %q", control), map[string]any{
				"control": control,
			})
		},
	})
}

// InArray fails when the value is not one of set. Numeric strings also match
// numerically equal members, so "1.0" is found in []string{"1"}.
func (v *Validator) InArray(set []string) *Validator {
	return v.run(Rule{
		Check: func() bool {
			for _, member := range set {
				if looselyEqual(v.value.Raw, member) {
					return true
				}
			}
			return false
		},
		Error: func() ValidationError {
			return v.newError("validation.in_list", fmt.Sprintf("must be one of: %s", strings.Join(set, ", ")), map[string]any{
				"allowed_values": set,
			})
		},
	})
}

func looselyEqual(a, b string) bool {
	if a == b {
		return true
	}
	x, okA := parseNumber(a)
	y, okB := parseNumber(strings.TrimSpace(b))
	return okA && okB && x == y
}
