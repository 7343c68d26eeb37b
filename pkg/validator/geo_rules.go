package validator

import "fmt"

// IsValidLat fails when the value is not a number within [-90, 90].
func (v *Validator) IsValidLat() *Validator {
	return v.run(v.coordinateRule("validation.latitude", "latitude", 90))
}

// IsValidLongt fails when the value is not a number within [-180, 180].
func (v *Validator) IsValidLongt() *Validator {
	return v.run(v.coordinateRule("validation.longitude", "longitude", 180))
}

func (v *Validator) coordinateRule(key, name string, bound float64) Rule {
	return Rule{
		Check: func() bool {
			n, ok := v.value.Number()
			if !ok {
				return false
			}
			if v.legacyCoordinates {
				return true
			}
			return n >= -bound && n <= bound
		},
		Error: func() ValidationError {
			return v.newError(key, fmt.Sprintf("must be a valid %s between %v and %v", name, -bound, bound), map[string]any{
				"min": -bound,
				"max": bound,
			})
		},
	}
}
