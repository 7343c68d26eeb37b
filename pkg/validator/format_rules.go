package validator

import (
	"sync"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	formatValidator     *gvalidator.Validate
	formatValidatorOnce sync.Once
)

// matchesTag reports whether value satisfies a go-playground/validator tag.
func matchesTag(value, tag string) bool {
	formatValidatorOnce.Do(func() {
		formatValidator = gvalidator.New()
	})
	return formatValidator.Var(value, tag) == nil
}

// IsEmail fails when the value is not a valid email address.
func (v *Validator) IsEmail() *Validator {
	return v.run(Rule{
		Check: func() bool {
			return matchesTag(v.value.Raw, "required,email")
		},
		Error: func() ValidationError {
			return v.newError("validation.email", "must be a valid email address", nil)
		},
	})
}

// IsURL fails when the value is not an absolute URL with a scheme.
func (v *Validator) IsURL() *Validator {
	return v.run(Rule{
		Check: func() bool {
			return matchesTag(v.value.Raw, "required,url")
		},
		Error: func() ValidationError {
			return v.newError("validation.url", "must be a valid URL", nil)
		},
	})
}

// IsUUID fails when the value is not a canonical, hyphenated UUID.
func (v *Validator) IsUUID() *Validator {
	return v.run(Rule{
		Check: func() bool {
			value := v.value.Raw
			// uuid.Parse also accepts urn and braced forms; require the 36-char form.
			if len(value) != 36 {
				return false
			}
			_, err := uuid.Parse(value)
			return err == nil
		},
		Error: func() ValidationError {
			return v.newError("validation.uuid", "must be a valid UUID", nil)
		},
	})
}
