// Package schema describes field checks declaratively in YAML and runs them
// through a validator.Validator.
//
// A schema lists fields in order. Each check is either a bare name or a
// single-key mapping whose value is the check argument:
//
//	date_format: DD/MM/YYYY
//	fields:
//	  - name: email
//	    checks: [required, is_email]
//	  - name: plan
//	    checks:
//	      - in_array: [free, pro]
//	  - name: starts_at
//	    checks:
//	      - is_date
//	      - date_not_before: today
//
// Check names are matched without regard to case, underscores or dashes, so
// "is_email", "isEmail" and "IsEmail" are the same check. Date checks without
// an explicit format use the schema's date_format when it is set.
//
// Usage:
//
//	s, err := schema.ParseFile("signup.yaml")
//	if err != nil {
//	    return err
//	}
//	v := validator.New()
//	if err := s.Validate(v, form); err != nil {
//	    marker, _ := v.LastError()
//	    ...
//	}
package schema
