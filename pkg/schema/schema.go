package schema

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// Schema is a parsed list of fields, each with the checks to chain on it.
type Schema struct {
	DateFormat string
	Fields     []Field
}

// Field names a form input and the checks applied to it, in order.
type Field struct {
	Name   string
	Checks []Check
}

// Check is a single resolved check with its decoded argument.
type Check struct {
	Name string
	Arg  any

	apply func(*validator.Validator) *validator.Validator
}

// Apply runs the check against the field currently loaded in v.
func (c Check) Apply(v *validator.Validator) *validator.Validator {
	return c.apply(v)
}

type document struct {
	DateFormat string          `yaml:"date_format"`
	Fields     []fieldDocument `yaml:"fields"`
}

type fieldDocument struct {
	Name   string      `yaml:"name"`
	Checks []yaml.Node `yaml:"checks"`
}

// Parse decodes a YAML schema document.
//
//	date_format: YYYY-MM-DD
//	fields:
//	  - name: email
//	    checks: [required, is_email]
//	  - name: age
//	    checks:
//	      - min: 18
//	      - max: 65
func Parse(data []byte) (*Schema, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("%w: no fields defined", ErrInvalidSchema)
	}
	if doc.DateFormat != "" {
		if _, err := validator.Layout(doc.DateFormat); err != nil {
			return nil, errors.Join(ErrInvalidSchema, err)
		}
	}

	s := &Schema{DateFormat: doc.DateFormat}
	for i, fd := range doc.Fields {
		name := strings.TrimSpace(fd.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: field #%d has no name", ErrInvalidSchema, i+1)
		}

		f := Field{Name: name}
		for j := range fd.Checks {
			c, err := s.buildCheck(&fd.Checks[j])
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", name, err)
			}
			f.Checks = append(f.Checks, c)
		}
		s.Fields = append(s.Fields, f)
	}

	return s, nil
}

// ParseFile reads and parses a YAML schema file.
func ParseFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}
	return Parse(data)
}

// Validate loads every field from values into v, in schema order, and chains
// its checks. Missing values are loaded as nil. Lookup is exact first, then
// case-insensitive on the trimmed key; when several keys match that way the
// lexically smallest one wins.
//
// The returned error is v.Err(), so it also reflects failures recorded on v
// before the call.
func (s *Schema) Validate(v *validator.Validator, values map[string]any) error {
	for _, f := range s.Fields {
		v.SetField(f.Name, lookup(values, f.Name))
		for _, c := range f.Checks {
			c.Apply(v)
		}
	}
	return v.Err()
}

func lookup(values map[string]any, name string) any {
	if value, ok := values[name]; ok {
		return value
	}
	want := strings.ToLower(strings.TrimSpace(name))
	for _, key := range slices.Sorted(maps.Keys(values)) {
		if strings.ToLower(strings.TrimSpace(key)) == want {
			return values[key]
		}
	}
	return nil
}
