package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

type applyFunc func(*validator.Validator) *validator.Validator

// builder decodes the argument node (nil when the check was written as a bare
// name) and returns the decoded argument and the bound check.
type builder func(s *Schema, arg *yaml.Node) (any, applyFunc, error)

var builders = map[string]builder{
	"required":       noArg((*validator.Validator).Required),
	"isemail":        noArg((*validator.Validator).IsEmail),
	"email":          noArg((*validator.Validator).IsEmail),
	"isurl":          noArg((*validator.Validator).IsURL),
	"url":            noArg((*validator.Validator).IsURL),
	"isuuid":         noArg((*validator.Validator).IsUUID),
	"uuid":           noArg((*validator.Validator).IsUUID),
	"inarray":        stringsArg((*validator.Validator).InArray),
	"in":             stringsArg((*validator.Validator).InArray),
	"equals":         stringArg((*validator.Validator).Equals),
	"min":            floatArg((*validator.Validator).Min),
	"max":            floatArg((*validator.Validator).Max),
	"isnumeric":      noArg((*validator.Validator).IsNumeric),
	"numeric":        noArg((*validator.Validator).IsNumeric),
	"isfloat":        noArg((*validator.Validator).IsFloat),
	"float":          noArg((*validator.Validator).IsFloat),
	"isdate":         formatArg((*validator.Validator).IsDate),
	"date":           formatArg((*validator.Validator).IsDate),
	"istoday":        formatArg((*validator.Validator).IsToday),
	"beforetoday":    formatArg((*validator.Validator).BeforeToday),
	"aftertoday":     formatArg((*validator.Validator).AfterToday),
	"beforetomorrow": formatArg((*validator.Validator).BeforeTomorrow),
	"afteryesterday": formatArg((*validator.Validator).AfterYesterday),
	"datenotbefore":  stringArg((*validator.Validator).DateNotBefore),
	"datenotafter":   stringArg((*validator.Validator).DateNotAfter),
	"notgreaterthan": anyArg((*validator.Validator).NotGreaterThan),
	"notlesserthan":  anyArg((*validator.Validator).NotLesserThan),
	"isvalidlat":     noArg((*validator.Validator).IsValidLat),
	"latitude":       noArg((*validator.Validator).IsValidLat),
	"isvalidlongt":   noArg((*validator.Validator).IsValidLongt),
	"longitude":      noArg((*validator.Validator).IsValidLongt),
}

// canonicalName folds case and drops separators: "is_email", "isEmail" and
// "IsEmail" all become "isemail".
func canonicalName(name string) string {
	r := strings.NewReplacer("_", "", "-", "", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(name)))
}

func (s *Schema) buildCheck(node *yaml.Node) (Check, error) {
	var (
		name string
		arg  *yaml.Node
	)

	switch node.Kind {
	case yaml.ScalarNode:
		name = node.Value
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return Check{}, fmt.Errorf("%w: line %d: a check must have exactly one key", ErrInvalidSchema, node.Line)
		}
		name = node.Content[0].Value
		arg = node.Content[1]
	default:
		return Check{}, fmt.Errorf("%w: line %d: a check must be a name or a single-key mapping", ErrInvalidSchema, node.Line)
	}

	key := canonicalName(name)
	b, ok := builders[key]
	if !ok {
		return Check{}, fmt.Errorf("%w: %q at line %d", ErrUnknownCheck, name, node.Line)
	}

	decoded, apply, err := b(s, arg)
	if err != nil {
		return Check{}, fmt.Errorf("check %q at line %d: %w", name, node.Line, err)
	}

	return Check{Name: key, Arg: decoded, apply: apply}, nil
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

func noArg(fn func(*validator.Validator) *validator.Validator) builder {
	return func(_ *Schema, arg *yaml.Node) (any, applyFunc, error) {
		if !isNull(arg) {
			return nil, nil, fmt.Errorf("%w: takes no argument", ErrInvalidArgument)
		}
		return nil, fn, nil
	}
}

func floatArg(fn func(*validator.Validator, float64) *validator.Validator) builder {
	return func(_ *Schema, arg *yaml.Node) (any, applyFunc, error) {
		if isNull(arg) {
			return nil, nil, fmt.Errorf("%w: a number is required", ErrInvalidArgument)
		}
		var control float64
		if err := arg.Decode(&control); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return control, func(v *validator.Validator) *validator.Validator { return fn(v, control) }, nil
	}
}

func stringArg(fn func(*validator.Validator, string) *validator.Validator) builder {
	return func(_ *Schema, arg *yaml.Node) (any, applyFunc, error) {
		if isNull(arg) || arg.Kind != yaml.ScalarNode {
			return nil, nil, fmt.Errorf("%w: a single value is required", ErrInvalidArgument)
		}
		control := arg.Value
		return control, func(v *validator.Validator) *validator.Validator { return fn(v, control) }, nil
	}
}

func stringsArg(fn func(*validator.Validator, []string) *validator.Validator) builder {
	return func(_ *Schema, arg *yaml.Node) (any, applyFunc, error) {
		if isNull(arg) || arg.Kind != yaml.SequenceNode {
			return nil, nil, fmt.Errorf("%w: a list of values is required", ErrInvalidArgument)
		}
		var set []string
		if err := arg.Decode(&set); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return set, func(v *validator.Validator) *validator.Validator { return fn(v, set) }, nil
	}
}

// formatArg binds an optional date format; without one the schema's
// date_format is used, and without that the validator's default.
func formatArg(fn func(*validator.Validator, ...string) *validator.Validator) builder {
	return func(s *Schema, arg *yaml.Node) (any, applyFunc, error) {
		format := s.DateFormat
		if !isNull(arg) {
			if arg.Kind != yaml.ScalarNode {
				return nil, nil, fmt.Errorf("%w: format must be a string", ErrInvalidArgument)
			}
			if _, err := validator.Layout(arg.Value); err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
			}
			format = arg.Value
		}
		if format == "" {
			return nil, func(v *validator.Validator) *validator.Validator { return fn(v) }, nil
		}
		return format, func(v *validator.Validator) *validator.Validator { return fn(v, format) }, nil
	}
}

func anyArg(fn func(*validator.Validator, any) *validator.Validator) builder {
	return func(_ *Schema, arg *yaml.Node) (any, applyFunc, error) {
		if isNull(arg) || arg.Kind != yaml.ScalarNode {
			return nil, nil, fmt.Errorf("%w: a single value is required", ErrInvalidArgument)
		}
		var control any
		if err := arg.Decode(&control); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return control, func(v *validator.Validator) *validator.Validator { return fn(v, control) }, nil
	}
}
