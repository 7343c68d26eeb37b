package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Kind is the Go type family a value had when it was loaded with SetField.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindUint
	KindFloat
	KindBool
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Value is the normalized form of a loaded field value.
// Raw is always the trimmed string representation; checks parse it explicitly.
type Value struct {
	Raw  string
	Kind Kind
}

// numericRegex accepts optionally signed integers, decimals and exponent notation.
// Hex, octal, binary, underscores, Inf and NaN are rejected.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// newValue coerces an arbitrary input to a Value. Time values are rendered with layout.
func newValue(in any, layout string) Value {
	switch x := in.(type) {
	case nil:
		return Value{Kind: KindNull}
	case string:
		return Value{Raw: strings.TrimSpace(x), Kind: KindString}
	case *string:
		if x == nil {
			return Value{Kind: KindNull}
		}
		return Value{Raw: strings.TrimSpace(*x), Kind: KindString}
	case []byte:
		return Value{Raw: strings.TrimSpace(string(x)), Kind: KindString}
	case bool:
		// Matches a string cast of a boolean: true is "1", false is empty.
		if x {
			return Value{Raw: "1", Kind: KindBool}
		}
		return Value{Kind: KindBool}
	case int:
		return Value{Raw: strconv.FormatInt(int64(x), 10), Kind: KindInt}
	case int8:
		return Value{Raw: strconv.FormatInt(int64(x), 10), Kind: KindInt}
	case int16:
		return Value{Raw: strconv.FormatInt(int64(x), 10), Kind: KindInt}
	case int32:
		return Value{Raw: strconv.FormatInt(int64(x), 10), Kind: KindInt}
	case int64:
		return Value{Raw: strconv.FormatInt(x, 10), Kind: KindInt}
	case uint:
		return Value{Raw: strconv.FormatUint(uint64(x), 10), Kind: KindUint}
	case uint8:
		return Value{Raw: strconv.FormatUint(uint64(x), 10), Kind: KindUint}
	case uint16:
		return Value{Raw: strconv.FormatUint(uint64(x), 10), Kind: KindUint}
	case uint32:
		return Value{Raw: strconv.FormatUint(uint64(x), 10), Kind: KindUint}
	case uint64:
		return Value{Raw: strconv.FormatUint(x, 10), Kind: KindUint}
	case float32:
		return Value{Raw: strconv.FormatFloat(float64(x), 'f', -1, 32), Kind: KindFloat}
	case float64:
		return Value{Raw: strconv.FormatFloat(x, 'f', -1, 64), Kind: KindFloat}
	case time.Time:
		return Value{Raw: x.Format(layout), Kind: KindTime}
	case fmt.Stringer:
		return Value{Raw: strings.TrimSpace(x.String()), Kind: KindString}
	default:
		return Value{Raw: strings.TrimSpace(fmt.Sprint(x)), Kind: KindString}
	}
}

// IsEmpty reports whether the normalized value is the empty string.
func (v Value) IsEmpty() bool {
	return v.Raw == ""
}

// Number parses the value as a float64 using the numeric grammar.
func (v Value) Number() (float64, bool) {
	return parseNumber(v.Raw)
}

func isNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

func parseNumber(s string) (float64, bool) {
	if !isNumeric(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// toFloat converts a Go numeric value to float64.
func toFloat(x any) (float64, bool) {
	switch n := x.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
