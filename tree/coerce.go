package tree

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrOutOfRange is returned for numeric text that has the accepted shape but
// does not fit the target type.
var ErrOutOfRange = errors.New("number out of range")

var (
	intPattern   = regexp.MustCompile(`^-?\d+$`)
	floatPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// ParseInt parses s when it is an optional "-" followed by digits only.
// It reports false for any other shape. Digits that overflow int64 report
// true with ErrOutOfRange.
func ParseInt(s string) (int64, bool, error) {
	if !intPattern.MatchString(s) {
		return 0, false, nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}

	return n, true, nil
}

// ParseFloat parses s when it is an optional "-", digits and an optional
// fractional part. Exponents, "inf" and "nan" are rejected. Digits beyond
// the float64 range report true with ErrOutOfRange.
func ParseFloat(s string) (float64, bool, error) {
	if !floatPattern.MatchString(s) {
		return 0, false, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, true, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}

	return f, true, nil
}

// IsTrue reports whether the textual form of s is "true", ignoring case.
func IsTrue(s string) bool {
	return strings.ToLower(s) == "true"
}

// CoerceInt turns a list element into an int: ints as-is, floats truncated,
// anything else parsed from its text with 0 on failure. Values outside the
// int64 range are failures too.
func CoerceInt(v Value) int64 {
	switch v.kind {
	case KindInt:
		return v.num
	case KindFloat:
		return truncate(v.flt)
	case KindAbsent, KindNull, KindString, KindBool, KindList, KindMap:
	}

	text := v.String()
	if n, ok, err := ParseInt(text); ok {
		if err != nil {
			return 0
		}

		return n
	}

	if f, ok, err := ParseFloat(text); ok && err == nil {
		return truncate(f)
	}

	return 0
}

// truncate drops the fraction of f, or returns 0 when f has no int64 value.
func truncate(f float64) int64 {
	// int64 covers [-2^63, 2^63).
	if math.IsNaN(f) || f < math.MinInt64 || f >= -math.MinInt64 {
		return 0
	}

	return int64(f)
}

// CoerceFloat turns a list element into a float: numbers as-is, anything
// else parsed from its text with 0.0 on failure.
func CoerceFloat(v Value) float64 {
	switch v.kind {
	case KindInt:
		return float64(v.num)
	case KindFloat:
		return v.flt
	case KindAbsent, KindNull, KindString, KindBool, KindList, KindMap:
	}

	if f, ok, err := ParseFloat(v.String()); ok && err == nil {
		return f
	}

	return 0
}

// CoerceBool turns a list element into a bool: bools as-is, anything else
// true only when its text is "true".
func CoerceBool(v Value) bool {
	if b, ok := v.AsBool(); ok {
		return b
	}

	return IsTrue(v.String())
}

// CoerceString is the element text, as String renders it.
func CoerceString(v Value) string {
	return v.String()
}

// CoerceList applies coerce to every element of a list Value.
// It reports false when v is not a list.
func CoerceList[T any](v Value, coerce func(Value) T) ([]T, bool) {
	items, ok := v.AsList()
	if !ok {
		return nil, false
	}

	out := make([]T, len(items))
	for i, item := range items {
		out[i] = coerce(item)
	}

	return out, true
}
