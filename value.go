// Copyright 2021 The properties Authors.
// SPDX-License-Identifier: BSD-3-Clause

package properties

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the type of a Value.
type Kind int

// Kinds of values. The zero Value is the empty string.
const (
	StringKind Kind = iota
	NumberKind
	BoolKind
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case StringKind:
		return "string"
	case NumberKind:
		return "number"
	case BoolKind:
		return "bool"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// A Value is a typed property value: a number, a boolean, or a string.
// Values are immutable and can be compared with Equal.
type Value struct {
	kind Kind
	num  float64
	b    bool
	str  string
}

// StringValue returns a Value holding the given string.
func StringValue(s string) Value {
	return Value{kind: StringKind, str: s}
}

// NumberValue returns a Value holding the given number.
func NumberValue(f float64) Value {
	return Value{kind: NumberKind, num: f}
}

// BoolValue returns a Value holding the given boolean.
func BoolValue(b bool) Value {
	return Value{kind: BoolKind, b: b}
}

// ParseValue converts raw property text into a typed Value. The text
// is trimmed of surrounding whitespace, then interpreted as a number
// if it is non-empty and parses as a numeric literal, as a boolean if
// it is exactly "true" or "false", and as a string otherwise. The
// empty string and whitespace-only text yield the empty string value.
func ParseValue(raw string) Value {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		if f, ok := parseNumber(raw); ok {
			return NumberValue(f)
		}
	}
	switch raw {
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	}
	return StringValue(raw)
}

// parseNumber reports whether s is a numeric literal and returns its
// value. Decimal integers, floats, and exponent forms are tried first
// so that strings like "010" read as decimal; base-prefixed integer
// literals ("0x10", "0b101", "0o17") are tried after. NaN and
// infinities are not considered numeric.
func parseNumber(s string) (float64, bool) {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return float64(n), true
	}
	if n, err := strconv.ParseUint(s, 0, 64); err == nil {
		return float64(n), true
	}
	return 0, false
}

// Kind returns the type of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Float returns the numeric value, or zero if the value is not a
// number.
func (v Value) Float() float64 {
	return v.num
}

// Bool returns the boolean value, or false if the value is not a
// boolean.
func (v Value) Bool() bool {
	return v.b
}

// String returns the display form of the value: the string itself for
// strings, and the canonical formatting for numbers and booleans.
func (v Value) String() string {
	switch v.kind {
	case NumberKind:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case BoolKind:
		return strconv.FormatBool(v.b)
	default:
		return v.str
	}
}

// Interface returns the value as a plain Go value: float64 for
// numbers, bool for booleans, and string for strings.
func (v Value) Interface() interface{} {
	switch v.kind {
	case NumberKind:
		return v.num
	case BoolKind:
		return v.b
	default:
		return v.str
	}
}

// Equal reports whether two values have the same kind and the same
// contents.
func (v Value) Equal(o Value) bool {
	return v == o
}
