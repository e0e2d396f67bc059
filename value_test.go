// Copyright 2021 The properties Authors.
// SPDX-License-Identifier: BSD-3-Clause

package properties

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Value
	}{
		{
			name: "Integer",
			raw:  "1",
			want: NumberValue(1),
		},
		{
			name: "Float",
			raw:  "3.14",
			want: NumberValue(3.14),
		},
		{
			name: "NegativeFloat",
			raw:  "-3.5",
			want: NumberValue(-3.5),
		},
		{
			name: "LeadingPlus",
			raw:  "+5",
			want: NumberValue(5),
		},
		{
			name: "Exponent",
			raw:  "1e3",
			want: NumberValue(1000),
		},
		{
			name: "LeadingZeroIsDecimal",
			raw:  "010",
			want: NumberValue(10),
		},
		{
			name: "Hex",
			raw:  "0x10",
			want: NumberValue(16),
		},
		{
			name: "NegativeHex",
			raw:  "-0x10",
			want: NumberValue(-16),
		},
		{
			name: "Binary",
			raw:  "0b101",
			want: NumberValue(5),
		},
		{
			name: "Octal",
			raw:  "0o17",
			want: NumberValue(15),
		},
		{
			name: "DigitUnderscores",
			raw:  "1_000",
			want: NumberValue(1000),
		},
		{
			name: "SurroundingWhitespaceNumber",
			raw:  " 42 ",
			want: NumberValue(42),
		},
		{
			name: "True",
			raw:  "true",
			want: BoolValue(true),
		},
		{
			name: "False",
			raw:  "false",
			want: BoolValue(false),
		},
		{
			name: "TitleCaseTrueIsString",
			raw:  "True",
			want: StringValue("True"),
		},
		{
			name: "UpperCaseFalseIsString",
			raw:  "FALSE",
			want: StringValue("FALSE"),
		},
		{
			name: "PlainString",
			raw:  "localhost",
			want: StringValue("localhost"),
		},
		{
			name: "Empty",
			raw:  "",
			want: StringValue(""),
		},
		{
			name: "WhitespaceOnly",
			raw:  "   ",
			want: StringValue(""),
		},
		{
			name: "SurroundingWhitespaceString",
			raw:  "  hello world  ",
			want: StringValue("hello world"),
		},
		{
			name: "NaNIsString",
			raw:  "NaN",
			want: StringValue("NaN"),
		},
		{
			name: "InfIsString",
			raw:  "inf",
			want: StringValue("inf"),
		},
		{
			name: "InfinityIsString",
			raw:  "Infinity",
			want: StringValue("Infinity"),
		},
		{
			name: "DottedVersionIsString",
			raw:  "1.2.3",
			want: StringValue("1.2.3"),
		},
		{
			name: "TrailingGarbageIsString",
			raw:  "12abc",
			want: StringValue("12abc"),
		},
		{
			name: "InteriorSpaceIsString",
			raw:  "1 2",
			want: StringValue("1 2"),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ParseValue(test.raw)
			if !got.Equal(test.want) {
				t.Errorf("ParseValue(%q) = %v (%v); want %v (%v)",
					test.raw, got, got.Kind(), test.want, test.want.Kind())
			}
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{NumberValue(1), "1"},
		{NumberValue(3.14), "3.14"},
		{NumberValue(-0.5), "-0.5"},
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
		{StringValue("localhost"), "localhost"},
		{StringValue(""), ""},
	}
	for _, test := range tests {
		if got := test.value.String(); got != test.want {
			t.Errorf("%#v.String() = %q; want %q", test.value, got, test.want)
		}
	}
}

func TestValueAccessors(t *testing.T) {
	if got := NumberValue(42).Float(); got != 42 {
		t.Errorf("NumberValue(42).Float() = %v; want 42", got)
	}
	if got := StringValue("42").Float(); got != 0 {
		t.Errorf("StringValue(\"42\").Float() = %v; want 0", got)
	}
	if !BoolValue(true).Bool() {
		t.Error("BoolValue(true).Bool() = false; want true")
	}
	if StringValue("true").Bool() {
		t.Error("StringValue(\"true\").Bool() = true; want false")
	}
	if got := (Value{}).Kind(); got != StringKind {
		t.Errorf("zero Value kind = %v; want %v", got, StringKind)
	}
}

func TestValueInterface(t *testing.T) {
	tests := []struct {
		value Value
		want  interface{}
	}{
		{NumberValue(1.5), 1.5},
		{BoolValue(true), true},
		{StringValue("x"), "x"},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, test.value.Interface()); diff != "" {
			t.Errorf("%v.Interface() (-want +got):\n%s", test.value, diff)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{StringKind, "string"},
		{NumberKind, "number"},
		{BoolKind, "bool"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("Kind(%d).String() = %q; want %q", int(test.kind), got, test.want)
		}
	}
}
