package types

import (
	"testing"
)

func TestValueString(t *testing.T) {
	testcases := []struct {
		val  Value
		want string
	}{
		{NewInteger(42), "42"},
		{NewInteger(-7), "-7"},
		{NewFloat(1.5), "1.5"},
		{NewFloat(2), "2"},
		{NewBoolean(true), "true"},
		{NewBoolean(false), "false"},
		{NewVarchar("daylight"), "daylight"},
	}

	for _, tt := range testcases {
		if got := tt.val.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestValueCompareEquals(t *testing.T) {
	if !NewInteger(10).CompareEquals(NewInteger(10)) {
		t.Error("equal integers should compare equal")
	}
	if NewInteger(10).CompareEquals(NewInteger(11)) {
		t.Error("distinct integers should not compare equal")
	}
	if NewInteger(1).CompareEquals(NewFloat(1)) {
		t.Error("values of different types should not compare equal")
	}
	if !NewVarchar("a").CompareEquals(NewVarchar("a")) {
		t.Error("equal varchars should compare equal")
	}
}

func TestReturnTypeNames(t *testing.T) {
	testcases := []struct {
		rt   ReturnType
		want string
	}{
		{IntType, "int"},
		{DoubleType, "double"},
		{StringType, "string"},
		{BoolType, "bool"},
		{ErrType, "error"},
	}

	for _, tt := range testcases {
		if got := tt.rt.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}

	if !IntType.IsNumeric() || !DoubleType.IsNumeric() {
		t.Error("int and double are numeric")
	}
	if StringType.IsNumeric() || BoolType.IsNumeric() || ErrType.IsNumeric() {
		t.Error("string, bool and error are not numeric")
	}
}
