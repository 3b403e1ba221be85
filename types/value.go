package types

import (
	"bytes"
	"encoding/binary"
	"math"
	"strconv"
)

// A Value is a view over a piece of SQL data together with its type.
// All values have a type and comparison functions, and implement other
// type-specific functionality.
type Value struct {
	valueType TypeID
	integer   *int32
	boolean   *bool
	varchar   *string
	float     *float64
}

func NewInteger(value int32) Value {
	return Value{Integer, &value, nil, nil, nil}
}

func NewFloat(value float64) Value {
	return Value{Float, nil, nil, nil, &value}
}

func NewBoolean(value bool) Value {
	return Value{Boolean, nil, &value, nil, nil}
}

func NewVarchar(value string) Value {
	return Value{Varchar, nil, nil, &value, nil}
}

func (v Value) ValueType() TypeID {
	return v.valueType
}

func (v Value) ToInteger() int32 {
	return *v.integer
}

func (v Value) ToFloat() float64 {
	return *v.float
}

func (v Value) ToBoolean() bool {
	return *v.boolean
}

func (v Value) ToVarchar() string {
	return *v.varchar
}

func (v Value) CompareEquals(right Value) bool {
	if v.valueType != right.valueType {
		return false
	}
	switch v.valueType {
	case Integer:
		return *v.integer == *right.integer
	case Float:
		return *v.float == *right.float
	case Varchar:
		return *v.varchar == *right.varchar
	case Boolean:
		return *v.boolean == *right.boolean
	}
	return false
}

// Serialize converts the value to a byte sequence. Hash functions and
// fingerprints are computed over this form.
func (v Value) Serialize() []byte {
	switch v.valueType {
	case Integer:
		buf := new(bytes.Buffer)
		binary.Write(buf, binary.LittleEndian, *v.integer)
		return buf.Bytes()
	case Float:
		buf := new(bytes.Buffer)
		binary.Write(buf, binary.LittleEndian, math.Float64bits(*v.float))
		return buf.Bytes()
	case Varchar:
		return []byte(*v.varchar)
	case Boolean:
		if *v.boolean {
			return []byte{1}
		}
		return []byte{0}
	}
	return []byte{}
}

// String prints the value in its native decimal/text form without any
// type annotation. Expression rendering wraps this with the kind tag.
func (v Value) String() string {
	switch v.valueType {
	case Integer:
		return strconv.FormatInt(int64(*v.integer), 10)
	case Float:
		return strconv.FormatFloat(*v.float, 'f', -1, 64)
	case Varchar:
		return *v.varchar
	case Boolean:
		if *v.boolean {
			return "true"
		}
		return "false"
	}
	return "invalid"
}
