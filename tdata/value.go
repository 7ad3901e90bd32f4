// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package tdata // import "go.opentelemetry.io/stdouttext/tdata"

// ValueType specifies the type of Value.
type ValueType int32

const (
	ValueTypeEmpty ValueType = iota
	ValueTypeString
	ValueTypeInt
	ValueTypeDouble
	ValueTypeBool
	ValueTypeSlice
)

// String returns the string representation of the ValueType.
func (vt ValueType) String() string {
	switch vt {
	case ValueTypeEmpty:
		return "Empty"
	case ValueTypeString:
		return "String"
	case ValueTypeInt:
		return "Int"
	case ValueTypeDouble:
		return "Double"
	case ValueTypeBool:
		return "Bool"
	case ValueTypeSlice:
		return "Slice"
	}
	return ""
}

// Value is a dynamically typed attribute value. The zero Value has
// ValueTypeEmpty, which stands for an absent value (e.g. a log record
// without a body).
//
// String values remember whether they originate from a long-lived literal
// ("static") or from a heap-allocated string ("owned"). The distinction is
// carried for display only; the content is the same either way.
type Value struct {
	typ    ValueType
	str    string
	static bool
	i      int64
	d      float64
	b      bool
	slice  []Value
}

// StringValue returns a Value holding an owned string.
func StringValue(s string) Value {
	return Value{typ: ValueTypeString, str: s}
}

// StaticStringValue returns a Value holding a static string literal.
func StaticStringValue(s string) Value {
	return Value{typ: ValueTypeString, str: s, static: true}
}

// IntValue returns a Value holding an int64.
func IntValue(i int64) Value {
	return Value{typ: ValueTypeInt, i: i}
}

// DoubleValue returns a Value holding a float64.
func DoubleValue(d float64) Value {
	return Value{typ: ValueTypeDouble, d: d}
}

// BoolValue returns a Value holding a bool.
func BoolValue(b bool) Value {
	return Value{typ: ValueTypeBool, b: b}
}

// SliceValue returns a Value holding the given elements, in order.
func SliceValue(elems ...Value) Value {
	return Value{typ: ValueTypeSlice, slice: elems}
}

// Type returns the type of this Value.
func (v Value) Type() ValueType { return v.typ }

// Str returns the string content. Valid only for ValueTypeString.
func (v Value) Str() string { return v.str }

// IsStatic reports whether a string Value originates from a static literal.
func (v Value) IsStatic() bool { return v.static }

// Int returns the int content. Valid only for ValueTypeInt.
func (v Value) Int() int64 { return v.i }

// Double returns the float content. Valid only for ValueTypeDouble.
func (v Value) Double() float64 { return v.d }

// Bool returns the bool content. Valid only for ValueTypeBool.
func (v Value) Bool() bool { return v.b }

// Slice returns the element list. Valid only for ValueTypeSlice.
func (v Value) Slice() []Value { return v.slice }
