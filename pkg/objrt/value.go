package objrt

import (
	"fmt"

	"github.com/daimatz/objhook/pkg/classdef"
)

// ValueType represents the type of a Value passed to or returned from a method.
type ValueType int

const (
	TypeVoid ValueType = iota
	TypeNull
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeObject
	TypeSelector
)

// Value is an argument or return value crossing the dispatch boundary.
// The zero Value is void.
type Value struct {
	Type  ValueType
	Int   int64
	Float float64
	Ref   interface{}
}

// VoidValue is returned by methods that return nothing.
func VoidValue() Value {
	return Value{Type: TypeVoid}
}

// NullValue creates a nil object reference.
func NullValue() Value {
	return Value{Type: TypeNull}
}

// BoolValue creates a boolean Value.
func BoolValue(b bool) Value {
	v := Value{Type: TypeBool}
	if b {
		v.Int = 1
	}
	return v
}

// IntValue creates an integer Value.
func IntValue(i int64) Value {
	return Value{Type: TypeInt, Int: i}
}

// FloatValue creates a floating point Value.
func FloatValue(f float64) Value {
	return Value{Type: TypeFloat, Float: f}
}

// StringValue creates a C string Value.
func StringValue(s string) Value {
	return Value{Type: TypeString, Ref: s}
}

// ObjectValue creates an object reference. A nil object yields NullValue.
func ObjectValue(o *Object) Value {
	if o == nil {
		return NullValue()
	}
	return Value{Type: TypeObject, Ref: o}
}

// SelectorValue creates a selector Value.
func SelectorValue(sel Selector) Value {
	return Value{Type: TypeSelector, Ref: sel}
}

// Bool returns the boolean payload. Non-bool values are false.
func (v Value) Bool() bool {
	return v.Type == TypeBool && v.Int != 0
}

// Object returns the object payload, or nil.
func (v Value) Object() *Object {
	o, _ := v.Ref.(*Object)
	return o
}

// Selector returns the selector payload, or "".
func (v Value) Selector() Selector {
	s, _ := v.Ref.(Selector)
	return s
}

// CString returns the string payload, or "".
func (v Value) CString() string {
	s, _ := v.Ref.(string)
	return s
}

// Conforms reports whether v may be passed or returned where t is declared.
func (v Value) Conforms(t classdef.Type) bool {
	switch t.Kind() {
	case classdef.KindVoid:
		return v.Type == TypeVoid
	case classdef.KindBool:
		return v.Type == TypeBool
	case classdef.KindInt:
		return v.Type == TypeInt
	case classdef.KindFloat:
		return v.Type == TypeFloat
	case classdef.KindString:
		return v.Type == TypeString || v.Type == TypeNull
	case classdef.KindObject:
		return v.Type == TypeObject || v.Type == TypeNull
	case classdef.KindSelector:
		return v.Type == TypeSelector
	}
	return false
}

func (v Value) String() string {
	switch v.Type {
	case TypeVoid:
		return "void"
	case TypeNull:
		return "nil"
	case TypeBool:
		if v.Bool() {
			return "YES"
		}
		return "NO"
	case TypeInt:
		return fmt.Sprintf("%d", v.Int)
	case TypeFloat:
		return fmt.Sprintf("%g", v.Float)
	case TypeString:
		return fmt.Sprintf("%q", v.CString())
	case TypeObject:
		return v.Object().String()
	case TypeSelector:
		return "@selector(" + string(v.Selector()) + ")"
	}
	return fmt.Sprintf("Value(%d)", v.Type)
}
