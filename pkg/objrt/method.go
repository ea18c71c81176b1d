package objrt

import (
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/daimatz/objhook/pkg/classdef"
)

// Imp is executable method code. It receives the receiver, the selector the
// method was invoked with, and the declared arguments.
type Imp func(self *Object, cmd Selector, args []Value) (Value, error)

// Method is one entry of a class's method table.
type Method struct {
	class *Class
	sig   classdef.Signature
	types classdef.Encoding
	imp   atomic.Pointer[Imp]
}

// Class returns the class that declares the method.
func (m *Method) Class() *Class {
	return m.class
}

// Signature returns the scope and selector of the method.
func (m *Method) Signature() classdef.Signature {
	return m.sig
}

// Selector returns the method's selector.
func (m *Method) Selector() Selector {
	return Selector(m.sig.Selector)
}

// Types returns the method's type encoding.
func (m *Method) Types() classdef.Encoding {
	return m.types
}

// Implementation returns the current implementation, or nil if none is linked.
func (m *Method) Implementation() Imp {
	p := m.imp.Load()
	if p == nil {
		return nil
	}
	return *p
}

// SetImplementation replaces the implementation and returns the previous one.
// The store is atomic; calls already in flight finish on the code they loaded.
func (m *Method) SetImplementation(imp Imp) Imp {
	var next *Imp
	if imp != nil {
		next = &imp
	}
	prev := m.imp.Swap(next)
	if prev == nil {
		return nil
	}
	return *prev
}

// Invoke checks the arguments against the type encoding, runs the current
// implementation and checks its result.
func (m *Method) Invoke(self *Object, args []Value) (Value, error) {
	params := m.types.Params()
	if len(args) != len(params) {
		return Value{}, errors.Errorf("%s: got %d arguments, want %d", m, len(args), len(params))
	}
	for i, arg := range args {
		if !arg.Conforms(params[i]) {
			return Value{}, errors.Errorf("%s: argument %d is %s, declared %q", m, i, arg, byte(params[i]))
		}
	}

	imp := m.Implementation()
	if imp == nil {
		return Value{}, &UnimplementedError{Method: m.String()}
	}
	ret, err := imp(self, m.Selector(), args)
	if err != nil {
		return Value{}, err
	}
	if !ret.Conforms(m.types.Return) {
		return Value{}, errors.Errorf("%s: implementation returned %s, declared %q", m, ret, byte(m.types.Return))
	}
	return ret, nil
}

func (m *Method) String() string {
	return m.sig.Bracketed(m.class.name)
}
