package intercept

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/daimatz/objhook/pkg/classdef"
	"github.com/daimatz/objhook/pkg/objrt"
)

var (
	objectType   = reflect.TypeOf((*objrt.Object)(nil))
	selectorType = reflect.TypeOf(objrt.Selector(""))
	impType      = reflect.TypeOf(objrt.Imp(nil))
)

// Replacement is an implementation built for one calling convention.
// Build it with Implement.
type Replacement struct {
	types classdef.Encoding
	imp   objrt.Imp
}

// Types returns the type encoding the replacement was checked against.
func (r Replacement) Types() classdef.Encoding {
	return r.types
}

// Implement checks fn against m's calling convention and wraps it as a
// Replacement. fn is either an objrt.Imp, or a typed function
//
//	func(self *objrt.Object, cmd objrt.Selector, <declared args>) [result]
//
// where each declared argument and the result use the Go type of their
// encoding: bool, int64, float64, string, *objrt.Object or objrt.Selector.
// A void method takes a function with no results.
func Implement(m *objrt.Method, fn interface{}) (Replacement, error) {
	if m == nil {
		return Replacement{}, ErrMethodNotFound
	}
	types := m.Types()

	switch f := fn.(type) {
	case nil:
		return Replacement{}, errors.Wrapf(ErrConventionMismatch, "%s: nil replacement", m)
	case objrt.Imp:
		if f == nil {
			return Replacement{}, errors.Wrapf(ErrConventionMismatch, "%s: nil replacement", m)
		}
		return Replacement{types: types, imp: recoverImp(m.String(), f)}, nil
	}

	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return Replacement{}, errors.Wrapf(ErrConventionMismatch, "%s: replacement is %T, not a function", m, fn)
	}
	if fv.Type().ConvertibleTo(impType) {
		return Implement(m, fv.Convert(impType).Interface())
	}
	if err := checkConvention(fv.Type(), types); err != nil {
		return Replacement{}, errors.Wrapf(err, "%s", m)
	}

	params := types.Params()
	ret := types.Return
	imp := func(self *objrt.Object, cmd objrt.Selector, args []objrt.Value) (objrt.Value, error) {
		in := make([]reflect.Value, 0, len(args)+2)
		in = append(in, reflect.ValueOf(self), reflect.ValueOf(cmd))
		for i, a := range args {
			in = append(in, toReflect(a, params[i]))
		}
		out := fv.Call(in)
		if ret == classdef.TypeVoid {
			return objrt.VoidValue(), nil
		}
		return fromReflect(out[0], ret), nil
	}
	return Replacement{types: types, imp: recoverImp(m.String(), imp)}, nil
}

// checkConvention compares a function type against a type encoding.
func checkConvention(ft reflect.Type, enc classdef.Encoding) error {
	if ft.IsVariadic() {
		return errors.Wrap(ErrConventionMismatch, "variadic replacement")
	}
	params := enc.Params()
	if ft.NumIn() != len(params)+2 {
		return errors.Wrapf(ErrConventionMismatch, "replacement takes %d parameters, want receiver, selector and %d arguments", ft.NumIn(), len(params))
	}
	if ft.In(0) != objectType {
		return errors.Wrapf(ErrConventionMismatch, "receiver parameter is %s, want %s", ft.In(0), objectType)
	}
	if ft.In(1) != selectorType {
		return errors.Wrapf(ErrConventionMismatch, "selector parameter is %s, want %s", ft.In(1), selectorType)
	}
	for i, p := range params {
		want := GoType(p)
		if got := ft.In(i + 2); got != want {
			return errors.Wrapf(ErrConventionMismatch, "argument %d is %s, want %s for %q", i, got, want, byte(p))
		}
	}

	if enc.IsVoid() {
		if ft.NumOut() != 0 {
			return errors.Wrapf(ErrConventionMismatch, "void method, replacement returns %d values", ft.NumOut())
		}
		return nil
	}
	want := GoType(enc.Return)
	if ft.NumOut() != 1 || ft.Out(0) != want {
		return errors.Wrapf(ErrConventionMismatch, "replacement must return exactly one %s for %q", want, byte(enc.Return))
	}
	return nil
}

// GoType returns the Go type a typed replacement uses for t, or nil for void.
func GoType(t classdef.Type) reflect.Type {
	switch t.Kind() {
	case classdef.KindBool:
		return reflect.TypeOf(false)
	case classdef.KindInt:
		return reflect.TypeOf(int64(0))
	case classdef.KindFloat:
		return reflect.TypeOf(float64(0))
	case classdef.KindString:
		return reflect.TypeOf("")
	case classdef.KindObject:
		return objectType
	case classdef.KindSelector:
		return selectorType
	}
	return nil
}

func toReflect(v objrt.Value, t classdef.Type) reflect.Value {
	switch t.Kind() {
	case classdef.KindBool:
		return reflect.ValueOf(v.Bool())
	case classdef.KindInt:
		return reflect.ValueOf(v.Int)
	case classdef.KindFloat:
		return reflect.ValueOf(v.Float)
	case classdef.KindString:
		return reflect.ValueOf(v.CString())
	case classdef.KindObject:
		return reflect.ValueOf(v.Object())
	case classdef.KindSelector:
		return reflect.ValueOf(v.Selector())
	}
	return reflect.Value{}
}

func fromReflect(rv reflect.Value, t classdef.Type) objrt.Value {
	switch t.Kind() {
	case classdef.KindBool:
		return objrt.BoolValue(rv.Bool())
	case classdef.KindInt:
		return objrt.IntValue(rv.Int())
	case classdef.KindFloat:
		return objrt.FloatValue(rv.Float())
	case classdef.KindString:
		return objrt.StringValue(rv.String())
	case classdef.KindObject:
		o, _ := rv.Interface().(*objrt.Object)
		return objrt.ObjectValue(o)
	case classdef.KindSelector:
		return objrt.SelectorValue(objrt.Selector(rv.String()))
	}
	return objrt.VoidValue()
}

// recoverImp turns a panicking replacement into a dispatch error so a hook
// cannot take the host down.
func recoverImp(name string, imp objrt.Imp) objrt.Imp {
	return func(self *objrt.Object, cmd objrt.Selector, args []objrt.Value) (ret objrt.Value, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("replacement for %s panicked: %v", name, r)
			}
		}()
		return imp(self, cmd, args)
	}
}
