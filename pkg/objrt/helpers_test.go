package objrt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daimatz/objhook/pkg/classdef"
)

func method(sig, types string) classdef.MethodDef {
	return classdef.MethodDef{
		Signature: classdef.MustParseSignature(sig),
		Types:     classdef.MustParseEncoding(types),
	}
}

// newTestRuntime defines Base and Derived (a subclass of Base) with a few
// natives linked.
func newTestRuntime(t *testing.T) *Runtime {
	t.Helper()
	rt := NewRuntime(nil)

	require.NoError(t, rt.RegisterNative("Base", "- name", func(self *Object, cmd Selector, args []Value) (Value, error) {
		return StringValue("base"), nil
	}))
	require.NoError(t, rt.RegisterNative("Base", "- isEnabled", func(self *Object, cmd Selector, args []Value) (Value, error) {
		return BoolValue(self.Get("enabled").Bool()), nil
	}))
	require.NoError(t, rt.RegisterNative("Base", "- setEnabled:", func(self *Object, cmd Selector, args []Value) (Value, error) {
		self.Set("enabled", args[0])
		return VoidValue(), nil
	}))
	require.NoError(t, rt.RegisterNative("Base", "+ kind", func(self *Object, cmd Selector, args []Value) (Value, error) {
		return IntValue(7), nil
	}))
	require.NoError(t, rt.RegisterNative("Derived", "- name", func(self *Object, cmd Selector, args []Value) (Value, error) {
		return StringValue("derived"), nil
	}))

	_, err := rt.DefineClass(&classdef.ClassDef{
		Name: "Base",
		Methods: []classdef.MethodDef{
			method("- name", "*16@0:8"),
			method("- isEnabled", "B16@0:8"),
			method("- setEnabled:", "v20@0:8B16"),
			method("+ kind", "q16#0:8"),
			method("- unlinked", "v16@0:8"),
		},
	})
	require.NoError(t, err)
	_, err = rt.DefineClass(&classdef.ClassDef{
		Name:    "Derived",
		Super:   "Base",
		Methods: []classdef.MethodDef{method("- name", "*16@0:8")},
	})
	require.NoError(t, err)
	return rt
}
