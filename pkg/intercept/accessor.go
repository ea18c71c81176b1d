// Package intercept resolves classes and methods in a live object runtime and
// swaps method implementations.
package intercept

import (
	"github.com/daimatz/objhook/pkg/classdef"
	"github.com/daimatz/objhook/pkg/objrt"
)

// Provider is the reflective facility of a live runtime.
// *objrt.Runtime implements it.
type Provider interface {
	Available() bool
	LookupClass(name string) (*objrt.Class, bool)
}

// Accessor answers class and method lookups against a Provider.
type Accessor struct {
	p Provider
}

// NewAccessor returns an Accessor, or ErrRuntimeUnavailable when p is nil or
// reports itself unavailable.
func NewAccessor(p Provider) (*Accessor, error) {
	if p == nil || !p.Available() {
		return nil, ErrRuntimeUnavailable
	}
	return &Accessor{p: p}, nil
}

// ResolveClass looks a class up in the live class table.
func (a *Accessor) ResolveClass(name string) (*objrt.Class, bool) {
	if name == "" {
		return nil, false
	}
	return a.p.LookupClass(name)
}

// ResolveMethod resolves "- sel", "+ sel" or a bare selector on cls,
// searching superclasses. A bare selector that names both an instance and a
// class method is ambiguous and resolves to nothing.
func (a *Accessor) ResolveMethod(cls *objrt.Class, signature string) (*objrt.Method, bool) {
	if cls == nil {
		return nil, false
	}
	sig, err := classdef.ParseSignature(signature)
	if err != nil {
		return nil, false
	}
	if sig.Scope != classdef.ScopeAny {
		return cls.LookupMethod(sig)
	}

	inst, instOK := cls.LookupMethod(classdef.Signature{Scope: classdef.ScopeInstance, Selector: sig.Selector})
	meta, metaOK := cls.LookupMethod(classdef.Signature{Scope: classdef.ScopeClass, Selector: sig.Selector})
	switch {
	case instOK && !metaOK:
		return inst, true
	case metaOK && !instOK:
		return meta, true
	}
	return nil, false
}
