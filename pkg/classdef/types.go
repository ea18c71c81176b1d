package classdef

// Scope is the dispatch scope of a method.
type Scope int

const (
	// ScopeAny matches either scope. Only valid in lookups.
	ScopeAny Scope = iota
	// ScopeInstance methods are sent to instances ("-").
	ScopeInstance
	// ScopeClass methods are sent to the class object ("+").
	ScopeClass
)

// Prefix returns the signature prefix for the scope, or "" for ScopeAny.
func (s Scope) Prefix() string {
	switch s {
	case ScopeInstance:
		return "-"
	case ScopeClass:
		return "+"
	}
	return ""
}

func (s Scope) String() string {
	switch s {
	case ScopeInstance:
		return "instance"
	case ScopeClass:
		return "class"
	}
	return "any"
}

// ClassDef is a loadable class definition.
type ClassDef struct {
	Name    string
	Super   string
	Methods []MethodDef
}

// MethodDef declares one method of a class.
type MethodDef struct {
	Signature Signature
	Types     Encoding
}

// FindMethod finds a method by scope and selector.
// A ScopeAny signature matches the first method with that selector.
func (cd *ClassDef) FindMethod(sig Signature) *MethodDef {
	for i := range cd.Methods {
		m := &cd.Methods[i]
		if m.Signature.Selector != sig.Selector {
			continue
		}
		if sig.Scope == ScopeAny || m.Signature.Scope == sig.Scope {
			return m
		}
	}
	return nil
}
