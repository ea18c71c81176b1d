package objrt

import (
	"sort"

	"github.com/daimatz/objhook/pkg/classdef"
)

// Class is a class in the live class table.
type Class struct {
	name    string
	super   *Class
	rt      *Runtime
	methods map[classdef.Signature]*Method
	order   []*Method
	object  *Object
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// Super returns the superclass, or nil for a root class.
func (c *Class) Super() *Class {
	return c.super
}

// Object returns the class object, the receiver of class-scope methods.
func (c *Class) Object() *Object {
	return c.object
}

// New allocates an instance with no fields set.
func (c *Class) New() *Object {
	return newObject(c, false)
}

// IsSubclassOf reports whether c is other or inherits from it.
func (c *Class) IsSubclassOf(other *Class) bool {
	for k := c; k != nil; k = k.super {
		if k == other {
			return true
		}
	}
	return false
}

// LocalMethod finds a method declared by c itself.
func (c *Class) LocalMethod(sig classdef.Signature) (*Method, bool) {
	m, ok := c.methods[sig]
	return m, ok
}

// LookupMethod finds a method on c or its superclasses. sig must carry a
// concrete scope.
func (c *Class) LookupMethod(sig classdef.Signature) (*Method, bool) {
	if sig.Scope == classdef.ScopeAny {
		return nil, false
	}
	for k := c; k != nil; k = k.super {
		if m, ok := k.methods[sig]; ok {
			return m, true
		}
	}
	return nil, false
}

// Methods returns the methods declared by c, in declaration order.
func (c *Class) Methods() []*Method {
	out := make([]*Method, len(c.order))
	copy(out, c.order)
	return out
}

// sortClasses orders classes by name.
func sortClasses(cs []*Class) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].name < cs[j].name })
}
