package objrt

import (
	"fmt"
	"sync"
)

// Selector is the runtime name of a method, e.g. "updateIndicatorVisibility:".
type Selector string

// Object is an instance, or the class object of a Class.
type Object struct {
	class   *Class
	isClass bool

	mu     sync.RWMutex
	fields map[string]Value
}

func newObject(cls *Class, isClass bool) *Object {
	return &Object{class: cls, isClass: isClass, fields: make(map[string]Value)}
}

// Class returns the class of the object. For a class object it is the class itself.
func (o *Object) Class() *Class {
	return o.class
}

// IsClass reports whether o is a class object.
func (o *Object) IsClass() bool {
	return o.isClass
}

// Runtime returns the runtime the object lives in.
func (o *Object) Runtime() *Runtime {
	return o.class.rt
}

// Get returns a field value. Missing fields read as NullValue.
func (o *Object) Get(name string) Value {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.fields[name]
	if !ok {
		return NullValue()
	}
	return v
}

// Set stores a field value.
func (o *Object) Set(name string, v Value) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fields[name] = v
}

func (o *Object) String() string {
	if o == nil {
		return "nil"
	}
	if o.isClass {
		return o.class.name
	}
	return fmt.Sprintf("<%s: %p>", o.class.name, o)
}
