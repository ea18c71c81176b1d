package objrt

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/daimatz/objhook/pkg/classdef"
)

// Runtime is a live object runtime: a class table, method tables with
// swappable implementations, and message dispatch.
type Runtime struct {
	loader ClassLoader

	mu      sync.RWMutex
	classes map[string]*Class
	natives map[nativeKey]Imp

	loadMu  sync.Mutex
	stopped atomic.Bool
}

type nativeKey struct {
	class string
	sig   classdef.Signature
}

// NewRuntime creates a runtime that loads classes through loader.
// loader may be nil when every class is defined directly.
func NewRuntime(loader ClassLoader) *Runtime {
	return &Runtime{
		loader:  loader,
		classes: make(map[string]*Class),
		natives: make(map[nativeKey]Imp),
	}
}

// Available reports whether the runtime accepts messages.
func (rt *Runtime) Available() bool {
	return !rt.stopped.Load()
}

// Shutdown stops the runtime. Later sends fail with ErrStopped.
func (rt *Runtime) Shutdown() {
	rt.stopped.Store(true)
}

// RegisterNative registers the Go implementation of a declared method.
// Natives are linked when the declaring class is defined, so they must be
// registered before it loads.
func (rt *Runtime) RegisterNative(className, signature string, imp Imp) error {
	sig, err := classdef.ParseSignature(signature)
	if err != nil {
		return errors.Wrapf(err, "registering native %s %s", className, signature)
	}
	if sig.Scope == classdef.ScopeAny {
		return errors.Errorf("registering native %s %s: signature needs a scope prefix", className, signature)
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.natives[nativeKey{class: className, sig: sig}] = imp
	return nil
}

// LookupClass returns a class from the live class table. It never loads.
func (rt *Runtime) LookupClass(name string) (*Class, bool) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	c, ok := rt.classes[name]
	return c, ok
}

// Classes returns every class in the live class table, sorted by name.
func (rt *Runtime) Classes() []*Class {
	rt.mu.RLock()
	out := make([]*Class, 0, len(rt.classes))
	for _, c := range rt.classes {
		out = append(out, c)
	}
	rt.mu.RUnlock()
	sortClasses(out)
	return out
}

// LoadClass returns the named class, loading it and its superclasses through
// the class loader if it is not in the class table yet.
func (rt *Runtime) LoadClass(name string) (*Class, error) {
	rt.loadMu.Lock()
	defer rt.loadMu.Unlock()
	return rt.loadClassLocked(name, make(map[string]bool))
}

func (rt *Runtime) loadClassLocked(name string, loading map[string]bool) (*Class, error) {
	if c, ok := rt.LookupClass(name); ok {
		return c, nil
	}
	if rt.loader == nil {
		return nil, errors.Wrapf(ErrClassNotFound, "loading %s: no class loader", name)
	}
	if loading[name] {
		return nil, errors.Errorf("loading %s: circular superclass chain", name)
	}
	loading[name] = true

	def, err := rt.loader.LoadClass(name)
	if err != nil {
		return nil, err
	}
	if def.Super != "" {
		if _, err := rt.loadClassLocked(def.Super, loading); err != nil {
			return nil, errors.Wrapf(err, "loading superclass of %s", name)
		}
	}
	return rt.DefineClass(def)
}

// DefineClass adds a class to the class table. Its superclass must already be
// defined. Registered natives are linked into the new method table.
func (rt *Runtime) DefineClass(def *classdef.ClassDef) (*Class, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if _, exists := rt.classes[def.Name]; exists {
		return nil, errors.Errorf("class %s already defined", def.Name)
	}
	var super *Class
	if def.Super != "" {
		var ok bool
		super, ok = rt.classes[def.Super]
		if !ok {
			return nil, errors.Errorf("defining %s: superclass %s not defined", def.Name, def.Super)
		}
	}

	c := &Class{
		name:    def.Name,
		super:   super,
		rt:      rt,
		methods: make(map[classdef.Signature]*Method, len(def.Methods)),
	}
	c.object = newObject(c, true)
	for _, md := range def.Methods {
		if _, dup := c.methods[md.Signature]; dup {
			return nil, errors.Errorf("defining %s: duplicate method %s", def.Name, md.Signature)
		}
		m := &Method{class: c, sig: md.Signature, types: md.Types}
		if imp, ok := rt.natives[nativeKey{class: def.Name, sig: md.Signature}]; ok {
			m.SetImplementation(imp)
		}
		c.methods[md.Signature] = m
		c.order = append(c.order, m)
	}
	rt.classes[def.Name] = c
	return c, nil
}

// Send dispatches sel to recv. Class objects receive class-scope methods,
// instances receive instance-scope methods; both search superclasses.
// Messages to nil return a void value.
func (rt *Runtime) Send(recv *Object, sel Selector, args ...Value) (Value, error) {
	if !rt.Available() {
		return Value{}, ErrStopped
	}
	if recv == nil {
		return VoidValue(), nil
	}

	scope := classdef.ScopeInstance
	if recv.IsClass() {
		scope = classdef.ScopeClass
	}
	cls := recv.Class()
	m, ok := cls.LookupMethod(classdef.Signature{Scope: scope, Selector: string(sel)})
	if !ok {
		return Value{}, &UnrecognizedSelectorError{ClassName: cls.Name(), Selector: sel, ClassSide: recv.IsClass()}
	}
	return m.Invoke(recv, args)
}

// RespondsTo reports whether recv has a method for sel.
func (rt *Runtime) RespondsTo(recv *Object, sel Selector) bool {
	if recv == nil {
		return false
	}
	scope := classdef.ScopeInstance
	if recv.IsClass() {
		scope = classdef.ScopeClass
	}
	_, ok := recv.Class().LookupMethod(classdef.Signature{Scope: scope, Selector: string(sel)})
	return ok
}
