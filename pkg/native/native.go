// Package native is the host application: the Go implementations of its
// classes and the manifests that declare them.
package native

import (
	"embed"
	"io/fs"

	"github.com/pkg/errors"

	"github.com/daimatz/objhook/pkg/objrt"
)

//go:embed classes/*.yaml
var classFiles embed.FS

// natives maps class name to signature to implementation.
var natives = map[string]map[string]objrt.Imp{
	NSObject:                     nsObjectMethods,
	RecordingIndicatorController: indicatorMethods,
}

// ClassFS returns the embedded class manifests.
func ClassFS() fs.FS {
	sub, err := fs.Sub(classFiles, "classes")
	if err != nil {
		panic(err)
	}
	return sub
}

// Register links every host native into rt. It must run before the host
// classes load.
func Register(rt *objrt.Runtime) error {
	for class, methods := range natives {
		for sig, imp := range methods {
			if err := rt.RegisterNative(class, sig, imp); err != nil {
				return err
			}
		}
	}
	return nil
}

// BootOptions configure Boot.
type BootOptions struct {
	// ClassPath holds extra manifests, consulted after the embedded ones.
	ClassPath fs.FS
	// Classes to load at boot. Empty loads every known class.
	Classes []string
}

// NewClassLoader returns the host class loader: embedded manifests first,
// then classPath when non-nil.
func NewClassLoader(classPath fs.FS) *objrt.FSClassLoader {
	boot := objrt.NewFSClassLoader(ClassFS(), nil)
	if classPath == nil {
		return boot
	}
	return objrt.NewFSClassLoader(classPath, boot)
}

// Boot starts a host runtime with its natives linked and classes loaded.
func Boot(opts BootOptions) (*objrt.Runtime, error) {
	loader := NewClassLoader(opts.ClassPath)
	rt := objrt.NewRuntime(loader)
	if err := Register(rt); err != nil {
		return nil, errors.Wrap(err, "registering natives")
	}

	names := opts.Classes
	if len(names) == 0 {
		var err error
		names, err = loader.ClassNames()
		if err != nil {
			return nil, errors.Wrap(err, "listing classes")
		}
	}
	for _, name := range names {
		if _, err := rt.LoadClass(name); err != nil {
			return nil, errors.Wrapf(err, "booting %s", name)
		}
	}
	return rt, nil
}
