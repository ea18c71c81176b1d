package objrt

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/daimatz/objhook/pkg/classdef"
)

// manifestExt is the file extension of class manifests.
const manifestExt = ".yaml"

// ErrClassNotFound is returned by class loaders for unknown class names.
var ErrClassNotFound = errors.New("class not found")

// ClassLoader loads class definitions by class name.
type ClassLoader interface {
	LoadClass(name string) (*classdef.ClassDef, error)
}

// ClassLister is implemented by loaders that can enumerate their classes.
type ClassLister interface {
	ClassNames() ([]string, error)
}

// FSClassLoader loads <Name>.yaml manifests from a file system, delegating to
// the parent first.
type FSClassLoader struct {
	FS     fs.FS
	Parent ClassLoader

	mu    sync.Mutex
	cache map[string]*classdef.ClassDef
}

// NewFSClassLoader creates a new FSClassLoader. parent may be nil.
func NewFSClassLoader(fsys fs.FS, parent ClassLoader) *FSClassLoader {
	return &FSClassLoader{
		FS:     fsys,
		Parent: parent,
		cache:  make(map[string]*classdef.ClassDef),
	}
}

func (cl *FSClassLoader) LoadClass(name string) (*classdef.ClassDef, error) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if cd, ok := cl.cache[name]; ok {
		return cd, nil
	}
	if cl.Parent != nil {
		cd, err := cl.Parent.LoadClass(name)
		if err == nil {
			return cd, nil
		}
		if !errors.Is(err, ErrClassNotFound) {
			return nil, err
		}
	}

	f, err := cl.FS.Open(name + manifestExt)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrClassNotFound, "loading %s", name)
		}
		return nil, errors.Wrapf(err, "opening manifest for %s", name)
	}
	defer f.Close()

	cd, err := classdef.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing manifest for %s", name)
	}
	if cd.Name != name {
		return nil, errors.Errorf("manifest %s%s declares class %s", name, manifestExt, cd.Name)
	}
	cl.cache[name] = cd
	return cd, nil
}

// ClassNames lists every class this loader or its parent can load.
func (cl *FSClassLoader) ClassNames() ([]string, error) {
	seen := make(map[string]bool)
	if lister, ok := cl.Parent.(ClassLister); ok {
		names, err := lister.ClassNames()
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			seen[n] = true
		}
	}

	matches, err := fs.Glob(cl.FS, "*"+manifestExt)
	if err != nil {
		return nil, errors.Wrap(err, "listing manifests")
	}
	for _, m := range matches {
		seen[strings.TrimSuffix(path.Base(m), manifestExt)] = true
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}
