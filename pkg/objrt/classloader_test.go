package objrt

import (
	"testing"
	"testing/fstest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bootFS = fstest.MapFS{
	"NSObject.yaml": {Data: []byte(`
name: NSObject
methods:
  - signature: "- description"
    types: "@16@0:8"
`)},
	"Widget.yaml": {Data: []byte(`
name: Widget
super: NSObject
methods:
  - signature: "- isHidden"
    types: "B16@0:8"
`)},
}

var userFS = fstest.MapFS{
	"Gadget.yaml": {Data: []byte(`
name: Gadget
super: Widget
`)},
	"Widget.yaml": {Data: []byte(`
name: Widget
`)},
	"Liar.yaml": {Data: []byte(`
name: SomethingElse
`)},
	"Loop.yaml": {Data: []byte(`
name: Loop
super: Loop2
`)},
	"Loop2.yaml": {Data: []byte(`
name: Loop2
super: Loop
`)},
}

func TestFSClassLoader(t *testing.T) {
	boot := NewFSClassLoader(bootFS, nil)
	user := NewFSClassLoader(userFS, boot)

	t.Run("load from own fs", func(t *testing.T) {
		cd, err := user.LoadClass("Gadget")
		require.NoError(t, err)
		assert.Equal(t, "Widget", cd.Super)
	})

	t.Run("delegates to parent first", func(t *testing.T) {
		cd, err := user.LoadClass("Widget")
		require.NoError(t, err)
		assert.Equal(t, "NSObject", cd.Super, "boot definition wins over user definition")
	})

	t.Run("cached", func(t *testing.T) {
		a, err := user.LoadClass("Gadget")
		require.NoError(t, err)
		b, err := user.LoadClass("Gadget")
		require.NoError(t, err)
		assert.Same(t, a, b)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := user.LoadClass("Missing")
		assert.True(t, errors.Is(err, ErrClassNotFound), "got %v", err)
	})

	t.Run("name mismatch", func(t *testing.T) {
		_, err := user.LoadClass("Liar")
		assert.Error(t, err)
	})

	t.Run("class names", func(t *testing.T) {
		names, err := user.ClassNames()
		require.NoError(t, err)
		assert.Equal(t, []string{"Gadget", "Liar", "Loop", "Loop2", "NSObject", "Widget"}, names)
	})
}

func TestFSClassLoaderParentErrors(t *testing.T) {
	broken := NewFSClassLoader(fstest.MapFS{
		"Widget.yaml": {Data: []byte(`
name: Widget
methods:
  - signature: "- frobnicate"
    types: "z@:"
`)},
	}, nil)
	user := NewFSClassLoader(userFS, broken)

	t.Run("broken parent manifest is reported", func(t *testing.T) {
		_, err := user.LoadClass("Widget")
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrClassNotFound), "got %v", err)
		assert.ErrorContains(t, err, "unsupported type")
	})

	t.Run("parent miss falls through to own fs", func(t *testing.T) {
		cd, err := user.LoadClass("Gadget")
		require.NoError(t, err)
		assert.Equal(t, "Gadget", cd.Name)
	})
}

func TestRuntimeLoadClass(t *testing.T) {
	rt := NewRuntime(NewFSClassLoader(userFS, NewFSClassLoader(bootFS, nil)))

	t.Run("loads superclass chain", func(t *testing.T) {
		c, err := rt.LoadClass("Gadget")
		require.NoError(t, err)
		assert.Equal(t, "Widget", c.Super().Name())
		assert.Equal(t, "NSObject", c.Super().Super().Name())
		_, ok := rt.LookupClass("NSObject")
		assert.True(t, ok)
	})

	t.Run("idempotent", func(t *testing.T) {
		a, err := rt.LoadClass("Widget")
		require.NoError(t, err)
		b, err := rt.LoadClass("Widget")
		require.NoError(t, err)
		assert.Same(t, a, b)
	})

	t.Run("circular", func(t *testing.T) {
		_, err := rt.LoadClass("Loop")
		assert.ErrorContains(t, err, "circular")
	})

	t.Run("no loader", func(t *testing.T) {
		_, err := NewRuntime(nil).LoadClass("Widget")
		assert.True(t, errors.Is(err, ErrClassNotFound))
	})
}
