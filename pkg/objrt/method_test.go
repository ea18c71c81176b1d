package objrt

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daimatz/objhook/pkg/classdef"
)

func TestSetImplementation(t *testing.T) {
	rt := newTestRuntime(t)
	base, _ := rt.LookupClass("Base")
	derived, _ := rt.LookupClass("Derived")
	m, ok := base.LocalMethod(classdef.MustParseSignature("- isEnabled"))
	require.True(t, ok)

	prev := m.SetImplementation(func(self *Object, cmd Selector, args []Value) (Value, error) {
		return BoolValue(true), nil
	})
	require.NotNil(t, prev, "previous implementation is returned")

	// サブクラスからの呼び出しも差し替え後の実装を通る
	for _, obj := range []*Object{base.New(), derived.New()} {
		got, err := rt.Send(obj, "isEnabled")
		require.NoError(t, err)
		assert.True(t, got.Bool(), "receiver %s", obj)
	}

	t.Run("restore through returned imp", func(t *testing.T) {
		m.SetImplementation(prev)
		got, err := rt.Send(base.New(), "isEnabled")
		require.NoError(t, err)
		assert.False(t, got.Bool(), "field was never set")
	})

	t.Run("clear", func(t *testing.T) {
		m.SetImplementation(nil)
		assert.Nil(t, m.Implementation())
	})
}

func TestInvokeReceivesCallingConvention(t *testing.T) {
	rt := newTestRuntime(t)
	base, _ := rt.LookupClass("Base")
	m, _ := base.LocalMethod(classdef.MustParseSignature("- setEnabled:"))

	var gotSelf *Object
	var gotCmd Selector
	var gotArgs []Value
	m.SetImplementation(func(self *Object, cmd Selector, args []Value) (Value, error) {
		gotSelf, gotCmd, gotArgs = self, cmd, args
		return VoidValue(), nil
	})

	obj := base.New()
	_, err := rt.Send(obj, "setEnabled:", BoolValue(true))
	require.NoError(t, err)
	assert.Same(t, obj, gotSelf)
	assert.Equal(t, Selector("setEnabled:"), gotCmd)
	assert.Equal(t, []Value{BoolValue(true)}, gotArgs)
}

func TestInvokeRejectsMismatchedReturn(t *testing.T) {
	rt := newTestRuntime(t)
	base, _ := rt.LookupClass("Base")
	m, _ := base.LocalMethod(classdef.MustParseSignature("- isEnabled"))
	m.SetImplementation(func(self *Object, cmd Selector, args []Value) (Value, error) {
		return IntValue(1), nil
	})

	_, err := rt.Send(base.New(), "isEnabled")
	assert.ErrorContains(t, err, "implementation returned 1")
}

func TestSetImplementationConcurrentDispatch(t *testing.T) {
	rt := newTestRuntime(t)
	base, _ := rt.LookupClass("Base")
	m, _ := base.LocalMethod(classdef.MustParseSignature("- name"))

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			obj := base.New()
			for {
				select {
				case <-stop:
					return
				default:
				}
				got, err := rt.Send(obj, "name")
				if err != nil {
					t.Error(err)
					return
				}
				if s := got.CString(); s != "base" && s != "swapped" {
					t.Errorf("unexpected result %q", s)
					return
				}
			}
		}()
	}

	m.SetImplementation(func(self *Object, cmd Selector, args []Value) (Value, error) {
		return StringValue("swapped"), nil
	})
	close(stop)
	wg.Wait()

	got, err := rt.Send(base.New(), "name")
	require.NoError(t, err)
	assert.Equal(t, "swapped", got.CString())
}
