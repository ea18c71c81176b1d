package intercept

import (
	"github.com/pkg/errors"

	"github.com/daimatz/objhook/pkg/objrt"
)

// Install makes r the active implementation of m for every later call,
// including calls from the runtime's own dispatch and from subclasses that
// inherit m. The original implementation is discarded.
//
// Install is a single atomic store. A call already in flight on another
// goroutine completes on whichever implementation it loaded.
func Install(m *objrt.Method, r Replacement) error {
	if m == nil {
		return ErrMethodNotFound
	}
	if r.imp == nil {
		return errors.Wrapf(ErrConventionMismatch, "%s: empty replacement", m)
	}
	if !r.types.Equal(m.Types()) {
		return errors.Wrapf(ErrConventionMismatch, "%s: replacement built for %s, method is %s", m, r.types, m.Types())
	}
	m.SetImplementation(r.imp)
	return nil
}
