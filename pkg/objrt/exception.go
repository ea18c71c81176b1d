package objrt

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrStopped is returned when messaging a runtime that has been shut down.
var ErrStopped = errors.New("objrt: runtime stopped")

// UnrecognizedSelectorError is returned when no method answers a selector.
type UnrecognizedSelectorError struct {
	ClassName string
	Selector  Selector
	ClassSide bool
}

func (e *UnrecognizedSelectorError) Error() string {
	prefix := "-"
	if e.ClassSide {
		prefix = "+"
	}
	return fmt.Sprintf("unrecognized selector sent to %s: %s[%s %s]", e.ClassName, prefix, e.ClassName, e.Selector)
}

// UnimplementedError is returned when a declared method has no implementation linked.
type UnimplementedError struct {
	Method string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s has no implementation", e.Method)
}
