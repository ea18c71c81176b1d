package intercept

import "github.com/pkg/errors"

// Error taxonomy for interception. Wrapped errors keep these as causes, so
// classify with errors.Is.
var (
	// ErrRuntimeUnavailable means the reflective runtime cannot be reached.
	ErrRuntimeUnavailable = errors.New("object runtime not available")
	// ErrClassNotFound means no class with the requested name is loaded.
	ErrClassNotFound = errors.New("class not found")
	// ErrMethodNotFound means the signature names no single method on the class.
	ErrMethodNotFound = errors.New("method not found")
	// ErrConventionMismatch means a replacement does not match the method's
	// calling convention.
	ErrConventionMismatch = errors.New("calling convention mismatch")
)
