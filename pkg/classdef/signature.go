package classdef

import (
	"strings"

	"github.com/pkg/errors"
)

// Signature names a method by scope and selector, e.g. "- setHidden:".
type Signature struct {
	Scope    Scope
	Selector string
}

// ParseSignature parses "- sel", "+ sel" or a bare selector.
// A bare selector yields ScopeAny.
func ParseSignature(s string) (Signature, error) {
	s = strings.TrimSpace(s)
	var sig Signature
	switch {
	case strings.HasPrefix(s, "-"):
		sig.Scope = ScopeInstance
		s = strings.TrimSpace(s[1:])
	case strings.HasPrefix(s, "+"):
		sig.Scope = ScopeClass
		s = strings.TrimSpace(s[1:])
	}
	if err := validateSelector(s); err != nil {
		return Signature{}, err
	}
	sig.Selector = s
	return sig, nil
}

// MustParseSignature is like ParseSignature but panics on error.
func MustParseSignature(s string) Signature {
	sig, err := ParseSignature(s)
	if err != nil {
		panic(err)
	}
	return sig
}

// ArgCount returns the number of declared arguments, one per colon.
func (s Signature) ArgCount() int {
	return strings.Count(s.Selector, ":")
}

func (s Signature) String() string {
	if p := s.Scope.Prefix(); p != "" {
		return p + " " + s.Selector
	}
	return s.Selector
}

// Bracketed renders the signature the way a runtime prints it: -[Class sel].
func (s Signature) Bracketed(className string) string {
	return s.Scope.Prefix() + "[" + className + " " + s.Selector + "]"
}

func validateSelector(sel string) error {
	if sel == "" {
		return errors.New("empty selector")
	}
	for i := 0; i < len(sel); i++ {
		c := sel[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == ':':
		default:
			return errors.Errorf("invalid character %q in selector %q", c, sel)
		}
	}
	if sel[0] == ':' || (sel[0] >= '0' && sel[0] <= '9') {
		return errors.Errorf("selector %q must start with a letter or underscore", sel)
	}
	if strings.Contains(sel, ":") && !strings.HasSuffix(sel, ":") {
		return errors.Errorf("selector %q takes arguments but does not end with ':'", sel)
	}
	return nil
}
