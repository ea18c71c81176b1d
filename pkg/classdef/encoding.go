package classdef

import (
	"strings"

	"github.com/pkg/errors"
)

// Type is a single-character type encoding.
type Type byte

// Supported type encodings.
const (
	TypeVoid      Type = 'v'
	TypeBool      Type = 'B'
	TypeChar      Type = 'c'
	TypeUChar     Type = 'C'
	TypeShort     Type = 's'
	TypeUShort    Type = 'S'
	TypeInt       Type = 'i'
	TypeUInt      Type = 'I'
	TypeLong      Type = 'l'
	TypeULong     Type = 'L'
	TypeLongLong  Type = 'q'
	TypeULongLong Type = 'Q'
	TypeFloat     Type = 'f'
	TypeDouble    Type = 'd'
	TypeCString   Type = '*'
	TypeObject    Type = '@'
	TypeClass     Type = '#'
	TypeSelector  Type = ':'
)

// Kind groups encodings that share a runtime representation.
type Kind int

const (
	KindVoid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindObject
	KindSelector
)

// Kind returns the runtime representation of t.
func (t Type) Kind() Kind {
	switch t {
	case TypeBool, TypeChar:
		return KindBool
	case TypeUChar, TypeShort, TypeUShort, TypeInt, TypeUInt, TypeLong, TypeULong, TypeLongLong, TypeULongLong:
		return KindInt
	case TypeFloat, TypeDouble:
		return KindFloat
	case TypeCString:
		return KindString
	case TypeObject, TypeClass:
		return KindObject
	case TypeSelector:
		return KindSelector
	}
	return KindVoid
}

func (t Type) valid() bool {
	return t == TypeVoid || t.Kind() != KindVoid
}

// Encoding is a parsed method type encoding. Args includes the implicit
// receiver and selector in positions 0 and 1.
type Encoding struct {
	Return Type
	Args   []Type
}

// qualifiers that may precede a type and carry no representation.
const qualifiers = "rnNoORV"

// ParseEncoding parses a method type encoding such as "v20@0:8B16".
// Frame offsets, negative ones included, and qualifiers are accepted and
// discarded.
func ParseEncoding(s string) (Encoding, error) {
	var types []Type
	i := 0
	for i < len(s) {
		for i < len(s) && strings.IndexByte(qualifiers, s[i]) >= 0 {
			i++
		}
		if i >= len(s) {
			return Encoding{}, errors.Errorf("dangling qualifier in type encoding %q", s)
		}
		t := Type(s[i])
		i++
		if t == TypeObject && i < len(s) && s[i] == '?' {
			// block
			i++
		}
		if !t.valid() {
			return Encoding{}, errors.Errorf("unsupported type %q in encoding %q", byte(t), s)
		}
		types = append(types, t)
		if i+1 < len(s) && s[i] == '-' && isDigit(s[i+1]) {
			i++
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}

	if len(types) < 3 {
		return Encoding{}, errors.Errorf("type encoding %q needs a return type, receiver and selector", s)
	}
	enc := Encoding{Return: types[0], Args: types[1:]}
	if enc.Args[0].Kind() != KindObject {
		return Encoding{}, errors.Errorf("type encoding %q: receiver must be an object, got %q", s, byte(enc.Args[0]))
	}
	if enc.Args[1] != TypeSelector {
		return Encoding{}, errors.Errorf("type encoding %q: second argument must be a selector, got %q", s, byte(enc.Args[1]))
	}
	for _, a := range enc.Args {
		if a == TypeVoid {
			return Encoding{}, errors.Errorf("type encoding %q: void argument", s)
		}
	}
	return enc, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// MustParseEncoding is like ParseEncoding but panics on error.
func MustParseEncoding(s string) Encoding {
	enc, err := ParseEncoding(s)
	if err != nil {
		panic(err)
	}
	return enc
}

// Params returns the declared argument types, without receiver and selector.
func (e Encoding) Params() []Type {
	if len(e.Args) < 2 {
		return nil
	}
	return e.Args[2:]
}

// IsVoid reports whether the method returns nothing.
func (e Encoding) IsVoid() bool {
	return e.Return == TypeVoid
}

// String returns the encoding without frame offsets, e.g. "v@:B".
func (e Encoding) String() string {
	var b strings.Builder
	b.WriteByte(byte(e.Return))
	for _, a := range e.Args {
		b.WriteByte(byte(a))
	}
	return b.String()
}

// Equal reports whether two encodings describe the same calling convention.
func (e Encoding) Equal(o Encoding) bool {
	return e.String() == o.String()
}
