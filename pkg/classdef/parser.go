package classdef

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// manifest is the on-disk form of a class definition.
type manifest struct {
	Name    string           `yaml:"name"`
	Super   string           `yaml:"super"`
	Methods []methodManifest `yaml:"methods"`
}

type methodManifest struct {
	Signature string `yaml:"signature"`
	Types     string `yaml:"types"`
}

// Parse reads a YAML class manifest and returns a validated ClassDef.
func Parse(r io.Reader) (*ClassDef, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m manifest
	if err := dec.Decode(&m); err != nil {
		return nil, errors.Wrap(err, "decoding class manifest")
	}
	if m.Name == "" {
		return nil, errors.New("class manifest has no name")
	}
	if m.Super == m.Name {
		return nil, errors.Errorf("class %s cannot be its own superclass", m.Name)
	}

	cd := &ClassDef{Name: m.Name, Super: m.Super}
	cd.Methods = make([]MethodDef, 0, len(m.Methods))
	for i, mm := range m.Methods {
		md, err := parseMethod(mm)
		if err != nil {
			return nil, errors.Wrapf(err, "class %s: method %d", m.Name, i)
		}
		if dup := cd.FindMethod(md.Signature); dup != nil {
			return nil, errors.Errorf("class %s: duplicate method %s", m.Name, md.Signature)
		}
		cd.Methods = append(cd.Methods, md)
	}
	return cd, nil
}

func parseMethod(mm methodManifest) (MethodDef, error) {
	sig, err := ParseSignature(mm.Signature)
	if err != nil {
		return MethodDef{}, errors.Wrap(err, "parsing signature")
	}
	if sig.Scope == ScopeAny {
		return MethodDef{}, errors.Errorf("signature %q needs a '-' or '+' scope prefix", mm.Signature)
	}
	enc, err := ParseEncoding(mm.Types)
	if err != nil {
		return MethodDef{}, errors.Wrapf(err, "parsing types of %s", sig)
	}
	if got, want := len(enc.Params()), sig.ArgCount(); got != want {
		return MethodDef{}, errors.Errorf("%s declares %d arguments but type encoding %q has %d", sig, want, mm.Types, got)
	}
	return MethodDef{Signature: sig, Types: enc}, nil
}
