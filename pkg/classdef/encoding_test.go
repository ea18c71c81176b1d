package classdef

import "testing"

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		in         string
		wantString string
		wantParams int
		wantVoid   bool
	}{
		{"v20@0:8B16", "v@:B", 1, true},
		{"B16@0:8", "B@:", 0, false},
		{"@24@0:8:16", "@@::", 1, false},
		{"v@:", "v@:", 0, true},
		{"q32@0:8q16d24", "q@:qd", 2, false},
		{"Vv16@0:8", "v@:", 0, true},
		{"v24@0:8@?16", "v@:@", 1, true},
		{"v16#0:8", "v#:", 0, true},
		{"c24@-8:0i16", "c@:i", 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			enc, err := ParseEncoding(tt.in)
			if err != nil {
				t.Fatalf("ParseEncoding(%q): %v", tt.in, err)
			}
			if got := enc.String(); got != tt.wantString {
				t.Errorf("String(): got %q, want %q", got, tt.wantString)
			}
			if got := len(enc.Params()); got != tt.wantParams {
				t.Errorf("len(Params()): got %d, want %d", got, tt.wantParams)
			}
			if got := enc.IsVoid(); got != tt.wantVoid {
				t.Errorf("IsVoid(): got %v, want %v", got, tt.wantVoid)
			}
		})
	}
}

func TestParseEncodingErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"v",
		"v@",
		"v:@",   // receiver and selector swapped
		"vi:",   // receiver is not an object
		"v@@",   // missing selector
		"v@:^i", // pointers are not supported
		"v@:{CGRect=dd}",
		"v@:v",
		"v@:r",
		"v@:-", // sign without an offset
	} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseEncoding(in); err == nil {
				t.Errorf("ParseEncoding(%q): expected error", in)
			}
		})
	}
}

func TestEncodingEqual(t *testing.T) {
	a := MustParseEncoding("v20@0:8B16")
	b := MustParseEncoding("v@:B")
	c := MustParseEncoding("v@:i")
	if !a.Equal(b) {
		t.Errorf("%s and %s should be equal", a, b)
	}
	if a.Equal(c) {
		t.Errorf("%s and %s should differ", a, c)
	}
}

func TestTypeKind(t *testing.T) {
	tests := map[Type]Kind{
		TypeVoid:      KindVoid,
		TypeBool:      KindBool,
		TypeChar:      KindBool,
		TypeInt:       KindInt,
		TypeULongLong: KindInt,
		TypeDouble:    KindFloat,
		TypeCString:   KindString,
		TypeObject:    KindObject,
		TypeClass:     KindObject,
		TypeSelector:  KindSelector,
	}
	for typ, want := range tests {
		if got := typ.Kind(); got != want {
			t.Errorf("Kind(%q): got %d, want %d", byte(typ), got, want)
		}
	}
}
