package classdef

import "testing"

func TestParseSignature(t *testing.T) {
	tests := []struct {
		in       string
		scope    Scope
		selector string
		args     int
	}{
		{"- updateIndicatorVisibility:", ScopeInstance, "updateIndicatorVisibility:", 1},
		{"- _shouldForceViewToShowForCurrentBacklightLuminance", ScopeInstance, "_shouldForceViewToShowForCurrentBacklightLuminance", 0},
		{"+ alloc", ScopeClass, "alloc", 0},
		{"-setFrame:animated:", ScopeInstance, "setFrame:animated:", 2},
		{"description", ScopeAny, "description", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			sig, err := ParseSignature(tt.in)
			if err != nil {
				t.Fatalf("ParseSignature(%q): %v", tt.in, err)
			}
			if sig.Scope != tt.scope {
				t.Errorf("scope: got %v, want %v", sig.Scope, tt.scope)
			}
			if sig.Selector != tt.selector {
				t.Errorf("selector: got %q, want %q", sig.Selector, tt.selector)
			}
			if got := sig.ArgCount(); got != tt.args {
				t.Errorf("ArgCount(): got %d, want %d", got, tt.args)
			}
		})
	}
}

func TestParseSignatureErrors(t *testing.T) {
	for _, in := range []string{"", "-", "+ ", "- foo:bar", "- :foo", "- 1abc", "- foo bar", "- foo-bar"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseSignature(in); err == nil {
				t.Errorf("ParseSignature(%q): expected error", in)
			}
		})
	}
}

func TestSignatureString(t *testing.T) {
	sig := MustParseSignature("-updateIndicatorVisibility:")
	if got, want := sig.String(), "- updateIndicatorVisibility:"; got != want {
		t.Errorf("String(): got %q, want %q", got, want)
	}
	if got, want := sig.Bracketed("SBRecordingIndicatorViewController"), "-[SBRecordingIndicatorViewController updateIndicatorVisibility:]"; got != want {
		t.Errorf("Bracketed(): got %q, want %q", got, want)
	}
}
