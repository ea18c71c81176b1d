package hook

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(slog.New(slog.NewTextHandler(&buf, nil)))

	sink.Emit(Event{
		Kind:      EventHookInstalled,
		Hook:      IndicatorVisibility,
		Class:     DefaultClass,
		Signature: updateVisibilitySignature,
		Line:      "[+] Hooked and blocked -[SBRecordingIndicatorViewController updateIndicatorVisibility:].",
	})
	sink.Emit(Event{
		Kind:  EventClassNotFound,
		Class: DefaultClass,
		Line:  "[-] SBRecordingIndicatorViewController class not found.",
		Err:   errors.New("class not found"),
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2:\n%s", len(lines), buf.String())
	}
	assert.Contains(t, lines[0], "level=INFO")
	assert.Contains(t, lines[0], `msg="[+] Hooked and blocked -[SBRecordingIndicatorViewController updateIndicatorVisibility:]."`)
	assert.Contains(t, lines[0], "event=hook-installed")
	assert.Contains(t, lines[0], "hook=indicator-visibility")
	assert.Contains(t, lines[1], "level=ERROR")
	assert.Contains(t, lines[1], `err="class not found"`)
	assert.NotContains(t, lines[1], "hook=")
}

func TestTee(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	Tee(a, b).Emit(Event{Kind: EventHookBlocked, Line: "x"})
	assert.Equal(t, []string{"x"}, a.lines())
	assert.Equal(t, []string{"x"}, b.lines())
}

func TestEventKind(t *testing.T) {
	assert.False(t, EventHookInstalled.IsError())
	assert.False(t, EventHookBlocked.IsError())
	for _, k := range []EventKind{EventRuntimeUnavailable, EventClassNotFound, EventMethodNotFound, EventInstallFailed} {
		assert.True(t, k.IsError(), k.String())
	}
	assert.Equal(t, "unknown", EventKind(99).String())
}

func TestBracket(t *testing.T) {
	assert.Equal(t, "-[A foo:]", bracket("A", "- foo:"))
	assert.Equal(t, "+[A bar]", bracket("A", "+bar"))
	assert.Equal(t, "[A baz]", bracket("A", "baz"))
	assert.Equal(t, "[A - bad sel]", bracket("A", "- bad sel"))
}
