package hook

import (
	"github.com/daimatz/objhook/pkg/classdef"
)

// EventKind classifies a driver or hook event.
type EventKind int

const (
	EventHookInstalled EventKind = iota
	EventHookBlocked
	EventRuntimeUnavailable
	EventClassNotFound
	EventMethodNotFound
	EventInstallFailed
)

var eventKindNames = map[EventKind]string{
	EventHookInstalled:      "hook-installed",
	EventHookBlocked:        "hook-blocked",
	EventRuntimeUnavailable: "runtime-unavailable",
	EventClassNotFound:      "class-not-found",
	EventMethodNotFound:     "method-not-found",
	EventInstallFailed:      "install-failed",
}

func (k EventKind) String() string {
	if s, ok := eventKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsError reports whether the event reports a failure.
func (k EventKind) IsError() bool {
	switch k {
	case EventRuntimeUnavailable, EventClassNotFound, EventMethodNotFound, EventInstallFailed:
		return true
	}
	return false
}

// Event is one status line. Line is the human-readable form; the other fields
// carry the same information for structured sinks.
type Event struct {
	Kind      EventKind
	Hook      string
	Class     string
	Signature string
	Line      string
	Err       error
}

func (e Event) String() string {
	return e.Line
}

// bracket renders a configured signature as -[Class sel]. Malformed
// signatures are rendered as given.
func bracket(class, signature string) string {
	sig, err := classdef.ParseSignature(signature)
	if err != nil {
		return "[" + class + " " + signature + "]"
	}
	return sig.Bracketed(class)
}
