package hook

import (
	"context"
	"log/slog"
)

// Sink receives events. Emit must not block for long: replacements call it
// on the host's dispatch path.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// Tee fans events out to several sinks in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(e Event) {
		for _, s := range sinks {
			s.Emit(e)
		}
	})
}

// LogSink writes each event's line through slog: errors at error level,
// everything else at info.
type LogSink struct {
	Logger *slog.Logger
}

// NewLogSink returns a LogSink; a nil logger uses slog.Default().
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{Logger: logger}
}

func (s *LogSink) Emit(e Event) {
	level := slog.LevelInfo
	if e.Kind.IsError() {
		level = slog.LevelError
	}
	attrs := []slog.Attr{slog.String("event", e.Kind.String())}
	if e.Hook != "" {
		attrs = append(attrs, slog.String("hook", e.Hook))
	}
	if e.Class != "" {
		attrs = append(attrs, slog.String("class", e.Class))
	}
	if e.Signature != "" {
		attrs = append(attrs, slog.String("signature", e.Signature))
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("err", e.Err.Error()))
	}
	s.Logger.LogAttrs(context.Background(), level, e.Line, attrs...)
}
