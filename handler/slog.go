package handler

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/philipp01105/writelog/core"
	"github.com/philipp01105/writelog/logger"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// logger.Log, so that log/slog output goes through writelog.
type SlogHandler struct {
	log    logger.Log
	target string
	attrs  []byte // pre-rendered " key=value" pairs from WithAttrs
	group  string
}

// NewSlogHandler creates a slog.Handler that delivers to l with the given
// target.
func NewSlogHandler(l logger.Log, target string) *SlogHandler {
	return &SlogHandler{
		log:    l,
		target: target,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.log.Enabled(slogLevelToCore(level))
}

// Handle converts a slog.Record into a core.Record and logs it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	level := slogLevelToCore(record.Level)
	if !s.log.Enabled(level) {
		return nil
	}

	var file string
	var line int
	if record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		file, line = frame.File, frame.Line
	}

	msg := make([]byte, 0, len(record.Message)+len(s.attrs)+32)
	msg = append(msg, record.Message...)
	msg = append(msg, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		msg = appendAttr(msg, s.group, a)
		return true
	})

	deliver(s.log, level, s.target, file, line, string(msg))
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]byte, len(s.attrs), len(s.attrs)+16*len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{
		log:    s.log,
		target: s.target,
		attrs:  newAttrs,
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		log:    s.log,
		target: s.target,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr appends a as " key=value", prefixing the key with group.
// Group attrs are flattened with dotted keys.
func appendAttr(b []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return b
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			b = appendAttr(b, key, ga)
		}
		return b
	}
	return appendKV(b, key, a.Value.String())
}
