package handler

import (
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/writelog/core"
	"github.com/philipp01105/writelog/logger"
)

// ZapCore implements zapcore.Core on top of a logger.Log, so that a
// zap.Logger writes through writelog:
//
//	zl := zap.New(handler.NewZapCore(l, "payments"), zap.AddCaller())
type ZapCore struct {
	log    logger.Log
	target string
	fields []zapcore.Field
}

var _ zapcore.Core = (*ZapCore)(nil)

// NewZapCore creates a core that delivers to l. target is used for
// entries logged without a logger name.
func NewZapCore(l logger.Log, target string) *ZapCore {
	return &ZapCore{log: l, target: target}
}

// Enabled reports whether entries at lvl would be logged
func (z *ZapCore) Enabled(lvl zapcore.Level) bool {
	return z.log.Enabled(zapLevelToCore(lvl))
}

// With returns a core that adds fields to every entry
func (z *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	newFields := make([]zapcore.Field, len(z.fields), len(z.fields)+len(fields))
	copy(newFields, z.fields)
	newFields = append(newFields, fields...)
	return &ZapCore{
		log:    z.log,
		target: z.target,
		fields: newFields,
	}
}

// Check adds the core to ce when the entry's level is enabled
func (z *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if z.Enabled(ent.Level) {
		return ce.AddCore(ent, z)
	}
	return ce
}

// Write renders the entry and its fields into a single record
func (z *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	msg := []byte(ent.Message)
	if len(z.fields)+len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range z.fields {
			f.AddTo(enc)
		}
		for _, f := range fields {
			f.AddTo(enc)
		}
		msg = appendSortedKV(msg, enc.Fields)
	}

	target := ent.LoggerName
	if target == "" {
		target = z.target
	}

	var file string
	var line int
	if ent.Caller.Defined {
		file, line = ent.Caller.File, ent.Caller.Line
	}

	deliver(z.log, zapLevelToCore(ent.Level), target, file, line, string(msg))
	return nil
}

// Sync flushes the destination logger
func (z *ZapCore) Sync() error {
	z.log.Flush()
	return nil
}

// zapLevelToCore converts a zapcore.Level to a core.Level. DPanic, Panic
// and Fatal all map to ErrorLevel.
func zapLevelToCore(lvl zapcore.Level) core.Level {
	switch {
	case lvl >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case lvl == zapcore.WarnLevel:
		return core.WarnLevel
	case lvl == zapcore.InfoLevel:
		return core.InfoLevel
	case lvl == zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
