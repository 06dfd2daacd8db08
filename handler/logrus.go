package handler

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/writelog/core"
	"github.com/philipp01105/writelog/logger"
)

// LogrusHook implements logrus.Hook on top of a logger.Log. Install it
// with AddHook and point the logrus logger's own output at io.Discard
// to route everything through writelog.
type LogrusHook struct {
	log    logger.Log
	target string
}

var _ logrus.Hook = (*LogrusHook)(nil)

// NewLogrusHook creates a hook that delivers to l with the given target
func NewLogrusHook(l logger.Log, target string) *LogrusHook {
	return &LogrusHook{log: l, target: target}
}

// Levels returns the logrus levels the destination logger accepts
func (h *LogrusHook) Levels() []logrus.Level {
	levels := make([]logrus.Level, 0, len(logrus.AllLevels))
	for _, lvl := range logrus.AllLevels {
		if h.log.Enabled(logrusLevelToCore(lvl)) {
			levels = append(levels, lvl)
		}
	}
	return levels
}

// Fire converts the entry into a record and logs it
func (h *LogrusHook) Fire(entry *logrus.Entry) error {
	level := logrusLevelToCore(entry.Level)
	if !h.log.Enabled(level) {
		return nil
	}

	msg := appendSortedKV([]byte(entry.Message), entry.Data)

	var file string
	var line int
	if entry.HasCaller() {
		file, line = entry.Caller.File, entry.Caller.Line
	}

	deliver(h.log, level, h.target, file, line, string(msg))
	return nil
}

// logrusLevelToCore converts a logrus.Level to a core.Level. Panic and
// Fatal map to ErrorLevel.
func logrusLevelToCore(lvl logrus.Level) core.Level {
	switch lvl {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return core.ErrorLevel
	case logrus.WarnLevel:
		return core.WarnLevel
	case logrus.InfoLevel:
		return core.InfoLevel
	case logrus.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
