package formatter

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/philipp01105/writelog/core"
)

const unknown = "<unknown>"

// pre-formatted level labels to avoid String() on the hot path
var levelLabels = [...]string{
	core.ErrorLevel: "ERROR",
	core.WarnLevel:  "WARN",
	core.InfoLevel:  "INFO",
	core.DebugLevel: "DEBUG",
	core.TraceLevel: "TRACE",
	core.OffLevel:   "OFF",
}

// processName is the default context name
var processName = func() string {
	if len(os.Args) == 0 {
		return "main"
	}
	return filepath.Base(os.Args[0])
}()

// DefaultContextName returns the executable's base name.
func DefaultContextName() string {
	return processName
}

// TextFormatter renders records as human-readable text lines of the form
//
//	[<time> ][<[LEVEL] >][<(context) >][<target: >][<[file:line] >]<message>\n
type TextFormatter struct {
	config      Config
	clock       core.Clock
	contextName func() string
}

var _ Formatter = (*TextFormatter)(nil)

// NewTextFormatter creates a text formatter. The clock is consulted only
// when the time field is enabled; a nil clock, including a nil pointer
// wrapped in the interface, omits the time field. contextName supplies
// the thread field and defaults to DefaultContextName when nil.
func NewTextFormatter(cfg Config, clock core.Clock, contextName func() string) *TextFormatter {
	if contextName == nil {
		contextName = DefaultContextName
	}
	if isNilClock(clock) {
		clock = nil
	}
	return &TextFormatter{
		config:      cfg,
		clock:       clock,
		contextName: contextName,
	}
}

// Config returns the formatter's configuration
func (f *TextFormatter) Config() Config {
	return f.config
}

// FormatTo writes rec to w. Every enabled field is a single Write call;
// the message and its newline are always written last.
func (f *TextFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()
	defer putBuffer(buf)

	cfg := &f.config
	level := rec.Level

	if fieldEnabled(cfg.time, level) && f.clock != nil {
		buf.Write(f.clock.Now().AppendText(buf.AvailableBuffer()))
		buf.WriteByte(' ')
		if err := flush(w, buf, TimeField); err != nil {
			return err
		}
	}

	if fieldEnabled(cfg.level, level) {
		buf.WriteByte('[')
		cfg.levelPadding.writeLabel(buf, levelLabel(level))
		buf.WriteString("] ")
		if err := flush(w, buf, LevelField); err != nil {
			return err
		}
	}

	if fieldEnabled(cfg.thread, level) {
		buf.WriteByte('(')
		cfg.threadPadding.writeLabel(buf, f.contextName())
		buf.WriteString(") ")
		if err := flush(w, buf, ThreadField); err != nil {
			return err
		}
	}

	if fieldEnabled(cfg.target, level) {
		buf.WriteString(rec.Target)
		buf.WriteString(": ")
		if err := flush(w, buf, TargetField); err != nil {
			return err
		}
	}

	if fieldEnabled(cfg.location, level) {
		writeLocation(buf, rec)
		if err := flush(w, buf, LocationField); err != nil {
			return err
		}
	}

	buf.Write(rec.AppendMessage(buf.AvailableBuffer()))
	buf.WriteByte('\n')
	return flush(w, buf, MessageField)
}

func isNilClock(c core.Clock) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func levelLabel(l core.Level) string {
	if l >= 0 && int(l) < len(levelLabels) {
		return levelLabels[l]
	}
	return l.String()
}

func writeLocation(buf *bytes.Buffer, rec *core.Record) {
	buf.WriteByte('[')
	if rec.File != "" {
		buf.WriteString(rec.File)
	} else {
		buf.WriteString(unknown)
	}
	buf.WriteByte(':')
	if rec.Line > 0 {
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(rec.Line), 10))
	} else {
		buf.WriteString(unknown)
	}
	buf.WriteString("] ")
}

// flush writes the buffered fragment to w and resets buf
func flush(w io.Writer, buf *bytes.Buffer, field Field) error {
	_, err := w.Write(buf.Bytes())
	buf.Reset()
	if err != nil {
		return &WriteError{Field: field, Err: err}
	}
	return nil
}
