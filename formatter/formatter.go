package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/writelog/core"
)

// Formatter renders a record into a writer
type Formatter interface {
	// FormatTo writes rec to w, one fragment per enabled field
	FormatTo(rec *core.Record, w io.Writer) error
}

// Field identifies one step of the render pipeline
type Field uint8

const (
	// TimeField is the HH:MM:SS.mmm timestamp
	TimeField Field = iota
	// LevelField is the bracketed level label
	LevelField
	// ThreadField is the parenthesized context name
	ThreadField
	// TargetField is the record target followed by a colon
	TargetField
	// LocationField is the bracketed file:line
	LocationField
	// MessageField is the message and its newline, always written
	MessageField
)

// String returns the field name
func (f Field) String() string {
	switch f {
	case TimeField:
		return "time"
	case LevelField:
		return "level"
	case ThreadField:
		return "thread"
	case TargetField:
		return "target"
	case LocationField:
		return "location"
	case MessageField:
		return "message"
	default:
		return "unknown"
	}
}

// WriteError reports a sink that rejected a fragment
type WriteError struct {
	Field Field
	Err   error
}

func (e *WriteError) Error() string {
	return "formatter: write " + e.Field.String() + ": " + e.Err.Error()
}

// Unwrap returns the sink error
func (e *WriteError) Unwrap() error {
	return e.Err
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
