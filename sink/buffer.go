package sink

import (
	"github.com/pkg/errors"
)

// ErrFull is returned when an append would exceed a Buffer's limit
var ErrFull = errors.New("sink: buffer full")

// Buffer is an in-memory sink. The zero value is an empty, unbounded
// buffer.
type Buffer struct {
	data  []byte
	limit int
}

// NewBuffer creates a buffer holding at most limit bytes. A limit <= 0
// means unbounded.
func NewBuffer(limit int) *Buffer {
	b := &Buffer{limit: limit}
	if limit > 0 {
		b.data = make([]byte, 0, limit)
	}
	return b
}

// Write appends p. When a limit is set and p does not fit, nothing is
// written and ErrFull is returned.
func (b *Buffer) Write(p []byte) (int, error) {
	if b.limit > 0 && len(b.data)+len(p) > b.limit {
		return 0, ErrFull
	}
	b.data = append(b.data, p...)
	return len(p), nil
}

// WriteString appends s with the same rules as Write
func (b *Buffer) WriteString(s string) (int, error) {
	if b.limit > 0 && len(b.data)+len(s) > b.limit {
		return 0, ErrFull
	}
	b.data = append(b.data, s...)
	return len(s), nil
}

// Bytes returns the buffered bytes. The slice aliases the buffer until
// the next Write or Reset.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// String returns the buffered text
func (b *Buffer) String() string {
	return string(b.data)
}

// Len returns the number of buffered bytes
func (b *Buffer) Len() int {
	return len(b.data)
}

// Limit returns the configured limit, or 0 when unbounded
func (b *Buffer) Limit() int {
	return b.limit
}

// Reset empties the buffer, keeping its capacity
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}
