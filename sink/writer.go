package sink

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Writer adapts an io.Writer, such as a serial port, into a sink.
// Errors from the underlying writer are wrapped with the sink's name.
type Writer struct {
	name    string
	w       io.Writer
	written int64
}

// NewWriter wraps w. name identifies the sink in error messages.
func NewWriter(name string, w io.Writer) *Writer {
	return &Writer{name: name, w: w}
}

// Stdout returns a sink writing to os.Stdout
func Stdout() *Writer {
	return NewWriter("stdout", os.Stdout)
}

// Stderr returns a sink writing to os.Stderr
func Stderr() *Writer {
	return NewWriter("stderr", os.Stderr)
}

// Write writes p to the underlying writer
func (s *Writer) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.written += int64(n)
	if err != nil {
		return n, errors.Wrapf(err, "sink: write %s", s.name)
	}
	if n < len(p) {
		return n, errors.Wrapf(io.ErrShortWrite, "sink: write %s", s.name)
	}
	return n, nil
}

// Written returns the number of bytes written through the sink. For a
// sink from OpenFile it starts at the file's size.
func (s *Writer) Written() int64 {
	return s.written
}

// Name returns the sink's name
func (s *Writer) Name() string {
	return s.name
}

// Close closes the underlying writer if it is an io.Closer. The
// standard streams are never closed.
func (s *Writer) Close() error {
	if s.w == os.Stdout || s.w == os.Stderr {
		return nil
	}
	c, ok := s.w.(io.Closer)
	if !ok {
		return nil
	}
	if err := c.Close(); err != nil {
		return errors.Wrapf(err, "sink: close %s", s.name)
	}
	return nil
}
