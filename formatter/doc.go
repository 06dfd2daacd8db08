// Package formatter renders a core.Record into one line of text.
//
// A Config decides, per output field, the minimum record level at which
// the field is emitted. Configs are built with ConfigBuilder and are
// immutable afterwards, so a single Config can be shared by every
// goroutine without locking.
//
// TextFormatter runs a fixed pipeline of six steps: time, level,
// thread name, target, location and message. Each step writes exactly
// one fragment to the destination io.Writer. The first failed write
// stops the pipeline and is returned as a *WriteError; fragments that
// were already written are not rolled back.
//
// Fragments are assembled in a pooled bytes.Buffer using Append-style
// functions, so rendering a record with no format arguments does not
// allocate. Buffers larger than 64 KiB are not returned to the pool.
package formatter
