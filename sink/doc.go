// Package sink provides destinations for rendered log lines.
//
// Every sink is an io.Writer that receives one fragment per Write call.
// Sinks do not lock: the logger that owns a sink serializes access to
// it, so a sink must not be shared between loggers.
//
// Buffer keeps lines in memory and can be capped to model a fixed-size
// region on a constrained target; an append that does not fit is
// rejected whole with ErrFull. Writer adapts any io.Writer, such as a
// serial port or a file, and attaches context to its errors.
package sink
