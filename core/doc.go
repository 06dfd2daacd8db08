// Package core defines the shared types used across writelog.
//
// It provides the Level type used both as a record's severity and as a
// per-field threshold, the Record type that represents a single log
// call, and the Clock capability that stamps time onto rendered lines.
//
// Records are pooled via sync.Pool so that the package-level logging
// functions stay allocation-free on the hot path. Callers get a Record
// with GetRecord and must return it with PutRecord once the logger has
// consumed it. A Record's message is rendered lazily: Format and Args
// are only combined after the record has passed the level gate.
//
// Clocks report an Instant, the time elapsed since the clock's origin.
// Instants render as HH:MM:SS.mmm without allocating, which makes them
// suitable for uptime stamps on targets with no wall clock.
package core
