package core

import (
	"strconv"
	"time"
)

// Clock supplies the current instant used to stamp rendered lines.
type Clock interface {
	// Now returns the current instant
	Now() Instant
	// Elapsed returns the time between since and Now
	Elapsed(since Instant) time.Duration
}

// Instant is a point in time measured from a clock's origin.
type Instant struct {
	d time.Duration
}

// InstantOf returns the instant d after the clock origin. Negative
// durations are clamped to the origin.
func InstantOf(d time.Duration) Instant {
	if d < 0 {
		d = 0
	}
	return Instant{d: d}
}

// Duration returns the time since the clock origin
func (i Instant) Duration() time.Duration {
	return i.d
}

// Sub returns i-j
func (i Instant) Sub(j Instant) time.Duration {
	return i.d - j.d
}

// AppendText appends the instant as HH:MM:SS.mmm. Hours are not wrapped
// at 24 and widen past two digits when needed.
func (i Instant) AppendText(b []byte) []byte {
	ms := int64(i.d / time.Millisecond)
	hours := ms / 3_600_000
	minutes := ms / 60_000 % 60
	seconds := ms / 1000 % 60
	millis := ms % 1000

	if hours < 10 {
		b = append(b, '0')
	}
	b = strconv.AppendInt(b, hours, 10)
	b = append(b, ':', byte('0'+minutes/10), byte('0'+minutes%10))
	b = append(b, ':', byte('0'+seconds/10), byte('0'+seconds%10))
	b = append(b, '.', byte('0'+millis/100), byte('0'+millis/10%10), byte('0'+millis%10))
	return b
}

// String returns the instant as HH:MM:SS.mmm
func (i Instant) String() string {
	var buf [16]byte
	return string(i.AppendText(buf[:0]))
}

// MonotonicClock measures instants from its construction using the
// runtime's monotonic clock.
type MonotonicClock struct {
	origin time.Time
}

// NewMonotonicClock creates a clock whose origin is now
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{origin: time.Now()}
}

// Now returns the time elapsed since the clock was created
func (c *MonotonicClock) Now() Instant {
	return InstantOf(time.Since(c.origin))
}

// Elapsed returns the time between since and Now
func (c *MonotonicClock) Elapsed(since Instant) time.Duration {
	return c.Now().Sub(since)
}

// FixedClock always reports the same instant. It is meant for tests and
// deterministic output.
type FixedClock struct {
	At Instant
}

// NewFixedClock creates a clock frozen at d after the origin
func NewFixedClock(d time.Duration) FixedClock {
	return FixedClock{At: InstantOf(d)}
}

// Now returns the fixed instant
func (c FixedClock) Now() Instant {
	return c.At
}

// Elapsed returns the time between since and the fixed instant
func (c FixedClock) Elapsed(since Instant) time.Duration {
	return c.At.Sub(since)
}
