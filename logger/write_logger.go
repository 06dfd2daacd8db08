package logger

import (
	"io"
	"sync"

	"github.com/philipp01105/writelog/core"
	"github.com/philipp01105/writelog/formatter"
	"github.com/philipp01105/writelog/sink"
)

// WriteLogger writes records to a single io.Writer. It is immutable
// apart from the sink, which is guarded by a mutex.
type WriteLogger struct {
	level     core.Level
	formatter *formatter.TextFormatter
	mu        sync.Mutex // serializes all writes to sink
	sink      io.Writer
	stats     Stats
}

// Builder provides a fluent API for building WriteLogger instances
type Builder struct {
	level       core.Level
	config      formatter.Config
	sink        io.Writer
	clock       core.Clock
	clockSet    bool
	contextName func() string
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:  core.InfoLevel, // Default level
		config: formatter.DefaultConfig(),
	}
}

// WithLevel sets the level above which records are discarded
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithConfig sets the formatter configuration
func (b *Builder) WithConfig(cfg formatter.Config) *Builder {
	b.config = cfg
	return b
}

// WithSink sets the writer that receives rendered lines (default: stdout).
// The logger takes exclusive ownership of w.
func (b *Builder) WithSink(w io.Writer) *Builder {
	b.sink = w
	return b
}

// WithClock sets the clock that stamps the time field (default: a
// monotonic clock started at Build). A nil clock, typed or not, omits the
// time field.
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	b.clockSet = true
	return b
}

// WithContextName sets the function that names the thread field
// (default: formatter.DefaultContextName).
func (b *Builder) WithContextName(fn func() string) *Builder {
	b.contextName = fn
	return b
}

// Build creates the WriteLogger instance
func (b *Builder) Build() *WriteLogger {
	w := b.sink
	if w == nil {
		w = sink.Stdout()
	}
	clock := b.clock
	if !b.clockSet {
		clock = core.NewMonotonicClock()
	}
	return &WriteLogger{
		level:     b.level,
		formatter: formatter.NewTextFormatter(b.config, clock, b.contextName),
		sink:      w,
	}
}

// New creates a WriteLogger with the default clock and context name.
func New(level core.Level, cfg formatter.Config, w io.Writer) *WriteLogger {
	return NewBuilder().
		WithLevel(level).
		WithConfig(cfg).
		WithSink(w).
		Build()
}

// Level returns the logger's threshold
func (l *WriteLogger) Level() core.Level {
	return l.level
}

// Config returns the formatter configuration
func (l *WriteLogger) Config() formatter.Config {
	return l.formatter.Config()
}

// Enabled reports whether a record at level would be written
func (l *WriteLogger) Enabled(level core.Level) bool {
	return l.level.Admits(level)
}

// Log writes rec if its level is enabled, blocking until the sink is
// free. A failed write is not returned; it is counted in Stats and the
// part of the line already written stays in the sink.
func (l *WriteLogger) Log(rec *core.Record) {
	if !l.Enabled(rec.Level) {
		return
	}

	if err := l.write(rec); err != nil {
		l.stats.IncrementFailed()
		return
	}
	l.stats.IncrementProcessed()
}

func (l *WriteLogger) write(rec *core.Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.formatter.FormatTo(rec, l.sink)
}

// Flush is a no-op: every line is written synchronously by Log.
func (l *WriteLogger) Flush() {}

// Register sets the global max level to the logger's level and installs
// the logger as the process-wide logger. It fails with
// ErrAlreadyInstalled if a logger is already installed.
func (l *WriteLogger) Register() error {
	SetMaxLevel(l.level)
	return SetLogger(l)
}

// Stats returns a snapshot of the current statistics
func (l *WriteLogger) Stats() Snapshot {
	return l.stats.GetSnapshot()
}
