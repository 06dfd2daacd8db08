package formatter

import (
	"bytes"
	"unicode/utf8"

	"github.com/philipp01105/writelog/core"
)

// Alignment selects how a label is padded
type Alignment uint8

const (
	// AlignNone writes the label as is
	AlignNone Alignment = iota
	// AlignLeft pads with trailing spaces
	AlignLeft
	// AlignRight pads with leading spaces
	AlignRight
)

// Padding aligns a label to a minimum width. Labels wider than Width
// are never truncated.
type Padding struct {
	Align Alignment
	Width int
}

// NoPadding leaves labels unpadded
func NoPadding() Padding {
	return Padding{}
}

// LeftAlign pads labels with trailing spaces up to width
func LeftAlign(width int) Padding {
	return Padding{Align: AlignLeft, Width: width}
}

// RightAlign pads labels with leading spaces up to width
func RightAlign(width int) Padding {
	return Padding{Align: AlignRight, Width: width}
}

// writeLabel writes label into buf according to p
func (p Padding) writeLabel(buf *bytes.Buffer, label string) {
	fill := 0
	if p.Align != AlignNone && p.Width > 0 {
		fill = p.Width - utf8.RuneCountInString(label)
	}
	if p.Align == AlignRight {
		writeSpaces(buf, fill)
	}
	buf.WriteString(label)
	if p.Align == AlignLeft {
		writeSpaces(buf, fill)
	}
}

func writeSpaces(buf *bytes.Buffer, n int) {
	for ; n > 0; n-- {
		buf.WriteByte(' ')
	}
}

// Config selects which fields a TextFormatter emits. A field is written
// when its threshold is not core.OffLevel and is at or below the
// record's level, so ErrorLevel shows a field on every record and
// TraceLevel shows it only on trace records.
//
// Config is immutable; use ConfigBuilder to create one.
type Config struct {
	time          core.Level
	level         core.Level
	thread        core.Level
	target        core.Level
	location      core.Level
	levelPadding  Padding
	threadPadding Padding
}

// DefaultConfig returns the configuration a new ConfigBuilder starts
// from: time, level and target on every record, the thread name from
// debug, the location on trace only, and no padding.
func DefaultConfig() Config {
	return Config{
		time:     core.ErrorLevel,
		level:    core.ErrorLevel,
		thread:   core.DebugLevel,
		target:   core.ErrorLevel,
		location: core.TraceLevel,
	}
}

// Time returns the threshold of the time field
func (c Config) Time() core.Level { return c.time }

// Level returns the threshold of the level field
func (c Config) Level() core.Level { return c.level }

// Thread returns the threshold of the thread name field
func (c Config) Thread() core.Level { return c.thread }

// Target returns the threshold of the target field
func (c Config) Target() core.Level { return c.target }

// Location returns the threshold of the file:line field
func (c Config) Location() core.Level { return c.location }

// LevelPadding returns the padding of the level label
func (c Config) LevelPadding() Padding { return c.levelPadding }

// ThreadPadding returns the padding of the thread name
func (c Config) ThreadPadding() Padding { return c.threadPadding }

// fieldEnabled reports whether a field with the given threshold is
// written for a record at level.
func fieldEnabled(threshold, level core.Level) bool {
	return threshold != core.OffLevel && threshold <= level
}

// ConfigBuilder provides a fluent API for building Config values
type ConfigBuilder struct {
	cfg Config
}

// NewConfigBuilder creates a builder initialized with DefaultConfig
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: DefaultConfig()}
}

// WithTime sets the threshold of the time field
func (b *ConfigBuilder) WithTime(l core.Level) *ConfigBuilder {
	b.cfg.time = l
	return b
}

// WithLevel sets the threshold of the level field
func (b *ConfigBuilder) WithLevel(l core.Level) *ConfigBuilder {
	b.cfg.level = l
	return b
}

// WithThread sets the threshold of the thread name field
func (b *ConfigBuilder) WithThread(l core.Level) *ConfigBuilder {
	b.cfg.thread = l
	return b
}

// WithTarget sets the threshold of the target field
func (b *ConfigBuilder) WithTarget(l core.Level) *ConfigBuilder {
	b.cfg.target = l
	return b
}

// WithLocation sets the threshold of the file:line field
func (b *ConfigBuilder) WithLocation(l core.Level) *ConfigBuilder {
	b.cfg.location = l
	return b
}

// WithLevelPadding sets the padding of the level label
func (b *ConfigBuilder) WithLevelPadding(p Padding) *ConfigBuilder {
	b.cfg.levelPadding = p
	return b
}

// WithThreadPadding sets the padding of the thread name
func (b *ConfigBuilder) WithThreadPadding(p Padding) *ConfigBuilder {
	b.cfg.threadPadding = p
	return b
}

// Build returns the configured Config. The builder may be reused; later
// changes do not affect configs already built.
func (b *ConfigBuilder) Build() Config {
	return b.cfg
}
