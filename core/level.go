package core

import (
	"strings"

	"github.com/pkg/errors"
)

// Level represents the severity of a record or the threshold of a field.
// Lower values carry higher priority.
type Level int8

const (
	// ErrorLevel for errors
	ErrorLevel Level = iota
	// WarnLevel for warnings
	WarnLevel
	// InfoLevel for general informational messages
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// TraceLevel for very low priority, often extremely verbose, information
	TraceLevel
	// OffLevel compares greater than every real level. As a threshold it
	// means "never".
	OffLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	case OffLevel:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// Admits reports whether a record at level passes the threshold l.
// OffLevel on either side never passes.
func (l Level) Admits(level Level) bool {
	return l != OffLevel && level != OffLevel && level <= l
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return ErrorLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "TRACE":
		return TraceLevel, nil
	case "OFF":
		return OffLevel, nil
	default:
		return OffLevel, errors.Errorf("core: unknown level %q", s)
	}
}
