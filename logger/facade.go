package logger

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/philipp01105/writelog/core"
)

// Log is the contract of a process-wide logger
type Log interface {
	// Enabled reports whether a record at level would be logged
	Enabled(level core.Level) bool
	// Log handles rec. rec must not be retained after Log returns.
	Log(rec *core.Record)
	// Flush writes out any buffered records
	Flush()
}

var (
	// ErrAlreadyInstalled is returned when a global logger is installed twice
	ErrAlreadyInstalled = errors.New("logger: a global logger is already installed")
	// ErrNilLogger is returned by SetLogger for a nil logger
	ErrNilLogger = errors.New("logger: nil logger")
)

var (
	active   Log
	activeMu sync.RWMutex
	maxLevel atomic.Int32
)

func init() {
	maxLevel.Store(int32(core.OffLevel))
}

// SetLogger installs l as the process-wide logger. It can succeed only
// once per process.
func SetLogger(l Log) error {
	if l == nil {
		return ErrNilLogger
	}
	activeMu.Lock()
	defer activeMu.Unlock()
	if active != nil {
		return ErrAlreadyInstalled
	}
	active = l
	return nil
}

// Active returns the installed logger, or a logger that discards
// everything when none is installed.
func Active() Log {
	activeMu.RLock()
	defer activeMu.RUnlock()
	if active == nil {
		return nopLogger{}
	}
	return active
}

// Installed reports whether a global logger has been installed
func Installed() bool {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return active != nil
}

// SetMaxLevel sets the global level above which the package-level
// functions discard records before reaching the installed logger.
func SetMaxLevel(level core.Level) {
	maxLevel.Store(int32(level))
}

// MaxLevel returns the global max level
func MaxLevel() core.Level {
	return core.Level(maxLevel.Load())
}

type nopLogger struct{}

func (nopLogger) Enabled(core.Level) bool { return false }
func (nopLogger) Log(*core.Record)        {}
func (nopLogger) Flush()                  {}
