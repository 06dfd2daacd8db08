package logger

import (
	"github.com/philipp01105/writelog/core"
)

// Package-level functions using the installed logger. Each record's
// target is the calling package's import path and its location is the
// call site.

// emit builds a pooled record for the caller two frames up and hands it
// to the installed logger
func emit(level core.Level, format string, args []any) {
	if !MaxLevel().Admits(level) {
		return
	}
	l := Active()
	if !l.Enabled(level) {
		return
	}

	// 0 = emit, 1 = exported wrapper, 2 = user code
	caller := core.GetCaller(2)

	rec := core.GetRecord()
	rec.Level = level
	rec.Target = caller.Package
	rec.File = caller.ShortFile
	rec.Line = caller.Line
	rec.Format = format
	rec.Args = args
	l.Log(rec)
	core.PutRecord(rec)
}

// Error logs an error message using the installed logger
func Error(msg string) {
	emit(core.ErrorLevel, msg, nil)
}

// Warn logs a warning message using the installed logger
func Warn(msg string) {
	emit(core.WarnLevel, msg, nil)
}

// Info logs an info message using the installed logger
func Info(msg string) {
	emit(core.InfoLevel, msg, nil)
}

// Debug logs a debug message using the installed logger
func Debug(msg string) {
	emit(core.DebugLevel, msg, nil)
}

// Trace logs a trace message using the installed logger
func Trace(msg string) {
	emit(core.TraceLevel, msg, nil)
}

// Errorf logs a formatted error message using the installed logger
func Errorf(format string, args ...any) {
	emit(core.ErrorLevel, format, args)
}

// Warnf logs a formatted warning message using the installed logger
func Warnf(format string, args ...any) {
	emit(core.WarnLevel, format, args)
}

// Infof logs a formatted info message using the installed logger
func Infof(format string, args ...any) {
	emit(core.InfoLevel, format, args)
}

// Debugf logs a formatted debug message using the installed logger
func Debugf(format string, args ...any) {
	emit(core.DebugLevel, format, args)
}

// Tracef logs a formatted trace message using the installed logger
func Tracef(format string, args ...any) {
	emit(core.TraceLevel, format, args)
}

// Flush flushes the installed logger
func Flush() {
	Active().Flush()
}
