package core

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// Record is a read-only view of one log call. It is never retained by
// the logger once Log returns.
type Record struct {
	Level Level
	// Target is the logical source of the record, usually a package path
	Target string
	// File is empty when unknown
	File string
	// Line is <= 0 when unknown
	Line int
	// Format is the message, or a fmt format string when Args is non-empty
	Format string
	Args   []any
}

// AppendMessage appends the rendered message to b.
func (r *Record) AppendMessage(b []byte) []byte {
	if len(r.Args) == 0 {
		return append(b, r.Format...)
	}
	return fmt.Appendf(b, r.Format, r.Args...)
}

// Message returns the rendered message.
func (r *Record) Message() string {
	if len(r.Args) == 0 {
		return r.Format
	}
	return fmt.Sprintf(r.Format, r.Args...)
}

var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	return recordPool.Get().(*Record)
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	*r = Record{}
	recordPool.Put(r)
}

// Caller describes a call site.
type Caller struct {
	// Package is the import path of the calling function's package
	Package   string
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// GetCaller retrieves caller information. skip 0 identifies the caller
// of GetCaller.
func GetCaller(skip int) Caller {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Caller{}
	}

	var funcName string
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}

	return Caller{
		Package:   PackageOf(funcName),
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

// PackageOf extracts the package import path from a fully qualified
// function name such as "github.com/a/b/pkg.(*T).Method". The linker
// escapes dots in the last path element ("yaml%2ev3"); they are restored.
func PackageOf(funcName string) string {
	if funcName == "" {
		return ""
	}
	slash := strings.LastIndexByte(funcName, '/')
	dot := strings.IndexByte(funcName[slash+1:], '.')
	pkg := funcName
	if dot >= 0 {
		pkg = funcName[:slash+1+dot]
	}
	return strings.ReplaceAll(pkg, "%2e", ".")
}
