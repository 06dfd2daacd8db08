package handler

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/philipp01105/writelog/core"
	"github.com/philipp01105/writelog/logger"
)

// deliver fills a pooled record and hands it to l
func deliver(l logger.Log, level core.Level, target, file string, line int, msg string) {
	rec := core.GetRecord()
	rec.Level = level
	rec.Target = target
	if file != "" {
		rec.File = filepath.Base(file)
	}
	rec.Line = line
	rec.Format = msg
	l.Log(rec)
	core.PutRecord(rec)
}

// appendKV appends " key=value"
func appendKV(b []byte, key string, val any) []byte {
	b = append(b, ' ')
	b = append(b, key...)
	b = append(b, '=')
	switch v := val.(type) {
	case string:
		return append(b, v...)
	case error:
		return append(b, v.Error()...)
	default:
		return fmt.Appendf(b, "%v", v)
	}
}

// appendSortedKV appends the entries of m in key order
func appendSortedKV(b []byte, m map[string]any) []byte {
	if len(m) == 0 {
		return b
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b = appendKV(b, k, m[k])
	}
	return b
}
