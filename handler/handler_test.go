package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/philipp01105/writelog/core"
	"github.com/philipp01105/writelog/formatter"
	"github.com/philipp01105/writelog/logger"
	"github.com/philipp01105/writelog/sink"
)

// newTestLogger returns a logger without the time and thread fields
// writing to buf
func newTestLogger(level core.Level, buf *sink.Buffer) *logger.WriteLogger {
	cfg := formatter.NewConfigBuilder().
		WithTime(core.OffLevel).
		WithThread(core.OffLevel).
		Build()
	return newTestLoggerWithConfig(level, cfg, buf)
}

func newTestLoggerWithConfig(level core.Level, cfg formatter.Config, buf *sink.Buffer) *logger.WriteLogger {
	return logger.NewBuilder().
		WithLevel(level).
		WithConfig(cfg).
		WithSink(buf).
		WithClock(nil).
		Build()
}

func TestAppendSortedKV(t *testing.T) {
	got := appendSortedKV([]byte("msg"), map[string]any{
		"b":   2,
		"a":   "x",
		"err": assert.AnError,
	})
	assert.Equal(t, "msg a=x b=2 err="+assert.AnError.Error(), string(got))

	assert.Equal(t, "msg", string(appendSortedKV([]byte("msg"), nil)))
}

func TestDeliver_ShortensFile(t *testing.T) {
	var buf sink.Buffer
	cfg := formatter.NewConfigBuilder().
		WithTime(core.OffLevel).
		WithLevel(core.OffLevel).
		WithThread(core.OffLevel).
		WithLocation(core.ErrorLevel).
		Build()
	l := newTestLoggerWithConfig(core.TraceLevel, cfg, &buf)

	deliver(l, core.InfoLevel, "t", "/src/app/main.go", 9, "100% literal")
	deliver(l, core.InfoLevel, "t", "", 0, "no location")

	assert.Equal(t, "t: [main.go:9] 100% literal\nt: [<unknown>:<unknown>] no location\n", buf.String())
}
