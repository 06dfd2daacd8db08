package logger

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/writelog/core"
	"github.com/philipp01105/writelog/formatter"
	"github.com/philipp01105/writelog/sink"
)

// scenarioClock is 1h23m45.678s past the origin
var scenarioClock = core.NewFixedClock(5025*time.Second + 678*time.Millisecond)

func newTestLogger(level core.Level, cfg formatter.Config, w *sink.Buffer) *WriteLogger {
	return NewBuilder().
		WithLevel(level).
		WithConfig(cfg).
		WithSink(w).
		WithClock(scenarioClock).
		WithContextName(func() string { return "main" }).
		Build()
}

func TestWriteLogger_Scenario(t *testing.T) {
	var buf sink.Buffer
	l := newTestLogger(TraceLevel, formatter.DefaultConfig(), &buf)

	l.Log(&core.Record{Level: ErrorLevel, Target: "write_log::tests", Format: "Test Error"})

	assert.Equal(t, "01:23:45.678 [ERROR] write_log::tests: Test Error\n", buf.String())
	assert.Equal(t, Snapshot{ProcessedTotal: 1}, l.Stats())
}

func TestWriteLogger_Enabled(t *testing.T) {
	tests := []struct {
		threshold Level
		level     Level
		want      bool
	}{
		{TraceLevel, TraceLevel, true},
		{TraceLevel, ErrorLevel, true},
		{InfoLevel, InfoLevel, true},
		{InfoLevel, WarnLevel, true},
		{InfoLevel, DebugLevel, false},
		{ErrorLevel, WarnLevel, false},
		{OffLevel, ErrorLevel, false},
		{TraceLevel, OffLevel, false},
	}

	for _, tt := range tests {
		l := New(tt.threshold, formatter.DefaultConfig(), &sink.Buffer{})
		assert.Equal(t, tt.want, l.Enabled(tt.level), "threshold %v, level %v", tt.threshold, tt.level)
	}
}

func TestWriteLogger_LevelGate(t *testing.T) {
	var buf sink.Buffer
	l := newTestLogger(InfoLevel, formatter.DefaultConfig(), &buf)

	// Debug should not be logged (below Info level)
	l.Log(&core.Record{Level: DebugLevel, Target: "t", Format: "debug message"})
	assert.Zero(t, buf.Len(), "Debug message was logged when level is Info")
	assert.Equal(t, Snapshot{}, l.Stats())

	l.Log(&core.Record{Level: WarnLevel, Target: "t", Format: "warn message"})
	assert.Equal(t, "01:23:45.678 [WARN] t: warn message\n", buf.String())
}

func TestWriteLogger_FieldThresholdsIndependentOfLevel(t *testing.T) {
	var buf sink.Buffer
	cfg := formatter.NewConfigBuilder().
		WithTime(core.OffLevel).
		WithLocation(core.DebugLevel).
		Build()
	l := newTestLogger(TraceLevel, cfg, &buf)

	l.Log(&core.Record{Level: InfoLevel, Target: "t", File: "a.go", Line: 1, Format: "info"})
	l.Log(&core.Record{Level: DebugLevel, Target: "t", File: "a.go", Line: 2, Format: "debug"})

	assert.Equal(t, "[INFO] t: info\n[DEBUG] (main) t: [a.go:2] debug\n", buf.String())
}

func TestWriteLogger_WriteFailureSwallowed(t *testing.T) {
	buf := sink.NewBuffer(len("01:23:45.678 [ERROR] "))
	l := newTestLogger(TraceLevel, formatter.DefaultConfig(), buf)

	assert.NotPanics(t, func() {
		l.Log(&core.Record{Level: ErrorLevel, Target: "write_log::tests", Format: "Test Error"})
	})

	assert.Equal(t, "01:23:45.678 [ERROR] ", buf.String(), "fragments written before the failure stay in the sink")
	assert.Equal(t, Snapshot{FailedTotal: 1}, l.Stats())

	// the mutex was released on the failure path
	buf.Reset()
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Log(&core.Record{Level: ErrorLevel, Format: "x"})
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Log blocked after a failed write")
	}
	assert.Equal(t, "01:23:45.678 [ERROR] ", buf.String())
	assert.Equal(t, Snapshot{FailedTotal: 2}, l.Stats())
}

func TestWriteLogger_RecoversAfterWriteFailure(t *testing.T) {
	buf := sink.NewBuffer(len("01:23:45.678 [ERROR] "))
	cfg := formatter.NewConfigBuilder().
		WithTime(core.OffLevel).
		WithLevel(core.OffLevel).
		WithTarget(core.OffLevel).
		Build()
	l := newTestLogger(TraceLevel, cfg, buf)

	l.Log(&core.Record{Level: ErrorLevel, Format: "this message is longer than the limit"})
	assert.Zero(t, buf.Len())

	l.Log(&core.Record{Level: ErrorLevel, Format: "fits"})
	assert.Equal(t, "fits\n", buf.String())
	assert.Equal(t, Snapshot{ProcessedTotal: 1, FailedTotal: 1}, l.Stats())
}

func TestWriteLogger_Flush(t *testing.T) {
	var buf sink.Buffer
	l := newTestLogger(TraceLevel, formatter.DefaultConfig(), &buf)
	l.Flush()
	assert.Zero(t, buf.Len())
}

func TestWriteLogger_BuilderDefaults(t *testing.T) {
	l := NewBuilder().Build()

	assert.Equal(t, InfoLevel, l.Level())
	assert.Equal(t, formatter.DefaultConfig(), l.Config())
	s, ok := l.sink.(*sink.Writer)
	require.True(t, ok, "default sink should be stdout")
	assert.Equal(t, "stdout", s.Name())
}

func TestWriteLogger_NilClockOmitsTime(t *testing.T) {
	var buf sink.Buffer
	l := NewBuilder().WithLevel(TraceLevel).WithSink(&buf).WithClock(nil).Build()

	l.Log(&core.Record{Level: InfoLevel, Target: "t", Format: "no time"})
	assert.Equal(t, "[INFO] t: no time\n", buf.String())
}

func TestWriteLogger_TypedNilClockOmitsTime(t *testing.T) {
	var buf sink.Buffer
	l := NewBuilder().WithLevel(TraceLevel).WithSink(&buf).WithClock((*core.CoarseClock)(nil)).Build()

	assert.NotPanics(t, func() {
		l.Log(&core.Record{Level: InfoLevel, Target: "t", Format: "no time"})
	})
	assert.Equal(t, "[INFO] t: no time\n", buf.String())
}

// exclusiveBuffer fails the test if two writes ever overlap
type exclusiveBuffer struct {
	t      *testing.T
	inside atomic.Int32
	buf    sink.Buffer
}

func (b *exclusiveBuffer) Write(p []byte) (int, error) {
	if b.inside.Add(1) != 1 {
		b.t.Error("concurrent Write on the sink")
	}
	defer b.inside.Add(-1)
	// widen the window for a racing writer
	time.Sleep(time.Microsecond)
	return b.buf.Write(p)
}

func TestWriteLogger_ConcurrentLinesDoNotInterleave(t *testing.T) {
	const workers, perWorker = 8, 50

	out := &exclusiveBuffer{t: t}
	cfg := formatter.NewConfigBuilder().
		WithThread(core.ErrorLevel).
		WithLocation(core.ErrorLevel).
		Build()
	l := NewBuilder().
		WithLevel(TraceLevel).
		WithConfig(cfg).
		WithSink(out).
		WithClock(scenarioClock).
		WithContextName(func() string { return "main" }).
		Build()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				l.Log(&core.Record{
					Level:  InfoLevel,
					Target: "worker",
					File:   "pool.go",
					Line:   w + 1,
					Format: "worker %d record %d",
					Args:   []any{w, i},
				})
			}
		}(w)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(out.buf.String(), "\n"), "\n")
	require.Len(t, lines, workers*perWorker)

	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		var w, i int
		_, err := fmt.Sscanf(line[strings.LastIndex(line, "] ")+2:], "worker %d record %d", &w, &i)
		require.NoError(t, err, "malformed line %q", line)

		want := fmt.Sprintf("01:23:45.678 [INFO] (main) worker: [pool.go:%d] worker %d record %d", w+1, w, i)
		assert.Equal(t, want, line)
		seen[line] = true
	}
	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, uint64(workers*perWorker), l.Stats().ProcessedTotal)
}

func TestStats_Reset(t *testing.T) {
	var s Stats
	s.IncrementProcessed()
	s.IncrementFailed()
	s.IncrementFailed()
	assert.Equal(t, Snapshot{ProcessedTotal: 1, FailedTotal: 2}, s.GetSnapshot())

	s.Reset()
	assert.Equal(t, Snapshot{}, s.GetSnapshot())
}

func BenchmarkWriteLogger_Log(b *testing.B) {
	l := NewBuilder().
		WithLevel(InfoLevel).
		WithSink(&discard{}).
		WithClock(scenarioClock).
		Build()
	rec := &core.Record{Level: InfoLevel, Target: "bench", Format: "benchmark message"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Log(rec)
	}
}

func BenchmarkWriteLogger_Filtered(b *testing.B) {
	l := NewBuilder().WithLevel(InfoLevel).WithSink(&discard{}).Build()
	rec := &core.Record{Level: DebugLevel, Target: "bench", Format: "filtered"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Log(rec)
	}
}

func BenchmarkWriteLogger_Parallel(b *testing.B) {
	l := NewBuilder().
		WithLevel(InfoLevel).
		WithSink(&discard{}).
		WithClock(scenarioClock).
		Build()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		rec := &core.Record{Level: InfoLevel, Target: "bench", Format: "parallel message"}
		for pb.Next() {
			l.Log(rec)
		}
	})
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }
