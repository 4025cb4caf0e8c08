package xopdiag_test

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xoplog/xopdiag"
	"github.com/xoplog/xopdiag/xopdesc"
	"github.com/xoplog/xopdiag/xopnum"
)

var fixedTime = time.Date(2022, 3, 4, 13, 14, 15, 16*int(time.Millisecond), time.UTC)

func newCapture(level xopnum.Severity) (*xopdiag.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := xopdiag.New(
		xopdiag.WithWriter(&buf),
		xopdiag.WithLevel(level),
		xopdiag.WithClock(func() time.Time { return fixedTime }),
	)
	return log, &buf
}

func entryPoint(log *xopdiag.Logger, level xopnum.Severity) func(func() string) {
	switch level {
	case xopnum.Verbose:
		return log.Verbose
	case xopnum.Debug:
		return log.Debug
	case xopnum.Info:
		return log.Info
	case xopnum.Warning:
		return log.Warning
	case xopnum.Error:
		return log.Error
	default:
		return func(msg func() string) { log.Log(level, msg) }
	}
}

func TestGate(t *testing.T) {
	for _, threshold := range xopnum.SeverityValues() {
		for _, level := range xopnum.SeverityValues() {
			threshold, level := threshold, level
			t.Run(threshold.String()+"/"+level.String(), func(t *testing.T) {
				log, buf := newCapture(threshold)
				var calls int
				entryPoint(log, level)(func() string {
					calls++
					return "hello"
				})
				if threshold <= level {
					assert.Equal(t, 1, calls, "thunk called once")
					assert.Equal(t, xopdiag.FormatTag(xopdiag.LibTag, level, fixedTime)+" hello\n", buf.String())
				} else {
					assert.Equal(t, 0, calls, "thunk never called")
					assert.Empty(t, buf.String())
				}
			})
		}
	}
}

func TestNoneDisablesEverything(t *testing.T) {
	log, buf := newCapture(xopnum.Verbose)
	log.SetLevel(xopnum.None)
	var calls int
	msg := func() string { calls++; return "x" }
	log.Verbose(msg)
	log.Debug(msg)
	log.Info(msg)
	log.Warning(msg)
	log.Error(msg)
	assert.Equal(t, 0, calls)
	assert.Empty(t, buf.String())
	for _, level := range xopnum.SeverityValues() {
		if level != xopnum.None {
			assert.False(t, log.Enabled(level), level.String())
		}
	}
}

func TestLogAtNone(t *testing.T) {
	log, buf := newCapture(xopnum.Verbose)
	var calls int
	log.Log(xopnum.None, func() string { calls++; return "sentinel" })
	assert.Equal(t, 1, calls)
	assert.Equal(t, "[BLE|NONE|13:14:15.016]: sentinel\n", buf.String())
	assert.True(t, log.Enabled(xopnum.None))

	buf.Reset()
	log.SetLevel(xopnum.None)
	log.Log(xopnum.None, func() string { calls++; return "still passes" })
	assert.Equal(t, 2, calls, "None <= None")
	assert.Equal(t, "[BLE|NONE|13:14:15.016]: still passes\n", buf.String())
}

func TestSetGetLevel(t *testing.T) {
	log, _ := newCapture(xopnum.None)
	for _, level := range xopnum.SeverityValues() {
		log.SetLevel(level)
		assert.Equal(t, level, log.GetLevel())
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	was := xopdiag.GetLevel()
	defer xopdiag.SetLevel(was)

	xopdiag.SetLevel(xopnum.None)
	var calls int
	msg := func() string { calls++; return "x" }
	xopdiag.Verbose(msg)
	xopdiag.Debug(msg)
	xopdiag.Info(msg)
	xopdiag.Warning(msg)
	xopdiag.Error(msg)
	xopdiag.Log(xopnum.Error, msg)
	assert.Equal(t, 0, calls)
	assert.False(t, xopdiag.Enabled(xopnum.Error))

	xopdiag.SetLevel(xopnum.Warning)
	assert.Equal(t, xopnum.Warning, xopdiag.GetLevel())
	assert.True(t, xopdiag.Enabled(xopnum.Error))
	assert.False(t, xopdiag.Enabled(xopnum.Info))
}

func TestLineFormat(t *testing.T) {
	log, buf := newCapture(xopnum.Debug)
	h := xopdesc.NewHandle(xopdesc.KindCharacteristic)
	log.Debug(xopdesc.Message("wrote %s to %s", []byte{0x0A, 0xFF}, h))
	want := "[BLE|DEBG|13:14:15.016]: wrote 0aff to " + h.Describe() + "\n"
	assert.Equal(t, want, buf.String())
}

func TestCustomTag(t *testing.T) {
	var buf bytes.Buffer
	log := xopdiag.New(
		xopdiag.WithWriter(&buf),
		xopdiag.WithTag("Radio"),
		xopdiag.WithLevel(xopnum.Verbose),
		xopdiag.WithClock(func() time.Time { return fixedTime }),
	)
	log.Warning(func() string { return "w" })
	assert.Equal(t, "[Radio|WARN|13:14:15.016]: w\n", buf.String())
}

func TestMessageFailures(t *testing.T) {
	log, buf := newCapture(xopnum.Verbose)
	assert.NotPanics(t, func() { log.Info(nil) })
	assert.NotPanics(t, func() { log.Info(func() string { panic("kaboom") }) })
	assert.NotPanics(t, func() { log.Info(func() string { panic(errors.New("wrapped")) }) })
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "]: <nil message>"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "]: <message panicked: kaboom>"), lines[1])
	assert.True(t, strings.HasSuffix(lines[2], "]: <message panicked: wrapped>"), lines[2])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteFailureIsSwallowed(t *testing.T) {
	log := xopdiag.New(xopdiag.WithWriter(failingWriter{}), xopdiag.WithLevel(xopnum.Verbose))
	assert.NotPanics(t, func() { log.Error(func() string { return "lost" }) })
	assert.Equal(t, int64(1), log.Dropped())
}

func TestConcurrentLogging(t *testing.T) {
	log, buf := newCapture(xopnum.Verbose)
	const writers = 12
	const setters = 6
	const perWriter = 300
	starter := make(chan struct{})
	var wg sync.WaitGroup
	for s := 0; s < setters; s++ {
		s := s
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-starter
			for i := 0; i < perWriter; i++ {
				log.SetLevel(xopnum.Severity((s + i) % 6))
			}
		}()
	}
	for w := 0; w < writers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-starter
			for i := 0; i < perWriter; i++ {
				level := xopnum.Severity(i % 5)
				log.Log(level, func() string {
					return fmt.Sprintf("writer %02d line %04d %s", w, i, strings.Repeat("z", 40))
				})
			}
		}()
	}
	close(starter)
	wg.Wait()

	assert.True(t, log.GetLevel().IsASeverity())
	out := buf.String()
	if out == "" {
		return
	}
	require.True(t, strings.HasSuffix(out, "\n"))
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		var w, i int
		var rest string
		idx := strings.Index(line, "]: ")
		require.True(t, idx > 0, line)
		tag := line[:idx+2]
		assert.Regexp(t, tagRE, tag)
		_, err := fmt.Sscanf(line[idx+3:], "writer %02d line %04d %s", &w, &i, &rest)
		require.NoError(t, err, line)
		assert.Equal(t, strings.Repeat("z", 40), rest, line)
		assert.Equal(t, xopnum.Severity(i%5).Mnemonic(), tag[5:9], line)
	}
}
