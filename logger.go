package xopdiag

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/xoplog/xopdiag/xopbytes"
	"github.com/xoplog/xopdiag/xopnum"
)

// Logger holds a threshold and writes lines that pass it.  All
// methods are safe for concurrent use.  The zero Logger is usable: it
// has threshold Verbose, tag LibTag, and writes to standard error.
type Logger struct {
	threshold xopnum.Threshold
	tag       string
	writer    io.Writer
	out       *xopbytes.LineWriter
	now       func() time.Time
}

func New(mods ...ConfigModifier) *Logger {
	config := DefaultConfig
	for _, mod := range mods {
		mod(&config)
	}
	if config.Writer == nil {
		config.Writer = DefaultConfig.Writer
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	out := stderrLines
	if config.Writer != os.Stderr {
		out = xopbytes.WriteToIOWriter(config.Writer)
	}
	log := &Logger{
		tag:    config.Tag,
		writer: config.Writer,
		out:    out,
		now:    config.Now,
	}
	log.threshold.Store(config.Level)
	return log
}

func (log *Logger) SetLevel(level xopnum.Severity) { log.threshold.Store(level) }

func (log *Logger) GetLevel() xopnum.Severity { return log.threshold.Load() }

// Enabled reports if a message at level would currently be written
func (log *Logger) Enabled(level xopnum.Severity) bool {
	return log.threshold.Allows(level)
}

// Log writes the text produced by msg if the threshold is at or below
// level.  msg is not called at all when the line is suppressed.
func (log *Logger) Log(level xopnum.Severity, msg func() string) {
	if !log.Enabled(level) {
		return
	}
	tag := FormatTag(log.tagOrDefault(), level, log.clock()())
	log.lines().Line([]byte(tag + " " + render(msg) + "\n"))
}

func (log *Logger) Verbose(msg func() string) { log.Log(xopnum.Verbose, msg) }
func (log *Logger) Debug(msg func() string)   { log.Log(xopnum.Debug, msg) }
func (log *Logger) Info(msg func() string)    { log.Log(xopnum.Info, msg) }
func (log *Logger) Warning(msg func() string) { log.Log(xopnum.Warning, msg) }
func (log *Logger) Error(msg func() string)   { log.Log(xopnum.Error, msg) }

// Dropped counts lines the writer failed to accept
func (log *Logger) Dropped() int64 { return log.lines().Dropped() }

// stderrLines is shared by every logger that writes to standard error
// so their lines are serialized by one lock.
var stderrLines = xopbytes.WriteToIOWriter(os.Stderr)

func (log *Logger) lines() *xopbytes.LineWriter {
	if log.out == nil {
		return stderrLines
	}
	return log.out
}

func (log *Logger) clock() func() time.Time {
	if log.now == nil {
		return time.Now
	}
	return log.now
}

func (log *Logger) tagOrDefault() string {
	if log.tag == "" {
		return LibTag
	}
	return log.tag
}

func render(msg func() string) (s string) {
	if msg == nil {
		return "<nil message>"
	}
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("<message panicked: %v>", r)
		}
	}()
	return msg()
}
