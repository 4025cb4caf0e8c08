package xopdiag

import (
	"io"
	"os"
	"time"

	"github.com/xoplog/xopdiag/xopnum"
)

// LibTag is the library identifier that starts every line
const LibTag = "BLE"

type Config struct {
	Tag    string           // first field of the line tag
	Writer io.Writer        // destination for finished lines
	Now    func() time.Time // clock for the tag timestamp
	Level  xopnum.Severity  // initial threshold
}

// DefaultConfig writes to standard error with logging disabled
var DefaultConfig = Config{
	Tag:    LibTag,
	Writer: os.Stderr,
	Now:    time.Now,
	Level:  xopnum.None,
}

type ConfigModifier func(*Config)

func WithConfig(config Config) ConfigModifier {
	return func(c *Config) {
		*c = config
	}
}

func WithTag(tag string) ConfigModifier {
	return func(c *Config) {
		c.Tag = tag
	}
}

// WithWriter replaces standard error.  It is meant for capturing
// output in tests.
func WithWriter(w io.Writer) ConfigModifier {
	return func(c *Config) {
		c.Writer = w
	}
}

func WithClock(now func() time.Time) ConfigModifier {
	return func(c *Config) {
		c.Now = now
	}
}

func WithLevel(level xopnum.Severity) ConfigModifier {
	return func(c *Config) {
		c.Level = level
	}
}

func (log *Logger) Config() Config {
	w := log.writer
	if w == nil {
		w = os.Stderr
	}
	return Config{
		Tag:    log.tagOrDefault(),
		Writer: w,
		Now:    log.clock(),
		Level:  log.threshold.Load(),
	}
}
