// Package xopbytes puts finished log lines onto an io.Writer.
package xopbytes

import (
	"io"
	"sync"
	"sync/atomic"
)

// LineWriter serializes writes so that each line reaches the
// underlying writer in a single Write call and lines from
// different goroutines never interleave.
type LineWriter struct {
	mu      sync.Mutex
	w       io.Writer
	dropped int64
}

func WriteToIOWriter(w io.Writer) *LineWriter {
	return &LineWriter{
		w: w,
	}
}

// Line writes line, adding a trailing newline if it lacks one.
// Errors from the underlying writer are counted and discarded.
func (lw *LineWriter) Line(line []byte) {
	if len(line) == 0 || line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}
	lw.mu.Lock()
	n, err := lw.w.Write(line)
	lw.mu.Unlock()
	if err != nil || n < len(line) {
		atomic.AddInt64(&lw.dropped, 1)
	}
}

// Dropped is the number of lines that failed to write completely
func (lw *LineWriter) Dropped() int64 {
	return atomic.LoadInt64(&lw.dropped)
}
