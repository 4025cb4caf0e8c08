// xopnum provides the severity constants shared by xopdiag loggers
package xopnum

import "sync/atomic"

type Severity int32

const (
	// Severities are small ordered integers so the gate is a plain
	// numeric comparison.  None must stay above Error: a threshold of
	// None suppresses everything.
	Verbose Severity = 0 // verbose
	Debug   Severity = 1 // debug
	Info    Severity = 2 // info
	Warning Severity = 3 // warning
	Error   Severity = 4 // error
	None    Severity = 5 // none
)

const MaxSeverity = None

var mnemonics = [...]string{
	Verbose: "VERB",
	Debug:   "DEBG",
	Info:    "INFO",
	Warning: "WARN",
	Error:   "ERRO",
	None:    "NONE",
}

// Mnemonic is the four letter form used in log line tags
func (s Severity) Mnemonic() string {
	if s < Verbose || s > MaxSeverity {
		return "????"
	}
	return mnemonics[s]
}

// Threshold is a Severity that may be loaded and stored from
// multiple goroutines at once.  The zero value is Verbose.
type Threshold struct {
	v int32
}

func (t *Threshold) Load() Severity {
	return Severity(atomic.LoadInt32(&t.v))
}

func (t *Threshold) Store(s Severity) {
	atomic.StoreInt32(&t.v, int32(s))
}

// Allows reports if a message at level would pass the gate
func (t *Threshold) Allows(level Severity) bool {
	return t.Load() <= level
}
