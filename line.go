package xopdiag

import (
	"time"

	"github.com/xoplog/xopdiag/xopnum"
)

// FormatTag builds "[<tag>|<LEVL>|HH:MM:SS.mmm]:".  The clock is the
// UTC time of day; the date is dropped.
func FormatTag(tag string, level xopnum.Severity, t time.Time) string {
	return "[" + tag + "|" + level.Mnemonic() + "|" + t.UTC().Format("15:04:05.000") + "]:"
}
