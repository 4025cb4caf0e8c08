package xopdesc

import (
	"encoding/hex"
	"strconv"
)

// Bytes describes as lowercase hex, two digits per byte, with no
// separators or prefix: []byte{0x0a, 0xff} is "0aff".
type Bytes []byte

func (b Bytes) Describe() string { return hex.EncodeToString(b) }

// Truncated describes at most max bytes, noting how many were left out.
// Useful for large characteristic values.
func (b Bytes) Truncated(max int) Describable {
	return truncatedBytes{b: b, max: max}
}

type truncatedBytes struct {
	b   Bytes
	max int
}

func (t truncatedBytes) Describe() string {
	if t.max < 0 || len(t.b) <= t.max {
		return t.b.Describe()
	}
	return t.b[:t.max].Describe() + "...(" + strconv.Itoa(len(t.b)-t.max) + " more)"
}
