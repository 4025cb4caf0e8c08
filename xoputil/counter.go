package xoputil

import (
	"sync/atomic"

	"github.com/muir/gwrap"
)

// InstanceCounter hands out instance numbers that start at 1 and
// increase by one for each call with the same key.  Numbers are never
// reused, so they can stand in for object identity in diagnostics.
// The zero value is ready to use.
type InstanceCounter[K comparable] struct {
	counts gwrap.SyncMap[K, *uint64]
}

func NewInstanceCounter[K comparable]() *InstanceCounter[K] {
	return &InstanceCounter[K]{}
}

func (c *InstanceCounter[K]) Next(key K) uint64 {
	n, ok := c.counts.Load(key)
	if !ok {
		n, _ = c.counts.LoadOrStore(key, new(uint64))
	}
	return atomic.AddUint64(n, 1)
}
