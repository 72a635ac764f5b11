// Package handle contains optional handle sources for atlas pages. Pages accept any comparable
// handle type, so hosts with their own identity scheme do not need this package at all.
package handle

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Handle is a counter-minted identity for content placed in an atlas page
type Handle uint64

const (
	// NoHandle is never returned by Counter.Create and can be used as a sentinel
	NoHandle Handle = 0
)

// Source produces handles that are unique for its lifetime
type Source[H comparable] interface {
	Create() H
}

// Counter mints monotonically increasing handles starting at 1. The zero value is ready to
// use and Create is safe to call from multiple goroutines.
type Counter struct {
	next uint64
}

var _ Source[Handle] = &Counter{}

func (c *Counter) Create() Handle {
	return Handle(atomic.AddUint64(&c.next, 1))
}

// UUIDs mints random version 4 UUIDs, for hosts whose handles must stay unique across
// processes or across independently-created counters
type UUIDs struct{}

var _ Source[uuid.UUID] = UUIDs{}

func (UUIDs) Create() uuid.UUID {
	return uuid.New()
}
