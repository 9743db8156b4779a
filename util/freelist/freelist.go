// Package freelist keeps up to a fixed number of released objects
// around for reuse. The caller resets an object before reusing it.
package freelist

import (
	"sync"

	db "eventsync/debug"
)

type FreeList[T any] struct {
	mu       sync.Mutex
	freelist []*T
	nNew     int
	nReuse   int
}

func NewFreeList[T any](sz int) *FreeList[T] {
	return &FreeList[T]{freelist: make([]*T, 0, sz)}
}

func (fl *FreeList[T]) Len() int {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	return len(fl.freelist)
}

// New returns a recycled object if one is available, and otherwise
// a freshly allocated one. reused reports which.
func (fl *FreeList[T]) New() (e *T, reused bool) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	index := len(fl.freelist) - 1
	if index < 0 {
		fl.nNew += 1
		return new(T), false
	}
	e = fl.freelist[index]
	fl.freelist[index] = nil
	fl.freelist = fl.freelist[:index]
	fl.nReuse += 1
	return e, true
}

func (fl *FreeList[T]) Free(e *T) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if len(fl.freelist) < cap(fl.freelist) {
		fl.freelist = append(fl.freelist, e)
		return
	}
	db.DPrintf(db.FREELIST, "full; drop %p", e)
}

// Counts of fresh allocations and of reuses.
func (fl *FreeList[T]) Stats() (int, int) {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	return fl.nNew, fl.nReuse
}
