// Package event implements event objects and the fixed-size table
// that names them.  An event is a one-shot, wake-all signal: Wait
// blocks until the event is signaled or closed.  Each event has its
// own lock and cond var; the table lock is held only while claiming,
// looking up, or clearing a slot, never while waiting.
package event

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	db "eventsync/debug"
	"eventsync/serr"
)

type Tid int

func (id Tid) String() string {
	return strconv.Itoa(int(id))
}

type Event struct {
	mu       sync.Mutex
	cond     *sync.Cond
	id       Tid
	gen      uint64 // incremented each time the object is reused
	active   bool
	signaled bool
	nwaiter  int
	nref     atomic.Int32 // the table slot holds one; each lookup adds one
}

// Reset e to a fresh, unsignaled event for slot id. Caller must hold
// the table lock and e must have no references.
func (e *Event) init(id Tid) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cond == nil {
		e.cond = sync.NewCond(&e.mu)
	}
	if e.nwaiter != 0 {
		db.DFatalf("init %v: %d waiters on recycled event", id, e.nwaiter)
	}
	e.id = id
	e.gen += 1
	e.active = true
	e.signaled = false
	e.nref.Store(1)
}

func (e *Event) Id() Tid {
	return e.id
}

func (e *Event) Gen() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gen
}

func (e *Event) IsActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

func (e *Event) IsSignaled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.signaled
}

// Number of callers blocked in Wait.
func (e *Event) Nwaiter() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nwaiter
}

func (e *Event) String() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fmt.Sprintf("{id %v gen %d active %t signaled %t nwaiter %d nref %d}", e.id, e.gen, e.active, e.signaled, e.nwaiter, e.nref.Load())
}

// Wait blocks until e is signaled or closed, and returns immediately
// if it already is.  If ctx is done first, Wait returns
// TErrInterrupted.
func (e *Event) Wait(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.signaled || !e.active {
		db.DPrintf(db.EVOBJ, "wait %v: no block", e.id)
		return nil
	}

	// Wake up the waiters so they notice cancellation. Grab e.mu to
	// ensure the wakeup isn't missed by a waiter that is about to
	// sleep.
	stop := context.AfterFunc(ctx, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.cond.Broadcast()
	})
	defer stop()

	e.nwaiter += 1
	defer func() { e.nwaiter -= 1 }()

	for !e.signaled && e.active {
		if ctx.Err() != nil {
			db.DPrintf(db.EVOBJ, "wait %v: interrupted %v", e.id, ctx.Err())
			return serr.NewErr(serr.TErrInterrupted, e.id)
		}
		e.cond.Wait()
	}
	db.DPrintf(db.EVOBJ, "wait %v: woken signaled %t active %t", e.id, e.signaled, e.active)
	return nil
}

// Signal marks e signaled and wakes all waiters.  Signaling an
// already-signaled or closed event has no further effect.
func (e *Event) Signal() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.signaled = true
	db.DPrintf(db.EVOBJ, "signal %v: wake %d", e.id, e.nwaiter)
	e.cond.Broadcast()
}

// Close marks e dead and wakes all waiters; the broadcast happens
// with e.mu held, after the state flip.  Only the caller that removed
// e from the table may close it.
func (e *Event) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.active {
		db.DFatalf("close %v: already closed", e.id)
	}
	e.active = false
	e.signaled = true
	db.DPrintf(db.EVOBJ, "close %v: wake %d", e.id, e.nwaiter)
	e.cond.Broadcast()
}
