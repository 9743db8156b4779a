// Package clnt wraps the event operations in Event handles, and
// retries opens when the event table is full.
package clnt

import (
	"context"
	"fmt"

	db "eventsync/debug"
	"eventsync/event"
	"eventsync/util/retry"
)

// The four event operations; *srv.EventSrv implements them.
type EventAPI interface {
	Open() (event.Tid, error)
	Wait(ctx context.Context, id event.Tid) error
	Signal(id event.Tid) error
	Close(id event.Tid) error
}

type EventClnt struct {
	api EventAPI
}

func NewEventClnt(api EventAPI) *EventClnt {
	return &EventClnt{api: api}
}

// NewEvent opens a new event.  If the table is full, it retries until
// a slot frees up, the retry budget runs out, or ctx is done.
func (ec *EventClnt) NewEvent(ctx context.Context) (*Event, error) {
	var id event.Tid
	err := retry.RetryNospace(ctx, func() error {
		var err error
		id, err = ec.api.Open()
		return err
	})
	if err != nil {
		db.DPrintf(db.EVCLNT_ERR, "NewEvent err %v", err)
		return nil, err
	}
	db.DPrintf(db.EVCLNT, "NewEvent %v", id)
	return ec.Attach(id), nil
}

// Attach returns a handle for an event opened by someone else.
func (ec *EventClnt) Attach(id event.Tid) *Event {
	return &Event{ec: ec, id: id}
}

// A handle for an event, which may be shared with other callers by
// passing its id.
type Event struct {
	ec *EventClnt
	id event.Tid
}

func (e *Event) Id() event.Tid {
	return e.id
}

// Wait for the event to be signaled or destroyed.
func (e *Event) Wait(ctx context.Context) error {
	db.DPrintf(db.EVCLNT, "Wait %v", e.id)
	return e.ec.api.Wait(ctx, e.id)
}

// Wake up all waiters.
func (e *Event) Signal() error {
	db.DPrintf(db.EVCLNT, "Signal %v", e.id)
	return e.ec.api.Signal(e.id)
}

// Destroy the event, waking up all waiters.
func (e *Event) Destroy() error {
	db.DPrintf(db.EVCLNT, "Destroy %v", e.id)
	return e.ec.api.Close(e.id)
}

func (e *Event) String() string {
	return fmt.Sprintf("event %v", e.id)
}
