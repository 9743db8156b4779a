// Package srv implements the event operations (open, wait, signal,
// close) on top of an event table.  All operations report an unknown
// id as TErrNotfound; open reports a full table as TErrNospace.
package srv

import (
	"context"

	db "eventsync/debug"
	"eventsync/event"
	"eventsync/serr"
	"eventsync/stats"
)

type EventSrv struct {
	tab *event.Table
	st  *stats.EventStats
}

func NewEventSrv(maxEvents int) *EventSrv {
	es := &EventSrv{
		tab: event.NewTable(maxEvents),
		st:  stats.NewEventStats(),
	}
	db.DPrintf(db.EVSRV, "NewEventSrv max %d", maxEvents)
	return es
}

func (es *EventSrv) MaxEvents() int {
	return es.tab.MaxEvents()
}

// Number of live events.
func (es *EventSrv) Len() int {
	return es.tab.Len()
}

func (es *EventSrv) Stats() *stats.EventStats {
	return es.st
}

func (es *EventSrv) notFound(op string, id event.Tid) error {
	stats.Inc(&es.st.Nnotfound, 1)
	db.DPrintf(db.EVSRV_ERR, "%v %v: not found", op, id)
	return serr.NewErr(serr.TErrNotfound, id)
}

func (es *EventSrv) Open() (event.Tid, error) {
	id, err := es.tab.Open()
	if err != nil {
		stats.Inc(&es.st.Nnospace, 1)
		db.DPrintf(db.EVSRV_ERR, "open err %v", err)
		return id, err
	}
	stats.Inc(&es.st.Nopen, 1)
	es.st.IncLive()
	db.DPrintf(db.EVSRV, "open %v", id)
	return id, nil
}

// Wait blocks until event id is signaled or closed.  An event that
// is closed after the lookup still releases the caller, since the
// lookup's reference keeps the object alive.
func (es *EventSrv) Wait(ctx context.Context, id event.Tid) error {
	e, ok := es.tab.Lookup(id)
	if !ok {
		return es.notFound("wait", id)
	}
	defer es.tab.Put(e)

	stats.Inc(&es.st.Nwait, 1)
	db.DPrintf(db.EVSRV, "wait %v", id)
	if err := e.Wait(ctx); err != nil {
		stats.Inc(&es.st.Ninterrupted, 1)
		db.DPrintf(db.EVSRV_ERR, "wait %v err %v", id, err)
		return err
	}
	db.DPrintf(db.EVSRV, "wait %v done", id)
	return nil
}

func (es *EventSrv) Signal(id event.Tid) error {
	e, ok := es.tab.Lookup(id)
	if !ok {
		return es.notFound("signal", id)
	}
	defer es.tab.Put(e)

	stats.Inc(&es.st.Nsignal, 1)
	db.DPrintf(db.EVSRV, "signal %v", id)
	e.Signal()
	return nil
}

// Close removes event id from the table, wakes its waiters, and
// frees id for reuse.  Of concurrent closes of the same id, only one
// succeeds.
func (es *EventSrv) Close(id event.Tid) error {
	e, ok := es.tab.Remove(id)
	if !ok {
		return es.notFound("close", id)
	}
	es.close(e)
	return nil
}

// Caller owns the slot's reference to e
func (es *EventSrv) close(e *event.Event) {
	id := e.Id()
	e.Close()
	es.tab.Put(e)

	stats.Inc(&es.st.Nclose, 1)
	es.st.DecLive()
	db.DPrintf(db.EVSRV, "close %v", id)
}

// Nwaiter returns the number of callers blocked on event id.
func (es *EventSrv) Nwaiter(id event.Tid) (int, error) {
	e, ok := es.tab.Lookup(id)
	if !ok {
		return 0, es.notFound("nwaiter", id)
	}
	defer es.tab.Put(e)
	return e.Nwaiter(), nil
}

// Shutdown closes all live events, releasing their waiters, and
// returns how many it closed.
func (es *EventSrv) Shutdown() int {
	n := 0
	for i := 0; i < es.tab.MaxEvents(); i++ {
		if e, ok := es.tab.Remove(event.Tid(i)); ok {
			es.close(e)
			n += 1
		}
	}
	db.DPrintf(db.EVSRV, "shutdown closed %d stats %v", n, es.st)
	return n
}
