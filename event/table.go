package event

import (
	"sync"

	db "eventsync/debug"
	"eventsync/serr"
	"eventsync/util/freelist"
)

//
// A table of event slots, indexed by Tid.  Open claims the lowest free
// slot.  Lookup returns a referenced event, which the caller must
// release with Put; the reference keeps the event from being reused
// even if Close clears its slot in the meantime.  Remove clears the
// slot and hands the slot's reference to the caller.  Once the last
// reference is put, the event goes back on the free list.
//

type Table struct {
	sync.Mutex
	slots []*Event
	nlive int
	fl    *freelist.FreeList[Event]
}

func NewTable(maxEvents int) *Table {
	if maxEvents <= 0 {
		db.DFatalf("NewTable: bad size %d", maxEvents)
	}
	return &Table{
		slots: make([]*Event, maxEvents),
		fl:    freelist.NewFreeList[Event](maxEvents),
	}
}

func (t *Table) MaxEvents() int {
	return len(t.slots)
}

func (t *Table) valid(id Tid) bool {
	return id >= 0 && int(id) < len(t.slots)
}

// Number of occupied slots.
func (t *Table) Len() int {
	t.Lock()
	defer t.Unlock()
	return t.nlive
}

// Open allocates an event in the lowest free slot and returns its id.
func (t *Table) Open() (Tid, error) {
	t.Lock()
	defer t.Unlock()

	for i, e := range t.slots {
		if e != nil {
			continue
		}
		id := Tid(i)
		ev, reused := t.fl.New()
		ev.init(id)
		t.slots[i] = ev
		t.nlive += 1
		db.DPrintf(db.EVTABLE, "open %v reused %t gen %d", id, reused, ev.gen)
		return id, nil
	}
	db.DPrintf(db.EVTABLE_ERR, "open: table full (%d)", len(t.slots))
	return -1, serr.NewErr(serr.TErrNospace, "event table")
}

// Caller must hold t lock
func (t *Table) checkL(id Tid, e *Event) {
	if e.id != id {
		db.DFatalf("slot %v holds event %v", id, e.id)
	}
}

func (t *Table) Lookup(id Tid) (*Event, bool) {
	if !t.valid(id) {
		return nil, false
	}

	t.Lock()
	defer t.Unlock()

	e := t.slots[id]
	if e == nil {
		db.DPrintf(db.EVTABLE, "lookup %v: no entry", id)
		return nil, false
	}
	t.checkL(id, e)
	e.nref.Add(1)
	return e, true
}

// Remove clears slot id. The caller owns the slot's reference to the
// returned event and must Put it when done.
func (t *Table) Remove(id Tid) (*Event, bool) {
	if !t.valid(id) {
		return nil, false
	}

	t.Lock()
	defer t.Unlock()

	e := t.slots[id]
	if e == nil {
		db.DPrintf(db.EVTABLE, "remove %v: no entry", id)
		return nil, false
	}
	t.checkL(id, e)
	t.slots[id] = nil
	t.nlive -= 1
	db.DPrintf(db.EVTABLE, "remove %v", id)
	return e, true
}

// Put releases a reference obtained from Lookup or Remove.
func (t *Table) Put(e *Event) {
	n := e.nref.Add(-1)
	if n < 0 {
		db.DFatalf("put %v: nref %d", e.id, n)
	}
	if n == 0 {
		db.DPrintf(db.EVTABLE, "free %v gen %d", e.id, e.gen)
		t.fl.Free(e)
	}
}

// Counts of freshly allocated and reused event objects.
func (t *Table) Allocs() (int, int) {
	return t.fl.Stats()
}
