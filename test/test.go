package test

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventsync/config"
	db "eventsync/debug"
	"eventsync/event"
	"eventsync/event/clnt"
	"eventsync/event/srv"
)

//
// Each test gets its own event service, so tests don't share event
// ids.  Run tests with --maxevents to override the configured table
// size.
//

var maxEvents int

func init() {
	flag.IntVar(&maxEvents, "maxevents", 0, "Event table size (0 means use config)")
}

type Tstate struct {
	*srv.EventSrv
	Clnt *clnt.EventClnt
	T    *testing.T
}

func NewTstate(t *testing.T) *Tstate {
	n := maxEvents
	if n == 0 {
		n = config.Conf.Event.MAX_EVENTS
	}
	return NewTstateMax(t, n)
}

func NewTstateMax(t *testing.T, n int) *Tstate {
	es := srv.NewEventSrv(n)
	ts := &Tstate{
		EventSrv: es,
		Clnt:     clnt.NewEventClnt(es),
		T:        t,
	}
	db.DPrintf(db.TEST, "NewTstate %v max %d", t.Name(), n)
	return ts
}

// WaitBlocked waits until n callers are blocked on event id.
func (ts *Tstate) WaitBlocked(id event.Tid, n int) {
	for {
		nw, err := ts.Nwaiter(id)
		if !assert.Nil(ts.T, err, "Nwaiter %v", id) || nw >= n {
			return
		}
		time.Sleep(time.Millisecond)
	}
}

// Shutdown closes any events the test left open.
func (ts *Tstate) Shutdown() {
	n := ts.EventSrv.Shutdown()
	db.DPrintf(db.TEST, "Shutdown %v: closed %d stats %v", ts.T.Name(), n, ts.Stats())
}
