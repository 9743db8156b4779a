// evtest exercises the event operations: it opens several events,
// blocks a group of waiters on each, signals the events one at a time
// after a random delay, and then closes them.
package main

import (
	"context"
	"flag"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/thanhpk/randstr"
	"golang.org/x/sys/unix"

	"eventsync/config"
	db "eventsync/debug"
	"eventsync/event/clnt"
	"eventsync/event/srv"
	"eventsync/serr"
)

var nevent = flag.Int("events", config.Conf.EvTest.EVENTS, "Number of events")
var nwaiter = flag.Int("waiters", config.Conf.EvTest.WAITERS, "Waiters per event")
var maxDelay = flag.Duration("maxdelay", config.Conf.EvTest.MAX_DELAY, "Max delay before signaling an event")
var maxEvents = flag.Int("maxevents", config.Conf.Event.MAX_EVENTS, "Event table size")

type waiter struct {
	ev  int
	i   int
	tid int
	lat time.Duration
	err error
}

func main() {
	flag.Parse()
	tag := randstr.Hex(4)
	ctx := context.Background()

	es := srv.NewEventSrv(*maxEvents)
	ec := clnt.NewEventClnt(es)

	evs := make([]*clnt.Event, *nevent)
	for i := range evs {
		ev, err := ec.NewEvent(ctx)
		if err != nil {
			db.DFatalf("[%v] NewEvent %d err %v", tag, i, err)
		}
		evs[i] = ev
		db.DPrintf(db.ALWAYS, "[%v] created event #%d id %v", tag, i, ev.Id())
	}

	// Set before an event is signaled; read by its waiters after they
	// wake up.
	sigTime := make([]time.Time, *nevent)

	var wg sync.WaitGroup
	nw := *nevent * *nwaiter
	ws := make([]*waiter, 0, nw)
	for e, ev := range evs {
		for i := 0; i < *nwaiter; i++ {
			w := &waiter{ev: e, i: i}
			ws = append(ws, w)
			wg.Add(1)
			go func(ev *clnt.Event) {
				defer wg.Done()
				runtime.LockOSThread()
				defer runtime.UnlockOSThread()
				w.tid = unix.Gettid()
				db.DPrintf(db.ALWAYS, "[%v] waiter ev%d#%d tid %d waiting on %v", tag, w.ev, w.i, w.tid, ev.Id())
				w.err = ev.Wait(ctx)
				w.lat = time.Since(sigTime[w.ev])
				db.DPrintf(db.ALWAYS, "[%v] waiter ev%d#%d tid %d woke up from %v err %v", tag, w.ev, w.i, w.tid, ev.Id(), w.err)
			}(ev)
		}
	}

	for _, ev := range evs {
		for {
			n, err := es.Nwaiter(ev.Id())
			if err != nil {
				db.DFatalf("[%v] Nwaiter %v err %v", tag, ev.Id(), err)
			}
			if n >= *nwaiter {
				break
			}
			time.Sleep(time.Millisecond)
		}
	}

	for e, ev := range evs {
		d := *maxDelay/3 + time.Duration(rand.Int63n(int64(*maxDelay-*maxDelay/3)+1))
		db.DPrintf(db.ALWAYS, "[%v] waiting %v before signaling %v", tag, d, ev.Id())
		time.Sleep(d)
		sigTime[e] = time.Now()
		if err := ev.Signal(); err != nil {
			db.DFatalf("[%v] Signal %v err %v", tag, ev.Id(), err)
		}
	}
	wg.Wait()

	for _, ev := range evs {
		if err := ev.Destroy(); err != nil {
			db.DFatalf("[%v] Destroy %v err %v", tag, ev.Id(), err)
		}
		if err := ev.Wait(ctx); !serr.IsErrCode(err, serr.TErrNotfound) {
			db.DFatalf("[%v] Wait after close %v err %v", tag, ev.Id(), err)
		}
		if err := ev.Destroy(); !serr.IsErrCode(err, serr.TErrNotfound) {
			db.DFatalf("[%v] Destroy after close %v err %v", tag, ev.Id(), err)
		}
	}

	lat := make([]float64, 0, len(ws))
	for _, w := range ws {
		if w.err != nil {
			db.DFatalf("[%v] waiter ev%d#%d err %v", tag, w.ev, w.i, w.err)
		}
		lat = append(lat, float64(w.lat.Microseconds()))
	}
	if len(lat) > 0 {
		printLat(tag, lat)
	}
	db.DPrintf(db.ALWAYS, "[%v] all %d waiters woken; stats %v", tag, len(ws), es.Stats())
}

func printLat(tag string, lat []float64) {
	avgLat, err := stats.Mean(lat)
	if err != nil {
		db.DFatalf("Mean err %v", err)
	}
	maxLat, err := stats.Max(lat)
	if err != nil {
		db.DFatalf("Max err %v", err)
	}
	p99Lat, err := stats.Percentile(lat, 99)
	if err != nil {
		db.DFatalf("Percentile err %v", err)
	}
	db.DPrintf(db.ALWAYS, "[%v] wake latency mean %vus max %vus p99 %vus", tag, avgLat, maxLat, p99Lat)
}
