// Package proctree copies a snapshot of a process and its
// descendants, in depth-first pre-order, into a caller-supplied
// buffer.  The walk stops once the buffer is full.
package proctree

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/exp/slices"

	db "eventsync/debug"
	"eventsync/serr"
)

type Tpid int32

func (pid Tpid) String() string {
	return strconv.Itoa(int(pid))
}

type Tstate int

const (
	UNKNOWN Tstate = iota
	RUNNING
	SLEEPING
	WAITING
	STOPPED
	TRACED
	ZOMBIE
	DEAD
	IDLE
	PARKED
)

func (s Tstate) String() string {
	switch s {
	case RUNNING:
		return "RUNNING"
	case SLEEPING:
		return "SLEEPING"
	case WAITING:
		return "WAITING"
	case STOPPED:
		return "STOPPED"
	case TRACED:
		return "TRACED"
	case ZOMBIE:
		return "ZOMBIE"
	case DEAD:
		return "DEAD"
	case IDLE:
		return "IDLE"
	case PARKED:
		return "PARKED"
	default:
		return "UNKNOWN"
	}
}

// ParseState maps a process status, either a /proc state letter or
// a word such as "sleep", to a Tstate.
func ParseState(s string) Tstate {
	switch s {
	case "R", "running":
		return RUNNING
	case "S", "sleep":
		return SLEEPING
	case "D", "disk-sleep", "wait", "lock":
		return WAITING
	case "T", "stop":
		return STOPPED
	case "t", "tracing-stop":
		return TRACED
	case "Z", "zombie":
		return ZOMBIE
	case "X", "x", "dead":
		return DEAD
	case "I", "idle":
		return IDLE
	case "P", "parked":
		return PARKED
	default:
		return UNKNOWN
	}
}

// One process in a snapshot.  Pids that don't exist are 0.
type ProcInfo struct {
	Pid         Tpid
	Ppid        Tpid
	FirstChild  Tpid
	NextSibling Tpid
	State       Tstate
	Utime       time.Duration
	Stime       time.Duration
	Rss         uint64
}

func (pi *ProcInfo) StateName() string {
	return pi.State.String()
}

func (pi *ProcInfo) String() string {
	return fmt.Sprintf("{pid %d ppid %d child %d sib %d %v utime %v stime %v rss %d}", pi.Pid, pi.Ppid, pi.FirstChild, pi.NextSibling, pi.State, pi.Utime, pi.Stime, pi.Rss)
}

type Proc interface {
	Pid() Tpid
	Ppid() (Tpid, error)
	Status() (string, error)
	Times() (time.Duration, time.Duration, error)
	Rss() (uint64, error)
	Children() ([]Proc, error)
}

// Source looks up a process by pid, and returns TErrNotfound if there
// is none.
type Source interface {
	Proc(pid Tpid) (Proc, error)
}

type walker struct {
	buf []ProcInfo
	n   int
}

// Walk fills buf with top and its descendants and returns the number
// of entries filled in.
func Walk(src Source, top Tpid, buf []ProcInfo) (int, error) {
	if len(buf) == 0 {
		return 0, serr.NewErr(serr.TErrInval, "empty buffer")
	}
	p, err := src.Proc(top)
	if err != nil {
		db.DPrintf(db.PROCTREE_ERR, "Proc %v err %v", top, err)
		return 0, err
	}
	w := &walker{buf: buf}
	w.dfs(p, nextSibling(src, p))
	db.DPrintf(db.PROCTREE, "walk %v: %d entries", top, w.n)
	return w.n, nil
}

// Children of p in increasing pid order.  A child list that can't be
// read is treated as empty; the process may have exited.
func children(p Proc) []Proc {
	kids, err := p.Children()
	if err != nil {
		db.DPrintf(db.PROCTREE_ERR, "Children %v err %v", p.Pid(), err)
		return nil
	}
	slices.SortFunc(kids, func(a, b Proc) int {
		return int(a.Pid()) - int(b.Pid())
	})
	return kids
}

// The sibling after p in its parent's child list, or 0.
func nextSibling(src Source, p Proc) Tpid {
	ppid, err := p.Ppid()
	if err != nil || ppid == 0 {
		return 0
	}
	parent, err := src.Proc(ppid)
	if err != nil {
		return 0
	}
	kids := children(parent)
	for i, k := range kids {
		if k.Pid() == p.Pid() && i+1 < len(kids) {
			return kids[i+1].Pid()
		}
	}
	return 0
}

func (w *walker) dfs(p Proc, next Tpid) {
	if w.n >= len(w.buf) {
		return
	}
	kids := children(p)
	pi := &w.buf[w.n]
	w.n += 1

	*pi = ProcInfo{Pid: p.Pid(), NextSibling: next}
	if ppid, err := p.Ppid(); err == nil {
		pi.Ppid = ppid
	}
	if s, err := p.Status(); err == nil {
		pi.State = ParseState(s)
	}
	if ut, st, err := p.Times(); err == nil {
		pi.Utime = ut
		pi.Stime = st
	}
	if rss, err := p.Rss(); err == nil {
		pi.Rss = rss
	}
	if len(kids) > 0 {
		pi.FirstChild = kids[0].Pid()
	}
	for i, k := range kids {
		var sib Tpid
		if i+1 < len(kids) {
			sib = kids[i+1].Pid()
		}
		w.dfs(k, sib)
	}
}
