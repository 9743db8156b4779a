package proctree

import (
	"errors"
	"time"

	"github.com/shirou/gopsutil/process"

	"eventsync/serr"
)

// A Source for the processes of the local machine.
type psSource struct{}

func NewPsSource() Source {
	return psSource{}
}

func (psSource) Proc(pid Tpid) (Proc, error) {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return nil, &serr.Err{ErrCode: serr.TErrNotfound, Obj: pid.String(), Err: err}
	}
	return &psProc{p}, nil
}

type psProc struct {
	p *process.Process
}

func (pp *psProc) Pid() Tpid {
	return Tpid(pp.p.Pid)
}

func (pp *psProc) Ppid() (Tpid, error) {
	ppid, err := pp.p.Ppid()
	return Tpid(ppid), err
}

func (pp *psProc) Status() (string, error) {
	return pp.p.Status()
}

func (pp *psProc) Times() (time.Duration, time.Duration, error) {
	t, err := pp.p.Times()
	if err != nil {
		return 0, 0, err
	}
	return seconds(t.User), seconds(t.System), nil
}

func (pp *psProc) Rss() (uint64, error) {
	mi, err := pp.p.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return mi.RSS, nil
}

func (pp *psProc) Children() ([]Proc, error) {
	kids, err := pp.p.Children()
	if errors.Is(err, process.ErrorNoChildren) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ps := make([]Proc, 0, len(kids))
	for _, k := range kids {
		ps = append(ps, &psProc{k})
	}
	return ps, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
