package stats

import (
	"encoding/json"

	db "eventsync/debug"
)

// Counters kept by the event service.
type EventStats struct {
	Nopen        Tcounter
	Nclose       Tcounter
	Nwait        Tcounter
	Nsignal      Tcounter
	Nnotfound    Tcounter
	Nnospace     Tcounter
	Ninterrupted Tcounter
	Nlive        Tcounter
	MaxLive      Tcounter
}

func NewEventStats() *EventStats {
	return &EventStats{}
}

// IncLive records one more live event and updates the high-water mark.
func (st *EventStats) IncLive() {
	Inc(&st.Nlive, 1)
	Max(&st.MaxLive, Read(&st.Nlive))
}

func (st *EventStats) DecLive() {
	Dec(&st.Nlive)
}

// A point-in-time copy of EventStats.
type EventStatsSnapshot struct {
	Nopen        int64 `json:"nopen"`
	Nclose       int64 `json:"nclose"`
	Nwait        int64 `json:"nwait"`
	Nsignal      int64 `json:"nsignal"`
	Nnotfound    int64 `json:"nnotfound"`
	Nnospace     int64 `json:"nnospace"`
	Ninterrupted int64 `json:"ninterrupted"`
	Nlive        int64 `json:"nlive"`
	MaxLive      int64 `json:"maxlive"`
}

func (st *EventStats) Snapshot() EventStatsSnapshot {
	return EventStatsSnapshot{
		Nopen:        Read(&st.Nopen),
		Nclose:       Read(&st.Nclose),
		Nwait:        Read(&st.Nwait),
		Nsignal:      Read(&st.Nsignal),
		Nnotfound:    Read(&st.Nnotfound),
		Nnospace:     Read(&st.Nnospace),
		Ninterrupted: Read(&st.Ninterrupted),
		Nlive:        Read(&st.Nlive),
		MaxLive:      Read(&st.MaxLive),
	}
}

func (st *EventStats) String() string {
	data, err := json.Marshal(st.Snapshot())
	if err != nil {
		db.DFatalf("Marshal stats %v", err)
	}
	return string(data)
}
