package stats

import (
	"sync/atomic"
)

const STATS = true

type Tcounter = atomic.Int64

func Inc(c *Tcounter, v int64) {
	if STATS {
		c.Add(v)
	}
}

func Dec(c *Tcounter) {
	if STATS {
		c.Add(-1)
	}
}

// Max raises max to v if v is larger.
func Max(max *Tcounter, v int64) {
	if STATS {
		for {
			old := max.Load()
			if v <= old {
				return
			}
			if max.CompareAndSwap(old, v) {
				return
			}
		}
	}
}

func Read(c *Tcounter) int64 {
	if STATS {
		return c.Load()
	}
	return 0
}
