// proctree prints a depth-first snapshot of a process and its
// descendants.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	db "eventsync/debug"
	"eventsync/proctree"
)

var pid = flag.Int("pid", os.Getpid(), "Top of the tree")
var nentry = flag.Int("n", 512, "Max number of entries")

func main() {
	flag.Parse()
	buf := make([]proctree.ProcInfo, *nentry)
	n, err := proctree.Walk(proctree.NewPsSource(), proctree.Tpid(*pid), buf)
	if err != nil {
		db.DFatalf("Walk %v err %v", *pid, err)
	}
	fmt.Printf("DFS traversal (%d entries) for pid %d:\n", n, *pid)
	fmt.Printf("%-7s %-7s %-7s %-7s %-10s %-12s %-12s %s\n", "PID", "PPID", "CHILD", "SIBLING", "STATE", "UTIME", "STIME", "RSS")
	for _, pi := range buf[:n] {
		fmt.Printf("%-7d %-7d %-7d %-7d %-10s %-12.6f %-12.6f %s\n",
			pi.Pid, pi.Ppid, pi.FirstChild, pi.NextSibling, pi.StateName(),
			pi.Utime.Seconds(), pi.Stime.Seconds(), humanize.IBytes(pi.Rss))
	}
}
