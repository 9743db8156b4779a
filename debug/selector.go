package debug

type Tselector string

// ALWAYS
const (
	ALWAYS Tselector = "ALWAYS"
	ERROR  Tselector = "ERROR"
	NEVER  Tselector = "NEVER"
)

// ERR
const (
	ERR Tselector = "_ERR"
)

// Benchmarks
const (
	BENCH Tselector = "BENCH"
)

// Tests
const (
	TEST  Tselector = "TEST"
	TEST1 Tselector = "TEST1"
	DELAY Tselector = "DELAY"
)

// Events
const (
	EVOBJ       Tselector = "EVOBJ"
	EVTABLE     Tselector = "EVTABLE"
	EVTABLE_ERR Tselector = EVTABLE + ERR
	EVSRV       Tselector = "EVSRV"
	EVSRV_ERR   Tselector = EVSRV + ERR
	EVCLNT      Tselector = "EVCLNT"
	EVCLNT_ERR  Tselector = EVCLNT + ERR
	FREELIST    Tselector = "FREELIST"
	RETRY       Tselector = "RETRY"
)

// Procs
const (
	PROCTREE     Tselector = "PROCTREE"
	PROCTREE_ERR Tselector = PROCTREE + ERR
)
