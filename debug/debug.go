package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//
// Debug output is controled by EVSYNCDEBUG environment variable, which
// can be a list of selectors (e.g., "EVTABLE;EVSRV").
//

const EVSYNCDEBUG = "EVSYNCDEBUG"

var labels atomic.Pointer[map[Tselector]bool]
var name atomic.Pointer[string]
var logger *zap.SugaredLogger

func init() {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000")
	ec.LevelKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), zapcore.DebugLevel)
	logger = zap.New(core).Sugar()
	SetName(filepath.Base(os.Args[0]))
	SetLabels(os.Getenv(EVSYNCDEBUG))
}

func parseLabels(s string) map[Tselector]bool {
	m := make(map[Tselector]bool)
	if s == "" {
		return m
	}
	for _, l := range strings.Split(s, ";") {
		m[Tselector(l)] = true
	}
	return m
}

// SetLabels replaces the set of enabled selectors.
func SetLabels(s string) {
	m := parseLabels(s)
	labels.Store(&m)
}

func SetName(n string) {
	name.Store(&n)
}

func IsLabelSet(label Tselector) bool {
	if label == ALWAYS {
		return true
	}
	return (*labels.Load())[label]
}

func DPrintf(label Tselector, format string, v ...interface{}) {
	if IsLabelSet(label) {
		logger.Infof("%v %v %v", *name.Load(), label, fmt.Sprintf(format, v...))
	}
}

func DFatalf(format string, v ...interface{}) {
	// Get info for the caller.
	pc, file, line, ok := runtime.Caller(1)
	fnDetails := runtime.FuncForPC(pc)
	if ok && fnDetails != nil {
		logger.Fatalf("FATAL %v %v %v:%v %v", *name.Load(), fnDetails.Name(), file, line, fmt.Sprintf(format, v...))
	} else {
		logger.Fatalf("FATAL %v (missing details) %v", *name.Load(), fmt.Sprintf(format, v...))
	}
}
