// Package dbg is the process-wide debug sink shared by every dgram.Handle.
//
// A structural anomaly is logged at most a bounded number of times per
// anomaly class so a pathological file cannot flood output, and the debug
// level is process-wide, set once before any Handle is opened.
package dbg

import (
	"sync"
	"sync/atomic"

	"v.io/x/lib/vlog"
)

// Level mirrors the verbosity scale consumed by v.io/x/lib/vlog.
type Level int32

const (
	// Off emits nothing.
	Off Level = 0
	// Errors emits structural anomalies only (the default once SetLevel(1) is called).
	Errors Level = 1
	// Verbose additionally emits unknown-type notices and SetDebug's banner.
	Verbose Level = 2
)

var level int32 // atomic

// maxRepeatsPerField bounds how many times the same named anomaly repeats
// before it is silenced, guarding against a hot loop flooding output.
const maxRepeatsPerField = 5

var warnCounts sync.Map // field name -> *int32

// SetLevel sets the process-wide debug verbosity. Intended to be called
// once, before any Handle is opened.
func SetLevel(l Level) { atomic.StoreInt32(&level, int32(l)) }

// CurrentLevel returns the process-wide debug verbosity.
func CurrentLevel() Level { return Level(atomic.LoadInt32(&level)) }

// Anomaly logs a single structural-anomaly line naming the field and the
// value that failed validation. It is advisory only and never affects
// program output.
func Anomaly(field string, value interface{}) {
	if CurrentLevel() < Errors {
		return
	}
	if !allow(field) {
		return
	}
	vlog.Errorf("dgram: anomaly field=%s value=%v", field, value)
}

// Notice logs an informational line (unknown datagram type, startup
// banner) only at Verbose level.
func Notice(format string, args ...interface{}) {
	if CurrentLevel() < Verbose {
		return
	}
	vlog.Infof(format, args...)
}

func allow(field string) bool {
	v, _ := warnCounts.LoadOrStore(field, new(int32))
	n := v.(*int32)
	return atomic.AddInt32(n, 1) <= maxRepeatsPerField
}
