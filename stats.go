package timeliner

import (
	"strconv"
	"sync/atomic"
)

// Count is an operation counter that concurrent readers can bump.
type Count struct {
	n int64
}

func (me *Count) Add(n int64) {
	atomic.AddInt64(&me.n, n)
}

func (me *Count) Int64() int64 {
	return atomic.LoadInt64(&me.n)
}

func (me *Count) String() string {
	return strconv.FormatInt(me.Int64(), 10)
}

// Live counters of a Timeline.
type counters struct {
	inserts    Count
	rejections Count
	removals   Count
	lookups    Count
	lookupHits Count
}

// Copy takes a snapshot. Fields are loaded one at a time, so a snapshot taken during concurrent
// lookups may be a few lookups apart between Lookups and LookupHits.
func (me *counters) Copy() Stats {
	return Stats{
		Inserts:    me.inserts.Int64(),
		Rejections: me.rejections.Int64(),
		Removals:   me.removals.Int64(),
		Lookups:    me.lookups.Int64(),
		LookupHits: me.lookupHits.Int64(),
	}
}

// Stats is a snapshot of the operations performed on a Timeline.
type Stats struct {
	// Items accepted by Insert or Add.
	Inserts int64
	// Items handed back with an OverlapError.
	Rejections int64
	// Entries deleted by Remove or RemoveHandle.
	Removals int64
	Lookups  int64
	// Lookups that found a covering item.
	LookupHits int64
}
