package timeliner

import (
	"cmp"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/log"
	"github.com/anacrolix/missinggo/v2/panicif"

	"github.com/cathiecode/timeliner/internal/ordered"
)

type entry[I any] struct {
	item I
	// Stamped by Add, never zero.
	gen uint64
}

// Timeline holds items with pairwise disjoint ranges, keyed by start position. The zero value is an
// empty Timeline using the default Config.
type Timeline[P cmp.Ordered, I Item[P]] struct {
	items    ordered.Map[P, entry[I]]
	logger   log.Logger
	lastGen  uint64
	counters counters
}

func New[P cmp.Ordered, I Item[P]](cfg *Config) *Timeline[P, I] {
	tl := &Timeline[P, I]{}
	tl.init(cfg)
	return tl
}

func (tl *Timeline[P, I]) init(cfg *Config) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	tl.items = ordered.New[P, entry[I]](cfg.Backend, cmp.Compare[P])
	tl.logger = cfg.Logger
}

// Only writers initialize, so readers of a zero Timeline don't race each other.
func (tl *Timeline[P, I]) lazyInit() {
	if tl.items == nil {
		tl.init(nil)
	}
}

// Insert stores item if it overlaps nothing already stored. Otherwise it returns an *OverlapError
// holding item, and the Timeline is unchanged.
func (tl *Timeline[P, I]) Insert(item I) error {
	_, err := tl.Add(item)
	return err
}

// Add is Insert, also returning a Handle to the stored entry.
func (tl *Timeline[P, I]) Add(item I) (h Handle[P], err error) {
	tl.lazyInit()
	err = tl.Check(item)
	if err != nil {
		tl.counters.rejections.Add(1)
		tl.logger.Levelf(log.Debug, "rejected insert: %v", err)
		return
	}
	tl.lastGen++
	h = Handle[P]{start: item.Start(), gen: tl.lastGen}
	panicif.True(tl.items.Upsert(h.start, entry[I]{item: item, gen: h.gen}).Ok)
	tl.counters.inserts.Add(1)
	return
}

func (tl *Timeline[P, I]) IsInsertable(item I) bool {
	return tl.Check(item) == nil
}

// Check returns the *OverlapError Insert would return for item, or nil. Only the stored items
// either side of item's range are examined.
func (tl *Timeline[P, I]) Check(item I) error {
	if tl.items == nil {
		return nil
	}
	start, end := item.Start(), item.End()
	// Ranges that are empty or inverted slip past both neighbour checks.
	if same := tl.items.Get(start); same.Ok {
		return tl.overlapError(item, same.Value.item, SameStart)
	}
	// The last item starting before our end must finish by our start.
	if ahead := tl.items.GetLt(end); ahead.Ok && start < ahead.Value.Value.item.End() {
		side := Tail
		if ahead.Value.Key < start {
			side = Head
		}
		return tl.overlapError(item, ahead.Value.Value.item, side)
	}
	// The first item starting at or after our start must start at or after our end.
	if behind := tl.items.GetGte(start); behind.Ok && behind.Value.Key < end {
		return tl.overlapError(item, behind.Value.Value.item, Tail)
	}
	return nil
}

func (tl *Timeline[P, I]) overlapError(item, conflict I, side Side) *OverlapError[P, I] {
	return &OverlapError[P, I]{
		Item:     item,
		Conflict: conflict,
		Side:     side,
	}
}

// Remove deletes the entry keyed by item.Start(), whatever is stored there. Use RemoveHandle to be
// sure of deleting the entry that was added.
func (tl *Timeline[P, I]) Remove(item I) (removed bool) {
	if tl.items == nil {
		return false
	}
	removed = tl.items.Delete(item.Start()).Ok
	if removed {
		tl.counters.removals.Add(1)
	}
	return
}

// RemoveHandle deletes the entry h refers to. It does nothing for stale handles.
func (tl *Timeline[P, I]) RemoveHandle(h Handle[P]) bool {
	if !tl.resolve(h).Ok {
		return false
	}
	panicif.False(tl.items.Delete(h.start).Ok)
	tl.counters.removals.Add(1)
	return true
}

// Resolve returns the item h refers to, unless the handle is stale.
func (tl *Timeline[P, I]) Resolve(h Handle[P]) (item I, ok bool) {
	e := tl.resolve(h)
	return e.Value.item, e.Ok
}

func (tl *Timeline[P, I]) resolve(h Handle[P]) (ret g.Option[entry[I]]) {
	if tl.items == nil || h.IsZero() {
		return
	}
	ret = tl.items.Get(h.start)
	if ret.Ok && ret.Value.gen != h.gen {
		ret.SetNone()
	}
	return
}

// Get returns the item covering pos: the one with the greatest start at or before pos, provided pos
// is before its end.
func (tl *Timeline[P, I]) Get(pos P) (item I, ok bool) {
	tl.counters.lookups.Add(1)
	if tl.items == nil {
		return
	}
	cand := tl.items.GetLte(pos)
	if !cand.Ok || !(pos < cand.Value.Value.item.End()) {
		return
	}
	tl.counters.lookupHits.Add(1)
	return cand.Value.Value.item, true
}

func (tl *Timeline[P, I]) Len() int {
	if tl.items == nil {
		return 0
	}
	return tl.items.Len()
}

func (tl *Timeline[P, I]) Stats() Stats {
	return tl.counters.Copy()
}
