package timeliner

import (
	"cmp"

	"github.com/anacrolix/sync"
)

// Guarded is a Timeline that can be shared between goroutines. Lookups share a read lock, changes
// take the write lock. The zero value is ready to use.
type Guarded[P cmp.Ordered, I Item[P]] struct {
	mu sync.RWMutex
	tl Timeline[P, I]
}

func NewGuarded[P cmp.Ordered, I Item[P]](cfg *Config) *Guarded[P, I] {
	ret := &Guarded[P, I]{}
	ret.tl.init(cfg)
	return ret
}

func (me *Guarded[P, I]) Insert(item I) error {
	me.mu.Lock()
	defer me.mu.Unlock()
	return me.tl.Insert(item)
}

func (me *Guarded[P, I]) Add(item I) (Handle[P], error) {
	me.mu.Lock()
	defer me.mu.Unlock()
	return me.tl.Add(item)
}

func (me *Guarded[P, I]) Remove(item I) bool {
	me.mu.Lock()
	defer me.mu.Unlock()
	return me.tl.Remove(item)
}

func (me *Guarded[P, I]) RemoveHandle(h Handle[P]) bool {
	me.mu.Lock()
	defer me.mu.Unlock()
	return me.tl.RemoveHandle(h)
}

// Update runs f with the write lock held, for callers that need to check and change the Timeline
// atomically, such as removing one item and inserting its replacement.
func (me *Guarded[P, I]) Update(f func(tl *Timeline[P, I])) {
	me.mu.Lock()
	defer me.mu.Unlock()
	me.tl.lazyInit()
	f(&me.tl)
}

func (me *Guarded[P, I]) IsInsertable(item I) bool {
	me.mu.RLock()
	defer me.mu.RUnlock()
	return me.tl.IsInsertable(item)
}

func (me *Guarded[P, I]) Check(item I) error {
	me.mu.RLock()
	defer me.mu.RUnlock()
	return me.tl.Check(item)
}

func (me *Guarded[P, I]) Get(pos P) (I, bool) {
	me.mu.RLock()
	defer me.mu.RUnlock()
	return me.tl.Get(pos)
}

func (me *Guarded[P, I]) Resolve(h Handle[P]) (I, bool) {
	me.mu.RLock()
	defer me.mu.RUnlock()
	return me.tl.Resolve(h)
}

func (me *Guarded[P, I]) Len() int {
	me.mu.RLock()
	defer me.mu.RUnlock()
	return me.tl.Len()
}

// Counters are atomic, so no lock is taken.
func (me *Guarded[P, I]) Stats() Stats {
	return me.tl.Stats()
}
