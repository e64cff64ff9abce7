package ordered

import (
	"github.com/anacrolix/btree"
	g "github.com/anacrolix/generics"
	"github.com/anacrolix/missinggo/v2/panicif"
)

// Backed by the anacrolix fork of the ajwerner B-tree. Iterators are checked against a version so
// a Map mutated mid-iteration panics instead of yielding stale records.
type anacrolixMap[K, V any] struct {
	inner   btree.Set[Record[K, V]]
	cmp     CompareFunc[K]
	version int
}

var _ Map[int, struct{}] = (*anacrolixMap[int, struct{}])(nil)

func makeAnacrolixMap[K, V any](cmp CompareFunc[K]) *anacrolixMap[K, V] {
	return &anacrolixMap[K, V]{
		inner: btree.MakeSet(recordCompare[K, V](cmp)),
		cmp:   cmp,
	}
}

func (me *anacrolixMap[K, V]) seekGE(k K) (_ g.Option[Record[K, V]]) {
	it := me.inner.Iterator()
	it.SeekGE(Record[K, V]{Key: k})
	if !it.Valid() {
		return
	}
	return g.Some(it.Cur())
}

func (me *anacrolixMap[K, V]) Get(k K) (_ g.Option[V]) {
	r := me.seekGE(k)
	if r.Ok && me.cmp(r.Value.Key, k) == 0 {
		return g.Some(r.Value.Value)
	}
	return
}

func (me *anacrolixMap[K, V]) Upsert(k K, v V) g.Option[V] {
	me.version++
	old, overwrote := me.inner.Upsert(Record[K, V]{k, v})
	return g.OptionFromTuple(old.Value, overwrote)
}

func (me *anacrolixMap[K, V]) Delete(k K) g.Option[V] {
	actual, _, removed := me.inner.Map.Delete(Record[K, V]{Key: k})
	if removed {
		me.version++
	}
	return g.OptionFromTuple(actual.Value, removed)
}

func (me *anacrolixMap[K, V]) Len() int {
	return me.inner.Len()
}

func (me *anacrolixMap[K, V]) GetLt(k K) (_ g.Option[Record[K, V]]) {
	it := me.inner.Iterator()
	it.SeekLT(Record[K, V]{Key: k})
	if !it.Valid() {
		return
	}
	return g.Some(it.Cur())
}

func (me *anacrolixMap[K, V]) GetLte(k K) g.Option[Record[K, V]] {
	if r := me.seekGE(k); r.Ok && me.cmp(r.Value.Key, k) == 0 {
		return r
	}
	return me.GetLt(k)
}

func (me *anacrolixMap[K, V]) GetGte(k K) g.Option[Record[K, V]] {
	return me.seekGE(k)
}

func (me *anacrolixMap[K, V]) Iter(yield func(K, V) bool) {
	version := me.version
	it := me.inner.Iterator()
	for it.First(); it.Valid(); it.Next() {
		r := it.Cur()
		if !yield(r.Key, r.Value) {
			return
		}
		panicif.NotEq(version, me.version)
	}
}
