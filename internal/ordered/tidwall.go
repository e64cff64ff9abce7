package ordered

import (
	g "github.com/anacrolix/generics"
	"github.com/tidwall/btree"
)

type tidwallMap[K, V any] struct {
	inner *btree.BTreeG[Record[K, V]]
	cmp   CompareFunc[K]
}

var _ Map[int, struct{}] = tidwallMap[int, struct{}]{}

func makeTidwallMap[K, V any](cmp CompareFunc[K]) tidwallMap[K, V] {
	inner := btree.NewBTreeGOptions(recordLess[K, V](cmp), btree.Options{
		Degree:  32,
		NoLocks: true,
	})
	return tidwallMap[K, V]{inner: inner, cmp: cmp}
}

func (me tidwallMap[K, V]) Get(k K) g.Option[V] {
	r, ok := me.inner.Get(Record[K, V]{Key: k})
	return g.OptionFromTuple(r.Value, ok)
}

func (me tidwallMap[K, V]) Upsert(k K, v V) g.Option[V] {
	old, replaced := me.inner.Set(Record[K, V]{k, v})
	return g.OptionFromTuple(old.Value, replaced)
}

func (me tidwallMap[K, V]) Delete(k K) g.Option[V] {
	old, deleted := me.inner.Delete(Record[K, V]{Key: k})
	return g.OptionFromTuple(old.Value, deleted)
}

func (me tidwallMap[K, V]) Len() int {
	return me.inner.Len()
}

func (me tidwallMap[K, V]) GetLt(k K) (ret g.Option[Record[K, V]]) {
	me.inner.Descend(Record[K, V]{Key: k}, func(r Record[K, V]) bool {
		if me.cmp(r.Key, k) == 0 {
			return true
		}
		ret.Set(r)
		return false
	})
	return
}

func (me tidwallMap[K, V]) GetLte(k K) (ret g.Option[Record[K, V]]) {
	me.inner.Descend(Record[K, V]{Key: k}, func(r Record[K, V]) bool {
		ret.Set(r)
		return false
	})
	return
}

func (me tidwallMap[K, V]) GetGte(k K) (ret g.Option[Record[K, V]]) {
	me.inner.Ascend(Record[K, V]{Key: k}, func(r Record[K, V]) bool {
		ret.Set(r)
		return false
	})
	return
}

func (me tidwallMap[K, V]) Iter(yield func(K, V) bool) {
	me.inner.Scan(func(r Record[K, V]) bool {
		return yield(r.Key, r.Value)
	})
}
