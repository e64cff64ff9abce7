package ordered

import (
	"github.com/ajwerner/btree"
	g "github.com/anacrolix/generics"
)

type ajwernerMap[K, V any] struct {
	inner btree.Set[Record[K, V]]
	cmp   CompareFunc[K]
}

var _ Map[int, struct{}] = (*ajwernerMap[int, struct{}])(nil)

func makeAjwernerMap[K, V any](cmp CompareFunc[K]) *ajwernerMap[K, V] {
	return &ajwernerMap[K, V]{
		inner: btree.MakeSet(recordCompare[K, V](cmp)),
		cmp:   cmp,
	}
}

func (me *ajwernerMap[K, V]) Get(k K) (_ g.Option[V]) {
	it := me.inner.Iterator()
	it.SeekGE(Record[K, V]{Key: k})
	if it.Valid() && me.cmp(it.Cur().Key, k) == 0 {
		return g.Some(it.Cur().Value)
	}
	return
}

func (me *ajwernerMap[K, V]) Upsert(k K, v V) g.Option[V] {
	old, overwrote := me.inner.Upsert(Record[K, V]{k, v})
	return g.OptionFromTuple(old.Value, overwrote)
}

func (me *ajwernerMap[K, V]) Delete(k K) g.Option[V] {
	actual, _, removed := me.inner.Map.Delete(Record[K, V]{Key: k})
	return g.OptionFromTuple(actual.Value, removed)
}

func (me *ajwernerMap[K, V]) Len() int {
	return me.inner.Len()
}

func (me *ajwernerMap[K, V]) GetLt(k K) (_ g.Option[Record[K, V]]) {
	it := me.inner.Iterator()
	it.SeekLT(Record[K, V]{Key: k})
	if !it.Valid() {
		return
	}
	return g.Some(it.Cur())
}

func (me *ajwernerMap[K, V]) GetLte(k K) (_ g.Option[Record[K, V]]) {
	it := me.inner.Iterator()
	it.SeekGE(Record[K, V]{Key: k})
	if it.Valid() && me.cmp(it.Cur().Key, k) == 0 {
		return g.Some(it.Cur())
	}
	return me.GetLt(k)
}

func (me *ajwernerMap[K, V]) GetGte(k K) (_ g.Option[Record[K, V]]) {
	it := me.inner.Iterator()
	it.SeekGE(Record[K, V]{Key: k})
	if !it.Valid() {
		return
	}
	return g.Some(it.Cur())
}

func (me *ajwernerMap[K, V]) Iter(yield func(K, V) bool) {
	it := me.inner.Iterator()
	for it.First(); it.Valid(); it.Next() {
		r := it.Cur()
		if !yield(r.Key, r.Value) {
			return
		}
	}
}
