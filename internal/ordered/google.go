package ordered

import (
	g "github.com/anacrolix/generics"
	"github.com/google/btree"
)

const googleDegree = 32

type googleMap[K, V any] struct {
	inner *btree.BTreeG[Record[K, V]]
	cmp   CompareFunc[K]
}

var _ Map[int, struct{}] = googleMap[int, struct{}]{}

func makeGoogleMap[K, V any](cmp CompareFunc[K]) googleMap[K, V] {
	return googleMap[K, V]{
		inner: btree.NewG[Record[K, V]](googleDegree, recordLess[K, V](cmp)),
		cmp:   cmp,
	}
}

func (me googleMap[K, V]) Get(k K) g.Option[V] {
	r, ok := me.inner.Get(Record[K, V]{Key: k})
	return g.OptionFromTuple(r.Value, ok)
}

func (me googleMap[K, V]) Upsert(k K, v V) g.Option[V] {
	old, replaced := me.inner.ReplaceOrInsert(Record[K, V]{k, v})
	return g.OptionFromTuple(old.Value, replaced)
}

func (me googleMap[K, V]) Delete(k K) g.Option[V] {
	old, deleted := me.inner.Delete(Record[K, V]{Key: k})
	return g.OptionFromTuple(old.Value, deleted)
}

func (me googleMap[K, V]) Len() int {
	return me.inner.Len()
}

func (me googleMap[K, V]) GetLt(k K) (ret g.Option[Record[K, V]]) {
	me.inner.DescendLessOrEqual(Record[K, V]{Key: k}, func(r Record[K, V]) bool {
		if me.cmp(r.Key, k) == 0 {
			return true
		}
		ret.Set(r)
		return false
	})
	return
}

func (me googleMap[K, V]) GetLte(k K) (ret g.Option[Record[K, V]]) {
	me.inner.DescendLessOrEqual(Record[K, V]{Key: k}, func(r Record[K, V]) bool {
		ret.Set(r)
		return false
	})
	return
}

func (me googleMap[K, V]) GetGte(k K) (ret g.Option[Record[K, V]]) {
	me.inner.AscendGreaterOrEqual(Record[K, V]{Key: k}, func(r Record[K, V]) bool {
		ret.Set(r)
		return false
	})
	return
}

func (me googleMap[K, V]) Iter(yield func(K, V) bool) {
	me.inner.Ascend(func(r Record[K, V]) bool {
		return yield(r.Key, r.Value)
	})
}
