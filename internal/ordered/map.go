package ordered

import (
	g "github.com/anacrolix/generics"
)

type CompareFunc[T any] func(a, b T) int

type Record[K, V any] struct {
	Key   K
	Value V
}

// Map is a key-ordered map with neighbour lookups. Implementations do no locking.
type Map[K, V any] interface {
	Get(k K) g.Option[V]
	// Returns the value that was replaced, if any.
	Upsert(k K, v V) g.Option[V]
	// Returns the value that was removed, if any.
	Delete(k K) g.Option[V]
	Len() int
	// The record with the greatest key strictly less than k.
	GetLt(k K) g.Option[Record[K, V]]
	// The record with the greatest key less than or equal to k.
	GetLte(k K) g.Option[Record[K, V]]
	// The record with the smallest key greater than or equal to k.
	GetGte(k K) g.Option[Record[K, V]]
	// Yields records in ascending key order. Don't mutate the map while iterating.
	Iter(yield func(K, V) bool)
}

func recordCompare[K, V any](cmp CompareFunc[K]) func(a, b Record[K, V]) int {
	return func(a, b Record[K, V]) int {
		return cmp(a.Key, b.Key)
	}
}

func recordLess[K, V any](cmp CompareFunc[K]) func(a, b Record[K, V]) bool {
	return func(a, b Record[K, V]) bool {
		return cmp(a.Key, b.Key) < 0
	}
}
