package ordered

import (
	"cmp"
	"testing"

	"github.com/bradfitz/iter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forEachBackend(t *testing.T, test func(t *testing.T, m Map[int, string])) {
	for _, b := range Backends() {
		t.Run(b.String(), func(t *testing.T) {
			test(t, New[int, string](b, cmp.Compare[int]))
		})
	}
}

func collect[K, V any](m Map[K, V]) (ret []Record[K, V]) {
	m.Iter(func(k K, v V) bool {
		ret = append(ret, Record[K, V]{k, v})
		return true
	})
	return
}

func TestEmpty(t *testing.T) {
	forEachBackend(t, func(t *testing.T, m Map[int, string]) {
		assert.Zero(t, m.Len())
		assert.False(t, m.Get(0).Ok)
		assert.False(t, m.GetLt(0).Ok)
		assert.False(t, m.GetLte(0).Ok)
		assert.False(t, m.GetGte(0).Ok)
		assert.False(t, m.Delete(0).Ok)
		assert.Empty(t, collect(m))
	})
}

func TestUpsertReplaces(t *testing.T) {
	forEachBackend(t, func(t *testing.T, m Map[int, string]) {
		require.False(t, m.Upsert(1, "a").Ok)
		old := m.Upsert(1, "b")
		require.True(t, old.Ok)
		assert.Equal(t, "a", old.Value)
		assert.Equal(t, 1, m.Len())
		assert.Equal(t, "b", m.Get(1).Unwrap())
	})
}

func TestDelete(t *testing.T) {
	forEachBackend(t, func(t *testing.T, m Map[int, string]) {
		m.Upsert(1, "a")
		m.Upsert(2, "b")
		old := m.Delete(1)
		require.True(t, old.Ok)
		assert.Equal(t, "a", old.Value)
		assert.False(t, m.Delete(1).Ok)
		assert.Equal(t, []Record[int, string]{{2, "b"}}, collect(m))
	})
}

func TestNeighbours(t *testing.T) {
	forEachBackend(t, func(t *testing.T, m Map[int, string]) {
		m.Upsert(30, "c")
		m.Upsert(10, "a")
		m.Upsert(20, "b")

		assert.False(t, m.GetLt(10).Ok)
		assert.Equal(t, Record[int, string]{10, "a"}, m.GetLt(11).Unwrap())
		assert.Equal(t, Record[int, string]{20, "b"}, m.GetLt(30).Unwrap())
		assert.Equal(t, Record[int, string]{30, "c"}, m.GetLt(100).Unwrap())

		assert.False(t, m.GetLte(9).Ok)
		assert.Equal(t, Record[int, string]{10, "a"}, m.GetLte(10).Unwrap())
		assert.Equal(t, Record[int, string]{20, "b"}, m.GetLte(29).Unwrap())
		assert.Equal(t, Record[int, string]{30, "c"}, m.GetLte(30).Unwrap())

		assert.Equal(t, Record[int, string]{10, "a"}, m.GetGte(-5).Unwrap())
		assert.Equal(t, Record[int, string]{20, "b"}, m.GetGte(20).Unwrap())
		assert.Equal(t, Record[int, string]{30, "c"}, m.GetGte(21).Unwrap())
		assert.False(t, m.GetGte(31).Ok)
	})
}

func TestIterAscending(t *testing.T) {
	forEachBackend(t, func(t *testing.T, m Map[int, string]) {
		// Enough keys to split nodes in every backend.
		const n = 500
		for i := range iter.N(n) {
			k := (i * 7919) % n
			m.Upsert(k, "")
		}
		require.Equal(t, n, m.Len())
		var keys []int
		m.Iter(func(k int, _ string) bool {
			keys = append(keys, k)
			return true
		})
		require.Len(t, keys, n)
		for i, k := range keys {
			assert.Equal(t, i, k)
		}
	})
}

func TestIterStops(t *testing.T) {
	forEachBackend(t, func(t *testing.T, m Map[int, string]) {
		for _, k := range []int{1, 2, 3} {
			m.Upsert(k, "")
		}
		calls := 0
		m.Iter(func(int, string) bool {
			calls++
			return false
		})
		assert.Equal(t, 1, calls)
	})
}

func TestParseBackend(t *testing.T) {
	for _, b := range Backends() {
		parsed, err := ParseBackend(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, parsed)
	}
	b, err := ParseBackend("TIDWALL")
	require.NoError(t, err)
	assert.Equal(t, Tidwall, b)
	_, err = ParseBackend("skiplist")
	assert.Error(t, err)
	assert.Equal(t, "Backend(7)", Backend(7).String())
}

func TestIterPanicsOnMutation(t *testing.T) {
	m := makeAnacrolixMap[int, string](cmp.Compare[int])
	m.Upsert(1, "a")
	m.Upsert(2, "b")
	assert.Panics(t, func() {
		m.Iter(func(k int, _ string) bool {
			m.Delete(k)
			return true
		})
	})
}

func TestDeleteReturnsRemovedValue(t *testing.T) {
	forEachBackend(t, func(t *testing.T, m Map[int, string]) {
		for i := range iter.N(100) {
			m.Upsert(i, string(rune('a'+i%26)))
		}
		for i := 0; i < 100; i += 3 {
			old := m.Delete(i)
			require.True(t, old.Ok)
			assert.Equal(t, string(rune('a'+i%26)), old.Value)
			assert.False(t, m.Get(i).Ok)
		}
		assert.Equal(t, 100-34, m.Len())
	})
}
