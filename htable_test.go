package htable_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/chainhash/htable"
	"github.com/chainhash/htable/hashfn"
	"github.com/chainhash/htable/testutil"
)

func newIntTable(t *testing.T, buckets int) *htable.Table[int, int] {
	t.Helper()
	tbl, err := htable.New[int, int](buckets, hashfn.Int, hashfn.Equal[int])
	require.NoError(t, err)
	return tbl
}

func TestNew(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tbl, err := htable.New[uint64, int](1024, hashfn.Identity, hashfn.Equal[uint64])
		require.NoError(t, err)
		require.NotNil(t, tbl)
		defer tbl.Close()

		assert.Equal(t, 1024, tbl.Buckets())
		assert.Equal(t, 0, tbl.Len())
	})

	t.Run("zero buckets", func(t *testing.T) {
		tbl, err := htable.New[int, int](0, hashfn.Int, hashfn.Equal[int])
		assert.Nil(t, tbl)
		assert.ErrorIs(t, err, htable.ErrInvalidArgument)
	})

	t.Run("negative buckets", func(t *testing.T) {
		tbl, err := htable.New[int, int](-1, hashfn.Int, hashfn.Equal[int])
		assert.Nil(t, tbl)
		assert.ErrorIs(t, err, htable.ErrInvalidArgument)
	})

	t.Run("nil hash function", func(t *testing.T) {
		tbl, err := htable.New[int, int](1024, nil, hashfn.Equal[int])
		assert.Nil(t, tbl)
		assert.ErrorIs(t, err, htable.ErrInvalidArgument)
	})

	t.Run("nil equal function", func(t *testing.T) {
		tbl, err := htable.New[int, int](1024, hashfn.Int, nil)
		assert.Nil(t, tbl)
		assert.ErrorIs(t, err, htable.ErrInvalidArgument)
	})
}

func TestInsertGet(t *testing.T) {
	t.Run("single bucket", func(t *testing.T) {
		tbl := newIntTable(t, 1)
		defer tbl.Close()

		require.NoError(t, tbl.Insert(42, 100))

		v, ok := tbl.Get(42)
		require.True(t, ok)
		assert.Equal(t, 100, v)
		assert.Equal(t, 1, tbl.Len())
	})

	t.Run("update on duplicate key", func(t *testing.T) {
		tbl := newIntTable(t, 16)
		defer tbl.Close()

		require.NoError(t, tbl.Insert(7, 1))
		require.NoError(t, tbl.Insert(7, 2))

		v, ok := tbl.Get(7)
		require.True(t, ok)
		assert.Equal(t, 2, v, "second insert wins")
		assert.Equal(t, 1, tbl.Len(), "exactly one entry per key")
	})

	t.Run("collision chain with update", func(t *testing.T) {
		// Single bucket forces every key into one chain.
		tbl := newIntTable(t, 1)
		defer tbl.Close()

		require.NoError(t, tbl.Insert(0, 100))
		require.NoError(t, tbl.Insert(1, 200))
		require.NoError(t, tbl.Insert(0, 300))

		v, ok := tbl.Get(0)
		require.True(t, ok)
		assert.Equal(t, 300, v)

		v, ok = tbl.Get(1)
		require.True(t, ok)
		assert.Equal(t, 200, v)

		assert.Equal(t, 2, tbl.Len())
	})

	t.Run("string keys", func(t *testing.T) {
		tbl, err := htable.New[string, string](2, hashfn.String, hashfn.Equal[string])
		require.NoError(t, err)
		defer tbl.Close()

		require.NoError(t, tbl.Insert("hello", "world"))
		require.NoError(t, tbl.Insert("world", "hello"))
		require.NoError(t, tbl.Insert("hello", "goodbye"))

		v, ok := tbl.Get("hello")
		require.True(t, ok)
		assert.Equal(t, "goodbye", v)

		v, ok = tbl.Get("world")
		require.True(t, ok)
		assert.Equal(t, "hello", v)
	})

	t.Run("missing key", func(t *testing.T) {
		tbl := newIntTable(t, 16)
		defer tbl.Close()

		v, ok := tbl.Get(99)
		assert.False(t, ok)
		assert.Zero(t, v)
	})

	t.Run("nil pointer value", func(t *testing.T) {
		tbl, err := htable.New[int, *int](16, hashfn.Int, hashfn.Equal[int])
		require.NoError(t, err)
		defer tbl.Close()

		err = tbl.Insert(1, nil)
		assert.ErrorIs(t, err, htable.ErrInvalidArgument)
		assert.Equal(t, 0, tbl.Len())
	})

	t.Run("nil map value", func(t *testing.T) {
		tbl, err := htable.New[int, map[string]int](16, hashfn.Int, hashfn.Equal[int])
		require.NoError(t, err)
		defer tbl.Close()

		err = tbl.Insert(1, nil)
		assert.ErrorIs(t, err, htable.ErrInvalidArgument)
	})

	t.Run("nil table", func(t *testing.T) {
		var tbl *htable.Table[int, int]
		assert.ErrorIs(t, tbl.Insert(1, 1), htable.ErrInvalidArgument)
	})
}

func TestRemove(t *testing.T) {
	t.Run("remove then get", func(t *testing.T) {
		for _, buckets := range []int{1, 2, 16, 1024} {
			tbl := newIntTable(t, buckets)

			require.NoError(t, tbl.Insert(42, 100))
			require.NoError(t, tbl.Remove(42))

			_, ok := tbl.Get(42)
			assert.False(t, ok, "buckets=%d", buckets)
			assert.Equal(t, 0, tbl.Len())

			tbl.Close()
		}
	})

	t.Run("not found", func(t *testing.T) {
		tbl := newIntTable(t, 16)
		defer tbl.Close()

		assert.ErrorIs(t, tbl.Remove(42), htable.ErrNotFound)
	})

	t.Run("colliding keys removed independently", func(t *testing.T) {
		tbl := newIntTable(t, 1)
		defer tbl.Close()

		require.NoError(t, tbl.Insert(0, 100))
		require.NoError(t, tbl.Insert(1, 200))
		require.NoError(t, tbl.Insert(2, 300))

		// Middle of the chain first, then head, then tail.
		require.NoError(t, tbl.Remove(1))
		_, ok := tbl.Get(1)
		assert.False(t, ok)

		v, ok := tbl.Get(0)
		require.True(t, ok)
		assert.Equal(t, 100, v)

		v, ok = tbl.Get(2)
		require.True(t, ok)
		assert.Equal(t, 300, v)

		require.NoError(t, tbl.Remove(0))
		require.NoError(t, tbl.Remove(2))
		assert.Equal(t, 0, tbl.Len())
	})

	t.Run("reinsert after remove", func(t *testing.T) {
		tbl := newIntTable(t, 4)
		defer tbl.Close()

		require.NoError(t, tbl.Insert(1, 10))
		require.NoError(t, tbl.Remove(1))
		require.NoError(t, tbl.Insert(1, 20))

		v, ok := tbl.Get(1)
		require.True(t, ok)
		assert.Equal(t, 20, v)
	})

	t.Run("nil table", func(t *testing.T) {
		var tbl *htable.Table[int, int]
		assert.ErrorIs(t, tbl.Remove(1), htable.ErrInvalidArgument)
	})
}

func TestClose(t *testing.T) {
	t.Run("operations after close", func(t *testing.T) {
		tbl := newIntTable(t, 16)
		require.NoError(t, tbl.Insert(1, 10))

		require.NoError(t, tbl.Close())

		assert.Equal(t, 0, tbl.Len())
		assert.Equal(t, 0, tbl.Buckets())

		assert.ErrorIs(t, tbl.Insert(2, 20), htable.ErrInvalidArgument)
		assert.ErrorIs(t, tbl.Remove(1), htable.ErrInvalidArgument)

		_, ok := tbl.Get(1)
		assert.False(t, ok)
	})

	t.Run("double close", func(t *testing.T) {
		tbl := newIntTable(t, 16)
		require.NoError(t, tbl.Close())
		require.NoError(t, tbl.Close())
	})

	t.Run("nil table", func(t *testing.T) {
		var tbl *htable.Table[int, int]
		require.NoError(t, tbl.Close())
	})
}

func TestCapacityInvariant(t *testing.T) {
	for _, buckets := range []int{1, 7, 1024} {
		tbl := newIntTable(t, buckets)

		for i := 0; i < 100; i++ {
			require.NoError(t, tbl.Insert(i, i))
			assert.Equal(t, buckets, tbl.Buckets())
		}
		for i := 0; i < 50; i++ {
			require.NoError(t, tbl.Remove(i))
			assert.Equal(t, buckets, tbl.Buckets())
		}

		tbl.Close()
	}
}

func TestRange(t *testing.T) {
	t.Run("visits every entry", func(t *testing.T) {
		tbl := newIntTable(t, 8)
		defer tbl.Close()

		want := map[int]int{}
		for i := 0; i < 100; i++ {
			require.NoError(t, tbl.Insert(i, i*10))
			want[i] = i * 10
		}

		got := map[int]int{}
		tbl.Range(func(k, v int) bool {
			got[k] = v
			return true
		})
		assert.Equal(t, want, got)
	})

	t.Run("early stop", func(t *testing.T) {
		tbl := newIntTable(t, 8)
		defer tbl.Close()

		for i := 0; i < 100; i++ {
			require.NoError(t, tbl.Insert(i, i))
		}

		visited := 0
		tbl.Range(func(int, int) bool {
			visited++
			return visited < 10
		})
		assert.Equal(t, 10, visited)
	})

	t.Run("closed table", func(t *testing.T) {
		tbl := newIntTable(t, 8)
		require.NoError(t, tbl.Insert(1, 1))
		require.NoError(t, tbl.Close())

		tbl.Range(func(int, int) bool {
			t.Fatal("callback on closed table")
			return false
		})
	})
}

func TestStats(t *testing.T) {
	tbl := newIntTable(t, 2)
	defer tbl.Close()

	assert.Equal(t, htable.TableStats{Buckets: 2}, tbl.Stats())

	for i := 0; i < 10; i++ {
		require.NoError(t, tbl.Insert(i, i))
	}

	s := tbl.Stats()
	assert.Equal(t, 10, s.Entries)
	assert.Equal(t, 2, s.Buckets)
	assert.InDelta(t, 5.0, s.LoadFactor, 0.001)
	assert.GreaterOrEqual(t, s.MaxChain, 5)
	assert.GreaterOrEqual(t, s.UsedBuckets, 1)
	assert.LessOrEqual(t, s.UsedBuckets, 2)
}

// TestExternalSerialization exercises the documented concurrency contract:
// the table has no internal locking, so shared use requires caller-side
// serialization. Run with -race to verify the mutex discipline suffices.
func TestExternalSerialization(t *testing.T) {
	tbl, err := htable.New[string, int](128, hashfn.String, hashfn.Equal[string])
	require.NoError(t, err)
	defer tbl.Close()

	rng := testutil.NewRNG(4711)
	keys := rng.Strings(1000, 16)

	var mu sync.Mutex
	var g errgroup.Group

	const workers = 8
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < len(keys); i += workers {
				mu.Lock()
				err := tbl.Insert(keys[i], i)
				mu.Unlock()
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, k := range keys {
		v, ok := tbl.Get(k)
		require.True(t, ok, "key %q missing", k)
		assert.Equal(t, i, v)
	}
}
