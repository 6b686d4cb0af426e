package bitset

import (
	"math/rand"
	"testing"

	"github.com/RoaringBitmap/roaring"
	"github.com/rmera/molstore/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSet(r *rand.Rand, n int) *Bitset {
	b := New(n)
	for i := 0; i < n; i++ {
		if r.Intn(3) == 0 {
			b.AddUnsafe(i)
		}
	}
	return b
}

func TestAddHas(t *testing.T) {
	b := New(130)
	require.NoError(t, b.Add(0, 63, 64, 129))
	assert.True(t, b.Has(0))
	assert.True(t, b.Has(63))
	assert.True(t, b.Has(64))
	assert.True(t, b.Has(129))
	assert.False(t, b.Has(1))
	assert.False(t, b.Has(130))
	assert.False(t, b.Has(-1))
	assert.Equal(t, 4, b.Size())

	err := b.Add(5, 130)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrIndexOutOfRange))
	assert.False(t, b.Has(5), "a failed Add must not set anything")

	require.NoError(t, b.Remove(63))
	assert.False(t, b.Has(63))
	assert.Equal(t, 3, b.Size())
}

func TestSetAllKeepsTailClear(t *testing.T) {
	for _, n := range []int{0, 1, 63, 64, 65, 200} {
		b := NewFull(n)
		assert.Equal(t, n, b.Size(), "n=%d", n)
		assert.True(t, b.IsAllSet())
		b.Flip()
		assert.True(t, b.IsEmpty())
		b.SetAll(true).SetAll(false)
		assert.Equal(t, 0, b.Size())
	}
}

func TestForEachAscending(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		n := r.Intn(500) + 1
		b := randomSet(r, n)
		prev := -1
		visits := 0
		b.ForEach(func(i, ord int) {
			assert.Greater(t, i, prev)
			assert.True(t, b.Has(i))
			assert.Equal(t, visits, ord)
			prev = i
			visits++
		})
		assert.Equal(t, b.Size(), visits)
	}
}

func TestIntersection(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := r.Intn(300) + 1
		a := randomSet(r, n)
		b := randomSet(r, n)
		ab, err := a.NewIntersection(b)
		require.NoError(t, err)
		ba, err := b.NewIntersection(a)
		require.NoError(t, err)
		assert.True(t, ab.Equals(ba))
		min := a.Size()
		if b.Size() < min {
			min = b.Size()
		}
		assert.LessOrEqual(t, ab.Size(), min)
		ab.ForEach(func(i, _ int) {
			assert.True(t, a.Has(i) && b.Has(i))
		})
	}
}

func TestUnionDifference(t *testing.T) {
	a, _ := FromIndices(10, 1, 2, 3)
	b, _ := FromIndices(10, 3, 4)
	u, err := a.NewUnion(b)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, u.ToIndices())
	d, err := a.NewDifference(b)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, d.ToIndices())
	assert.True(t, a.Intersects(b))
	require.NoError(t, a.Intersect(b))
	assert.Equal(t, []int{3}, a.ToIndices())
}

func TestCapacityMismatch(t *testing.T) {
	a := New(10)
	b := New(11)
	_, err := a.NewIntersection(b)
	assert.True(t, errors.Is(err, errors.ErrCapacityMismatch))
	assert.True(t, errors.Is(a.Union(b), errors.ErrCapacityMismatch))
	assert.False(t, a.Equals(b))
	assert.False(t, a.Intersects(b))
}

func TestRoaringRoundTrip(t *testing.T) {
	a, _ := FromIndices(1000, 0, 17, 999)
	rb := a.Roaring()
	assert.Equal(t, uint64(3), rb.GetCardinality())
	back, err := FromRoaring(1000, rb)
	require.NoError(t, err)
	assert.True(t, a.Equals(back))

	_, err = FromRoaring(10, roaring.BitmapOf(3, 10))
	assert.True(t, errors.Is(err, errors.ErrIndexOutOfRange))
}
