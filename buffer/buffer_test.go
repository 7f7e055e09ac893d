package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyPullOnDemand(t *testing.T) {
	pulled := 0
	values := []int{1, 2, 3, 4, 5}
	b := New[int](SourceFunc[int](func() (int, bool) {
		if pulled >= len(values) {
			return 0, false
		}
		v := values[pulled]
		pulled++
		return v, true
	}))

	assert.Equal(t, 0, b.BufferedLen())
	v, err := b.At(2)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, b.BufferedLen(), "indexing at 2 should pull exactly 0..2")
	assert.Equal(t, 3, pulled)
}

func TestReleaseShiftsIndices(t *testing.T) {
	// invariant 13: after release(k), buf[i] = pre_buf[i+k].
	b := FromSlice([]rune("hello"))
	pre := make([]rune, 5)
	for i := range pre {
		v, err := b.At(i)
		require.NoError(t, err)
		pre[i] = v
	}

	require.NoError(t, b.Release(2))
	for i := 0; i < 3; i++ {
		v, err := b.At(i)
		require.NoError(t, err)
		assert.Equal(t, pre[i+2], v)
	}
}

func TestReleaseTooMuchFails(t *testing.T) {
	b := FromSlice([]rune("ab"))
	_, err := b.At(1)
	require.NoError(t, err)
	assert.ErrorIs(t, b.Release(5), ErrExhausted)
}

func TestAtPastEndFails(t *testing.T) {
	b := FromSlice([]int{1, 2})
	_, err := b.At(5)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.True(t, b.ConsumedAll())
}

func TestCursorWalksToSentinel(t *testing.T) {
	b := FromSlice([]rune("ab"))
	c := b.Begin()

	v, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, 'a', v)
	assert.False(t, c.AtEnd())

	v, ok = c.Next()
	require.True(t, ok)
	assert.Equal(t, 'b', v)

	_, ok = c.Next()
	assert.False(t, ok)
	assert.True(t, c.AtEnd())
}

func TestCursorInvalidatedByRelease(t *testing.T) {
	b := FromSlice([]rune("abc"))
	c := b.Begin()
	_, _ = c.Next() // consumes 'a', cursor now at idx 1

	require.NoError(t, b.Release(1))

	// c's idx (1) now refers to the window's "c" rather than "b" it would
	// have pointed to pre-release — this is the documented invalidation,
	// not a crash.
	v, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, 'c', v)
}
