package adjset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtadjust/flatzone/adjset"
	"github.com/mtadjust/flatzone/pixelset"
)

func TestSetInsertFindErase(t *testing.T) {
	var s adjset.Set
	assert.True(t, s.Empty())

	assert.True(t, s.Insert(5))
	assert.False(t, s.Insert(5))
	assert.True(t, s.Insert(2))
	assert.Equal(t, 2, s.Size())
	assert.False(t, s.IsSorted())
	assert.True(t, s.Find(2))
	assert.True(t, s.Find(5))
	assert.False(t, s.Find(99))

	assert.True(t, s.Erase(2))
	assert.False(t, s.Erase(2))
	assert.Equal(t, 1, s.Size())
}

func TestSetAppendUncheckedThenFinalize(t *testing.T) {
	var s adjset.Set
	s.AppendUnchecked(3)
	s.AppendUnchecked(1)
	s.AppendUnchecked(3)
	s.MarkUnsorted()
	assert.False(t, s.IsSorted())

	s.Finalize(true)
	assert.True(t, s.IsSorted())
	assert.Equal(t, []int{1, 3}, s.Values())
	assert.True(t, s.Find(1))
	assert.True(t, s.Find(3))
	assert.False(t, s.Find(2))
}

func TestSetFinalizeMaybeSortedBelowThreshold(t *testing.T) {
	var s adjset.Set
	s.AppendUnchecked(9)
	s.AppendUnchecked(4)
	s.FinalizeMaybeSorted(8, true)
	assert.False(t, s.IsSorted())
	assert.True(t, s.Find(9))
	assert.True(t, s.Find(4))
}

func TestSetBloomNoFalseNegatives(t *testing.T) {
	var s adjset.Set
	for i := 0; i < 200; i++ {
		s.Insert(i * 7)
	}
	for i := 0; i < 200; i++ {
		assert.True(t, s.Find(i*7))
	}
}

func TestSetSwap(t *testing.T) {
	var a, b adjset.Set
	a.Insert(1)
	b.Insert(2)
	a.Swap(&b)
	assert.True(t, a.Find(2))
	assert.True(t, b.Find(1))
}

func TestMirrorAndFinalize(t *testing.T) {
	// Three singleton slots, reps 0, 1, 2. One-directional edges:
	// 0->1, 0->2 recorded only from the lower-index slot's set.
	m, err := pixelset.NewSingletons(3)
	require.NoError(t, err)
	view := m.View()

	sets := make([]*adjset.Set, 3)
	for i := range sets {
		sets[i] = &adjset.Set{}
	}
	sets[0].AppendUnchecked(1)
	sets[0].AppendUnchecked(2)

	require.NoError(t, adjset.MirrorAndFinalize(sets, view))

	assert.Equal(t, []int{1, 2}, sets[0].Values())
	assert.Equal(t, []int{0}, sets[1].Values())
	assert.Equal(t, []int{0}, sets[2].Values())
	for _, s := range sets {
		assert.True(t, s.IsSorted())
	}
}

func TestMirrorAndFinalizeLengthMismatch(t *testing.T) {
	m, err := pixelset.NewSingletons(3)
	require.NoError(t, err)

	err = adjset.MirrorAndFinalize(make([]*adjset.Set, 2), m.View())
	assert.ErrorIs(t, err, adjset.ErrLengthMismatch)
}
