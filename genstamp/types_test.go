package genstamp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtadjust/flatzone/genstamp"
)

func TestNewInvalid(t *testing.T) {
	_, err := genstamp.New(0)
	assert.ErrorIs(t, err, genstamp.ErrInvalidArgument)
}

func TestMarkAndIsMarked(t *testing.T) {
	s, err := genstamp.New(5)
	require.NoError(t, err)

	assert.False(t, s.IsMarked(2))
	s.Mark(2)
	assert.True(t, s.IsMarked(2))
	assert.False(t, s.IsMarked(3))
}

func TestResetAllForgetsMarks(t *testing.T) {
	s, _ := genstamp.New(3)
	s.Mark(0)
	s.Mark(1)
	g1 := s.Generation()

	s.ResetAll()
	assert.NotEqual(t, g1, s.Generation())
	assert.False(t, s.IsMarked(0))
	assert.False(t, s.IsMarked(1))

	s.Mark(0)
	assert.True(t, s.IsMarked(0))
}

func TestResizeClearsMarks(t *testing.T) {
	s, _ := genstamp.New(2)
	s.Mark(0)

	require.NoError(t, s.Resize(4))
	assert.False(t, s.IsMarked(0))
	s.Mark(3)
	assert.True(t, s.IsMarked(3))

	err := s.Resize(-1)
	assert.ErrorIs(t, err, genstamp.ErrInvalidArgument)
}
