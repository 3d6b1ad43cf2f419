package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkip2Encode(t *testing.T) {
	enc := Skip2{}

	m, err := enc.Encode("hello", 1, LevelL, true)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Version())
	assert.Equal(t, 21, m.Size())

	// Finder pattern corners are dark, separators are light
	assert.True(t, m.Dark(0, 0))
	assert.True(t, m.Dark(0, 20))
	assert.True(t, m.Dark(20, 0))
	assert.False(t, m.Dark(7, 7))
}

func TestSkip2EncodeGrowsToFit(t *testing.T) {
	enc := Skip2{}

	m, err := enc.Encode(strings.Repeat("a", 100), 1, LevelL, true)
	require.NoError(t, err)
	assert.Greater(t, m.Version(), 1)
	assert.Equal(t, 17+4*m.Version(), m.Size())
}

func TestSkip2EncodeMinVersion(t *testing.T) {
	enc := Skip2{}

	m, err := enc.Encode("hi", 5, LevelL, true)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Version())
	assert.Equal(t, 37, m.Size())
}

func TestSkip2EncodeCapacityExceeded(t *testing.T) {
	enc := Skip2{}

	_, err := enc.Encode(strings.Repeat("x", 4000), 1, LevelL, true)
	require.ErrorIs(t, err, ErrCapacityExceeded)

	// Without fit the forced version must hold the data
	_, err = enc.Encode(strings.Repeat("x", 100), 1, LevelL, false)
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestSkip2EncodeInvalidArguments(t *testing.T) {
	enc := Skip2{}

	_, err := enc.Encode("hi", 0, LevelL, true)
	assert.Error(t, err)

	_, err = enc.Encode("hi", 41, LevelL, true)
	assert.Error(t, err)

	_, err = enc.Encode("hi", 1, Level(9), true)
	assert.Error(t, err)
}

func TestSkip2EncodeDeterministic(t *testing.T) {
	enc := Skip2{}

	a, err := enc.Encode("https://example.com", 1, LevelL, true)
	require.NoError(t, err)
	b, err := enc.Encode("https://example.com", 1, LevelL, true)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestMatrix(t *testing.T) {
	grid := make([][]bool, 21)
	for i := range grid {
		grid[i] = make([]bool, 21)
	}
	grid[10][10] = true

	m := NewMatrix(1, grid)
	grid[10][10] = false // NewMatrix copies

	assert.True(t, m.Dark(10, 10))
	assert.False(t, m.Dark(-1, 0))
	assert.False(t, m.Dark(0, 21))

	tests := []struct {
		row, col int
		finder   bool
	}{
		{0, 0, true},
		{6, 6, true},
		{7, 7, false},
		{0, 14, true},
		{6, 20, true},
		{14, 0, true},
		{20, 6, true},
		{20, 20, false},
		{10, 10, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.finder, m.IsFinder(tt.row, tt.col), "row %d col %d", tt.row, tt.col)
	}
}
