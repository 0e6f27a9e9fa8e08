package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpack(t *testing.T) {
	cases := [][3]int{
		{0, 0, 0},
		{1, 2, 3},
		{-1, -2, -3},
		{-1000, 500, -42},
		{1 << 19, -(1 << 19), 123456},
	}
	for _, c := range cases {
		k := Pack(c[0], c[1], c[2])
		x, y, z := k.Unpack()
		assert.Equal(t, c[0], x)
		assert.Equal(t, c[1], y)
		assert.Equal(t, c[2], z)
	}
}

func TestPackOrderWithinAxis(t *testing.T) {
	// Within one axis, larger coordinates pack to larger keys. The BFS
	// and serializer rely on this for deterministic ordering.
	assert.Less(t, Pack(0, 0, 0), Pack(1, 0, 0))
	assert.Less(t, Pack(0, 0, 0), Pack(0, 1, 0))
	assert.Less(t, Pack(0, 0, 0), Pack(0, 0, 1))
	assert.Less(t, Pack(-5, 0, 0), Pack(-4, 0, 0))
}

func TestColor(t *testing.T) {
	assert.Equal(t, "808080", Color(0x808080).Hex())
	assert.Equal(t, "FF0000", RGB(255, 0, 0).Hex())
	assert.Equal(t, "00FF7F", RGB(0, 255, 127).Hex())
	assert.Equal(t, "000000", Color(0).Hex())
}

func TestGridSetGet(t *testing.T) {
	g := NewGrid()
	assert.Equal(t, 0, g.Len())

	g.Set(1, 2, 3, RGB(10, 20, 30))
	c, ok := g.Get(1, 2, 3)
	require.True(t, ok)
	assert.Equal(t, RGB(10, 20, 30), c)

	_, ok = g.Get(0, 0, 0)
	assert.False(t, ok)

	// Overwrite keeps the count stable and the last color.
	g.Set(1, 2, 3, RGB(99, 99, 99))
	assert.Equal(t, 1, g.Len())
	c, _ = g.Get(1, 2, 3)
	assert.Equal(t, RGB(99, 99, 99), c)
}

func TestGridBounds(t *testing.T) {
	g := NewGrid()
	g.Set(5, -2, 7, 0)
	g.Set(-3, 4, 7, 0)
	g.Set(0, 0, 10, 0)

	b := g.Bounds()
	assert.Equal(t, Bounds{-3, -2, 7, 5, 4, 10}, b)

	dx, dy, dz := b.Extents()
	assert.Equal(t, 9, dx)
	assert.Equal(t, 7, dy)
	assert.Equal(t, 4, dz)
}

func TestNeighbors6(t *testing.T) {
	k := Pack(10, 20, 30)
	want := [6][3]int{
		{11, 20, 30}, {9, 20, 30},
		{10, 21, 30}, {10, 19, 30},
		{10, 20, 31}, {10, 20, 29},
	}
	for i, n := range Neighbors6 {
		x, y, z := n(k).Unpack()
		assert.Equal(t, want[i], [3]int{x, y, z}, "neighbor %d", i)
	}
}

func TestGridRangeStops(t *testing.T) {
	g := NewGrid()
	for i := 0; i < 10; i++ {
		g.Set(i, 0, 0, 0)
	}
	seen := 0
	g.Range(func(Key, Color) bool {
		seen++
		return seen < 3
	})
	assert.Equal(t, 3, seen)
}
