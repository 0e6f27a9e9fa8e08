package voxel

import "fmt"

// Color is a packed 0xRRGGBB value.
type Color uint32

// Hex returns the 6-digit uppercase hex form used by the blueprint format.
func (c Color) Hex() string {
	return fmt.Sprintf("%06X", uint32(c)&0xFFFFFF)
}

// RGB builds a Color from channel values.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Key packs a signed coordinate triple into one uint64, 21 bits per axis.
// Coordinates must stay within ±2^20, which covers any structure the
// blueprint format can represent.
type Key uint64

const (
	axisBits = 21
	axisBias = 1 << 20
	axisMask = 1<<axisBits - 1
)

// Pack encodes (x, y, z) into a Key.
func Pack(x, y, z int) Key {
	return Key(uint64(uint32(x+axisBias)&axisMask)<<(2*axisBits) |
		uint64(uint32(y+axisBias)&axisMask)<<axisBits |
		uint64(uint32(z+axisBias)&axisMask))
}

// Unpack decodes a Key back into (x, y, z).
func (k Key) Unpack() (x, y, z int) {
	x = int(uint64(k)>>(2*axisBits)&axisMask) - axisBias
	y = int(uint64(k)>>axisBits&axisMask) - axisBias
	z = int(uint64(k)&axisMask) - axisBias
	return
}

// Bounds is an inclusive axis-aligned bounding box.
type Bounds struct {
	MinX, MinY, MinZ int
	MaxX, MaxY, MaxZ int
}

// Extents returns the box size per axis.
func (b Bounds) Extents() (dx, dy, dz int) {
	return b.MaxX - b.MinX + 1, b.MaxY - b.MinY + 1, b.MaxZ - b.MinZ + 1
}

func (b Bounds) String() string {
	dx, dy, dz := b.Extents()
	return fmt.Sprintf("%dx%dx%d", dx, dy, dz)
}

// Grid is a sparse voxel structure: packed coordinate → color, with a
// running bounding box and count. Memory scales with occupancy, not with
// bounding-box volume.
type Grid struct {
	cells  map[Key]Color
	bounds Bounds
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{cells: make(map[Key]Color)}
}

// NewGridSized returns an empty grid with capacity preallocated.
func NewGridSized(n int) *Grid {
	return &Grid{cells: make(map[Key]Color, n)}
}

// Set writes a voxel, overwriting any previous color at that coordinate.
func (g *Grid) Set(x, y, z int, c Color) {
	if len(g.cells) == 0 {
		g.bounds = Bounds{x, y, z, x, y, z}
	} else {
		if x < g.bounds.MinX {
			g.bounds.MinX = x
		}
		if y < g.bounds.MinY {
			g.bounds.MinY = y
		}
		if z < g.bounds.MinZ {
			g.bounds.MinZ = z
		}
		if x > g.bounds.MaxX {
			g.bounds.MaxX = x
		}
		if y > g.bounds.MaxY {
			g.bounds.MaxY = y
		}
		if z > g.bounds.MaxZ {
			g.bounds.MaxZ = z
		}
	}
	g.cells[Pack(x, y, z)] = c
}

// SetKey writes a voxel by packed key.
func (g *Grid) SetKey(k Key, c Color) {
	x, y, z := k.Unpack()
	g.Set(x, y, z, c)
}

// Get returns the color at (x, y, z) and whether the voxel exists.
func (g *Grid) Get(x, y, z int) (Color, bool) {
	c, ok := g.cells[Pack(x, y, z)]
	return c, ok
}

// HasKey reports whether the packed coordinate is occupied.
func (g *Grid) HasKey(k Key) bool {
	_, ok := g.cells[k]
	return ok
}

// ColorKey returns the color for a packed key.
func (g *Grid) ColorKey(k Key) (Color, bool) {
	c, ok := g.cells[k]
	return c, ok
}

// Len returns the occupied voxel count.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Bounds returns the tight bounding box of the key set. Undefined for an
// empty grid.
func (g *Grid) Bounds() Bounds {
	return g.bounds
}

// Range calls fn for every voxel in unspecified order. Iteration stops if
// fn returns false.
func (g *Grid) Range(fn func(k Key, c Color) bool) {
	for k, c := range g.cells {
		if !fn(k, c) {
			return
		}
	}
}

// Keys returns all packed keys in unspecified order.
func (g *Grid) Keys() []Key {
	keys := make([]Key, 0, len(g.cells))
	for k := range g.cells {
		keys = append(keys, k)
	}
	return keys
}

// Neighbors6 holds the packed-key deltas of the six axis-aligned neighbors.
// Valid as long as neither coordinate sits at the packing boundary, which
// the bias guarantees for all practical structures.
var Neighbors6 = [6]func(Key) Key{
	func(k Key) Key { return k + 1<<(2*axisBits) }, // +x
	func(k Key) Key { return k - 1<<(2*axisBits) }, // -x
	func(k Key) Key { return k + 1<<axisBits },     // +y
	func(k Key) Key { return k - 1<<axisBits },     // -y
	func(k Key) Key { return k + 1 },               // +z
	func(k Key) Key { return k - 1 },               // -z
}
