// Package rotation decodes legacy block metadata into stamp orientations.
//
// Minecraft's pre-flattening format stores orientation in a 4-bit data
// value whose layout depends on the block family. Each family gets its own
// small pure decoder; everything else is the identity. The same inputs
// always produce the same output — no I/O, no mutable state.
package rotation

import "strings"

// Orientation is a signed axis permutation applied to a stamp's local
// voxel offsets. Each field selects the source axis feeding that target
// axis: 1=x, 2=y, 3=z, negative = that axis mirrored within the stamp.
type Orientation struct {
	X, Y, Z int8
}

// Identity leaves a stamp untouched.
var Identity = Orientation{1, 2, 3}

// IsIdentity reports whether the orientation is a no-op.
func (o Orientation) IsIdentity() bool {
	return o == Identity
}

// Apply transforms a local offset inside an n³ stamp. Mirrored axes stay
// inside [0, n) by reflecting against n-1.
func (o Orientation) Apply(n, x, y, z int) (int, int, int) {
	pick := func(axis int8) int {
		var v int
		switch axis {
		case 1, -1:
			v = x
		case 2, -2:
			v = y
		default:
			v = z
		}
		if axis < 0 {
			v = n - 1 - v
		}
		return v
	}
	return pick(o.X), pick(o.Y), pick(o.Z)
}

// Category is the block family a data value is decoded under.
type Category int

const (
	CategoryNone Category = iota
	CategoryStairs
	CategoryPillar // logs and other elongated blocks
	CategorySlab
	CategoryFixture // wall-mounted: torches, levers, buttons
	CategoryDoor    // doors and fence gates
)

func (c Category) String() string {
	switch c {
	case CategoryStairs:
		return "stairs"
	case CategoryPillar:
		return "pillar"
	case CategorySlab:
		return "slab"
	case CategoryFixture:
		return "fixture"
	case CategoryDoor:
		return "door"
	default:
		return "none"
	}
}

// Categorize classifies a block by its source name.
func Categorize(name string) Category {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "stairs"):
		return CategoryStairs
	case strings.Contains(n, "log") || strings.Contains(n, "wood"):
		return CategoryPillar
	case strings.Contains(n, "slab"):
		return CategorySlab
	case strings.Contains(n, "torch") || strings.Contains(n, "button") || strings.Contains(n, "lever"):
		return CategoryFixture
	case strings.Contains(n, "door") || strings.Contains(n, "fence_gate"):
		return CategoryDoor
	default:
		return CategoryNone
	}
}

// Yaw rotations about the vertical axis, in stamp-local terms.
var (
	yawEast  = Identity               // facing +x
	yawWest  = Orientation{-1, 2, -3} // 180°
	yawSouth = Orientation{3, 2, -1}  // 90° clockwise, facing +z
	yawNorth = Orientation{-3, 2, 1}  // 90° counter-clockwise, facing -z
)

// Determine decodes a legacy (name, data) pair into an orientation.
//
// Bit layouts per family:
//
//	stairs:   bits 0–1 horizontal facing, bit 2 upside-down
//	pillars:  bits 2–3 axis of elongation, bits 0–1 ignored
//	slabs:    bit 3 top-half placement
//	fixtures: the whole value is an enumerated facing
//	doors:    bits 0–1 hinge-relative facing
func Determine(name string, data int) Orientation {
	switch Categorize(name) {
	case CategoryStairs:
		return stairsOrientation(data)
	case CategoryPillar:
		return pillarOrientation(data)
	case CategorySlab:
		return slabOrientation(data)
	case CategoryFixture:
		return fixtureOrientation(data)
	case CategoryDoor:
		return doorOrientation(data)
	default:
		return Identity
	}
}

func stairsOrientation(data int) Orientation {
	var o Orientation
	switch data & 0x3 {
	case 0: // east
		o = yawEast
	case 1: // west
		o = yawWest
	case 2: // south
		o = yawSouth
	case 3: // north
		o = yawNorth
	}
	if data&0x4 != 0 { // upside-down
		o.Y = -o.Y
	}
	return o
}

func pillarOrientation(data int) Orientation {
	switch data & 0xC {
	case 0x4: // east-west: elongate along x
		return Orientation{2, 1, 3}
	case 0x8: // north-south: elongate along z
		return Orientation{1, 3, 2}
	default: // vertical
		return Identity
	}
}

func slabOrientation(data int) Orientation {
	if data&0x8 != 0 { // top half
		return Orientation{1, -2, 3}
	}
	return Identity
}

// The full 4-bit value is the enumerated facing; values outside the
// enumeration mean standing placement.
func fixtureOrientation(data int) Orientation {
	switch data {
	case 1: // east wall
		return yawEast
	case 2: // west wall
		return yawWest
	case 3: // south wall
		return yawSouth
	case 4: // north wall
		return yawNorth
	case 0: // ceiling-mounted (buttons, levers)
		return Orientation{1, -2, 3}
	default: // standing
		return Identity
	}
}

func doorOrientation(data int) Orientation {
	switch data & 0x3 {
	case 0: // south
		return yawSouth
	case 1: // west
		return yawWest
	case 2: // north
		return yawNorth
	default: // east
		return yawEast
	}
}
