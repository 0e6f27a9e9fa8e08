// Package blockdef resolves block signatures to reusable voxel stamps.
package blockdef

import (
	"sort"

	"mc-blueprint-converter/internal/rotation"
	"mc-blueprint-converter/internal/voxel"
)

// Signature identifies one reusable block definition: source type name
// plus auxiliary state.
type Signature struct {
	Name string
	Data int
}

// Canonical masks out the orientation bits for the block's family, so
// variants that differ only in facing share one stamp. Orientation is
// applied at assembly time, never baked into the stamp.
func (s Signature) Canonical() Signature {
	switch rotation.Categorize(s.Name) {
	case rotation.CategoryStairs:
		s.Data &^= 0x7
	case rotation.CategoryPillar:
		s.Data &^= 0xC
	case rotation.CategorySlab:
		s.Data &^= 0x8
	case rotation.CategoryFixture:
		s.Data = 0
	case rotation.CategoryDoor:
		s.Data &^= 0x3
	}
	return s
}

// StampVoxel is one cell of a local stamp.
type StampVoxel struct {
	X, Y, Z int
	Color   voxel.Color
}

// Definition is the canonical local voxel stamp for one signature. It is
// immutable after creation: consumers translate it, never edit it.
type Definition struct {
	Voxels []StampVoxel
	Bounds voxel.Bounds
}

// NewDefinition builds a definition from stamp voxels, computing the tight
// local bounding box and fixing a deterministic voxel order.
func NewDefinition(voxels []StampVoxel) *Definition {
	d := &Definition{Voxels: voxels}
	for i, v := range voxels {
		if i == 0 {
			d.Bounds = voxel.Bounds{MinX: v.X, MinY: v.Y, MinZ: v.Z, MaxX: v.X, MaxY: v.Y, MaxZ: v.Z}
			continue
		}
		b := &d.Bounds
		if v.X < b.MinX {
			b.MinX = v.X
		}
		if v.Y < b.MinY {
			b.MinY = v.Y
		}
		if v.Z < b.MinZ {
			b.MinZ = v.Z
		}
		if v.X > b.MaxX {
			b.MaxX = v.X
		}
		if v.Y > b.MaxY {
			b.MaxY = v.Y
		}
		if v.Z > b.MaxZ {
			b.MaxZ = v.Z
		}
	}
	sort.Slice(d.Voxels, func(i, j int) bool {
		a, b := d.Voxels[i], d.Voxels[j]
		return voxel.Pack(a.X, a.Y, a.Z) < voxel.Pack(b.X, b.Y, b.Z)
	})
	return d
}

// Resolution is the tagged outcome of a library lookup: either a generated
// definition or the default stamp with a recorded reason.
type Resolution struct {
	Def      *Definition
	Fallback bool
	Reason   string
}

// Report is the run-wide coverage summary: how often each source type
// name fell back to the default stamp.
type Report struct {
	Misses map[string]int
}

// Total returns the number of fallback resolutions across all names.
func (r Report) Total() int {
	n := 0
	for _, c := range r.Misses {
		n += c
	}
	return n
}

// Names returns the missed type names, sorted.
func (r Report) Names() []string {
	names := make([]string, 0, len(r.Misses))
	for n := range r.Misses {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
