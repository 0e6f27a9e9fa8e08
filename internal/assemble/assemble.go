// Package assemble merges per-block stamps into one global voxel
// structure in target space.
package assemble

import (
	"mc-blueprint-converter/internal/blockdef"
	"mc-blueprint-converter/internal/rotation"
	"mc-blueprint-converter/internal/schematic"
	"mc-blueprint-converter/internal/voxel"
)

// Mapper converts source block positions into target voxel space: a fixed
// axis permutation (source y-up becomes target z-up, so target x = source
// x, target y = source z, target z = source y), scaled by the stamp
// resolution so adjacent blocks tile seamlessly, plus one global
// translation pinning the minimum source position to the origin. The
// translation is computed once from the full source range, never per
// instance.
type Mapper struct {
	res              int
	offX, offY, offZ int
}

// NewMapper derives the translation from the occupied source range.
func NewMapper(g *schematic.Grid, stampRes int) Mapper {
	m := Mapper{res: stampRes}
	if len(g.Instances) == 0 {
		return m
	}
	first := g.Instances[0]
	minX, minY, minZ := first.X, first.Y, first.Z
	for _, in := range g.Instances[1:] {
		if in.X < minX {
			minX = in.X
		}
		if in.Y < minY {
			minY = in.Y
		}
		if in.Z < minZ {
			minZ = in.Z
		}
	}
	m.offX, m.offY, m.offZ = minX, minY, minZ
	return m
}

// Map returns the target-space corner of a source block cell.
func (m Mapper) Map(x, y, z int) (tx, ty, tz int) {
	return (x - m.offX) * m.res, (z - m.offZ) * m.res, (y - m.offY) * m.res
}

// Stats summarizes one assembly pass.
type Stats struct {
	Instances  int
	Voxels     int // distinct voxels in the result
	Overwrites int // collisions resolved by last-write-wins
	Report     blockdef.Report
}

// Assemble resolves, orients and translates every instance's stamp into a
// single sparse structure. Instances are processed in the grid's fixed
// scan order (ascending y, then z, then x); when two stamps target the
// same coordinate, the later instance in that order wins. That policy is
// deliberate: the source format has overlapping decoration blocks, and
// the later block is the visible one.
func Assemble(g *schematic.Grid, lib *blockdef.Library, mapper Mapper) (*voxel.Grid, Stats) {
	res := lib.StampResolution()
	out := voxel.NewGridSized(len(g.Instances) * 8)

	attempted := 0
	for _, in := range g.Instances {
		orient := rotation.Determine(in.Name, in.Data)
		resolved := lib.Resolve(blockdef.Signature{Name: in.Name, Data: in.Data})

		tx, ty, tz := mapper.Map(in.X, in.Y, in.Z)
		for _, v := range resolved.Def.Voxels {
			rx, ry, rz := orient.Apply(res, v.X, v.Y, v.Z)
			// Local stamps are y-up; swap into z-up target space.
			out.Set(tx+rx, ty+rz, tz+ry, v.Color)
			attempted++
		}
	}

	return out, Stats{
		Instances:  len(g.Instances),
		Voxels:     out.Len(),
		Overwrites: attempted - out.Len(),
		Report:     lib.Report(),
	}
}
