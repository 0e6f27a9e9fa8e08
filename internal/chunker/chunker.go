// Package chunker partitions an oversized structure into bounded,
// spatially coherent pieces.
package chunker

import (
	"fmt"
	"math"
	"sort"

	"mc-blueprint-converter/internal/voxel"
)

// Chunk is one piece of a split structure. The union of all chunks of a
// structure reproduces it exactly; no voxel appears in two chunks.
type Chunk struct {
	Grid *voxel.Grid

	// Cell index within the split grid.
	GX, GY, GZ int

	// Seq is the 1-based sequence number in row-major cell order; Total
	// is the number of emitted chunks.
	Seq, Total int
}

// Label returns the human-readable reassembly tag.
func (c Chunk) Label() string {
	return fmt.Sprintf("part %d of %d", c.Seq, c.Total)
}

// Split partitions a structure into chunks of at most roughly maxVoxels
// each. A structure that already fits comes back as a single chunk with
// no partitioning overhead.
//
// The cell edge is the cube root of bounding-box volume over the needed
// chunk count, rounded up to a whole voxel; every voxel lands in exactly
// one cell by integer division from the bounding-box minimum, and only
// non-empty cells are emitted.
func Split(g *voxel.Grid, maxVoxels int) []Chunk {
	if maxVoxels <= 0 || g.Len() <= maxVoxels {
		return []Chunk{{Grid: g, Seq: 1, Total: 1}}
	}

	b := g.Bounds()
	dx, dy, dz := b.Extents()
	k := (g.Len() + maxVoxels - 1) / maxVoxels

	volume := float64(dx) * float64(dy) * float64(dz)
	edge := int(math.Ceil(math.Cbrt(volume / float64(k))))
	if edge < 1 {
		edge = 1
	}

	gx := (dx + edge - 1) / edge
	gy := (dy + edge - 1) / edge

	cells := make(map[int]*voxel.Grid)
	g.Range(func(key voxel.Key, c voxel.Color) bool {
		x, y, z := key.Unpack()
		cx := (x - b.MinX) / edge
		cy := (y - b.MinY) / edge
		cz := (z - b.MinZ) / edge
		idx := (cz*gy+cy)*gx + cx
		cell := cells[idx]
		if cell == nil {
			cell = voxel.NewGrid()
			cells[idx] = cell
		}
		cell.Set(x, y, z, c)
		return true
	})

	indices := make([]int, 0, len(cells))
	for idx := range cells {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	chunks := make([]Chunk, 0, len(indices))
	for i, idx := range indices {
		cx := idx % gx
		cy := idx / gx % gy
		cz := idx / (gx * gy)
		chunks = append(chunks, Chunk{
			Grid:  cells[idx],
			GX:    cx,
			GY:    cy,
			GZ:    cz,
			Seq:   i + 1,
			Total: len(indices),
		})
	}
	return chunks
}
