package mcmodel

import (
	"math"

	"mc-blueprint-converter/internal/mathutil"
	"mc-blueprint-converter/internal/texture"
)

// VoxelColor is one colored cell of a voxelized model, in stamp-local
// coordinates (y up, 0 ≤ coordinate < resolution).
type VoxelColor struct {
	X, Y, Z    int
	R, G, B, A uint8
}

// Face priority when picking a voxel's color: a top texel is what the
// player sees most.
var faceOrder = [6]string{"up", "north", "south", "east", "west", "down"}

var faceDelta = map[string][3]int{
	"up":    {0, 1, 0},
	"down":  {0, -1, 0},
	"north": {0, 0, -1},
	"south": {0, 0, 1},
	"west":  {-1, 0, 0},
	"east":  {1, 0, 0},
}

// Voxelize rasterizes model elements into an n³ stamp and colors every
// exposed cell by sampling the texture of the face it shows.
func Voxelize(elems []ResolvedElement, tex texture.Resolver, n int) []VoxelColor {
	scale := 16.0 / float64(n)
	filled := make([]bool, n*n*n)
	idx := func(x, y, z int) int { return (x*n+y)*n + z }

	for ei := range elems {
		elem := &elems[ei]
		fillElement(elem, filled, n, scale)
	}

	var out []VoxelColor
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				if !filled[idx(x, y, z)] {
					continue
				}
				r, g, b, a := colorCell(elems, tex, filled, n, scale, x, y, z)
				out = append(out, VoxelColor{X: x, Y: y, Z: z, R: r, G: g, B: b, A: a})
			}
		}
	}
	return out
}

func fillElement(elem *ResolvedElement, filled []bool, n int, scale float64) {
	fx, fy, fz := elem.From[0], elem.From[1], elem.From[2]
	tx, ty, tz := elem.To[0], elem.To[1], elem.To[2]

	var inv mathutil.Mat3
	var origin mathutil.Vec3
	rotated := false
	if r := elem.Rotation; r != nil && r.Axis != "" && math.Abs(r.Angle) > 1e-6 {
		rotated = true
		a := -mathutil.Deg2Rad(r.Angle)
		switch r.Axis {
		case "x":
			inv = mathutil.RotX(a)
		case "y":
			inv = mathutil.RotY(a)
		default:
			inv = mathutil.RotZ(a)
		}
		if len(r.Origin) == 3 {
			origin = mathutil.Vec3{r.Origin[0], r.Origin[1], r.Origin[2]}
		}
	}

	clampIdx := func(v float64, up bool) int {
		if up {
			i := int(math.Ceil(v / scale))
			if i > n {
				i = n
			}
			return i
		}
		i := int(math.Floor(v / scale))
		if i < 0 {
			i = 0
		}
		return i
	}

	minX, maxX := clampIdx(math.Min(fx, tx), false), clampIdx(math.Max(fx, tx), true)
	minY, maxY := clampIdx(math.Min(fy, ty), false), clampIdx(math.Max(fy, ty), true)
	minZ, maxZ := clampIdx(math.Min(fz, tz), false), clampIdx(math.Max(fz, tz), true)
	if rotated {
		// A tilted element can sweep outside its axis-aligned box.
		minX, maxX, minY, maxY, minZ, maxZ = 0, n, 0, n, 0, n
	}

	for x := minX; x < maxX; x++ {
		for y := minY; y < maxY; y++ {
			for z := minZ; z < maxZ; z++ {
				cx := (float64(x) + 0.5) * scale
				cy := (float64(y) + 0.5) * scale
				cz := (float64(z) + 0.5) * scale
				if rotated {
					p := inv.MulVec3(mathutil.Vec3{cx, cy, cz}.Sub(origin)).Add(origin)
					cx, cy, cz = p[0], p[1], p[2]
				}
				if cx < fx || cx >= tx || cy < fy || cy >= ty || cz < fz || cz >= tz {
					continue
				}
				filled[(x*n+y)*n+z] = true
			}
		}
	}
}

func colorCell(elems []ResolvedElement, tex texture.Resolver, filled []bool, n int, scale float64, x, y, z int) (r, g, b, a uint8) {
	cx := (float64(x) + 0.5) * scale
	cy := (float64(y) + 0.5) * scale
	cz := (float64(z) + 0.5) * scale

	for _, face := range faceOrder {
		d := faceDelta[face]
		nx, ny, nz := x+d[0], y+d[1], z+d[2]
		if nx >= 0 && nx < n && ny >= 0 && ny < n && nz >= 0 && nz < n &&
			filled[(nx*n+ny)*n+nz] {
			continue // face not exposed
		}

		fd, bounds, ok := faceAt(elems, face, cx, cy, cz, scale)
		if !ok || fd.TexturePath == "" {
			continue
		}
		img := tex.Resolve(fd.TexturePath)
		if img == nil {
			continue
		}

		uFrac, vFrac := faceUV(face, bounds, cx, cy, cz)
		uFrac, vFrac = rotateUV(fd.Rotation, uFrac, vFrac)

		uv := fd.UV
		if len(uv) != 4 {
			uv = []float64{0, 0, 16, 16}
		}
		u := (uv[0] + uFrac*(uv[2]-uv[0])) / 16
		v := (uv[1] + vFrac*(uv[3]-uv[1])) / 16

		if c, ok := texture.Sample(img, u, v); ok {
			return c.R, c.G, c.B, c.A
		}
	}

	return 128, 128, 128, 255 // no covering face: neutral gray
}

// faceAt finds the element face covering the cell center on the given
// side. The tolerance is just over half a cell so stamps of thin elements
// still pick up their boundary faces.
func faceAt(elems []ResolvedElement, face string, cx, cy, cz, scale float64) (ResolvedFace, [6]float64, bool) {
	tol := 0.6 * scale
	for i := range elems {
		e := &elems[i]
		fx, fy, fz := e.From[0], e.From[1], e.From[2]
		tx, ty, tz := e.To[0], e.To[1], e.To[2]
		if cx < fx || cx >= tx || cy < fy || cy >= ty || cz < fz || cz >= tz {
			continue
		}

		var near bool
		switch face {
		case "up":
			near = math.Abs(cy-ty) < tol
		case "down":
			near = math.Abs(cy-fy) < tol
		case "north":
			near = math.Abs(cz-fz) < tol
		case "south":
			near = math.Abs(cz-tz) < tol
		case "west":
			near = math.Abs(cx-fx) < tol
		case "east":
			near = math.Abs(cx-tx) < tol
		}
		if !near {
			continue
		}
		if fd, ok := e.Faces[face]; ok {
			return fd, [6]float64{fx, fy, fz, tx, ty, tz}, true
		}
	}
	return ResolvedFace{}, [6]float64{}, false
}

// faceUV maps the cell center onto the face's texture plane. v runs top
// to bottom; east/south faces mirror u because they are viewed from the
// opposite side.
func faceUV(face string, b [6]float64, cx, cy, cz float64) (u, v float64) {
	fx, fy, fz, tx, ty, tz := b[0], b[1], b[2], b[3], b[4], b[5]
	frac := func(v, lo, hi float64) float64 {
		if hi == lo {
			return 0
		}
		return (v - lo) / (hi - lo)
	}

	switch face {
	case "north":
		return frac(cx, fx, tx), frac(ty-cy, 0, ty-fy)
	case "south":
		return 1 - frac(cx, fx, tx), frac(ty-cy, 0, ty-fy)
	case "west":
		return frac(cz, fz, tz), frac(ty-cy, 0, ty-fy)
	case "east":
		return 1 - frac(cz, fz, tz), frac(ty-cy, 0, ty-fy)
	case "up":
		return frac(cx, fx, tx), frac(cz, fz, tz)
	default: // down
		return frac(cx, fx, tx), frac(tz-cz, 0, tz-fz)
	}
}

func rotateUV(rot int, u, v float64) (float64, float64) {
	switch rot {
	case 90:
		return 1 - v, u
	case 180:
		return 1 - u, 1 - v
	case 270:
		return v, 1 - u
	default:
		return u, v
	}
}
