// Package blueprint reads and writes Scrap Mechanic blueprint bundles.
//
// A bundle is a directory named by a freshly generated UUID holding
// blueprint.json (the part list, minified), description.json (display
// metadata) and a preview image.
package blueprint

import (
	"fmt"
	"strconv"
)

// DefaultShapeID is the plastic block shape, used for every voxel part.
const DefaultShapeID = "628b2d61-5ceb-43e9-8334-a4135566df7a"

// GlassShapeID is armored glass, used for transparent single-block stamps.
const GlassShapeID = "b5ee5539-75a2-4fef-873b-ef7c9398b3f5"

// FormatVersion is the blueprint.json version the game expects.
const FormatVersion = 4

// Dims is an integer extent triple.
type Dims struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Pos is an integer position triple.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Part is one placed shape. Field order matches the game's own files.
type Part struct {
	Bounds  Dims   `json:"bounds"`
	ShapeID string `json:"shapeId"`
	Color   string `json:"color"`
	Pos     Pos    `json:"pos"`
	XAxis   int    `json:"xaxis"`
	ZAxis   int    `json:"zaxis"`
}

// Body groups parts into one rigid body.
type Body struct {
	Childs []Part `json:"childs"`
}

// File is the root of blueprint.json.
type File struct {
	Bodies  []Body `json:"bodies"`
	Version int    `json:"version"`
}

// Description is the root of description.json.
type Description struct {
	Description string `json:"description"`
	LocalID     string `json:"localId"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Version     int    `json:"version"`
}

// PartName formats the multi-chunk bundle name, 1-indexed.
func PartName(base string, i, n int) string {
	return base + "_part_" + strconv.Itoa(i) + "_of_" + strconv.Itoa(n)
}

// ParseHexColor decodes a 6-hex-digit RRGGBB string.
func ParseHexColor(s string) (uint32, error) {
	if len(s) != 6 {
		return 0, fmt.Errorf("blueprint: bad color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("blueprint: bad color %q: %w", s, err)
	}
	return uint32(v), nil
}
