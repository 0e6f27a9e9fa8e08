// Package schematic parses legacy .schematic files into a read-only
// source grid.
package schematic

// Instance is one occupied cell of the source grid: type signature plus
// source position. Instances are never mutated after parsing.
type Instance struct {
	X, Y, Z int
	ID      int
	Data    int // legacy 4-bit auxiliary value
	Name    string
}

// Grid is the parsed source structure. Instances are ordered ascending by
// y, then z, then x — the format's native array order. The assembler
// relies on this order for its last-write-wins collision policy.
type Grid struct {
	Width  int // x extent
	Height int // y extent
	Length int // z extent

	Instances []Instance
}
