package schematic

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"mc-blueprint-converter/internal/nbt"
)

// Parse reads a gzipped NBT .schematic file. Structural problems are
// fatal: the error names the offending tag or index.
func Parse(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schematic: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("schematic: %s: %w", path, err)
	}
	return g, nil
}

// Decode reads a gzipped NBT schematic stream.
func Decode(r io.Reader) (*Grid, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	defer zr.Close()

	name, root, err := nbt.Read(zr)
	if err != nil {
		return nil, err
	}
	if name != "Schematic" {
		return nil, fmt.Errorf("root tag is %q, want \"Schematic\"", name)
	}

	width, err := dimension(root, "Width")
	if err != nil {
		return nil, err
	}
	height, err := dimension(root, "Height")
	if err != nil {
		return nil, err
	}
	length, err := dimension(root, "Length")
	if err != nil {
		return nil, err
	}

	blocks, err := byteArray(root, "Blocks")
	if err != nil {
		return nil, err
	}
	data, err := byteArray(root, "Data")
	if err != nil {
		return nil, err
	}

	want := width * height * length
	if len(blocks) != want {
		return nil, fmt.Errorf("Blocks has %d entries, want %d for %dx%dx%d",
			len(blocks), want, width, height, length)
	}
	if len(data) != want {
		return nil, fmt.Errorf("Data has %d entries, want %d", len(data), want)
	}

	g := &Grid{Width: width, Height: height, Length: length}

	// Blocks are stored in YZX order; keep that as the scan order.
	for y := 0; y < height; y++ {
		for z := 0; z < length; z++ {
			for x := 0; x < width; x++ {
				i := (y*length+z)*width + x
				id := int(blocks[i])
				if id == 0 { // air
					continue
				}
				dv := int(data[i]) & 0xF
				g.Instances = append(g.Instances, Instance{
					X: x, Y: y, Z: z,
					ID:   id,
					Data: dv,
					Name: BlockName(id, dv),
				})
			}
		}
	}

	return g, nil
}

func dimension(root map[string]any, key string) (int, error) {
	v, ok := root[key]
	if !ok {
		return 0, fmt.Errorf("missing %s tag", key)
	}
	n, ok := v.(int16)
	if !ok {
		return 0, fmt.Errorf("%s is %T, want short", key, v)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s is negative: %d", key, n)
	}
	return int(n), nil
}

func byteArray(root map[string]any, key string) ([]byte, error) {
	v, ok := root[key]
	if !ok {
		return nil, fmt.Errorf("missing %s tag", key)
	}
	arr, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("%s is %T, want byte array", key, v)
	}
	return arr, nil
}
