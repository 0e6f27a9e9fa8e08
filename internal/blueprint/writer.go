package blueprint

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"mc-blueprint-converter/internal/voxel"
)

// Options controls how a bundle is written.
type Options struct {
	ShapeID     string // part shape, DefaultShapeID when empty
	Description string // description.json text
	PreviewWebP bool   // write icon.webp instead of icon.png
	PreviewSize int    // preview edge in pixels, 128 when zero
}

// WriteBundle serializes one voxel structure as a blueprint bundle under
// outDir and returns the bundle path. Parts are emitted in ascending
// packed-coordinate order so identical structures produce byte-identical
// files. Any write failure is fatal to the caller.
func WriteBundle(outDir, name string, g *voxel.Grid, opts Options) (string, error) {
	id := uuid.NewString()
	dir := filepath.Join(outDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("blueprint: create %s: %w", dir, err)
	}

	shapeID := opts.ShapeID
	if shapeID == "" {
		shapeID = DefaultShapeID
	}

	keys := g.Keys()
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	parts := make([]Part, 0, len(keys))
	for _, k := range keys {
		c, _ := g.ColorKey(k)
		x, y, z := k.Unpack()
		parts = append(parts, Part{
			Bounds:  Dims{1, 1, 1},
			ShapeID: shapeID,
			Color:   c.Hex(),
			Pos:     Pos{x, y, z},
			XAxis:   1,
			ZAxis:   3,
		})
	}

	file := File{Bodies: []Body{{Childs: parts}}, Version: FormatVersion}
	data, err := json.Marshal(file)
	if err != nil {
		return "", fmt.Errorf("blueprint: marshal %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "blueprint.json"), data, 0644); err != nil {
		return "", fmt.Errorf("blueprint: write blueprint.json: %w", err)
	}

	desc := Description{
		Description: opts.Description,
		LocalID:     id,
		Name:        name,
		Type:        "Blueprint",
		Version:     0,
	}
	if desc.Description == "" {
		desc.Description = fmt.Sprintf("Voxel structure %s (%d parts)", name, len(parts))
	}
	descData, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("blueprint: marshal description: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "description.json"), descData, 0644); err != nil {
		return "", fmt.Errorf("blueprint: write description.json: %w", err)
	}

	if err := WritePreview(dir, g, opts); err != nil {
		return "", err
	}

	return dir, nil
}

// ReadBundle loads blueprint.json and description.json from a bundle dir.
func ReadBundle(dir string) (*File, *Description, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "blueprint.json"))
	if err != nil {
		return nil, nil, fmt.Errorf("blueprint: read %s: %w", dir, err)
	}
	var file File
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, nil, fmt.Errorf("blueprint: parse %s/blueprint.json: %w", dir, err)
	}

	rawDesc, err := os.ReadFile(filepath.Join(dir, "description.json"))
	if err != nil {
		return nil, nil, fmt.Errorf("blueprint: read %s: %w", dir, err)
	}
	var desc Description
	if err := json.Unmarshal(rawDesc, &desc); err != nil {
		return nil, nil, fmt.Errorf("blueprint: parse %s/description.json: %w", dir, err)
	}

	return &file, &desc, nil
}
