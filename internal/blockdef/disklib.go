package blockdef

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mc-blueprint-converter/internal/blueprint"
	"mc-blueprint-converter/internal/voxel"
)

// DiskLibrary generates definitions from a precomputed bundle directory,
// one single-block bundle per model as produced by cmd/genblocks. It
// implements Generator for use behind a Library.
type DiskLibrary struct {
	dir   string
	index map[string]string // lowercased stamp name → bundle directory name
}

// NewDiskLibrary indexes a bundle directory. A manifest.json written by
// the generator gives exact name → bundle mappings; without one the
// description.json of every bundle is scanned instead.
func NewDiskLibrary(dir string) (*DiskLibrary, error) {
	d := &DiskLibrary{dir: dir, index: make(map[string]string)}

	manifest := filepath.Join(dir, "manifest.json")
	if raw, err := os.ReadFile(manifest); err == nil {
		var entries []struct {
			Name   string `json:"name"`
			Bundle string `json:"bundle"`
		}
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("blockdef: parse %s: %w", manifest, err)
		}
		for _, e := range entries {
			d.index[strings.ToLower(e.Name)] = e.Bundle
		}
		return d, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("blockdef: read library dir %s: %w", dir, err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name(), "description.json"))
		if err != nil {
			continue
		}
		var desc blueprint.Description
		if err := json.Unmarshal(raw, &desc); err != nil {
			continue
		}
		if desc.Name != "" {
			d.index[strings.ToLower(desc.Name)] = e.Name()
		}
	}
	return d, nil
}

// Len returns the number of indexed stamps.
func (d *DiskLibrary) Len() int {
	return len(d.index)
}

// Generate loads the stamp bundle matching the signature's name.
// Returns (nil, nil) when no bundle matches.
func (d *DiskLibrary) Generate(sig Signature) (*Definition, error) {
	bundle, ok := d.lookup(sig.Name)
	if !ok {
		return nil, nil
	}

	file, _, err := blueprint.ReadBundle(filepath.Join(d.dir, bundle))
	if err != nil {
		return nil, err
	}

	var voxels []StampVoxel
	for _, body := range file.Bodies {
		for _, part := range body.Childs {
			c, err := blueprint.ParseHexColor(part.Color)
			if err != nil {
				return nil, fmt.Errorf("blockdef: bundle %s: %w", bundle, err)
			}
			// Bundles store target-space positions (z up); stamps are kept
			// in source-local space (y up) so both generators agree.
			voxels = append(voxels, StampVoxel{
				X:     part.Pos.X,
				Y:     part.Pos.Z,
				Z:     part.Pos.Y,
				Color: voxel.Color(c),
			})
		}
	}
	if len(voxels) == 0 {
		return nil, nil
	}
	return NewDefinition(voxels), nil
}

// lookup tries the exact name, then the variations the original assets use
// (underscores stripped, single components).
func (d *DiskLibrary) lookup(name string) (string, bool) {
	n := strings.ToLower(name)
	if b, ok := d.index[n]; ok {
		return b, true
	}
	if b, ok := d.index[strings.ReplaceAll(n, "_", "")]; ok {
		return b, true
	}
	parts := strings.Split(n, "_")
	if len(parts) > 1 {
		for _, cand := range []string{parts[0], parts[len(parts)-1], strings.Join(parts, "")} {
			if b, ok := d.index[cand]; ok {
				return b, true
			}
		}
	}
	return "", false
}
