package blockdef

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mc-blueprint-converter/internal/blueprint"
	"mc-blueprint-converter/internal/voxel"
)

func writeStampBundle(t *testing.T, dir, name string) string {
	t.Helper()
	g := voxel.NewGrid()
	// Target space is z up; local stamps are y up.
	g.Set(0, 0, 0, voxel.RGB(10, 20, 30))
	g.Set(1, 2, 3, voxel.RGB(40, 50, 60))

	bundleDir, err := blueprint.WriteBundle(dir, name, g, blueprint.Options{})
	require.NoError(t, err)
	return filepath.Base(bundleDir)
}

func TestDiskLibraryManifest(t *testing.T) {
	dir := t.TempDir()
	bundle := writeStampBundle(t, dir, "stone")

	manifest, err := json.Marshal([]map[string]any{
		{"name": "stone", "bundle": bundle},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"), manifest, 0644))

	lib, err := NewDiskLibrary(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, lib.Len())

	def, err := lib.Generate(Signature{Name: "stone"})
	require.NoError(t, err)
	require.NotNil(t, def)
	require.Len(t, def.Voxels, 2)

	// Bundle positions swap back into local y-up space.
	assert.Equal(t, StampVoxel{X: 1, Y: 3, Z: 2, Color: voxel.RGB(40, 50, 60)}, def.Voxels[1])
}

func TestDiskLibraryScanFallback(t *testing.T) {
	// No manifest: the library indexes bundles by their description name.
	dir := t.TempDir()
	writeStampBundle(t, dir, "dirt")

	lib, err := NewDiskLibrary(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, lib.Len())

	def, err := lib.Generate(Signature{Name: "dirt"})
	require.NoError(t, err)
	assert.NotNil(t, def)
}

func TestDiskLibraryLookupVariations(t *testing.T) {
	dir := t.TempDir()
	writeStampBundle(t, dir, "stone")

	lib, err := NewDiskLibrary(dir)
	require.NoError(t, err)

	// Component fallback: "stone_bricks" has no bundle of its own but its
	// first component does.
	def, err := lib.Generate(Signature{Name: "stone_bricks"})
	require.NoError(t, err)
	assert.NotNil(t, def)

	// A true miss is (nil, nil), not an error.
	def, err = lib.Generate(Signature{Name: "obsidian"})
	require.NoError(t, err)
	assert.Nil(t, def)
}

func TestDiskLibraryMissingDir(t *testing.T) {
	_, err := NewDiskLibrary(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
