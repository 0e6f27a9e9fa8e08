package blueprint

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mc-blueprint-converter/internal/voxel"
)

func testGrid() *voxel.Grid {
	g := voxel.NewGrid()
	g.Set(0, 0, 0, voxel.RGB(255, 0, 0))
	g.Set(1, 0, 0, voxel.RGB(0, 255, 0))
	g.Set(0, 1, 0, voxel.RGB(0, 0, 255))
	return g
}

func TestWriteBundle(t *testing.T) {
	out := t.TempDir()

	dir, err := WriteBundle(out, "Test Structure", testGrid(), Options{})
	require.NoError(t, err)

	// Directory name is the bundle's UUID.
	id := filepath.Base(dir)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "blueprint.json"))
	require.NoError(t, err)

	var file File
	require.NoError(t, json.Unmarshal(raw, &file))
	assert.Equal(t, FormatVersion, file.Version)
	require.Len(t, file.Bodies, 1)
	require.Len(t, file.Bodies[0].Childs, 3)

	for _, p := range file.Bodies[0].Childs {
		assert.Equal(t, Dims{1, 1, 1}, p.Bounds)
		assert.Equal(t, DefaultShapeID, p.ShapeID)
		assert.Equal(t, 1, p.XAxis)
		assert.Equal(t, 3, p.ZAxis)
		assert.Len(t, p.Color, 6)
	}

	// Parts come out in ascending packed-coordinate order.
	assert.Equal(t, Pos{0, 0, 0}, file.Bodies[0].Childs[0].Pos)
	assert.Equal(t, Pos{0, 1, 0}, file.Bodies[0].Childs[1].Pos)
	assert.Equal(t, Pos{1, 0, 0}, file.Bodies[0].Childs[2].Pos)

	rawDesc, err := os.ReadFile(filepath.Join(dir, "description.json"))
	require.NoError(t, err)
	var desc Description
	require.NoError(t, json.Unmarshal(rawDesc, &desc))
	assert.Equal(t, "Test Structure", desc.Name)
	assert.Equal(t, id, desc.LocalID)
	assert.Equal(t, "Blueprint", desc.Type)
	assert.Equal(t, 0, desc.Version)

	_, err = os.Stat(filepath.Join(dir, "icon.png"))
	assert.NoError(t, err)
}

func TestWriteBundleOptions(t *testing.T) {
	out := t.TempDir()

	dir, err := WriteBundle(out, "glassy", testGrid(), Options{
		ShapeID:     GlassShapeID,
		Description: "see-through",
		PreviewWebP: true,
		PreviewSize: 64,
	})
	require.NoError(t, err)

	file, desc, err := ReadBundle(dir)
	require.NoError(t, err)
	assert.Equal(t, GlassShapeID, file.Bodies[0].Childs[0].ShapeID)
	assert.Equal(t, "see-through", desc.Description)

	_, err = os.Stat(filepath.Join(dir, "icon.webp"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "icon.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteBundleDeterministicParts(t *testing.T) {
	out := t.TempDir()

	read := func() []byte {
		dir, err := WriteBundle(out, "same", testGrid(), Options{})
		require.NoError(t, err)
		raw, err := os.ReadFile(filepath.Join(dir, "blueprint.json"))
		require.NoError(t, err)
		return raw
	}

	// Bundle ids differ, part lists are byte-identical.
	assert.Equal(t, read(), read())
}

func TestReadBundleMissing(t *testing.T) {
	_, _, err := ReadBundle(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestPartName(t *testing.T) {
	assert.Equal(t, "Castle_part_1_of_25", PartName("Castle", 1, 25))
	assert.Equal(t, "x_part_12_of_12", PartName("x", 12, 12))
}

func TestParseHexColor(t *testing.T) {
	v, err := ParseHexColor("808080")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x808080), v)

	v, err = ParseHexColor("FF00AA")
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF00AA), v)

	_, err = ParseHexColor("80808")
	assert.Error(t, err)
	_, err = ParseHexColor("gggggg")
	assert.Error(t, err)
}
