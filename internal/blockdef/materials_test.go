package blockdef

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeFor(t *testing.T) {
	m := DefaultMaterials()

	assert.Equal(t, ShapeWood, m.ShapeFor("oak_planks"))
	assert.Equal(t, ShapeScrapStone, m.ShapeFor("stone"))
	assert.Equal(t, ShapeScrapStone, m.ShapeFor("cobblestone"))
	assert.Equal(t, ShapeArmoredGlass, m.ShapeFor("glass_pane"))
	assert.Equal(t, ShapePlastic, m.ShapeFor("mystery_block"))
}

func TestShapeForLongestKeyWins(t *testing.T) {
	m := &Materials{
		Default: ShapePlastic,
		Blocks: map[string]string{
			"oak":      ShapeWood,
			"dark_oak": ShapeConcrete,
		},
	}
	assert.Equal(t, ShapeConcrete, m.ShapeFor("dark_oak_planks"))
	assert.Equal(t, ShapeWood, m.ShapeFor("oak_planks"))
}

func TestLoadMaterials(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(dir, "materials.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"default": "`+ShapePlastic+`",
			"blocks": {"stone": "`+ShapeScrapStone+`"}
		}`), 0644))

		m, err := LoadMaterials(path)
		require.NoError(t, err)
		assert.Equal(t, ShapePlastic, m.Default)
		assert.Equal(t, ShapeScrapStone, m.ShapeFor("stone"))
		assert.Equal(t, ShapeArmoredGlass, m.Glass)
	})

	t.Run("bad shape id rejected", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"default": "not-a-uuid",
			"blocks": {}
		}`), 0644))

		_, err := LoadMaterials(path)
		assert.Error(t, err)
	})

	t.Run("missing required field rejected", func(t *testing.T) {
		path := filepath.Join(dir, "incomplete.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"blocks": {}}`), 0644))

		_, err := LoadMaterials(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadMaterials(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}
