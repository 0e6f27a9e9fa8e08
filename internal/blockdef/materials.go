package blockdef

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Shape ids for the target game's block materials.
const (
	ShapePlastic      = "628b2d61-5ceb-43e9-8334-a4135566df7a"
	ShapeWood         = "1fc74a28-addb-451a-878d-c3c605d63811"
	ShapeScrapMetal   = "1f7ac0bb-ad45-4246-9817-59bdf7f7ab39"
	ShapeConcrete     = "ff234e42-5da4-43cc-8893-940547c97882"
	ShapeScrapStone   = "30a2288b-e88e-4a92-a916-1edbfc2b2dac"
	ShapeSand         = "c56700d9-bbe5-4b17-95ed-cef05bd8be1b"
	ShapeArmoredGlass = "b5ee5539-75a2-4fef-873b-ef7c9398b3f5"
)

// Materials maps source block names to target shape ids. Matching is by
// keyword: the first key contained in the lowercased block name wins,
// longest keys first so "dark_oak" beats "oak".
type Materials struct {
	Default string
	Glass   string
	Blocks  map[string]string
}

// DefaultMaterials returns the built-in mapping used when no materials
// file is configured.
func DefaultMaterials() *Materials {
	return &Materials{
		Default: ShapePlastic,
		Glass:   ShapeArmoredGlass,
		Blocks: map[string]string{
			"oak":         ShapeWood,
			"birch":       ShapeWood,
			"spruce":      ShapeWood,
			"jungle":      ShapeWood,
			"acacia":      ShapeWood,
			"planks":      ShapeWood,
			"log":         ShapeWood,
			"stone":       ShapeScrapStone,
			"cobblestone": ShapeScrapStone,
			"concrete":    ShapeConcrete,
			"iron":        ShapeScrapMetal,
			"sand":        ShapeSand,
		},
	}
}

// materialsSchema validates user-supplied materials files before use, so a
// typo surfaces as a clear error instead of a broken blueprint.
const materialsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "default": {"$ref": "#/$defs/shapeId"},
    "glass": {"$ref": "#/$defs/shapeId"},
    "blocks": {
      "type": "object",
      "additionalProperties": {"$ref": "#/$defs/shapeId"}
    }
  },
  "required": ["default", "blocks"],
  "$defs": {
    "shapeId": {
      "type": "string",
      "pattern": "^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$"
    }
  }
}`

// LoadMaterials reads and validates a materials JSON file.
func LoadMaterials(path string) (*Materials, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("materials: read %s: %w", path, err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("materials: parse %s: %w", path, err)
	}

	schema, err := jsonschema.CompileString("materials.json", materialsSchema)
	if err != nil {
		return nil, fmt.Errorf("materials: compile schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("materials: invalid %s: %w", path, err)
	}

	var m struct {
		Default string            `json:"default"`
		Glass   string            `json:"glass"`
		Blocks  map[string]string `json:"blocks"`
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("materials: parse %s: %w", path, err)
	}

	out := &Materials{Default: m.Default, Glass: m.Glass, Blocks: m.Blocks}
	if out.Glass == "" {
		out.Glass = ShapeArmoredGlass
	}
	return out, nil
}

// ShapeFor resolves the shape id for a source block name.
func (m *Materials) ShapeFor(blockName string) string {
	name := strings.ToLower(blockName)
	if id, ok := m.Blocks[name]; ok {
		return id
	}
	if strings.Contains(name, "glass") && m.Glass != "" {
		return m.Glass
	}

	best := ""
	bestLen := 0
	for key, id := range m.Blocks {
		if strings.Contains(name, key) && len(key) > bestLen {
			best = id
			bestLen = len(key)
		}
	}
	if best != "" {
		return best
	}
	return m.Default
}
