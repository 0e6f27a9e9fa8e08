// Package mcmodel parses Minecraft block model JSON and turns models into
// voxel stamps.
package mcmodel

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Face is one textured side of a model element.
type Face struct {
	Texture  string    `json:"texture"`
	UV       []float64 `json:"uv"`
	Rotation int       `json:"rotation"`
}

// ElementRotation tilts an element around one axis.
type ElementRotation struct {
	Origin []float64 `json:"origin"`
	Axis   string    `json:"axis"`
	Angle  float64   `json:"angle"`
}

// Element is one cuboid of a model, in 0–16 model units.
type Element struct {
	From     []float64        `json:"from"`
	To       []float64        `json:"to"`
	Rotation *ElementRotation `json:"rotation"`
	Faces    map[string]Face  `json:"faces"`
}

// Model is a fully inherited block model.
type Model struct {
	Elements []Element
	Textures map[string]string
}

type rawModel struct {
	Parent   string            `json:"parent"`
	Textures map[string]string `json:"textures"`
	Elements []Element         `json:"elements"`
}

// Loader reads model files from a resource pack's assets directory and
// resolves parent inheritance. Safe for concurrent use; models are parsed
// once and cached for the run.
type Loader struct {
	assetsDir string

	mu    sync.Mutex
	cache map[string]*Model
}

// NewLoader creates a loader rooted at an assets directory.
func NewLoader(assetsDir string) *Loader {
	return &Loader{assetsDir: assetsDir, cache: make(map[string]*Model)}
}

// maxParentDepth bounds the inheritance walk; vanilla chains are three
// or four models deep, so hitting this means a cycle in the pack.
const maxParentDepth = 16

// Load resolves a model reference like "minecraft:block/oak_stairs" or
// "block/stone", walking the parent chain. Child elements replace
// inherited ones; child textures extend and override inherited ones.
// A cyclic parent chain is an error, not a crash.
func (l *Loader) Load(modelPath string) (*Model, error) {
	return l.load(modelPath, 0)
}

func (l *Loader) load(modelPath string, depth int) (*Model, error) {
	if depth >= maxParentDepth {
		return nil, fmt.Errorf("mcmodel: parent chain of %s exceeds %d levels, cycle?", modelPath, maxParentDepth)
	}

	ns, path := splitRef(modelPath)
	file := filepath.Join(l.assetsDir, ns, "models", filepath.FromSlash(path)+".json")

	l.mu.Lock()
	cached, ok := l.cache[file]
	l.mu.Unlock()
	if ok {
		return cached, nil
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("mcmodel: read %s: %w", file, err)
	}
	var rm rawModel
	if err := json.Unmarshal(raw, &rm); err != nil {
		return nil, fmt.Errorf("mcmodel: parse %s: %w", file, err)
	}

	model := &Model{Textures: make(map[string]string)}
	if rm.Parent != "" {
		parent, err := l.load(rm.Parent, depth+1)
		if err != nil {
			return nil, fmt.Errorf("mcmodel: parent of %s: %w", modelPath, err)
		}
		model.Elements = parent.Elements
		for k, v := range parent.Textures {
			model.Textures[k] = v
		}
	}
	for k, v := range rm.Textures {
		key := strings.TrimPrefix(k, "#")
		if !strings.HasPrefix(v, "#") && !strings.Contains(v, ":") {
			v = "minecraft:" + v
		}
		model.Textures[key] = v
	}
	if len(rm.Elements) > 0 {
		model.Elements = rm.Elements
	}

	l.mu.Lock()
	l.cache[file] = model
	l.mu.Unlock()
	return model, nil
}

// ResolvedFace carries the texture resolved down to a filesystem path.
type ResolvedFace struct {
	TexturePath string
	UV          []float64
	Rotation    int
}

// ResolvedElement is an element with all texture variables substituted.
type ResolvedElement struct {
	From     [3]float64
	To       [3]float64
	Rotation *ElementRotation
	Faces    map[string]ResolvedFace
}

// ResolveTextures substitutes texture variables with filesystem paths.
// Unresolvable variables drop the face; the voxelizer falls back to gray
// for cells no face covers.
func (l *Loader) ResolveTextures(m *Model) []ResolvedElement {
	out := make([]ResolvedElement, 0, len(m.Elements))
	for _, elem := range m.Elements {
		if len(elem.From) != 3 || len(elem.To) != 3 {
			continue
		}
		re := ResolvedElement{
			From:     [3]float64{elem.From[0], elem.From[1], elem.From[2]},
			To:       [3]float64{elem.To[0], elem.To[1], elem.To[2]},
			Rotation: elem.Rotation,
			Faces:    make(map[string]ResolvedFace, len(elem.Faces)),
		}
		for face, fd := range elem.Faces {
			ref := l.resolveVariable(m, fd.Texture)
			if ref == "" {
				continue
			}
			re.Faces[face] = ResolvedFace{
				TexturePath: l.texturePath(ref),
				UV:          fd.UV,
				Rotation:    fd.Rotation,
			}
		}
		out = append(out, re)
	}
	return out
}

// resolveVariable chases #variable references, bounded to avoid cycles.
func (l *Loader) resolveVariable(m *Model, ref string) string {
	if strings.HasPrefix(ref, "##") {
		ref = ref[1:]
	}
	for depth := 0; strings.HasPrefix(ref, "#") && depth < 10; depth++ {
		next, ok := m.Textures[ref[1:]]
		if !ok {
			// "missing" marks intentionally hidden faces.
			if ref[1:] == "missing" {
				return ""
			}
			return ref[1:]
		}
		ref = next
	}
	if strings.HasPrefix(ref, "#") {
		return ""
	}
	return ref
}

func (l *Loader) texturePath(ref string) string {
	ns, path := splitRef(ref)
	if !strings.Contains(path, "/") {
		path = "block/" + path
	}
	if !strings.HasSuffix(path, ".png") {
		path += ".png"
	}
	return filepath.Join(l.assetsDir, ns, "textures", filepath.FromSlash(path))
}

func splitRef(ref string) (ns, path string) {
	if i := strings.IndexByte(ref, ':'); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return "minecraft", ref
}
