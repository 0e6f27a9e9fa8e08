package mcmodel

import (
	"errors"
	"os"

	"mc-blueprint-converter/internal/blockdef"
	"mc-blueprint-converter/internal/texture"
	"mc-blueprint-converter/internal/voxel"
)

// Generator voxelizes block models on demand. Implements
// blockdef.Generator for use behind a block library.
type Generator struct {
	loader *Loader
	tex    texture.Resolver
	res    int
}

// NewGenerator creates an on-demand stamp generator over a resource
// pack's assets directory.
func NewGenerator(assetsDir string, tex texture.Resolver, stampRes int) *Generator {
	return &Generator{loader: NewLoader(assetsDir), tex: tex, res: stampRes}
}

// Generate voxelizes the model named by the signature. A missing model
// file or an element-free model yields (nil, nil) — a recordable miss,
// not an error.
func (g *Generator) Generate(sig blockdef.Signature) (*blockdef.Definition, error) {
	model, err := g.loader.Load("minecraft:block/" + sig.Name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if len(model.Elements) == 0 {
		return nil, nil
	}

	elems := g.loader.ResolveTextures(model)
	voxels := Voxelize(elems, g.tex, g.res)

	stamp := make([]blockdef.StampVoxel, 0, len(voxels))
	for _, v := range voxels {
		if v.A < 128 { // transparent cells don't survive into stamps
			continue
		}
		stamp = append(stamp, blockdef.StampVoxel{
			X: v.X, Y: v.Y, Z: v.Z,
			Color: voxel.RGB(v.R, v.G, v.B),
		})
	}
	if len(stamp) == 0 {
		return nil, nil
	}
	return blockdef.NewDefinition(stamp), nil
}
