// Package batch renders block models into single-block stamp bundles
// using a worker pool. cmd/genblocks drives it.
package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"mc-blueprint-converter/internal/blockdef"
	"mc-blueprint-converter/internal/blueprint"
	"mc-blueprint-converter/internal/mcmodel"
	"mc-blueprint-converter/internal/texture"
	"mc-blueprint-converter/internal/voxel"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Loader          *mcmodel.Loader
	TexResolver     texture.Resolver
	Materials       *blockdef.Materials
	OutputDir       string
	StampResolution int
	PreviewWebP     bool
	Workers         int
}

// Result holds the outcome of processing one model.
type Result struct {
	Model   string
	Bundle  string // bundle directory name, empty unless Success
	Voxels  int
	Success bool
	Skipped bool // model exists but produces no stamp (no elements, fully transparent)
	Error   string
}

// Run processes all models using a worker pool.
func Run(cfg Config, models []string) []Result {
	total := len(models)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f models/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	modelChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range modelChan {
				results[idx] = processModel(cfg, models[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range models {
		modelChan <- i
	}
	close(modelChan)

	wg.Wait()
	close(done)

	return results
}

func processModel(cfg Config, name string) Result {
	model, err := cfg.Loader.Load("minecraft:block/" + name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{Model: name, Skipped: true}
		}
		return Result{Model: name, Error: err.Error()}
	}
	if len(model.Elements) == 0 {
		// Abstract parents like block/block have no geometry of their own.
		return Result{Model: name, Skipped: true}
	}

	elems := cfg.Loader.ResolveTextures(model)
	cells := mcmodel.Voxelize(elems, cfg.TexResolver, cfg.StampResolution)

	// Bundle positions are target space: swap to z up. The alpha cutoff
	// matches the on-demand generator, so both stamp sources agree on
	// which cells survive.
	grid := voxel.NewGrid()
	for _, c := range cells {
		if c.A < 128 {
			continue
		}
		grid.Set(c.X, c.Z, c.Y, voxel.RGB(c.R, c.G, c.B))
	}
	if grid.Len() == 0 {
		return Result{Model: name, Skipped: true}
	}

	dir, err := blueprint.WriteBundle(cfg.OutputDir, name, grid, blueprint.Options{
		ShapeID:     cfg.Materials.ShapeFor(name),
		Description: fmt.Sprintf("Block stamp %s (%dx%dx%d)", name, cfg.StampResolution, cfg.StampResolution, cfg.StampResolution),
		PreviewWebP: cfg.PreviewWebP,
	})
	if err != nil {
		return Result{Model: name, Error: err.Error()}
	}

	return Result{
		Model:   name,
		Bundle:  filepath.Base(dir),
		Voxels:  grid.Len(),
		Success: true,
	}
}
