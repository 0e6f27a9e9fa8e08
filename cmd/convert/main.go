package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"mc-blueprint-converter/internal/assemble"
	"mc-blueprint-converter/internal/blockdef"
	"mc-blueprint-converter/internal/blueprint"
	"mc-blueprint-converter/internal/chunker"
	"mc-blueprint-converter/internal/config"
	"mc-blueprint-converter/internal/hollow"
	"mc-blueprint-converter/internal/mcmodel"
	"mc-blueprint-converter/internal/schematic"
	"mc-blueprint-converter/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (JSON or YAML)")
	assetsDir := flag.String("assets", "", "Resource pack assets directory (generate stamps on demand)")
	blocksDir := flag.String("blocks", "", "Precomputed stamp bundle directory (from genblocks)")
	materialsFile := flag.String("materials", "", "Materials mapping JSON (default: built-in)")
	outputDir := flag.String("output", "", "Output directory (default: blueprints)")
	name := flag.String("name", "", "Blueprint name (default: Converted Structure)")
	doHollow := flag.Bool("hollow", false, "Remove interior voxels")
	threshold := flag.Int("threshold", 0, "Hollowing shell thickness in voxels (default: 1)")
	split := flag.Bool("split", false, "Split output into size-bounded chunks")
	maxVoxels := flag.Int("max-voxels", 0, "Max voxels per chunk when splitting (default: 60000)")
	previewWebP := flag.Bool("preview-webp", false, "Write icon.webp previews instead of icon.png")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: convert [flags] <structure.schematic>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	schematicPath := flag.Arg(0)

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		AssetsDir:      *assetsDir,
		BlocksDir:      *blocksDir,
		OutputDir:      *outputDir,
		Name:           *name,
		MaxChunkVoxels: *maxVoxels,
	})
	if *materialsFile != "" {
		cfg.Materials = *materialsFile
	}
	if *doHollow {
		cfg.Hollow = true
	}
	if *threshold > 0 {
		cfg.HollowThreshold = *threshold
	}
	if *split {
		cfg.Split = true
	}
	if *previewWebP {
		cfg.PreviewWebP = true
	}

	// Parse the structure
	grid, err := schematic.Parse(schematicPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing schematic: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Schematic: %dx%dx%d, %d blocks\n",
		grid.Width, grid.Height, grid.Length, len(grid.Instances))

	// Materials
	materials := blockdef.DefaultMaterials()
	if cfg.Materials != "" {
		materials, err = blockdef.LoadMaterials(cfg.Materials)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading materials: %v\n", err)
			os.Exit(1)
		}
	}

	// Stamp source: precomputed bundles, or voxelized on demand from assets
	var gen blockdef.Generator
	switch {
	case cfg.BlocksDir != "":
		disk, err := blockdef.NewDiskLibrary(cfg.BlocksDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error indexing block library: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Stamps: %d bundles indexed in %s\n", disk.Len(), cfg.BlocksDir)
		gen = disk
	case cfg.AssetsDir != "":
		gen = mcmodel.NewGenerator(cfg.AssetsDir, texture.NewCache(), cfg.StampResolution)
		fmt.Printf("Stamps: generating on demand from %s\n", cfg.AssetsDir)
	default:
		fmt.Fprintln(os.Stderr, "Error: no stamp source. Use -assets or -blocks (or config).")
		os.Exit(1)
	}
	lib := blockdef.NewLibrary(gen, cfg.StampResolution)

	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Assemble
	mapper := assemble.NewMapper(grid, cfg.StampResolution)
	structure, stats := assemble.Assemble(grid, lib, mapper)
	fmt.Printf("Assembled: %d voxels from %d blocks (%d overwrites)\n",
		stats.Voxels, stats.Instances, stats.Overwrites)

	// Hollow
	if cfg.Hollow {
		hollowed, rep := hollow.Hollow(structure, cfg.HollowThreshold)
		structure = hollowed
		fmt.Printf("Hollowed: %d -> %d voxels (removed %d)\n",
			rep.Before, rep.After, rep.Removed)
		if len(rep.DiscardedIslands) > 0 {
			fmt.Printf("  Discarded %d disconnected islands: %v voxels\n",
				len(rep.DiscardedIslands), rep.DiscardedIslands)
		}
	}

	if structure.Len() == 0 {
		fmt.Println("Nothing to export: structure is empty.")
		os.Exit(0)
	}

	// Split and write
	maxPerChunk := structure.Len()
	if cfg.Split {
		maxPerChunk = cfg.MaxChunkVoxels
	}
	chunks := chunker.Split(structure, maxPerChunk)

	opts := blueprint.Options{
		ShapeID:     materials.Default,
		PreviewWebP: cfg.PreviewWebP,
	}
	for _, ch := range chunks {
		bundleName := cfg.Name
		if len(chunks) > 1 {
			bundleName = blueprint.PartName(cfg.Name, ch.Seq, ch.Total)
			opts.Description = fmt.Sprintf("%s, %s", cfg.Name, ch.Label())
		}
		dir, err := blueprint.WriteBundle(cfg.OutputDir, bundleName, ch.Grid, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing bundle: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  %s: %d voxels -> %s\n", bundleName, ch.Grid.Len(), dir)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs: %d bundle(s), %d voxels\n",
		elapsed.Seconds(), len(chunks), structure.Len())

	// Coverage report
	if n := stats.Report.Total(); n > 0 {
		names := stats.Report.Names()
		fmt.Printf("\nFallback stamps used for %d blocks (%d names):\n", n, len(names))
		limit := 20
		if len(names) < limit {
			limit = len(names)
		}
		for _, name := range names[:limit] {
			fmt.Printf("  %s: %d\n", name, stats.Report.Misses[name])
		}
		if len(names) > limit {
			fmt.Printf("  ... and %d more\n", len(names)-limit)
		}
	}
}
