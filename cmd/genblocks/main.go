package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"mc-blueprint-converter/internal/batch"
	"mc-blueprint-converter/internal/blockdef"
	"mc-blueprint-converter/internal/config"
	"mc-blueprint-converter/internal/mcmodel"
	"mc-blueprint-converter/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (JSON or YAML)")
	assetsDir := flag.String("assets", "", "Resource pack assets directory")
	materialsFile := flag.String("materials", "", "Materials mapping JSON (default: built-in)")
	outputDir := flag.String("output", "", "Output directory (default: blocks)")
	testN := flag.Int("test", 0, "Process only first N models for testing")
	only := flag.String("only", "", "Process only models whose name contains this substring")
	previewWebP := flag.Bool("preview-webp", false, "Write icon.webp previews instead of icon.png")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

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

	// CLI flags override config file. Stamps default to their own
	// directory, not the blueprint output.
	if *outputDir == "" && cfg.OutputDir == "" {
		cfg.OutputDir = "blocks"
	}
	cfg.Resolve(config.Flags{
		AssetsDir: *assetsDir,
		OutputDir: *outputDir,
		Workers:   *workers,
	})
	if *materialsFile != "" {
		cfg.Materials = *materialsFile
	}
	if *previewWebP {
		cfg.PreviewWebP = true
	}

	if cfg.AssetsDir == "" {
		fmt.Fprintln(os.Stderr, "Error: no assets directory. Use -assets flag or config.")
		os.Exit(1)
	}

	// Collect block model names
	modelDir := filepath.Join(cfg.AssetsDir, "minecraft", "models", "block")
	entries, err := os.ReadDir(modelDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading models: %v\n", err)
		os.Exit(1)
	}
	var models []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".json")
		if *only != "" && !strings.Contains(name, *only) {
			continue
		}
		models = append(models, name)
	}
	sort.Strings(models)

	// Limit for testing
	if *testN > 0 && *testN < len(models) {
		models = models[:*testN]
	}

	if len(models) == 0 {
		fmt.Println("No models to process.")
		os.Exit(0)
	}

	// Materials
	materials := blockdef.DefaultMaterials()
	if cfg.Materials != "" {
		materials, err = blockdef.LoadMaterials(cfg.Materials)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading materials: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	// Print summary
	mode := ""
	if *only != "" {
		mode = fmt.Sprintf(" (only %q)", *only)
	} else if *testN > 0 {
		mode = fmt.Sprintf(" (TEST: first %d)", *testN)
	}

	fmt.Printf("Block stamp generator%s\n", mode)
	fmt.Printf("Models: %d, Workers: %d, Resolution: %d\n",
		len(models), cfg.Workers, cfg.StampResolution)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		Loader:          mcmodel.NewLoader(cfg.AssetsDir),
		TexResolver:     texture.NewCache(),
		Materials:       materials,
		OutputDir:       cfg.OutputDir,
		StampResolution: cfg.StampResolution,
		PreviewWebP:     cfg.PreviewWebP,
		Workers:         cfg.Workers,
	}

	results := batch.Run(batchCfg, models)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, skipped, failed := 0, 0, 0
	var errors []batch.Result
	for _, r := range results {
		switch {
		case r.Success:
			success++
		case r.Skipped:
			skipped++
		default:
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Generated: %d/%d (%d skipped)\n", success, len(models), skipped)

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Model, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
