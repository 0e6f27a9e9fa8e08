// Package config holds the shared settings for the conversion tools.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configurable paths and pipeline settings.
type Config struct {
	// Paths
	AssetsDir string `json:"assets_dir" yaml:"assets_dir"` // resource pack assets/ (on-demand generation)
	BlocksDir string `json:"blocks_dir" yaml:"blocks_dir"` // precomputed stamp library
	Materials string `json:"materials" yaml:"materials"`   // materials mapping file
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Pipeline settings
	Name            string `json:"name" yaml:"name"`
	StampResolution int    `json:"stamp_resolution" yaml:"stamp_resolution"`
	Hollow          bool   `json:"hollow" yaml:"hollow"`
	HollowThreshold int    `json:"hollow_threshold" yaml:"hollow_threshold"`
	Split           bool   `json:"split" yaml:"split"`
	MaxChunkVoxels  int    `json:"max_chunk_voxels" yaml:"max_chunk_voxels"`
	PreviewWebP     bool   `json:"preview_webp" yaml:"preview_webp"`
	Workers         int    `json:"workers" yaml:"workers"`
}

// Load reads a JSON or YAML config file. Fields not set in the file keep
// their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	AssetsDir      string
	BlocksDir      string
	OutputDir      string
	Name           string
	MaxChunkVoxels int
	Workers        int
}

// Resolve applies CLI overrides and fills in defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.AssetsDir != "" {
		c.AssetsDir = flags.AssetsDir
	}
	if flags.BlocksDir != "" {
		c.BlocksDir = flags.BlocksDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Name != "" {
		c.Name = flags.Name
	}
	if flags.MaxChunkVoxels > 0 {
		c.MaxChunkVoxels = flags.MaxChunkVoxels
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "blueprints"
	}
	if c.Name == "" {
		c.Name = "Converted Structure"
	}
	if c.StampResolution <= 0 {
		c.StampResolution = 16
	}
	if c.HollowThreshold <= 0 {
		c.HollowThreshold = 1
	}
	if c.MaxChunkVoxels <= 0 {
		c.MaxChunkVoxels = 60000
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
