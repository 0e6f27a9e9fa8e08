package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one stamp bundle in the output manifest. The
// block library reads this file to map block names to bundles.
type ManifestEntry struct {
	Name   string `json:"name"`
	Bundle string `json:"bundle"`
	Voxels int    `json:"voxels"`
}

// WriteManifest writes manifest.json for all successful results.
func WriteManifest(path string, results []Result) error {
	var entries []ManifestEntry
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:   r.Model,
			Bundle: r.Bundle,
			Voxels: r.Voxels,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
