package main

import (
	"fmt"
	"os"
	"sort"

	"mc-blueprint-converter/internal/rotation"
	"mc-blueprint-converter/internal/schematic"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: inspect <structure.schematic>")
		os.Exit(1)
	}

	grid, err := schematic.Parse(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Dimensions: %d x %d x %d (W x H x L)\n", grid.Width, grid.Height, grid.Length)
	fmt.Printf("Volume: %d cells, %d non-air blocks\n",
		grid.Width*grid.Height*grid.Length, len(grid.Instances))

	// Histogram by name, with the rotation category each name falls into
	counts := map[string]int{}
	for _, in := range grid.Instances {
		counts[in.Name]++
	}
	names := make([]string, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	fmt.Printf("\nBlocks (%d distinct):\n", len(names))
	for _, n := range names {
		cat := ""
		if c := rotation.Categorize(n); c != rotation.CategoryNone {
			cat = fmt.Sprintf("  [%s]", c)
		}
		fmt.Printf("  %7d  %s%s\n", counts[n], n, cat)
	}
}
