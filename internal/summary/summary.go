// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summary aggregates per-list conversion results into the run
// reports written next to the CSV output.
package summary

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/foursquare2maps/pkg/types"
)

const (
	// TextFilename is the human-readable report written into the output
	// directory. The leading underscore sorts it ahead of the CSV files.
	TextFilename = "_SUMMARY.txt"

	// YAMLFilename is the machine-readable run report.
	YAMLFilename = "_SUMMARY.yaml"
)

// importInstructions is the fixed how-to block included in every report.
const importInstructions = `HOW TO IMPORT TO GOOGLE MY MAPS:
--------------------------------------------------
1. Go to https://www.google.com/maps/d/
2. Click 'Create a new map'
3. Click 'Import' under a layer
4. Upload the CSV file for the list you want
5. Select 'Latitude' and 'Longitude' columns for positioning
6. Select 'Name' column for place titles
7. Repeat for each list

NOTE: Places without coordinates will need to be added manually.
You can search for them in Google Maps using the venue name.
`

// Write renders the text report for results and writes it to
// cfg.OutputDir. Results may arrive in any order; the per-list section is
// sorted by list name.
func Write(results []types.ListResult, cfg types.SummaryConfig) error {
	path := filepath.Join(cfg.OutputDir, TextFilename)
	if err := os.WriteFile(path, []byte(Render(results)), 0o644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// Render builds the report text. Split out from Write so it can be checked
// without touching the file system.
func Render(results []types.ListResult) string {
	totals := types.Aggregate(results)

	var b strings.Builder
	b.WriteString("FOURSQUARE TO GOOGLE MAPS CONVERSION SUMMARY\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&b, "Total lists: %d\n", totals.Lists)
	fmt.Fprintf(&b, "Total places: %d\n", totals.Places)
	fmt.Fprintf(&b, "Places with coordinates: %d\n", totals.WithCoords)
	fmt.Fprintf(&b, "Places without coordinates: %d\n\n", totals.WithoutCoords)

	b.WriteString(importInstructions)
	b.WriteString("\nLISTS:\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")

	sorted := make([]types.ListResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	for _, r := range sorted {
		fmt.Fprintf(&b, "  %s\n", r.Name)
		fmt.Fprintf(&b, "    File: %s\n", r.Filename)
		fmt.Fprintf(&b, "    Places: %s with coords\n\n", r.Ratio())
	}

	return b.String()
}
