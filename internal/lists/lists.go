// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lists converts the saved lists of a Foursquare export into
// per-list CSV files importable into Google My Maps.
package lists

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdiddy/foursquare2maps/pkg/types"
)

// header is the fixed first row of every CSV, matching the column layout
// Google My Maps expects on import.
var header = []string{"Name", "Latitude", "Longitude", "Description", "Foursquare URL"}

// ReadExport loads and parses the lists export file. A missing or
// malformed file is fatal to the run.
func ReadExport(path string) (*types.ListsExport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lists export: %w", err)
	}
	var export types.ListsExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &export, nil
}

// Convert writes one CSV file per non-empty list into cfg.OutputDir,
// creating the directory if needed, and returns per-list statistics in
// processing order. Lists with no items produce no file and no statistics
// entry. Per-file progress is written to w.
func Convert(export *types.ListsExport, index types.VenueIndex, cfg types.ConvertConfig, w io.Writer) ([]types.ListResult, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	namer := newFileNamer()
	var results []types.ListResult

	for _, list := range export.Items {
		if len(list.ListItems.Items) == 0 {
			continue
		}

		filename := namer.Name(list.Name)
		result, err := convertList(list, index, filepath.Join(cfg.OutputDir, filename))
		if err != nil {
			return nil, fmt.Errorf("converting list %q: %w", list.Name, err)
		}
		result.Filename = filename

		fmt.Fprintf(w, "Created: %s (%s with coordinates)\n", filename, result.Ratio())
		results = append(results, result)
	}

	return results, nil
}

// convertList writes a single list to path and counts coordinate
// resolution. A venue absent from the index, or a list item with no venue
// record at all, still produces a row with empty coordinate fields.
func convertList(list types.List, index types.VenueIndex, path string) (types.ListResult, error) {
	result := types.ListResult{
		Name:  list.Name,
		Total: len(list.ListItems.Items),
	}

	f, err := os.Create(path)
	if err != nil {
		return result, err
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		f.Close()
		return result, fmt.Errorf("writing header: %w", err)
	}

	for _, item := range list.ListItems.Items {
		row := buildRow(item, list.Name, index)
		if row.resolved {
			result.WithCoords++
		} else {
			result.WithoutCoords++
		}
		if err := cw.Write(row.fields); err != nil {
			f.Close()
			return result, fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return result, err
	}
	return result, f.Close()
}

// csvRow pairs the formatted fields of one row with whether its venue
// resolved to coordinates.
type csvRow struct {
	fields   []string
	resolved bool
}

func buildRow(item types.ListItem, listName string, index types.VenueIndex) csvRow {
	name := "Unknown"
	var id, url string
	if item.Venue != nil {
		id = item.Venue.ID
		url = item.Venue.URL
		if item.Venue.Name != "" {
			name = item.Venue.Name
		}
	}

	var lat, lng string
	loc, ok := index[id]
	if ok {
		lat = formatCoord(loc.Lat)
		lng = formatCoord(loc.Lng)
	}

	return csvRow{
		fields: []string{
			name,
			lat,
			lng,
			fmt.Sprintf("From Foursquare list: %s", listName),
			url,
		},
		resolved: ok,
	}
}

// formatCoord renders a coordinate with the shortest representation that
// round-trips, the same form the export itself uses.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
