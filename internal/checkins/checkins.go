// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package checkins builds the venue location index from the numbered
// check-in files of a Foursquare export.
package checkins

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/foursquare2maps/pkg/types"
)

// FilePaths returns the ordered paths of the numbered check-in files under
// cfg.InputDir. The order fixes which occurrence of a venue counts as first.
func FilePaths(cfg types.IndexConfig) []string {
	n := cfg.CheckinFiles
	if n <= 0 {
		n = types.DefaultCheckinFiles
	}
	paths := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		paths = append(paths, filepath.Join(cfg.InputDir, fmt.Sprintf("checkins%d.json", i)))
	}
	return paths
}

// BuildIndex scans the check-in files in order and returns a venue ID to
// location map. The first occurrence of a venue wins; later check-ins for
// the same venue are ignored. Records missing a venue ID, latitude, or
// longitude are skipped. A path that does not exist is skipped silently; a
// file that exists but cannot be parsed is an error.
//
// Progress is written to w, including the final indexed-venue count.
func BuildIndex(paths []string, w io.Writer) (types.VenueIndex, error) {
	index := make(types.VenueIndex)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		var export types.CheckinExport
		if err := json.Unmarshal(data, &export); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		for _, c := range export.Items {
			if c.Venue == nil || c.Venue.ID == "" || c.Lat == nil || c.Lng == nil {
				continue
			}
			index.Add(c.Venue.ID, types.VenueLocation{
				Lat:  *c.Lat,
				Lng:  *c.Lng,
				Name: c.Venue.Name,
			})
		}
	}

	fmt.Fprintf(w, "Built location map for %d venues from checkins\n", len(index))
	return index, nil
}

// Build is the convenience entry point used by the CLI: derive the file
// paths from cfg and build the index.
func Build(cfg types.IndexConfig, w io.Writer) (types.VenueIndex, error) {
	return BuildIndex(FilePaths(cfg), w)
}
