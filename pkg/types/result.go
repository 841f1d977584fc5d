// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// VenueLocation is the first-seen coordinate pair and name recorded for a
// venue while scanning check-in files.
type VenueLocation struct {
	Lat  float64 `json:"lat" yaml:"lat"`
	Lng  float64 `json:"lng" yaml:"lng"`
	Name string  `json:"name" yaml:"name"`
}

// VenueIndex maps a venue ID to its first-seen location. Entries are never
// overwritten once set; use Add to preserve that rule.
type VenueIndex map[string]VenueLocation

// Add records loc under id unless an entry already exists. It reports
// whether the entry was inserted.
func (v VenueIndex) Add(id string, loc VenueLocation) bool {
	if _, ok := v[id]; ok {
		return false
	}
	v[id] = loc
	return true
}

// ListResult holds the conversion outcome for one non-empty list.
type ListResult struct {
	// Name is the list name as it appears in the export.
	Name string `json:"name" yaml:"name"`

	// Filename is the CSV file actually written, relative to the output
	// directory (collision suffix included).
	Filename string `json:"filename" yaml:"filename"`

	// Total is the number of items in the list.
	Total int `json:"total" yaml:"total"`

	// WithCoords counts items whose venue resolved to coordinates.
	WithCoords int `json:"with_coords" yaml:"with_coords"`

	// WithoutCoords counts items that got empty coordinate fields.
	WithoutCoords int `json:"without_coords" yaml:"without_coords"`
}

// Ratio formats the resolved/total coordinate ratio, e.g. "12/15".
func (r ListResult) Ratio() string {
	return fmt.Sprintf("%d/%d", r.WithCoords, r.Total)
}

// Totals aggregates a slice of list results for the summary stage.
type Totals struct {
	Lists         int
	Places        int
	WithCoords    int
	WithoutCoords int
}

// Aggregate sums per-list counts across results.
func Aggregate(results []ListResult) Totals {
	var t Totals
	t.Lists = len(results)
	for _, r := range results {
		t.Places += r.Total
		t.WithCoords += r.WithCoords
		t.WithoutCoords += r.WithoutCoords
	}
	return t
}
