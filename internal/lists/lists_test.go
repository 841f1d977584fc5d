// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lists

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/foursquare2maps/pkg/types"
)

// readCSV parses a produced file back into rows.
func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return rows
}

func coffeeShopsExport() *types.ListsExport {
	return &types.ListsExport{
		Items: []types.List{
			{
				Name: "Coffee Shops",
				ListItems: types.ListItemsBlock{
					Items: []types.ListItem{
						{Venue: &types.ListVenue{
							ID:   "v1",
							Name: "Blue Bottle",
							URL:  "https://foursquare.com/v/v1",
						}},
					},
				},
			},
		},
	}
}

func TestConvert_ResolvedVenue(t *testing.T) {
	outDir := t.TempDir()
	index := types.VenueIndex{
		"v1": {Lat: 40.0, Lng: -73.0, Name: "Blue Bottle"},
	}

	var log bytes.Buffer
	results, err := Convert(coffeeShopsExport(), index, types.ConvertConfig{OutputDir: outDir}, &log)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	r := results[0]
	if r.Name != "Coffee Shops" || r.Filename != "Coffee_Shops.csv" {
		t.Errorf("result = %+v", r)
	}
	if r.Total != 1 || r.WithCoords != 1 || r.WithoutCoords != 0 {
		t.Errorf("counts = %d/%d/%d, want 1/1/0", r.Total, r.WithCoords, r.WithoutCoords)
	}
	if r.Ratio() != "1/1" {
		t.Errorf("ratio = %q, want 1/1", r.Ratio())
	}

	rows := readCSV(t, filepath.Join(outDir, "Coffee_Shops.csv"))
	if len(rows) != 2 {
		t.Fatalf("row count = %d, want header + 1", len(rows))
	}
	wantHeader := []string{"Name", "Latitude", "Longitude", "Description", "Foursquare URL"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}
	want := []string{"Blue Bottle", "40", "-73", "From Foursquare list: Coffee Shops", "https://foursquare.com/v/v1"}
	for i, col := range want {
		if rows[1][i] != col {
			t.Errorf("row[%d] = %q, want %q", i, rows[1][i], col)
		}
	}

	if !strings.Contains(log.String(), "Created: Coffee_Shops.csv (1/1 with coordinates)") {
		t.Errorf("log = %q", log.String())
	}
}

func TestConvert_UnresolvedVenue(t *testing.T) {
	outDir := t.TempDir()

	var log bytes.Buffer
	results, err := Convert(coffeeShopsExport(), types.VenueIndex{}, types.ConvertConfig{OutputDir: outDir}, &log)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	r := results[0]
	if r.WithCoords != 0 || r.WithoutCoords != 1 {
		t.Errorf("counts = %d/%d, want 0 with, 1 without", r.WithCoords, r.WithoutCoords)
	}

	rows := readCSV(t, filepath.Join(outDir, "Coffee_Shops.csv"))
	if rows[1][1] != "" || rows[1][2] != "" {
		t.Errorf("coordinates = %q,%q, want empty", rows[1][1], rows[1][2])
	}
	if rows[1][0] != "Blue Bottle" {
		t.Errorf("name = %q, row should survive an unresolved venue", rows[1][0])
	}
}

func TestConvert_EmptyListSkipped(t *testing.T) {
	outDir := t.TempDir()
	export := &types.ListsExport{
		Items: []types.List{
			{Name: "Empty List"},
			coffeeShopsExport().Items[0],
		},
	}

	var log bytes.Buffer
	results, err := Convert(export, types.VenueIndex{}, types.ConvertConfig{OutputDir: outDir}, &log)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("results = %d, want 1 (empty list excluded)", len(results))
	}
	if _, err := os.Stat(filepath.Join(outDir, "Empty_List.csv")); !os.IsNotExist(err) {
		t.Error("empty list should not produce a file")
	}
}

func TestConvert_StatArithmetic(t *testing.T) {
	outDir := t.TempDir()
	export := &types.ListsExport{
		Items: []types.List{
			{
				Name: "Mixed",
				ListItems: types.ListItemsBlock{
					Items: []types.ListItem{
						{Venue: &types.ListVenue{ID: "known", Name: "A"}},
						{Venue: &types.ListVenue{ID: "unknown", Name: "B"}},
						{Venue: nil},
					},
				},
			},
		},
	}
	index := types.VenueIndex{"known": {Lat: 1, Lng: 2, Name: "A"}}

	var log bytes.Buffer
	results, err := Convert(export, index, types.ConvertConfig{OutputDir: outDir}, &log)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	r := results[0]
	if r.WithCoords+r.WithoutCoords != r.Total {
		t.Errorf("with (%d) + without (%d) != total (%d)", r.WithCoords, r.WithoutCoords, r.Total)
	}
	if r.Total != 3 || r.WithCoords != 1 {
		t.Errorf("counts = %+v", r)
	}

	rows := readCSV(t, filepath.Join(outDir, "Mixed.csv"))
	if len(rows) != r.Total+1 {
		t.Errorf("row count = %d, want total + header = %d", len(rows), r.Total+1)
	}
	// A list item with no venue record still gets a placeholder row.
	if rows[3][0] != "Unknown" {
		t.Errorf("venueless row name = %q, want Unknown", rows[3][0])
	}
}

func TestConvert_CSVEscaping(t *testing.T) {
	outDir := t.TempDir()
	export := &types.ListsExport{
		Items: []types.List{
			{
				Name: `Brunch, "fancy"`,
				ListItems: types.ListItemsBlock{
					Items: []types.ListItem{
						{Venue: &types.ListVenue{ID: "v1", Name: "Eggs, Etc.\nDowntown"}},
					},
				},
			},
		},
	}

	var log bytes.Buffer
	results, err := Convert(export, types.VenueIndex{}, types.ConvertConfig{OutputDir: outDir}, &log)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	rows := readCSV(t, filepath.Join(outDir, results[0].Filename))
	if rows[1][0] != "Eggs, Etc.\nDowntown" {
		t.Errorf("name did not round-trip: %q", rows[1][0])
	}
	if rows[1][3] != `From Foursquare list: Brunch, "fancy"` {
		t.Errorf("description did not round-trip: %q", rows[1][3])
	}
}

func TestConvert_CollisionSuffix(t *testing.T) {
	outDir := t.TempDir()
	item := types.ListItem{Venue: &types.ListVenue{ID: "v1", Name: "A"}}
	export := &types.ListsExport{
		Items: []types.List{
			{Name: "Same Name", ListItems: types.ListItemsBlock{Items: []types.ListItem{item}}},
			{Name: "Same  Name", ListItems: types.ListItemsBlock{Items: []types.ListItem{item}}},
		},
	}

	var log bytes.Buffer
	results, err := Convert(export, types.VenueIndex{}, types.ConvertConfig{OutputDir: outDir}, &log)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if results[0].Filename != "Same_Name.csv" || results[1].Filename != "Same_Name_2.csv" {
		t.Errorf("filenames = %q, %q", results[0].Filename, results[1].Filename)
	}
	for _, r := range results {
		if _, err := os.Stat(filepath.Join(outDir, r.Filename)); err != nil {
			t.Errorf("expected file %s: %v", r.Filename, err)
		}
	}
}

func TestReadExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lists.json")
	content := `{"items": [{"name": "Coffee", "listItems": {"items": [{"venue": {"id": "v1", "name": "Blue Bottle", "url": "https://4sq.com/v1"}}]}}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	export, err := ReadExport(path)
	if err != nil {
		t.Fatalf("ReadExport: %v", err)
	}
	if len(export.Items) != 1 || export.Items[0].Name != "Coffee" {
		t.Errorf("export = %+v", export)
	}
	if got := export.Items[0].ListItems.Items[0].Venue.URL; got != "https://4sq.com/v1" {
		t.Errorf("url = %q", got)
	}
}

func TestReadExport_Missing(t *testing.T) {
	if _, err := ReadExport(filepath.Join(t.TempDir(), "lists.json")); err == nil {
		t.Fatal("expected error for missing lists export")
	}
}

func TestReadExport_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lists.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadExport(path); err == nil {
		t.Fatal("expected error for malformed lists export")
	}
}
