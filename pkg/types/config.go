// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// IndexConfig holds settings for the location index builder stage.
type IndexConfig struct {
	// InputDir is the directory holding the Foursquare export files.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// CheckinFiles is the number of numbered check-in files to scan
	// (checkins1.json .. checkinsN.json). Missing files are skipped.
	CheckinFiles int `json:"checkin_files" yaml:"checkin_files"`
}

// ConvertConfig holds settings for the list conversion stage.
type ConvertConfig struct {
	// ListsPath is the path to the lists export file.
	ListsPath string `json:"lists_path" yaml:"lists_path"`

	// OutputDir is the directory for per-list CSV files, created if absent.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// SummaryConfig holds settings for the summary stage.
type SummaryConfig struct {
	// OutputDir is the directory the summary files are written into,
	// normally the same directory as the CSV output.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// CacheConfig holds settings for the optional venue index cache.
type CacheConfig struct {
	// DBPath is the SQLite database path. Empty disables the cache.
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Index   IndexConfig   `json:"index" yaml:"index"`
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	Summary SummaryConfig `json:"summary" yaml:"summary"`
	Cache   CacheConfig   `json:"cache" yaml:"cache"`
}

// DefaultCheckinFiles is the number of numbered check-in files a standard
// Foursquare export ships with.
const DefaultCheckinFiles = 13
