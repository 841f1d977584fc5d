// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/foursquare2maps/internal/checkins"
	"github.com/pdiddy/foursquare2maps/internal/lists"
	"github.com/pdiddy/foursquare2maps/internal/summary"
	"github.com/pdiddy/foursquare2maps/internal/venuedb"
	"github.com/pdiddy/foursquare2maps/pkg/types"
)

const defaultOutputDir = "google_maps_lists"

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Run the full export-to-CSV pipeline",
	Long: `Convert builds the venue location index from the check-in files, writes
one CSV file per non-empty saved list, and finishes with a summary report.
Venues never checked into get empty coordinate fields; Google My Maps can
still import them by name.

With --index-db pointing at an existing cache, the check-in scan is skipped
and coordinates are served from the cache instead.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("input-dir", ".", "directory holding the Foursquare export files")
	convertCmd.Flags().String("output-dir", defaultOutputDir, "directory for CSV and summary output")
	convertCmd.Flags().Int("checkin-files", types.DefaultCheckinFiles, "number of numbered check-in files to scan")
	convertCmd.Flags().String("lists-file", "lists.json", "path of the lists export, relative to input-dir unless absolute")
	convertCmd.Flags().String("index-db", "", "optional SQLite venue cache: read from it if it exists, refresh it otherwise")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)
	return runPipeline(cfg, os.Stdout)
}

// pipelineConfig assembles the stage configs from flags, config file, and
// defaults.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	inputDir := stringSetting(cmd, "input-dir", "index.input_dir")
	outputDir := stringSetting(cmd, "output-dir", "convert.output_dir")
	listsFile := stringSetting(cmd, "lists-file", "convert.lists_path")
	if !filepath.IsAbs(listsFile) {
		listsFile = filepath.Join(inputDir, listsFile)
	}

	return types.PipelineConfig{
		Index: types.IndexConfig{
			InputDir:     inputDir,
			CheckinFiles: intSetting(cmd, "checkin-files", "index.checkin_files"),
		},
		Convert: types.ConvertConfig{
			ListsPath: listsFile,
			OutputDir: outputDir,
		},
		Summary: types.SummaryConfig{
			OutputDir: outputDir,
		},
		Cache: types.CacheConfig{
			DBPath: stringSetting(cmd, "index-db", "cache.db_path"),
		},
	}
}

// runPipeline executes the three stages in order: index, convert, summary.
func runPipeline(cfg types.PipelineConfig, w io.Writer) error {
	fmt.Fprintln(w, "Building venue location map from checkins...")
	index, err := buildOrLoadIndex(cfg, w)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\nConverting lists to CSV...")
	export, err := lists.ReadExport(cfg.Convert.ListsPath)
	if err != nil {
		return err
	}
	results, err := lists.Convert(export, index, cfg.Convert, w)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\nCreating summary...")
	if err := summary.Write(results, cfg.Summary); err != nil {
		return err
	}
	if err := summary.WriteReport(results, cfg.Summary); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nDone! Files created in: %s\n", cfg.Convert.OutputDir)
	return nil
}

// buildOrLoadIndex returns the venue index, preferring an existing cache
// when one is configured and present. A configured-but-absent cache is
// built from the check-in files and persisted for the next run.
func buildOrLoadIndex(cfg types.PipelineConfig, w io.Writer) (types.VenueIndex, error) {
	if cfg.Cache.DBPath == "" {
		return checkins.Build(cfg.Index, w)
	}

	cached := fileExists(cfg.Cache.DBPath)
	store, err := venuedb.Open(cfg.Cache.DBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if cached {
		index, err := store.Load()
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(w, "Loaded %d venues from cache %s\n", len(index), cfg.Cache.DBPath)
		return index, nil
	}

	index, err := checkins.Build(cfg.Index, w)
	if err != nil {
		return nil, err
	}
	if _, err := store.Ingest(index); err != nil {
		return nil, err
	}
	return index, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
