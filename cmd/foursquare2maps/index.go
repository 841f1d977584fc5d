// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/foursquare2maps/internal/checkins"
	"github.com/pdiddy/foursquare2maps/internal/venuedb"
	"github.com/pdiddy/foursquare2maps/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the venue location index from check-in files",
	Long: `Index scans the numbered check-in files and reports how many venues
resolved to coordinates, without converting any lists. Use --db to persist
the index into a SQLite cache that later convert runs can read, or --json
to dump the full index to stdout.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().String("input-dir", ".", "directory holding the Foursquare export files")
	indexCmd.Flags().Int("checkin-files", types.DefaultCheckinFiles, "number of numbered check-in files to scan")
	indexCmd.Flags().String("db", "", "SQLite cache path to persist the index into")
	indexCmd.Flags().Bool("json", false, "dump the index as JSON to stdout")

	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg := types.IndexConfig{
		InputDir:     stringSetting(cmd, "input-dir", "index.input_dir"),
		CheckinFiles: intSetting(cmd, "checkin-files", "index.checkin_files"),
	}

	index, err := checkins.Build(cfg, os.Stderr)
	if err != nil {
		return err
	}

	if dbPath := stringSetting(cmd, "db", "cache.db_path"); dbPath != "" {
		store, err := venuedb.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		inserted, err := store.Ingest(index)
		if err != nil {
			return err
		}
		total, err := store.Count()
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Cached %d new venues in %s (%d total)\n", inserted, dbPath, total)
	}

	if boolSetting(cmd, "json", "index.json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(index)
	}
	return nil
}
