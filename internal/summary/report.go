// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summary

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/foursquare2maps/pkg/types"
)

// Report is the on-disk YAML form of a conversion run. It carries the same
// numbers as the text summary in a shape other tooling can consume.
type Report struct {
	Totals    ReportTotals       `yaml:"totals"`
	Lists     []types.ListResult `yaml:"lists"`
	Timestamp time.Time          `yaml:"timestamp"`
}

// ReportTotals stores the aggregate counts for the run.
type ReportTotals struct {
	Lists         int `yaml:"lists"`
	Places        int `yaml:"places"`
	WithCoords    int `yaml:"with_coords"`
	WithoutCoords int `yaml:"without_coords"`
}

// WriteReport saves the YAML run report to cfg.OutputDir. Lists are sorted
// by name, matching the text summary.
func WriteReport(results []types.ListResult, cfg types.SummaryConfig) error {
	totals := types.Aggregate(results)

	sorted := make([]types.ListResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	report := Report{
		Totals: ReportTotals{
			Lists:         totals.Lists,
			Places:        totals.Places,
			WithCoords:    totals.WithCoords,
			WithoutCoords: totals.WithoutCoords,
		},
		Lists:     sorted,
		Timestamp: time.Now(),
	}

	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("marshaling run report: %w", err)
	}
	return os.WriteFile(filepath.Join(cfg.OutputDir, YAMLFilename), data, 0o644)
}

// ReadReport loads a previously written run report.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing run report: %w", err)
	}
	return &r, nil
}
