package cli

import (
	"path/filepath"

	"github.com/ehrlich-b/cubesolver/internal/coordinate"
	"github.com/ehrlich-b/cubesolver/internal/heuristic"
	"github.com/ehrlich-b/cubesolver/internal/pruning"
)

// tableDir is where generated pruning tables are cached between runs.
// Overridable with --tables for testing against a scratch directory.
var tableDir = "."

func cornerTablePath() string { return filepath.Join(tableDir, "corner_pruning_table.bin") }
func eoTablePath() string     { return filepath.Join(tableDir, "eo_pruning_table.bin") }

// loadHeuristic loads (or generates and caches) the corner and edge
// orientation pruning tables and combines them into one admissible
// heuristic.
func loadHeuristic() (heuristic.Heuristic, error) {
	corners, err := pruning.LoadOrGenerate(cornerTablePath(), coordinate.Corners{})
	if err != nil {
		return nil, err
	}
	eo, err := pruning.LoadOrGenerate(eoTablePath(), coordinate.EO{})
	if err != nil {
		return nil, err
	}
	return heuristic.Max(corners, eo), nil
}
