package pruning

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ehrlich-b/cubesolver/internal/coordinate"
	"github.com/ehrlich-b/cubesolver/internal/cube"
)

func TestGenerateSolvedIsZero(t *testing.T) {
	table := Generate(coordinate.EO{})
	if table.dist[0] != 0 {
		t.Errorf("dist[0] = %d, want 0", table.dist[0])
	}
	if table.LowerBound(cube.Solved) != 0 {
		t.Errorf("LowerBound(Solved) = %d, want 0", table.LowerBound(cube.Solved))
	}
}

func TestGenerateFillsEveryEntry(t *testing.T) {
	coord := coordinate.EO{}
	table := Generate(coord)
	for i := 0; i < coord.Max(); i++ {
		if i == 0 {
			continue
		}
		if table.dist[i] == 0 {
			t.Fatalf("coordinate %d unreached after BFS", i)
		}
	}
}

func TestGenerateEveryNonzeroEntryHasAOneMoveCloserNeighbor(t *testing.T) {
	coord := coordinate.EO{}
	table := Generate(coord)
	for i := 0; i < coord.Max(); i++ {
		d := table.dist[i]
		if d == 0 {
			continue
		}
		state := coord.FromCoord(i)
		found := false
		for _, m := range cube.ALL {
			next := coord.ToCoord(state.Apply(m))
			if table.dist[next] == d-1 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("coordinate %d at distance %d has no neighbor at distance %d", i, d, d-1)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	coord := coordinate.EO{}
	table := Generate(coord)

	dir := t.TempDir()
	path := filepath.Join(dir, "eo.bin")
	if err := table.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path, coord)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i := 0; i < coord.Max(); i++ {
		if loaded.dist[i] != table.dist[i] {
			t.Fatalf("dist[%d] = %d, want %d", i, loaded.dist[i], table.dist[i])
		}
	}
}

func TestLoadRejectsWrongLength(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.bin")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path, coordinate.EO{}); err == nil {
		t.Fatal("expected error loading a table of the wrong length")
	}
}

func TestLoadOrGenerateGeneratesThenCaches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eo.bin")
	coord := coordinate.EO{}

	if _, err := os.Stat(path); err == nil {
		t.Fatal("table file should not exist yet")
	}
	first, err := LoadOrGenerate(path, coord)
	if err != nil {
		t.Fatalf("LoadOrGenerate (generate): %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected table file to be written: %v", err)
	}

	second, err := LoadOrGenerate(path, coord)
	if err != nil {
		t.Fatalf("LoadOrGenerate (load): %v", err)
	}
	for i := 0; i < coord.Max(); i++ {
		if first.dist[i] != second.dist[i] {
			t.Fatalf("cached table disagrees at %d: %d vs %d", i, first.dist[i], second.dist[i])
		}
	}
}
