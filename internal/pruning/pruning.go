// Package pruning builds and persists admissible lower-bound tables indexed
// by a coordinate.Coordinate, via breadth-first exploration from the solved
// state.
package pruning

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ehrlich-b/cubesolver/internal/coordinate"
	"github.com/ehrlich-b/cubesolver/internal/cube"
)

// maxPruningDepth bounds the BFS as a safety backstop against a
// mis-implemented coordinate whose move graph never fills — the real
// coordinates in this package never get close to it (20 is the cube's
// god's number in the half-turn metric).
const maxPruningDepth = 20

// Table holds one byte of exact BFS distance per coordinate value. A zero
// entry means "solved" (distance 0) for coordinate 0, and "unreached yet"
// during generation — which is why generation seeds coordinate 0 first and
// never revisits a filled slot.
type Table struct {
	coord coordinate.Coordinate
	dist  []byte
}

// Generate runs a breadth-first search outward from the solved state over
// coord's range, recording the exact move-count distance to solved for every
// reachable value. Coordinates in this package are always closed under the
// move monoid, so every value ends up reached.
func Generate(coord coordinate.Coordinate) *Table {
	log.Printf("pruning: generating table, %d entries", coord.Max())
	start := time.Now()

	dist := make([]byte, coord.Max())
	frontier := []int{0}
	filled := 1

	for depth := byte(1); len(frontier) > 0; depth++ {
		if depth > maxPruningDepth {
			panic(fmt.Sprintf("pruning: exceeded safety depth %d, coordinate BFS did not converge", maxPruningDepth))
		}
		var next []int
		for _, idx := range frontier {
			state := coord.FromCoord(idx)
			for _, m := range cube.ALL {
				newState := state.Apply(m)
				newIdx := coord.ToCoord(newState)
				if newIdx == 0 {
					continue
				}
				if dist[newIdx] == 0 {
					dist[newIdx] = depth
					filled++
					next = append(next, newIdx)
				}
			}
		}
		log.Printf("pruning: depth %d, %d/%d filled", depth, filled, coord.Max())
		frontier = next
		if filled >= coord.Max() {
			break
		}
	}

	log.Printf("pruning: table generated in %s", time.Since(start))
	return &Table{coord: coord, dist: dist}
}

// LowerBound returns the exact remaining distance for the coordinate's
// reading of c — an admissible lower bound on the number of moves to solve
// c, and satisfies heuristic.Heuristic by duck typing.
func (t *Table) LowerBound(c cube.Cube) int {
	return int(t.dist[t.coord.ToCoord(c)])
}

// Save writes the table as a raw byte array with no header — length ==
// coord.Max() fully determines it.
func (t *Table) Save(path string) error {
	return os.WriteFile(path, t.dist, 0o644)
}

// Load reads a table previously written by Save. It returns an error if the
// file's length doesn't match coord's range, since the byte array carries
// no self-describing header to validate against.
func Load(path string, coord coordinate.Coordinate) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) != coord.Max() {
		return nil, fmt.Errorf("pruning: %s has %d bytes, want %d", path, len(data), coord.Max())
	}
	return &Table{coord: coord, dist: data}, nil
}

// LoadOrGenerate loads the table at path, regenerating and writing it back
// if the file is missing or doesn't match coord's range.
func LoadOrGenerate(path string, coord coordinate.Coordinate) (*Table, error) {
	t, err := Load(path, coord)
	if err == nil {
		return t, nil
	}
	log.Printf("pruning: %s unavailable (%v), regenerating", path, err)
	t = Generate(coord)
	if err := t.Save(path); err != nil {
		return nil, fmt.Errorf("pruning: generated table but failed to save %s: %w", path, err)
	}
	return t, nil
}
