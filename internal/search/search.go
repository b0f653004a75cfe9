// Package search implements IDA* over the cube's move monoid: iterative
// deepening depth-first search with a heuristic lower-bound cutoff.
package search

import (
	"log"
	"time"

	"github.com/ehrlich-b/cubesolver/internal/cube"
	"github.com/ehrlich-b/cubesolver/internal/heuristic"
)

// nodeCounts tracks branch nodes (internal, still under max depth) and leaf
// nodes (depth == maxDepth), for the per-depth instrumentation line.
type nodeCounts struct {
	branches uint64
	leaves   uint64
}

// Solve finds an optimal (shortest half-turn-metric) solution to initial, up
// to maxDepth moves, using h to prune the search. It returns nil if no
// solution exists within maxDepth.
func Solve(initial cube.Cube, maxDepth int, h heuristic.Heuristic) []cube.Move {
	for depth := 0; depth <= maxDepth; depth++ {
		log.Printf("search: starting depth %d", depth)
		start := time.Now()
		var nodes nodeCounts

		path := solveDFS(0, nil, depth, initial, &nodes, h)

		elapsed := time.Since(start)
		total := nodes.branches + nodes.leaves
		rate := float64(total) / elapsed.Seconds() / 1_000_000
		branching := 0.0
		if nodes.branches != 0 {
			branching = float64(total-1) / float64(nodes.branches)
		}
		log.Printf("search: searched %d nodes in %s at %.2fM nodes/s, branching factor: %.2f",
			total, elapsed, rate, branching)

		if path != nil {
			return path
		}
	}
	return nil
}

// solveDFS explores one depth-bound slice of the search tree. path is reused
// (appended and trimmed) across sibling calls rather than cloned per call.
func solveDFS(depth int, path []cube.Move, maxDepth int, puzzle cube.Cube, nodes *nodeCounts, h heuristic.Heuristic) []cube.Move {
	if depth >= maxDepth {
		nodes.leaves++
		if puzzle.IsSolved() {
			out := make([]cube.Move, len(path))
			copy(out, path)
			return out
		}
		return nil
	}
	if depth+h.LowerBound(puzzle) > maxDepth {
		return nil
	}

	nodes.branches++

	for _, m := range cube.ALL {
		if len(path) >= 1 && cube.Redundant(path[len(path)-1], m) {
			continue
		}
		path = append(path, m)
		if result := solveDFS(depth+1, path, maxDepth, puzzle.Apply(m), nodes, h); result != nil {
			return result
		}
		path = path[:len(path)-1]
	}
	return nil
}
