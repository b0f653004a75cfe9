// Package heuristic implements admissible lower-bound estimators for IDA*,
// and combinators for taking the max of several of them (still admissible,
// tighter than any one alone).
package heuristic

import "github.com/ehrlich-b/cubesolver/internal/cube"

// Heuristic estimates a lower bound on the number of moves remaining to
// solve c. It must never overestimate, or IDA* can miss the optimal path.
type Heuristic interface {
	LowerBound(c cube.Cube) int
}

// Func adapts a plain function to the Heuristic interface.
type Func func(c cube.Cube) int

func (f Func) LowerBound(c cube.Cube) int { return f(c) }

// Zero is the trivial admissible heuristic: IDA* degenerates to plain
// iterative-deepening DFS under it.
var Zero Heuristic = Func(func(cube.Cube) int { return 0 })

// EO is a cheap bootstrap heuristic: (sum of eo) % 4. The number of
// misoriented edges is always even, so this is 0 or 2, and every state within
// one move of solved has 0 or 4 edges misoriented — a result of 2 therefore
// never exceeds the true distance, making it a valid (if loose) lower bound.
var EO Heuristic = Func(func(c cube.Cube) int {
	sum := 0
	for _, e := range c.EO() {
		sum += int(e)
	}
	return sum % 4
})

// Max combines any number of admissible heuristics into their pointwise
// maximum, still admissible.
func Max(hs ...Heuristic) Heuristic {
	return Func(func(c cube.Cube) int {
		best := 0
		for _, h := range hs {
			if v := h.LowerBound(c); v > best {
				best = v
			}
		}
		return best
	})
}
