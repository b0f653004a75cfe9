// Package coordinate implements the coordinate layer: bijections between
// subsets of a Cube's state (closed under the move monoid) and dense
// integer ranges, used to index pruning tables.
//
// Go has no const generics over integer ranges, so the partial-window
// coordinates (PartialEdgeOrientation, PartialEdgePermutation,
// PartialEdges) carry their Low/High bounds as runtime struct fields
// instead of compile-time constants; dispatch is through the Coordinate
// interface rather than monomorphization.
package coordinate

import "github.com/ehrlich-b/cubesolver/internal/cube"

// Coordinate maps the subset of cube state it observes to a dense integer
// in [0, Max()) and back. ToCoord(FromCoord(i)) == i for every valid i;
// FromCoord(ToCoord(s)) equals s restricted to the observed dimensions.
type Coordinate interface {
	// Max is the size of the coordinate's range.
	Max() int
	// ToCoord encodes the observed dimensions of c as a value in [0, Max()).
	ToCoord(c cube.Cube) int
	// FromCoord decodes coord into a Cube that is solved outside the
	// dimensions this coordinate observes.
	FromCoord(coord int) cube.Cube
}
