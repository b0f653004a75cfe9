// Package cube implements the cubie-level state algebra for a 3x3x3 Rubik's
// cube: the Cube value type, the 18-move face-turn set, and composition.
package cube

import "fmt"

// Cube is the state of a 3x3x3 cube as four fixed-width cubie arrays.
//
// ep[i] is the edge slot that the edge now at position i originated from;
// eo[i] is that edge's orientation flag. cp[i]/co[i] are the corresponding
// corner origin/orientation. All four arrays are permutations/flags over a
// fixed cubie numbering (see the package doc on Move for the numbering).
type Cube struct {
	ep [12]uint8
	eo [12]uint8
	cp [8]uint8
	co [8]uint8
}

// Solved is the identity element of the move monoid.
var Solved = Cube{
	ep: [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	cp: [8]uint8{0, 1, 2, 3, 4, 5, 6, 7},
}

// Superflip is the state where every edge is flipped in place and every
// piece sits in its solved position. It is 20 moves from solved — the
// god's number for the half-turn metric.
var Superflip = Cube{
	ep: [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	eo: [12]uint8{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	cp: [8]uint8{0, 1, 2, 3, 4, 5, 6, 7},
}

// Compose returns a ∘ b: apply a first, then b.
func Compose(a, b Cube) Cube {
	var c Cube
	for i := range c.ep {
		c.ep[i] = a.ep[b.ep[i]]
		c.eo[i] = (a.eo[b.ep[i]] + b.eo[i]) % 2
	}
	for i := range c.cp {
		c.cp[i] = a.cp[b.cp[i]]
		c.co[i] = (a.co[b.cp[i]] + b.co[i]) % 3
	}
	return c
}

// Equal reports whether a and b are structurally identical.
func (a Cube) Equal(b Cube) bool {
	return a.ep == b.ep && a.eo == b.eo && a.cp == b.cp && a.co == b.co
}

// IsSolved reports whether the cube equals Solved.
func (a Cube) IsSolved() bool {
	return a.Equal(Solved)
}

// EP, EO, CP, CO expose the raw cubie arrays to the coordinate layer.
func (a Cube) EP() [12]uint8 { return a.ep }
func (a Cube) EO() [12]uint8 { return a.eo }
func (a Cube) CP() [8]uint8  { return a.cp }
func (a Cube) CO() [8]uint8  { return a.co }

// New constructs a Cube from raw cubie arrays and validates its invariants.
// It panics if the arrays don't describe a reachable cube state — this is a
// programmer error (a corrupted coordinate table or a logic bug), not a
// recoverable condition.
func New(ep, eo [12]uint8, cp, co [8]uint8) Cube {
	c := Cube{ep: ep, eo: eo, cp: cp, co: co}
	c.mustBeValid()
	return c
}

// Raw constructs a Cube from cubie arrays without validating invariants.
// Coordinate implementations use this: a coordinate's FromCoord produces a
// state that is solved outside the dimensions it observes, which need not
// satisfy the whole-cube reachability invariants New enforces (e.g. a lone
// CornerPermutation coordinate can legitimately represent an odd corner
// permutation with identity edges). Compose doesn't depend on those
// invariants either way, so these states compose correctly with moves.
func Raw(ep, eo [12]uint8, cp, co [8]uint8) Cube {
	return Cube{ep: ep, eo: eo, cp: cp, co: co}
}

// mustBeValid asserts the structural invariants of a legal cube state:
// ep/cp are permutations, eo sums to 0 mod 2, co sums to 0 mod 3, and ep/cp
// share the same permutation parity. Panics on violation.
func (c Cube) mustBeValid() {
	var seenEdge [12]bool
	eoSum := 0
	for i, e := range c.ep {
		if e >= 12 {
			panic(fmt.Sprintf("cube: ep[%d]=%d out of range", i, e))
		}
		if seenEdge[e] {
			panic(fmt.Sprintf("cube: ep is not a permutation, duplicate %d", e))
		}
		seenEdge[e] = true
		if c.eo[i] >= 2 {
			panic(fmt.Sprintf("cube: eo[%d]=%d out of range", i, c.eo[i]))
		}
		eoSum += int(c.eo[i])
	}
	if eoSum%2 != 0 {
		panic(fmt.Sprintf("cube: edge orientation parity violated, sum=%d", eoSum))
	}

	var seenCorner [8]bool
	coSum := 0
	for i, cp := range c.cp {
		if cp >= 8 {
			panic(fmt.Sprintf("cube: cp[%d]=%d out of range", i, cp))
		}
		if seenCorner[cp] {
			panic(fmt.Sprintf("cube: cp is not a permutation, duplicate %d", cp))
		}
		seenCorner[cp] = true
		if c.co[i] >= 3 {
			panic(fmt.Sprintf("cube: co[%d]=%d out of range", i, c.co[i]))
		}
		coSum += int(c.co[i])
	}
	if coSum%3 != 0 {
		panic(fmt.Sprintf("cube: corner orientation parity violated, sum=%d", coSum))
	}

	if permParity(c.ep[:]) != permParity(c.cp[:]) {
		panic("cube: edge and corner permutation parities disagree")
	}
}

// permParity returns 0 (even) or 1 (odd) for a permutation given as a slice
// of distinct values, counted by inversions.
func permParity(p []uint8) int {
	inversions := 0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				inversions++
			}
		}
	}
	return inversions % 2
}

func (c Cube) String() string {
	return fmt.Sprintf("Cube{ep:%v eo:%v cp:%v co:%v}", c.ep, c.eo, c.cp, c.co)
}
