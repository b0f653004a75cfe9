package coordinate

import "github.com/ehrlich-b/cubesolver/internal/cube"

// permRank computes the Lehmer-code rank of vals (distinct uint8s, in the
// order they appear) within the space of all orderings of that same value
// set. Shared by CornerPermutation and the partial edge coordinates below.
func permRank(vals []uint8) int {
	k := len(vals)
	x := 0
	for i := k - 1; i >= 1; i-- {
		s := 0
		for j := i - 1; j >= 0; j-- {
			if vals[j] > vals[i] {
				s++
			}
		}
		x = (x + s) * i
	}
	return x
}

// permUnrank is the inverse of permRank: given a rank and the sorted set of
// values being permuted, reconstructs the ordered value sequence.
func permUnrank(rank, k int, sortedVals []uint8) []uint8 {
	lehmer := make([]int, k)
	n := rank
	for i := k - 1; i >= 1; i-- {
		lehmer[i] = n / factorial(i)
		n %= factorial(i)
	}
	remaining := append([]uint8(nil), sortedVals...)
	out := make([]uint8, k)
	for i := k - 1; i >= 0; i-- {
		idx := i - lehmer[i]
		out[i] = remaining[idx]
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return out
}

// combRank ranks a sorted ascending k-subset of {0,...,n-1} in colexicographic
// order.
func combRank(sorted []int) int {
	c := 0
	for i, v := range sorted {
		c += choose(v, i+1)
	}
	return c
}

// combUnrank is the inverse of combRank: decodes a colex index into the
// sorted k-subset it names, using greatestCombination at each digit.
func combUnrank(index, k int) []int {
	out := make([]int, k)
	remaining := index
	for i := k; i >= 1; i-- {
		x, c := greatestCombination(remaining, i)
		out[i-1] = x
		remaining -= c
	}
	return out
}

// PartialEdgeOrientation observes eo over the position window [Low, High).
// Go has no const generics over integer ranges, so Low/High are runtime
// fields rather than compile-time parameters.
type PartialEdgeOrientation struct {
	Low, High int
}

func (p PartialEdgeOrientation) Max() int { return 1 << (p.High - p.Low) }

func (p PartialEdgeOrientation) ToCoord(c cube.Cube) int {
	eo := c.EO()
	x := 0
	for i := p.Low; i < p.High; i++ {
		x = 2*x + int(eo[i])
	}
	return x
}

func (p PartialEdgeOrientation) FromCoord(coord int) cube.Cube {
	eo := cube.Solved.EO()
	n := coord
	for i := p.High - 1; i >= p.Low; i-- {
		eo[i] = uint8(n % 2)
		n /= 2
	}
	return cube.Raw(cube.Solved.EP(), eo, cube.Solved.CP(), cube.Solved.CO())
}

func (p PartialEdgeOrientation) Dims() []Dim {
	return []Dim{{Field: "eo", Low: p.Low, High: p.High}}
}

// PartialEdgePermutation observes, for the position window [Low, High),
// which edge identities currently occupy those positions and in what
// relative order.
type PartialEdgePermutation struct {
	Low, High int
}

func (p PartialEdgePermutation) k() int { return p.High - p.Low }

func (p PartialEdgePermutation) Max() int {
	k := p.k()
	return factorial(k) * choose(12, k)
}

func (p PartialEdgePermutation) ToCoord(c cube.Cube) int {
	k := p.k()
	ep := c.EP()
	vals := append([]uint8(nil), ep[p.Low:p.High]...)

	sorted := append([]uint8(nil), vals...)
	for i := 1; i < k; i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	ints := make([]int, k)
	for i, v := range sorted {
		ints[i] = int(v)
	}

	return permRank(vals)*choose(12, k) + combRank(ints)
}

func (p PartialEdgePermutation) FromCoord(coord int) cube.Cube {
	k := p.k()
	max := choose(12, k)
	permIndex := coord / max
	combIndex := coord % max

	ints := combUnrank(combIndex, k)
	sorted := make([]uint8, k)
	for i, v := range ints {
		sorted[i] = uint8(v)
	}
	vals := permUnrank(permIndex, k, sorted)

	ep := cube.Solved.EP()
	for i, v := range vals {
		ep[p.Low+i] = v
	}
	return cube.Raw(ep, cube.Solved.EO(), cube.Solved.CP(), cube.Solved.CO())
}

func (p PartialEdgePermutation) Dims() []Dim {
	return []Dim{{Field: "ep", Low: p.Low, High: p.High}}
}

// PartialEdges observes, for the edge identities in [Low, High) (selected by
// identity, not position), where those edges currently sit and what their
// orientation is. It mixes an EO read indexed by position with an EP read
// indexed by identity, so it is implemented as its own coordinate rather
// than a product of PartialEdgeOrientation and PartialEdgePermutation — see
// DESIGN.md.
type PartialEdges struct {
	Low, High int
}

func (p PartialEdges) k() int { return p.High - p.Low }

func (p PartialEdges) Max() int {
	k := p.k()
	return factorial(k) * choose(12, k) * (1 << k)
}

func (p PartialEdges) ToCoord(c cube.Cube) int {
	k := p.k()
	ep, eo := c.EP(), c.EO()

	positions := make([]uint8, k)
	for i := 0; i < 12; i++ {
		id := int(ep[i])
		if id >= p.Low && id < p.High {
			positions[id-p.Low] = uint8(i)
		}
	}

	sorted := append([]uint8(nil), positions...)
	for i := 1; i < k; i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	ints := make([]int, k)
	for i, v := range sorted {
		ints[i] = int(v)
	}

	eoCoord := 0
	for _, pos := range positions {
		eoCoord = 2*eoCoord + int(eo[pos])
	}

	permSize := factorial(k) * choose(12, k)
	epCoord := permRank(positions)*choose(12, k) + combRank(ints)
	return eoCoord*permSize + epCoord
}

func (p PartialEdges) FromCoord(coord int) cube.Cube {
	k := p.k()
	permSize := factorial(k) * choose(12, k)
	eoCoord := coord / permSize
	epCoord := coord % permSize

	max := choose(12, k)
	permIndex := epCoord / max
	combIndex := epCoord % max

	ints := combUnrank(combIndex, k)
	sortedPos := make([]uint8, k)
	for i, v := range ints {
		sortedPos[i] = uint8(v)
	}
	positions := permUnrank(permIndex, k, sortedPos)

	eoBits := make([]int, k)
	n := eoCoord
	for i := k - 1; i >= 0; i-- {
		eoBits[i] = n % 2
		n /= 2
	}

	used := make([]bool, 12)
	ep := make([]uint8, 12)
	eo := make([]uint8, 12)
	for j, pos := range positions {
		ep[pos] = uint8(p.Low + j)
		eo[pos] = uint8(eoBits[j])
		used[pos] = true
	}

	var filler []uint8
	for id := 0; id < 12; id++ {
		if id < p.Low || id >= p.High {
			filler = append(filler, uint8(id))
		}
	}
	fi := 0
	for i := 0; i < 12; i++ {
		if !used[i] {
			ep[i] = filler[fi]
			fi++
		}
	}

	var epArr, eoArr [12]uint8
	copy(epArr[:], ep)
	copy(eoArr[:], eo)
	return cube.Raw(epArr, eoArr, cube.Solved.CP(), cube.Solved.CO())
}

func (p PartialEdges) Dims() []Dim {
	return []Dim{
		{Field: "ep", Low: p.Low, High: p.High},
		{Field: "eo", Low: p.Low, High: p.High},
	}
}
