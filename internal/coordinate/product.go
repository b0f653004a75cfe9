package coordinate

import "github.com/ehrlich-b/cubesolver/internal/cube"

// Dim names one of the four cubie arrays a coordinate reads from, plus the
// index window within it (for whole-array coordinates Low=0 and High is the
// array's length). Product uses this to reject diagonal products — two
// coordinates that observe overlapping state.
type Dim struct {
	Field string // "ep", "eo", "cp", or "co"
	Low   int
	High  int
}

func overlaps(a, b Dim) bool {
	return a.Field == b.Field && a.Low < b.High && b.Low < a.High
}

// dimensioned is implemented by every Coordinate in this package so Product
// can verify disjointness at construction.
type dimensioned interface {
	Dims() []Dim
}

// Product composes two coordinates that observe disjoint dimensions into
// one dense coordinate over both: to_coord = A.ToCoord*B.Max + B.ToCoord.
type Product struct {
	A, B Coordinate
}

// NewProduct builds the product of a and b, panicking if they observe
// overlapping dimensions — a diagonal product is nonsensical, since ToCoord
// would silently discard one side's reading of the shared state.
func NewProduct(a, b Coordinate) Product {
	da, aok := a.(dimensioned)
	db, bok := b.(dimensioned)
	if aok && bok {
		for _, x := range da.Dims() {
			for _, y := range db.Dims() {
				if overlaps(x, y) {
					panic("coordinate: diagonal product, A and B observe overlapping state")
				}
			}
		}
	}
	return Product{A: a, B: b}
}

func (p Product) Max() int { return p.A.Max() * p.B.Max() }

func (p Product) ToCoord(c cube.Cube) int {
	return p.A.ToCoord(c)*p.B.Max() + p.B.ToCoord(c)
}

func (p Product) FromCoord(coord int) cube.Cube {
	a := p.A.FromCoord(coord / p.B.Max())
	b := p.B.FromCoord(coord % p.B.Max())
	return merge(a, b)
}

func (p Product) Dims() []Dim {
	var dims []Dim
	if da, ok := p.A.(dimensioned); ok {
		dims = append(dims, da.Dims()...)
	}
	if db, ok := p.B.(dimensioned); ok {
		dims = append(dims, db.Dims()...)
	}
	return dims
}

// merge combines two states that each observe disjoint dimensions (with the
// rest solved) into one state carrying both sets of non-solved dimensions.
// Since each input is solved outside what it observes, an element-wise "non
// default wins" merge per array is exactly the union.
func merge(a, b cube.Cube) cube.Cube {
	ep, eo := mergePerm(a.EP(), b.EP()), mergeOrient12(a.EO(), b.EO())
	cp, co := mergePermCorner(a.CP(), b.CP()), mergeOrient8(a.CO(), b.CO())
	return cube.Raw(ep, eo, cp, co)
}

func mergePerm(a, b [12]uint8) [12]uint8 {
	solved := cube.Solved.EP()
	out := a
	for i := range out {
		if a[i] == solved[i] && b[i] != solved[i] {
			out[i] = b[i]
		}
	}
	return out
}

func mergePermCorner(a, b [8]uint8) [8]uint8 {
	solved := cube.Solved.CP()
	out := a
	for i := range out {
		if a[i] == solved[i] && b[i] != solved[i] {
			out[i] = b[i]
		}
	}
	return out
}

func mergeOrient12(a, b [12]uint8) [12]uint8 {
	out := a
	for i := range out {
		if out[i] == 0 && b[i] != 0 {
			out[i] = b[i]
		}
	}
	return out
}

func mergeOrient8(a, b [8]uint8) [8]uint8 {
	out := a
	for i := range out {
		if out[i] == 0 && b[i] != 0 {
			out[i] = b[i]
		}
	}
	return out
}
