package cube

// Move is one of the 18 quarter/half-turn face moves. The cubie numbering
// used throughout this package is the standard one: corners URF=0, UFL=1,
// ULB=2, UBR=3, DFR=4, DLF=5, DBL=6, DRB=7; edges UR=0, UF=1, UL=2, UB=3,
// DR=4, DF=5, DL=6, DB=7, FR=8, FL=9, BL=10, BR=11.
type Move uint8

const (
	U Move = iota
	U2
	UPrime
	D
	D2
	DPrime
	L
	L2
	LPrime
	R
	R2
	RPrime
	F
	F2
	FPrime
	B
	B2
	BPrime
)

// Face identifies one of the six faces a move turns.
type Face uint8

const (
	FaceU Face = iota
	FaceD
	FaceL
	FaceR
	FaceF
	FaceB
)

// ALL enumerates the 18 moves in a fixed, stable order. Pruning-table
// generation and search iterate moves in this order so pruning tables and
// search results are deterministic.
var ALL = [18]Move{
	U, U2, UPrime,
	D, D2, DPrime,
	L, L2, LPrime,
	R, R2, RPrime,
	F, F2, FPrime,
	B, B2, BPrime,
}

var moveLabels = [18]string{
	"U", "U2", "U'",
	"D", "D2", "D'",
	"L", "L2", "L'",
	"R", "R2", "R'",
	"F", "F2", "F'",
	"B", "B2", "B'",
}

// String returns the canonical Singmaster label for m.
func (m Move) String() string {
	return moveLabels[m]
}

var moveFaces = [18]Face{
	FaceU, FaceU, FaceU,
	FaceD, FaceD, FaceD,
	FaceL, FaceL, FaceL,
	FaceR, FaceR, FaceR,
	FaceF, FaceF, FaceF,
	FaceB, FaceB, FaceB,
}

// Face returns the face m turns.
func (m Move) Face() Face {
	return moveFaces[m]
}

// Redundant reports whether next is redundant immediately after prev on a
// search path: true iff they share a face. Two consecutive same-face turns
// always collapse to zero or one turn of that face, so a shorter solution
// always exists and no reachable solution is lost by skipping next.
func Redundant(prev, next Move) bool {
	return prev.Face() == next.Face()
}

// quarter-turn cube constants, one per face, in the standard cubie numbering
// documented on Move. Cross-checked against the R U2 F L B and superflip
// fixtures in cube_test.go.
var quarterTurn = [6]Cube{
	FaceU: {
		ep: [12]uint8{3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11},
		cp: [8]uint8{3, 0, 1, 2, 4, 5, 6, 7},
	},
	FaceD: {
		ep: [12]uint8{0, 1, 2, 3, 5, 6, 7, 4, 8, 9, 10, 11},
		cp: [8]uint8{0, 1, 2, 3, 5, 6, 7, 4},
	},
	FaceL: {
		ep: [12]uint8{0, 1, 10, 3, 4, 5, 9, 7, 8, 2, 6, 11},
		cp: [8]uint8{0, 2, 6, 3, 4, 1, 5, 7},
		co: [8]uint8{0, 1, 2, 0, 0, 2, 1, 0},
	},
	FaceR: {
		ep: [12]uint8{8, 1, 2, 3, 11, 5, 6, 7, 4, 9, 10, 0},
		cp: [8]uint8{4, 1, 2, 0, 7, 5, 6, 3},
		co: [8]uint8{2, 0, 0, 1, 1, 0, 0, 2},
	},
	FaceF: {
		ep: [12]uint8{0, 9, 2, 3, 4, 8, 6, 7, 1, 5, 10, 11},
		eo: [12]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
		cp: [8]uint8{1, 5, 2, 3, 0, 4, 6, 7},
		co: [8]uint8{1, 2, 0, 0, 2, 1, 0, 0},
	},
	FaceB: {
		ep: [12]uint8{0, 1, 2, 11, 4, 5, 6, 10, 8, 9, 3, 7},
		eo: [12]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
		cp: [8]uint8{0, 1, 3, 7, 4, 5, 2, 6},
		co: [8]uint8{0, 0, 1, 2, 0, 0, 2, 1},
	},
}

var moveCube [18]Cube

func init() {
	for _, face := range []Face{FaceU, FaceD, FaceL, FaceR, FaceF, FaceB} {
		base := quarterTurn[face]
		double := Compose(base, base)
		triple := Compose(double, base)
		var q, h, t Move
		switch face {
		case FaceU:
			q, h, t = U, U2, UPrime
		case FaceD:
			q, h, t = D, D2, DPrime
		case FaceL:
			q, h, t = L, L2, LPrime
		case FaceR:
			q, h, t = R, R2, RPrime
		case FaceF:
			q, h, t = F, F2, FPrime
		case FaceB:
			q, h, t = B, B2, BPrime
		}
		moveCube[q] = base
		moveCube[h] = double
		moveCube[t] = triple
	}
}

// ToCube returns the Cube constant representing m's action on Solved.
func (m Move) ToCube() Cube {
	return moveCube[m]
}

// Apply returns c ∘ m.ToCube(): c with move m turned next.
func (c Cube) Apply(m Move) Cube {
	return Compose(c, m.ToCube())
}

// ApplyAll returns c with each move in moves applied in order.
func (c Cube) ApplyAll(moves []Move) Cube {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}
