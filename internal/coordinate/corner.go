package coordinate

import "github.com/ehrlich-b/cubesolver/internal/cube"

// CornerOrientation observes co as a base-3 number over its first 7 entries
// (the 8th is determined by the mod-3 invariant).
type CornerOrientation struct{}

func (CornerOrientation) Max() int { return 2187 } // 3^7

func (CornerOrientation) ToCoord(c cube.Cube) int {
	co := c.CO()
	x := 0
	for i := 0; i < 7; i++ {
		x = 3*x + int(co[i])
	}
	return x
}

func (CornerOrientation) FromCoord(coord int) cube.Cube {
	var co [8]uint8
	n := coord
	sum := 0
	for i := 6; i >= 0; i-- {
		co[i] = uint8(n % 3)
		n /= 3
		sum += int(co[i])
	}
	co[7] = uint8((3 - sum%3) % 3)
	return cube.Raw(cube.Solved.EP(), cube.Solved.EO(), cube.Solved.CP(), co)
}

// CornerPermutation observes cp via its Lehmer-code rank.
type CornerPermutation struct{}

func (CornerPermutation) Max() int { return 40320 } // 8!

func (CornerPermutation) ToCoord(c cube.Cube) int {
	cp := c.CP()
	return permRank(cp[:])
}

func (CornerPermutation) FromCoord(coord int) cube.Cube {
	vals := permUnrank(coord, 8, []uint8{0, 1, 2, 3, 4, 5, 6, 7})
	var cp [8]uint8
	copy(cp[:], vals)
	return cube.Raw(cube.Solved.EP(), cube.Solved.EO(), cp, cube.Solved.CO())
}

func (CornerOrientation) Dims() []Dim { return []Dim{{Field: "co", Low: 0, High: 8}} }
func (CornerPermutation) Dims() []Dim { return []Dim{{Field: "cp", Low: 0, High: 8}} }

// Corners is the product (CornerOrientation, CornerPermutation): the
// strongest coordinate from the two corner dimensions, used as the corner
// pruning table's index.
type Corners struct{}

func (Corners) Max() int { return CornerOrientation{}.Max() * CornerPermutation{}.Max() }

func (Corners) ToCoord(c cube.Cube) int {
	return CornerOrientation{}.ToCoord(c)*CornerPermutation{}.Max() + CornerPermutation{}.ToCoord(c)
}

func (Corners) FromCoord(coord int) cube.Cube {
	coMax := CornerPermutation{}.Max()
	orientation := CornerOrientation{}.FromCoord(coord / coMax)
	permutation := CornerPermutation{}.FromCoord(coord % coMax)
	return cube.Raw(cube.Solved.EP(), cube.Solved.EO(), permutation.CP(), orientation.CO())
}

func (Corners) Dims() []Dim {
	return []Dim{{Field: "co", Low: 0, High: 8}, {Field: "cp", Low: 0, High: 8}}
}
