package coordinate

import "github.com/ehrlich-b/cubesolver/internal/cube"

// EO observes eo over all 12 edges.
type EO struct{}

func (EO) Max() int { return 2048 } // 2^11

func (EO) ToCoord(c cube.Cube) int {
	eo := c.EO()
	x := 0
	for i := 0; i < 11; i++ {
		x = 2*x + int(eo[i])
	}
	return x
}

func (EO) FromCoord(coord int) cube.Cube {
	var eo [12]uint8
	n := coord
	sum := 0
	for i := 10; i >= 0; i-- {
		eo[i] = uint8(n % 2)
		n /= 2
		sum += int(eo[i])
	}
	eo[11] = uint8((2 - sum%2) % 2)
	return cube.Raw(cube.Solved.EP(), eo, cube.Solved.CP(), cube.Solved.CO())
}

func (EO) Dims() []Dim { return []Dim{{Field: "eo", Low: 0, High: 12}} }
