package heuristic

import (
	"testing"

	"github.com/ehrlich-b/cubesolver/internal/cube"
)

func TestZeroIsAlwaysZero(t *testing.T) {
	scrambled := cube.Solved.Apply(cube.R).Apply(cube.U).Apply(cube.FPrime)
	if got := Zero.LowerBound(scrambled); got != 0 {
		t.Errorf("Zero.LowerBound = %d, want 0", got)
	}
}

func TestEOZeroOnSolved(t *testing.T) {
	if got := EO.LowerBound(cube.Solved); got != 0 {
		t.Errorf("EO.LowerBound(Solved) = %d, want 0", got)
	}
}

func TestEONeverOverestimatesASingleMove(t *testing.T) {
	// Every single move's result is reachable in exactly one move, so an
	// admissible bound must report at most 1 for each.
	for _, m := range cube.ALL {
		scrambled := cube.Solved.Apply(m)
		if got := EO.LowerBound(scrambled); got > 1 {
			t.Errorf("EO.LowerBound(Solved.Apply(%s)) = %d, want <= 1", m, got)
		}
	}
}

func TestMaxIsPointwiseMax(t *testing.T) {
	scrambled := cube.Solved.Apply(cube.F).Apply(cube.B2).Apply(cube.R)
	a := Func(func(cube.Cube) int { return 2 })
	b := Func(func(cube.Cube) int { return 5 })
	c := Func(func(cube.Cube) int { return 3 })

	combined := Max(a, b, c)
	if got := combined.LowerBound(scrambled); got != 5 {
		t.Errorf("Max(2,5,3).LowerBound = %d, want 5", got)
	}
}

func TestMaxOfNoHeuristicsIsZero(t *testing.T) {
	if got := Max().LowerBound(cube.Solved); got != 0 {
		t.Errorf("Max().LowerBound = %d, want 0", got)
	}
}
