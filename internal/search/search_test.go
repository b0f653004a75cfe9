package search

import (
	"testing"

	"github.com/ehrlich-b/cubesolver/internal/cube"
	"github.com/ehrlich-b/cubesolver/internal/heuristic"
)

func TestSolveAlreadySolved(t *testing.T) {
	path := Solve(cube.Solved, 3, heuristic.Zero)
	if len(path) != 0 {
		t.Errorf("Solve(Solved) = %v, want empty", path)
	}
}

func TestSolveSingleMove(t *testing.T) {
	for _, m := range cube.ALL {
		scrambled := cube.Solved.Apply(m)
		path := Solve(scrambled, 2, heuristic.Zero)
		if len(path) != 1 {
			t.Fatalf("Solve(Solved.Apply(%s)) = %v, want a 1-move solution", m, path)
		}
		if !scrambled.ApplyAll(path).Equal(cube.Solved) {
			t.Errorf("solution %v does not solve %s", path, m)
		}
	}
}

func TestSolveFindsOptimalShortScramble(t *testing.T) {
	scrambled := cube.Solved.Apply(cube.R).Apply(cube.U)
	path := Solve(scrambled, 4, heuristic.Zero)
	if len(path) != 2 {
		t.Fatalf("Solve(R U) = %v (len %d), want an optimal 2-move solution", path, len(path))
	}
	if !scrambled.ApplyAll(path).Equal(cube.Solved) {
		t.Errorf("solution %v does not solve R U", path)
	}
}

func TestSolveReturnsNilWhenUnreachableWithinDepth(t *testing.T) {
	// An 8-move scramble leaves the cube unsolved, so a depth bound of 0
	// cannot reach a solution.
	scrambled := cube.Solved
	for _, m := range []cube.Move{cube.R, cube.U2, cube.F, cube.B2, cube.L, cube.D2, cube.R, cube.U2} {
		scrambled = scrambled.Apply(m)
	}
	if scrambled.Equal(cube.Solved) {
		t.Skip("scramble happened to cancel out to solved")
	}
	if path := Solve(scrambled, 0, heuristic.Zero); path != nil {
		t.Errorf("Solve at depth 0 on an unsolved cube = %v, want nil", path)
	}
}

func TestSolveRespectsRedundancyPruningWithoutLosingSolutions(t *testing.T) {
	scrambled := cube.Solved.Apply(cube.F).Apply(cube.R2).Apply(cube.U)
	path := Solve(scrambled, 5, heuristic.Zero)
	if path == nil {
		t.Fatal("Solve found no solution")
	}
	for i := 1; i < len(path); i++ {
		if cube.Redundant(path[i-1], path[i]) {
			t.Errorf("solution %v contains a same-face redundant pair at %d", path, i)
		}
	}
	if !scrambled.ApplyAll(path).Equal(cube.Solved) {
		t.Errorf("solution %v does not solve the scramble", path)
	}
}
