package render

import (
	"strings"
	"testing"

	"github.com/ehrlich-b/cubesolver/internal/cube"
)

func TestFaceletsSolvedHasNineOfEachCenterColor(t *testing.T) {
	facelets := Facelets(cube.Solved)
	counts := map[Color]int{}
	for _, c := range facelets {
		counts[c]++
	}
	for _, c := range []Color{White, Yellow, Red, Orange, Blue, Green} {
		if counts[c] != 9 {
			t.Errorf("solved cube has %d facelets of color %d, want 9", counts[c], c)
		}
	}
}

func TestFaceletsCentersMatchExpectedColors(t *testing.T) {
	facelets := Facelets(cube.Solved)
	tests := []struct {
		index int
		want  Color
	}{
		{4, White},
		{22, Orange},
		{25, Green},
		{28, Red},
		{31, Blue},
		{49, Yellow},
	}
	for _, tt := range tests {
		if facelets[tt.index] != tt.want {
			t.Errorf("facelet[%d] = %d, want %d", tt.index, facelets[tt.index], tt.want)
		}
	}
}

func TestFaceletsChangeAfterAMove(t *testing.T) {
	solved := Facelets(cube.Solved)
	turned := Facelets(cube.Solved.Apply(cube.R))
	if solved == turned {
		t.Error("facelets unchanged after an R turn")
	}
}

func TestNetContainsEveryTile(t *testing.T) {
	net := Net(cube.Solved)
	for _, c := range []Color{White, Yellow, Red, Orange, Blue, Green} {
		if !strings.Contains(net, c.Tile()) {
			t.Errorf("net missing a tile for color %d", c)
		}
	}
}
