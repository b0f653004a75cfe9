// Package render converts a cube.Cube into a 54-facelet color array and
// prints it as a net, the way a solved human would lay the cube flat, using
// raw ANSI escape codes rather than a color library.
package render

import (
	"fmt"
	"strings"

	"github.com/ehrlich-b/cubesolver/internal/cube"
)

// Color is one of the six sticker colors.
type Color uint8

const (
	White Color = iota
	Yellow
	Red
	Orange
	Blue
	Green
)

var ansiCode = [6]string{
	White:  "\033[37m██\033[0m",
	Yellow: "\033[33m██\033[0m",
	Red:    "\033[31m██\033[0m",
	Orange: "\033[35m██\033[0m",
	Blue:   "\033[34m██\033[0m",
	Green:  "\033[32m██\033[0m",
}

func (c Color) Tile() string { return ansiCode[c] }

var edgeColors = [12][2]Color{
	{White, Blue}, {White, Red}, {White, Green}, {White, Orange},
	{Blue, Orange}, {Blue, Red}, {Green, Red}, {Green, Orange},
	{Yellow, Blue}, {Yellow, Red}, {Yellow, Green}, {Yellow, Orange},
}

var cornerColors = [8][3]Color{
	{White, Orange, Blue}, {White, Blue, Red}, {White, Red, Green}, {White, Green, Orange},
	{Yellow, Blue, Orange}, {Yellow, Red, Blue}, {Yellow, Green, Red}, {Yellow, Orange, Green},
}

type facelet struct {
	kind int // 0 = center, 1 = edge, 2 = corner
	id   uint8
	ori  uint8
	base Color // only used for kind == center
}

const (
	kindCenter = iota
	kindEdge
	kindCorner
)

// faceletTable maps each of the 54 facelet slots to the cubie position and
// orientation offset that colors it, in a fixed slot numbering: the three
// rows of the U face, then the top/middle/bottom rows of the side faces in
// L/F/R/B order, then D.
var faceletTable = [54]facelet{
	{kindCorner, 0, 0, 0}, {kindEdge, 0, 0, 0}, {kindCorner, 1, 0, 0},
	{kindEdge, 3, 0, 0}, {kindCenter, 0, 0, White}, {kindEdge, 1, 0, 0},
	{kindCorner, 3, 0, 0}, {kindEdge, 2, 0, 0}, {kindCorner, 2, 0, 0},

	{kindCorner, 0, 1, 0}, {kindEdge, 3, 1, 0}, {kindCorner, 3, 2, 0},
	{kindCorner, 3, 1, 0}, {kindEdge, 2, 1, 0}, {kindCorner, 2, 2, 0},
	{kindCorner, 2, 1, 0}, {kindEdge, 1, 1, 0}, {kindCorner, 1, 2, 0},
	{kindCorner, 1, 1, 0}, {kindEdge, 0, 1, 0}, {kindCorner, 0, 2, 0},

	{kindEdge, 4, 1, 0}, {kindCenter, 0, 0, Orange}, {kindEdge, 7, 1, 0},
	{kindEdge, 7, 0, 0}, {kindCenter, 0, 0, Green}, {kindEdge, 6, 0, 0},
	{kindEdge, 6, 1, 0}, {kindCenter, 0, 0, Red}, {kindEdge, 5, 1, 0},
	{kindEdge, 5, 0, 0}, {kindCenter, 0, 0, Blue}, {kindEdge, 4, 0, 0},

	{kindCorner, 4, 2, 0}, {kindEdge, 11, 1, 0}, {kindCorner, 7, 1, 0},
	{kindCorner, 7, 2, 0}, {kindEdge, 10, 1, 0}, {kindCorner, 6, 1, 0},
	{kindCorner, 6, 2, 0}, {kindEdge, 9, 1, 0}, {kindCorner, 5, 1, 0},
	{kindCorner, 5, 2, 0}, {kindEdge, 8, 1, 0}, {kindCorner, 4, 1, 0},

	{kindCorner, 7, 0, 0}, {kindEdge, 10, 0, 0}, {kindCorner, 6, 0, 0},
	{kindEdge, 11, 0, 0}, {kindCenter, 0, 0, Yellow}, {kindEdge, 9, 0, 0},
	{kindCorner, 4, 0, 0}, {kindEdge, 8, 0, 0}, {kindCorner, 5, 0, 0},
}

func (f facelet) color(c cube.Cube) Color {
	switch f.kind {
	case kindCorner:
		cp, co := c.CP(), c.CO()
		cpi := cp[f.id]
		coi := (f.ori + co[f.id]) % 3
		return cornerColors[cpi][coi]
	case kindEdge:
		ep, eo := c.EP(), c.EO()
		epi := ep[f.id]
		eoi := (f.ori + eo[f.id]) % 2
		return edgeColors[epi][eoi]
	default:
		return f.base
	}
}

// Facelets returns the 54 sticker colors of c, in the fixed slot order
// described on faceletTable.
func Facelets(c cube.Cube) [54]Color {
	var out [54]Color
	for i, f := range faceletTable {
		out[i] = f.color(c)
	}
	return out
}

// Net renders c as a cross-shaped net of colored tiles using raw ANSI
// escapes, with no color library dependency.
func Net(c cube.Cube) string {
	facelets := Facelets(c)
	var sb strings.Builder
	for i, col := range facelets {
		switch i {
		case 0, 3, 6, 45, 48, 51:
			sb.WriteString(fmt.Sprintf("\n      %s", col.Tile()))
		case 9, 21, 33:
			sb.WriteString(fmt.Sprintf("\n%s", col.Tile()))
		default:
			sb.WriteString(col.Tile())
		}
	}
	sb.WriteString("\n")
	return sb.String()
}
