// Package notation parses Singmaster scramble strings into cube.Move
// sequences: a face letter and an optional "2" or "'" modifier — no slices
// (M/E/S), wide moves, or whole-cube rotations (x/y/z), since the cubie
// model has no notion of them.
package notation

import (
	"fmt"
	"strings"

	"github.com/ehrlich-b/cubesolver/internal/cube"
)

var faceMoves = map[byte][3]cube.Move{
	'U': {cube.U, cube.U2, cube.UPrime},
	'D': {cube.D, cube.D2, cube.DPrime},
	'L': {cube.L, cube.L2, cube.LPrime},
	'R': {cube.R, cube.R2, cube.RPrime},
	'F': {cube.F, cube.F2, cube.FPrime},
	'B': {cube.B, cube.B2, cube.BPrime},
}

// ParseMove parses a single token: a face letter optionally followed by
// "2" (double turn) or "'" (counterclockwise).
func ParseMove(token string) (cube.Move, error) {
	token = strings.TrimSpace(token)
	if len(token) == 0 {
		return 0, fmt.Errorf("notation: empty move")
	}

	moves, ok := faceMoves[token[0]]
	if !ok {
		return 0, fmt.Errorf("notation: unknown face %q", token[:1])
	}

	switch token[1:] {
	case "":
		return moves[0], nil
	case "2":
		return moves[1], nil
	case "'":
		return moves[2], nil
	default:
		return 0, fmt.Errorf("notation: unrecognized modifier in %q", token)
	}
}

// ParseScramble parses a whitespace-separated scramble string into a move
// sequence, e.g. "R U2 F' L B".
func ParseScramble(scramble string) ([]cube.Move, error) {
	fields := strings.Fields(scramble)
	moves := make([]cube.Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Format renders a move sequence back into scramble notation.
func Format(moves []cube.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
