package cli

import (
	"fmt"

	"github.com/ehrlich-b/cubesolver/internal/cube"
	"github.com/ehrlich-b/cubesolver/internal/notation"
	"github.com/ehrlich-b/cubesolver/internal/render"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply a move sequence to a solved cube and print the result",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moves, err := notation.ParseScramble(args[0])
		if err != nil {
			fail(false, "parsing moves: %v", err)
		}
		result := cube.Solved.ApplyAll(moves)
		fmt.Print(render.Net(result))
	},
}
