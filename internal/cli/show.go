package cli

import (
	"fmt"

	"github.com/ehrlich-b/cubesolver/internal/cube"
	"github.com/ehrlich-b/cubesolver/internal/notation"
	"github.com/ehrlich-b/cubesolver/internal/render"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Print the cube state after applying a scramble (default: solved)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := cube.Solved
		if len(args) == 1 && args[0] != "" {
			moves, err := notation.ParseScramble(args[0])
			if err != nil {
				fail(false, "parsing scramble: %v", err)
			}
			c = c.ApplyAll(moves)
		}
		fmt.Print(render.Net(c))
	},
}
