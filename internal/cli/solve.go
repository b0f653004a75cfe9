package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/cubesolver/internal/cube"
	"github.com/ehrlich-b/cubesolver/internal/notation"
	"github.com/ehrlich-b/cubesolver/internal/render"
	"github.com/ehrlich-b/cubesolver/internal/search"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Find an optimal solution to a scrambled cube",
	Long: `Solve applies the given scramble to a solved cube and searches for the
shortest sequence of moves back to solved, using IDA* over corner and edge
orientation pruning tables.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		headless, _ := cmd.Flags().GetBool("headless")

		moves, err := notation.ParseScramble(args[0])
		if err != nil {
			fail(headless, "parsing scramble: %v", err)
		}
		scrambled := cube.Solved.ApplyAll(moves)

		if !headless {
			fmt.Printf("Solving scramble: %s\n%s\n", args[0], render.Net(scrambled))
		}

		h, err := loadHeuristic()
		if err != nil {
			fail(headless, "loading pruning tables: %v", err)
		}

		solution := search.Solve(scrambled, maxDepth, h)
		if solution == nil {
			if !headless {
				fmt.Printf("No solution found within %d moves.\n", maxDepth)
			}
			return
		}

		if headless {
			fmt.Print(notation.Format(solution))
			return
		}
		fmt.Printf("Solution (%d moves): %s\n", len(solution), notation.Format(solution))
	},
}

func fail(headless bool, format string, args ...any) {
	if !headless {
		fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	}
	os.Exit(1)
}

func init() {
	solveCmd.Flags().IntP("max-depth", "m", 20, "maximum solution length to search for")
	solveCmd.Flags().Bool("headless", false, "output only space-separated moves for programmatic use")
}
