package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "An optimal 3x3x3 Rubik's cube solver",
	Long: `cubesolver finds provably shortest solutions to a 3x3x3 Rubik's cube
using cubie-level state algebra, coordinate-indexed pruning tables, and IDA*
search.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(serveCmd)
}
