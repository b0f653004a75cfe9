package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Generate and cache the pruning tables used by solve",
	Long: `Table forces (re)generation of the corner and edge orientation pruning
tables and writes them to the configured table directory, so a later solve
doesn't pay the generation cost on its first run.`,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := loadHeuristic(); err != nil {
			fail(false, "generating pruning tables: %v", err)
		}
		fmt.Printf("pruning tables ready in %s\n", tableDir)
	},
}

func init() {
	tableCmd.Flags().StringVar(&tableDir, "tables", tableDir, "directory to read/write pruning table files")
	solveCmd.Flags().StringVar(&tableDir, "tables", tableDir, "directory to read/write pruning table files")
}
