package cli

import (
	"github.com/ehrlich-b/cubesolver/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a debug HTTP server over the solver",
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		h, err := loadHeuristic()
		if err != nil {
			fail(false, "loading pruning tables: %v", err)
		}
		if err := web.NewServer(h).Start(addr); err != nil {
			fail(false, "serving: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "address to listen on")
	serveCmd.Flags().StringVar(&tableDir, "tables", tableDir, "directory to read/write pruning table files")
}
