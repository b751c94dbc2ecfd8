package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/uiasnap/uiasnap/internal/worker"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run as a line-delimited JSON-RPC worker",
	Long: `Run a request loop for a parent process: one JSON request per stdin line,
one JSON response per stdout line. Intended to be spawned and driven
programmatically rather than used interactively.`,
	RunE: runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, args []string) error {
	return worker.Run(os.Stdin, os.Stdout)
}
