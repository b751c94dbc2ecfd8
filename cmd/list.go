package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/uiasnap/uiasnap/internal/output"
	"github.com/uiasnap/uiasnap/internal/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List visible top-level windows",
	Long:  "List visible top-level windows with their app name, title, PID, handle, and bounds.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Int("pid", 0, "Filter windows by PID")
	listCmd.Flags().String("app", "", "Filter windows by app name")
}

func runList(cmd *cobra.Command, args []string) error {
	provider := platform.NewProvider()
	if provider.Lister == nil {
		return platform.ErrUnsupported
	}

	pid, _ := cmd.Flags().GetInt("pid")
	appName, _ := cmd.Flags().GetString("app")

	windows, err := provider.Lister.ListWindows(platform.ListOptions{App: appName, PID: pid})
	if err != nil {
		return err
	}

	return output.Print(output.ListResult{TS: time.Now().Unix(), Windows: windows})
}
