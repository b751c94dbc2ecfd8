package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/uiasnap/uiasnap/internal/model"
	"github.com/uiasnap/uiasnap/internal/output"
	"github.com/uiasnap/uiasnap/internal/platform"
	"github.com/uiasnap/uiasnap/internal/uia"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Capture accessibility trees for one or more windows",
	Long: `Capture a point-in-time accessibility tree snapshot for each given window
handle. Windows are captured concurrently; windows that vanish mid-capture are
dropped from the output.`,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().Int64Slice("handles", nil, "Window handles to capture (HWND values)")
	treeCmd.Flags().Bool("all", false, "Capture every visible top-level window")
	treeCmd.Flags().String("app", "", "With --all, filter windows by app name")
	treeCmd.Flags().Int("pid", 0, "With --all, filter windows by PID")
	treeCmd.Flags().Int("max-depth", uia.DefaultMaxDepth, "Max tree depth to capture")
	treeCmd.Flags().Bool("flat", false, "Flatten trees into a list of nodes with paths")
}

func runTree(cmd *cobra.Command, args []string) error {
	handles, _ := cmd.Flags().GetInt64Slice("handles")
	all, _ := cmd.Flags().GetBool("all")
	appName, _ := cmd.Flags().GetString("app")
	pid, _ := cmd.Flags().GetInt("pid")
	maxDepth, _ := cmd.Flags().GetInt("max-depth")
	flat, _ := cmd.Flags().GetBool("flat")

	if all {
		provider := platform.NewProvider()
		if provider.Lister == nil {
			return platform.ErrUnsupported
		}
		windows, err := provider.Lister.ListWindows(platform.ListOptions{App: appName, PID: pid})
		if err != nil {
			return err
		}
		handles = handles[:0]
		for _, w := range windows {
			handles = append(handles, w.Handle)
		}
	} else if len(handles) == 0 {
		return fmt.Errorf("either --handles or --all is required")
	}

	trees := uia.CaptureTree(handles, maxDepth)
	ts := time.Now().Unix()

	if flat {
		nodes := model.Flatten(trees)
		if nodes == nil {
			nodes = []model.FlatNode{}
		}
		return output.Print(output.TreeFlatResult{TS: ts, Nodes: nodes})
	}

	return output.Print(output.TreeResult{TS: ts, Trees: trees})
}
