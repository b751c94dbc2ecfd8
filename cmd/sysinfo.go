package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/uiasnap/uiasnap/internal/output"
	"github.com/uiasnap/uiasnap/internal/sysinfo"
)

var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "Show host system information",
	Long:  "Show host, CPU, memory, and disk information for the current machine.",
	RunE:  runSysinfo,
}

func init() {
	rootCmd.AddCommand(sysinfoCmd)
}

func runSysinfo(cmd *cobra.Command, args []string) error {
	snap, err := sysinfo.Collect()
	if err != nil {
		return err
	}
	return output.Print(output.SysinfoResult{TS: time.Now().Unix(), Host: snap})
}
