package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/uiasnap/uiasnap/internal/input"
	"github.com/uiasnap/uiasnap/internal/output"
)

var typeCmd = &cobra.Command{
	Use:   "type",
	Short: "Type text into the focused element",
	Long:  "Type literal text as synthetic keyboard input into whatever currently has focus.",
	RunE:  runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
	typeCmd.Flags().String("text", "", "Text to type")
}

func runType(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	if text == "" {
		return fmt.Errorf("--text is required")
	}

	applied, err := input.Send([]input.Event{{Kind: input.KindText, Text: text}})
	if err != nil {
		return err
	}
	return output.Print(output.InputResult{TS: time.Now().Unix(), Applied: applied})
}
