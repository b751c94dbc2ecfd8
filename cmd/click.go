package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/uiasnap/uiasnap/internal/input"
	"github.com/uiasnap/uiasnap/internal/output"
)

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click at screen coordinates",
	Long:  "Move the mouse to the given screen coordinates and click.",
	RunE:  runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	clickCmd.Flags().Int("x", 0, "X coordinate")
	clickCmd.Flags().Int("y", 0, "Y coordinate")
	clickCmd.Flags().String("button", "left", "Mouse button: left, right, center")
	clickCmd.Flags().Bool("double", false, "Double-click")
	clickCmd.Flags().Bool("no-move", false, "Click at the current cursor position")
}

func runClick(cmd *cobra.Command, args []string) error {
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")
	button, _ := cmd.Flags().GetString("button")
	double, _ := cmd.Flags().GetBool("double")
	noMove, _ := cmd.Flags().GetBool("no-move")

	var events []input.Event
	if !noMove {
		events = append(events, input.Event{Kind: input.KindMove, X: x, Y: y})
	}
	events = append(events, input.Event{Kind: input.KindClick, Button: button, Double: double})

	applied, err := input.Send(events)
	if err != nil {
		return err
	}
	return output.Print(output.InputResult{TS: time.Now().Unix(), Applied: applied})
}
