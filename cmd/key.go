package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/uiasnap/uiasnap/internal/input"
	"github.com/uiasnap/uiasnap/internal/output"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Press a key or key combination",
	Long: `Press a single key or a modifier combination, e.g.

  uiasnap key --combo enter
  uiasnap key --combo ctrl+shift+s`,
	RunE: runKey,
}

func init() {
	rootCmd.AddCommand(keyCmd)
	keyCmd.Flags().String("combo", "", "Key or '+'-joined combination, modifiers first")
}

func runKey(cmd *cobra.Command, args []string) error {
	combo, _ := cmd.Flags().GetString("combo")
	if combo == "" {
		return fmt.Errorf("--combo is required")
	}

	event, err := keyEvent(combo)
	if err != nil {
		return err
	}
	applied, err := input.Send([]input.Event{event})
	if err != nil {
		return err
	}
	return output.Print(output.InputResult{TS: time.Now().Unix(), Applied: applied})
}

// keyEvent parses a '+'-joined combo into a key or hotkey event.
func keyEvent(combo string) (input.Event, error) {
	parts := strings.Split(combo, "+")
	keys := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return input.Event{}, fmt.Errorf("invalid key combo %q", combo)
		}
		keys = append(keys, p)
	}
	if len(keys) == 1 {
		return input.Event{Kind: input.KindKey, Key: keys[0]}, nil
	}
	return input.Event{Kind: input.KindHotkey, Keys: keys}, nil
}
