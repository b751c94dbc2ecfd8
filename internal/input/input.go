// Package input injects synthetic keyboard and mouse events. Events are
// applied in batch order; the first failure stops the batch.
package input

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// Kind selects which field group of an Event is meaningful.
type Kind string

const (
	KindText   Kind = "text"
	KindKey    Kind = "key"
	KindHotkey Kind = "hotkey"
	KindClick  Kind = "click"
	KindMove   Kind = "move"
)

// Event is one input action.
type Event struct {
	Kind Kind `yaml:"kind" json:"kind"`

	// Text for KindText.
	Text string `yaml:"text,omitempty" json:"text,omitempty"`

	// Key for KindKey, e.g. "enter", "tab", "a".
	Key string `yaml:"key,omitempty" json:"key,omitempty"`

	// Keys for KindHotkey, modifiers first, main key last,
	// e.g. ["ctrl", "shift", "s"].
	Keys []string `yaml:"keys,omitempty" json:"keys,omitempty"`

	// Button for KindClick: "left", "right" or "center". Empty means left.
	Button string `yaml:"button,omitempty" json:"button,omitempty"`
	Double bool   `yaml:"double,omitempty" json:"double,omitempty"`

	// X, Y for KindMove, in screen coordinates.
	X int `yaml:"x,omitempty" json:"x,omitempty"`
	Y int `yaml:"y,omitempty" json:"y,omitempty"`
}

// Validate reports whether the event is well formed for its kind.
func Validate(e Event) error {
	switch e.Kind {
	case KindText:
		if e.Text == "" {
			return fmt.Errorf("input: text event requires text")
		}
	case KindKey:
		if e.Key == "" {
			return fmt.Errorf("input: key event requires key")
		}
	case KindHotkey:
		if len(e.Keys) < 2 {
			return fmt.Errorf("input: hotkey event requires at least two keys")
		}
		for _, k := range e.Keys {
			if k == "" {
				return fmt.Errorf("input: hotkey event contains empty key")
			}
		}
	case KindClick:
		switch e.Button {
		case "", "left", "right", "center":
		default:
			return fmt.Errorf("input: unknown mouse button %q", e.Button)
		}
	case KindMove:
		// Any coordinates are valid; monitors left of or above the primary
		// have negative screen coordinates.
	default:
		return fmt.Errorf("input: unknown event kind %q", e.Kind)
	}
	return nil
}

// Send applies events in order and returns how many were applied. The whole
// batch is validated before anything runs, so an invalid batch applies
// nothing.
func Send(events []Event) (int, error) {
	for i, e := range events {
		if err := Validate(e); err != nil {
			return 0, fmt.Errorf("event %d: %w", i, err)
		}
	}

	for i, e := range events {
		if err := apply(e); err != nil {
			return i, fmt.Errorf("event %d: %w", i, err)
		}
	}
	return len(events), nil
}

func apply(e Event) error {
	switch e.Kind {
	case KindText:
		robotgo.TypeStr(e.Text)
	case KindKey:
		return robotgo.KeyTap(e.Key)
	case KindHotkey:
		main := e.Keys[len(e.Keys)-1]
		modifiers := e.Keys[:len(e.Keys)-1]
		return robotgo.KeyTap(main, modifiers)
	case KindClick:
		btn := e.Button
		if btn == "" {
			btn = "left"
		}
		robotgo.Click(btn, e.Double)
	case KindMove:
		robotgo.Move(e.X, e.Y)
	}
	return nil
}
