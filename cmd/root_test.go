package cmd

import (
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"tree", "list", "sysinfo", "type", "key", "click", "worker", "serve"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestKeyEvent(t *testing.T) {
	cases := []struct {
		combo    string
		wantKind string
		wantErr  bool
	}{
		{"enter", "key", false},
		{"ctrl+s", "hotkey", false},
		{"ctrl+shift+s", "hotkey", false},
		{"ctrl+", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		event, err := keyEvent(tc.combo)
		if tc.wantErr {
			if err == nil {
				t.Errorf("keyEvent(%q) = %+v, want error", tc.combo, event)
			}
			continue
		}
		if err != nil {
			t.Errorf("keyEvent(%q) returned error: %v", tc.combo, err)
			continue
		}
		if string(event.Kind) != tc.wantKind {
			t.Errorf("keyEvent(%q) kind = %s, want %s", tc.combo, event.Kind, tc.wantKind)
		}
	}
}
