package input

import "testing"

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		event   Event
		wantErr bool
	}{
		{"text", Event{Kind: KindText, Text: "hello"}, false},
		{"text empty", Event{Kind: KindText}, true},
		{"key", Event{Kind: KindKey, Key: "enter"}, false},
		{"key empty", Event{Kind: KindKey}, true},
		{"hotkey", Event{Kind: KindHotkey, Keys: []string{"ctrl", "s"}}, false},
		{"hotkey three keys", Event{Kind: KindHotkey, Keys: []string{"ctrl", "shift", "s"}}, false},
		{"hotkey single key", Event{Kind: KindHotkey, Keys: []string{"s"}}, true},
		{"hotkey empty key", Event{Kind: KindHotkey, Keys: []string{"ctrl", ""}}, true},
		{"click default button", Event{Kind: KindClick}, false},
		{"click right", Event{Kind: KindClick, Button: "right"}, false},
		{"click double", Event{Kind: KindClick, Double: true}, false},
		{"click bad button", Event{Kind: KindClick, Button: "middle-ish"}, true},
		{"move", Event{Kind: KindMove, X: 100, Y: 200}, false},
		{"move origin", Event{Kind: KindMove}, false},
		{"move secondary monitor", Event{Kind: KindMove, X: -1920, Y: -200}, false},
		{"unknown kind", Event{Kind: "scroll"}, true},
		{"empty kind", Event{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.event)
			if tc.wantErr && err == nil {
				t.Errorf("Validate(%+v) = nil, want error", tc.event)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate(%+v) = %v, want nil", tc.event, err)
			}
		})
	}
}

func TestSend_InvalidBatchAppliesNothing(t *testing.T) {
	events := []Event{
		{Kind: KindText, Text: "abc"},
		{Kind: "bogus"},
	}
	n, err := Send(events)
	if err == nil {
		t.Fatal("expected error for invalid batch")
	}
	if n != 0 {
		t.Errorf("applied %d events from an invalid batch, want 0", n)
	}
}

func TestSend_EmptyBatch(t *testing.T) {
	n, err := Send(nil)
	if err != nil {
		t.Fatalf("Send(nil) returned error: %v", err)
	}
	if n != 0 {
		t.Errorf("Send(nil) = %d, want 0", n)
	}
}
