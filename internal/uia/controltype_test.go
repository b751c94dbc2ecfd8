package uia

import "testing"

func TestControlTypeName_KnownIDs(t *testing.T) {
	cases := []struct {
		id   int64
		want string
	}{
		{ButtonControlTypeID, "Button"},
		{EditControlTypeID, "Edit"},
		{WindowControlTypeID, "Window"},
		{TreeControlTypeID, "Tree"},
		{AppBarControlTypeID, "AppBar"},
		{PaneControlTypeID, "Pane"},
	}
	for _, tc := range cases {
		if got := ControlTypeName(tc.id); got != tc.want {
			t.Errorf("ControlTypeName(%d) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestControlTypeName_Unknown(t *testing.T) {
	for _, id := range []int64{0, -1, 49999, 50041, 99999} {
		if got := ControlTypeName(id); got != "Unknown" {
			t.Errorf("ControlTypeName(%d) = %q, want Unknown", id, got)
		}
	}
}

func TestControlTypeName_TableIsComplete(t *testing.T) {
	// 50000..50040 inclusive — every standard control type has a name.
	for id := int64(50000); id <= 50040; id++ {
		if got := ControlTypeName(id); got == "Unknown" {
			t.Errorf("ControlTypeName(%d) missing from table", id)
		}
	}
	if len(controlTypeNames) != 41 {
		t.Errorf("expected 41 entries, got %d", len(controlTypeNames))
	}
}
