//go:build windows

package win

import (
	"testing"

	"github.com/uiasnap/uiasnap/internal/platform"
)

// Long-running modes call ListWindows repeatedly; the enumeration callback
// must be compiled exactly once, since the runtime's callback table is small
// and never freed.
func TestListWindows_ReusesEnumCallback(t *testing.T) {
	l := NewLister()

	if _, err := l.ListWindows(platform.ListOptions{}); err != nil {
		t.Fatalf("ListWindows returned error: %v", err)
	}
	first := enumCallback
	if first == 0 {
		t.Fatal("enum callback was not created")
	}

	for i := 0; i < 16; i++ {
		if _, err := l.ListWindows(platform.ListOptions{}); err != nil {
			t.Fatalf("ListWindows call %d returned error: %v", i, err)
		}
	}
	if enumCallback != first {
		t.Error("enum callback was recompiled on a later call")
	}
}

func TestListWindows_ClearsEnumState(t *testing.T) {
	l := NewLister()
	if _, err := l.ListWindows(platform.ListOptions{}); err != nil {
		t.Fatalf("ListWindows returned error: %v", err)
	}
	if enumState != nil {
		t.Error("enum state should be cleared after enumeration")
	}
}
