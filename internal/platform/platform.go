// Package platform abstracts the OS-specific window enumeration backend.
// The capture pipeline itself lives in internal/uia; this package only
// answers "which top-level windows exist right now".
package platform

import "github.com/uiasnap/uiasnap/internal/model"

// ListOptions filters window enumeration.
type ListOptions struct {
	App string // Filter by owning process name (case-insensitive)
	PID int    // Filter by process ID (0 = unset)
}

// WindowLister enumerates top-level windows and their handles. Handles feed
// directly into uia.CaptureTree.
type WindowLister interface {
	ListWindows(opts ListOptions) ([]model.Window, error)
}
