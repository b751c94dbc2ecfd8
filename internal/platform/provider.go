package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the platform backends for the current OS.
type Provider struct {
	// Lister is nil on platforms without window enumeration support.
	Lister WindowLister
}

// ErrUnsupported is returned when a backend is missing on this platform.
var ErrUnsupported = fmt.Errorf("window enumeration is not supported on %s/%s; supported: windows/amd64, windows/arm64", runtime.GOOS, runtime.GOARCH)

// NewListerFunc is set by the platform-specific package via init().
// See internal/platform/win/init.go for the Windows registration.
var NewListerFunc func() WindowLister

// NewProvider returns a Provider for the current OS. The Lister field is nil
// when no platform package registered one.
func NewProvider() *Provider {
	p := &Provider{}
	if NewListerFunc != nil {
		p.Lister = NewListerFunc()
	}
	return p
}
