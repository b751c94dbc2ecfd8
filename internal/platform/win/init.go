//go:build windows

// Package win implements the Windows window enumeration backend.
package win

import "github.com/uiasnap/uiasnap/internal/platform"

func init() {
	platform.NewListerFunc = func() platform.WindowLister {
		return NewLister()
	}
}
