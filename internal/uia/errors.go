package uia

import "fmt"

// ComError reports a failed COM/UI Automation infrastructure call. Op names
// the failing step (e.g. "CreateCacheRequest", "AddProperty(30005)") and
// HResult carries the raw status code.
//
// ComError never escapes CaptureTree: a window whose capture hits one is
// simply absent from the results. The type exists so that the lower-level
// building blocks can report precisely which step failed.
type ComError struct {
	Op      string
	HResult uint32
}

func (e *ComError) Error() string {
	return fmt.Sprintf("uia: %s failed: HRESULT 0x%08X", e.Op, e.HResult)
}

func comErr(op string, hr uintptr) *ComError {
	return &ComError{Op: op, HResult: uint32(hr)}
}
