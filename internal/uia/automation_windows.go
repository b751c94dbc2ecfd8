//go:build windows

package uia

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
)

var (
	clsidCUIAutomation = ole.NewGUID("{FF48DBA4-60EF-4201-AA87-54103EEF594E}")
	iidIUIAutomation   = ole.NewGUID("{30CBE57D-D9D0-452A-AB13-7AC5AC4825EE}")
)

// UIA property identifiers (UIAutomationClient.h, UIA_PropertyIds).
const (
	boundingRectanglePropertyID    = 30001
	controlTypePropertyID          = 30003
	localizedControlTypePropertyID = 30004
	namePropertyID                 = 30005
	acceleratorKeyPropertyID       = 30006
	hasKeyboardFocusPropertyID     = 30008
	isKeyboardFocusablePropertyID  = 30009
	isEnabledPropertyID            = 30010
	automationIDPropertyID         = 30011
	classNamePropertyID            = 30012
	isControlElementPropertyID     = 30016
	isOffscreenPropertyID          = 30022
)

// treeScopeSubtree = TreeScope_Element | TreeScope_Children | TreeScope_Descendants.
const treeScopeSubtree = 7

var errPropertyUnset = errors.New("uia: cached property not set")

// The UIA client interfaces are not covered by go-ole's typed wrappers, so
// the vtables are declared by hand in IDL order. Only the slots this package
// calls matter; the rest are padding to keep offsets correct.

type iUIAutomation struct {
	ole.IUnknown
}

type iUIAutomationVtbl struct {
	ole.IUnknownVtbl
	CompareElements             uintptr
	CompareRuntimeIds           uintptr
	GetRootElement              uintptr
	ElementFromHandle           uintptr
	ElementFromPoint            uintptr
	GetFocusedElement           uintptr
	GetRootElementBuildCache    uintptr
	ElementFromHandleBuildCache uintptr
	ElementFromPointBuildCache  uintptr
	GetFocusedElementBuildCache uintptr
	CreateTreeWalker            uintptr
	GetControlViewWalker        uintptr
	GetContentViewWalker        uintptr
	GetRawViewWalker            uintptr
	GetRawViewCondition         uintptr
	GetControlViewCondition     uintptr
	GetContentViewCondition     uintptr
	CreateCacheRequest          uintptr
}

func (v *iUIAutomation) vtbl() *iUIAutomationVtbl {
	return (*iUIAutomationVtbl)(unsafe.Pointer(v.RawVTable))
}

// newAutomation creates a fresh CUIAutomation instance. One per capture
// task; instances are never shared across goroutines.
func newAutomation() (*iUIAutomation, error) {
	unk, err := ole.CreateInstance(clsidCUIAutomation, iidIUIAutomation)
	if err != nil {
		return nil, fmt.Errorf("uia: CoCreateInstance(CUIAutomation): %w", err)
	}
	return (*iUIAutomation)(unsafe.Pointer(unk)), nil
}

func (v *iUIAutomation) createCacheRequest() (*iUIAutomationCacheRequest, error) {
	var req *iUIAutomationCacheRequest
	hr, _, _ := syscall.SyscallN(v.vtbl().CreateCacheRequest,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(&req)))
	if int32(hr) < 0 {
		return nil, comErr("CreateCacheRequest", hr)
	}
	return req, nil
}

// elementFromHandleBuildCache resolves a window handle to its root element
// while populating the entire subtree cache in one round trip. This is the
// only remote call a capture makes.
func (v *iUIAutomation) elementFromHandleBuildCache(hwnd uintptr, req *iUIAutomationCacheRequest) (*iUIAutomationElement, error) {
	var el *iUIAutomationElement
	hr, _, _ := syscall.SyscallN(v.vtbl().ElementFromHandleBuildCache,
		uintptr(unsafe.Pointer(v)),
		hwnd,
		uintptr(unsafe.Pointer(req)),
		uintptr(unsafe.Pointer(&el)))
	if int32(hr) < 0 {
		return nil, comErr("ElementFromHandleBuildCache", hr)
	}
	return el, nil
}

type iUIAutomationCacheRequest struct {
	ole.IUnknown
}

type iUIAutomationCacheRequestVtbl struct {
	ole.IUnknownVtbl
	AddProperty              uintptr
	AddPattern               uintptr
	Clone                    uintptr
	GetTreeScope             uintptr
	PutTreeScope             uintptr
	GetTreeFilter            uintptr
	PutTreeFilter            uintptr
	GetAutomationElementMode uintptr
	PutAutomationElementMode uintptr
}

func (r *iUIAutomationCacheRequest) vtbl() *iUIAutomationCacheRequestVtbl {
	return (*iUIAutomationCacheRequestVtbl)(unsafe.Pointer(r.RawVTable))
}

func (r *iUIAutomationCacheRequest) setTreeScope(scope int) error {
	hr, _, _ := syscall.SyscallN(r.vtbl().PutTreeScope,
		uintptr(unsafe.Pointer(r)),
		uintptr(scope))
	if int32(hr) < 0 {
		return comErr("SetTreeScope", hr)
	}
	return nil
}

func (r *iUIAutomationCacheRequest) addProperty(propID int) error {
	hr, _, _ := syscall.SyscallN(r.vtbl().AddProperty,
		uintptr(unsafe.Pointer(r)),
		uintptr(propID))
	if int32(hr) < 0 {
		return comErr(fmt.Sprintf("AddProperty(%d)", propID), hr)
	}
	return nil
}

type iUIAutomationElement struct {
	ole.IUnknown
}

type iUIAutomationElementVtbl struct {
	ole.IUnknownVtbl
	SetFocus                  uintptr
	GetRuntimeId              uintptr
	FindFirst                 uintptr
	FindAll                   uintptr
	FindFirstBuildCache       uintptr
	FindAllBuildCache         uintptr
	BuildUpdatedCache         uintptr
	GetCurrentPropertyValue   uintptr
	GetCurrentPropertyValueEx uintptr
	GetCachedPropertyValue    uintptr
	GetCachedPropertyValueEx  uintptr
	GetCurrentPatternAs       uintptr
	GetCachedPatternAs        uintptr
	GetCurrentPattern         uintptr
	GetCachedPattern          uintptr
	GetCachedParent           uintptr
	GetCachedChildren         uintptr
}

func (el *iUIAutomationElement) vtbl() *iUIAutomationElementVtbl {
	return (*iUIAutomationElementVtbl)(unsafe.Pointer(el.RawVTable))
}

func (el *iUIAutomationElement) getCachedPropertyValue(propID int) (*ole.VARIANT, error) {
	var v ole.VARIANT
	if err := ole.VariantInit(&v); err != nil {
		return nil, err
	}
	hr, _, _ := syscall.SyscallN(el.vtbl().GetCachedPropertyValue,
		uintptr(unsafe.Pointer(el)),
		uintptr(propID),
		uintptr(unsafe.Pointer(&v)))
	if int32(hr) < 0 {
		return nil, comErr(fmt.Sprintf("GetCachedPropertyValue(%d)", propID), hr)
	}
	return &v, nil
}

func (el *iUIAutomationElement) getCachedChildren() (*iUIAutomationElementArray, error) {
	var arr *iUIAutomationElementArray
	hr, _, _ := syscall.SyscallN(el.vtbl().GetCachedChildren,
		uintptr(unsafe.Pointer(el)),
		uintptr(unsafe.Pointer(&arr)))
	if int32(hr) < 0 {
		return nil, comErr("GetCachedChildren", hr)
	}
	return arr, nil
}

type iUIAutomationElementArray struct {
	ole.IUnknown
}

type iUIAutomationElementArrayVtbl struct {
	ole.IUnknownVtbl
	GetLength  uintptr
	GetElement uintptr
}

func (a *iUIAutomationElementArray) vtbl() *iUIAutomationElementArrayVtbl {
	return (*iUIAutomationElementArrayVtbl)(unsafe.Pointer(a.RawVTable))
}

func (a *iUIAutomationElementArray) length() (int, error) {
	var n int32
	hr, _, _ := syscall.SyscallN(a.vtbl().GetLength,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(&n)))
	if int32(hr) < 0 {
		return 0, comErr("ElementArray.Length", hr)
	}
	return int(n), nil
}

func (a *iUIAutomationElementArray) getElement(index int) (*iUIAutomationElement, error) {
	var el *iUIAutomationElement
	hr, _, _ := syscall.SyscallN(a.vtbl().GetElement,
		uintptr(unsafe.Pointer(a)),
		uintptr(index),
		uintptr(unsafe.Pointer(&el)))
	if int32(hr) < 0 {
		return nil, comErr(fmt.Sprintf("ElementArray.GetElement(%d)", index), hr)
	}
	return el, nil
}
