//go:build windows

package uia

import (
	"runtime"

	ole "github.com/go-ole/go-ole"

	"github.com/uiasnap/uiasnap/internal/model"
)

// captureWindow captures one window's subtree on a dedicated, COM-initialized
// OS thread. Every failure path returns ok=false: a window that vanished,
// denies access, or errors mid-fetch is indistinguishable from one with no
// accessible content, and both are equally benign to the caller.
func captureWindow(handle int64, maxDepth int) (node model.TreeNode, ok bool) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	guard, err := acquireCOMGuard()
	if err != nil {
		return model.TreeNode{}, false
	}
	defer guard.Release()

	auto, err := newAutomation()
	if err != nil {
		return model.TreeNode{}, false
	}
	defer auto.Release()

	req, err := buildCacheRequest(auto)
	if err != nil {
		return model.TreeNode{}, false
	}
	defer req.Release()

	root, err := auto.elementFromHandleBuildCache(uintptr(handle), req)
	if err != nil || root == nil {
		return model.TreeNode{}, false
	}

	session := &comSession{}
	rootEl := session.wrap(root)
	defer session.release()

	return Walk(rootEl, 0, maxDepth), true
}

// comSession tracks every element reference materialized during one capture
// so they can all be released before the worker returns, in reverse
// acquisition order. Nothing created here outlives the capture.
type comSession struct {
	elements []*iUIAutomationElement
}

func (s *comSession) wrap(raw *iUIAutomationElement) *comElement {
	s.elements = append(s.elements, raw)
	return &comElement{raw: raw, session: s}
}

func (s *comSession) release() {
	for i := len(s.elements) - 1; i >= 0; i-- {
		s.elements[i].Release()
	}
	s.elements = nil
}

// comElement adapts a cached IUIAutomationElement to the CachedElement
// interface. All reads go through GetCachedPropertyValue, which only touches
// the local cache populated by the batched fetch.
type comElement struct {
	raw     *iUIAutomationElement
	session *comSession
}

func (e *comElement) cachedString(propID int) (string, error) {
	v, err := e.raw.getCachedPropertyValue(propID)
	if err != nil {
		return "", err
	}
	defer v.Clear()
	if v.VT != ole.VT_BSTR {
		return "", errPropertyUnset
	}
	return v.ToString(), nil
}

func (e *comElement) cachedBool(propID int) (bool, error) {
	v, err := e.raw.getCachedPropertyValue(propID)
	if err != nil {
		return false, err
	}
	defer v.Clear()
	if v.VT != ole.VT_BOOL {
		return false, errPropertyUnset
	}
	return v.Val != 0, nil
}

func (e *comElement) CachedName() (string, error) {
	return e.cachedString(namePropertyID)
}

func (e *comElement) CachedAutomationID() (string, error) {
	return e.cachedString(automationIDPropertyID)
}

func (e *comElement) CachedControlType() (int64, error) {
	v, err := e.raw.getCachedPropertyValue(controlTypePropertyID)
	if err != nil {
		return 0, err
	}
	defer v.Clear()
	switch v.VT {
	case ole.VT_I4:
		return int64(int32(v.Val)), nil
	case ole.VT_INT:
		return int64(int32(v.Val)), nil
	}
	return 0, errPropertyUnset
}

func (e *comElement) CachedLocalizedControlType() (string, error) {
	return e.cachedString(localizedControlTypePropertyID)
}

func (e *comElement) CachedClassName() (string, error) {
	return e.cachedString(classNamePropertyID)
}

func (e *comElement) CachedAcceleratorKey() (string, error) {
	return e.cachedString(acceleratorKeyPropertyID)
}

// CachedBoundingRectangle decodes the VT_ARRAY|VT_R8 [left, top, right,
// bottom] safearray UIA uses for rectangles.
func (e *comElement) CachedBoundingRectangle() ([4]float64, error) {
	var rect [4]float64
	v, err := e.raw.getCachedPropertyValue(boundingRectanglePropertyID)
	if err != nil {
		return rect, err
	}
	defer v.Clear()

	arr := v.ToArray()
	if arr == nil {
		return rect, errPropertyUnset
	}
	vals := arr.ToValueArray()
	if len(vals) != 4 {
		return rect, errPropertyUnset
	}
	for i, raw := range vals {
		f, ok := raw.(float64)
		if !ok {
			return [4]float64{}, errPropertyUnset
		}
		rect[i] = f
	}
	return rect, nil
}

func (e *comElement) CachedIsOffscreen() (bool, error) {
	return e.cachedBool(isOffscreenPropertyID)
}

func (e *comElement) CachedIsEnabled() (bool, error) {
	return e.cachedBool(isEnabledPropertyID)
}

func (e *comElement) CachedIsControlElement() (bool, error) {
	return e.cachedBool(isControlElementPropertyID)
}

func (e *comElement) CachedHasKeyboardFocus() (bool, error) {
	return e.cachedBool(hasKeyboardFocusPropertyID)
}

func (e *comElement) CachedIsKeyboardFocusable() (bool, error) {
	return e.cachedBool(isKeyboardFocusablePropertyID)
}

func (e *comElement) CachedChildren() ([]CachedElement, error) {
	arr, err := e.raw.getCachedChildren()
	if err != nil {
		return nil, err
	}
	if arr == nil {
		return nil, nil
	}
	defer arr.Release()

	n, err := arr.length()
	if err != nil || n <= 0 {
		return nil, err
	}

	children := make([]CachedElement, 0, n)
	for i := 0; i < n; i++ {
		child, err := arr.getElement(i)
		if err != nil || child == nil {
			continue
		}
		children = append(children, e.session.wrap(child))
	}
	return children, nil
}
