package uia

import (
	"errors"
	"testing"
)

// fakeElement implements CachedElement for walker tests. Zero-value fields
// behave like a fully-readable element with empty properties; failProps
// makes individual property reads fail.
type fakeElement struct {
	name           string
	automationID   string
	controlType    int64
	localizedType  string
	className      string
	acceleratorKey string
	rect           [4]float64
	offscreen      bool
	enabled        bool
	control        bool
	focused        bool
	focusable      bool
	children       []CachedElement
	failProps      map[string]bool
	childrenErr    error
}

var errUnavailable = errors.New("property unavailable")

func (f *fakeElement) get(prop string) error {
	if f.failProps[prop] {
		return errUnavailable
	}
	return nil
}

func (f *fakeElement) CachedName() (string, error)         { return f.name, f.get("name") }
func (f *fakeElement) CachedAutomationID() (string, error) { return f.automationID, f.get("automation_id") }
func (f *fakeElement) CachedControlType() (int64, error)   { return f.controlType, f.get("control_type") }
func (f *fakeElement) CachedLocalizedControlType() (string, error) {
	return f.localizedType, f.get("localized_control_type")
}
func (f *fakeElement) CachedClassName() (string, error) { return f.className, f.get("class_name") }
func (f *fakeElement) CachedAcceleratorKey() (string, error) {
	return f.acceleratorKey, f.get("accelerator_key")
}
func (f *fakeElement) CachedBoundingRectangle() ([4]float64, error) { return f.rect, f.get("rect") }
func (f *fakeElement) CachedIsOffscreen() (bool, error)             { return f.offscreen, f.get("offscreen") }
func (f *fakeElement) CachedIsEnabled() (bool, error)               { return f.enabled, f.get("enabled") }
func (f *fakeElement) CachedIsControlElement() (bool, error)        { return f.control, f.get("control") }
func (f *fakeElement) CachedHasKeyboardFocus() (bool, error)        { return f.focused, f.get("focus") }
func (f *fakeElement) CachedIsKeyboardFocusable() (bool, error)     { return f.focusable, f.get("focusable") }
func (f *fakeElement) CachedChildren() ([]CachedElement, error) {
	if f.childrenErr != nil {
		return nil, f.childrenErr
	}
	return f.children, nil
}

// deepChain builds a linear chain of n+1 elements (root plus n descendants).
func deepChain(n int) *fakeElement {
	el := &fakeElement{controlType: TextControlTypeID}
	for i := 0; i < n; i++ {
		el = &fakeElement{controlType: GroupControlTypeID, children: []CachedElement{el}}
	}
	return el
}

func TestWalk_ReadsAllProperties(t *testing.T) {
	el := &fakeElement{
		name:           "Save",
		automationID:   "saveButton",
		controlType:    ButtonControlTypeID,
		localizedType:  "button",
		className:      "Button",
		acceleratorKey: "Ctrl+S",
		rect:           [4]float64{10, 20, 110, 52},
		enabled:        true,
		control:        true,
		focusable:      true,
	}

	node := Walk(el, 0, DefaultMaxDepth)

	if node.Name != "Save" || node.AutomationID != "saveButton" {
		t.Errorf("identity fields wrong: %+v", node)
	}
	if node.ControlType != "Button" {
		t.Errorf("expected control type Button, got %q", node.ControlType)
	}
	if node.LocalizedControlType != "button" || node.ClassName != "Button" {
		t.Errorf("type/class fields wrong: %+v", node)
	}
	if node.AcceleratorKey != "Ctrl+S" {
		t.Errorf("expected accelerator Ctrl+S, got %q", node.AcceleratorKey)
	}
	if node.BoundingRect != [4]float64{10, 20, 110, 52} {
		t.Errorf("unexpected rect: %v", node.BoundingRect)
	}
	if !node.IsEnabled || !node.IsControlElement || !node.IsKeyboardFocusable {
		t.Errorf("state flags wrong: %+v", node)
	}
	if node.Depth != 0 {
		t.Errorf("root depth should be 0, got %d", node.Depth)
	}
	if len(node.Children) != 0 {
		t.Errorf("expected no children, got %d", len(node.Children))
	}
}

func TestWalk_PropertyFailureYieldsDefaults(t *testing.T) {
	el := &fakeElement{
		name:        "ignored",
		controlType: ButtonControlTypeID,
		rect:        [4]float64{1, 2, 3, 4},
		enabled:     true,
		failProps: map[string]bool{
			"name": true, "control_type": true, "rect": true, "enabled": true,
		},
	}

	node := Walk(el, 0, DefaultMaxDepth)

	if node.Name != "" {
		t.Errorf("failed name read should default to empty, got %q", node.Name)
	}
	if node.ControlType != "Unknown" {
		t.Errorf("failed control type read should default to Unknown, got %q", node.ControlType)
	}
	if node.BoundingRect != [4]float64{} {
		t.Errorf("failed rect read should default to zeros, got %v", node.BoundingRect)
	}
	if node.IsEnabled {
		t.Error("failed enabled read should default to false")
	}
}

func TestWalk_OnePropertyFailureDoesNotAffectOthers(t *testing.T) {
	el := &fakeElement{
		name:      "Label",
		enabled:   true,
		failProps: map[string]bool{"automation_id": true},
	}
	node := Walk(el, 0, DefaultMaxDepth)
	if node.Name != "Label" || !node.IsEnabled {
		t.Errorf("unaffected properties should still be read: %+v", node)
	}
	if node.AutomationID != "" {
		t.Errorf("failed property should default, got %q", node.AutomationID)
	}
}

func TestWalk_DepthInvariant(t *testing.T) {
	root := deepChain(3)
	node := Walk(root, 0, DefaultMaxDepth)

	cur := node
	depth := 0
	for {
		if cur.Depth != depth {
			t.Fatalf("node at level %d has depth %d", depth, cur.Depth)
		}
		if len(cur.Children) == 0 {
			break
		}
		if len(cur.Children) != 1 {
			t.Fatalf("expected single child chain, got %d", len(cur.Children))
		}
		cur = cur.Children[0]
		depth++
	}
	if depth != 3 {
		t.Errorf("expected chain of depth 3, got %d", depth)
	}
}

func TestWalk_MaxDepthZeroHasNoChildren(t *testing.T) {
	root := deepChain(5)
	node := Walk(root, 0, 0)
	if len(node.Children) != 0 {
		t.Errorf("maxDepth 0 should yield no children, got %d", len(node.Children))
	}
}

func TestWalk_MaxDepthBoundsRecursion(t *testing.T) {
	root := deepChain(10)
	node := Walk(root, 0, 4)
	if got := node.MaxDepth(); got != 4 {
		t.Errorf("expected deepest node at depth 4, got %d", got)
	}
}

func TestWalk_ChildCap(t *testing.T) {
	children := make([]CachedElement, maxChildrenPerNode+100)
	for i := range children {
		children[i] = &fakeElement{controlType: ListItemControlTypeID}
	}
	root := &fakeElement{controlType: ListControlTypeID, children: children}

	node := Walk(root, 0, DefaultMaxDepth)
	if len(node.Children) != maxChildrenPerNode {
		t.Errorf("expected %d children after cap, got %d", maxChildrenPerNode, len(node.Children))
	}
}

func TestWalk_ChildEnumerationFailureYieldsLeaf(t *testing.T) {
	root := &fakeElement{
		controlType: PaneControlTypeID,
		childrenErr: errUnavailable,
	}
	node := Walk(root, 0, DefaultMaxDepth)
	if len(node.Children) != 0 {
		t.Errorf("child enumeration failure should yield zero children, got %d", len(node.Children))
	}
	if node.ControlType != "Pane" {
		t.Errorf("node itself should still be captured, got %+v", node)
	}
}

func TestWalk_PreservesChildOrder(t *testing.T) {
	root := &fakeElement{
		controlType: WindowControlTypeID,
		children: []CachedElement{
			&fakeElement{name: "first"},
			&fakeElement{name: "second"},
			&fakeElement{name: "third"},
		},
	}
	node := Walk(root, 0, DefaultMaxDepth)
	want := []string{"first", "second", "third"}
	if len(node.Children) != len(want) {
		t.Fatalf("expected %d children, got %d", len(want), len(node.Children))
	}
	for i, name := range want {
		if node.Children[i].Name != name {
			t.Errorf("child %d = %q, want %q", i, node.Children[i].Name, name)
		}
	}
}
