package uia

import "github.com/uiasnap/uiasnap/internal/model"

// maxChildrenPerNode caps how many children are materialized per node, to
// prevent memory exhaustion on pathological trees (e.g. a grid with 100k
// cells). Excess children are silently truncated.
const maxChildrenPerNode = 512

// Walk materializes an owned snapshot of the cached subtree rooted at el.
//
// It reads only already-cached state, never issuing a remote call. A
// property that fails to read degrades to its zero-value default rather than
// aborting the capture. Children are enumerated in provider order up to
// maxChildrenPerNode, and only while depth < maxDepth.
func Walk(el CachedElement, depth, maxDepth int) model.TreeNode {
	node := model.TreeNode{
		ControlType: "Unknown",
		Depth:       depth,
		Children:    []model.TreeNode{},
	}

	if v, err := el.CachedName(); err == nil {
		node.Name = v
	}
	if v, err := el.CachedAutomationID(); err == nil {
		node.AutomationID = v
	}
	if id, err := el.CachedControlType(); err == nil {
		node.ControlType = ControlTypeName(id)
	}
	if v, err := el.CachedLocalizedControlType(); err == nil {
		node.LocalizedControlType = v
	}
	if v, err := el.CachedClassName(); err == nil {
		node.ClassName = v
	}
	if v, err := el.CachedAcceleratorKey(); err == nil {
		node.AcceleratorKey = v
	}
	if r, err := el.CachedBoundingRectangle(); err == nil {
		node.BoundingRect = r
	}
	if v, err := el.CachedIsOffscreen(); err == nil {
		node.IsOffscreen = v
	}
	if v, err := el.CachedIsEnabled(); err == nil {
		node.IsEnabled = v
	}
	if v, err := el.CachedIsControlElement(); err == nil {
		node.IsControlElement = v
	}
	if v, err := el.CachedHasKeyboardFocus(); err == nil {
		node.HasKeyboardFocus = v
	}
	if v, err := el.CachedIsKeyboardFocusable(); err == nil {
		node.IsKeyboardFocusable = v
	}

	if depth >= maxDepth {
		return node
	}

	children, err := el.CachedChildren()
	if err != nil || len(children) == 0 {
		return node
	}
	if len(children) > maxChildrenPerNode {
		children = children[:maxChildrenPerNode]
	}
	for _, child := range children {
		node.Children = append(node.Children, Walk(child, depth+1, maxDepth))
	}
	return node
}
