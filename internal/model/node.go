package model

// TreeNode is an owned snapshot of one UI Automation element and its
// captured descendants. It holds no live COM references, so it is safe to
// hand across goroutines and to serialize as-is.
//
// BoundingRect is [left, top, right, bottom] in screen pixels. Children
// preserve the provider-reported order, which is meaningful for traversal
// but not guaranteed to match visual order.
type TreeNode struct {
	Name                 string     `yaml:"name"                   json:"name"`
	AutomationID         string     `yaml:"automation_id"          json:"automation_id"`
	ControlType          string     `yaml:"control_type"           json:"control_type"`
	LocalizedControlType string     `yaml:"localized_control_type" json:"localized_control_type"`
	ClassName            string     `yaml:"class_name"             json:"class_name"`
	BoundingRect         [4]float64 `yaml:"bounding_rect"          json:"bounding_rect"`
	IsOffscreen          bool       `yaml:"is_offscreen"           json:"is_offscreen"`
	IsEnabled            bool       `yaml:"is_enabled"             json:"is_enabled"`
	IsControlElement     bool       `yaml:"is_control_element"     json:"is_control_element"`
	HasKeyboardFocus     bool       `yaml:"has_keyboard_focus"     json:"has_keyboard_focus"`
	IsKeyboardFocusable  bool       `yaml:"is_keyboard_focusable"  json:"is_keyboard_focusable"`
	AcceleratorKey       string     `yaml:"accelerator_key"        json:"accelerator_key"`
	Depth                int        `yaml:"depth"                  json:"depth"`
	Children             []TreeNode `yaml:"children"               json:"children"`
}

// Count returns the total number of nodes in the subtree rooted at n,
// including n itself.
func (n *TreeNode) Count() int {
	total := 1
	for i := range n.Children {
		total += n.Children[i].Count()
	}
	return total
}

// MaxDepth returns the largest Depth value found in the subtree rooted at n.
func (n *TreeNode) MaxDepth() int {
	deepest := n.Depth
	for i := range n.Children {
		if d := n.Children[i].MaxDepth(); d > deepest {
			deepest = d
		}
	}
	return deepest
}
