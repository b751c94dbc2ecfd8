package model

// FlatNode is a tree node with a path breadcrumb instead of children.
type FlatNode struct {
	Path             string     `yaml:"path"                  json:"path"`
	ControlType      string     `yaml:"control_type"          json:"control_type"`
	Name             string     `yaml:"name,omitempty"        json:"name,omitempty"`
	AutomationID     string     `yaml:"automation_id,omitempty" json:"automation_id,omitempty"`
	ClassName        string     `yaml:"class_name,omitempty"  json:"class_name,omitempty"`
	BoundingRect     [4]float64 `yaml:"bounding_rect"         json:"bounding_rect"`
	Depth            int        `yaml:"depth"                 json:"depth"`
	HasKeyboardFocus bool       `yaml:"has_keyboard_focus,omitempty" json:"has_keyboard_focus,omitempty"`
	IsOffscreen      bool       `yaml:"is_offscreen,omitempty" json:"is_offscreen,omitempty"`
}

// Flatten converts a captured tree into a flat list. Each node gets a path
// string showing its location in the tree using control-type names joined
// with " > ".
func Flatten(nodes []TreeNode) []FlatNode {
	var result []FlatNode
	for i := range nodes {
		flattenRecursive(&nodes[i], "", &result)
	}
	return result
}

func flattenRecursive(n *TreeNode, parentPath string, result *[]FlatNode) {
	currentPath := n.ControlType
	if parentPath != "" {
		currentPath = parentPath + " > " + n.ControlType
	}

	*result = append(*result, FlatNode{
		Path:             currentPath,
		ControlType:      n.ControlType,
		Name:             n.Name,
		AutomationID:     n.AutomationID,
		ClassName:        n.ClassName,
		BoundingRect:     n.BoundingRect,
		Depth:            n.Depth,
		HasKeyboardFocus: n.HasKeyboardFocus,
		IsOffscreen:      n.IsOffscreen,
	})

	for i := range n.Children {
		flattenRecursive(&n.Children[i], currentPath, result)
	}
}
