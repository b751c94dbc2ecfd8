package uia

// UIA control type identifiers (UIAutomationClient.h, UIA_ControlTypeIds).
const (
	ButtonControlTypeID       int64 = 50000
	CalendarControlTypeID     int64 = 50001
	CheckBoxControlTypeID     int64 = 50002
	ComboBoxControlTypeID     int64 = 50003
	EditControlTypeID         int64 = 50004
	HyperlinkControlTypeID    int64 = 50005
	ImageControlTypeID        int64 = 50006
	ListItemControlTypeID     int64 = 50007
	ListControlTypeID         int64 = 50008
	MenuControlTypeID         int64 = 50009
	MenuBarControlTypeID      int64 = 50010
	MenuItemControlTypeID     int64 = 50011
	ProgressBarControlTypeID  int64 = 50012
	RadioButtonControlTypeID  int64 = 50013
	ScrollBarControlTypeID    int64 = 50014
	SliderControlTypeID       int64 = 50015
	SpinnerControlTypeID      int64 = 50016
	StatusBarControlTypeID    int64 = 50017
	TabControlTypeID          int64 = 50018
	TabItemControlTypeID      int64 = 50019
	TextControlTypeID         int64 = 50020
	ToolBarControlTypeID      int64 = 50021
	ToolTipControlTypeID      int64 = 50022
	TreeControlTypeID         int64 = 50023
	TreeItemControlTypeID     int64 = 50024
	CustomControlTypeID       int64 = 50025
	GroupControlTypeID        int64 = 50026
	ThumbControlTypeID        int64 = 50027
	DataGridControlTypeID     int64 = 50028
	DataItemControlTypeID     int64 = 50029
	DocumentControlTypeID     int64 = 50030
	SplitButtonControlTypeID  int64 = 50031
	WindowControlTypeID       int64 = 50032
	PaneControlTypeID         int64 = 50033
	HeaderControlTypeID       int64 = 50034
	HeaderItemControlTypeID   int64 = 50035
	TableControlTypeID        int64 = 50036
	TitleBarControlTypeID     int64 = 50037
	SeparatorControlTypeID    int64 = 50038
	SemanticZoomControlTypeID int64 = 50039
	AppBarControlTypeID       int64 = 50040
)

var controlTypeNames = map[int64]string{
	ButtonControlTypeID:       "Button",
	CalendarControlTypeID:     "Calendar",
	CheckBoxControlTypeID:     "CheckBox",
	ComboBoxControlTypeID:     "ComboBox",
	EditControlTypeID:         "Edit",
	HyperlinkControlTypeID:    "Hyperlink",
	ImageControlTypeID:        "Image",
	ListItemControlTypeID:     "ListItem",
	ListControlTypeID:         "List",
	MenuControlTypeID:         "Menu",
	MenuBarControlTypeID:      "MenuBar",
	MenuItemControlTypeID:     "MenuItem",
	ProgressBarControlTypeID:  "ProgressBar",
	RadioButtonControlTypeID:  "RadioButton",
	ScrollBarControlTypeID:    "ScrollBar",
	SliderControlTypeID:       "Slider",
	SpinnerControlTypeID:      "Spinner",
	StatusBarControlTypeID:    "StatusBar",
	TabControlTypeID:          "Tab",
	TabItemControlTypeID:      "TabItem",
	TextControlTypeID:         "Text",
	ToolBarControlTypeID:      "ToolBar",
	ToolTipControlTypeID:      "ToolTip",
	TreeControlTypeID:         "Tree",
	TreeItemControlTypeID:     "TreeItem",
	CustomControlTypeID:       "Custom",
	GroupControlTypeID:        "Group",
	ThumbControlTypeID:        "Thumb",
	DataGridControlTypeID:     "DataGrid",
	DataItemControlTypeID:     "DataItem",
	DocumentControlTypeID:     "Document",
	SplitButtonControlTypeID:  "SplitButton",
	WindowControlTypeID:       "Window",
	PaneControlTypeID:         "Pane",
	HeaderControlTypeID:       "Header",
	HeaderItemControlTypeID:   "HeaderItem",
	TableControlTypeID:        "Table",
	TitleBarControlTypeID:     "TitleBar",
	SeparatorControlTypeID:    "Separator",
	SemanticZoomControlTypeID: "SemanticZoom",
	AppBarControlTypeID:       "AppBar",
}

// ControlTypeName maps a UIA control type identifier to its human-readable
// name. Unknown identifiers map to "Unknown".
func ControlTypeName(id int64) string {
	if name, ok := controlTypeNames[id]; ok {
		return name
	}
	return "Unknown"
}
