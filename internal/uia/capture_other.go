//go:build !windows

package uia

import "github.com/uiasnap/uiasnap/internal/model"

// captureWindow always fails off Windows; CaptureTree consequently returns
// an empty result, matching the "absent, not an error" policy.
func captureWindow(handle int64, maxDepth int) (model.TreeNode, bool) {
	return model.TreeNode{}, false
}
