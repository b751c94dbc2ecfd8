package uia

import (
	"sync"

	"github.com/uiasnap/uiasnap/internal/model"
)

const (
	// DefaultMaxDepth is used when the caller does not request a depth.
	DefaultMaxDepth = 50

	// MaxTreeDepth is the hard ceiling on traversal depth. Each recursion
	// level costs roughly 1-2 KB of stack on a worker goroutine, so 200
	// levels stays comfortably bounded.
	MaxTreeDepth = 200
)

// ClampDepth bounds a requested max depth to [0, MaxTreeDepth].
func ClampDepth(maxDepth int) int {
	if maxDepth < 0 {
		return 0
	}
	if maxDepth > MaxTreeDepth {
		return MaxTreeDepth
	}
	return maxDepth
}

// captureFn captures one window's subtree. ok is false when the window no
// longer exists, denies access, or fails at any step.
type captureFn func(handle int64, maxDepth int) (model.TreeNode, bool)

// CaptureTree captures the accessibility tree for each of the given window
// handles, in parallel, and returns the successful snapshots in input order.
//
// Handles that fail at any stage (destroyed windows, access denied, COM
// failures) are silently absent from the result; a window closing between
// enumeration and capture is expected, not exceptional. Zero handles yields
// an empty slice without spawning any worker.
func CaptureTree(handles []int64, maxDepth int) []model.TreeNode {
	return captureAll(handles, maxDepth, captureWindow)
}

// captureAll is the fork-join dispatcher. Each nonzero handle gets its own
// worker goroutine running capture; results land in per-index slots so the
// final filter preserves input order among successes. The capture function
// is a parameter so the dispatch logic is testable without a live desktop.
func captureAll(handles []int64, maxDepth int, capture captureFn) []model.TreeNode {
	maxDepth = ClampDepth(maxDepth)

	if len(handles) == 0 {
		return []model.TreeNode{}
	}

	results := make([]*model.TreeNode, len(handles))
	var wg sync.WaitGroup
	for i, handle := range handles {
		if handle == 0 {
			continue
		}
		wg.Add(1)
		go func(slot int, handle int64) {
			defer wg.Done()
			if node, ok := capture(handle, maxDepth); ok {
				results[slot] = &node
			}
		}(i, handle)
	}
	wg.Wait()

	out := make([]model.TreeNode, 0, len(handles))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}
