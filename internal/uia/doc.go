// Package uia captures point-in-time snapshots of Windows UI Automation
// accessibility trees.
//
// Each requested window is fetched with a single
// BuildCache(TreeScope_Subtree) round trip, then traversed purely from the
// local cache, so capture cost is one COM call per window regardless of tree
// size. Windows are captured in parallel, one worker goroutine per handle,
// and each worker initializes its own COM apartment; no COM reference ever
// crosses a goroutine boundary.
//
// On non-Windows platforms CaptureTree compiles but always returns an empty
// result.
package uia
