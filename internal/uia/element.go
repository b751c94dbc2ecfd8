package uia

// CachedElement is one already-fetched element in a cached accessibility
// subtree. Every method reads local cache state populated by the batched
// subtree fetch; none issues a remote call.
//
// The walker treats any returned error as "property unavailable" and
// substitutes a documented default, so implementations are free to return
// errors per-property without aborting a capture.
type CachedElement interface {
	CachedName() (string, error)
	CachedAutomationID() (string, error)
	CachedControlType() (int64, error)
	CachedLocalizedControlType() (string, error)
	CachedClassName() (string, error)
	CachedAcceleratorKey() (string, error)
	CachedBoundingRectangle() ([4]float64, error)
	CachedIsOffscreen() (bool, error)
	CachedIsEnabled() (bool, error)
	CachedIsControlElement() (bool, error)
	CachedHasKeyboardFocus() (bool, error)
	CachedIsKeyboardFocusable() (bool, error)

	// CachedChildren returns the element's cached children in
	// provider-reported order.
	CachedChildren() ([]CachedElement, error)
}
