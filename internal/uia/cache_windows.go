//go:build windows

package uia

// cachedProperties is exactly the set of properties Walk reads. Registering
// them on the cache request is what turns O(node-count) cross-process
// property reads into a single batched fetch per window.
var cachedProperties = []int{
	namePropertyID,
	automationIDPropertyID,
	controlTypePropertyID,
	localizedControlTypePropertyID,
	classNamePropertyID,
	boundingRectanglePropertyID,
	isOffscreenPropertyID,
	isEnabledPropertyID,
	isControlElementPropertyID,
	hasKeyboardFocusPropertyID,
	isKeyboardFocusablePropertyID,
	acceleratorKeyPropertyID,
}

// buildCacheRequest constructs the per-capture fetch spec: subtree scope
// plus the walker's property set. The returned request is owned by the
// caller and must be released after the round trip it enables.
func buildCacheRequest(auto *iUIAutomation) (*iUIAutomationCacheRequest, error) {
	req, err := auto.createCacheRequest()
	if err != nil {
		return nil, err
	}
	if err := req.setTreeScope(treeScopeSubtree); err != nil {
		req.Release()
		return nil, err
	}
	for _, prop := range cachedProperties {
		if err := req.addProperty(prop); err != nil {
			req.Release()
			return nil, err
		}
	}
	return req, nil
}
