package game

// DebugState holds global debug flags that persist across camera resets
type DebugState struct {
	ShowStats  bool // Frame rate, pool usage and camera pose overlay
	ShowBounds bool // Picking spheres drawn as outlines
}

// Global debug state instance
var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
