package draw

// Priority bases for layered drawing. Higher values replay later and end up on top.
// Layers are 1<<20 apart so a batch of up to that many commands stays within its layer.
const (
	// ZBackground is for full-screen clears and backdrop fills.
	ZBackground uint = 0

	// ZWorld is for map tiles and terrain.
	ZWorld uint = 1 << 20

	// ZEntities is for actors and items drawn over the map.
	ZEntities uint = 2 << 20

	// ZEffects is for particles and transient highlights.
	ZEffects uint = 3 << 20

	// ZUI is for panels, boxes and status bars.
	ZUI uint = 8 << 20

	// ZOverlay is for tooltips, menus and messages above the UI.
	ZOverlay uint = 16 << 20

	// ZDebug is for diagnostics that must never be hidden.
	ZDebug uint = 32 << 20
)
