package parameter

// Reference viewport in world units, origin at center
const (
	ViewportWidth  = 1280.0
	ViewportHeight = 720.0
	// BorderMargin keeps spawn and recycle lines outside the visible area
	BorderMargin = 100.0
)

// Horizontal thresholds derived from the viewport
var (
	// RightBorder is where the pool starts when the world is bootstrapped
	RightBorder = ViewportWidth/2 + BorderMargin
	// LeftBorder is the x below which an obstacle is recycled
	LeftBorder = -ViewportWidth/2 - BorderMargin
)
