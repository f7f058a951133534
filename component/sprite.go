package component

import (
	"github.com/lixenwraith/flapper/asset"
	"github.com/lixenwraith/flapper/vmath"
)

// SpriteComponent attaches a loaded sprite to an entity
type SpriteComponent struct {
	Handle asset.Handle
	// Size is the drawn footprint in world units, centered on the entity
	Size  vmath.Vec3
	FlipY bool
}

// TransformComponent holds render-only orientation, never read by physics
type TransformComponent struct {
	// Rotation around Z in radians, counter-clockwise
	Rotation float64
}
