package system

import (
	"github.com/lixenwraith/flapper/component"
	"github.com/lixenwraith/flapper/engine"
	"github.com/lixenwraith/flapper/parameter"
	"github.com/lixenwraith/flapper/physics"
	"github.com/lixenwraith/flapper/status"
)

// OrientationSystem derives the player's visual tilt from its vertical velocity
// Output goes to TransformComponent only; nothing in the simulation reads it back
type OrientationSystem struct {
	world  *engine.World
	player *engine.PlayerResource

	statTilt *status.AtomicFloat
}

// NewOrientationSystem creates a new orientation system
func NewOrientationSystem(world *engine.World) *OrientationSystem {
	reg := engine.MustGetResource[*status.Registry](world.Resources)
	return &OrientationSystem{
		world:    world,
		player:   engine.MustGetResource[*engine.PlayerResource](world.Resources),
		statTilt: reg.Floats.Get(status.KeyPlayerTilt),
	}
}

// Name returns system's name
func (s *OrientationSystem) Name() string {
	return "orientation"
}

// Update re-derives the tilt from current velocity, never accumulating
func (s *OrientationSystem) Update() {
	entity, kinetic := mustPlayerKinetic(s.world, s.player)
	angle := physics.Tilt(kinetic.Velocity.Y, parameter.UpSpeed, parameter.AngleAmplitude)
	s.world.Components.Transform.SetComponent(entity, component.TransformComponent{Rotation: angle})
	s.statTilt.Set(angle)
}
