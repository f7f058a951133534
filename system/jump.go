package system

import (
	"github.com/lixenwraith/flapper/engine"
	"github.com/lixenwraith/flapper/parameter"
	"github.com/lixenwraith/flapper/physics"
)

// JumpSystem maps the jump trigger to the player's vertical velocity
// The impulse overwrites any existing vertical velocity, no momentum blending
type JumpSystem struct {
	world  *engine.World
	input  *engine.InputResource
	player *engine.PlayerResource

	upSpeed float64
}

// NewJumpSystem creates a new jump system
func NewJumpSystem(world *engine.World) *JumpSystem {
	return &JumpSystem{
		world:   world,
		input:   engine.MustGetResource[*engine.InputResource](world.Resources),
		player:  engine.MustGetResource[*engine.PlayerResource](world.Resources),
		upSpeed: parameter.UpSpeed,
	}
}

// Name returns system's name
func (s *JumpSystem) Name() string {
	return "jump"
}

// Update validates the player every tick and applies the impulse when the trigger is active
func (s *JumpSystem) Update() {
	entity, kinetic := mustPlayerKinetic(s.world, s.player)
	if !s.input.Jump {
		return
	}
	physics.SetImpulseY(&kinetic.Kinetic, s.upSpeed)
	s.world.Components.Kinetic.SetComponent(entity, kinetic)
}
