package system

import (
	"github.com/lixenwraith/flapper/engine"
	"github.com/lixenwraith/flapper/physics"
)

// MotionSystem integrates every kinetic entity in two phases
// All velocities advance from acceleration before any position advances from velocity
type MotionSystem struct {
	world *engine.World
	time  *engine.TimeResource
}

// NewMotionSystem creates a new motion system
func NewMotionSystem(world *engine.World) *MotionSystem {
	return &MotionSystem{
		world: world,
		time:  engine.MustGetResource[*engine.TimeResource](world.Resources),
	}
}

// Name returns system's name
func (s *MotionSystem) Name() string {
	return "motion"
}

// Update runs the acceleration phase then the velocity phase
func (s *MotionSystem) Update() {
	dt := s.time.DeltaTime.Seconds()
	if dt == 0 {
		return
	}

	store := s.world.Components.Kinetic
	entities := store.GetAllEntities()

	for _, e := range entities {
		k, ok := store.GetComponent(e)
		if !ok {
			continue
		}
		physics.ApplyAcceleration(&k.Kinetic, dt)
		store.SetComponent(e, k)
	}

	for _, e := range entities {
		k, ok := store.GetComponent(e)
		if !ok {
			continue
		}
		physics.ApplyVelocity(&k.Kinetic, dt)
		store.SetComponent(e, k)
	}
}
