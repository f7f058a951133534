package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/flapper/engine"
	"github.com/lixenwraith/flapper/status"
)

// RegisterResources installs the resources every simulation system expects
func RegisterResources(world *engine.World, assets engine.AssetProvider, reg *status.Registry) {
	engine.AddResource(world.Resources, &engine.TimeResource{})
	engine.AddResource(world.Resources, &engine.InputResource{})
	engine.AddResource(world.Resources, &engine.PlayerResource{})
	engine.AddResource(world.Resources, &engine.AssetResource{Provider: assets})
	engine.AddResource(world.Resources, reg)
}

// Simulation owns the systems and runs them in a fixed order each tick
type Simulation struct {
	world *engine.World
	time  *engine.TimeResource
	input *engine.InputResource

	Loading     *LoadingSystem
	Jump        *JumpSystem
	Motion      *MotionSystem
	Orientation *OrientationSystem
	Recycle     *RecycleSystem

	statTicks   *atomic.Int64
	statElapsed *status.AtomicFloat
}

// NewSimulation builds all systems; resources must be registered first
func NewSimulation(world *engine.World) *Simulation {
	reg := engine.MustGetResource[*status.Registry](world.Resources)
	return &Simulation{
		world:       world,
		time:        engine.MustGetResource[*engine.TimeResource](world.Resources),
		input:       engine.MustGetResource[*engine.InputResource](world.Resources),
		Loading:     NewLoadingSystem(world),
		Jump:        NewJumpSystem(world),
		Motion:      NewMotionSystem(world),
		Orientation: NewOrientationSystem(world),
		Recycle:     NewRecycleSystem(world),
		statTicks:   reg.Ints.Get(status.KeyTicks),
		statElapsed: reg.Floats.Get(status.KeyElapsed),
	}
}

// Systems returns the systems in tick order
func (s *Simulation) Systems() []engine.System {
	return []engine.System{s.Loading, s.Jump, s.Motion, s.Orientation, s.Recycle}
}

// Tick advances the world by dt with the sampled jump trigger
// Order: gate, jump impulse, acceleration and velocity phases, tilt, recycling
// Negative dt is treated as zero
func (s *Simulation) Tick(dt time.Duration, jump bool) {
	if dt < 0 {
		dt = 0
	}
	s.time.Update(dt)
	s.input.Jump = jump

	s.Loading.Update()
	s.Jump.Update()
	s.Motion.Update()
	s.Orientation.Update()
	s.Recycle.Update()

	s.statTicks.Add(1)
	s.statElapsed.Set(s.time.Elapsed.Seconds())
}
