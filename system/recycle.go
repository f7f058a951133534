package system

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/flapper/engine"
	"github.com/lixenwraith/flapper/parameter"
	"github.com/lixenwraith/flapper/status"
	"github.com/lixenwraith/flapper/vmath"
)

// RecycleSystem keeps the fixed obstacle pool cycling
// An obstacle past the left border is teleported one gap beyond the current rightmost obstacle
type RecycleSystem struct {
	world *engine.World

	leftBorder float64
	gap        float64

	statRecycled *atomic.Int64
}

// NewRecycleSystem creates a new recycle system
func NewRecycleSystem(world *engine.World) *RecycleSystem {
	reg := engine.MustGetResource[*status.Registry](world.Resources)
	return &RecycleSystem{
		world:        world,
		leftBorder:   parameter.LeftBorder,
		gap:          parameter.PipeGap,
		statRecycled: reg.Ints.Get(status.KeyRecycled),
	}
}

// Name returns system's name
func (s *RecycleSystem) Name() string {
	return "recycle"
}

// Update repositions crossed obstacles; velocity and acceleration are kept
// The rightmost position advances with every recycled obstacle so same-tick recycles stack left to right
func (s *RecycleSystem) Update() {
	kinetics := s.world.Components.Kinetic
	pool := s.world.Components.Obstacle.GetAllEntities()
	if len(pool) == 0 {
		panic("recycle: obstacle pool is empty")
	}

	var rightmost vmath.Vec3
	for i, e := range pool {
		k, ok := kinetics.GetComponent(e)
		if !ok {
			panic(fmt.Sprintf("recycle: obstacle %d has no kinetic component", e))
		}
		if i == 0 || k.Position.X > rightmost.X {
			rightmost = k.Position
		}
	}

	for _, e := range pool {
		k, _ := kinetics.GetComponent(e)
		if k.Position.X >= s.leftBorder {
			continue
		}
		rightmost.X += s.gap
		k.Position = rightmost
		kinetics.SetComponent(e, k)
		s.statRecycled.Add(1)
	}
}
