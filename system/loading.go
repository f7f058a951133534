package system

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/flapper/asset"
	"github.com/lixenwraith/flapper/component"
	"github.com/lixenwraith/flapper/core"
	"github.com/lixenwraith/flapper/engine"
	"github.com/lixenwraith/flapper/parameter"
	"github.com/lixenwraith/flapper/status"
	"github.com/lixenwraith/flapper/vmath"
)

// SpawnKind selects what a resolved load bundle attaches to the world
type SpawnKind uint8

const (
	SpawnPlayerVisual SpawnKind = iota + 1
	SpawnObstacleVisual
)

func (k SpawnKind) String() string {
	switch k {
	case SpawnPlayerVisual:
		return "player-visual"
	case SpawnObstacleVisual:
		return "obstacle-visual"
	default:
		return fmt.Sprintf("spawn-kind(%d)", uint8(k))
	}
}

// SpawnRequest is a deferred spawn with its parameters
type SpawnRequest struct {
	Kind SpawnKind
	// Target is the existing entity the visuals are attached to
	Target core.Entity
}

// LoadBundle gates a spawn request on a set of asset handles
// Handle order is part of the request contract:
//   - SpawnPlayerVisual: [sprite]
//   - SpawnObstacleVisual: [cap, segment]
type LoadBundle struct {
	Handles []asset.Handle
	Request SpawnRequest
}

// LoadingSystem holds pending bundles and dispatches each exactly once when all its handles are loaded
// A bundle with a failed handle stays pending forever
type LoadingSystem struct {
	world  *engine.World
	assets *engine.AssetResource
	cmd    engine.Commands

	pending []LoadBundle

	statPending  *atomic.Int64
	statResolved *atomic.Int64
}

// NewLoadingSystem creates the deferred loading gate
func NewLoadingSystem(world *engine.World) *LoadingSystem {
	reg := engine.MustGetResource[*status.Registry](world.Resources)
	return &LoadingSystem{
		world:        world,
		assets:       engine.MustGetResource[*engine.AssetResource](world.Resources),
		cmd:          engine.NewCommands(world),
		statPending:  reg.Ints.Get(status.KeyGatePending),
		statResolved: reg.Ints.Get(status.KeyGateResolved),
	}
}

// Name returns system's name
func (s *LoadingSystem) Name() string {
	return "loading"
}

// Enqueue appends a bundle to the pending list
func (s *LoadingSystem) Enqueue(b LoadBundle) {
	s.pending = append(s.pending, b)
	s.statPending.Store(int64(len(s.pending)))
}

// PendingCount returns the number of unresolved bundles
func (s *LoadingSystem) PendingCount() int {
	return len(s.pending)
}

// Update polls every pending bundle in list order
// A panicking dispatch aborts the tick; bundles already removed are not restored
func (s *LoadingSystem) Update() {
	i := 0
	for i < len(s.pending) {
		b := s.pending[i]
		if !s.ready(b) {
			i++
			continue
		}

		// Remove before dispatch so the bundle can never fire twice
		s.pending = append(s.pending[:i], s.pending[i+1:]...)
		s.statPending.Store(int64(len(s.pending)))

		s.dispatch(b)
		s.statResolved.Add(1)
		log.Printf("gate: resolved %s for entity %d", b.Request.Kind, b.Request.Target)
	}
}

func (s *LoadingSystem) ready(b LoadBundle) bool {
	for _, h := range b.Handles {
		if s.assets.Provider.Status(h) != asset.StatusLoaded {
			return false
		}
	}
	return true
}

func (s *LoadingSystem) dispatch(b LoadBundle) {
	switch b.Request.Kind {
	case SpawnPlayerVisual:
		requireHandles(b, 1)
		s.spawnPlayerVisual(b.Request.Target, b.Handles[0])
	case SpawnObstacleVisual:
		requireHandles(b, 2)
		s.spawnObstacleVisual(b.Request.Target, b.Handles[0], b.Handles[1])
	default:
		panic(fmt.Sprintf("gate: unknown spawn request %s", b.Request.Kind))
	}
}

func requireHandles(b LoadBundle, n int) {
	if len(b.Handles) != n {
		panic(fmt.Sprintf("gate: %s needs %d handles, got %d", b.Request.Kind, n, len(b.Handles)))
	}
}

func (s *LoadingSystem) spawnPlayerVisual(player core.Entity, sprite asset.Handle) {
	engine.With(s.cmd.Entity(player), s.world.Components.Sprite, component.SpriteComponent{
		Handle: sprite,
		Size:   vmath.Vec3{X: parameter.PlayerWidth, Y: parameter.PlayerHeight},
	})
}

// spawnObstacleVisual attaches a lower and an upper barrier, each a cap followed by body segments
// growing away from the window
func (s *LoadingSystem) spawnObstacleVisual(obstacle core.Entity, capSprite, segSprite asset.Handle) {
	capOffset := (parameter.PipeCapHeight + parameter.PipeWindowSize) / 2
	sprites := s.world.Components.Sprite

	barriers := []struct {
		dir  float64 // -1 lower, +1 upper
		flip bool
	}{
		{dir: -1, flip: false},
		{dir: 1, flip: true},
	}

	s.cmd.Children(obstacle, func(p engine.ChildSpawner) {
		for _, b := range barriers {
			barrier := engine.With(p.Spawn(vmath.V3Scale(vmath.V3UnitY, b.dir*capOffset)), sprites, component.SpriteComponent{
				Handle: capSprite,
				Size:   vmath.Vec3{X: parameter.PipeWidth, Y: parameter.PipeCapHeight},
				FlipY:  b.flip,
			})
			p.SpawnWithChildren(barrier, func(segs engine.ChildSpawner) {
				for i := 0; i < parameter.PipeSegmentCount; i++ {
					offset := vmath.V3Scale(vmath.V3UnitY, b.dir*parameter.PipeSegmentHeight*float64(1+2*i)/2)
					engine.With(segs.Spawn(offset), sprites, component.SpriteComponent{
						Handle: segSprite,
						Size:   vmath.Vec3{X: parameter.PipeWidth, Y: parameter.PipeSegmentHeight},
						FlipY:  b.flip,
					}).Build()
				}
			})
		}
	})
}
