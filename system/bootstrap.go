package system

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/flapper/asset"
	"github.com/lixenwraith/flapper/component"
	"github.com/lixenwraith/flapper/core"
	"github.com/lixenwraith/flapper/engine"
	"github.com/lixenwraith/flapper/parameter"
	"github.com/lixenwraith/flapper/vmath"
)

// AssetRequester issues asynchronous sprite loads
type AssetRequester interface {
	Load(path string) asset.Handle
}

// ErrAlreadyBootstrapped is returned when a player is already registered
var ErrAlreadyBootstrapped = errors.New("world already bootstrapped")

// Bootstrap spawns the player and the obstacle pool, and queues their visuals on the loading gate
// Kinematic entities exist immediately; sprites attach once their assets report loaded
func Bootstrap(world *engine.World, gate *LoadingSystem, loader AssetRequester, manifest *asset.Manifest, rng *vmath.FastRand) error {
	player := engine.MustGetResource[*engine.PlayerResource](world.Resources)
	if player.Entity != 0 {
		return ErrAlreadyBootstrapped
	}

	paths := make(map[string]string, 3)
	for _, name := range []string{parameter.SpritePlayer, parameter.SpritePipeCap, parameter.SpritePipeSegment} {
		p, err := manifest.Path(name)
		if err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
		paths[name] = p
	}

	cmd := engine.NewCommands(world)
	comps := world.Components

	playerSprite := loader.Load(paths[parameter.SpritePlayer])
	eb := cmd.Spawn()
	engine.With(eb, comps.Kinetic, component.KineticComponent{Kinetic: core.Kinetic{
		Acceleration: vmath.V3Scale(vmath.V3UnitY, parameter.Gravity),
	}})
	engine.With(eb, comps.Player, component.PlayerComponent{})
	engine.With(eb, comps.Transform, component.TransformComponent{})
	player.Entity = eb.Build()

	gate.Enqueue(LoadBundle{
		Handles: []asset.Handle{playerSprite},
		Request: SpawnRequest{Kind: SpawnPlayerVisual, Target: player.Entity},
	})

	capSprite := loader.Load(paths[parameter.SpritePipeCap])
	segSprite := loader.Load(paths[parameter.SpritePipeSegment])
	for i := 0; i < parameter.PipeCount; i++ {
		e := SpawnObstacle(cmd, i, parameter.RightBorder+float64(i)*parameter.PipeGap, rng)
		gate.Enqueue(LoadBundle{
			Handles: []asset.Handle{capSprite, segSprite},
			Request: SpawnRequest{Kind: SpawnObstacleVisual, Target: e},
		})
	}

	log.Printf("bootstrap: player %d, %d obstacles from x=%.0f gap=%.0f",
		player.Entity, parameter.PipeCount, parameter.RightBorder, parameter.PipeGap)
	return nil
}

// SpawnObstacle creates one pooled obstacle at x with a random vertical offset in the configured range
func SpawnObstacle(cmd engine.Commands, slot int, x float64, rng *vmath.FastRand) core.Entity {
	eb := cmd.Spawn()
	engine.With(eb, eb.World().Components.Kinetic, component.KineticComponent{Kinetic: core.Kinetic{
		Position: vmath.Vec3{
			X: x,
			Y: rng.Range(-parameter.PipeVerticalRange, parameter.PipeVerticalRange),
		},
		Velocity:     vmath.V3Scale(vmath.V3UnitX, -parameter.PipeStartSpeed),
		Acceleration: vmath.V3Scale(vmath.V3UnitX, -parameter.PipeAcceleration),
	}})
	engine.With(eb, eb.World().Components.Obstacle, component.ObstacleComponent{Slot: slot})
	return eb.Build()
}
