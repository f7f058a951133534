package system

import (
	"fmt"

	"github.com/lixenwraith/flapper/component"
	"github.com/lixenwraith/flapper/core"
	"github.com/lixenwraith/flapper/engine"
)

// mustPlayerKinetic resolves the registered player and its kinematics
// Panics unless exactly one player exists and the reference points at it
func mustPlayerKinetic(world *engine.World, player *engine.PlayerResource) (core.Entity, component.KineticComponent) {
	if player.Entity == 0 {
		panic("player: no player entity registered")
	}
	if n := world.Components.Player.CountEntities(); n != 1 {
		panic(fmt.Sprintf("player: expected exactly one player entity, found %d", n))
	}
	if !world.Components.Player.HasEntity(player.Entity) {
		panic(fmt.Sprintf("player: registered entity %d is not tagged as player", player.Entity))
	}
	kinetic, ok := world.Components.Kinetic.GetComponent(player.Entity)
	if !ok {
		panic(fmt.Sprintf("player: entity %d has no kinetic component", player.Entity))
	}
	return player.Entity, kinetic
}
