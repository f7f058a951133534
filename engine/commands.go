package engine

import (
	"github.com/lixenwraith/flapper/core"
	"github.com/lixenwraith/flapper/vmath"
)

// Commands is the world-mutation surface handed to bootstrap and resolved load bundles
type Commands struct {
	world *World
}

// NewCommands binds a command surface to w
func NewCommands(w *World) Commands {
	return Commands{world: w}
}

// Spawn starts a new root entity
func (c Commands) Spawn() *EntityBuilder {
	return c.world.NewEntity()
}

// Entity returns a builder adding components to an existing entity
func (c Commands) Entity(e core.Entity) *EntityBuilder {
	return &EntityBuilder{world: c.world, entity: e}
}

// SpawnWithChildren builds eb and lets children attach entities beneath it
func (c Commands) SpawnWithChildren(eb *EntityBuilder, children func(ChildSpawner)) core.Entity {
	e := eb.Build()
	children(ChildSpawner{cmd: c, parent: e})
	return e
}

// Children attaches entities beneath an existing parent
func (c Commands) Children(parent core.Entity, children func(ChildSpawner)) {
	children(ChildSpawner{cmd: c, parent: parent})
}

// ChildSpawner spawns entities pre-attached to one parent
type ChildSpawner struct {
	cmd    Commands
	parent core.Entity
}

// Spawn starts a child at a local offset from the parent
func (p ChildSpawner) Spawn(offset vmath.Vec3) *EntityBuilder {
	return ChildOf(p.cmd.Spawn(), p.parent, offset)
}

// SpawnWithChildren builds a child and opens a nested level beneath it
func (p ChildSpawner) SpawnWithChildren(eb *EntityBuilder, children func(ChildSpawner)) core.Entity {
	return p.cmd.SpawnWithChildren(eb, children)
}
