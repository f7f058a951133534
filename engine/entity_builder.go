package engine

import (
	"github.com/lixenwraith/flapper/component"
	"github.com/lixenwraith/flapper/core"
	"github.com/lixenwraith/flapper/vmath"
)

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components
// The entity ID is reserved upfront; components are written as they are added
//
// Example usage:
//
//	entity := With(world.NewEntity(), world.Components.Player, component.PlayerComponent{}).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// With adds a component of type T to the entity being built
// Panics if called after Build()
func With[T any](eb *EntityBuilder, store *Store[T], comp T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.SetComponent(eb.entity, comp)
	return eb
}

// ChildOf attaches the entity under parent at a local offset
func ChildOf(eb *EntityBuilder, parent core.Entity, offset vmath.Vec3) *EntityBuilder {
	return With(eb, eb.world.Components.Member, component.MemberComponent{
		Parent: parent,
		Offset: offset,
	})
}

// Build finalizes entity construction and returns the entity ID
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}

// World returns the world the entity is being built in
func (eb *EntityBuilder) World() *World {
	return eb.world
}
