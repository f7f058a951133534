package engine

import (
	"github.com/lixenwraith/flapper/component"
)

// ComponentStore provides cached pointer to typed component store
// Pointers are created once with the world and stay valid for its lifetime
type ComponentStore struct {
	Kinetic  *Store[component.KineticComponent]
	Player   *Store[component.PlayerComponent]
	Obstacle *Store[component.ObstacleComponent]

	// Visual
	Sprite    *Store[component.SpriteComponent]
	Transform *Store[component.TransformComponent]
	Member    *Store[component.MemberComponent]
}

func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Kinetic:   NewStore[component.KineticComponent](),
		Player:    NewStore[component.PlayerComponent](),
		Obstacle:  NewStore[component.ObstacleComponent](),
		Sprite:    NewStore[component.SpriteComponent](),
		Transform: NewStore[component.TransformComponent](),
		Member:    NewStore[component.MemberComponent](),
	}
}
