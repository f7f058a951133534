package engine

import (
	"sync"

	"github.com/lixenwraith/flapper/core"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.Mutex
	nextEntityID core.Entity

	Components ComponentStore
	Resources  *ResourceStore
}

// NewWorld creates a new ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
	}
	initComponentStores(w)
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// EntityCount returns the number of entity IDs issued
// Entities are never destroyed, so this is also the live population
func (w *World) EntityCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return int(w.nextEntityID - 1)
}

// NewEntity starts a transactional entity construction
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}
