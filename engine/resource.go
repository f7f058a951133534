package engine

import (
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/flapper/asset"
	"github.com/lixenwraith/flapper/core"
)

// ResourceStore is a thread-safe container for global game resources
// It allows systems to access shared data (Time, Input, Player) without coupling to the host
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource; pass pointers so systems can mutate in place
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	val, ok := rs.resources[reflect.TypeOf(target)]
	if !ok {
		return target, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Used by system constructors for resources the world cannot run without
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var target T
		panic("Required resource not found: " + reflect.TypeOf(target).String())
	}
	return res
}

// --- Core Resources ---

// TimeResource wraps time data for systems
// Written by the tick function before any system runs
type TimeResource struct {
	// DeltaTime is the duration of the current tick
	DeltaTime time.Duration
	// Elapsed is the total simulated time
	Elapsed time.Duration
	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(dt time.Duration) {
	tr.DeltaTime = dt
	tr.Elapsed += dt
	tr.FrameNumber++
}

// InputResource holds the input sampled for the current tick
type InputResource struct {
	// Jump is true on ticks where the jump trigger is active
	Jump bool
}

// PlayerResource holds the player entity reference, set once at bootstrap
type PlayerResource struct {
	Entity core.Entity
}

// AssetProvider is the loader surface polled by the simulation
type AssetProvider interface {
	Status(h asset.Handle) asset.Status
}

// AssetResource wraps the asset loader for systems access
type AssetResource struct {
	Provider AssetProvider
}
