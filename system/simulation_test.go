package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/flapper/asset"
	"github.com/lixenwraith/flapper/engine"
	"github.com/lixenwraith/flapper/parameter"
	"github.com/lixenwraith/flapper/status"
	"github.com/lixenwraith/flapper/vmath"
)

func newTestSimulation(t *testing.T) (*Simulation, *engine.World, *asset.Loader, *status.Registry) {
	t.Helper()
	w := engine.NewWorld()
	reg := status.NewRegistry()
	loader := asset.NewLoader(asset.FS, reg)
	RegisterResources(w, loader, reg)
	sim := NewSimulation(w)

	manifest, err := asset.LoadManifest(asset.FS, parameter.ManifestPath)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if err := Bootstrap(w, sim.Loading, loader, manifest, vmath.NewFastRand(3)); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	return sim, w, loader, reg
}

func TestSimulationResolvesVisuals(t *testing.T) {
	sim, w, loader, reg := newTestSimulation(t)
	loader.Wait()

	sim.Tick(16*time.Millisecond, false)

	if sim.Loading.PendingCount() != 0 {
		t.Fatalf("Expected all bundles resolved, %d pending", sim.Loading.PendingCount())
	}
	player := engine.MustGetResource[*engine.PlayerResource](w.Resources).Entity
	sprite, ok := w.Components.Sprite.GetComponent(player)
	if !ok {
		t.Fatal("Expected player sprite")
	}
	if _, ok := loader.Sprite(sprite.Handle); !ok {
		t.Error("Expected player sprite handle to be decoded")
	}
	wantMembers := parameter.PipeCount * 2 * (1 + parameter.PipeSegmentCount)
	if got := w.Components.Member.CountEntities(); got != wantMembers {
		t.Errorf("Expected %d members, got %d", wantMembers, got)
	}
	if got := reg.Ints.Get(status.KeyGateResolved).Load(); got != 1+parameter.PipeCount {
		t.Errorf("Expected %d resolved, got %d", 1+parameter.PipeCount, got)
	}
}

func TestSimulationJumpThenIntegrate(t *testing.T) {
	sim, w, _, reg := newTestSimulation(t)
	player := engine.MustGetResource[*engine.PlayerResource](w.Resources).Entity

	sim.Tick(100*time.Millisecond, true)

	k := kineticOf(w, player)
	// Jump overwrites, then gravity applies within the same tick
	if !approx(k.Velocity.Y, 300) {
		t.Errorf("Expected velocity 300, got %v", k.Velocity.Y)
	}
	if !approx(k.Position.Y, 30) {
		t.Errorf("Expected position 30, got %v", k.Position.Y)
	}
	tr, _ := w.Components.Transform.GetComponent(player)
	if !approx(tr.Rotation, 0.48) {
		t.Errorf("Expected tilt 0.48, got %v", tr.Rotation)
	}
	if got := reg.Ints.Get(status.KeyTicks).Load(); got != 1 {
		t.Errorf("Expected 1 tick, got %d", got)
	}
}

func TestSimulationNegativeDt(t *testing.T) {
	sim, w, _, _ := newTestSimulation(t)
	player := engine.MustGetResource[*engine.PlayerResource](w.Resources).Entity

	sim.Tick(-time.Second, false)

	if got := kineticOf(w, player).Position.Y; got != 0 {
		t.Errorf("Expected no motion for negative dt, got %v", got)
	}
}

func TestSimulationPerpetual(t *testing.T) {
	sim, w, loader, _ := newTestSimulation(t)
	loader.Wait()
	sim.Tick(0, false)
	entities := w.EntityCount()

	for i := 0; i < 3000; i++ {
		sim.Tick(16*time.Millisecond, i%20 == 0)
	}

	if got := w.EntityCount(); got != entities {
		t.Errorf("Expected no new entities after resolve, %d became %d", entities, got)
	}
	if got := w.Components.Obstacle.CountEntities(); got != parameter.PipeCount {
		t.Errorf("Expected pool of %d, got %d", parameter.PipeCount, got)
	}
	for _, e := range w.Components.Obstacle.GetAllEntities() {
		if x := kineticOf(w, e).Position.X; x < parameter.LeftBorder {
			t.Errorf("Obstacle %d left behind at %v", e, x)
		}
	}
}

func TestSimulationSystemsOrder(t *testing.T) {
	sim, _, _, _ := newTestSimulation(t)
	want := []string{"loading", "jump", "motion", "orientation", "recycle"}
	systems := sim.Systems()
	if len(systems) != len(want) {
		t.Fatalf("Expected %d systems, got %d", len(want), len(systems))
	}
	for i, s := range systems {
		if s.Name() != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], s.Name())
		}
	}
}
