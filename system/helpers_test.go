package system

import (
	"math"
	"time"

	"github.com/lixenwraith/flapper/asset"
	"github.com/lixenwraith/flapper/component"
	"github.com/lixenwraith/flapper/core"
	"github.com/lixenwraith/flapper/engine"
	"github.com/lixenwraith/flapper/status"
)

const epsilon = 1e-6

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// fakeAssets reports pending for any handle not explicitly set
type fakeAssets struct {
	states map[asset.Handle]asset.Status
}

func (f *fakeAssets) Status(h asset.Handle) asset.Status {
	if s, ok := f.states[h]; ok {
		return s
	}
	return asset.StatusPending
}

func newTestWorld() (*engine.World, *fakeAssets, *status.Registry) {
	w := engine.NewWorld()
	fa := &fakeAssets{states: make(map[asset.Handle]asset.Status)}
	reg := status.NewRegistry()
	RegisterResources(w, fa, reg)
	return w, fa, reg
}

func spawnTestPlayer(w *engine.World, k core.Kinetic) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Kinetic, component.KineticComponent{Kinetic: k})
	engine.With(eb, w.Components.Player, component.PlayerComponent{})
	e := eb.Build()
	engine.MustGetResource[*engine.PlayerResource](w.Resources).Entity = e
	return e
}

func spawnTestObstacle(w *engine.World, slot int, k core.Kinetic) core.Entity {
	eb := w.NewEntity()
	engine.With(eb, w.Components.Kinetic, component.KineticComponent{Kinetic: k})
	engine.With(eb, w.Components.Obstacle, component.ObstacleComponent{Slot: slot})
	return eb.Build()
}

func setDelta(w *engine.World, dt time.Duration) {
	engine.MustGetResource[*engine.TimeResource](w.Resources).Update(dt)
}

func kineticOf(w *engine.World, e core.Entity) core.Kinetic {
	k, _ := w.Components.Kinetic.GetComponent(e)
	return k.Kinetic
}

func expectPanic(fn func()) (recovered any) {
	defer func() {
		recovered = recover()
	}()
	fn()
	return nil
}
