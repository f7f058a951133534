package system

import (
	"sort"
	"testing"
	"time"

	"github.com/lixenwraith/flapper/core"
	"github.com/lixenwraith/flapper/parameter"
	"github.com/lixenwraith/flapper/status"
	"github.com/lixenwraith/flapper/vmath"
)

func TestRecycleSameTickStacking(t *testing.T) {
	w, _, reg := newTestWorld()
	moving := core.Kinetic{Velocity: vmath.Vec3{X: -100}, Acceleration: vmath.Vec3{X: -15}}

	a := moving
	a.Position = vmath.Vec3{X: -800, Y: 10}
	b := moving
	b.Position = vmath.Vec3{X: -790, Y: 20}
	c := moving
	c.Position = vmath.Vec3{X: 1000, Y: 30}
	d := moving
	d.Position = vmath.Vec3{X: 1500, Y: 40}

	ea := spawnTestObstacle(w, 0, a)
	eb := spawnTestObstacle(w, 1, b)
	spawnTestObstacle(w, 2, c)
	spawnTestObstacle(w, 3, d)

	NewRecycleSystem(w).Update()

	ka, kb := kineticOf(w, ea), kineticOf(w, eb)
	if ka.Position.X != 1500+parameter.PipeGap {
		t.Errorf("Expected first recycled at %v, got %v", 1500+parameter.PipeGap, ka.Position.X)
	}
	if kb.Position.X != 1500+2*parameter.PipeGap {
		t.Errorf("Expected second recycled at %v, got %v", 1500+2*parameter.PipeGap, kb.Position.X)
	}
	if ka.Position.Y != 40 || kb.Position.Y != 40 {
		t.Errorf("Expected y taken from rightmost (40), got %v and %v", ka.Position.Y, kb.Position.Y)
	}
	if ka.Velocity != moving.Velocity || ka.Acceleration != moving.Acceleration {
		t.Errorf("Expected kinematics preserved, got %+v", ka)
	}
	if got := reg.Ints.Get(status.KeyRecycled).Load(); got != 2 {
		t.Errorf("Expected 2 recycles, got %d", got)
	}
}

func TestRecycleBoundaryIsStrict(t *testing.T) {
	w, _, _ := newTestWorld()
	e := spawnTestObstacle(w, 0, core.Kinetic{Position: vmath.Vec3{X: parameter.LeftBorder}})
	spawnTestObstacle(w, 1, core.Kinetic{Position: vmath.Vec3{X: 500}})

	NewRecycleSystem(w).Update()

	if got := kineticOf(w, e).Position.X; got != parameter.LeftBorder {
		t.Errorf("Expected obstacle on the border to stay, got %v", got)
	}
}

func TestRecycleSingleObstacle(t *testing.T) {
	w, _, _ := newTestWorld()
	e := spawnTestObstacle(w, 0, core.Kinetic{Position: vmath.Vec3{X: -1000, Y: 5}})

	NewRecycleSystem(w).Update()

	if got := kineticOf(w, e).Position; got != (vmath.Vec3{X: -1000 + parameter.PipeGap, Y: 5}) {
		t.Errorf("Expected lone obstacle moved by one gap, got %+v", got)
	}
}

func TestRecycleEmptyPoolPanics(t *testing.T) {
	w, _, _ := newTestWorld()
	rs := NewRecycleSystem(w)
	if expectPanic(rs.Update) == nil {
		t.Error("Expected panic for empty obstacle pool")
	}
}

func TestRecycleSpacingOverTime(t *testing.T) {
	w, _, reg := newTestWorld()
	rng := vmath.NewFastRand(1)
	pool := make([]core.Entity, 0, parameter.PipeCount)
	for i := 0; i < parameter.PipeCount; i++ {
		k := core.Kinetic{
			Position:     vmath.Vec3{X: parameter.RightBorder + float64(i)*parameter.PipeGap, Y: rng.Range(-150, 150)},
			Velocity:     vmath.Vec3{X: -parameter.PipeStartSpeed},
			Acceleration: vmath.Vec3{X: -parameter.PipeAcceleration},
		}
		pool = append(pool, spawnTestObstacle(w, i, k))
	}

	motion := NewMotionSystem(w)
	recycle := NewRecycleSystem(w)

	// 30 simulated seconds moves every obstacle past the left border at least once
	for tick := 0; tick < 600; tick++ {
		setDelta(w, 50*time.Millisecond)
		motion.Update()
		recycle.Update()

		xs := make([]float64, 0, len(pool))
		for _, e := range pool {
			xs = append(xs, kineticOf(w, e).Position.X)
		}
		sort.Float64s(xs)
		if xs[0] < parameter.LeftBorder {
			t.Fatalf("Tick %d: obstacle left behind at %v", tick, xs[0])
		}
		for i := 1; i < len(xs); i++ {
			if !approx(xs[i]-xs[i-1], parameter.PipeGap) {
				t.Fatalf("Tick %d: expected spacing %v, got %v", tick, parameter.PipeGap, xs[i]-xs[i-1])
			}
		}
	}

	if got := reg.Ints.Get(status.KeyRecycled).Load(); got < parameter.PipeCount {
		t.Errorf("Expected every obstacle recycled at least once, got %d recycles", got)
	}
	if got := w.Components.Obstacle.CountEntities(); got != parameter.PipeCount {
		t.Errorf("Expected pool size %d, got %d", parameter.PipeCount, got)
	}
}
