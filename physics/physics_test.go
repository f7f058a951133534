package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/flapper/core"
	"github.com/lixenwraith/flapper/vmath"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// Velocity is updated first and the new value moves the position in the same step
func TestIntegrateSemiImplicitOrder(t *testing.T) {
	k := core.Kinetic{
		Acceleration: vmath.Vec3{Y: -2000},
	}

	Integrate(&k, 0.1)

	if !approx(k.Velocity.Y, -200) || k.Velocity.X != 0 || k.Velocity.Z != 0 {
		t.Errorf("Expected velocity (0,-200,0), got %+v", k.Velocity)
	}
	if !approx(k.Position.Y, -20) || k.Position.X != 0 || k.Position.Z != 0 {
		t.Errorf("Expected position (0,-20,0), got %+v", k.Position)
	}
	if k.Acceleration != (vmath.Vec3{Y: -2000}) {
		t.Errorf("Acceleration must not change, got %+v", k.Acceleration)
	}
}

func TestIntegrateGeneral(t *testing.T) {
	v0 := vmath.Vec3{X: -100, Y: 50}
	p0 := vmath.Vec3{X: 740, Y: 10}
	a := vmath.Vec3{X: -15}
	dt := 0.25

	k := core.Kinetic{Position: p0, Velocity: v0, Acceleration: a}
	Integrate(&k, dt)

	wantV := vmath.Vec3{X: v0.X + a.X*dt, Y: v0.Y}
	wantP := vmath.Vec3{X: p0.X + wantV.X*dt, Y: p0.Y + wantV.Y*dt}
	if !approx(k.Velocity.X, wantV.X) || !approx(k.Velocity.Y, wantV.Y) {
		t.Errorf("Expected velocity %+v, got %+v", wantV, k.Velocity)
	}
	if !approx(k.Position.X, wantP.X) || !approx(k.Position.Y, wantP.Y) {
		t.Errorf("Expected position %+v, got %+v", wantP, k.Position)
	}
}

func TestIntegrateZeroDt(t *testing.T) {
	k := core.Kinetic{
		Position:     vmath.Vec3{X: 1, Y: 2, Z: 3},
		Velocity:     vmath.Vec3{X: 4, Y: 5},
		Acceleration: vmath.Vec3{Y: -2000},
	}
	before := k
	Integrate(&k, 0)
	if k != before {
		t.Errorf("Expected no-op for dt=0, got %+v", k)
	}
}

func TestSetImpulseYOverwrites(t *testing.T) {
	k := core.Kinetic{
		Velocity:     vmath.Vec3{X: 12, Y: -300},
		Acceleration: vmath.Vec3{Y: -2000},
	}
	SetImpulseY(&k, 500)
	if k.Velocity.Y != 500 {
		t.Errorf("Expected vertical velocity 500, got %v", k.Velocity.Y)
	}
	if k.Velocity.X != 12 {
		t.Errorf("Horizontal velocity must be untouched, got %v", k.Velocity.X)
	}
	if k.Acceleration.Y != -2000 {
		t.Errorf("Acceleration must be untouched, got %v", k.Acceleration.Y)
	}
}

func TestTiltClamp(t *testing.T) {
	const upSpeed, amplitude = 500.0, 0.8

	tests := []struct {
		name string
		velY float64
		want float64
	}{
		{"rest", 0, 0},
		{"full jump", upSpeed, amplitude},
		{"falling", -upSpeed, -amplitude},
		{"clamp up", 10 * upSpeed, math.Pi / 2},
		{"clamp down", -10 * upSpeed, -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tilt(tt.velY, upSpeed, amplitude)
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
