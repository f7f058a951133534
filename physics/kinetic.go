package physics

import (
	"github.com/lixenwraith/flapper/core"
	"github.com/lixenwraith/flapper/vmath"
)

// ApplyAcceleration advances velocity by one step: v = v + a*dt
// First phase of the semi-implicit integrator; must run before ApplyVelocity in the same tick
func ApplyAcceleration(k *core.Kinetic, dt float64) {
	k.Velocity = vmath.V3AddScaled(k.Velocity, k.Acceleration, dt)
}

// ApplyVelocity advances position by one step: p = p + v*dt
// Reads the velocity already updated by ApplyAcceleration this tick
func ApplyVelocity(k *core.Kinetic, dt float64) {
	k.Position = vmath.V3AddScaled(k.Position, k.Velocity, dt)
}

// Integrate performs physics integration: v = v + a*dt; p = p + v*dt
func Integrate(k *core.Kinetic, dt float64) {
	ApplyAcceleration(k, dt)
	ApplyVelocity(k, dt)
}

// SetImpulseY overrides vertical velocity, leaving X and Z untouched
func SetImpulseY(k *core.Kinetic, vy float64) {
	k.Velocity.Y = vy
}
