package core

import "github.com/lixenwraith/flapper/vmath"

// Kinetic is the kinematic state of a moving entity
// World units, origin at viewport center, Y axis pointing up
type Kinetic struct {
	// Position is the entity translation in world units
	Position vmath.Vec3
	// Velocity in world units per second
	Velocity vmath.Vec3
	// Acceleration in world units per second squared, set once at spawn
	Acceleration vmath.Vec3
}
