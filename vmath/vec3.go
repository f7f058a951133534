package vmath

import (
	"math"
)

// Vec3 is a float64 3D vector used for world-space kinematics
type Vec3 struct {
	X, Y, Z float64
}

// Axis unit vectors
var (
	V3UnitX = Vec3{X: 1}
	V3UnitY = Vec3{Y: 1}
	V3UnitZ = Vec3{Z: 1}
)

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// V3AddScaled returns v + d*s, the single step of an explicit integrator
func V3AddScaled(v, d Vec3, s float64) Vec3 {
	return Vec3{v.X + d.X*s, v.Y + d.Y*s, v.Z + d.Z*s}
}

func V3Neg(v Vec3) Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func V3MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3Mag(v Vec3) float64 {
	return math.Sqrt(V3MagSq(v))
}

// V3RotateZ rotates v around the Z axis by angle radians (counter-clockwise, Y up)
func V3RotateZ(v Vec3, angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}
