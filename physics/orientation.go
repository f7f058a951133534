package physics

import (
	"math"

	"github.com/lixenwraith/flapper/vmath"
)

// Tilt maps vertical velocity to a visual rotation around Z
// angle = clamp(velY / upSpeed * amplitude, -π/2, π/2)
func Tilt(velY, upSpeed, amplitude float64) float64 {
	return vmath.Clamp(velY/upSpeed*amplitude, -math.Pi/2, math.Pi/2)
}
