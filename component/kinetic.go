package component

import (
	"github.com/lixenwraith/flapper/core"
)

// KineticComponent provides a reusable kinematic container for entities moved by the integrator
type KineticComponent struct {
	core.Kinetic
}
