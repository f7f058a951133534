package component

import (
	"github.com/lixenwraith/flapper/core"
	"github.com/lixenwraith/flapper/vmath"
)

// MemberComponent places a child entity relative to its parent
// World position resolves by walking parents up to a root with kinematics
type MemberComponent struct {
	Parent core.Entity
	Offset vmath.Vec3
}
