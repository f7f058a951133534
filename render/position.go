package render

import (
	"github.com/lixenwraith/flapper/core"
	"github.com/lixenwraith/flapper/engine"
	"github.com/lixenwraith/flapper/vmath"
)

// maxMemberDepth bounds parent chain walks; obstacle visuals nest two levels deep
const maxMemberDepth = 8

// WorldPosition resolves an entity's world position through its member chain
// Returns false when the chain does not end in a kinetic root
func WorldPosition(world *engine.World, e core.Entity) (vmath.Vec3, bool) {
	var offset vmath.Vec3
	for depth := 0; depth <= maxMemberDepth; depth++ {
		if k, ok := world.Components.Kinetic.GetComponent(e); ok {
			return vmath.V3Add(k.Position, offset), true
		}
		m, ok := world.Components.Member.GetComponent(e)
		if !ok {
			return vmath.Vec3{}, false
		}
		offset = vmath.V3Add(offset, m.Offset)
		e = m.Parent
	}
	return vmath.Vec3{}, false
}

// rootOf returns the kinetic root entity of a member chain, or e itself
func rootOf(world *engine.World, e core.Entity) core.Entity {
	for depth := 0; depth <= maxMemberDepth; depth++ {
		m, ok := world.Components.Member.GetComponent(e)
		if !ok {
			return e
		}
		e = m.Parent
	}
	return e
}
