package systems

import (
	"github.com/automoto/greenie/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs moved resolv objects back into the space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Space == nil {
			continue
		}
		obj.Update()
	}
}
