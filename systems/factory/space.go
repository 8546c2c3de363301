package factory

import (
	"github.com/automoto/partyarena/archetypes"
	"github.com/automoto/partyarena/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)
}

// Destroy removes an entity and its collision object. Entries that are
// already gone are ignored.
func Destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e).Object; obj != nil {
			if spaceEntry, ok := components.Space.First(ecs.World); ok {
				components.Space.Get(spaceEntry).Remove(obj)
			}
		}
	}
	ecs.World.Remove(e.Entity())
}
