package progression

// Door is a live trigger zone routing to another level.
type Door struct {
	Index            int
	Bounds           Rect
	Destination      LevelID
	DestinationSpawn SpawnTag // empty = destination default
	Implicit         bool     // auto-generated return door
}

// DoorRegistry holds the doors of one level and the single active one.
type DoorRegistry struct {
	doors  []Door
	active activeTrigger
}

// BuildDoorRegistry turns level door definitions into live doors. Definitions
// without a destination are dropped and recorded on report. Every level but
// the hub also gets a return door on its default spawn, when one exists.
func BuildDoorRegistry(level LevelID, defs []DoorDefinition, defaultSpawn Vec, hasDefault bool, rules Rules, report *LevelLoadReport) *DoorRegistry {
	reg := &DoorRegistry{active: noActiveTrigger}

	for i, def := range defs {
		if def.Destination == "" {
			report.add(IssueMalformedDoor, "door %d at (%.0f, %.0f) has no destination", i, def.Bounds.X, def.Bounds.Y)
			continue
		}
		reg.doors = append(reg.doors, Door{
			Index:            len(reg.doors),
			Bounds:           def.Bounds,
			Destination:      def.Destination,
			DestinationSpawn: def.DestinationSpawn,
		})
	}

	if level != rules.HubLevel && hasDefault {
		reg.doors = append(reg.doors, Door{
			Index:       len(reg.doors),
			Bounds:      RectAround(defaultSpawn, rules.ReturnDoorSize, rules.ReturnDoorSize),
			Destination: rules.HubLevel,
			Implicit:    true,
		})
	}

	return reg
}

// Doors returns the live doors in registration order.
func (r *DoorRegistry) Doors() []Door {
	return r.doors
}

// Update recomputes the active door from the player bounds and returns it.
func (r *DoorRegistry) Update(player Rect) (Door, bool) {
	r.active.update(len(r.doors), func(i int) bool {
		return r.doors[i].Bounds.Intersects(player)
	})
	return r.Active()
}

// Active returns the door chosen by the last Update.
func (r *DoorRegistry) Active() (Door, bool) {
	if r.active == noActiveTrigger {
		return Door{}, false
	}
	return r.doors[r.active], true
}

// activeTrigger is the index of the one overlapped trigger in a set, or
// noActiveTrigger.
type activeTrigger int

const noActiveTrigger activeTrigger = -1

// update keeps the current trigger while it is still overlapped; otherwise
// the first overlapped trigger wins. Nothing overlapped clears it.
func (a *activeTrigger) update(n int, overlaps func(i int) bool) {
	if cur := int(*a); cur >= 0 && cur < n && overlaps(cur) {
		return
	}
	*a = noActiveTrigger
	for i := 0; i < n; i++ {
		if overlaps(i) {
			*a = activeTrigger(i)
			return
		}
	}
}
