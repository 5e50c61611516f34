// Package progression holds the level-transition and progression state
// machine: save state, spawn placement, door routing, keys, locks and the
// finale trigger. It has no dependency on ebiten, donburi or resolv so the
// rules can be driven from plain rectangles and tested headless.
package progression

// LevelID identifies a playable level ("hub", "candy", "industry", "snow").
type LevelID string

// SpawnTag names a spawn point within a level. The empty tag means the
// level's default spawn.
type SpawnTag string

// Vec is a world position in pixels.
type Vec struct {
	X, Y float64
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns a w x h box centred on c.
func RectAround(c Vec, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects reports whether r and o overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// SpawnPoint is a named placement loaded from level data.
type SpawnPoint struct {
	Tag      SpawnTag
	Position Vec
}

// DoorDefinition is a door trigger as authored in level data. A definition
// with an empty Destination is malformed and dropped at load time.
type DoorDefinition struct {
	Bounds           Rect
	Destination      LevelID
	DestinationSpawn SpawnTag
}

// Marker names an object placed in level data ("key", "lock", "credits").
// Position is the marker centre; a zero Size falls back to the rules'
// collectible size.
type Marker struct {
	Name     string
	Position Vec
	Size     Vec
}

func (m Marker) bounds(fallback float64) Rect {
	w, h := m.Size.X, m.Size.Y
	if w <= 0 || h <= 0 {
		w, h = fallback, fallback
	}
	return RectAround(m.Position, w, h)
}

// LevelDefinition is everything the core needs from one level.
type LevelDefinition struct {
	ID            LevelID
	Title         string
	Spawns        []SpawnPoint
	Doors         []DoorDefinition
	Markers       []Marker
	LockThreshold int // locks to open before the finale; 0 = no locks
}
