package progression

// SpawnSource tells which step of the fallback chain produced a position.
type SpawnSource int

const (
	SpawnRequested SpawnSource = iota
	SpawnDefault
	SpawnFallback
)

func (s SpawnSource) String() string {
	switch s {
	case SpawnRequested:
		return "requested"
	case SpawnDefault:
		return "default"
	}
	return "fallback"
}

// ResolveSpawn places the player using the default rules. It never fails:
// requested tag, then the "spawn" default, then (32, 32).
func ResolveSpawn(points []SpawnPoint, requested SpawnTag) Vec {
	pos, _ := DefaultRules().ResolveSpawn(points, requested)
	return pos
}

// ResolveSpawn is the rules-aware form that also reports the source used.
func (r Rules) ResolveSpawn(points []SpawnPoint, requested SpawnTag) (Vec, SpawnSource) {
	if requested != "" {
		if pos, ok := findSpawn(points, requested); ok {
			return pos, SpawnRequested
		}
	}
	if pos, ok := findSpawn(points, r.DefaultSpawnTag); ok {
		return pos, SpawnDefault
	}
	return r.FallbackSpawn, SpawnFallback
}

// findSpawn returns the first point tagged tag.
func findSpawn(points []SpawnPoint, tag SpawnTag) (Vec, bool) {
	for _, p := range points {
		if p.Tag == tag {
			return p.Position, true
		}
	}
	return Vec{}, false
}
