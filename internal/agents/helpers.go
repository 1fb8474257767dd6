package agents

import (
	"github.com/talgya/faction-logic/internal/entropy"
	"github.com/talgya/faction-logic/internal/game"
	"github.com/talgya/faction-logic/internal/memory"
)

// poiRange is how far (per axis) a remembered POI still attracts a unit.
const poiRange = 15

// woundThresholds maps each unit type to the health below which it is wounded.
var woundThresholds = map[game.UnitType]int{
	game.Pioneer: 3,
	game.Worker:  5,
	game.Soldier: 6,
	game.Cleric:  4,
}

// IsHostile reports whether loc is owned by a faction other than faction.
// Neutral tiles are not hostile.
func IsHostile(loc game.Location, faction int) bool {
	return loc.Owner != nil && *loc.Owner != faction
}

// IsWounded reports whether u is below its type's wound threshold.
func IsWounded(u game.Unit) bool {
	threshold, ok := woundThresholds[u.Type]
	if !ok {
		panic("agents: no wound threshold for unit type " + u.Type.String())
	}
	return u.Health < threshold
}

// EnemyInRange returns the first neighbouring unit not owned by the acting unit's faction.
func EnemyInRange(in game.UnitMoveInput) (game.Unit, bool) {
	for _, loc := range in.NeighbouringLocations {
		if loc.OccupyingUnit != nil && loc.OccupyingUnit.Owner != in.Unit.Owner {
			return *loc.OccupyingUnit, true
		}
	}
	return game.Unit{}, false
}

// WoundedAllyInRange returns the first neighbouring wounded unit of the acting unit's faction.
func WoundedAllyInRange(in game.UnitMoveInput) (game.Unit, bool) {
	for _, loc := range in.NeighbouringLocations {
		if u := loc.OccupyingUnit; u != nil && u.Owner == in.Unit.Owner && IsWounded(*u) {
			return *u, true
		}
	}
	return game.Unit{}, false
}

// Travel moves to a uniformly chosen neighbour that is free and not the
// unit's own base. ok is false when no such neighbour exists; the caller
// supplies the fallback.
func Travel(env Env, in game.UnitMoveInput) (move game.UnitMove, ok bool) {
	var candidates []game.Location
	for _, loc := range in.NeighbouringLocations {
		if loc.IsBase && loc.OwnedBy(in.Unit.Owner) {
			continue
		}
		if loc.Occupied() {
			continue
		}
		candidates = append(candidates, loc)
	}
	if len(candidates) == 0 {
		return game.UnitMove{}, false
	}
	return game.TravelTo(entropy.Pick(env.Rand, candidates).Coordinate()), true
}

// StepTowardPOI scans pois in order and, for the first one matching match
// that lies within poiRange on either axis, steps one tile from `from`.
// The x axis is checked first; within an axis the step is +1 when the POI
// lies further along it and -1 otherwise.
func StepTowardPOI(pois []memory.POI, from game.Location, match func(memory.POI) bool) (game.UnitMove, bool) {
	for _, p := range pois {
		if !match(p) {
			continue
		}
		if abs(p.X-from.X) <= poiRange {
			return game.TravelTo(game.Coordinate{X: from.X + direction(p.X, from.X), Y: from.Y}), true
		}
		if abs(p.Y-from.Y) <= poiRange {
			return game.TravelTo(game.Coordinate{X: from.X, Y: from.Y + direction(p.Y, from.Y)}), true
		}
	}
	return game.UnitMove{}, false
}

func direction(target, from int) int {
	if target > from {
		return 1
	}
	return -1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func travelOr(env Env, in game.UnitMoveInput, fallback game.UnitMove) game.UnitMove {
	if move, ok := Travel(env, in); ok {
		return move
	}
	return fallback
}
