package agents

import (
	"github.com/talgya/faction-logic/internal/game"
	"github.com/talgya/faction-logic/internal/memory"
)

// Gold reserves above which a worker spends on its current tile when no
// better signal exists.
const (
	workerFortifyGold = 1000
	workerConquerGold = 500
)

// Worker keeps workers on resource tiles: claim, fortify, then farm gold.
func Worker(env Env, in game.UnitMoveInput) game.UnitMove {
	worker := in.Unit
	here := in.UnitLocation

	// Never work the home base or enemy ground.
	if here.IsBase || IsHostile(here, worker.Owner) {
		return travelOr(env, in, game.Idle())
	}

	if !here.IsResource {
		if loc, ok := freeResourceNearby(in); ok {
			return game.TravelTo(loc.Coordinate())
		}
	}

	if here.IsResource {
		switch {
		case here.Neutral():
			return game.Conquer()
		case !here.IsFortified:
			env.counters().Fortified()
			return game.Fortify()
		default:
			return game.GenerateGold()
		}
	}

	if move, ok := StepTowardPOI(env.POIs, here, func(p memory.POI) bool { return p.Resource }); ok {
		return move
	}

	// Ownership is checked before resource status here; an owned plain tile
	// gets fortified when the treasury is large.
	switch {
	case here.OwnedBy(worker.Owner) && in.Faction.Gold > workerFortifyGold:
		return game.Fortify()
	case here.Neutral() && in.Faction.Gold > workerConquerGold:
		return game.Conquer()
	case here.OwnedBy(worker.Owner):
		return game.GenerateGold()
	default:
		return travelOr(env, in, game.Idle())
	}
}

// freeResourceNearby returns the first neighbouring resource tile that is
// neither hostile nor occupied.
func freeResourceNearby(in game.UnitMoveInput) (game.Location, bool) {
	for _, loc := range in.NeighbouringLocations {
		if loc.IsResource && !IsHostile(loc, in.Unit.Owner) && !loc.Occupied() {
			return loc, true
		}
	}
	return game.Location{}, false
}
