package agents

import (
	"github.com/talgya/faction-logic/internal/game"
	"github.com/talgya/faction-logic/internal/memory"
)

// Soldier attacks first, hunts remembered enemies, then holds ground.
func Soldier(env Env, in game.UnitMoveInput) game.UnitMove {
	soldier := in.Unit
	here := in.UnitLocation

	// Soldiers are the strongest unit; combat beats everything else.
	if enemy, ok := EnemyInRange(in); ok {
		return game.Attack(enemy)
	}

	if move, ok := StepTowardPOI(env.POIs, here, memory.POI.Occupied); ok {
		return move
	}

	if !soldier.DefenseBonus {
		return game.PrepareDefense()
	}

	if !here.OwnedBy(soldier.Owner) {
		if here.Neutral() {
			return game.Conquer()
		}
		return game.Neutralize()
	}

	return travelOr(env, in, game.PrepareDefense())
}
