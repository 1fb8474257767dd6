package agents

import "github.com/talgya/faction-logic/internal/game"

// pioneerGoldChance is the share of idle pioneer turns spent generating gold.
const pioneerGoldChance = 0.15

// Pioneer expands territory, fights adjacent enemies and otherwise roams.
func Pioneer(env Env, in game.UnitMoveInput) game.UnitMove {
	pioneer := in.Unit
	here := in.UnitLocation

	if !here.OwnedBy(pioneer.Owner) {
		if here.Neutral() {
			return game.Conquer()
		}
		return game.Neutralize()
	}

	if enemy, ok := EnemyInRange(in); ok {
		return game.Attack(enemy)
	}

	if env.Rand.Float64() <= pioneerGoldChance {
		return game.GenerateGold()
	}
	return travelOr(env, in, game.GenerateGold())
}
