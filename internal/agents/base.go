package agents

import (
	"log/slog"

	"github.com/talgya/faction-logic/internal/entropy"
	"github.com/talgya/faction-logic/internal/game"
)

// BaseMove decides the base's move: build a random affordable unit when
// there is population headroom and the build slot is free, keep building
// when a build is running, otherwise collect income.
func BaseMove(env Env, in game.BaseMoveInput) game.BaseMove {
	if t, ok := nextUnit(env, in.Faction); ok {
		cost, known := in.Context.CostOf(t)
		if known && in.Faction.Gold >= cost && !in.Building() {
			slog.Debug("base starts building", "unit_type", t, "cost", cost, "gold", in.Faction.Gold)
			return game.BuildUnit(t)
		}
	}
	if in.Building() {
		return game.ContinueBuilding()
	}
	return game.ReceiveIncome()
}

// nextUnit draws the unit type to consider building; none when the
// population cap is reached.
func nextUnit(env Env, f game.Faction) (game.UnitType, bool) {
	if f.Population >= f.PopulationCap {
		return game.UnitTypeUnknown, false
	}
	return entropy.Pick(env.Rand, game.UnitTypes()), true
}
