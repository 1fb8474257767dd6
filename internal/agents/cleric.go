package agents

import (
	"log/slog"

	"github.com/talgya/faction-logic/internal/game"
)

// Cleric heals wounded allies before anything else, converts enemies when
// its defense bonus is up and attacks them otherwise.
func Cleric(env Env, in game.UnitMoveInput) game.UnitMove {
	cleric := in.Unit

	if ally, ok := WoundedAllyInRange(in); ok {
		slog.Debug("cleric heals ally", "unit_id", cleric.ID, "target_id", ally.ID, "target_health", ally.Health)
		env.counters().Healed()
		return game.Heal(ally)
	}

	if enemy, ok := EnemyInRange(in); ok {
		if cleric.DefenseBonus {
			slog.Debug("cleric converts enemy", "unit_id", cleric.ID, "target_id", enemy.ID)
			return game.Convert(enemy)
		}
		return game.Attack(enemy)
	}

	return travelOr(env, in, game.PrepareDefense())
}
