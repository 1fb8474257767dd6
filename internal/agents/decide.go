package agents

import (
	"fmt"

	"github.com/talgya/faction-logic/internal/game"
)

// UnitMove routes the decision to the policy of the acting unit's type.
// A type outside the closed set is a caller bug and panics.
func UnitMove(env Env, in game.UnitMoveInput) game.UnitMove {
	switch in.Unit.Type {
	case game.Pioneer:
		return Pioneer(env, in)
	case game.Worker:
		return Worker(env, in)
	case game.Soldier:
		return Soldier(env, in)
	case game.Cleric:
		return Cleric(env, in)
	default:
		panic(fmt.Sprintf("agents: unit %d has unsupported type %s", in.Unit.ID, in.Unit.Type))
	}
}
