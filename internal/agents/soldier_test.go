package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/faction-logic/internal/game"
	"github.com/talgya/faction-logic/internal/memory"
)

func newSoldier(bonus bool) game.Unit {
	return game.Unit{ID: 40, Owner: us, Type: game.Soldier, Health: 8, DefenseBonus: bonus}
}

func TestSoldierAttackHasPriority(t *testing.T) {
	enemy := game.Location{X: 1, Y: 0, OccupyingUnit: unit(41, them, game.Pioneer, 2)}
	env := Env{Rand: fixedSource{}, POIs: []memory.POI{{X: 3, Y: 3, Unit: unit(42, them, game.Soldier, 6)}}}

	for _, bonus := range []bool{false, true} {
		for _, here := range []game.Location{{}, {Owner: owner(them)}, {Owner: owner(us)}} {
			move := Soldier(env, moveInput(newSoldier(bonus), here, enemy))
			require.Equal(t, game.MoveAttack, move.Type)
			assert.Equal(t, 41, move.TargetUnit.ID)
		}
	}
}

func TestSoldierHuntsRememberedUnits(t *testing.T) {
	here := game.Location{X: 10, Y: 10, Owner: owner(us)}
	env := Env{Rand: fixedSource{}, POIs: []memory.POI{
		{X: 12, Y: 10, Resource: true},
		{X: 14, Y: 30, Unit: unit(43, them, game.Worker, 5)},
	}}

	move := Soldier(env, moveInput(newSoldier(false), here))
	require.Equal(t, game.MoveTravel, move.Type)
	assert.Equal(t, game.Coordinate{X: 11, Y: 10}, *move.Target)
}

func TestSoldierWithoutContact(t *testing.T) {
	free := game.Location{X: 0, Y: 1}
	resourceOnly := []memory.POI{{X: 1, Y: 1, Resource: true}}

	tests := []struct {
		name       string
		bonus      bool
		here       game.Location
		neighbours []game.Location
		want       game.UnitMoveType
	}{
		{"no defense bonus", false, game.Location{}, nil, game.MovePrepareDefense},
		{"neutral tile", true, game.Location{}, nil, game.MoveConquerNeutralTile},
		{"enemy tile", true, game.Location{Owner: owner(them)}, nil, game.MoveNeutralizeEnemyTile},
		{"own tile", true, game.Location{Owner: owner(us)}, []game.Location{free}, game.MoveTravel},
		{"own tile, boxed in", true, game.Location{Owner: owner(us)}, nil, game.MovePrepareDefense},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := Env{Rand: fixedSource{}, POIs: resourceOnly}
			move := Soldier(env, moveInput(newSoldier(tc.bonus), tc.here, tc.neighbours...))
			assert.Equal(t, tc.want, move.Type)
		})
	}
}
