package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/faction-logic/internal/entropy"
	"github.com/talgya/faction-logic/internal/game"
)

func newPioneer() game.Unit {
	return game.Unit{ID: 30, Owner: us, Type: game.Pioneer, Health: 4}
}

func TestPioneerClaimsGround(t *testing.T) {
	enemy := game.Location{X: 1, Y: 0, OccupyingUnit: unit(31, them, game.Soldier, 6)}

	move := Pioneer(Env{Rand: fixedSource{}}, moveInput(newPioneer(), game.Location{}, enemy))
	assert.Equal(t, game.MoveConquerNeutralTile, move.Type)

	move = Pioneer(Env{Rand: fixedSource{}}, moveInput(newPioneer(), game.Location{Owner: owner(them)}, enemy))
	assert.Equal(t, game.MoveNeutralizeEnemyTile, move.Type)
}

func TestPioneerAttacksOnOwnGround(t *testing.T) {
	friend := game.Location{X: 0, Y: 1, OccupyingUnit: unit(32, us, game.Worker, 1)}
	enemy := game.Location{X: 1, Y: 0, OccupyingUnit: unit(33, them, game.Cleric, 4)}

	move := Pioneer(Env{Rand: fixedSource{f: 0.01}}, moveInput(newPioneer(), game.Location{Owner: owner(us)}, friend, enemy))
	require.Equal(t, game.MoveAttack, move.Type)
	assert.Equal(t, 33, move.TargetUnit.ID)
}

func TestPioneerGoldOrTravel(t *testing.T) {
	here := game.Location{Owner: owner(us)}
	free := game.Location{X: 1, Y: 1}

	move := Pioneer(Env{Rand: fixedSource{f: 0.15}}, moveInput(newPioneer(), here, free))
	assert.Equal(t, game.MoveGenerateGold, move.Type)

	move = Pioneer(Env{Rand: fixedSource{f: 0.5}}, moveInput(newPioneer(), here, free))
	require.Equal(t, game.MoveTravel, move.Type)
	assert.Equal(t, free.Coordinate(), *move.Target)

	ownBase := game.Location{X: 0, Y: 1, IsBase: true, Owner: owner(us)}
	move = Pioneer(Env{Rand: fixedSource{f: 0.5}}, moveInput(newPioneer(), here, ownBase))
	assert.Equal(t, game.MoveGenerateGold, move.Type)
}

func TestPioneerNeverIdles(t *testing.T) {
	here := game.Location{Owner: owner(us)}
	neighbourSets := [][]game.Location{
		nil,
		{{X: 1, Y: 0}},
		{{X: 1, Y: 0, OccupyingUnit: unit(34, us, game.Worker, 5)}},
	}
	env := Env{Rand: entropy.New(5)}
	for _, neighbours := range neighbourSets {
		for range 50 {
			move := Pioneer(env, moveInput(newPioneer(), here, neighbours...))
			assert.Contains(t, []game.UnitMoveType{game.MoveTravel, game.MoveGenerateGold}, move.Type)
		}
	}
}
