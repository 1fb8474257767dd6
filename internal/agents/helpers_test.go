package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/faction-logic/internal/entropy"
	"github.com/talgya/faction-logic/internal/game"
	"github.com/talgya/faction-logic/internal/memory"
)

const (
	us   = 0
	them = 1
)

// fixedSource always returns the same draws.
type fixedSource struct {
	n int
	f float64
}

func (s fixedSource) Intn(int) int     { return s.n }
func (s fixedSource) Float64() float64 { return s.f }

type countRecorder struct {
	heals, fortifications int
}

func (c *countRecorder) Healed()    { c.heals++ }
func (c *countRecorder) Fortified() { c.fortifications++ }

func owner(id int) *int { return &id }

func unit(id, ownerID int, t game.UnitType, health int) *game.Unit {
	return &game.Unit{ID: id, Owner: ownerID, Type: t, Health: health}
}

func moveInput(u game.Unit, here game.Location, neighbours ...game.Location) game.UnitMoveInput {
	return game.UnitMoveInput{
		Context:               game.GameContext{GameID: "test"},
		Faction:               game.Faction{ID: us, Gold: 100},
		Unit:                  u,
		UnitLocation:          here,
		NeighbouringLocations: neighbours,
	}
}

func TestIsHostile(t *testing.T) {
	assert.False(t, IsHostile(game.Location{}, us), "neutral tile")
	assert.False(t, IsHostile(game.Location{Owner: owner(us)}, us))
	assert.True(t, IsHostile(game.Location{Owner: owner(them)}, us))
}

func TestIsWoundedThresholds(t *testing.T) {
	tests := []struct {
		t         game.UnitType
		threshold int
	}{
		{game.Pioneer, 3},
		{game.Worker, 5},
		{game.Soldier, 6},
		{game.Cleric, 4},
	}
	for _, tc := range tests {
		t.Run(tc.t.String(), func(t *testing.T) {
			assert.True(t, IsWounded(game.Unit{Type: tc.t, Health: tc.threshold - 1}))
			assert.False(t, IsWounded(game.Unit{Type: tc.t, Health: tc.threshold}))
		})
	}
}

func TestIsWoundedPanicsOnUnknownType(t *testing.T) {
	assert.Panics(t, func() { IsWounded(game.Unit{Type: game.UnitTypeUnknown}) })
}

func TestTravelCandidates(t *testing.T) {
	self := game.Unit{ID: 1, Owner: us, Type: game.Pioneer, Health: 5}
	ownBase := game.Location{X: 0, Y: 1, IsBase: true, Owner: owner(us)}
	occupied := game.Location{X: 1, Y: 0, OccupyingUnit: unit(2, us, game.Worker, 5)}
	enemyBase := game.Location{X: 2, Y: 1, IsBase: true, Owner: owner(them)}
	neutral := game.Location{X: 1, Y: 2}

	in := moveInput(self, game.Location{X: 1, Y: 1, Owner: owner(us)}, ownBase, occupied, enemyBase, neutral)

	move, ok := Travel(Env{Rand: fixedSource{n: 0}}, in)
	require.True(t, ok)
	assert.Equal(t, game.MoveTravel, move.Type)
	assert.Equal(t, game.Coordinate{X: 2, Y: 1}, *move.Target)

	move, ok = Travel(Env{Rand: fixedSource{n: 1}}, in)
	require.True(t, ok)
	assert.Equal(t, game.Coordinate{X: 1, Y: 2}, *move.Target)
}

func TestTravelUsesEveryCandidate(t *testing.T) {
	self := game.Unit{ID: 1, Owner: us, Type: game.Soldier, Health: 9}
	in := moveInput(self, game.Location{X: 5, Y: 5},
		game.Location{X: 4, Y: 5}, game.Location{X: 6, Y: 5}, game.Location{X: 5, Y: 4}, game.Location{X: 5, Y: 6})

	env := Env{Rand: entropy.New(11)}
	seen := map[game.Coordinate]bool{}
	for range 200 {
		move, ok := Travel(env, in)
		require.True(t, ok)
		seen[*move.Target] = true
	}
	assert.Len(t, seen, 4)
}

func TestTravelWithoutCandidates(t *testing.T) {
	self := game.Unit{ID: 1, Owner: us, Type: game.Worker, Health: 5}
	in := moveInput(self, game.Location{},
		game.Location{IsBase: true, Owner: owner(us)},
		game.Location{OccupyingUnit: unit(3, them, game.Soldier, 6)})

	_, ok := Travel(Env{Rand: fixedSource{}}, in)
	assert.False(t, ok)
}

func TestStepTowardPOI(t *testing.T) {
	from := game.Location{X: 10, Y: 10}
	all := func(memory.POI) bool { return true }

	tests := []struct {
		name string
		poi  memory.POI
		want game.Coordinate
	}{
		{"east in range", memory.POI{X: 20, Y: 40}, game.Coordinate{X: 11, Y: 10}},
		{"west in range", memory.POI{X: 0, Y: 40}, game.Coordinate{X: 9, Y: 10}},
		{"same column steps west", memory.POI{X: 10, Y: 12}, game.Coordinate{X: 9, Y: 10}},
		{"x out of range, south", memory.POI{X: 40, Y: 25}, game.Coordinate{X: 10, Y: 11}},
		{"x out of range, north", memory.POI{X: -20, Y: 0}, game.Coordinate{X: 10, Y: 9}},
		{"edge of range", memory.POI{X: 25, Y: 99}, game.Coordinate{X: 11, Y: 10}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			move, ok := StepTowardPOI([]memory.POI{tc.poi}, from, all)
			require.True(t, ok)
			assert.Equal(t, game.MoveTravel, move.Type)
			assert.Equal(t, tc.want, *move.Target)
		})
	}
}

func TestStepTowardPOISkipsFarAndUnmatched(t *testing.T) {
	from := game.Location{X: 0, Y: 0}
	pois := []memory.POI{
		{X: 16, Y: -16, Resource: true},
		{X: 2, Y: 2, Resource: false},
		{X: -3, Y: 50, Resource: true},
	}
	move, ok := StepTowardPOI(pois, from, func(p memory.POI) bool { return p.Resource })
	require.True(t, ok)
	assert.Equal(t, game.Coordinate{X: -1, Y: 0}, *move.Target)

	_, ok = StepTowardPOI(pois[:1], from, func(p memory.POI) bool { return p.Resource })
	assert.False(t, ok)
}

func TestUnitMovePanicsOnUnknownType(t *testing.T) {
	in := moveInput(game.Unit{ID: 4, Type: game.UnitTypeUnknown}, game.Location{})
	assert.Panics(t, func() { UnitMove(Env{Rand: fixedSource{}}, in) })
}
