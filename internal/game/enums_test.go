package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitTypeRejectsUnknownName(t *testing.T) {
	var u Unit
	err := json.Unmarshal([]byte(`{"id":1,"owner":0,"type":"ARCHER","health":5}`), &u)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ARCHER")
}

func TestGameContextDecodesCostTable(t *testing.T) {
	raw := `{
		"gameId": "g-1",
		"unitCost": {"PIONEER": 50, "WORKER": 75, "SOLDIER": 120, "CLERIC": 150},
		"unitMoveCost": {"FORTIFY": 150, "CONVERT": 150}
	}`
	var ctx GameContext
	require.NoError(t, json.Unmarshal([]byte(raw), &ctx))

	cost, ok := ctx.CostOf(Soldier)
	require.True(t, ok)
	assert.Equal(t, int64(120), cost)
	assert.Equal(t, int64(150), ctx.UnitMoveCost[MoveFortify])

	_, ok = ctx.CostOf(UnitTypeUnknown)
	assert.False(t, ok)
}

func TestMovesEncodeServerNames(t *testing.T) {
	b, err := json.Marshal(BuildUnit(Cleric))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"START_BUILDING_UNIT","unitToBuild":"CLERIC"}`, string(b))

	b, err = json.Marshal(TravelTo(Coordinate{X: 3, Y: -1}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"TRAVEL","target":{"x":3,"y":-1}}`, string(b))
}

func TestLocationOwnership(t *testing.T) {
	owner := 2
	loc := Location{X: 1, Y: 1, Owner: &owner}
	assert.True(t, loc.OwnedBy(2))
	assert.False(t, loc.OwnedBy(3))
	assert.False(t, loc.Neutral())
	assert.True(t, Location{}.Neutral())
	assert.False(t, Location{}.OwnedBy(0))
}
