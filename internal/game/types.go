// Package game provides the per-turn view model exchanged with the game server.
// Everything here is a read-only snapshot: the engine proposes moves, the
// server executes them.
package game

// Coordinate is a tile position on the game map.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Unit is a unit as observed this turn.
type Unit struct {
	ID           int      `json:"id"`
	Owner        int      `json:"owner"`
	Type         UnitType `json:"type" validate:"required"`
	Health       int      `json:"health" validate:"gte=0"`
	DefenseBonus bool     `json:"defenseBonus"`
}

// Location is a single map tile. Owner is nil for neutral tiles.
type Location struct {
	X             int   `json:"x"`
	Y             int   `json:"y"`
	IsBase        bool  `json:"base"`
	IsResource    bool  `json:"resource"`
	IsFortified   bool  `json:"fortified"`
	Owner         *int  `json:"owner,omitempty"`
	OccupyingUnit *Unit `json:"occupyingUnit,omitempty"`
}

// Coordinate returns the tile position.
func (l Location) Coordinate() Coordinate {
	return Coordinate{X: l.X, Y: l.Y}
}

// Neutral reports whether no faction owns the tile.
func (l Location) Neutral() bool {
	return l.Owner == nil
}

// OwnedBy reports whether the tile belongs to the given faction.
func (l Location) OwnedBy(faction int) bool {
	return l.Owner != nil && *l.Owner == faction
}

// Occupied reports whether a unit stands on the tile.
func (l Location) Occupied() bool {
	return l.OccupyingUnit != nil
}

// Faction is the controlled faction's statistics for this turn.
type Faction struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Gold          int64      `json:"gold"`
	Population    int        `json:"population" validate:"gte=0"`
	PopulationCap int        `json:"populationCap" validate:"gte=0"`
	TerritorySize int        `json:"territorySize" validate:"gte=0"`
	Score         int64      `json:"score"`
	Kills         int        `json:"kills" validate:"gte=0"`
	Base          Coordinate `json:"baseLocation"`
}

// GameContext carries the static rules of the running game.
type GameContext struct {
	Turn           int                    `json:"turn"`
	GameID         string                 `json:"gameId" validate:"required"`
	MapWidth       int                    `json:"mapWidth"`
	MapHeight      int                    `json:"mapHeight"`
	UnitBaseHealth map[UnitType]int       `json:"unitBaseHealth"`
	UnitCost       map[UnitType]int64     `json:"unitCost"`
	UnitMoveCost   map[UnitMoveType]int64 `json:"unitMoveCost"`
}

// CostOf returns the build cost of t. A type missing from the cost table
// cannot be afforded.
func (c GameContext) CostOf(t UnitType) (int64, bool) {
	cost, ok := c.UnitCost[t]
	return cost, ok
}

// BuildSlot describes the unit currently under construction at the base.
type BuildSlot struct {
	Type     UnitType `json:"type"`
	Progress int      `json:"progress"`
}
