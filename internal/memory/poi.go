// Package memory holds the faction's cross-turn memory: the points of
// interest hinted during a game and the change tracking that decides when
// the memory must be persisted again.
package memory

import "github.com/talgya/faction-logic/internal/game"

// POI is a remembered notable location. Entries are append-only within a
// game; duplicates and stale occupants are expected.
type POI struct {
	X        int        `json:"x"`
	Y        int        `json:"y"`
	Resource bool       `json:"resource"`
	Unit     *game.Unit `json:"unit,omitempty"`
}

// FromLocation records a hinted location as a POI.
func FromLocation(l game.Location) POI {
	p := POI{X: l.X, Y: l.Y, Resource: l.IsResource}
	if l.OccupyingUnit != nil {
		u := *l.OccupyingUnit
		p.Unit = &u
	}
	return p
}

// Occupied reports whether a unit was seen on the POI when it was hinted.
func (p POI) Occupied() bool {
	return p.Unit != nil
}

// Coordinate returns the POI position.
func (p POI) Coordinate() game.Coordinate {
	return game.Coordinate{X: p.X, Y: p.Y}
}
