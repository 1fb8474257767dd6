package memory

import (
	"encoding/json"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// GameState is the persisted memory of one game.
type GameState struct {
	GameID           string `json:"gameId"`
	PointsOfInterest []POI  `json:"pointsOfInterest"`
}

// NewGameState returns an empty memory for the given game.
func NewGameState(gameID string) *GameState {
	return &GameState{GameID: gameID, PointsOfInterest: []POI{}}
}

// Append records pois in hint order.
func (s *GameState) Append(pois ...POI) {
	s.PointsOfInterest = append(s.PointsOfInterest, pois...)
}

// POIs returns the remembered points of interest. The slice is shared;
// callers must not modify it.
func (s *GameState) POIs() []POI {
	return s.PointsOfInterest
}

// Clone returns a deep copy.
func (s *GameState) Clone() *GameState {
	c := &GameState{GameID: s.GameID, PointsOfInterest: make([]POI, len(s.PointsOfInterest))}
	for i, p := range s.PointsOfInterest {
		if p.Unit != nil {
			u := *p.Unit
			p.Unit = &u
		}
		c.PointsOfInterest[i] = p
	}
	return c
}

// Digest hashes the content of the state. Equal content yields equal digests.
func (s *GameState) Digest() uint64 {
	pois := s.PointsOfInterest
	if pois == nil {
		pois = []POI{}
	}
	// Marshalling plain structs, slices and ints cannot fail.
	b, _ := json.Marshal(GameState{GameID: s.GameID, PointsOfInterest: pois})
	return xxhash.Sum64(b)
}

// HasChangedSince reports whether the content differs from the content that
// produced digest d. It has no side effects.
func (s *GameState) HasChangedSince(d uint64) bool {
	return s.Digest() != d
}

// Equal compares game id and POI list.
func (s *GameState) Equal(o *GameState) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.GameID == o.GameID && slices.EqualFunc(s.PointsOfInterest, o.PointsOfInterest, func(a, b POI) bool {
		if a.X != b.X || a.Y != b.Y || a.Resource != b.Resource {
			return false
		}
		if a.Unit == nil || b.Unit == nil {
			return a.Unit == b.Unit
		}
		return *a.Unit == *b.Unit
	})
}

// Tracker remembers the digest of the last persisted content.
type Tracker struct {
	persisted uint64
	valid     bool
}

// NewTrackerAt starts tracking from content that is already persisted.
func NewTrackerAt(d uint64) Tracker {
	return Tracker{persisted: d, valid: true}
}

// Changed reports whether s needs to be persisted. Repeated calls without a
// mutation or a MarkPersisted return the same answer.
func (t *Tracker) Changed(s *GameState) bool {
	return !t.valid || s.HasChangedSince(t.persisted)
}

// MarkPersisted records d as the digest of the durable copy.
func (t *Tracker) MarkPersisted(d uint64) {
	t.persisted = d
	t.valid = true
}
