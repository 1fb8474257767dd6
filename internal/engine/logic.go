// Package engine decides the faction's turns and keeps its memory between them.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/talgya/faction-logic/internal/agents"
	"github.com/talgya/faction-logic/internal/entropy"
	"github.com/talgya/faction-logic/internal/game"
	"github.com/talgya/faction-logic/internal/memory"
	"github.com/talgya/faction-logic/internal/metrics"
	"github.com/talgya/faction-logic/internal/persistence"
)

// Acknowledgements returned to hint senders.
const (
	AckPOIs      = "POI list received"
	AckBonusCode = "Bonuscode received"
)

// Logic is the faction's decision entry point: one base turn and one turn
// per unit, plus the hints that feed the faction's memory. It owns the
// memory, the pending bonus code and the snapshot store. Mutating calls run
// one at a time; unit turns only read.
type Logic struct {
	mu        sync.RWMutex
	state     *memory.GameState
	tracker   memory.Tracker
	bonusCode *game.BonusCode

	store   persistence.Store
	metrics *metrics.Metrics
	rand    entropy.Source
}

// Status summarizes the faction memory.
type Status struct {
	GameID           string `json:"gameId"`
	PointsOfInterest int    `json:"pointsOfInterest"`
	BonusCodePending bool   `json:"bonusCodePending"`
}

// New restores the last snapshot from store, or starts empty when none can
// be read.
func New(ctx context.Context, store persistence.Store, m *metrics.Metrics, rnd entropy.Source) *Logic {
	l := &Logic{store: store, metrics: m, rand: rnd}
	l.restore(ctx)
	return l
}

func (l *Logic) restore(ctx context.Context) {
	state, err := l.store.Load(ctx)
	switch {
	case errors.Is(err, persistence.ErrNoSnapshot):
		slog.Info("no game state snapshot, starting fresh")
	case err != nil:
		slog.Warn("could not restore game state, starting fresh", "error", err)
	default:
		l.state = state
		l.tracker = memory.NewTrackerAt(state.Digest())
		slog.Info("game state restored", "game_id", state.GameID, "pois", len(state.POIs()))
		return
	}
	l.state = memory.NewGameState("")
	l.tracker = memory.Tracker{}
}

// NextBaseMove decides the base's move for this turn. A new game id resets
// the faction memory; a changed memory is persisted before deciding.
func (l *Logic) NextBaseMove(ctx context.Context, in game.BaseMoveInput) game.BaseMove {
	l.mu.Lock()
	defer l.mu.Unlock()

	if in.Context.GameID != l.state.GameID {
		slog.Info("start running game, resetting game state", "game_id", in.Context.GameID, "previous_game_id", l.state.GameID)
		l.state = memory.NewGameState(in.Context.GameID)
	}

	l.metrics.ObserveFaction(in.Faction)
	l.persist(ctx)

	if l.bonusCode != nil {
		code := l.bonusCode.Code
		l.bonusCode = nil
		slog.Info("redeeming bonus code", "code", code)
		return game.RedeemBonusCode(code)
	}

	return agents.BaseMove(l.env(l.state.POIs()), in)
}

// persist writes the snapshot if its content changed since the last
// successful write. Failures are logged and counted; the next turn retries.
func (l *Logic) persist(ctx context.Context) {
	if !l.tracker.Changed(l.state) {
		return
	}
	digest := l.state.Digest()
	if err := l.store.Save(ctx, l.state); err != nil {
		l.metrics.PersistFailed()
		slog.Warn("could not write game state snapshot", "game_id", l.state.GameID, "error", err)
		return
	}
	l.tracker.MarkPersisted(digest)
	slog.Info("game state snapshot written", "game_id", l.state.GameID, "pois", len(l.state.POIs()))
}

// NextUnitMove decides one unit's move for this turn.
func (l *Logic) NextUnitMove(ctx context.Context, in game.UnitMoveInput) game.UnitMove {
	l.mu.RLock()
	pois := l.state.POIs()
	l.mu.RUnlock()

	move := agents.UnitMove(l.env(pois), in)
	slog.Debug("unit move", "unit_id", in.Unit.ID, "unit_type", in.Unit.Type, "move", move.Type)
	return move
}

// RegisterPOIs remembers every hinted location. Nothing is deduplicated;
// the snapshot is written on the next base turn.
func (l *Logic) RegisterPOIs(ctx context.Context, hint game.POIsHint) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	before := len(l.state.POIs())
	for _, loc := range hint.Locations {
		l.state.Append(memory.FromLocation(loc))
	}
	slog.Info("received POI list", "game_id", hint.GameID, "before", before, "after", len(l.state.POIs()))
	return AckPOIs
}

// RegisterBonusCode stages code for the next base turn, replacing any code
// that was not redeemed yet.
func (l *Logic) RegisterBonusCode(ctx context.Context, code game.BonusCode) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.bonusCode != nil {
		slog.Warn("discarding unredeemed bonus code", "code", l.bonusCode.Code)
	}
	c := code
	l.bonusCode = &c
	slog.Info("received bonus code", "type", code.Type, "valid_until", code.ValidUntil)
	return AckBonusCode
}

// Status reports the current memory size and bonus code slot.
func (l *Logic) Status() Status {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Status{
		GameID:           l.state.GameID,
		PointsOfInterest: len(l.state.POIs()),
		BonusCodePending: l.bonusCode != nil,
	}
}

// Snapshot returns a copy of the faction memory.
func (l *Logic) Snapshot() *memory.GameState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.Clone()
}

func (l *Logic) env(pois []memory.POI) agents.Env {
	return agents.Env{Rand: l.rand, POIs: pois, Counters: l.metrics}
}
