// Package agents decides what the faction's base and units do each turn.
// Every policy is a priority-ordered rule chain: the first matching rule
// produces the move, and every chain ends in a fallback so a move is
// always returned.
package agents

import (
	"github.com/talgya/faction-logic/internal/entropy"
	"github.com/talgya/faction-logic/internal/memory"
)

// Counters receives the monotonic counts the policies report.
type Counters interface {
	Healed()
	Fortified()
}

// Env is the read-only context shared by all policies for one decision.
type Env struct {
	Rand     entropy.Source
	POIs     []memory.POI
	Counters Counters
}

func (e Env) counters() Counters {
	if e.Counters == nil {
		return noCounters{}
	}
	return e.Counters
}

type noCounters struct{}

func (noCounters) Healed()    {}
func (noCounters) Fortified() {}
