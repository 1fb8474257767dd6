// Package metrics exposes the faction's running statistics to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/talgya/faction-logic/internal/game"
)

// Metrics holds the faction gauges and decision counters on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	Territory  prometheus.Gauge
	Population prometheus.Gauge
	Score      prometheus.Gauge
	Kills      prometheus.Gauge
	Gold       prometheus.Gauge

	Heals           prometheus.Counter
	Fortifications  prometheus.Counter
	PersistFailures prometheus.Counter
}

// New creates and registers all collectors.
func New() *Metrics {
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
	}
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: help})
	}

	m := &Metrics{
		registry:        prometheus.NewRegistry(),
		Territory:       gauge("faction_territory", "Amount of territory held by the faction."),
		Population:      gauge("faction_population", "Population of the faction."),
		Score:           gauge("faction_score", "Score of the faction."),
		Kills:           gauge("faction_kills", "Kills of the faction."),
		Gold:            gauge("faction_gold", "Gold of the faction."),
		Heals:           counter("cleric_heals", "Units healed by clerics."),
		Fortifications:  counter("worker_fortifications", "Tiles fortified by workers."),
		PersistFailures: counter("gamestate_persist_failures_total", "Failed game state snapshot writes."),
	}
	m.registry.MustRegister(
		m.Territory, m.Population, m.Score, m.Kills, m.Gold,
		m.Heals, m.Fortifications, m.PersistFailures,
	)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveFaction overwrites the faction gauges with this turn's snapshot.
// The population gauge tracks territory size; existing dashboards plot it
// that way.
func (m *Metrics) ObserveFaction(f game.Faction) {
	m.Territory.Set(float64(f.TerritorySize))
	m.Population.Set(float64(f.TerritorySize))
	m.Score.Set(float64(f.Score))
	m.Kills.Set(float64(f.Kills))
	m.Gold.Set(float64(f.Gold))
}

func (m *Metrics) Healed()        { m.Heals.Inc() }
func (m *Metrics) Fortified()     { m.Fortifications.Inc() }
func (m *Metrics) PersistFailed() { m.PersistFailures.Inc() }
