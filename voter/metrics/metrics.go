// Package metrics exposes the voting client's prometheus instruments
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fhevote"

// refresh results
const (
	RefreshOK     = "ok"
	RefreshFailed = "failed"
	RefreshStale  = "stale"
)

// Metrics groups the instruments the session controller reports to
type Metrics struct {
	votesSubmitted    prometheus.Counter
	votesConfirmed    prometheus.Counter
	duplicateAttempts prometheus.Counter
	refreshes         *prometheus.CounterVec
	errors            *prometheus.CounterVec
	transitions       *prometheus.CounterVec
	plaintextTally    prometheus.Gauge
}

// New registers the instruments with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		votesSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_submitted_total",
			Help:      "Vote transactions accepted by the wallet and sent to the node",
		}),
		votesConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_confirmed_total",
			Help:      "Vote transactions that reached the required confirmation depth",
		}),
		duplicateAttempts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_vote_attempts_total",
			Help:      "Vote requests refused because a vote was already in flight",
		}),
		refreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tally_refreshes_total",
			Help:      "Tally refreshes by result",
		}, []string{"result"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Failed session operations by operation and error kind",
		}, []string{"op", "kind"}),
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "phase_transitions_total",
			Help:      "Session phase transitions by target phase",
		}, []string{"phase"}),
		plaintextTally: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "plaintext_tally",
			Help:      "Last decrypted tally, if the account may decrypt it",
		}),
	}
}

// Nop returns instruments registered nowhere
func Nop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) VoteSubmitted()        { m.votesSubmitted.Inc() }
func (m *Metrics) VoteConfirmed()        { m.votesConfirmed.Inc() }
func (m *Metrics) DuplicateVoteAttempt() { m.duplicateAttempts.Inc() }

// Refreshed counts a tally refresh with the given result
func (m *Metrics) Refreshed(result string) {
	m.refreshes.WithLabelValues(result).Inc()
}

// Failed counts a failed operation
func (m *Metrics) Failed(op, kind string) {
	m.errors.WithLabelValues(op, kind).Inc()
}

// Transitioned counts a transition into phase
func (m *Metrics) Transitioned(phase string) {
	m.transitions.WithLabelValues(phase).Inc()
}

// PlaintextTally records the last decrypted tally
func (m *Metrics) PlaintextTally(n uint32) {
	m.plaintextTally.Set(float64(n))
}
