package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/fhevote/voter/metrics"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.VoteSubmitted()
	m.VoteConfirmed()
	m.DuplicateVoteAttempt()
	m.DuplicateVoteAttempt()
	m.Refreshed(metrics.RefreshOK)
	m.Refreshed(metrics.RefreshStale)
	m.Failed("vote", "SubmissionRejected")
	m.Transitioned("ready")
	m.PlaintextTally(5)

	families, err := reg.Gather()
	assert.NoError(t, err)
	assert.Len(t, families, 7)

	count, err := testutil.GatherAndCount(reg, "fhevote_tally_refreshes_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(reg, "fhevote_errors_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	// registering twice on the same registry is a programming error
	assert.Panics(t, func() { metrics.New(reg) })
	assert.NotPanics(t, func() { metrics.Nop(); metrics.Nop() })
}
