package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMatchesComputed(t *testing.T) {
	before := testutil.ToFloat64(MatchesComputed.WithLabelValues("test"))

	MatchesComputed.WithLabelValues("test").Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(MatchesComputed.WithLabelValues("test")))
}

func TestHistogramsCollect(t *testing.T) {
	MatchScore.WithLabelValues("test").Observe(72.5)
	ScoringDuration.WithLabelValues("test").Observe(0.01)

	assert.Equal(t, 1, testutil.CollectAndCount(MatchScore, "jobmatch_match_score"))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(ScoringDuration), 1)
}
