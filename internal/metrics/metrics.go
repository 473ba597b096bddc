package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobmatch_matches_computed_total",
			Help: "Total number of candidate/job match scores computed",
		},
		[]string{"source"},
	)

	MatchScore = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobmatch_match_score",
			Help:    "Distribution of computed match scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
		[]string{"source"},
	)

	ScoringDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "jobmatch_scoring_duration_seconds",
			Help: "Duration of scoring operations in seconds",
		},
		[]string{"operation"},
	)

	RecommendationCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobmatch_recommendation_cache_total",
			Help: "Recommendation feed cache lookups by result",
		},
		[]string{"result"},
	)

	InterviewEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobmatch_interview_evaluations_total",
			Help: "Total number of interview evaluations by recommendation",
		},
		[]string{"recommendation"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobmatch_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "jobmatch_http_request_duration_seconds",
			Help: "HTTP request latency in seconds",
		},
		[]string{"method", "route"},
	)
)
