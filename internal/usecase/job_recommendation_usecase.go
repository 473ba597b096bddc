package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobmatch/internal/domain/recommendation"
	applog "jobmatch/internal/logger"
	"jobmatch/internal/metrics"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultRecommendationLimit = 10
	MaxRecommendationLimit     = 50
)

type JobRecommendationParams struct {
	Limit int
	// Refresh drops every cached feed of the candidate before ranking.
	Refresh bool
}

type JobRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, candidateID uuid.UUID, params JobRecommendationParams) ([]recommendation.Recommendation, error)
}

type JobRecommendation struct {
	candidates   repository.CandidateRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	cache        Cache
	cacheTTL     time.Duration
	jobPool      int
	logger       *zap.Logger
	now          func() time.Time
}

func NewJobRecommendationUsecase(
	candidates repository.CandidateRepository,
	jobs repository.JobRepository,
	applications repository.ApplicationRepository,
	cache Cache,
	cacheTTL time.Duration,
	jobPool int,
	logger *zap.Logger,
) *JobRecommendation {
	logger = applog.OrNop(logger)
	if jobPool <= 0 || jobPool > repository.MaxActivePostings {
		jobPool = repository.MaxActivePostings
	}
	return &JobRecommendation{
		candidates:   candidates,
		jobs:         jobs,
		applications: applications,
		cache:        cache,
		cacheTTL:     cacheTTL,
		jobPool:      jobPool,
		logger:       logger,
		now:          time.Now,
	}
}

func (u *JobRecommendation) GetRecommendations(ctx context.Context, candidateID uuid.UUID, params JobRecommendationParams) ([]recommendation.Recommendation, error) {
	if candidateID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	limit := params.Limit
	if limit < 0 {
		return nil, ErrInvalidInput
	}
	if limit == 0 {
		limit = DefaultRecommendationLimit
	}
	if limit > MaxRecommendationLimit {
		limit = MaxRecommendationLimit
	}

	// History is read on every call so applications made after a feed was
	// cached still exclude their jobs.
	history, err := u.applications.FindHistory(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("%w: find candidate history: %w", ErrInternal, err)
	}

	key := RecommendationsCacheKey(candidateID, limit)
	if u.cache != nil {
		if params.Refresh {
			if err := u.cache.DeleteByPattern(ctx, recommendationsCachePattern(candidateID)); err != nil {
				u.logger.Warn("recommendation cache purge failed", zap.Stringer("candidate_id", candidateID), zap.Error(err))
			}
		} else {
			var cached []recommendation.Recommendation
			ok, err := u.cache.GetJSON(ctx, key, &cached)
			if err != nil {
				u.logger.Warn("recommendation cache read failed", zap.String("key", key), zap.Error(err))
			}
			switch {
			case ok && !containsApplied(cached, history):
				metrics.RecommendationCache.WithLabelValues("hit").Inc()
				return cached, nil
			case ok:
				metrics.RecommendationCache.WithLabelValues("stale").Inc()
			default:
				metrics.RecommendationCache.WithLabelValues("miss").Inc()
			}
		}
	}

	profile, err := u.candidates.FindProfile(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("%w: find candidate profile: %w", ErrInternal, err)
	}

	jobs, err := u.jobs.ListActivePostings(ctx, u.jobPool)
	if err != nil {
		return nil, fmt.Errorf("%w: list active postings: %w", ErrInternal, err)
	}

	postings := make([]recommendation.Posting, 0, len(jobs))
	for _, j := range jobs {
		postings = append(postings, recommendation.Posting{
			Job:         j.Requirements,
			JobType:     j.JobType,
			PublishedAt: j.PublishedAt,
		})
	}

	start := time.Now()
	recs := recommendation.Rank(recommendation.RankInput{
		Profile:  profile,
		Postings: postings,
		History:  history,
		Limit:    limit,
		Now:      u.now(),
	})
	metrics.ScoringDuration.WithLabelValues("recommendation").Observe(time.Since(start).Seconds())
	metrics.MatchesComputed.WithLabelValues("recommendation").Add(float64(len(postings)))
	for _, r := range recs {
		metrics.MatchScore.WithLabelValues("recommendation").Observe(r.BaseScore)
	}

	u.logger.Debug("recommendations ranked",
		zap.Stringer("candidate_id", candidateID),
		zap.Int("postings", len(postings)),
		zap.Int("returned", len(recs)),
	)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, recs, u.cacheTTL); err != nil {
			u.logger.Warn("recommendation cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return recs, nil
}

func containsApplied(recs []recommendation.Recommendation, h recommendation.History) bool {
	for _, r := range recs {
		if h.HasApplied(r.JobID) {
			return true
		}
	}
	return false
}
