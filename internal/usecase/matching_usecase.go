package usecase

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"jobmatch/internal/domain/matching"
	applog "jobmatch/internal/logger"
	"jobmatch/internal/metrics"
	"jobmatch/internal/pkg/workerpool"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MatchingUsecase interface {
	CalculateMatch(ctx context.Context, candidateID, jobID uuid.UUID) (matching.MatchResult, error)
	Score(profile matching.CandidateMatchProfile, job matching.JobMatchRequirements) matching.MatchResult
	Suggest(result matching.MatchResult, sctx matching.SuggestionContext) []string
	ScoreBatch(ctx context.Context, profile matching.CandidateMatchProfile, jobs []matching.JobMatchRequirements) ([]matching.MatchResult, error)
}

// MaxBatchJobs bounds how many postings a single batch request may score.
const MaxBatchJobs = 50

type Matching struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	matches    repository.JobMatchRepository
	cache      Cache
	cacheTTL   time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

func NewMatchingUsecase(
	candidates repository.CandidateRepository,
	jobs repository.JobRepository,
	matches repository.JobMatchRepository,
	cache Cache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *Matching {
	logger = applog.OrNop(logger)
	return &Matching{
		candidates: candidates,
		jobs:       jobs,
		matches:    matches,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// CalculateMatch scores a stored candidate against a stored job. The latest
// score is persisted and the full result cached under a key that changes
// whenever the profile or the posting does.
func (u *Matching) CalculateMatch(ctx context.Context, candidateID, jobID uuid.UUID) (matching.MatchResult, error) {
	if candidateID == uuid.Nil {
		return matching.MatchResult{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return matching.MatchResult{}, ErrInvalidInput
	}

	profile, err := u.candidates.FindProfile(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return matching.MatchResult{}, ErrCandidateNotFound
		}
		return matching.MatchResult{}, fmt.Errorf("%w: find candidate profile: %w", ErrInternal, err)
	}

	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return matching.MatchResult{}, ErrJobNotFound
		}
		return matching.MatchResult{}, fmt.Errorf("%w: find job: %w", ErrInternal, err)
	}

	var key string
	if u.cache != nil {
		fp, err := MatchFingerprint(profile, job.Requirements)
		if err != nil {
			u.logger.Warn("match fingerprint failed", zap.Stringer("candidate_id", candidateID), zap.Stringer("job_id", jobID), zap.Error(err))
		} else {
			key = MatchCacheKey(candidateID, jobID, fp)
			var cached matching.MatchResult
			ok, err := u.cache.GetJSON(ctx, key, &cached)
			if err != nil {
				u.logger.Warn("match cache read failed", zap.String("key", key), zap.Error(err))
			}
			if ok {
				return cached, nil
			}
		}
	}

	res := u.score(profile, job.Requirements, "job")

	if u.matches != nil {
		if err := u.matches.Upsert(ctx, repository.JobMatchUpsert{
			CandidateID: candidateID,
			JobID:       jobID,
			Score:       res.MatchScore,
			MatchedAt:   u.now().UTC(),
		}); err != nil {
			u.logger.Warn("persist match score failed", zap.Stringer("candidate_id", candidateID), zap.Stringer("job_id", jobID), zap.Error(err))
		}
	}
	if key != "" {
		// Results keyed by an older fingerprint can never be read again.
		if err := u.cache.DeleteByPattern(ctx, matchCachePattern(candidateID, jobID)); err != nil {
			u.logger.Warn("match cache purge failed", zap.Stringer("candidate_id", candidateID), zap.Stringer("job_id", jobID), zap.Error(err))
		}
		if err := u.cache.SetJSON(ctx, key, res, u.cacheTTL); err != nil {
			u.logger.Warn("match cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return res, nil
}

// Score runs the engine on caller-supplied data without touching storage.
func (u *Matching) Score(profile matching.CandidateMatchProfile, job matching.JobMatchRequirements) matching.MatchResult {
	return u.score(profile, job, "adhoc")
}

// ScoreBatch scores one profile against several postings concurrently.
// Results keep the order of jobs.
func (u *Matching) ScoreBatch(ctx context.Context, profile matching.CandidateMatchProfile, jobs []matching.JobMatchRequirements) ([]matching.MatchResult, error) {
	if len(jobs) == 0 || len(jobs) > MaxBatchJobs {
		return nil, ErrInvalidInput
	}

	out := make([]matching.MatchResult, len(jobs))
	err := workerpool.Each(ctx, runtime.GOMAXPROCS(0), len(jobs), func(_ context.Context, i int) error {
		out[i] = u.score(profile, jobs[i], "batch")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Matching) Suggest(result matching.MatchResult, sctx matching.SuggestionContext) []string {
	return matching.GenerateSuggestions(result, sctx)
}

func (u *Matching) score(profile matching.CandidateMatchProfile, job matching.JobMatchRequirements, source string) matching.MatchResult {
	start := time.Now()
	res := matching.CalculateAt(profile, job, u.now())
	metrics.ScoringDuration.WithLabelValues("match").Observe(time.Since(start).Seconds())
	metrics.MatchesComputed.WithLabelValues(source).Inc()
	metrics.MatchScore.WithLabelValues(source).Observe(res.MatchScore)
	return res
}
