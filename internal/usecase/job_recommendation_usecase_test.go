package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobmatch/internal/domain/recommendation"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecommendation(c *mockCandidateRepo, j *mockJobRepo, a *mockApplicationRepo, cache Cache, pool int) *JobRecommendation {
	uc := NewJobRecommendationUsecase(c, j, a, cache, time.Minute, pool, nil)
	uc.now = func() time.Time { return testNow }
	return uc
}

func TestJobRecommendation_Validation(t *testing.T) {
	uc := newRecommendation(&mockCandidateRepo{}, &mockJobRepo{}, &mockApplicationRepo{}, nil, 0)

	_, err := uc.GetRecommendations(context.Background(), uuid.Nil, JobRecommendationParams{})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = uc.GetRecommendations(context.Background(), uuid.New(), JobRecommendationParams{Limit: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestJobRecommendation_RanksAndExcludesApplied(t *testing.T) {
	applied := backendJob("Backend Engineer")
	fresh := backendJob("Backend Engineer")
	old := backendJob("Senior Backend Engineer")
	old.PublishedAt = testNow.AddDate(0, -2, 0)

	jobs := &mockJobRepo{postings: []repository.Job{applied, old, fresh}}
	apps := &mockApplicationRepo{history: recommendation.History{AppliedJobIDs: []uuid.UUID{applied.Requirements.ID}}}
	uc := newRecommendation(&mockCandidateRepo{profile: backendProfile()}, jobs, apps, nil, 500)

	recs, err := uc.GetRecommendations(context.Background(), uuid.New(), JobRecommendationParams{})
	require.NoError(t, err)
	assert.Equal(t, repository.MaxActivePostings, jobs.limit)

	require.Len(t, recs, 2)
	assert.Equal(t, fresh.Requirements.ID, recs[0].JobID)
	assert.Equal(t, old.Requirements.ID, recs[1].JobID)
	for _, r := range recs {
		assert.NotEqual(t, applied.Requirements.ID, r.JobID)
	}
}

func TestJobRecommendation_CachesFeed(t *testing.T) {
	c, mr := newTestCache(t)
	cands := &mockCandidateRepo{profile: backendProfile()}
	jobs := &mockJobRepo{postings: []repository.Job{backendJob("Backend Engineer")}}
	uc := newRecommendation(cands, jobs, &mockApplicationRepo{}, c, 50)
	candID := uuid.New()

	first, err := uc.GetRecommendations(context.Background(), candID, JobRecommendationParams{Limit: 80})
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.True(t, mr.Exists(RecommendationsCacheKey(candID, MaxRecommendationLimit)))
	assert.Equal(t, 50, jobs.limit)

	second, err := uc.GetRecommendations(context.Background(), candID, JobRecommendationParams{Limit: 80})
	require.NoError(t, err)
	assert.Equal(t, first[0].JobID, second[0].JobID)
	assert.Equal(t, first[0].FinalScore, second[0].FinalScore)
	assert.Equal(t, 1, cands.calls)

	_, err = uc.GetRecommendations(context.Background(), candID, JobRecommendationParams{Limit: 80, Refresh: true})
	require.NoError(t, err)
	assert.Equal(t, 2, cands.calls)
}

func TestJobRecommendation_CachedFeedDropsNewlyAppliedJobs(t *testing.T) {
	c, _ := newTestCache(t)
	target := backendJob("Backend Engineer")
	other := backendJob("Senior Backend Engineer")
	cands := &mockCandidateRepo{profile: backendProfile()}
	jobs := &mockJobRepo{postings: []repository.Job{target, other}}
	apps := &mockApplicationRepo{}
	uc := newRecommendation(cands, jobs, apps, c, 50)
	candID := uuid.New()

	first, err := uc.GetRecommendations(context.Background(), candID, JobRecommendationParams{})
	require.NoError(t, err)
	require.Len(t, first, 2)

	apps.history = recommendation.History{AppliedJobIDs: []uuid.UUID{target.Requirements.ID}}

	second, err := uc.GetRecommendations(context.Background(), candID, JobRecommendationParams{})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, other.Requirements.ID, second[0].JobID)
	assert.Equal(t, 2, cands.calls)

	third, err := uc.GetRecommendations(context.Background(), candID, JobRecommendationParams{})
	require.NoError(t, err)
	require.Len(t, third, 1)
	assert.Equal(t, other.Requirements.ID, third[0].JobID)
	assert.Equal(t, 2, cands.calls)
}

func TestJobRecommendation_RepositoryErrors(t *testing.T) {
	boom := errors.New("timeout")

	uc := newRecommendation(&mockCandidateRepo{err: repository.ErrCandidateNotFound}, &mockJobRepo{}, &mockApplicationRepo{}, nil, 0)
	_, err := uc.GetRecommendations(context.Background(), uuid.New(), JobRecommendationParams{})
	assert.ErrorIs(t, err, ErrCandidateNotFound)

	uc = newRecommendation(&mockCandidateRepo{}, &mockJobRepo{}, &mockApplicationRepo{err: boom}, nil, 0)
	_, err = uc.GetRecommendations(context.Background(), uuid.New(), JobRecommendationParams{})
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, boom)

	uc = newRecommendation(&mockCandidateRepo{}, &mockJobRepo{err: boom}, &mockApplicationRepo{}, nil, 0)
	_, err = uc.GetRecommendations(context.Background(), uuid.New(), JobRecommendationParams{})
	assert.ErrorIs(t, err, ErrInternal)
}
