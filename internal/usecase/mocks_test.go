package usecase

import (
	"context"
	"testing"
	"time"

	"jobmatch/internal/domain/interview"
	"jobmatch/internal/domain/matching"
	"jobmatch/internal/domain/recommendation"
	"jobmatch/internal/infrastructure/cache"
	"jobmatch/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type mockCandidateRepo struct {
	profile matching.CandidateMatchProfile
	err     error
	calls   int
}

func (m *mockCandidateRepo) FindProfile(_ context.Context, id uuid.UUID) (matching.CandidateMatchProfile, error) {
	m.calls++
	if m.err != nil {
		return matching.CandidateMatchProfile{}, m.err
	}
	p := m.profile
	p.ID = id
	return p, nil
}

type mockJobRepo struct {
	job      repository.Job
	postings []repository.Job
	err      error
	limit    int
}

func (m *mockJobRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Job, error) {
	if m.err != nil {
		return repository.Job{}, m.err
	}
	j := m.job
	j.Requirements.ID = id
	return j, nil
}

func (m *mockJobRepo) ListActivePostings(_ context.Context, limit int) ([]repository.Job, error) {
	m.limit = limit
	return m.postings, m.err
}

type mockApplicationRepo struct {
	history recommendation.History
	err     error
}

func (m *mockApplicationRepo) FindHistory(context.Context, uuid.UUID) (recommendation.History, error) {
	return m.history, m.err
}

type mockJobMatchRepo struct {
	upserts []repository.JobMatchUpsert
	err     error
}

func (m *mockJobMatchRepo) Upsert(_ context.Context, in repository.JobMatchUpsert) error {
	m.upserts = append(m.upserts, in)
	return m.err
}

type mockInterviewRepo struct {
	session repository.InterviewSession
	err     error
}

func (m *mockInterviewRepo) FindSession(_ context.Context, id uuid.UUID) (repository.InterviewSession, error) {
	if m.err != nil {
		return repository.InterviewSession{}, m.err
	}
	s := m.session
	s.ID = id
	return s, nil
}

func newTestCache(t *testing.T) (*cache.Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewRedisWithClient(client, time.Minute, nil), mr
}

var testNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func backendProfile() matching.CandidateMatchProfile {
	return matching.CandidateMatchProfile{
		Skills:   []string{"Go", "PostgreSQL", "Docker"},
		Headline: "Backend Engineer",
		Location: "Hanoi",
		Experiences: []matching.WorkExperience{{
			Company:   "Acme",
			Position:  "Backend Engineer",
			StartDate: testNow.AddDate(-3, 0, 0),
			IsCurrent: true,
		}},
	}
}

func backendJob(title string) repository.Job {
	return repository.Job{
		Requirements: matching.JobMatchRequirements{
			ID:             uuid.New(),
			Title:          title,
			Company:        "Globex",
			Description:    "Build APIs in Go backed by PostgreSQL.",
			RequiredSkills: []string{"Go", "PostgreSQL"},
			Location:       "Hanoi",
			IsRemote:       true,
		},
		JobType:     "full_time",
		Status:      "active",
		PublishedAt: testNow.Add(-2 * time.Hour),
	}
}

func sampleTurns() []interview.Turn {
	return []interview.Turn{
		{OrderIndex: 1, Question: "Explain how you would design a REST API in Go", Answer: "I would define resources first, then use net/http handlers with PostgreSQL for storage and Redis for caching."},
		{OrderIndex: 2, Question: "Tell me about a time you handled a conflict", Answer: ""},
	}
}
