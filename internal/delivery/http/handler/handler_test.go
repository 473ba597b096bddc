package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/domain/interview"
	"jobmatch/internal/domain/matching"
	"jobmatch/internal/domain/recommendation"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type mockMatching struct {
	result matching.MatchResult
	err    error
	gotJob uuid.UUID
}

func (m *mockMatching) CalculateMatch(_ context.Context, _, jobID uuid.UUID) (matching.MatchResult, error) {
	m.gotJob = jobID
	return m.result, m.err
}

func (m *mockMatching) Score(p matching.CandidateMatchProfile, j matching.JobMatchRequirements) matching.MatchResult {
	return matching.Calculate(p, j)
}

func (m *mockMatching) Suggest(r matching.MatchResult, sctx matching.SuggestionContext) []string {
	return matching.GenerateSuggestions(r, sctx)
}

func (m *mockMatching) ScoreBatch(_ context.Context, p matching.CandidateMatchProfile, jobs []matching.JobMatchRequirements) ([]matching.MatchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]matching.MatchResult, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, matching.Calculate(p, j))
	}
	return out, nil
}

type mockRecommendations struct {
	params usecase.JobRecommendationParams
	items  []recommendation.Recommendation
	err    error
}

func (m *mockRecommendations) GetRecommendations(_ context.Context, _ uuid.UUID, p usecase.JobRecommendationParams) ([]recommendation.Recommendation, error) {
	m.params = p
	return m.items, m.err
}

type mockInterviews struct {
	in      usecase.EvaluateInput
	options interview.Options
	err     error
}

func (m *mockInterviews) Evaluate(_ context.Context, in usecase.EvaluateInput) (interview.Feedback, error) {
	m.in = in
	return interview.GenerateFeedback(interview.FeedbackInput{Transcript: in.Transcript, Turns: in.Turns, Options: in.Options}), m.err
}

func (m *mockInterviews) BuildOptions(in interview.AutoOptionsInput) interview.Options {
	return interview.BuildAutoOptions(in)
}

func (m *mockInterviews) EvaluateSession(_ context.Context, _ uuid.UUID, client interview.Options) (interview.Feedback, error) {
	m.options = client
	return interview.Feedback{OverallScore: 70, Recommendation: interview.RecommendationConsider}, m.err
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

var testCandidate = uuid.New()

func newTestApp(register func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	api := app.Group("/api/v1", func(c fiber.Ctx) error {
		c.Locals(middleware.CtxCandidateIDKey, testCandidate)
		return c.Next()
	})
	register(api)
	return app
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

const matchBody = `{
	"candidate": {"skills": ["Go", "PostgreSQL"], "headline": "Backend Engineer", "location": "Hanoi"},
	"job": {"title": "Backend Engineer", "required_skills": ["Go", "PostgreSQL", "Kafka"], "is_remote": true}
}`

func TestMatchHandler_Score(t *testing.T) {
	app := newTestApp(NewMatchHandler(&mockMatching{}).RegisterRoutes)

	status, body := call(t, app, fiber.MethodPost, "/api/v1/match", matchBody)
	require.Equal(t, fiber.StatusOK, status)

	var res matching.MatchResult
	require.NoError(t, json.Unmarshal(body.Data, &res))
	assert.Equal(t, []string{"Kafka"}, res.Details.MissingSkills)
	assert.Greater(t, res.MatchScore, 0.0)
}

func TestMatchHandler_ScoreValidation(t *testing.T) {
	app := newTestApp(NewMatchHandler(&mockMatching{}).RegisterRoutes)

	status, body := call(t, app, fiber.MethodPost, "/api/v1/match", `{"candidate": {}}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, string(body.Data), `"field":"job"`)

	status, _ = call(t, app, fiber.MethodPost, "/api/v1/match", `{oops`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestMatchHandler_Suggestions(t *testing.T) {
	app := newTestApp(NewMatchHandler(&mockMatching{}).RegisterRoutes)

	status, body := call(t, app, fiber.MethodPost, "/api/v1/match/suggestions", matchBody)
	require.Equal(t, fiber.StatusOK, status)

	var res struct {
		MatchScore  float64  `json:"match_score"`
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &res))
	require.NotEmpty(t, res.Suggestions)
	assert.Contains(t, res.Suggestions[0], "Kafka")
}

func TestMatchHandler_Batch(t *testing.T) {
	app := newTestApp(NewMatchHandler(&mockMatching{}).RegisterRoutes)
	jobID := uuid.New()

	body := `{
	"candidate": {"skills": ["Go", "PostgreSQL"], "headline": "Backend Engineer"},
	"jobs": [
		{"id": "` + jobID.String() + `", "title": "Backend Engineer", "required_skills": ["Go", "PostgreSQL"]},
		{"title": "iOS Developer", "required_skills": ["Swift", "Objective-C"]}
	]
}`
	status, env := call(t, app, fiber.MethodPost, "/api/v1/match/batch", body)
	require.Equal(t, fiber.StatusOK, status)

	var res struct {
		Count int `json:"count"`
		Items []struct {
			Index      int        `json:"index"`
			JobID      *uuid.UUID `json:"job_id"`
			Title      string     `json:"title"`
			MatchScore float64    `json:"match_score"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.Equal(t, 2, res.Count)
	require.NotNil(t, res.Items[0].JobID)
	assert.Equal(t, jobID, *res.Items[0].JobID)
	assert.Nil(t, res.Items[1].JobID)
	assert.Equal(t, "iOS Developer", res.Items[1].Title)
	assert.Greater(t, res.Items[0].MatchScore, res.Items[1].MatchScore)
}

func TestMatchHandler_BatchValidation(t *testing.T) {
	app := newTestApp(NewMatchHandler(&mockMatching{}).RegisterRoutes)

	status, body := call(t, app, fiber.MethodPost, "/api/v1/match/batch", `{"candidate": {}, "jobs": []}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, string(body.Data), `"field":"jobs"`)
}

func TestMatchHandler_GetMatch(t *testing.T) {
	uc := &mockMatching{result: matching.MatchResult{MatchScore: 77.5}}
	app := newTestApp(NewMatchHandler(uc).RegisterRoutes)
	jobID := uuid.New()

	status, body := call(t, app, fiber.MethodGet, "/api/v1/jobs/"+jobID.String()+"/match", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, jobID, uc.gotJob)
	assert.Contains(t, string(body.Data), `"match_score":77.5`)
	assert.Contains(t, string(body.Data), testCandidate.String())

	status, _ = call(t, app, fiber.MethodGet, "/api/v1/jobs/not-a-uuid/match", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	uc.err = usecase.ErrJobNotFound
	status, body = call(t, app, fiber.MethodGet, "/api/v1/jobs/"+jobID.String()+"/match", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Job not found", body.Message)

	uc.err = errors.Join(usecase.ErrInternal, errors.New("pq: password authentication failed"))
	status, body = call(t, app, fiber.MethodGet, "/api/v1/jobs/"+jobID.String()+"/match", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.NotContains(t, body.Message, "password")
}

func TestJobRecommendationHandler(t *testing.T) {
	uc := &mockRecommendations{items: []recommendation.Recommendation{{JobID: uuid.New(), Title: "Go Engineer", FinalScore: 88}}}
	app := newTestApp(NewJobRecommendationHandler(uc).RegisterRoutes)

	status, body := call(t, app, fiber.MethodGet, "/api/v1/jobs/recommendations?limit=5&refresh=true", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, usecase.JobRecommendationParams{Limit: 5, Refresh: true}, uc.params)
	assert.Contains(t, string(body.Data), `"count":1`)

	status, _ = call(t, app, fiber.MethodGet, "/api/v1/jobs/recommendations?limit=ten", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	uc.err = usecase.ErrInvalidInput
	status, _ = call(t, app, fiber.MethodGet, "/api/v1/jobs/recommendations?limit=-1", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	uc.err = usecase.ErrCandidateNotFound
	status, body = call(t, app, fiber.MethodGet, "/api/v1/jobs/recommendations", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Candidate not found", body.Message)
}

func TestInterviewHandler_Feedback(t *testing.T) {
	uc := &mockInterviews{}
	app := newTestApp(NewInterviewHandler(uc).RegisterRoutes)

	status, body := call(t, app, fiber.MethodPost, "/api/v1/interviews/feedback",
		`{"transcript": "Q: What is a goroutine?\nA: A lightweight thread managed by the Go runtime.", "job": {"title": "Go Engineer"}}`)
	require.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, uc.in.Job)
	assert.Equal(t, "Go Engineer", uc.in.Job.Title)

	var fb interview.Feedback
	require.NoError(t, json.Unmarshal(body.Data, &fb))
	assert.Len(t, fb.PerQuestion, 1)

	status, _ = call(t, app, fiber.MethodPost, "/api/v1/interviews/feedback", `{"options": {"language": "fr"}}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestInterviewHandler_Options(t *testing.T) {
	app := newTestApp(NewInterviewHandler(&mockInterviews{}).RegisterRoutes)

	status, body := call(t, app, fiber.MethodPost, "/api/v1/interviews/options",
		`{"job": {"title": "Senior Go Engineer", "experience_level": "Senior", "required_skills": ["Go"]}}`)
	require.Equal(t, fiber.StatusOK, status)

	var opts interview.Options
	require.NoError(t, json.Unmarshal(body.Data, &opts))
	assert.Equal(t, interview.SenioritySenior, opts.Seniority)
	assert.Contains(t, opts.MustHaveKeywords, "go")
}

func TestInterviewHandler_SessionFeedback(t *testing.T) {
	uc := &mockInterviews{}
	app := newTestApp(NewInterviewHandler(uc).RegisterRoutes)
	id := uuid.New()

	status, _ := call(t, app, fiber.MethodPost, "/api/v1/interviews/"+id.String()+"/feedback", "")
	require.Equal(t, fiber.StatusOK, status)

	status, _ = call(t, app, fiber.MethodPost, "/api/v1/interviews/"+id.String()+"/feedback", `{"options": {"seniority": "JUNIOR"}}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, interview.SeniorityJunior, uc.options.Seniority)

	uc.err = usecase.ErrInterviewNotFound
	status, body := call(t, app, fiber.MethodPost, "/api/v1/interviews/"+id.String()+"/feedback", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Interview not found", body.Message)
}

func TestHealthHandler(t *testing.T) {
	app := fiber.New()
	NewHealthHandler(stubPinger{}, stubPinger{err: errors.New("down")}).RegisterRoutes(app)

	status, body := call(t, app, fiber.MethodGet, "/health", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"database":"up","cache":"down"}`, string(body.Data))

	app = fiber.New()
	NewHealthHandler(stubPinger{err: errors.New("refused")}, nil).RegisterRoutes(app)
	status, body = call(t, app, fiber.MethodGet, "/health", "")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.JSONEq(t, `{"database":"down","cache":"down"}`, string(body.Data))
}
