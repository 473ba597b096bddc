package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"jobmatch/internal/domain/interview"
	"jobmatch/internal/domain/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	root := NewRootCommand(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

const candidateJSON = `{
  "skills": ["Go", "PostgreSQL", "Docker"],
  "experiences": [{"company": "Acme", "position": "Backend Engineer", "start_date": "2019-01-01T00:00:00Z", "is_current": true}],
  "education": [{"degree": "Bachelor of Science", "field": "Computer Science", "institution": "State University"}],
  "headline": "Backend Engineer",
  "location": "Hanoi"
}`

const jobJSON = `{
  "title": "Senior Backend Engineer",
  "description": "Build Go services with PostgreSQL and Kafka.",
  "requirements": "5+ years of backend experience",
  "required_skills": ["Go", "PostgreSQL", "Kafka"],
  "experience_level": "Senior",
  "location": "Hanoi"
}`

func TestMatchCommand(t *testing.T) {
	dir := t.TempDir()
	cand := writeFile(t, dir, "candidate.json", candidateJSON)
	job := writeFile(t, dir, "job.json", jobJSON)

	out, err := execute(t, "match", "--candidate", cand, "--job", job, "--now", "2024-06-01T00:00:00Z")
	require.NoError(t, err)

	var res matching.MatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Greater(t, res.MatchScore, 0.0)
	assert.LessOrEqual(t, res.MatchScore, 100.0)
	assert.Contains(t, res.Details.MissingSkills, "Kafka")
	assert.InDelta(t, 5.42, res.Details.CandidateYears, 0.01)
}

func TestMatchCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	cand := writeFile(t, dir, "candidate.json", candidateJSON)
	bad := writeFile(t, dir, "bad.json", `{"title":`)

	_, err := execute(t, "match", "--candidate", cand)
	assert.ErrorIs(t, err, errMissingInput)

	_, err = execute(t, "match", "--candidate", cand, "--job", bad)
	assert.ErrorContains(t, err, "decoding")

	_, err = execute(t, "match", "--candidate", cand, "--job", filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "reading")

	job := writeFile(t, dir, "job.json", jobJSON)
	_, err = execute(t, "match", "--candidate", cand, "--job", job, "--now", "yesterday")
	assert.Error(t, err)
}

func TestInterviewCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.json", `{
  "turns": [
    {"order_index": 1, "question": "Tell me about a project you led.", "answer": "First, I designed a Go service on PostgreSQL. For example, I cut latency by 40% and then rolled it out to all regions, because the old system could not scale."},
    {"order_index": 2, "question": "How do you handle message queues?", "answer": ""}
  ]
}`)
	job := writeFile(t, dir, "job.json", `{"title": "Backend Engineer", "required_skills": ["Go", "Kafka"], "experience_level": "Senior"}`)

	out, err := execute(t, "interview", "--input", input, "--job", job)
	require.NoError(t, err)

	var fb interview.Feedback
	require.NoError(t, json.Unmarshal([]byte(out), &fb))
	require.Len(t, fb.PerQuestion, 2)
	assert.Equal(t, 0, fb.PerQuestion[1].Score)
	assert.NotEmpty(t, fb.Summary)
	assert.NotEmpty(t, fb.AreasForImprovement)

	_, err = execute(t, "interview")
	assert.ErrorIs(t, err, errMissingInput)
}

func TestOptionsCommand(t *testing.T) {
	dir := t.TempDir()
	job := writeFile(t, dir, "job.json", `{"title": "Golang Developer", "required_skills": ["Kubernetes"], "optional_skills": ["Redis"], "experience_level": "Junior"}`)
	transcript := writeFile(t, dir, "t.txt", "Q: Tell me about yourself\nA: I write Go services.")

	out, err := execute(t, "options", "--job", job, "--transcript", transcript, "--pretty")
	require.NoError(t, err)

	var opts interview.Options
	require.NoError(t, json.Unmarshal([]byte(out), &opts))
	assert.Equal(t, interview.SeniorityJunior, opts.Seniority)
	assert.Equal(t, interview.LanguageEN, opts.Language)
	assert.Contains(t, opts.MustHaveKeywords, "kubernetes")
	assert.Contains(t, opts.MustHaveKeywords, "golang")
	assert.Contains(t, opts.NiceToHaveKeywords, "redis")
	assert.Contains(t, opts.Synonyms["kubernetes"], "k8s")

	_, err = execute(t, "options")
	assert.ErrorIs(t, err, errMissingInput)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "matchctl version: unknown\n", out)
}
