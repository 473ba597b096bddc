package dto

import (
	"jobmatch/internal/domain/matching"

	"github.com/google/uuid"
)

type MatchRequest struct {
	Candidate matching.CandidateMatchProfile `json:"candidate"`
	Job       matching.JobMatchRequirements  `json:"job"`
}

type MatchResponse struct {
	CandidateID *uuid.UUID `json:"candidate_id,omitempty"`
	JobID       *uuid.UUID `json:"job_id,omitempty"`
	matching.MatchResult
}

type SuggestionsResponse struct {
	MatchScore  float64  `json:"match_score"`
	Suggestions []string `json:"suggestions"`
}

type BatchMatchRequest struct {
	Candidate matching.CandidateMatchProfile  `json:"candidate"`
	Jobs      []matching.JobMatchRequirements `json:"jobs"`
}

type BatchMatchItem struct {
	Index int        `json:"index"`
	JobID *uuid.UUID `json:"job_id,omitempty"`
	Title string     `json:"title"`
	matching.MatchResult
}

type BatchMatchResponse struct {
	Count int              `json:"count"`
	Items []BatchMatchItem `json:"items"`
}
