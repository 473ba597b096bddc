package dto

import "jobmatch/internal/domain/interview"

type InterviewFeedbackRequest struct {
	Transcript string                `json:"transcript"`
	Turns      []interview.Turn      `json:"turns"`
	Options    interview.Options     `json:"options"`
	Job        *interview.JobContext `json:"job,omitempty"`
}

type InterviewOptionsRequest struct {
	Transcript string               `json:"transcript"`
	Job        interview.JobContext `json:"job"`
}

type SessionFeedbackRequest struct {
	Options interview.Options `json:"options"`
}
