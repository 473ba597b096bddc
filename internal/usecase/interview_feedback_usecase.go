package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobmatch/internal/domain/interview"
	applog "jobmatch/internal/logger"
	"jobmatch/internal/metrics"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EvaluateInput struct {
	Transcript string
	Turns      []interview.Turn
	Options    interview.Options
	// Job, when set, derives keyword options that are merged under Options.
	Job *interview.JobContext
}

type InterviewFeedbackUsecase interface {
	Evaluate(ctx context.Context, in EvaluateInput) (interview.Feedback, error)
	BuildOptions(in interview.AutoOptionsInput) interview.Options
	EvaluateSession(ctx context.Context, interviewID uuid.UUID, client interview.Options) (interview.Feedback, error)
}

type InterviewFeedback struct {
	interviews repository.InterviewRepository
	logger     *zap.Logger
}

func NewInterviewFeedbackUsecase(interviews repository.InterviewRepository, logger *zap.Logger) *InterviewFeedback {
	logger = applog.OrNop(logger)
	return &InterviewFeedback{interviews: interviews, logger: logger}
}

func (u *InterviewFeedback) Evaluate(ctx context.Context, in EvaluateInput) (interview.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return interview.Feedback{}, err
	}
	for _, t := range in.Turns {
		if strings.TrimSpace(t.Question) == "" {
			return interview.Feedback{}, ErrInvalidInput
		}
	}

	opts := in.Options
	if in.Job != nil {
		auto := interview.BuildAutoOptions(interview.AutoOptionsInput{
			Transcript: transcriptText(in.Transcript, in.Turns),
			Job:        *in.Job,
		})
		opts = interview.MergeOptions(in.Options, auto)
	}
	return u.evaluate(interview.FeedbackInput{Transcript: in.Transcript, Turns: in.Turns, Options: opts}), nil
}

func (u *InterviewFeedback) BuildOptions(in interview.AutoOptionsInput) interview.Options {
	return interview.BuildAutoOptions(in)
}

// EvaluateSession grades a stored interview. Options are derived from the
// interview's job and overlaid with the client's.
func (u *InterviewFeedback) EvaluateSession(ctx context.Context, interviewID uuid.UUID, client interview.Options) (interview.Feedback, error) {
	if interviewID == uuid.Nil {
		return interview.Feedback{}, ErrInvalidInput
	}

	s, err := u.interviews.FindSession(ctx, interviewID)
	if err != nil {
		if errors.Is(err, repository.ErrInterviewNotFound) {
			return interview.Feedback{}, ErrInterviewNotFound
		}
		return interview.Feedback{}, fmt.Errorf("%w: find interview: %w", ErrInternal, err)
	}

	auto := interview.BuildAutoOptions(interview.AutoOptionsInput{
		Transcript: transcriptText(s.Transcript, s.Turns),
		Job:        s.Job,
	})
	fb := u.evaluate(interview.FeedbackInput{
		Transcript: s.Transcript,
		Turns:      s.Turns,
		Options:    interview.MergeOptions(client, auto),
	})

	u.logger.Info("interview evaluated",
		zap.Stringer("interview_id", interviewID),
		zap.Stringer("candidate_id", s.CandidateID),
		zap.Int("overall_score", fb.OverallScore),
		zap.String("recommendation", string(fb.Recommendation)),
	)
	return fb, nil
}

func (u *InterviewFeedback) evaluate(in interview.FeedbackInput) interview.Feedback {
	start := time.Now()
	fb := interview.GenerateFeedback(in)
	metrics.ScoringDuration.WithLabelValues("interview").Observe(time.Since(start).Seconds())
	metrics.InterviewEvaluations.WithLabelValues(string(fb.Recommendation)).Inc()
	return fb
}

// transcriptText is the text language detection runs on: the raw transcript,
// or the turns joined when there is none.
func transcriptText(transcript string, turns []interview.Turn) string {
	if strings.TrimSpace(transcript) != "" || len(turns) == 0 {
		return transcript
	}
	b := strings.Builder{}
	for _, t := range turns {
		b.WriteString(t.Question)
		b.WriteByte('\n')
		b.WriteString(t.Answer)
		b.WriteByte('\n')
	}
	return b.String()
}
