package repository

import (
	"context"
	"errors"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/interview"

	"github.com/google/uuid"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewSession struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	JobID       uuid.UUID
	Transcript  string
	Turns       []interview.Turn
	Job         interview.JobContext
}

type InterviewRepository interface {
	FindSession(ctx context.Context, interviewID uuid.UUID) (InterviewSession, error)
}

type PostgresInterviewRepository struct {
	db database.DB
}

func NewPostgresInterviewRepository(db database.DB) *PostgresInterviewRepository {
	return &PostgresInterviewRepository{db: db}
}

func (r *PostgresInterviewRepository) FindSession(ctx context.Context, interviewID uuid.UUID) (InterviewSession, error) {
	s := InterviewSession{ID: interviewID}

	var required, optional, cats []byte
	row := r.db.QueryRow(ctx,
		`SELECT i.candidate_id, i.job_id, i.transcript,
			j.title, j.description, j.requirements, j.experience_level,
			j.required_skills, j.optional_skills, j.categories
		 FROM interviews i
		 JOIN jobs j ON j.id = i.job_id
		 WHERE i.id = $1`,
		interviewID,
	)
	if err := row.Scan(
		&s.CandidateID, &s.JobID, &s.Transcript,
		&s.Job.Title, &s.Job.Description, &s.Job.Requirements, &s.Job.ExperienceLevel,
		&required, &optional, &cats,
	); err != nil {
		if database.IsNoRows(err) {
			return InterviewSession{}, ErrInterviewNotFound
		}
		return InterviewSession{}, err
	}

	var err error
	if s.Job.RequiredSkills, err = stringList(required, "required_skills"); err != nil {
		return InterviewSession{}, err
	}
	if s.Job.OptionalSkills, err = stringList(optional, "optional_skills"); err != nil {
		return InterviewSession{}, err
	}
	if s.Job.Categories, err = stringList(cats, "categories"); err != nil {
		return InterviewSession{}, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT order_index, question, category, answer
		 FROM interview_turns
		 WHERE interview_id = $1
		 ORDER BY order_index ASC`,
		interviewID,
	)
	if err != nil {
		return InterviewSession{}, err
	}
	defer rows.Close()

	s.Turns = make([]interview.Turn, 0)
	s.Job.InterviewQuestions = make([]string, 0)
	for rows.Next() {
		var t interview.Turn
		if err := rows.Scan(&t.OrderIndex, &t.Question, &t.Category, &t.Answer); err != nil {
			return InterviewSession{}, err
		}
		s.Turns = append(s.Turns, t)
		s.Job.InterviewQuestions = append(s.Job.InterviewQuestions, t.Question)
	}
	if err := rows.Err(); err != nil {
		return InterviewSession{}, err
	}
	return s, nil
}
