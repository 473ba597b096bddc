package repository

import (
	"context"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/recommendation"

	"github.com/google/uuid"
)

const (
	ApplicationStatusApplied  = "applied"
	ApplicationStatusRejected = "rejected"

	InteractionView  = "view"
	InteractionClick = "click"
)

type ApplicationRepository interface {
	FindHistory(ctx context.Context, candidateID uuid.UUID) (recommendation.History, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

// FindHistory collects applications, job interactions and stated preferences.
// A rejected application still counts as applied and also flags the company.
func (r *PostgresApplicationRepository) FindHistory(ctx context.Context, candidateID uuid.UUID) (recommendation.History, error) {
	h := recommendation.History{
		AppliedJobIDs:     make([]uuid.UUID, 0),
		AppliedJobs:       make([]recommendation.AppliedJob, 0),
		RejectedCompanies: make([]string, 0),
		ViewedJobIDs:      make([]uuid.UUID, 0),
		ClickedJobIDs:     make([]uuid.UUID, 0),
		Preferences:       recommendation.Preferences{JobTypes: make([]string, 0)},
	}

	if err := r.applications(ctx, candidateID, &h); err != nil {
		return recommendation.History{}, err
	}
	if err := r.interactions(ctx, candidateID, &h); err != nil {
		return recommendation.History{}, err
	}
	if err := r.preferences(ctx, candidateID, &h); err != nil {
		return recommendation.History{}, err
	}
	return h, nil
}

func (r *PostgresApplicationRepository) applications(ctx context.Context, candidateID uuid.UUID, h *recommendation.History) error {
	rows, err := r.db.Query(ctx,
		`SELECT a.job_id, a.status, j.title, j.company, j.required_skills
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.candidate_id = $1
		 ORDER BY a.created_at DESC`,
		candidateID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			aj      recommendation.AppliedJob
			status  string
			company string
			skills  []byte
		)
		if err := rows.Scan(&aj.JobID, &status, &aj.Title, &company, &skills); err != nil {
			return err
		}
		if aj.Skills, err = stringList(skills, "required_skills"); err != nil {
			return err
		}
		h.AppliedJobIDs = append(h.AppliedJobIDs, aj.JobID)
		h.AppliedJobs = append(h.AppliedJobs, aj)
		if status == ApplicationStatusRejected && company != "" {
			h.RejectedCompanies = append(h.RejectedCompanies, company)
		}
	}
	return rows.Err()
}

func (r *PostgresApplicationRepository) interactions(ctx context.Context, candidateID uuid.UUID, h *recommendation.History) error {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT job_id, kind
		 FROM job_interactions
		 WHERE candidate_id = $1`,
		candidateID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var jobID uuid.UUID
		var kind string
		if err := rows.Scan(&jobID, &kind); err != nil {
			return err
		}
		switch kind {
		case InteractionView:
			h.ViewedJobIDs = append(h.ViewedJobIDs, jobID)
		case InteractionClick:
			h.ClickedJobIDs = append(h.ClickedJobIDs, jobID)
		}
	}
	return rows.Err()
}

func (r *PostgresApplicationRepository) preferences(ctx context.Context, candidateID uuid.UUID, h *recommendation.History) error {
	var jobTypes []byte
	row := r.db.QueryRow(ctx,
		`SELECT job_types, prefers_remote, prefers_on_site
		 FROM candidate_preferences
		 WHERE candidate_id = $1`,
		candidateID,
	)
	if err := row.Scan(&jobTypes, &h.Preferences.PrefersRemote, &h.Preferences.PrefersOnSite); err != nil {
		if database.IsNoRows(err) {
			return nil
		}
		return err
	}
	types, err := stringList(jobTypes, "job_types")
	if err != nil {
		return err
	}
	h.Preferences.JobTypes = types
	return nil
}
