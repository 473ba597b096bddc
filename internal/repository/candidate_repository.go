package repository

import (
	"context"
	"errors"
	"time"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/matching"

	"github.com/google/uuid"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	FindProfile(ctx context.Context, candidateID uuid.UUID) (matching.CandidateMatchProfile, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) FindProfile(ctx context.Context, candidateID uuid.UUID) (matching.CandidateMatchProfile, error) {
	p := matching.CandidateMatchProfile{ID: candidateID}

	var skills, softSkills, technologies []byte
	row := r.db.QueryRow(ctx,
		`SELECT headline, location, skills, soft_skills, technologies
		 FROM candidates
		 WHERE id = $1`,
		candidateID,
	)
	if err := row.Scan(&p.Headline, &p.Location, &skills, &softSkills, &technologies); err != nil {
		if database.IsNoRows(err) {
			return matching.CandidateMatchProfile{}, ErrCandidateNotFound
		}
		return matching.CandidateMatchProfile{}, err
	}

	var err error
	if p.Skills, err = stringList(skills, "skills"); err != nil {
		return matching.CandidateMatchProfile{}, err
	}
	if err := decodeJSON(softSkills, &p.SoftSkills, "soft_skills"); err != nil {
		return matching.CandidateMatchProfile{}, err
	}
	if err := decodeJSON(technologies, &p.Technologies, "technologies"); err != nil {
		return matching.CandidateMatchProfile{}, err
	}

	if p.Experiences, err = r.experiences(ctx, candidateID); err != nil {
		return matching.CandidateMatchProfile{}, err
	}
	if p.Education, err = r.education(ctx, candidateID); err != nil {
		return matching.CandidateMatchProfile{}, err
	}
	if p.Projects, err = r.projects(ctx, candidateID); err != nil {
		return matching.CandidateMatchProfile{}, err
	}
	return p, nil
}

func (r *PostgresCandidateRepository) experiences(ctx context.Context, candidateID uuid.UUID) ([]matching.WorkExperience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT company, position, start_date, end_date, is_current
		 FROM candidate_experiences
		 WHERE candidate_id = $1
		 ORDER BY start_date DESC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.WorkExperience, 0)
	for rows.Next() {
		var e matching.WorkExperience
		var end *time.Time
		if err := rows.Scan(&e.Company, &e.Position, &e.StartDate, &end, &e.IsCurrent); err != nil {
			return nil, err
		}
		e.EndDate = end
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) education(ctx context.Context, candidateID uuid.UUID) ([]matching.Education, error) {
	rows, err := r.db.Query(ctx,
		`SELECT degree, field, institution, graduation_year
		 FROM candidate_education
		 WHERE candidate_id = $1
		 ORDER BY graduation_year DESC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.Education, 0)
	for rows.Next() {
		var e matching.Education
		if err := rows.Scan(&e.Degree, &e.Field, &e.Institution, &e.GraduationYear); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) projects(ctx context.Context, candidateID uuid.UUID) ([]matching.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name, technologies
		 FROM candidate_projects
		 WHERE candidate_id = $1
		 ORDER BY id ASC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.Project, 0)
	for rows.Next() {
		var pr matching.Project
		var techs []byte
		if err := rows.Scan(&pr.Name, &techs); err != nil {
			return nil, err
		}
		if pr.Technologies, err = stringList(techs, "project technologies"); err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
