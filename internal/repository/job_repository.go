package repository

import (
	"context"
	"errors"
	"time"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/matching"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

// MaxActivePostings bounds a single recommendation pass.
const MaxActivePostings = 200

type JobRepository interface {
	FindByID(ctx context.Context, jobID uuid.UUID) (Job, error)
	ListActivePostings(ctx context.Context, limit int) ([]Job, error)
}

type Job struct {
	Requirements matching.JobMatchRequirements
	JobType      string
	Categories   []string
	Status       string
	PublishedAt  time.Time
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, company, description, requirements, responsibilities,
		required_skills, optional_skills, categories, experience_level,
		required_degree, preferred_degree, education_field, preferred_schools,
		location, is_remote, job_type, status, published_at`

func (r *PostgresJobRepository) FindByID(ctx context.Context, jobID uuid.UUID) (Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, jobID)
	j, err := scanJob(row)
	if err != nil {
		if database.IsNoRows(err) {
			return Job{}, ErrJobNotFound
		}
		return Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ListActivePostings(ctx context.Context, limit int) ([]Job, error) {
	if limit <= 0 || limit > MaxActivePostings {
		limit = MaxActivePostings
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE status = 'active'
		 ORDER BY published_at DESC NULLS LAST, id ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (Job, error) {
	var (
		j                        Job
		req                      matching.JobMatchRequirements
		required, optional, cats []byte
		schools                  []byte
		publishedAt              *time.Time
	)
	if err := row.Scan(
		&req.ID, &req.Title, &req.Company, &req.Description, &req.Requirements, &req.Responsibilities,
		&required, &optional, &cats, &req.ExperienceLevel,
		&req.Education.RequiredDegree, &req.Education.PreferredDegree, &req.Education.Field, &schools,
		&req.Location, &req.IsRemote, &j.JobType, &j.Status, &publishedAt,
	); err != nil {
		return Job{}, err
	}

	var err error
	if req.RequiredSkills, err = stringList(required, "required_skills"); err != nil {
		return Job{}, err
	}
	if req.OptionalSkills, err = stringList(optional, "optional_skills"); err != nil {
		return Job{}, err
	}
	if j.Categories, err = stringList(cats, "categories"); err != nil {
		return Job{}, err
	}
	if req.Education.PreferredSchools, err = stringList(schools, "preferred_schools"); err != nil {
		return Job{}, err
	}
	if publishedAt != nil {
		j.PublishedAt = publishedAt.UTC()
	}
	j.Requirements = req
	return j, nil
}
