package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jobmatch/internal/database"

	"github.com/google/uuid"
)

// SampleJob is one demo posting. IDs are fixed so reseeding is a no-op.
type SampleJob struct {
	ID               uuid.UUID
	Title            string
	Company          string
	Description      string
	Requirements     string
	Responsibilities string
	RequiredSkills   []string
	OptionalSkills   []string
	Categories       []string
	ExperienceLevel  string
	RequiredDegree   string
	EducationField   string
	Location         string
	IsRemote         bool
	JobType          string
	PublishedAgo     time.Duration
}

type JobsSeeder struct {
	Jobs []SampleJob
	Now  func() time.Time
}

func (JobsSeeder) Name() string { return "jobs" }

const insertJob = `INSERT INTO jobs (
	id, title, company, description, requirements, responsibilities,
	required_skills, optional_skills, categories, experience_level,
	required_degree, education_field, location, is_remote, job_type, status, published_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, 'active', $16)
ON CONFLICT (id) DO NOTHING`

func (s JobsSeeder) Run(ctx context.Context, db database.DB) error {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	for _, j := range s.Jobs {
		required, err := json.Marshal(nonNil(j.RequiredSkills))
		if err != nil {
			return err
		}
		optional, err := json.Marshal(nonNil(j.OptionalSkills))
		if err != nil {
			return err
		}
		categories, err := json.Marshal(nonNil(j.Categories))
		if err != nil {
			return err
		}

		if _, err := db.Exec(ctx, insertJob,
			j.ID, j.Title, j.Company, j.Description, j.Requirements, j.Responsibilities,
			required, optional, categories, j.ExperienceLevel,
			j.RequiredDegree, j.EducationField, j.Location, j.IsRemote, j.JobType,
			now().UTC().Add(-j.PublishedAgo),
		); err != nil {
			return fmt.Errorf("insert job %q: %w", j.Title, err)
		}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func SampleJobs() []SampleJob {
	return []SampleJob{
		{
			ID:               uuid.MustParse("5b0d2f6e-2c1a-4f5e-9a57-0d3c6f1a9b01"),
			Title:            "Senior Backend Engineer (Go)",
			Company:          "Northwind Logistics",
			Description:      "Own the shipment tracking platform. We value clear communication and teamwork across squads.",
			Requirements:     "5+ years building backend services in Go. Strong PostgreSQL and Redis experience. Familiar with Docker and Kubernetes.",
			Responsibilities: "Design APIs, mentor engineers, lead incident reviews.",
			RequiredSkills:   []string{"Go", "PostgreSQL", "Redis", "Docker"},
			OptionalSkills:   []string{"Kubernetes", "Kafka"},
			Categories:       []string{"backend"},
			ExperienceLevel:  "Senior",
			RequiredDegree:   "Bachelor",
			EducationField:   "Computer Science",
			Location:         "Hanoi",
			IsRemote:         true,
			JobType:          "full-time",
			PublishedAgo:     12 * time.Hour,
		},
		{
			ID:               uuid.MustParse("5b0d2f6e-2c1a-4f5e-9a57-0d3c6f1a9b02"),
			Title:            "Frontend Developer",
			Company:          "Bluebird Studio",
			Description:      "Build customer dashboards in React and TypeScript. Attention to detail and problem solving matter.",
			Requirements:     "2+ years with React, TypeScript, HTML and CSS.",
			Responsibilities: "Ship UI features and collaborate with designers.",
			RequiredSkills:   []string{"React", "TypeScript", "CSS"},
			OptionalSkills:   []string{"Figma", "Jest"},
			Categories:       []string{"frontend"},
			ExperienceLevel:  "Mid",
			Location:         "Ho Chi Minh City",
			JobType:          "full-time",
			PublishedAgo:     4 * 24 * time.Hour,
		},
		{
			ID:               uuid.MustParse("5b0d2f6e-2c1a-4f5e-9a57-0d3c6f1a9b03"),
			Title:            "Junior Data Engineer",
			Company:          "Northwind Logistics",
			Description:      "Maintain batch pipelines and reporting jobs. Eagerness to learn is a must.",
			Requirements:     "Python and SQL. Exposure to Spark or Airflow is a plus.",
			Responsibilities: "Write ETL jobs and keep data quality checks green.",
			RequiredSkills:   []string{"Python", "SQL"},
			OptionalSkills:   []string{"Spark", "AWS"},
			Categories:       []string{"data"},
			ExperienceLevel:  "Junior",
			Location:         "Remote",
			IsRemote:         true,
			JobType:          "contract",
			PublishedAgo:     20 * 24 * time.Hour,
		},
	}
}
