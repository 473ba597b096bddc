package matching

import (
	"time"

	"github.com/google/uuid"
)

type SoftSkill string

const (
	SoftSkillCommunication  SoftSkill = "communication"
	SoftSkillLeadership     SoftSkill = "leadership"
	SoftSkillTeamwork       SoftSkill = "teamwork"
	SoftSkillProblemSolving SoftSkill = "problem_solving"
	SoftSkillAdaptability   SoftSkill = "adaptability"
	SoftSkillTimeManagement SoftSkill = "time_management"
)

// SoftSkills lists every trait in the order used for scoring and reporting.
var SoftSkills = []SoftSkill{
	SoftSkillCommunication,
	SoftSkillLeadership,
	SoftSkillTeamwork,
	SoftSkillProblemSolving,
	SoftSkillAdaptability,
	SoftSkillTimeManagement,
}

type TechCategory string

const (
	TechFrontend TechCategory = "frontend"
	TechBackend  TechCategory = "backend"
	TechDatabase TechCategory = "database"
	TechCloud    TechCategory = "cloud"
	TechTools    TechCategory = "tools"
)

var TechCategories = []TechCategory{TechFrontend, TechBackend, TechDatabase, TechCloud, TechTools}

type Environment string

const (
	EnvStartup    Environment = "startup"
	EnvEnterprise Environment = "enterprise"
	EnvRemote     Environment = "remote"
	EnvFastPaced  Environment = "fast_paced"
)

var Environments = []Environment{EnvStartup, EnvEnterprise, EnvRemote, EnvFastPaced}

type WorkExperience struct {
	Company   string     `json:"company"`
	Position  string     `json:"position"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsCurrent bool       `json:"is_current"`
}

type Education struct {
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	Institution    string `json:"institution"`
	GraduationYear int    `json:"graduation_year,omitempty"`
}

type Project struct {
	Name         string   `json:"name"`
	Technologies []string `json:"technologies"`
}

// SoftSkillLevels holds self-reported levels on a 0-10 scale.
type SoftSkillLevels map[SoftSkill]float64

type TechnologyLists struct {
	Frontend []string `json:"frontend,omitempty"`
	Backend  []string `json:"backend,omitempty"`
	Database []string `json:"database,omitempty"`
	Cloud    []string `json:"cloud,omitempty"`
	Tools    []string `json:"tools,omitempty"`
}

func (t TechnologyLists) All() []string {
	out := make([]string, 0, len(t.Frontend)+len(t.Backend)+len(t.Database)+len(t.Cloud)+len(t.Tools))
	out = append(out, t.Frontend...)
	out = append(out, t.Backend...)
	out = append(out, t.Database...)
	out = append(out, t.Cloud...)
	out = append(out, t.Tools...)
	return out
}

type CandidateMatchProfile struct {
	ID           uuid.UUID        `json:"id"`
	Skills       []string         `json:"skills"`
	Experiences  []WorkExperience `json:"experiences"`
	Education    []Education      `json:"education"`
	Headline     string           `json:"headline"`
	Location     string           `json:"location"`
	Projects     []Project        `json:"projects"`
	SoftSkills   SoftSkillLevels  `json:"soft_skills,omitempty"`
	Technologies TechnologyLists  `json:"technologies"`
}

type EducationRequirements struct {
	RequiredDegree   string   `json:"required_degree,omitempty"`
	PreferredDegree  string   `json:"preferred_degree,omitempty"`
	Field            string   `json:"field,omitempty"`
	PreferredSchools []string `json:"preferred_schools,omitempty"`
}

func (e EducationRequirements) IsEmpty() bool {
	return e.RequiredDegree == "" && e.PreferredDegree == "" && e.Field == "" && len(e.PreferredSchools) == 0
}

type JobMatchRequirements struct {
	ID               uuid.UUID             `json:"id"`
	Title            string                `json:"title"`
	Company          string                `json:"company,omitempty"`
	Description      string                `json:"description"`
	Requirements     string                `json:"requirements"`
	Responsibilities string                `json:"responsibilities"`
	RequiredSkills   []string              `json:"required_skills"`
	OptionalSkills   []string              `json:"optional_skills"`
	ExperienceLevel  string                `json:"experience_level"`
	Education        EducationRequirements `json:"education"`
	Location         string                `json:"location"`
	IsRemote         bool                  `json:"is_remote"`
}

type Breakdown struct {
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
	Title      float64 `json:"title"`
	Education  float64 `json:"education"`
	SoftSkills float64 `json:"soft_skills"`
	Technology float64 `json:"technology"`
	Location   float64 `json:"location"`
	Bonus      float64 `json:"bonus"`
}

type Details struct {
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	ExtraSkills   []string `json:"extra_skills"`

	CandidateYears float64 `json:"candidate_years"`
	CandidateLevel int     `json:"candidate_level"`
	RequiredLevel  int     `json:"required_level"`
	ExperienceGap  string  `json:"experience_gap,omitempty"`
	TitleGap       string  `json:"title_gap,omitempty"`
	EducationGap   string  `json:"education_gap,omitempty"`
	LocationNote   string  `json:"location_note,omitempty"`

	SoftSkillMatches  []string `json:"soft_skill_matches"`
	SoftSkillGaps     []string `json:"soft_skill_gaps"`
	TechnologyMatches []string `json:"technology_matches"`
	TechnologyGaps    []string `json:"technology_gaps"`
	BonusFactors      []string `json:"bonus_factors"`

	Suggestions []string `json:"suggestions"`
}

// MatchResult is built once by Calculate and never mutated afterwards.
type MatchResult struct {
	MatchScore float64   `json:"match_score"`
	Breakdown  Breakdown `json:"breakdown"`
	Details    Details   `json:"details"`
}
