package recommendation

import (
	"sort"
	"strings"
	"time"

	"jobmatch/internal/domain/matching"

	"github.com/google/uuid"
)

const (
	appliedPenalty  = -100
	rejectedPenalty = -50

	maxBehaviorBoost   = 10
	maxPreferenceBoost = 5
	maxTechOverlap     = 5
	maxTitleOverlap    = 3
	viewedBoost        = 2
	clickedBoost       = 3

	// MinFinalScore is the relevance floor below which postings are dropped.
	MinFinalScore = 30
)

type Posting struct {
	Job         matching.JobMatchRequirements `json:"job"`
	JobType     string                        `json:"job_type"`
	PublishedAt time.Time                     `json:"published_at"`
}

type AppliedJob struct {
	JobID  uuid.UUID `json:"job_id"`
	Title  string    `json:"title"`
	Skills []string  `json:"skills"`
}

type Preferences struct {
	JobTypes      []string `json:"job_types"`
	PrefersRemote bool     `json:"prefers_remote"`
	PrefersOnSite bool     `json:"prefers_on_site"`
}

// History is the candidate's prior interaction with the job board.
type History struct {
	AppliedJobIDs     []uuid.UUID  `json:"applied_job_ids"`
	AppliedJobs       []AppliedJob `json:"applied_jobs"`
	RejectedCompanies []string     `json:"rejected_companies"`
	ViewedJobIDs      []uuid.UUID  `json:"viewed_job_ids"`
	ClickedJobIDs     []uuid.UUID  `json:"clicked_job_ids"`
	Preferences       Preferences  `json:"preferences"`
}

// HasApplied reports whether the history records an application to jobID.
func (h History) HasApplied(jobID uuid.UUID) bool {
	for _, id := range h.AppliedJobIDs {
		if id == jobID {
			return true
		}
	}
	for _, j := range h.AppliedJobs {
		if j.JobID == jobID {
			return true
		}
	}
	return false
}

type Recommendation struct {
	JobID           uuid.UUID            `json:"job_id"`
	Title           string               `json:"title"`
	Company         string               `json:"company"`
	Location        string               `json:"location"`
	IsRemote        bool                 `json:"is_remote"`
	JobType         string               `json:"job_type"`
	PublishedAt     time.Time            `json:"published_at"`
	BaseScore       float64              `json:"base_score"`
	BehaviorBoost   float64              `json:"behavior_boost"`
	PreferenceBoost float64              `json:"preference_boost"`
	FreshnessBoost  float64              `json:"freshness_boost"`
	FinalScore      float64              `json:"final_score"`
	Match           matching.MatchResult `json:"match"`
}

type RankInput struct {
	Profile  matching.CandidateMatchProfile
	Postings []Posting
	History  History
	Limit    int
	Now      time.Time
}

// Rank scores every posting against the profile, applies the boosts and
// filters, and returns the best Limit postings ordered by final score. Jobs
// the candidate already applied to are never returned. A non-positive Limit
// returns every surviving posting.
func Rank(in RankInput) []Recommendation {
	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	sig := newSignals(in.History)
	out := make([]Recommendation, 0, len(in.Postings))
	for _, p := range in.Postings {
		if _, ok := sig.applied[p.Job.ID]; ok {
			continue
		}

		behavior := sig.behaviorBoost(p.Job)
		if behavior < rejectedPenalty {
			continue
		}

		res := matching.CalculateAt(in.Profile, p.Job, now)
		pref := PreferenceBoost(in.History.Preferences, p)
		fresh := FreshnessBoost(p.PublishedAt, now)
		final := clamp(res.MatchScore+behavior+pref+fresh, 0, 100)
		if final < MinFinalScore {
			continue
		}

		out = append(out, Recommendation{
			JobID:           p.Job.ID,
			Title:           p.Job.Title,
			Company:         p.Job.Company,
			Location:        p.Job.Location,
			IsRemote:        p.Job.IsRemote,
			JobType:         p.JobType,
			PublishedAt:     p.PublishedAt,
			BaseScore:       res.MatchScore,
			BehaviorBoost:   behavior,
			PreferenceBoost: pref,
			FreshnessBoost:  fresh,
			FinalScore:      final,
			Match:           res,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinalScore > out[j].FinalScore
	})

	if in.Limit > 0 && len(out) > in.Limit {
		out = out[:in.Limit]
	}
	return out
}

type signals struct {
	applied           map[uuid.UUID]struct{}
	viewed            map[uuid.UUID]struct{}
	clicked           map[uuid.UUID]struct{}
	rejectedCompanies map[string]struct{}
	appliedSkills     map[string]struct{}
	appliedTitleWords map[string]struct{}
}

func newSignals(h History) signals {
	s := signals{
		applied:           idSet(h.AppliedJobIDs),
		viewed:            idSet(h.ViewedJobIDs),
		clicked:           idSet(h.ClickedJobIDs),
		rejectedCompanies: make(map[string]struct{}, len(h.RejectedCompanies)),
		appliedSkills:     make(map[string]struct{}),
		appliedTitleWords: make(map[string]struct{}),
	}
	for _, c := range h.RejectedCompanies {
		if c = companyKey(c); c != "" {
			s.rejectedCompanies[c] = struct{}{}
		}
	}
	for _, j := range h.AppliedJobs {
		if j.JobID != uuid.Nil {
			s.applied[j.JobID] = struct{}{}
		}
		for _, sk := range j.Skills {
			if n := matching.NormalizeSkill(sk); n != "" {
				s.appliedSkills[n] = struct{}{}
			}
		}
		for w := range matching.TitleWords(j.Title) {
			s.appliedTitleWords[w] = struct{}{}
		}
	}
	return s
}

func (s signals) behaviorBoost(job matching.JobMatchRequirements) float64 {
	if _, ok := s.applied[job.ID]; ok {
		return appliedPenalty
	}
	if _, ok := s.rejectedCompanies[companyKey(job.Company)]; ok {
		return rejectedPenalty
	}

	tech := 0
	seen := make(map[string]struct{})
	for _, sk := range append(append([]string{}, job.RequiredSkills...), job.OptionalSkills...) {
		n := matching.NormalizeSkill(sk)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		if _, ok := s.appliedSkills[n]; ok {
			tech++
		}
	}

	title := 0
	for w := range matching.TitleWords(job.Title) {
		if _, ok := s.appliedTitleWords[w]; ok {
			title++
		}
	}

	boost := float64(min(tech, maxTechOverlap) + min(title, maxTitleOverlap))
	if _, ok := s.viewed[job.ID]; ok {
		boost += viewedBoost
	}
	if _, ok := s.clicked[job.ID]; ok {
		boost += clickedBoost
	}
	return clamp(boost, 0, maxBehaviorBoost)
}

// PreferenceBoost rewards postings matching the candidate's stated job type
// and work-mode preferences.
func PreferenceBoost(pref Preferences, p Posting) float64 {
	boost := 0.0
	jobType := strings.ToLower(strings.TrimSpace(p.JobType))
	if jobType != "" {
		for _, t := range pref.JobTypes {
			if strings.ToLower(strings.TrimSpace(t)) == jobType {
				boost += 3
				break
			}
		}
	}
	if pref.PrefersRemote && p.Job.IsRemote {
		boost += 2
	}
	if pref.PrefersOnSite && !p.Job.IsRemote {
		boost += 1
	}
	return clamp(boost, 0, maxPreferenceBoost)
}

// FreshnessBoost rewards recently published postings. A zero publish time
// earns nothing.
func FreshnessBoost(publishedAt, now time.Time) float64 {
	if publishedAt.IsZero() {
		return 0
	}

	age := now.Sub(publishedAt)
	if age < 0 {
		age = 0
	}

	if age < 24*time.Hour {
		return 5
	}
	if age < 7*24*time.Hour {
		return 3
	}
	if age < 30*24*time.Hour {
		return 1
	}
	return 0
}

func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		out[id] = struct{}{}
	}
	return out
}

func companyKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func clamp(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
