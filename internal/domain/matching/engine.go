package matching

import (
	"math"
	"time"
)

type Weights struct {
	Skill      float64
	Experience float64
	Title      float64
	Education  float64
	SoftSkills float64
	Technology float64
	Location   float64
	Bonus      float64
}

// DefaultWeights are fixed. Bonus is computed for display but carries no
// weight in the total.
var DefaultWeights = Weights{
	Skill:      0.30,
	Experience: 0.18,
	Title:      0.12,
	Education:  0.12,
	SoftSkills: 0.12,
	Technology: 0.08,
	Location:   0.08,
	Bonus:      0.00,
}

func (w Weights) Sum() float64 {
	return w.Skill + w.Experience + w.Title + w.Education + w.SoftSkills + w.Technology + w.Location + w.Bonus
}

func (w Weights) apply(b Breakdown) float64 {
	return b.Skill*w.Skill +
		b.Experience*w.Experience +
		b.Title*w.Title +
		b.Education*w.Education +
		b.SoftSkills*w.SoftSkills +
		b.Technology*w.Technology +
		b.Location*w.Location +
		b.Bonus*w.Bonus
}

func Calculate(profile CandidateMatchProfile, job JobMatchRequirements) MatchResult {
	return CalculateAt(profile, job, time.Now())
}

// CalculateAt scores the profile against the job using now as the end of any
// current role. Output depends only on its arguments.
func CalculateAt(profile CandidateMatchProfile, job JobMatchRequirements, now time.Time) MatchResult {
	analysis := Analyze(job.Description, job.Requirements, job.Responsibilities)

	skills := scoreSkills(profile, job)
	exp := scoreExperience(profile, job, now)
	title := scoreTitle(profile, job)
	edu := scoreEducation(profile, job)
	soft := scoreSoftSkills(profile, analysis)
	tech := scoreTechnology(profile, analysis)
	loc := scoreLocation(profile.Location, job.Location, job.IsRemote)
	bonus := scoreBonus(profile, skills.comparison.Extra)

	breakdown := Breakdown{
		Skill:      round2(skills.score),
		Experience: round2(exp.score),
		Title:      round2(title.score),
		Education:  round2(edu.score),
		SoftSkills: round2(soft.score),
		Technology: round2(tech.score),
		Location:   round2(loc.score),
		Bonus:      round2(bonus.score),
	}

	total := DefaultWeights.apply(Breakdown{
		Skill:      skills.score,
		Experience: exp.score,
		Title:      title.score,
		Education:  edu.score,
		SoftSkills: soft.score,
		Technology: tech.score,
		Location:   loc.score,
		Bonus:      bonus.score,
	})

	res := MatchResult{
		MatchScore: round2(clamp(total, 0, 100)),
		Breakdown:  breakdown,
		Details: Details{
			MatchedSkills:     skills.comparison.Matched,
			MissingSkills:     skills.comparison.Missing,
			ExtraSkills:       skills.comparison.Extra,
			CandidateYears:    round2(exp.years),
			CandidateLevel:    exp.candidateLevel,
			RequiredLevel:     exp.requiredLevel,
			ExperienceGap:     exp.gap,
			TitleGap:          title.gap,
			EducationGap:      edu.gap,
			LocationNote:      loc.note,
			SoftSkillMatches:  soft.matches,
			SoftSkillGaps:     soft.gaps,
			TechnologyMatches: tech.matches,
			TechnologyGaps:    tech.gaps,
			BonusFactors:      bonus.factors,
		},
	}

	res.Details.Suggestions = GenerateSuggestions(res, SuggestionContext{
		JobTitle:      job.Title,
		IsRemote:      job.IsRemote,
		ProjectCount:  len(profile.Projects),
		RequiredLevel: exp.requiredLevel,
	})
	return res
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
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

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
