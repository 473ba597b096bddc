package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type skillScore struct {
	score      float64
	comparison SkillComparison
}

func scoreSkills(p CandidateMatchProfile, j JobMatchRequirements) skillScore {
	required := CompareSkills(p.Skills, j.RequiredSkills)

	all := make([]string, 0, len(j.RequiredSkills)+len(j.OptionalSkills))
	all = append(all, j.RequiredSkills...)
	all = append(all, j.OptionalSkills...)
	required.Extra = CompareSkills(p.Skills, all).Extra

	out := skillScore{comparison: required}

	totalRequired := len(required.Matched) + len(required.Missing)
	if totalRequired == 0 {
		if len(normalizeSkillList(p.Skills)) > 0 {
			out.score = 100
		}
		return out
	}

	score := float64(len(required.Matched)) / float64(totalRequired) * 100

	optional := CompareSkills(p.Skills, j.OptionalSkills)
	totalOptional := len(optional.Matched) + len(optional.Missing)
	if totalOptional > 0 {
		score += math.Min(float64(len(optional.Matched))/float64(totalOptional)*20, 20)
	}

	out.score = clamp(score, 0, 100)
	return out
}

// CurrentTitle returns the most recent position, falling back to the headline.
func CurrentTitle(p CandidateMatchProfile) string {
	var best *WorkExperience
	for i := range p.Experiences {
		e := &p.Experiences[i]
		if strings.TrimSpace(e.Position) == "" {
			continue
		}
		switch {
		case best == nil:
			best = e
		case e.IsCurrent && !best.IsCurrent:
			best = e
		case e.IsCurrent == best.IsCurrent && e.StartDate.After(best.StartDate):
			best = e
		}
	}
	if best != nil {
		return best.Position
	}
	return p.Headline
}

type titleScore struct {
	score float64
	gap   string
}

func scoreTitle(p CandidateMatchProfile, j JobMatchRequirements) titleScore {
	candidateTitle := CurrentTitle(p)
	cand := wordSet(candidateTitle, 2)
	job := wordSet(j.Title, 2)
	if len(cand) == 0 {
		return titleScore{gap: "Add a headline or current position so your title can be compared with the role"}
	}
	if len(job) == 0 {
		return titleScore{}
	}

	out := titleScore{score: clamp(jaccard(cand, job)*100, 0, 100)}
	if out.score < 70 {
		out.gap = fmt.Sprintf("Your title %q differs from the role title %q", strings.TrimSpace(candidateTitle), strings.TrimSpace(j.Title))
	}
	return out
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

type softSkillScore struct {
	score   float64
	matches []string
	gaps    []string
}

const neutralSoftSkillScore = 50

func scoreSoftSkills(p CandidateMatchProfile, a JobAnalysis) softSkillScore {
	out := softSkillScore{matches: make([]string, 0), gaps: make([]string, 0)}

	signaled := make([]SoftSkill, 0, len(SoftSkills))
	for _, s := range SoftSkills {
		if a.SoftSkills[s] > 0 {
			signaled = append(signaled, s)
		}
	}
	if len(signaled) == 0 {
		out.score = 100
		return out
	}
	if len(p.SoftSkills) == 0 {
		out.score = neutralSoftSkillScore
		return out
	}

	sum := 0.0
	for _, s := range signaled {
		importance := float64(a.SoftSkills[s])
		level := clamp(p.SoftSkills[s], 0, 10)
		traitScore := math.Min(level/importance*100, 100)
		sum += traitScore

		switch {
		case traitScore >= 70:
			out.matches = append(out.matches, string(s))
		case traitScore < 40:
			out.gaps = append(out.gaps, string(s))
		}
	}
	out.score = clamp(sum/float64(len(signaled)), 0, 100)
	return out
}

type technologyScore struct {
	score   float64
	matches []string
	gaps    []string
}

func scoreTechnology(p CandidateMatchProfile, a JobAnalysis) technologyScore {
	out := technologyScore{score: 100, matches: make([]string, 0), gaps: make([]string, 0)}
	total := a.TechnologyCount()
	if total == 0 {
		return out
	}

	pool := candidateTechnologies(p)
	covered := 0
	for _, c := range TechCategories {
		for _, tech := range a.Technologies[c] {
			if coversTechnology(pool, tech) {
				covered++
				out.matches = append(out.matches, tech)
				continue
			}
			out.gaps = append(out.gaps, tech)
		}
	}
	out.score = clamp(float64(covered)/float64(total)*100, 0, 100)
	return out
}

func candidateTechnologies(p CandidateMatchProfile) []string {
	raw := p.Technologies.All()
	for _, pr := range p.Projects {
		raw = append(raw, pr.Technologies...)
	}
	raw = append(raw, p.Skills...)

	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, t := range raw {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func coversTechnology(pool []string, tech string) bool {
	tech = strings.ToLower(tech)
	for _, have := range pool {
		if strings.Contains(have, tech) || strings.Contains(tech, have) {
			return true
		}
	}
	return false
}

type locationScore struct {
	score float64
	note  string
}

func ScoreLocation(candidateLocation, jobLocation string, isRemote bool) float64 {
	return scoreLocation(candidateLocation, jobLocation, isRemote).score
}

func scoreLocation(candidateLocation, jobLocation string, isRemote bool) locationScore {
	if isRemote {
		return locationScore{score: 100}
	}

	cand := normalizeLocation(candidateLocation)
	job := normalizeLocation(jobLocation)
	if cand == "" || job == "" {
		return locationScore{score: 50, note: "Location information is incomplete"}
	}
	if cand == job {
		return locationScore{score: 100}
	}
	if firstSegment(cand) == firstSegment(job) {
		return locationScore{score: 90, note: "Same city, different area"}
	}

	candTokens := wordSet(cand, 1)
	for w := range wordSet(job, 1) {
		if _, ok := candTokens[w]; ok {
			return locationScore{score: 60, note: fmt.Sprintf("Partially matching location (%s)", w)}
		}
	}
	return locationScore{score: 20, note: fmt.Sprintf("The role is based in %s", strings.TrimSpace(jobLocation))}
}

func normalizeLocation(s string) string {
	parts := strings.Split(strings.ToLower(s), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Join(strings.Fields(p), " ")
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, ", ")
}

func firstSegment(s string) string {
	if i := strings.Index(s, ","); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

type bonusScore struct {
	score   float64
	factors []string
}

func scoreBonus(p CandidateMatchProfile, extraSkills []string) bonusScore {
	out := bonusScore{factors: make([]string, 0)}

	techs := make(map[string]struct{})
	for _, pr := range p.Projects {
		for _, t := range pr.Technologies {
			if n := NormalizeSkill(t); n != "" {
				techs[n] = struct{}{}
			}
		}
	}

	extra := math.Min(float64(len(extraSkills))*5, 50)
	project := math.Min(float64(len(techs))*3, 30)
	if len(extraSkills) > 0 {
		out.factors = append(out.factors, fmt.Sprintf("%d additional skill(s) beyond the job requirements", len(extraSkills)))
	}
	if len(techs) > 0 {
		names := make([]string, 0, len(techs))
		for t := range techs {
			names = append(names, t)
		}
		sort.Strings(names)
		out.factors = append(out.factors, fmt.Sprintf("%d project technolog(ies): %s", len(names), strings.Join(names, ", ")))
	}
	out.score = clamp(extra+project, 0, 100)
	return out
}
