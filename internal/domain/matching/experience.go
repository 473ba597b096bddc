package matching

import (
	"fmt"
	"strings"
	"time"
)

const (
	LevelIntern = iota
	LevelJunior
	LevelMid
	LevelSenior
	LevelLead
	LevelPrincipal
)

var levelNames = [...]string{"Intern", "Junior", "Mid-level", "Senior", "Lead", "Principal"}

func LevelName(level int) string {
	return levelNames[clampInt(level, LevelIntern, LevelPrincipal)]
}

var experienceLabels = map[string]int{
	"intern":       LevelIntern,
	"internship":   LevelIntern,
	"trainee":      LevelIntern,
	"entry":        LevelJunior,
	"entry level":  LevelJunior,
	"junior":       LevelJunior,
	"junior level": LevelJunior,
	"fresher":      LevelJunior,
	"graduate":     LevelJunior,
	"mid":          LevelMid,
	"mid level":    LevelMid,
	"middle":       LevelMid,
	"intermediate": LevelMid,
	"associate":    LevelMid,
	"senior":       LevelSenior,
	"senior level": LevelSenior,
	"sr":           LevelSenior,
	"lead":         LevelLead,
	"lead level":   LevelLead,
	"team lead":    LevelLead,
	"staff":        LevelLead,
	"manager":      LevelLead,
	"principal":    LevelPrincipal,
	"director":     LevelPrincipal,
	"executive":    LevelPrincipal,
	"architect":    LevelPrincipal,
}

// RequiredLevel maps an experience-level label to the ordinal ladder.
// Unrecognized labels resolve to mid-level.
func RequiredLevel(label string) int {
	key := strings.ToLower(strings.TrimSpace(label))
	key = strings.NewReplacer("_", " ", "-", " ").Replace(key)
	key = strings.Join(strings.Fields(key), " ")
	if lvl, ok := experienceLabels[key]; ok {
		return lvl
	}
	return LevelMid
}

// TotalYears sums each experience record's duration, treating current roles
// and records without an end date as ending at now. Negative ranges count as
// zero.
func TotalYears(experiences []WorkExperience, now time.Time) float64 {
	total := 0.0
	for _, e := range experiences {
		end := now
		if !e.IsCurrent && e.EndDate != nil {
			end = *e.EndDate
		}
		d := end.Sub(e.StartDate)
		if d <= 0 {
			continue
		}
		total += d.Hours() / 24 / 365.25
	}
	return total
}

func LevelForYears(years float64) int {
	switch {
	case years < 1:
		return LevelIntern
	case years < 2:
		return LevelJunior
	case years < 5:
		return LevelMid
	case years < 8:
		return LevelSenior
	case years < 12:
		return LevelLead
	default:
		return LevelPrincipal
	}
}

type experienceScore struct {
	score          float64
	years          float64
	candidateLevel int
	requiredLevel  int
	gap            string
}

func scoreExperience(p CandidateMatchProfile, j JobMatchRequirements, now time.Time) experienceScore {
	years := TotalYears(p.Experiences, now)
	out := experienceScore{
		score:          100,
		years:          years,
		candidateLevel: LevelForYears(years),
	}
	if strings.TrimSpace(j.ExperienceLevel) == "" {
		out.requiredLevel = out.candidateLevel
		return out
	}

	out.requiredLevel = RequiredLevel(j.ExperienceLevel)
	if out.candidateLevel >= out.requiredLevel {
		return out
	}

	gap := out.requiredLevel - out.candidateLevel
	out.score = clamp(100-25*float64(gap), 0, 100)
	out.gap = fmt.Sprintf(
		"This role expects %s experience; your %.1f years of experience map to %s (%d level(s) below)",
		LevelName(out.requiredLevel), years, LevelName(out.candidateLevel), gap,
	)
	return out
}
