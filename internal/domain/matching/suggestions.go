package matching

import (
	"fmt"
	"math"
	"strings"
)

const maxSuggestions = 5

type SuggestionContext struct {
	JobTitle      string
	IsRemote      bool
	ProjectCount  int
	RequiredLevel int
}

// GenerateSuggestions turns a score breakdown into at most five
// human-readable tips. Impact percentages are rough guidance, not a re-run of
// the scorer.
func GenerateSuggestions(res MatchResult, ctx SuggestionContext) []string {
	out := make([]string, 0, maxSuggestions)
	add := func(s string) {
		if len(out) < maxSuggestions {
			out = append(out, s)
		}
	}

	d := res.Details
	b := res.Breakdown
	missing := len(d.MissingSkills)
	matched := len(d.MatchedSkills)

	if missing > 0 {
		impact := impactPercent(40 * float64(missing) / float64(missing+matched))
		switch {
		case missing == 1:
			add(fmt.Sprintf("Add %s to your skill set; it is the only required skill you are missing (about +%d%% match)", d.MissingSkills[0], impact))
		case missing <= 3:
			add(fmt.Sprintf("Learn %s to cover the remaining required skills (about +%d%% match)", joinNames(d.MissingSkills), impact))
		default:
			add(fmt.Sprintf("Focus on the key missing skills %s and %d more (about +%d%% match)", joinNames(d.MissingSkills[:3]), missing-3, impact))
		}
	}

	if b.Experience < 75 {
		impact := impactPercent(25 * (1 - b.Experience/100))
		add(fmt.Sprintf("Build experience toward the %s level through larger responsibilities or side projects (about +%d%% match)", LevelName(ctx.RequiredLevel), impact))
	}

	if b.Title < 70 {
		impact := impactPercent(20 * (1 - b.Title/100))
		if strings.TrimSpace(ctx.JobTitle) != "" {
			add(fmt.Sprintf("Align your headline with %q by highlighting comparable roles (about +%d%% match)", strings.TrimSpace(ctx.JobTitle), impact))
		} else {
			add(fmt.Sprintf("Align your headline with the roles you are targeting (about +%d%% match)", impact))
		}
	}

	if !ctx.IsRemote && b.Location < 100 {
		impact := impactPercent(10 * (1 - b.Location/100))
		add(fmt.Sprintf("Mention relocation or commuting flexibility for this on-site role (about +%d%% match)", impact))
	}

	if len(d.ExtraSkills) > 0 && missing == 0 {
		add(fmt.Sprintf("You cover every required skill; also showcase %s to stand out", joinNames(firstN(d.ExtraSkills, 3))))
	}

	if matched > 0 && b.Skill < 90 {
		add(fmt.Sprintf("Describe your proficiency in %s with concrete results", joinNames(firstN(d.MatchedSkills, 3))))
	}

	if len(d.BonusFactors) == 0 && ctx.ProjectCount == 0 {
		add("Add portfolio projects with the technologies you used to strengthen your profile")
	}

	if res.MatchScore < 50 {
		add("This role is a stretch today; complete your profile and look at closely related roles too")
	}

	return out
}

func impactPercent(v float64) int {
	return int(math.Round(clamp(v, 0, 100)))
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
