package matching

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

const (
	DegreeNone = iota
	DegreeHighSchool
	DegreeAssociate
	DegreeBachelor
	DegreeMaster
	DegreeProfessional
	DegreeDoctorate
)

var degreeNames = [...]string{"no degree", "High school", "Associate", "Bachelor's", "Master's", "Professional degree", "PhD"}

type degreePattern struct {
	level    int
	keywords []string
}

// Checked top-down so "master" wins over "bachelor" and "high school
// diploma" is not read as an associate diploma.
var degreePatterns = []degreePattern{
	{DegreeDoctorate, []string{"phd", "ph.d", "doctor", "doctorate", "tiến sĩ", "tien si"}},
	{DegreeProfessional, []string{"mba", "m.b.a", "md", "m.d", "jd", "j.d", "professional"}},
	{DegreeMaster, []string{"master", "msc", "m.sc", "ms", "m.s", "ma", "m.a", "meng", "m.eng", "thạc sĩ", "thac si"}},
	{DegreeBachelor, []string{"bachelor", "bsc", "b.sc", "bs", "b.s", "ba", "b.a", "beng", "b.eng", "undergraduate", "university", "cử nhân", "kỹ sư", "cu nhan", "ky su"}},
	{DegreeHighSchool, []string{"high school", "highschool", "secondary", "ged", "trung học", "trung hoc"}},
	{DegreeAssociate, []string{"associate", "diploma", "college", "cao đẳng", "cao dang"}},
}

// DegreeLevel maps a degree label onto the ordinal ladder. Empty input is
// DegreeNone; unrecognized labels fall back to bachelor's.
func DegreeLevel(degree string) int {
	d := strings.ToLower(strings.TrimSpace(degree))
	if d == "" {
		return DegreeNone
	}
	tokens := make(map[string]struct{})
	for _, t := range strings.FieldsFunc(d, func(r rune) bool { return unicode.IsSpace(r) || r == ',' || r == '(' || r == ')' || r == '/' }) {
		tokens[strings.Trim(t, ".")] = struct{}{}
		tokens[t] = struct{}{}
	}
	for _, p := range degreePatterns {
		for _, kw := range p.keywords {
			if strings.Contains(kw, " ") || len(kw) > 3 {
				if strings.Contains(d, kw) {
					return p.level
				}
				continue
			}
			if _, ok := tokens[kw]; ok {
				return p.level
			}
		}
	}
	return DegreeBachelor
}

type educationScore struct {
	score float64
	gap   string
}

func scoreEducation(p CandidateMatchProfile, j JobMatchRequirements) educationScore {
	req := j.Education
	if req.IsEmpty() {
		return educationScore{score: 100}
	}

	highest := DegreeNone
	for _, e := range p.Education {
		if lvl := DegreeLevel(e.Degree); lvl > highest {
			highest = lvl
		}
	}

	out := educationScore{}
	required := DegreeLevel(req.RequiredDegree)
	score := 60.0
	if highest < required {
		gap := required - highest
		score = math.Max(0, 60-20*float64(gap))
		out.gap = fmt.Sprintf("This role requires a %s; your highest listed education is %s", degreeNames[required], degreeNames[highest])
	}

	preferred := DegreeLevel(req.PreferredDegree)
	if preferred == DegreeNone {
		preferred = required
	}
	switch {
	case highest >= preferred:
		score += 20
	case preferred-highest == 1:
		score += 10
	}

	if matchesPreferredSchool(p.Education, req.PreferredSchools) {
		score += 20
	}

	score += fieldOverlapBonus(p.Education, req.Field)

	out.score = clamp(score, 0, 100)
	return out
}

func alnumOnly(s string) string {
	b := strings.Builder{}
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func matchesPreferredSchool(edu []Education, schools []string) bool {
	for _, s := range schools {
		school := alnumOnly(s)
		if school == "" {
			continue
		}
		for _, e := range edu {
			inst := alnumOnly(e.Institution)
			if inst == "" {
				continue
			}
			if strings.Contains(inst, school) || strings.Contains(school, inst) {
				return true
			}
		}
	}
	return false
}

func fieldOverlapBonus(edu []Education, field string) float64 {
	want := wordSet(field, 2)
	if len(want) == 0 {
		return 0
	}
	have := make(map[string]struct{})
	for _, e := range edu {
		for w := range wordSet(e.Field, 2) {
			have[w] = struct{}{}
		}
	}
	hits := 0
	for w := range want {
		if _, ok := have[w]; ok {
			hits++
		}
	}
	return math.Min(20*float64(hits)/float64(len(want)), 20)
}
