package interview

import (
	"regexp"
	"strings"
)

var (
	behavioralQuestion = regexp.MustCompile(`\b(tell me about a time|describe a (time|situation)|give (me )?an example|conflict|disagree\w*|challeng\w*|mistake|fail\w*|how did you handle|teammates?|deadline|proud|ke ve|tinh huong|mau thuan|kho khan|that bai)\b`)
	technicalQuestion  = regexp.MustCompile(`\b(implement\w*|design\w*|architect\w*|algorithm\w*|complexity|database|sql|api|code|coding|debug\w*|optimi[sz]\w*|scal\w*|performance|difference between|how does|explain|cache|thread\w*|concurren\w*|giai thich|thiet ke|toi uu|khac nhau|co so du lieu)\b`)
)

// ClassifyQuestion decides the kind of a question from its category label,
// falling back to phrasing cues in the question text.
func ClassifyQuestion(question, category string) Kind {
	c := fold(strings.TrimSpace(category))
	switch {
	case c == "":
	case strings.Contains(c, "tech"), strings.Contains(c, "ky thuat"), strings.Contains(c, "coding"), strings.Contains(c, "system"):
		return KindTechnical
	case strings.Contains(c, "behav"), strings.Contains(c, "hanh vi"), strings.Contains(c, "culture"), strings.Contains(c, "soft"):
		return KindBehavioral
	case strings.Contains(c, "general"), strings.Contains(c, "intro"), strings.Contains(c, "chung"):
		return KindGeneral
	}

	q := fold(question)
	if behavioralQuestion.MatchString(q) {
		return KindBehavioral
	}
	if technicalQuestion.MatchString(q) {
		return KindTechnical
	}
	return KindGeneral
}
