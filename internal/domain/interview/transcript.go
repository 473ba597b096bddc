package interview

import (
	"strings"
)

var (
	questionPrefixes = []string{"q:", "question:", "interviewer:", "hỏi:", "câu hỏi:", "người phỏng vấn:"}
	answerPrefixes   = []string{"a:", "answer:", "candidate:", "đáp:", "trả lời:", "ứng viên:"}
)

// ParseTranscript splits a plain-text transcript into turns. Lines are
// attributed by their speaker prefix; unprefixed lines continue the previous
// speaker. A question without a following answer stays unanswered.
func ParseTranscript(transcript string) []Turn {
	turns := make([]Turn, 0)
	var cur *Turn
	inAnswer := false

	for _, raw := range strings.Split(transcript, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if rest, ok := cutPrefix(line, questionPrefixes); ok {
			turns = append(turns, Turn{OrderIndex: len(turns) + 1, Question: rest})
			cur = &turns[len(turns)-1]
			inAnswer = false
			continue
		}
		if rest, ok := cutPrefix(line, answerPrefixes); ok {
			if cur == nil {
				continue
			}
			cur.Answer = joinLine(cur.Answer, rest)
			inAnswer = true
			continue
		}
		if cur == nil {
			continue
		}
		if inAnswer {
			cur.Answer = joinLine(cur.Answer, line)
		} else {
			cur.Question = joinLine(cur.Question, line)
		}
	}
	return turns
}

func cutPrefix(line string, prefixes []string) (string, bool) {
	lower := strings.ToLower(line)
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) {
			return strings.TrimSpace(line[len(p):]), true
		}
	}
	return "", false
}

func joinLine(a, b string) string {
	if a == "" {
		return b
	}
	return a + " " + b
}
