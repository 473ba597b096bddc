package interview

import (
	"math"
	"regexp"
)

type weights struct {
	length     float64
	structure  float64
	examples   float64
	confidence float64
	keyword    float64
	relevance  float64
}

var baseWeights = weights{
	length:     0.25,
	structure:  0.20,
	examples:   0.20,
	confidence: 0.10,
	keyword:    0.15,
	relevance:  0.10,
}

func weightsFor(kind Kind, withKeywords bool) weights {
	w := baseWeights
	switch kind {
	case KindTechnical:
		w.keyword += 0.10
		w.relevance += 0.05
		w.structure -= 0.10
	case KindBehavioral:
		w.structure += 0.10
		w.examples += 0.05
		w.confidence += 0.05
		w.keyword -= 0.10
	}
	if !withKeywords {
		w.keyword = 0
	}
	return w
}

type lengthThresholds struct {
	short int
	ok    int
}

var lengthBySeniority = map[Seniority]lengthThresholds{
	SeniorityJunior: {short: 25, ok: 70},
	SeniorityMid:    {short: 40, ok: 90},
	SenioritySenior: {short: 60, ok: 120},
}

const (
	offTopicRelevance = 0.08
	offTopicMinWords  = 40
	offTopicCap       = 5
	hedgeLimit        = 4
)

var (
	starPattern = regexp.MustCompile(`\b(situation|task|action|result(ed|s)?|first(ly)?|second(ly)?|then|finally|because|therefore|as a result|outcome|tinh huong|nhiem vu|hanh dong|ket qua|dau tien|sau do|cuoi cung|vi vay)\b`)

	examplePattern = regexp.MustCompile(`\d|%|\b(for example|for instance|e\.g|such as|in my (last|previous|current) (project|role|job|team)|vi du|chang han|cu the la)\b`)

	hedgePattern = regexp.MustCompile(`\b(i think|maybe|perhaps|probably|i guess|not sure|kind of|sort of|i believe|might|co le|hinh nhu|khong chac|chac la|toi nghi)\b`)
)

// signals are the 0-10 sub-scores of a single answer.
type signals struct {
	answered   bool
	words      int
	length     float64
	structure  float64
	examples   float64
	confidence float64
	keyword    float64
	relevance  float64
	overlap    float64
	offTopic   bool
}

func scoreSignals(t Turn, kw keywordMatcher, lang Language, seniority Seniority) signals {
	words := wordCount(t.Answer)
	if words == 0 {
		return signals{}
	}

	answer := fold(t.Answer)
	s := signals{answered: true, words: words}
	s.length = lengthScore(words, seniority)
	s.structure = 4
	if starPattern.MatchString(answer) {
		s.structure = 10
	}
	s.examples = 4
	if examplePattern.MatchString(answer) {
		s.examples = 10
	}
	s.confidence = 8
	if len(hedgePattern.FindAllStringIndex(answer, -1)) >= hedgeLimit {
		s.confidence = 4
	}
	s.keyword = kw.score(t.Answer)
	s.overlap = jaccard(contentTokens(t.Question, lang), contentTokens(t.Answer, lang))
	s.relevance = clampFloat(s.overlap*10, 0, 10)
	s.offTopic = s.overlap < offTopicRelevance && words >= offTopicMinWords
	return s
}

func lengthScore(words int, seniority Seniority) float64 {
	th, ok := lengthBySeniority[seniority]
	if !ok {
		th = lengthBySeniority[SeniorityMid]
	}
	switch {
	case words == 0:
		return 0
	case words < th.short:
		return 4
	case words < th.ok:
		return 7
	default:
		return 8
	}
}

// blend combines the sub-scores into a 0-10 integer using the weights for
// the question kind, dividing by the weight actually in use.
func blend(s signals, w weights) int {
	if !s.answered {
		return 0
	}
	total := s.length*w.length +
		s.structure*w.structure +
		s.examples*w.examples +
		s.confidence*w.confidence +
		s.keyword*w.keyword +
		s.relevance*w.relevance
	used := w.length + w.structure + w.examples + w.confidence + w.keyword + w.relevance
	if used <= 0 {
		return 0
	}
	score := total / used
	if s.offTopic && score > offTopicCap {
		score = offTopicCap
	}
	return int(clampFloat(math.Round(score), 0, 10))
}

type keywordMatcher struct {
	must []keywordGroup
	nice []keywordGroup
}

type keywordGroup []string

func newKeywordMatcher(o Options) keywordMatcher {
	syn := make(map[string][]string, len(o.Synonyms))
	for k, v := range o.Synonyms {
		key := fold(k)
		syn[key] = append(syn[key], v...)
	}
	group := func(terms []string) []keywordGroup {
		out := make([]keywordGroup, 0, len(terms))
		for _, t := range terms {
			if wordCount(t) == 0 {
				continue
			}
			g := keywordGroup{t}
			g = append(g, syn[fold(t)]...)
			out = append(out, g)
		}
		return out
	}
	return keywordMatcher{must: group(o.MustHaveKeywords), nice: group(o.NiceToHaveKeywords)}
}

func (m keywordMatcher) enabled() bool {
	return len(m.must) > 0 || len(m.nice) > 0
}

func (m keywordMatcher) score(answer string) float64 {
	if !m.enabled() {
		return 0
	}
	text := keywordText(answer)
	hits := func(groups []keywordGroup) int {
		n := 0
		for _, g := range groups {
			for _, term := range g {
				if containsTerm(text, term) {
					n++
					break
				}
			}
		}
		return n
	}
	return clampFloat(float64(hits(m.must)*3+hits(m.nice)), 0, 10)
}

func clampFloat(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
