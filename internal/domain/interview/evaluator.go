package interview

import (
	"math"
	"sort"
	"strings"
)

const (
	hireThreshold     = 80
	considerThreshold = 60

	strongCategory = 7.0
	weakCategory   = 5.0
)

// GenerateFeedback grades the interview turn by turn and aggregates the
// result. When no turns are given they are parsed from the transcript. It
// never fails: an empty or unanswered interview scores zero.
func GenerateFeedback(in FeedbackInput) Feedback {
	turns := in.Turns
	if len(turns) == 0 && strings.TrimSpace(in.Transcript) != "" {
		turns = ParseTranscript(in.Transcript)
	}
	turns = orderTurns(turns)

	lang := resolveLanguage(in.Options.Language, in.Transcript, turns)
	seniority := in.Options.Seniority
	if _, ok := lengthBySeniority[seniority]; !ok {
		seniority = SeniorityMid
	}

	fb := Feedback{
		Recommendation:      RecommendationReject,
		Strengths:           make([]string, 0),
		AreasForImprovement: make([]string, 0),
		CategoryScores:      make([]CategoryScore, 0),
		PerQuestion:         make([]QuestionFeedback, 0, len(turns)),
	}
	if len(turns) == 0 {
		fb.Summary = tr(lang, msgSummaryEmpty)
		return fb
	}

	kw := newKeywordMatcher(in.Options)
	all := make([]signals, 0, len(turns))
	sum := 0
	answered := 0
	for _, t := range turns {
		kind := ClassifyQuestion(t.Question, t.Category)
		s := scoreSignals(t, kw, lang, seniority)
		score := blend(s, weightsFor(kind, kw.enabled()))
		if s.answered {
			answered++
		}
		all = append(all, s)
		sum += score

		fb.PerQuestion = append(fb.PerQuestion, QuestionFeedback{
			OrderIndex: t.OrderIndex,
			Question:   t.Question,
			Kind:       kind,
			Score:      score,
			Feedback:   questionFeedback(s, score, kw.enabled(), lang, seniority),
		})
	}

	mean := float64(sum) / float64(len(turns))
	fb.OverallScore = int(clampFloat(math.Round(mean*10), 0, 100))
	fb.Recommendation = recommend(fb.OverallScore)

	cats := categoryScores(all, kw.enabled())
	for _, c := range cats {
		fb.CategoryScores = append(fb.CategoryScores, CategoryScore{
			Name:    tr(lang, c.name),
			Score:   math.Round(c.score*10) / 10,
			Comment: categoryComment(lang, c),
		})
	}
	fb.Strengths, fb.AreasForImprovement = highlights(lang, cats, all, answered)

	switch fb.Recommendation {
	case RecommendationHire:
		fb.Summary = tr(lang, msgSummaryHire, fb.OverallScore, answered, len(turns))
	case RecommendationConsider:
		fb.Summary = tr(lang, msgSummaryConsider, fb.OverallScore, answered, len(turns))
	default:
		fb.Summary = tr(lang, msgSummaryReject, fb.OverallScore, answered, len(turns))
	}
	return fb
}

func recommend(overall int) Recommendation {
	switch {
	case overall >= hireThreshold:
		return RecommendationHire
	case overall >= considerThreshold:
		return RecommendationConsider
	default:
		return RecommendationReject
	}
}

func orderTurns(turns []Turn) []Turn {
	out := make([]Turn, len(turns))
	copy(out, turns)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}

func resolveLanguage(lang Language, transcript string, turns []Turn) Language {
	switch lang {
	case LanguageEN, LanguageVI:
		return lang
	}
	b := strings.Builder{}
	b.WriteString(transcript)
	for _, t := range turns {
		b.WriteByte('\n')
		b.WriteString(t.Question)
		b.WriteByte('\n')
		b.WriteString(t.Answer)
	}
	return DetectLanguage(b.String())
}

func questionFeedback(s signals, score int, withKeywords bool, lang Language, seniority Seniority) string {
	if !s.answered {
		return tr(lang, msgNoAnswer)
	}

	parts := make([]string, 0, 4)
	switch {
	case score >= 8:
		parts = append(parts, tr(lang, msgAnswerStrong))
	case score >= 5:
		parts = append(parts, tr(lang, msgAnswerAdequate))
	default:
		parts = append(parts, tr(lang, msgAnswerWeak))
	}

	if s.offTopic {
		parts = append(parts, tr(lang, msgTipOffTopic))
	}
	if s.words < lengthBySeniority[seniority].short {
		parts = append(parts, tr(lang, msgTipLength))
	}
	if s.structure < 10 {
		parts = append(parts, tr(lang, msgTipStructure))
	}
	if s.examples < 10 {
		parts = append(parts, tr(lang, msgTipExamples))
	}
	if s.confidence < 8 {
		parts = append(parts, tr(lang, msgTipConfidence))
	}
	if withKeywords && s.keyword == 0 {
		parts = append(parts, tr(lang, msgTipKeywords))
	}
	return strings.Join(parts, " ")
}

type category struct {
	name     messageID
	strength messageID
	improve  messageID
	score    float64
}

// categoryScores derives 0-10 category scores from the per-turn signals.
// Unanswered turns count as zero.
func categoryScores(all []signals, withKeywords bool) []category {
	var clarity, structure, depth, relevance, keyword float64
	for _, s := range all {
		if !s.answered {
			continue
		}
		clarity += clampFloat((s.length+s.confidence)/2*1.25, 0, 10)
		structure += s.structure
		depth += (s.examples + s.length*1.25) / 2
		rel := s.relevance
		if s.offTopic {
			rel = math.Min(rel, 2)
		}
		relevance += clampFloat(rel*2, 0, 10)
		keyword += s.keyword
	}
	n := float64(len(all))

	out := []category{
		{msgCategoryClarity, msgStrengthClarity, msgImproveClarity, clarity / n},
		{msgCategoryStructure, msgStrengthStructure, msgImproveStructure, structure / n},
		{msgCategoryDepth, msgStrengthDepth, msgImproveDepth, depth / n},
		{msgCategoryRelevance, msgStrengthRelevance, msgImproveRelevance, relevance / n},
	}
	if withKeywords {
		out = append(out, category{msgCategoryKeywords, msgStrengthKeywords, msgImproveKeywords, keyword / n})
	}
	for i := range out {
		out[i].score = clampFloat(out[i].score, 0, 10)
	}
	return out
}

func categoryComment(lang Language, c category) string {
	name := tr(lang, c.name)
	switch {
	case c.score >= strongCategory:
		return tr(lang, msgCommentHigh, name)
	case c.score >= weakCategory:
		return tr(lang, msgCommentMedium, name)
	default:
		return tr(lang, msgCommentLow, name)
	}
}

func highlights(lang Language, cats []category, all []signals, answered int) ([]string, []string) {
	strengths := make([]string, 0, len(cats)+1)
	improve := make([]string, 0, len(cats)+2)
	if answered == 0 {
		return strengths, append(improve, tr(lang, msgImproveUnanswered))
	}

	for _, c := range cats {
		switch {
		case c.score >= strongCategory:
			strengths = append(strengths, tr(lang, c.strength))
		case c.score < weakCategory:
			improve = append(improve, tr(lang, c.improve))
		}
	}

	hedging := 0
	for _, s := range all {
		if s.answered && s.confidence < 8 {
			hedging++
		}
	}
	if hedging == 0 {
		strengths = append(strengths, tr(lang, msgStrengthConfidence))
	} else if hedging*2 >= answered {
		improve = append(improve, tr(lang, msgImproveConfidence))
	}

	if answered < len(all) {
		improve = append(improve, tr(lang, msgImproveUnanswered))
	}
	return strengths, improve
}
