package interview

type Language string

const (
	LanguageEN Language = "en"
	LanguageVI Language = "vi"
)

type Seniority string

const (
	SeniorityJunior Seniority = "JUNIOR"
	SeniorityMid    Seniority = "MID"
	SenioritySenior Seniority = "SENIOR"
)

type Kind string

const (
	KindTechnical  Kind = "TECHNICAL"
	KindBehavioral Kind = "BEHAVIORAL"
	KindGeneral    Kind = "GENERAL"
)

type Recommendation string

const (
	RecommendationHire     Recommendation = "HIRE"
	RecommendationConsider Recommendation = "CONSIDER"
	RecommendationReject   Recommendation = "REJECT"
)

// Turn is one question/answer pair. An empty Answer means the question went
// unanswered.
type Turn struct {
	OrderIndex int    `json:"order_index"`
	Question   string `json:"question"`
	Category   string `json:"category,omitempty"`
	Answer     string `json:"answer,omitempty"`
}

type Options struct {
	Language           Language            `json:"language,omitempty"`
	Seniority          Seniority           `json:"seniority,omitempty"`
	MustHaveKeywords   []string            `json:"must_have_keywords,omitempty"`
	NiceToHaveKeywords []string            `json:"nice_to_have_keywords,omitempty"`
	Synonyms           map[string][]string `json:"synonyms,omitempty"`
}

func (o Options) hasKeywords() bool {
	return len(o.MustHaveKeywords) > 0 || len(o.NiceToHaveKeywords) > 0
}

type CategoryScore struct {
	Name    string  `json:"name"`
	Score   float64 `json:"score"`
	Comment string  `json:"comment"`
}

type QuestionFeedback struct {
	OrderIndex int    `json:"order_index"`
	Question   string `json:"question"`
	Kind       Kind   `json:"kind"`
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
}

type Feedback struct {
	OverallScore        int                `json:"overall_score"`
	Recommendation      Recommendation     `json:"recommendation"`
	Summary             string             `json:"summary"`
	Strengths           []string           `json:"strengths"`
	AreasForImprovement []string           `json:"areas_for_improvement"`
	CategoryScores      []CategoryScore    `json:"category_scores"`
	PerQuestion         []QuestionFeedback `json:"per_question"`
}

type FeedbackInput struct {
	Transcript string  `json:"transcript"`
	Turns      []Turn  `json:"turns"`
	Options    Options `json:"options"`
}
