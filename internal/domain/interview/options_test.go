package interview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAutoOptions(t *testing.T) {
	opts := BuildAutoOptions(AutoOptionsInput{
		Transcript: "Q: Tell me about yourself\nA: I build APIs.",
		Job: JobContext{
			Title:           "Senior Go Developer",
			Requirements:    "Experience with Kubernetes, PostgreSQL and REST APIs.",
			ExperienceLevel: "Senior",
			RequiredSkills:  []string{"Go", "Node.js"},
			OptionalSkills:  []string{"Docker", "go"},
			Categories:      []string{"Backend"},
		},
	})

	assert.Equal(t, LanguageEN, opts.Language)
	assert.Equal(t, SenioritySenior, opts.Seniority)
	assert.Equal(t, []string{"go", "node.js", "kubernetes", "postgresql", "rest", "apis"}, opts.MustHaveKeywords)
	assert.Equal(t, []string{"docker", "backend"}, opts.NiceToHaveKeywords)
	assert.Equal(t, []string{"golang"}, opts.Synonyms["go"])
	assert.Equal(t, []string{"node", "nodejs"}, opts.Synonyms["node.js"])
	assert.Equal(t, []string{"postgres"}, opts.Synonyms["postgresql"])
	assert.NotContains(t, opts.Synonyms, "docker")
}

func TestBuildAutoOptions_Vietnamese(t *testing.T) {
	opts := BuildAutoOptions(AutoOptionsInput{
		Transcript: "Hỏi: Bạn đã làm việc với Go bao lâu?\nĐáp: Tôi đã làm ba năm.",
		Job:        JobContext{ExperienceLevel: "Fresher"},
	})

	assert.Equal(t, LanguageVI, opts.Language)
	assert.Equal(t, SeniorityJunior, opts.Seniority)
	assert.Empty(t, opts.MustHaveKeywords)
}

func TestBuildAutoOptions_CapsMustHave(t *testing.T) {
	vocab := []string{
		"java", "python", "javascript", "typescript", "rust", "kotlin", "swift", "php", "ruby", "scala",
		"react", "vue", "angular", "django", "flask", "spring", "laravel", "graphql", "grpc", "mysql",
		"mongodb", "redis", "kafka", "docker", "kubernetes", "aws", "gcp", "azure", "terraform", "linux",
	}

	opts := BuildAutoOptions(AutoOptionsInput{Job: JobContext{Description: strings.Join(vocab, " ")}})

	assert.Len(t, opts.MustHaveKeywords, maxMustHaveKeywords)
	assert.Equal(t, vocab[:maxMustHaveKeywords], opts.MustHaveKeywords)
}

func TestTechTokens(t *testing.T) {
	got := techTokens("We use C#, C++ and TS (plus js). Go is great; so is an API. Ci/cd too.")

	assert.Equal(t, []string{"c#", "c++", "ts", "js", "go", "api", "ci/cd"}, got)
}

func TestSeniorityFromLevel(t *testing.T) {
	tests := map[string]Seniority{
		"Senior Engineer": SenioritySenior,
		"Tech Lead":       SenioritySenior,
		"STAFF":           SenioritySenior,
		"junior":          SeniorityJunior,
		"Internship":      SeniorityJunior,
		"entry_level":     SeniorityJunior,
		"Mid-level":       SeniorityMid,
		"":                SeniorityMid,
	}
	for level, want := range tests {
		assert.Equal(t, want, SeniorityFromLevel(level), level)
	}
}

func TestMergeOptions(t *testing.T) {
	auto := Options{
		Language:           LanguageEN,
		Seniority:          SeniorityMid,
		MustHaveKeywords:   []string{"go", "postgresql"},
		NiceToHaveKeywords: []string{"docker"},
		Synonyms:           map[string][]string{"go": {"golang"}, "postgresql": {"postgres"}},
	}
	client := Options{
		Language:         LanguageVI,
		MustHaveKeywords: []string{"Rust", "GO"},
		Synonyms:         map[string][]string{"Go": {"go lang"}, "rust": {"rs"}},
	}

	got := MergeOptions(client, auto)

	assert.Equal(t, LanguageVI, got.Language)
	assert.Equal(t, SeniorityMid, got.Seniority)
	assert.Equal(t, []string{"rust", "go", "postgresql"}, got.MustHaveKeywords)
	assert.Equal(t, []string{"docker"}, got.NiceToHaveKeywords)
	assert.Equal(t, []string{"go lang", "golang"}, got.Synonyms["go"])
	assert.Equal(t, []string{"rs"}, got.Synonyms["rust"])
	assert.Equal(t, []string{"postgres"}, got.Synonyms["postgresql"])
}

func TestMergeOptions_CollidingSynonymKeysMergeInKeyOrder(t *testing.T) {
	client := Options{Synonyms: map[string][]string{
		"node.js":   {"node"},
		"Node.JS":   {"nodejs"},
		" NODE.JS ": {"njs"},
	}}

	for i := 0; i < 20; i++ {
		got := MergeOptions(client, Options{})
		assert.Equal(t, []string{"njs", "nodejs", "node"}, got.Synonyms["node.js"])
	}
}

func TestMergeOptions_ClientOnly(t *testing.T) {
	got := MergeOptions(Options{Seniority: SenioritySenior}, Options{})

	assert.Equal(t, SenioritySenior, got.Seniority)
	assert.Empty(t, got.MustHaveKeywords)
	assert.Nil(t, got.Synonyms)
}

func TestMessagesCoverEveryID(t *testing.T) {
	for id := messageID(0); id < msgCount; id++ {
		en, vi := messagesEN[id], messagesVI[id]
		assert.NotEmpty(t, en, fmt.Sprintf("en message %d", id))
		assert.NotEmpty(t, vi, fmt.Sprintf("vi message %d", id))
		assert.Equal(t, strings.Count(en, "%"), strings.Count(vi, "%"), fmt.Sprintf("placeholders of message %d", id))
	}
}

func TestFoldAndDetectLanguage(t *testing.T) {
	assert.Equal(t, "thiet ke da nang", fold("Thiết kế Đà Nẵng"))
	assert.Equal(t, LanguageVI, DetectLanguage("Tôi đã làm việc với Go"))
	assert.Equal(t, LanguageEN, DetectLanguage("Hello from a café"))
	assert.Equal(t, LanguageEN, DetectLanguage(""))
}

func TestContentTokens(t *testing.T) {
	en := contentTokens("How do you scale the API for peak traffic?", LanguageEN)
	vi := contentTokens("Bạn thiết kế hệ thống như thế nào?", LanguageVI)

	assert.Equal(t, toSet("scale", "api", "peak", "traffic"), en)
	assert.Equal(t, toSet("thiet", "ke", "he", "thong"), vi)
}
