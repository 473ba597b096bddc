package interview

import (
	"sort"
	"strings"
	"unicode"
)

const maxMustHaveKeywords = 25

// JobContext is the slice of a job posting the options builder reads.
type JobContext struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Requirements       string   `json:"requirements"`
	ExperienceLevel    string   `json:"experience_level"`
	RequiredSkills     []string `json:"required_skills"`
	OptionalSkills     []string `json:"optional_skills"`
	Categories         []string `json:"categories"`
	InterviewQuestions []string `json:"interview_questions"`
}

type AutoOptionsInput struct {
	Transcript string     `json:"transcript"`
	Job        JobContext `json:"job"`
}

var shortTechTokens = toSet("c#", "c++", "ts", "js", "go", "ai", "ml", "ui", "ux", "qa")

var techVocabulary = toSet(
	"go", "golang", "java", "python", "javascript", "typescript", "js", "ts", "c#", "c++", "rust", "kotlin",
	"swift", "php", "ruby", "scala", "dart", "flutter", "react", "reactjs", "vue", "vuejs", "angular", "next.js",
	"nextjs", "svelte", "node.js", "nodejs", "express", "nestjs", "django", "flask", "fastapi", "spring", "laravel",
	"rails", ".net", "dotnet", "graphql", "grpc", "rest", "restful", "api", "apis", "microservices", "sql",
	"postgresql", "postgres", "mysql", "mongodb", "redis", "elasticsearch", "kafka", "rabbitmq", "dynamodb",
	"docker", "kubernetes", "k8s", "aws", "gcp", "azure", "terraform", "ansible", "linux", "nginx", "git",
	"github", "gitlab", "jenkins", "ci/cd", "html", "css", "tailwind", "redux", "webpack", "jest", "cypress",
	"selenium", "ai", "ml", "ui", "ux", "qa", "figma", "tensorflow", "pytorch", "pandas", "spark", "hadoop",
	"android", "ios", "serverless", "lambda", "oauth", "jwt", "websocket", "sass",
)

var techSynonyms = map[string][]string{
	"typescript": {"ts"},
	"ts":         {"typescript"},
	"javascript": {"js"},
	"js":         {"javascript"},
	"node.js":    {"nodejs", "node"},
	"nodejs":     {"node.js", "node"},
	"postgresql": {"postgres"},
	"postgres":   {"postgresql"},
	"kubernetes": {"k8s"},
	"k8s":        {"kubernetes"},
	"golang":     {"go"},
	"go":         {"golang"},
	"react":      {"reactjs", "react.js"},
	"vue":        {"vuejs", "vue.js"},
	"c#":         {"csharp"},
	"ml":         {"machine learning"},
	"ai":         {"artificial intelligence"},
	"mongodb":    {"mongo"},
	"ci/cd":      {"cicd", "continuous integration"},

	"machine learning":        {"ml"},
	"artificial intelligence": {"ai"},
}

// BuildAutoOptions derives evaluator options from the job posting and the
// transcript language.
func BuildAutoOptions(in AutoOptionsInput) Options {
	must := newKeywordSet()
	for _, s := range in.Job.RequiredSkills {
		must.add(s)
	}
	texts := append([]string{in.Job.Title, in.Job.Requirements, in.Job.Description}, in.Job.InterviewQuestions...)
	for _, text := range texts {
		for _, tok := range techTokens(text) {
			must.add(tok)
		}
	}
	mustList := must.list()
	if len(mustList) > maxMustHaveKeywords {
		mustList = mustList[:maxMustHaveKeywords]
	}
	mustSet := toSet(mustList...)

	nice := newKeywordSet()
	for _, s := range append(append([]string{}, in.Job.OptionalSkills...), in.Job.Categories...) {
		if _, ok := mustSet[normalizeKeyword(s)]; ok {
			continue
		}
		nice.add(s)
	}
	niceList := nice.list()

	return Options{
		Language:           DetectLanguage(in.Transcript),
		Seniority:          SeniorityFromLevel(in.Job.ExperienceLevel),
		MustHaveKeywords:   mustList,
		NiceToHaveKeywords: niceList,
		Synonyms:           buildSynonyms(append(append([]string{}, mustList...), niceList...)),
	}
}

// SeniorityFromLevel maps a free-text experience level onto the evaluator's
// seniority bands, defaulting to mid.
func SeniorityFromLevel(level string) Seniority {
	l := fold(level)
	for _, s := range []string{"senior", "lead", "principal", "staff", "architect"} {
		if strings.Contains(l, s) {
			return SenioritySenior
		}
	}
	for _, s := range []string{"junior", "intern", "entry", "fresher", "graduate", "trainee"} {
		if strings.Contains(l, s) {
			return SeniorityJunior
		}
	}
	return SeniorityMid
}

// MergeOptions overlays client-supplied options on auto-derived ones. Client
// scalars win; keyword lists and synonym maps are unioned.
func MergeOptions(client, auto Options) Options {
	out := Options{
		Language:           auto.Language,
		Seniority:          auto.Seniority,
		MustHaveKeywords:   unionKeywords(client.MustHaveKeywords, auto.MustHaveKeywords),
		NiceToHaveKeywords: unionKeywords(client.NiceToHaveKeywords, auto.NiceToHaveKeywords),
		Synonyms:           unionSynonyms(client.Synonyms, auto.Synonyms),
	}
	if client.Language != "" {
		out.Language = client.Language
	}
	if client.Seniority != "" {
		out.Seniority = client.Seniority
	}
	return out
}

func normalizeKeyword(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

type keywordSet struct {
	seen  map[string]struct{}
	order []string
}

func newKeywordSet() *keywordSet {
	return &keywordSet{seen: make(map[string]struct{})}
}

func (k *keywordSet) add(s string) {
	s = normalizeKeyword(s)
	if s == "" {
		return
	}
	if _, ok := k.seen[s]; ok {
		return
	}
	k.seen[s] = struct{}{}
	k.order = append(k.order, s)
}

func (k *keywordSet) list() []string {
	return append(make([]string, 0, len(k.order)), k.order...)
}

func techTokens(text string) []string {
	out := make([]string, 0)
	for _, raw := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(",;:()[]{}!?\"'", r)
	}) {
		tok := strings.Trim(raw, ".-")
		if tok == "" {
			continue
		}
		if _, stop := stopwordsEN[tok]; stop {
			continue
		}
		if _, short := shortTechTokens[tok]; len([]rune(tok)) < 3 && !short {
			continue
		}
		if _, ok := techVocabulary[tok]; !ok {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func buildSynonyms(keywords []string) map[string][]string {
	out := make(map[string][]string)
	for _, k := range keywords {
		variants := make(map[string]struct{})
		if stripped := strings.NewReplacer(".", "", " ", "", "-", "").Replace(k); stripped != k && stripped != "" {
			variants[stripped] = struct{}{}
		}
		for _, v := range techSynonyms[k] {
			if v != k {
				variants[v] = struct{}{}
			}
		}
		if len(variants) == 0 {
			continue
		}
		list := make([]string, 0, len(variants))
		for v := range variants {
			list = append(list, v)
		}
		sort.Strings(list)
		out[k] = list
	}
	return out
}

func unionKeywords(a, b []string) []string {
	set := newKeywordSet()
	for _, s := range a {
		set.add(s)
	}
	for _, s := range b {
		set.add(s)
	}
	return set.list()
}

func unionSynonyms(a, b map[string][]string) map[string][]string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string][]string, len(a)+len(b))
	for _, m := range []map[string][]string{a, b} {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			key := normalizeKeyword(k)
			if key == "" {
				continue
			}
			out[key] = unionKeywords(out[key], m[k])
		}
	}
	return out
}
