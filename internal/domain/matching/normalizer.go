package matching

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var skillSynonyms = map[string]string{
	"js":                      "JavaScript",
	"javascript":              "JavaScript",
	"es6":                     "JavaScript",
	"ts":                      "TypeScript",
	"typescript":              "TypeScript",
	"node":                    "Node.js",
	"nodejs":                  "Node.js",
	"node.js":                 "Node.js",
	"node js":                 "Node.js",
	"react":                   "React",
	"reactjs":                 "React",
	"react.js":                "React",
	"react js":                "React",
	"react native":            "React Native",
	"vue":                     "Vue.js",
	"vuejs":                   "Vue.js",
	"vue.js":                  "Vue.js",
	"angular":                 "Angular",
	"angularjs":               "Angular",
	"next":                    "Next.js",
	"nextjs":                  "Next.js",
	"next.js":                 "Next.js",
	"nuxt":                    "Nuxt.js",
	"nuxtjs":                  "Nuxt.js",
	"express":                 "Express.js",
	"expressjs":               "Express.js",
	"express.js":              "Express.js",
	"nestjs":                  "NestJS",
	"nest.js":                 "NestJS",
	"postgres":                "PostgreSQL",
	"postgresql":              "PostgreSQL",
	"psql":                    "PostgreSQL",
	"pg":                      "PostgreSQL",
	"mysql":                   "MySQL",
	"mongo":                   "MongoDB",
	"mongodb":                 "MongoDB",
	"redis":                   "Redis",
	"elasticsearch":           "Elasticsearch",
	"elastic search":          "Elasticsearch",
	"go":                      "Go",
	"golang":                  "Go",
	"py":                      "Python",
	"python":                  "Python",
	"python3":                 "Python",
	"java":                    "Java",
	"kotlin":                  "Kotlin",
	"swift":                   "Swift",
	"php":                     "PHP",
	"ruby":                    "Ruby",
	"rails":                   "Ruby on Rails",
	"ruby on rails":           "Ruby on Rails",
	"c#":                      "C#",
	"csharp":                  "C#",
	"c++":                     "C++",
	"cpp":                     "C++",
	".net":                    ".NET",
	"dotnet":                  ".NET",
	"spring":                  "Spring Boot",
	"spring boot":             "Spring Boot",
	"springboot":              "Spring Boot",
	"django":                  "Django",
	"flask":                   "Flask",
	"fastapi":                 "FastAPI",
	"laravel":                 "Laravel",
	"html":                    "HTML",
	"html5":                   "HTML",
	"css":                     "CSS",
	"css3":                    "CSS",
	"sass":                    "Sass",
	"scss":                    "Sass",
	"tailwind":                "Tailwind CSS",
	"tailwindcss":             "Tailwind CSS",
	"tailwind css":            "Tailwind CSS",
	"graphql":                 "GraphQL",
	"rest":                    "REST API",
	"restful":                 "REST API",
	"rest api":                "REST API",
	"restful api":             "REST API",
	"grpc":                    "gRPC",
	"k8s":                     "Kubernetes",
	"kubernetes":              "Kubernetes",
	"docker":                  "Docker",
	"aws":                     "AWS",
	"amazon web services":     "AWS",
	"gcp":                     "GCP",
	"google cloud":            "GCP",
	"azure":                   "Azure",
	"terraform":               "Terraform",
	"ci/cd":                   "CI/CD",
	"cicd":                    "CI/CD",
	"git":                     "Git",
	"github":                  "GitHub",
	"gitlab":                  "GitLab",
	"linux":                   "Linux",
	"sql":                     "SQL",
	"nosql":                   "NoSQL",
	"ml":                      "Machine Learning",
	"machine learning":        "Machine Learning",
	"ai":                      "AI",
	"artificial intelligence": "AI",
	"figma":                   "Figma",
	"jira":                    "Jira",
	"kafka":                   "Kafka",
	"rabbitmq":                "RabbitMQ",
}

// NormalizeSkill maps a free-text skill name to its canonical spelling.
func NormalizeSkill(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}

	key := strings.Join(strings.Fields(strings.ToLower(trimmed)), " ")
	if canonical, ok := skillSynonyms[key]; ok {
		return canonical
	}

	words := strings.Fields(trimmed)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}

type SkillComparison struct {
	Matched []string
	Missing []string
	Extra   []string
}

// CompareSkills splits the normalized skill sets into matched, missing
// (job only) and extra (candidate only).
func CompareSkills(candidate, job []string) SkillComparison {
	cand := normalizeSkillList(candidate)
	req := normalizeSkillList(job)

	candSet := make(map[string]struct{}, len(cand))
	for _, s := range cand {
		candSet[s] = struct{}{}
	}
	reqSet := make(map[string]struct{}, len(req))
	for _, s := range req {
		reqSet[s] = struct{}{}
	}

	out := SkillComparison{
		Matched: make([]string, 0, len(req)),
		Missing: make([]string, 0),
		Extra:   make([]string, 0),
	}
	for _, s := range req {
		if _, ok := candSet[s]; ok {
			out.Matched = append(out.Matched, s)
			continue
		}
		out.Missing = append(out.Missing, s)
	}
	for _, s := range cand {
		if _, ok := reqSet[s]; !ok {
			out.Extra = append(out.Extra, s)
		}
	}
	return out
}

func normalizeSkillList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		n := NormalizeSkill(s)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// normalizeText lowercases, drops punctuation and collapses whitespace.
func normalizeText(input string) string {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return ""
	}

	b := strings.Builder{}
	b.Grow(len(input))
	lastWasSpace := false
	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
			lastWasSpace = false
			continue
		}
		if b.Len() == 0 || lastWasSpace {
			continue
		}
		b.WriteByte(' ')
		lastWasSpace = true
	}
	return strings.TrimSpace(b.String())
}

// wordSet returns the distinct lowercase words longer than minLen runes.
func wordSet(s string, minLen int) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range strings.Fields(normalizeText(s)) {
		if utf8.RuneCountInString(w) <= minLen {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

// TitleWords returns the distinct lowercase words of a title longer than two
// characters.
func TitleWords(title string) map[string]struct{} {
	return wordSet(title, 2)
}
