package matching

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

type JobAnalysis struct {
	SoftSkills   map[SoftSkill]int
	Technologies map[TechCategory][]string
	Languages    []string
	Environment  map[Environment]int
	Keywords     []string
	Complexity   int
}

// TechnologyCount is the number of technology mentions across all categories.
func (a JobAnalysis) TechnologyCount() int {
	n := 0
	for _, c := range TechCategories {
		n += len(a.Technologies[c])
	}
	return n
}

type techTerm struct {
	name string
	re   *regexp.Regexp
}

func term(name, pattern string) techTerm {
	return techTerm{name: name, re: regexp.MustCompile(pattern)}
}

func patterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

var softSkillPatterns = map[SoftSkill][]*regexp.Regexp{
	SoftSkillCommunication: patterns(
		`\bcommunicat\w*`,
		`\bpresent(ation|ing|s)?\b`,
		`\bstakeholders?\b`,
		`\bwritten and verbal\b`,
		`\barticulate\b`,
	),
	SoftSkillLeadership: patterns(
		`\blead(ing|ership)?\b`,
		`\bmentor\w*`,
		`\bcoach\w*`,
		`\bmanag(e|ing) (a )?team\b`,
		`\bownership\b`,
	),
	SoftSkillTeamwork: patterns(
		`\bteam ?(work|player)\b`,
		`\bcollaborat\w*`,
		`\bcross[- ]functional\b`,
		`\bwork(ing)? closely\b`,
	),
	SoftSkillProblemSolving: patterns(
		`\bproblem[- ]solv\w*`,
		`\banalytical\b`,
		`\btroubleshoot\w*`,
		`\bcritical thinking\b`,
		`\bdebug\w*`,
	),
	SoftSkillAdaptability: patterns(
		`\badapt\w*`,
		`\bflexib\w*`,
		`\bquick(ly)? learn\w*`,
		`\bchanging (requirements|priorities|environment)\b`,
	),
	SoftSkillTimeManagement: patterns(
		`\btime[- ]management\b`,
		`\bdeadlines?\b`,
		`\bprioriti[sz]\w*`,
		`\bmulti[- ]?task\w*`,
		`\borgani[sz]ed\b`,
	),
}

var technologyTerms = map[TechCategory][]techTerm{
	TechFrontend: {
		term("react", `\breact(\.?js)?\b`),
		term("vue", `\bvue(\.?js)?\b`),
		term("angular", `\bangular(js)?\b`),
		term("next.js", `\bnext\.?js\b`),
		term("svelte", `\bsvelte\b`),
		term("html", `\bhtml5?\b`),
		term("css", `\bcss3?\b`),
		term("tailwind", `\btailwind\b`),
		term("redux", `\bredux\b`),
	},
	TechBackend: {
		term("node.js", `\bnode(\.| )?js\b`),
		term("express", `\bexpress(\.| )?js\b`),
		term("nestjs", `\bnest\.?js\b`),
		term("django", `\bdjango\b`),
		term("flask", `\bflask\b`),
		term("spring", `\bspring ?(boot|framework|mvc)\b`),
		term("laravel", `\blaravel\b`),
		term("rails", `\brails\b`),
		term(".net", `\.net\b|\bdotnet\b`),
		term("graphql", `\bgraphql\b`),
		term("grpc", `\bgrpc\b`),
		term("rest", `\brestful\b|\brest(ful)? ?apis?\b`),
	},
	TechDatabase: {
		term("postgresql", `\bpostgre(s|sql)\b`),
		term("mysql", `\bmysql\b`),
		term("mongodb", `\bmongo(db)?\b`),
		term("redis", `\bredis\b`),
		term("elasticsearch", `\belastic ?search\b`),
		term("sql", `\bsql\b`),
		term("dynamodb", `\bdynamo(db)?\b`),
		term("prisma", `\bprisma\b`),
	},
	TechCloud: {
		term("aws", `\baws\b|\bamazon web services\b`),
		term("gcp", `\bgcp\b|\bgoogle cloud\b`),
		term("azure", `\bazure\b`),
		term("kubernetes", `\bkubernetes\b|\bk8s\b`),
		term("docker", `\bdocker\b`),
		term("terraform", `\bterraform\b`),
		term("serverless", `\bserverless\b|\blambda\b`),
	},
	TechTools: {
		term("git", `\bgit\b`),
		term("github", `\bgithub\b`),
		term("gitlab", `\bgitlab\b`),
		term("jira", `\bjira\b`),
		term("ci/cd", `\bci ?/ ?cd\b`),
		term("jenkins", `\bjenkins\b`),
		term("figma", `\bfigma\b`),
		term("webpack", `\bwebpack\b`),
		term("jest", `\bjest\b`),
	},
}

var languageTerms = []techTerm{
	term("javascript", `\bjavascript\b|\bjs\b`),
	term("typescript", `\btypescript\b|\bts\b`),
	term("python", `\bpython\b`),
	term("java", `\bjava\b`),
	term("go", `\bgolang\b|\bgo\b`),
	term("c#", `\bc#`),
	term("c++", `\bc\+\+`),
	term("php", `\bphp\b`),
	term("ruby", `\bruby\b`),
	term("kotlin", `\bkotlin\b`),
	term("swift", `\bswift\b`),
	term("rust", `\brust\b`),
}

var environmentPatterns = map[Environment][]*regexp.Regexp{
	EnvStartup: patterns(
		`\bstart-?ups?\b`,
		`\bearly[- ]stage\b`,
		`\bseed\b`,
		`\bseries [a-c]\b`,
	),
	EnvEnterprise: patterns(
		`\benterprise\b`,
		`\bcorporat\w*`,
		`\bfortune 500\b`,
		`\bmultinational\b`,
	),
	EnvRemote: patterns(
		`\bremote\b`,
		`\bwork from (home|anywhere)\b`,
		`\bdistributed team\b`,
		`\bhybrid\b`,
	),
	EnvFastPaced: patterns(
		`\bfast[- ]paced\b`,
		`\bdynamic\b`,
		`\bhigh[- ]growth\b`,
		`\bagile\b`,
	),
}

var (
	technicalIndicators = patterns(
		`\barchitect\w*`,
		`\bscalab\w*`,
		`\bdistributed\b`,
		`\bmicroservices?\b`,
		`\bhigh[- ]availability\b`,
		`\bperformance\b`,
		`\bsecurity\b`,
		`\bsystem design\b`,
		`\bmachine learning\b`,
	)
	leadershipIndicators = patterns(
		`\blead(ing)? (a |the )?team\b`,
		`\bmentor\w*`,
		`\bstrategy\b`,
		`\bstakeholders?\b`,
	)
	seniorityIndicators = patterns(
		`\bsenior\b`,
		`\bprincipal\b`,
		`\bstaff engineer\b`,
		`\b([5-9]|\d{2,})\+? years?\b`,
	)
	juniorIndicators = patterns(
		`\bjunior\b`,
		`\bentry[- ]level\b`,
		`\bintern(ship)?\b`,
		`\bgraduate\b`,
		`\bno experience\b`,
	)
	keywordTokenRe = regexp.MustCompile(`[a-z0-9#+.]+`)
)

var keywordStopwords = map[string]struct{}{
	"about": {}, "above": {}, "after": {}, "also": {}, "and": {}, "been": {}, "being": {},
	"both": {}, "candidate": {}, "candidates": {}, "company": {}, "could": {}, "each": {},
	"from": {}, "have": {}, "having": {}, "into": {}, "more": {}, "must": {}, "other": {},
	"over": {}, "role": {}, "should": {}, "some": {}, "such": {}, "than": {}, "that": {},
	"their": {}, "them": {}, "then": {}, "there": {}, "these": {}, "they": {}, "this": {},
	"those": {}, "through": {}, "very": {}, "well": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "which": {}, "while": {}, "will": {}, "with": {}, "within": {}, "work": {},
	"would": {}, "year": {}, "years": {}, "your": {}, "you're": {}, "ability": {}, "able": {},
	"including": {}, "looking": {}, "join": {}, "team": {}, "strong": {}, "good": {},
	"experience": {}, "knowledge": {}, "skills": {}, "plus": {}, "etc.": {},
}

// Analyze extracts implicit signals from unstructured job text. Trait scores
// are raw hit counts and grow with text length.
func Analyze(description, requirements, responsibilities string) JobAnalysis {
	text := strings.ToLower(strings.Join([]string{description, requirements, responsibilities}, " "))

	out := JobAnalysis{
		SoftSkills:   make(map[SoftSkill]int, len(SoftSkills)),
		Technologies: make(map[TechCategory][]string, len(TechCategories)),
		Languages:    make([]string, 0),
		Environment:  make(map[Environment]int, len(Environments)),
	}

	for _, s := range SoftSkills {
		out.SoftSkills[s] = countHits(text, softSkillPatterns[s])
	}
	for _, c := range TechCategories {
		found := make([]string, 0)
		for _, t := range technologyTerms[c] {
			if t.re.MatchString(text) {
				found = append(found, t.name)
			}
		}
		out.Technologies[c] = found
	}
	for _, t := range languageTerms {
		if t.re.MatchString(text) {
			out.Languages = append(out.Languages, t.name)
		}
	}
	for _, e := range Environments {
		out.Environment[e] = countHits(text, environmentPatterns[e])
	}

	out.Keywords = topKeywords(text, 10)
	out.Complexity = complexity(text)
	return out
}

func countHits(text string, res []*regexp.Regexp) int {
	n := 0
	for _, re := range res {
		n += len(re.FindAllStringIndex(text, -1))
	}
	return n
}

func topKeywords(text string, limit int) []string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, tok := range keywordTokenRe.FindAllString(text, -1) {
		tok = strings.Trim(tok, ".")
		if utf8.RuneCountInString(tok) <= 3 {
			continue
		}
		if _, stop := keywordStopwords[tok]; stop {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

func complexity(text string) int {
	score := 3.0
	score += math.Min(float64(countHits(text, technicalIndicators))*0.25, 1)
	score += math.Min(float64(countHits(text, leadershipIndicators))*0.25, 0.5)
	score += math.Min(float64(countHits(text, seniorityIndicators))*0.5, 1)
	score -= math.Min(float64(countHits(text, juniorIndicators))*0.5, 2)

	c := int(math.Round(score))
	return clampInt(c, 1, 5)
}
