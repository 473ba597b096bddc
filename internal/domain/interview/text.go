package interview

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var vietnameseDiacritics = regexp.MustCompile(`(?i)[àáạảãâầấậẩẫăằắặẳẵèéẹẻẽêềếệểễìíịỉĩòóọỏõôồốộổỗơờớợởỡùúụủũưừứựửữỳýỵỷỹđ]`)

const minVietnameseHits = 3

// DetectLanguage reports Vietnamese when the text carries enough
// Vietnamese-specific diacritics and English otherwise.
func DetectLanguage(text string) Language {
	if len(vietnameseDiacritics.FindAllStringIndex(text, minVietnameseHits)) >= minVietnameseHits {
		return LanguageVI
	}
	return LanguageEN
}

// fold lowercases s and strips combining marks so "Thiết kế" and "thiet ke"
// compare equal.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		out = strings.ToLower(s)
	}
	return strings.ReplaceAll(out, "đ", "d")
}

var stopwordsEN = toSet(
	"the", "and", "for", "are", "but", "not", "you", "your", "with", "this", "that", "have", "has",
	"had", "was", "were", "will", "would", "can", "could", "should", "what", "when", "where", "which",
	"who", "why", "how", "about", "from", "into", "than", "then", "them", "they", "their", "there",
	"these", "those", "been", "being", "also", "just", "like", "some", "such", "very", "much", "more",
	"most", "our", "out", "did", "does", "doing", "its", "all", "any", "each", "other", "tell", "me",
	"describe", "explain", "please", "give", "time", "use", "used", "using",
)

// Vietnamese stopwords are stored folded.
var stopwordsVI = toSet(
	"la", "va", "cua", "cho", "voi", "cac", "nhung", "mot", "nhu", "de", "khi", "thi", "ma", "neu",
	"trong", "tren", "duoi", "den", "tu", "da", "dang", "se", "co", "khong", "duoc", "nay", "do",
	"ban", "toi", "chung", "hay", "gi", "nao", "the", "ve", "rat", "cung", "vao", "ra", "lam",
)

func toSet(words ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		out[w] = struct{}{}
	}
	return out
}

// contentTokens returns the distinct folded, stopword-filtered tokens of s.
// Vietnamese keeps two-letter syllables; English needs three letters.
func contentTokens(s string, lang Language) map[string]struct{} {
	minLen, stop := 3, stopwordsEN
	if lang == LanguageVI {
		minLen, stop = 2, stopwordsVI
	}

	out := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len([]rune(w)) < minLen {
			continue
		}
		if _, ok := stop[w]; ok {
			continue
		}
		if _, ok := stopwordsEN[w]; ok && lang == LanguageVI {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	return float64(inter) / float64(len(a)+len(b)-inter)
}

// keywordText folds s and reduces every separator to a single space, padded
// at both ends so terms can be matched on whole-word boundaries.
func keywordText(s string) string {
	b := strings.Builder{}
	b.WriteByte(' ')
	prevSpace := true
	for _, r := range fold(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' {
			b.WriteRune(r)
			prevSpace = false
			continue
		}
		if !prevSpace {
			b.WriteByte(' ')
			prevSpace = true
		}
	}
	if !prevSpace {
		b.WriteByte(' ')
	}
	return b.String()
}

func containsTerm(text, term string) bool {
	t := strings.TrimSpace(keywordText(term))
	if t == "" {
		return false
	}
	return strings.Contains(text, " "+t+" ")
}
