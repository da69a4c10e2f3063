package extractor

import (
	"regexp"
	"sort"
	"strings"

	"call-metrics-go/internal/lexicon"
)

// term pairs a lexicon entry with the pattern that finds it.
type term struct {
	text string
	re   *regexp.Regexp
}

// compiledLexicon is the match-ready form of a lexicon.Lexicon.
type compiledLexicon struct {
	positive   *regexp.Regexp
	negative   *regexp.Regexp
	fillers    []term
	objections []term
	service    []string
	indicators map[string]struct{}
	stopWords  map[string]struct{}
}

func compileLexicon(l *lexicon.Lexicon) *compiledLexicon {
	c := &compiledLexicon{
		positive:   wordAlternation(l.Positive),
		negative:   wordAlternation(l.Negative),
		indicators: lowerSet(l.EmphasisIndicators),
		stopWords:  lowerSet(l.StopWords),
	}
	for _, f := range l.Fillers {
		f = normalizeEntry(f)
		c.fillers = append(c.fillers, term{text: f, re: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(f) + `\b`)})
	}
	for _, o := range l.Objections {
		o = normalizeEntry(o)
		c.objections = append(c.objections, term{text: o, re: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(o))})
	}
	for _, p := range l.ServicePhrases {
		c.service = append(c.service, normalizeEntry(p))
	}
	return c
}

// wordAlternation builds one case-insensitive whole-word pattern over words.
// Longer entries are tried first so a prefix never shadows a longer match.
func wordAlternation(words []string) *regexp.Regexp {
	if len(words) == 0 {
		return nil
	}
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		quoted = append(quoted, regexp.QuoteMeta(normalizeEntry(w)))
	}
	sort.SliceStable(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

func countMatches(re *regexp.Regexp, text string) int {
	if re == nil || text == "" {
		return 0
	}
	return len(re.FindAllStringIndex(text, -1))
}

func lowerSet(words []string) map[string]struct{} {
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		out[normalizeEntry(w)] = struct{}{}
	}
	return out
}

func normalizeEntry(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
