package extractor

import (
	"slices"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxKeywords      = 10
	minKeywordLength = 3
)

// ExtractKeywords returns up to ten content words of text, most frequent
// first, ties in order of first appearance. The returned slice is a copy.
func (e *Engine) ExtractKeywords(text string) []string {
	kw := cached(e, e.keywords, tableKeywords, text, func() []string {
		return e.rankKeywords(text)
	})
	return slices.Clone(kw)
}

func (e *Engine) rankKeywords(text string) []string {
	counts := map[string]int{}
	var order []string
	for _, tok := range tokenize(text) {
		if utf8.RuneCountInString(tok) < minKeywordLength {
			continue
		}
		if _, stop := e.lex.stopWords[tok]; stop {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	if order == nil {
		order = []string{}
	}
	return order
}

// tokenize lowercases text and splits it into letter/digit runs, keeping
// inner apostrophes ("don't").
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.Trim(f, "'"); f != "" {
			out = append(out, f)
		}
	}
	return out
}
