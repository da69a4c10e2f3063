package extractor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"call-metrics-go/internal/types"
)

const (
	minEmphasisWords       = 3
	emphasisDurationFactor = 1.5
)

// detectEmphasis flags words that are drawn out, shouted, or introduced by
// an indicator word such as "very". Each word is listed once, in the form it
// first appeared.
func (e *Engine) detectEmphasis(words []types.WordTimestamp) *types.EmphasisStats {
	stats := &types.EmphasisStats{Words: []string{}}
	if len(words) < minEmphasisWords {
		return stats
	}
	var sum float64
	for _, w := range words {
		sum += w.Duration()
	}
	avg := sum / float64(len(words))

	seen := map[string]struct{}{}
	for i, w := range words {
		clean := trimPunct(w.Word)
		if clean == "" {
			continue
		}
		emphasized := (avg > 0 && w.Duration() > emphasisDurationFactor*avg) || isAllCaps(clean)
		if !emphasized && i > 0 {
			_, emphasized = e.lex.indicators[strings.ToLower(trimPunct(words[i-1].Word))]
		}
		if !emphasized {
			continue
		}
		key := strings.ToLower(clean)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		stats.Words = append(stats.Words, clean)
	}
	stats.Count = len(stats.Words)
	return stats
}

func trimPunct(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
}

// isAllCaps reports whether s has more than one rune, at least one letter and
// no lowercase letters.
func isAllCaps(s string) bool {
	if utf8.RuneCountInString(s) <= 1 {
		return false
	}
	letters := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters = true
		}
	}
	return letters
}
