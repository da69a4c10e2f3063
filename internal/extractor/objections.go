package extractor

import (
	"unicode/utf8"

	"call-metrics-go/internal/types"
)

// objectionContextRunes is the evidence window on each side of a match.
const objectionContextRunes = 20

// detectObjections records the first occurrence of each objection phrase,
// matched case-insensitively anywhere in text, with its surrounding context.
func (e *Engine) detectObjections(text string) types.ObjectionStats {
	stats := types.ObjectionStats{Instances: []string{}}
	for _, o := range e.lex.objections {
		loc := o.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		ctx := contextWindow(text, loc[0], loc[1], objectionContextRunes)
		stats.Instances = append(stats.Instances, `"`+ctx+`" (contains "`+o.text+`")`)
		stats.Count++
	}
	return stats
}

// contextWindow widens text[start:end] by up to n runes on each side.
func contextWindow(text string, start, end, n int) string {
	from := start
	for i := 0; i < n && from > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:from])
		from -= size
	}
	to := end
	for i := 0; i < n && to < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[to:])
		to += size
	}
	return text[from:to]
}
