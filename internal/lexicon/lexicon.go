// Package lexicon holds the static word and phrase tables consumed by the
// transcript analyzers.
package lexicon

import (
	"errors"
	"fmt"
	"strings"
)

// Lexicon groups every table the analyzers read. Entries are matched
// case-insensitively; multi-word entries are allowed in every list except
// StopWords, which is compared against single tokens.
type Lexicon struct {
	Positive           []string `yaml:"positive"`
	Negative           []string `yaml:"negative"`
	Fillers            []string `yaml:"fillers"`
	Objections         []string `yaml:"objections"`
	EmphasisIndicators []string `yaml:"emphasis_indicators"`
	StopWords          []string `yaml:"stop_words"`
	ServicePhrases     []string `yaml:"service_phrases"`
}

// Default returns a fresh copy of the built-in tables.
func Default() *Lexicon {
	return &Lexicon{
		Positive: []string{
			"good", "great", "excellent", "amazing", "wonderful", "fantastic", "awesome",
			"perfect", "happy", "pleased", "satisfied", "love", "thank", "thanks",
			"appreciate", "helpful", "glad", "excited", "delighted",
		},
		Negative: []string{
			"bad", "terrible", "awful", "horrible", "poor", "worst", "hate", "unhappy",
			"angry", "upset", "frustrated", "frustrating", "disappointed", "annoyed",
			"problem", "issue", "complaint", "cancel", "refund", "confusing",
		},
		Fillers: []string{
			"um", "uh", "er", "ah", "like", "so", "you know", "i mean", "actually",
			"basically", "literally", "kind of", "sort of",
		},
		Objections: []string{
			"too expensive", "not interested", "need to think about it", "no budget",
			"not the right time", "already have", "can't afford", "send me information",
			"call me back", "talk to my manager", "not a priority", "happy with our current",
		},
		EmphasisIndicators: []string{
			"very", "really", "extremely", "absolutely", "crucial", "critical",
			"important", "must", "definitely", "essential", "key", "significant",
		},
		StopWords: []string{
			"the", "and", "for", "are", "but", "not", "you", "all", "any", "can", "had",
			"her", "was", "one", "our", "out", "his", "has", "him", "how", "its", "may",
			"who", "did", "get", "got", "let", "say", "she", "too", "use", "yes", "that",
			"this", "with", "have", "from", "they", "will", "would", "there", "their",
			"what", "about", "which", "when", "make", "like", "just", "your", "them",
			"than", "then", "been", "were", "into", "some", "could", "also", "very",
			"um", "uh", "yeah", "okay",
		},
		ServicePhrases: []string{
			"thank you", "happy to help", "let me help", "i understand",
			"great question", "appreciate",
		},
	}
}

// Merge overlays every non-empty table of o onto a copy of l.
func (l *Lexicon) Merge(o *Lexicon) *Lexicon {
	out := l.clone()
	if o == nil {
		return out
	}
	pick := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = append([]string(nil), src...)
		}
	}
	pick(&out.Positive, o.Positive)
	pick(&out.Negative, o.Negative)
	pick(&out.Fillers, o.Fillers)
	pick(&out.Objections, o.Objections)
	pick(&out.EmphasisIndicators, o.EmphasisIndicators)
	pick(&out.StopWords, o.StopWords)
	pick(&out.ServicePhrases, o.ServicePhrases)
	return out
}

func (l *Lexicon) clone() *Lexicon {
	c := func(s []string) []string { return append([]string(nil), s...) }
	return &Lexicon{
		Positive:           c(l.Positive),
		Negative:           c(l.Negative),
		Fillers:            c(l.Fillers),
		Objections:         c(l.Objections),
		EmphasisIndicators: c(l.EmphasisIndicators),
		StopWords:          c(l.StopWords),
		ServicePhrases:     c(l.ServicePhrases),
	}
}

// Validate checks that no table holds blank entries and that the sentiment
// lists are disjoint, so a word can only ever count toward its own polarity.
// It returns a joined error listing every failure found.
func (l *Lexicon) Validate() error {
	var errs []error
	tables := []struct {
		name string
		list []string
	}{
		{"positive", l.Positive},
		{"negative", l.Negative},
		{"fillers", l.Fillers},
		{"objections", l.Objections},
		{"emphasis_indicators", l.EmphasisIndicators},
		{"stop_words", l.StopWords},
		{"service_phrases", l.ServicePhrases},
	}
	for _, t := range tables {
		for i, e := range t.list {
			if strings.TrimSpace(e) == "" {
				errs = append(errs, fmt.Errorf("lexicon: %s[%d] is blank", t.name, i))
			}
		}
	}
	pos := make(map[string]struct{}, len(l.Positive))
	for _, w := range l.Positive {
		pos[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	for _, w := range l.Negative {
		if _, ok := pos[strings.ToLower(strings.TrimSpace(w))]; ok {
			errs = append(errs, fmt.Errorf("lexicon: %q is listed as both positive and negative", w))
		}
	}
	for i, w := range l.StopWords {
		if strings.ContainsAny(strings.TrimSpace(w), " \t") {
			errs = append(errs, fmt.Errorf("lexicon: stop_words[%d] %q must be a single token", i, w))
		}
	}
	return errors.Join(errs...)
}
