// Package extractor is the call-transcript metrics engine: a deterministic,
// lexical feature-extraction pipeline that turns a transcript into a
// [types.MetricsBundle] of sales-coaching metrics.
//
// The evaluation order inside [Engine.CalculateCallMetrics] is fixed:
//
//  1. normalize segments
//  2. talk time and speaking speed
//  3. filler words, then objections
//  4. sentiment, then customer engagement
//  5. interruptions, pauses and emphasis (only with word timestamps)
//  6. assemble the bundle, then confidence
//
// An Engine owns its memo tables; they only grow until [Engine.ClearCaches]
// is called. Engine is safe for concurrent use.
package extractor

import (
	"io"
	"math"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"call-metrics-go/internal/lexicon"
	"call-metrics-go/internal/types"
)

// Memo table names, as reported to an Observer.
const (
	tableSentiment = "sentiment"
	tableKeywords  = "keywords"
	tableScore     = "call_score"
	tableBundle    = "bundle"
)

// bundleKeyPrefixRunes is how much of the text is kept verbatim in a bundle key.
const bundleKeyPrefixRunes = 100

// Observer receives engine events. Implementations must be safe for
// concurrent use.
type Observer interface {
	CacheLookup(table string, hit bool)
	BundleComputed(elapsed time.Duration)
	CachesCleared()
}

type nopObserver struct{}

func (nopObserver) CacheLookup(string, bool)     {}
func (nopObserver) BundleComputed(time.Duration) {}
func (nopObserver) CachesCleared()               {}

// Engine computes call metrics.
type Engine struct {
	lex    *compiledLexicon
	jitter JitterSource
	log    *logrus.Entry
	obs    Observer

	speakerCount int

	sentiments *memo[types.Sentiment]
	keywords   *memo[[]string]
	scores     *memo[int]
	bundles    *memo[*types.MetricsBundle]
}

// Option configures an Engine.
type Option func(*Engine)

// WithLexicon replaces the built-in word tables. The lexicon should already
// be validated (see lexicon.LoadFile).
func WithLexicon(l *lexicon.Lexicon) Option {
	return func(e *Engine) {
		if l != nil {
			e.lex = compileLexicon(l)
		}
	}
}

// WithJitter replaces the call score jitter source.
func WithJitter(j JitterSource) Option {
	return func(e *Engine) {
		if j != nil {
			e.jitter = j
		}
	}
}

// WithLogger sets the entry the engine logs to. The default discards output.
func WithLogger(l *logrus.Entry) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithObserver sets the receiver of cache and timing events.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.obs = o
		}
	}
}

// WithSpeakerCount sets the speaker count used to assign roles to segments
// that carry no speaker. Values below 1 keep the default of 2.
func WithSpeakerCount(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.speakerCount = n
		}
	}
}

// New returns an Engine using the default lexicon and HashJitter unless
// overridden by opts.
func New(opts ...Option) *Engine {
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	e := &Engine{
		lex:          compileLexicon(lexicon.Default()),
		jitter:       HashJitter{},
		log:          logrus.NewEntry(silent),
		obs:          nopObserver{},
		speakerCount: defaultSpeakerCount,
		sentiments:   newMemo[types.Sentiment](),
		keywords:     newMemo[[]string](),
		scores:       newMemo[int](),
		bundles:      newMemo[*types.MetricsBundle](),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.WithField("component", "extractor")
	return e
}

// CalculateCallMetrics computes the full metrics bundle for t. Transcripts
// with identical content and duration share one memoized bundle, which the
// caller must not modify. A structurally invalid transcript yields an error
// matching ErrInvalidInput and no bundle.
func (e *Engine) CalculateCallMetrics(t *types.Transcript) (*types.MetricsBundle, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	key := bundleKey(t)
	if b, ok := e.bundles.get(key); ok {
		e.obs.CacheLookup(tableBundle, true)
		return b, nil
	}
	e.obs.CacheLookup(tableBundle, false)

	start := time.Now()
	text := *t.Text

	segments := splitBySpeaker(text, t.Segments, e.speakerCount)
	talk := computeTalkTime(segments, text, t.DurationSeconds)
	fillers := e.detectFillers(text, talk.effectiveDuration)
	objections := e.detectObjections(text)
	sentiment := e.AnalyzeSentiment(text)
	engagement := customerEngagement(talk.ratio.Customer, sentiment, objections.Count)

	b := &types.MetricsBundle{
		Sentiment:          sentiment,
		Keywords:           e.ExtractKeywords(text),
		CallScore:          e.GenerateCallScore(text, sentiment),
		TalkRatio:          talk.ratio,
		SpeakingSpeed:      talk.speed,
		FillerWords:        fillers,
		Objections:         objections,
		CustomerEngagement: engagement,
	}
	if len(t.Words) > 0 {
		b.Interruptions = detectInterruptions(t.Words, segments)
		b.Pauses = analyzePauses(t.Words)
		b.Emphasis = e.detectEmphasis(t.Words)
	}
	b.Confidence = confidence(t)

	b = e.bundles.put(key, b)
	elapsed := time.Since(start)
	e.obs.BundleComputed(elapsed)
	e.log.WithFields(logrus.Fields{
		"segments":   len(segments),
		"words":      len(t.Words),
		"sentiment":  b.Sentiment,
		"call_score": b.CallScore,
		"elapsed_us": elapsed.Microseconds(),
	}).Debug("computed call metrics")
	return b, nil
}

// ClearCaches drops every memoized value. Subsequent calls recompute.
func (e *Engine) ClearCaches() {
	sizes := e.CacheSizes()
	e.sentiments.reset()
	e.keywords.reset()
	e.scores.reset()
	e.bundles.reset()
	e.obs.CachesCleared()
	e.log.WithField("dropped", sizes).Info("caches cleared")
}

// CacheSizes reports the number of entries in each memo table.
func (e *Engine) CacheSizes() map[string]int {
	return map[string]int{
		tableSentiment: e.sentiments.len(),
		tableKeywords:  e.keywords.len(),
		tableScore:     e.scores.len(),
		tableBundle:    e.bundles.len(),
	}
}

// bundleKey derives the bundle memo key: a text prefix and the duration,
// followed by a digest of the full transcript so transcripts that only share
// a prefix do not collide.
func bundleKey(t *types.Transcript) string {
	text := *t.Text
	prefix := text
	if utf8.RuneCountInString(text) > bundleKeyPrefixRunes {
		prefix = string([]rune(text)[:bundleKeyPrefixRunes])
	}
	return prefix + "|" + strconv.FormatFloat(t.DurationSeconds, 'g', -1, 64) +
		"|" + strconv.FormatUint(digest(t), 16)
}

func digest(t *types.Transcript) uint64 {
	h := xxhash.New()
	var buf []byte
	f := func(v float64) {
		buf = strconv.AppendUint(buf[:0], math.Float64bits(v), 16)
		buf = append(buf, 0)
		_, _ = h.Write(buf)
	}
	s := func(v string) {
		_, _ = h.WriteString(v)
		_, _ = h.Write([]byte{0})
	}
	s(*t.Text)
	for _, seg := range t.Segments {
		f(float64(seg.ID))
		f(seg.StartSeconds)
		f(seg.EndSeconds)
		f(seg.Confidence)
		s(seg.Text)
		s(string(seg.Speaker))
		s(strconv.FormatBool(seg.Estimated))
	}
	s("\x01")
	for _, w := range t.Words {
		f(w.StartSeconds)
		f(w.EndSeconds)
		s(w.Word)
		s(string(w.Speaker))
	}
	return h.Sum64()
}
