// Copyright 2016 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package langdetect

import (
	"fmt"
	"math"
	"sort"
	"time"
)

const (
	// shortTextCharThreshold is the letter-count threshold below which the
	// unique-character shortcut is consulted and scoring is restricted to
	// ngram lengths 1..3 regardless of the builder's accuracy mode, since a
	// handful of letters rarely carries a reliable quadrigram/fivegram
	// signal. Calibrated, not derived from a closed-form rule.
	shortTextCharThreshold = 120

	// zeroFrequencyEpsilon is the floor applied when an ngram is absent
	// from a language's model: it contributes ln(ε) instead of −∞, so one
	// absent ngram never annihilates an otherwise strong candidate.
	zeroFrequencyEpsilon = 1e-10
)

var zeroFrequencyPenalty = math.Log(zeroFrequencyEpsilon)

// Builder configures and constructs a Detector.
type Builder struct {
	namespace               ResourceNamespace
	languages               []Language
	minimumRelativeDistance float64
	preloadModels           bool
	lowAccuracyMode         bool
	executor                Executor
}

// NewBuilder returns a Builder defaulted to every supported language, a
// zero relative-distance margin (the top confidence need only be strictly
// greater than the runner-up), no preloading, high-accuracy mode, and a
// default CPU-sized executor. ns resolves model blobs for the languages
// eventually configured.
func NewBuilder(ns ResourceNamespace) *Builder {
	return &Builder{
		namespace:               ns,
		languages:                AllLanguages(),
		minimumRelativeDistance: 0,
		executor:                NewDefaultExecutor(),
	}
}

// WithLanguages restricts detection to the given non-empty subset.
func (b *Builder) WithLanguages(languages ...Language) *Builder {
	b.languages = languages
	return b
}

// WithMinimumRelativeDistance sets the margin required between the top
// two confidences for DetectLanguageOf to return a result instead of
// Unknown. Valid range is [0.0, 0.99]; an out-of-range value is rejected
// by Build, not by this setter, so misconfiguration surfaces at
// construction time rather than on first use.
func (b *Builder) WithMinimumRelativeDistance(delta float64) *Builder {
	b.minimumRelativeDistance = delta
	return b
}

// WithPreloadModels makes Build eagerly load every configured language's
// models instead of loading them lazily on first use.
func (b *Builder) WithPreloadModels() *Builder {
	b.preloadModels = true
	return b
}

// WithLowAccuracyMode restricts scoring to ngram lengths 1..3 for every
// detection, trading accuracy for lower memory/CPU cost.
func (b *Builder) WithLowAccuracyMode() *Builder {
	b.lowAccuracyMode = true
	return b
}

// WithExecutor supplies a caller-owned Executor instead of the default
// CPU-sized pool -- tests use this to force single-threaded execution and
// check that results don't depend on goroutine scheduling.
func (b *Builder) WithExecutor(executor Executor) *Builder {
	b.executor = executor
	return b
}

// Build validates the configuration, rejecting it at construction time
// rather than failing lazily on first use, and constructs a Detector.
func (b *Builder) Build() (*Detector, error) {
	if len(b.languages) == 0 {
		return nil, fmt.Errorf("langdetect: Builder requires a non-empty language set")
	}
	if b.minimumRelativeDistance < 0 || b.minimumRelativeDistance > 0.99 {
		return nil, fmt.Errorf("langdetect: minimum relative distance %v out of range [0.0, 0.99]", b.minimumRelativeDistance)
	}

	idx := NewKeyIndexer(b.languages)
	cache := NewModelCache(b.namespace)
	executor := b.executor
	if executor == nil {
		executor = NewDefaultExecutor()
	}

	d := &Detector{
		languages:               b.languages,
		idx:                     idx,
		cache:                   cache,
		minimumRelativeDistance: b.minimumRelativeDistance,
		lowAccuracyMode:         b.lowAccuracyMode,
		executor:                executor,
	}

	if b.preloadModels {
		if err := cache.Preload(b.languages); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Detector is the public, immutable detector produced by Builder. A
// Detector is safe for concurrent use by multiple goroutines: all mutable
// state lives in its ModelCache, which is itself safe for concurrent use.
type Detector struct {
	languages               []Language
	idx                     *KeyIndexer
	cache                   *ModelCache
	minimumRelativeDistance float64
	lowAccuracyMode         bool
	executor                Executor
}

// DetectLanguageOf reports the single most likely language for text. ok is
// false when the result is Unknown: either no letters were found, no
// script-compatible candidate remained, the top two confidences tied
// exactly, or the top confidence didn't clear the configured margin over
// the runner-up.
func (d *Detector) DetectLanguageOf(text string) (lang Language, ok bool, err error) {
	metricDetectionsTotal.Inc()
	start := time.Now()
	defer func() { metricDetectionDuration.Observe(time.Since(start).Seconds()) }()

	values, err := d.computeLanguageConfidenceValues(text)
	if err != nil {
		return 0, false, err
	}
	if len(values) == 0 {
		metricDetectionsUnknownTotal.Inc()
		return 0, false, nil
	}
	if len(values) == 1 {
		return values[0].Language, true, nil
	}

	if values[0].Value == values[1].Value {
		metricDetectionsUnknownTotal.Inc()
		return 0, false, nil
	}
	margin := values[0].Value - values[1].Value
	if margin < d.minimumRelativeDistance {
		metricDetectionsUnknownTotal.Inc()
		return 0, false, nil
	}
	return values[0].Language, true, nil
}

// ComputeLanguageConfidenceValues returns an ordered (confidence
// descending, declaration order tiebreak) list covering every candidate
// language with a non-zero signal. The list never contains Unknown.
func (d *Detector) ComputeLanguageConfidenceValues(text string) ([]LanguageValue, error) {
	metricDetectionsTotal.Inc()
	start := time.Now()
	defer func() { metricDetectionDuration.Observe(time.Since(start).Seconds()) }()
	return d.computeLanguageConfidenceValues(text)
}

// ComputeLanguageConfidence returns the confidence for one specific
// language, or an invalid-argument error if lang isn't part of this
// detector's configured language set.
func (d *Detector) ComputeLanguageConfidence(text string, lang Language) (float64, error) {
	if !d.idx.Contains(lang) {
		return 0, fmt.Errorf("langdetect: %s is not a configured language for this detector", lang)
	}
	values, err := d.computeLanguageConfidenceValues(text)
	if err != nil {
		return 0, err
	}
	for _, v := range values {
		if v.Language == lang {
			return v.Value, nil
		}
	}
	return 0, nil
}

// computeLanguageConfidenceValues is the unexported pipeline shared by all
// three public operations: preprocess, prune to script-compatible
// candidates, try the unique-character shortcut, score the remainder by
// ngram frequency, then normalize the scores into confidences.
func (d *Detector) computeLanguageConfidenceValues(text string) ([]LanguageValue, error) {
	cleaned := cleanText(text)
	if cleaned == "" {
		return nil, nil
	}

	candidates := CandidateLanguages(cleaned, d.languages)
	metricCandidateLanguages.Observe(float64(len(candidates)))
	if len(candidates) == 0 {
		return nil, nil
	}
	if len(candidates) == 1 {
		return []LanguageValue{{Language: candidates[0], Value: 1.0}}, nil
	}

	runeCount := countLetters(cleaned)

	if runeCount < shortTextCharThreshold {
		if lang, ok := dominantUniqueCharacterLanguage(text, candidates); ok {
			return []LanguageValue{{Language: lang, Value: 1.0}}, nil
		}
	}

	lengths := []int{1, 2, 3}
	if !d.lowAccuracyMode && runeCount >= shortTextCharThreshold {
		lengths = []int{1, 2, 3, 4, 5}
	}

	ngramsByLength := make(map[int][]string, len(lengths))
	for _, length := range lengths {
		ngramsByLength[length] = ngramsOfLength(cleaned, length)
	}

	// The score map breaks ties in its indexer's key order; sorting the
	// candidates makes that the languages' declaration order.
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
	scoreIdx := NewKeyIndexer(candidates)
	scores := NewEnumFloatMap(scoreIdx)
	if err := d.scoreCandidates(candidates, lengths, ngramsByLength, scores); err != nil {
		return nil, err
	}

	_, best, ok := scores.MaxValueOrNone()
	if !ok {
		return nil, nil
	}
	confidences := scores.Transform(func(_ Language, sum float64) float64 {
		return math.Exp(sum - best)
	})

	return confidences.DescendingByValue(), nil
}

// scoreCandidates runs the naive-Bayes-style log-probability summation for
// every candidate language, fanned out across d.executor, accumulating
// directly into scores via Increment. A language whose ngrams never hit a
// non-zero model frequency is left entirely absent from scores: the
// zero-frequency penalty for such a language is never added on its own,
// since Increment is only reached once a real hit has made the entry
// present.
func (d *Detector) scoreCandidates(candidates []Language, lengths []int, ngramsByLength map[int][]string, scores *EnumFloatMap) error {
	_, err := d.executor.Score(len(candidates), func(i int) (float64, error) {
		lang := candidates[i]

		uniBiTri, err := d.cache.UniBiTrigram(lang)
		if err != nil {
			return 0, err
		}
		var quadFive *QuadriFivegramLookup
		for _, length := range lengths {
			if length >= 4 {
				quadFive, err = d.cache.QuadriFivegram(lang)
				if err != nil {
					return 0, err
				}
				break
			}
		}

		penalty := 0.0
		for _, length := range lengths {
			for _, ng := range ngramsByLength[length] {
				var freq float32
				if length <= 3 {
					key := encodeNgram32String(ng)
					freq = uniBiTri.FrequencyOf(key, length)
				} else {
					freq = quadFive.FrequencyOf(ng, length)
				}
				if freq > 0 {
					scores.Increment(lang, math.Log(float64(freq)))
				} else {
					penalty += zeroFrequencyPenalty
				}
			}
		}
		if _, hit := scores.Get(lang); hit {
			scores.Increment(lang, penalty)
		}
		return 0, nil
	})
	return err
}

// countLetters counts the letters in cleaned text (cleanText already
// reduced it to letters and single spaces, so this is len(cleaned) minus
// its spaces, counted in runes to handle multi-byte scripts correctly).
func countLetters(cleaned string) int {
	n := 0
	for _, r := range cleaned {
		if r != ' ' {
			n++
		}
	}
	return n
}

// dominantUniqueCharacterLanguage reports whether one candidate
// "dominates" by unique-character count: it must have the strictly
// highest count among the candidates, and that count must be positive.
func dominantUniqueCharacterLanguage(text string, candidates []Language) (Language, bool) {
	counts := UniqueCharacterCounts(text)
	if len(counts) == 0 {
		return 0, false
	}

	candidateSet := make(map[Language]bool, len(candidates))
	for _, l := range candidates {
		candidateSet[l] = true
	}

	best := Language(-1)
	bestCount := 0
	tied := false
	for lang, count := range counts {
		if !candidateSet[lang] {
			continue
		}
		switch {
		case count > bestCount:
			best, bestCount, tied = lang, count, false
		case count == bestCount && bestCount > 0:
			tied = true
		}
	}
	if bestCount == 0 || tied {
		return 0, false
	}
	return best, true
}
