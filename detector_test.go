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
	"testing"

	"github.com/stretchr/testify/require"
)

// trigramBlobFromFrequencies builds a minimal UniBiTrigram blob where every
// ngram in freqs (any length 1..3) gets the given frequency. Real
// frequency tables are out of scope for this test suite; these are
// synthetic stand-ins sized to exercise the pipeline end to end.
func trigramBlobFromFrequencies(freqs map[string]float32) []byte {
	byLength := map[int]map[uint32]float32{1: {}, 2: {}, 3: {}}
	for ng, f := range freqs {
		byLength[len([]rune(ng))][uint32(encodeNgram32String(ng))] = f
	}
	tables := make([]*Int32FloatMap, 3)
	for length := 1; length <= 3; length++ {
		keys := make([]uint32, 0, len(byLength[length]))
		for k := range byLength[length] {
			keys = append(keys, k)
		}
		for i := 1; i < len(keys); i++ {
			for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
				keys[j-1], keys[j] = keys[j], keys[j-1]
			}
		}
		values := make([]float32, len(keys))
		for i, k := range keys {
			values[i] = byLength[length][k]
		}
		tables[length-1] = NewInt32FloatMap(keys, values)
	}
	return NewUniBiTrigramLookup(tables[0], tables[1], tables[2]).WriteBinary()
}

func namespaceWithTrigramModels(models map[Language]map[string]float32) MapResourceNamespace {
	ns := MapResourceNamespace{}
	for lang, freqs := range models {
		ns[lang.IsoCode639_1()+"/trigrams.bin"] = trigramBlobFromFrequencies(freqs)
	}
	return ns
}

func TestDetectorSingleScriptShortCircuit(t *testing.T) {
	ns := namespaceWithTrigramModels(map[Language]map[string]float32{
		Japanese: {"あ": 0.9},
		English:  {"t": 0.9, "h": 0.5, "e": 0.5},
	})
	d, err := NewBuilder(ns).WithLanguages(Japanese, English).Build()
	require.NoError(t, err)

	values, err := d.ComputeLanguageConfidenceValues("あいう")
	require.NoError(t, err)
	require.Equal(t, []LanguageValue{{Language: Japanese, Value: 1.0}}, values)
}

func TestDetectorEmptyTextYieldsNoConfidences(t *testing.T) {
	ns := namespaceWithTrigramModels(map[Language]map[string]float32{English: {"t": 0.9}})
	d, err := NewBuilder(ns).WithLanguages(English).Build()
	require.NoError(t, err)

	values, err := d.ComputeLanguageConfidenceValues("   123 !!! ")
	require.NoError(t, err)
	require.Empty(t, values)

	_, ok, err := d.DetectLanguageOf("")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDetectLanguageOfExactTieIsUnknown(t *testing.T) {
	freqs := map[string]float32{"e": 0.5, "ee": 0.5, "eee": 0.5}
	ns := namespaceWithTrigramModels(map[Language]map[string]float32{
		English: freqs,
		French:  freqs,
	})
	d, err := NewBuilder(ns).WithLanguages(English, French).Build()
	require.NoError(t, err)

	values, err := d.ComputeLanguageConfidenceValues("eee")
	require.NoError(t, err)
	require.Len(t, values, 2)
	require.Equal(t, values[0].Value, values[1].Value)

	_, ok, err := d.DetectLanguageOf("eee")
	require.NoError(t, err)
	require.False(t, ok, "an exact tie between the top two confidences must report Unknown")
}

func TestDetectorConfidenceBounds(t *testing.T) {
	ns := namespaceWithTrigramModels(map[Language]map[string]float32{
		English: {"t": 0.9, "h": 0.6, "e": 0.6, "th": 0.4, "he": 0.3, "the": 0.2},
		German:  {"d": 0.2, "e": 0.3, "r": 0.1},
	})
	d, err := NewBuilder(ns).WithLanguages(English, German).WithLowAccuracyMode().Build()
	require.NoError(t, err)

	values, err := d.ComputeLanguageConfidenceValues("the the the")
	require.NoError(t, err)
	require.NotEmpty(t, values)
	require.Equal(t, 1.0, values[0].Value)
	for _, v := range values {
		require.Greater(t, v.Value, 0.0)
		require.LessOrEqual(t, v.Value, 1.0)
	}

	for i := 1; i < len(values); i++ {
		require.LessOrEqual(t, values[i].Value, values[i-1].Value)
	}
}

func TestDetectorMonotonicFiltering(t *testing.T) {
	ns := namespaceWithTrigramModels(map[Language]map[string]float32{
		English: {"t": 0.9, "h": 0.6, "e": 0.6},
		German:  {"d": 0.2, "e": 0.3, "r": 0.1},
		French:  {"f": 0.2, "r": 0.3},
	})
	full, err := NewBuilder(ns).WithLanguages(English, German, French).WithLowAccuracyMode().Build()
	require.NoError(t, err)
	restricted, err := NewBuilder(ns).WithLanguages(English, German).WithLowAccuracyMode().Build()
	require.NoError(t, err)

	fullValues, err := full.ComputeLanguageConfidenceValues("the")
	require.NoError(t, err)
	restrictedValues, err := restricted.ComputeLanguageConfidenceValues("the")
	require.NoError(t, err)

	fullSubset := make(map[Language]bool)
	for _, v := range fullValues {
		if v.Language == English || v.Language == German {
			fullSubset[v.Language] = true
		}
	}
	for _, v := range restrictedValues {
		require.True(t, fullSubset[v.Language])
	}
}

func TestDetectorDeterministicAcrossPoolSizes(t *testing.T) {
	ns := namespaceWithTrigramModels(map[Language]map[string]float32{
		English: {"t": 0.9, "h": 0.6, "e": 0.6},
		German:  {"d": 0.2, "e": 0.3, "r": 0.1},
		French:  {"f": 0.2, "r": 0.3},
	})

	seq, err := NewBuilder(ns).WithLanguages(English, German, French).
		WithLowAccuracyMode().WithExecutor(NewPoolExecutor(1)).Build()
	require.NoError(t, err)
	par, err := NewBuilder(ns).WithLanguages(English, German, French).
		WithLowAccuracyMode().WithExecutor(NewPoolExecutor(8)).Build()
	require.NoError(t, err)

	seqValues, err := seq.ComputeLanguageConfidenceValues("the other there")
	require.NoError(t, err)
	parValues, err := par.ComputeLanguageConfidenceValues("the other there")
	require.NoError(t, err)
	require.Equal(t, seqValues, parValues)
}

func TestBuilderRejectsEmptyLanguageSet(t *testing.T) {
	_, err := NewBuilder(MapResourceNamespace{}).WithLanguages().Build()
	require.Error(t, err)
}

func TestBuilderRejectsOutOfRangeMinimumRelativeDistance(t *testing.T) {
	_, err := NewBuilder(MapResourceNamespace{}).WithMinimumRelativeDistance(1.5).Build()
	require.Error(t, err)
}

func TestComputeLanguageConfidenceRejectsUnknownLanguage(t *testing.T) {
	ns := namespaceWithTrigramModels(map[Language]map[string]float32{English: {"t": 0.9}})
	d, err := NewBuilder(ns).WithLanguages(English).Build()
	require.NoError(t, err)

	_, err = d.ComputeLanguageConfidence("the", German)
	require.Error(t, err)
}
