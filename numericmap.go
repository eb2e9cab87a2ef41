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

import "math"

// EnumFloatMap is a Language -> float64 map backed by a flat array sized
// by a KeyIndexer. It is the scratch space per-language scoring
// accumulates into, and the structure the detector renormalizes into a
// public confidence map.
//
// The zero value of an entry is "absent", not "0.0" -- absent entries are
// tracked with a parallel "set" bitmap so that a language can legitimately
// hold a score of 0.0 without being mistaken for unset.
type EnumFloatMap struct {
	idx    *KeyIndexer
	values []float64
	isSet  []bool
}

// NewEnumFloatMap allocates a map over idx's key space, with every entry
// initially absent.
func NewEnumFloatMap(idx *KeyIndexer) *EnumFloatMap {
	return &EnumFloatMap{
		idx:    idx,
		values: make([]float64, idx.Len()),
		isSet:  make([]bool, idx.Len()),
	}
}

// Set assigns value to key, marking it present. key must belong to the
// map's indexer.
func (m *EnumFloatMap) Set(key Language, value float64) {
	i := m.idx.IndexOf(key)
	if i == NoIndex {
		return
	}
	m.values[i] = value
	m.isSet[i] = true
}

// Increment adds delta to key's current value (0.0 if previously absent),
// marking it present. This is the in-place accumulation operation the
// scorer uses to sum per-ngram log-frequencies.
func (m *EnumFloatMap) Increment(key Language, delta float64) {
	i := m.idx.IndexOf(key)
	if i == NoIndex {
		return
	}
	m.values[i] += delta
	m.isSet[i] = true
}

// GetOrZero returns key's value, or 0.0 if absent or unknown to the map.
func (m *EnumFloatMap) GetOrZero(key Language) float64 {
	i := m.idx.IndexOf(key)
	if i == NoIndex || !m.isSet[i] {
		return 0
	}
	return m.values[i]
}

// Get returns key's value and whether it is present.
func (m *EnumFloatMap) Get(key Language) (float64, bool) {
	i := m.idx.IndexOf(key)
	if i == NoIndex || !m.isSet[i] {
		return 0, false
	}
	return m.values[i], true
}

// CountNonZero returns the number of present entries (despite the name,
// matching the source API, this counts *set* entries, including those
// explicitly set to 0.0).
func (m *EnumFloatMap) CountNonZero() int {
	n := 0
	for _, set := range m.isSet {
		if set {
			n++
		}
	}
	return n
}

// FirstNonZero returns the first present entry in the indexer's key order, and
// whether any entry is present.
func (m *EnumFloatMap) FirstNonZero() (Language, float64, bool) {
	for i, set := range m.isSet {
		if set {
			return m.idx.KeyAt(i), m.values[i], true
		}
	}
	return 0, 0, false
}

// MaxValueOrNone returns the key with the greatest value (the indexer's key
// order breaks ties), and whether the map has any present entry.
func (m *EnumFloatMap) MaxValueOrNone() (Language, float64, bool) {
	best := -1
	bestValue := math.Inf(-1)
	for i, set := range m.isSet {
		if !set {
			continue
		}
		if best == -1 || m.values[i] > bestValue {
			best = i
			bestValue = m.values[i]
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	return m.idx.KeyAt(best), bestValue, true
}

// Transform returns a new map over the same indexer with f applied to
// every present entry, leaving absent entries absent.
func (m *EnumFloatMap) Transform(f func(Language, float64) float64) *EnumFloatMap {
	out := NewEnumFloatMap(m.idx)
	for i, set := range m.isSet {
		if !set {
			continue
		}
		key := m.idx.KeyAt(i)
		out.values[i] = f(key, m.values[i])
		out.isSet[i] = true
	}
	return out
}

// LanguageValue pairs a language with its score, as yielded by
// DescendingByValue.
type LanguageValue struct {
	Language Language
	Value    float64
}

// DescendingByValue returns every present entry, ordered by value
// descending, with the indexer's key order breaking ties. Each present entry is
// yielded exactly once.
//
// The scan is two-phase -- find the next-best remaining index, then emit
// it -- rather than a full sort, so no entry is allocated beyond the
// output slice itself.
func (m *EnumFloatMap) DescendingByValue() []LanguageValue {
	n := m.CountNonZero()
	out := make([]LanguageValue, 0, n)
	taken := make([]bool, len(m.isSet))

	for len(out) < n {
		best := -1
		bestValue := math.Inf(-1)
		for i, set := range m.isSet {
			if !set || taken[i] {
				continue
			}
			if best == -1 || m.values[i] > bestValue {
				best = i
				bestValue = m.values[i]
			}
		}
		taken[best] = true
		out = append(out, LanguageValue{Language: m.idx.KeyAt(best), Value: m.values[best]})
	}
	return out
}
