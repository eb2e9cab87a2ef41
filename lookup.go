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
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// UniBiTrigramLookup is the per-language unigram/bigram/trigram model:
// three key-sorted Int32FloatMap tables, one per ngram length in {1,2,3},
// all keyed by the ngram32 primitive encoding. Binary search only -- a
// linear scan here would defeat the point of sorting the arrays at build
// time.
type UniBiTrigramLookup struct {
	tables [3]*Int32FloatMap // index 0 => length 1, 1 => length 2, 2 => length 3
}

// NewUniBiTrigramLookup builds a model from its three length tables.
func NewUniBiTrigramLookup(unigrams, bigrams, trigrams *Int32FloatMap) *UniBiTrigramLookup {
	return &UniBiTrigramLookup{tables: [3]*Int32FloatMap{unigrams, bigrams, trigrams}}
}

// emptyUniBiTrigramLookup is shared by every (language, length-class) pair
// with no model data on disk -- this is not an error.
var emptyUniBiTrigramLookup = NewUniBiTrigramLookup(
	NewInt32FloatMap(nil, nil), NewInt32FloatMap(nil, nil), NewInt32FloatMap(nil, nil),
)

// FrequencyOf returns the frequency of the ngram32-encoded key of the
// given length (1..3), or 0 if absent or key is the "not encodable"
// sentinel.
func (l *UniBiTrigramLookup) FrequencyOf(key ngram32, length int) float32 {
	if key == noNgram32 || length < 1 || length > 3 {
		return 0
	}
	return float32(l.tables[length-1].Get(uint32(key)))
}

// WriteBinary serializes the lookup as three back-to-back Int32FloatMap
// sections (length 1, 2, 3 in order).
func (l *UniBiTrigramLookup) WriteBinary() []byte {
	var out []byte
	for _, t := range l.tables {
		out = append(out, t.WriteBinary()...)
	}
	return out
}

// UniBiTrigramLookupFromBinary deserializes a blob produced by
// WriteBinary, consuming it entirely.
func UniBiTrigramLookupFromBinary(blob []byte) (*UniBiTrigramLookup, error) {
	l := &UniBiTrigramLookup{}
	off := 0
	for i := 0; i < 3; i++ {
		t, n, err := Int32FloatMapFromBinary(blob[off:])
		if err != nil {
			return nil, fmt.Errorf("langdetect: UniBiTrigramLookup length-%d section: %w", i+1, err)
		}
		l.tables[i] = t
		off += n
	}
	if off != len(blob) {
		return nil, fmt.Errorf("langdetect: UniBiTrigramLookup blob has %d trailing bytes", len(blob)-off)
	}
	return l, nil
}

// Int64FloatMap is the uint64-keyed analog of Int32FloatMap, used by the
// primitive-keyed quadrigram/fivegram tables, whose keys (ngram64) don't
// fit in 32 bits.
type Int64FloatMap struct {
	keys   []uint64
	values []float32
}

// NewInt64FloatMap builds a map from parallel, strictly-ascending,
// strictly-positive-valued key/value slices (same invariants as
// NewInt32FloatMap).
func NewInt64FloatMap(keys []uint64, values []float32) *Int64FloatMap {
	if len(keys) != len(values) {
		panic("langdetect: Int64FloatMap keys/values length mismatch")
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] <= keys[i-1] {
			panic("langdetect: Int64FloatMap keys must be strictly ascending")
		}
	}
	for _, v := range values {
		if v <= 0 {
			panic("langdetect: Int64FloatMap values must be strictly positive")
		}
	}
	return &Int64FloatMap{keys: keys, values: values}
}

func (m *Int64FloatMap) Get(key uint64) float32 {
	i, ok := slices.BinarySearch(m.keys, key)
	if !ok {
		return 0
	}
	return m.values[i]
}

func (m *Int64FloatMap) Len() int { return len(m.keys) }

func (m *Int64FloatMap) WriteBinary() []byte {
	n := len(m.keys)
	buf := make([]byte, 4+12*n)
	binary.BigEndian.PutUint32(buf[0:4], uint32(n))
	off := 4
	for _, k := range m.keys {
		binary.BigEndian.PutUint64(buf[off:off+8], k)
		off += 8
	}
	for _, v := range m.values {
		binary.BigEndian.PutUint32(buf[off:off+4], math.Float32bits(v))
		off += 4
	}
	return buf
}

func Int64FloatMapFromBinary(blob []byte) (*Int64FloatMap, int, error) {
	if len(blob) < 4 {
		return nil, 0, fmt.Errorf("langdetect: truncated Int64FloatMap blob: %d bytes", len(blob))
	}
	n := int(binary.BigEndian.Uint32(blob[0:4]))
	want := 4 + 12*n
	if len(blob) < want {
		return nil, 0, fmt.Errorf("langdetect: truncated Int64FloatMap blob: have %d bytes, want %d", len(blob), want)
	}

	keys := make([]uint64, n)
	off := 4
	for i := 0; i < n; i++ {
		keys[i] = binary.BigEndian.Uint64(blob[off : off+8])
		off += 8
		if i > 0 && keys[i] <= keys[i-1] {
			return nil, 0, fmt.Errorf("langdetect: malformed Int64FloatMap: keys not strictly ascending at index %d", i)
		}
	}

	values := make([]float32, n)
	for i := 0; i < n; i++ {
		bits := binary.BigEndian.Uint32(blob[off : off+4])
		v := math.Float32frombits(bits)
		if v <= 0 {
			return nil, 0, fmt.Errorf("langdetect: malformed Int64FloatMap: non-positive value at index %d", i)
		}
		values[i] = v
		off += 4
	}
	return &Int64FloatMap{keys: keys, values: values}, want, nil
}

// StringFloatMap is a sorted string -> float32 table, binary-searched.
// It backs the fallback side of the quadrigram/fivegram model, for ngrams
// whose code points exceed ngram64's bit budget.
type StringFloatMap struct {
	keys   []string
	values []float32
}

func NewStringFloatMap(keys []string, values []float32) *StringFloatMap {
	if len(keys) != len(values) {
		panic("langdetect: StringFloatMap keys/values length mismatch")
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] <= keys[i-1] {
			panic("langdetect: StringFloatMap keys must be strictly ascending")
		}
	}
	for _, v := range values {
		if v <= 0 {
			panic("langdetect: StringFloatMap values must be strictly positive")
		}
	}
	return &StringFloatMap{keys: keys, values: values}
}

func (m *StringFloatMap) Get(key string) float32 {
	i, ok := slices.BinarySearch(m.keys, key)
	if !ok {
		return 0
	}
	return m.values[i]
}

func (m *StringFloatMap) Len() int { return len(m.keys) }

// WriteBinary serializes the map as a u32 count, a UTF-8 byte blob with
// an offset table (count+1 u32 byte offsets into the blob, so each key's
// bytes are blob[offsets[i]:offsets[i+1]]), then count f32 values.
func (m *StringFloatMap) WriteBinary() []byte {
	n := len(m.keys)
	var textBlob []byte
	offsets := make([]uint32, n+1)
	for i, k := range m.keys {
		offsets[i] = uint32(len(textBlob))
		textBlob = append(textBlob, k...)
	}
	offsets[n] = uint32(len(textBlob))

	size := 4 + 4 + 4*(n+1) + len(textBlob) + 4*n
	buf := make([]byte, 0, size)

	var tmp [4]byte
	putU32 := func(v uint32) {
		binary.BigEndian.PutUint32(tmp[:], v)
		buf = append(buf, tmp[:]...)
	}

	putU32(uint32(n))
	putU32(uint32(len(textBlob)))
	for _, o := range offsets {
		putU32(o)
	}
	buf = append(buf, textBlob...)
	for _, v := range m.values {
		putU32(math.Float32bits(v))
	}
	return buf
}

func StringFloatMapFromBinary(blob []byte) (*StringFloatMap, int, error) {
	if len(blob) < 8 {
		return nil, 0, fmt.Errorf("langdetect: truncated StringFloatMap blob: %d bytes", len(blob))
	}
	n := int(binary.BigEndian.Uint32(blob[0:4]))
	textLen := int(binary.BigEndian.Uint32(blob[4:8]))

	off := 8
	offsetsEnd := off + 4*(n+1)
	if len(blob) < offsetsEnd {
		return nil, 0, fmt.Errorf("langdetect: truncated StringFloatMap offset table")
	}
	offsets := make([]uint32, n+1)
	for i := 0; i <= n; i++ {
		offsets[i] = binary.BigEndian.Uint32(blob[off : off+4])
		off += 4
	}
	if int(offsets[n]) != textLen {
		return nil, 0, fmt.Errorf("langdetect: StringFloatMap offset table doesn't match text length")
	}

	textEnd := off + textLen
	if len(blob) < textEnd {
		return nil, 0, fmt.Errorf("langdetect: truncated StringFloatMap text blob")
	}
	text := blob[off:textEnd]

	keys := make([]string, n)
	for i := 0; i < n; i++ {
		if offsets[i] > offsets[i+1] || int(offsets[i+1]) > len(text) {
			return nil, 0, fmt.Errorf("langdetect: malformed StringFloatMap offsets at index %d", i)
		}
		keys[i] = string(text[offsets[i]:offsets[i+1]])
		if i > 0 && keys[i] <= keys[i-1] {
			return nil, 0, fmt.Errorf("langdetect: malformed StringFloatMap: keys not strictly ascending at index %d", i)
		}
	}

	valuesStart := textEnd
	valuesEnd := valuesStart + 4*n
	if len(blob) < valuesEnd {
		return nil, 0, fmt.Errorf("langdetect: truncated StringFloatMap values")
	}
	values := make([]float32, n)
	off = valuesStart
	for i := 0; i < n; i++ {
		bits := binary.BigEndian.Uint32(blob[off : off+4])
		v := math.Float32frombits(bits)
		if v <= 0 {
			return nil, 0, fmt.Errorf("langdetect: malformed StringFloatMap: non-positive value at index %d", i)
		}
		values[i] = v
		off += 4
	}

	return &StringFloatMap{keys: keys, values: values}, valuesEnd, nil
}

// quadriFivegramLengthTable holds the primitive + string tables for one
// ngram length (4 or 5) within a QuadriFivegramLookup.
type quadriFivegramLengthTable struct {
	primitive *Int64FloatMap
	fallback  *StringFloatMap
}

// QuadriFivegramLookup is the per-language model for ngram lengths 4 and
// 5. Each length has a primitive-keyed table (fast path, ngram64) and a
// string-keyed fallback table for ngrams whose code points exceed
// ngram64's bit budget (e.g. supplementary-plane letters). The two tables
// are disjoint per length: a given ngram appears in at most one of them.
type QuadriFivegramLookup struct {
	tables [2]quadriFivegramLengthTable // index 0 => length 4, 1 => length 5
}

func NewQuadriFivegramLookup(quad *Int64FloatMap, quadFallback *StringFloatMap, five *Int64FloatMap, fiveFallback *StringFloatMap) *QuadriFivegramLookup {
	l := &QuadriFivegramLookup{}
	l.tables[0] = quadriFivegramLengthTable{primitive: quad, fallback: quadFallback}
	l.tables[1] = quadriFivegramLengthTable{primitive: five, fallback: fiveFallback}
	return l
}

// emptyQuadriFivegramLookup is shared by languages with no 4/5-gram model
// on disk, e.g. Chinese has none.
var emptyQuadriFivegramLookup = &QuadriFivegramLookup{
	tables: [2]quadriFivegramLengthTable{
		{primitive: NewInt64FloatMap(nil, nil), fallback: NewStringFloatMap(nil, nil)},
		{primitive: NewInt64FloatMap(nil, nil), fallback: NewStringFloatMap(nil, nil)},
	},
}

// FrequencyOfPrimitive looks up a ngram64-encoded key directly (fast
// path). length must be 4 or 5.
func (l *QuadriFivegramLookup) FrequencyOfPrimitive(key ngram64, length int) float32 {
	if key == noNgram64 || length < 4 || length > 5 {
		return 0
	}
	return l.tables[length-4].primitive.Get(uint64(key))
}

// FrequencyOfString looks up an ngram by its string form, for ngrams that
// didn't fit ngram64's bit budget. length must be 4 or 5.
func (l *QuadriFivegramLookup) FrequencyOfString(ngramText string, length int) float32 {
	if length < 4 || length > 5 {
		return 0
	}
	return l.tables[length-4].fallback.Get(ngramText)
}

// FrequencyOf is the detector-facing entry point: it tries the primitive
// encoding first, and falls back to the string table on a miss or when
// the ngram isn't primitively encodable.
func (l *QuadriFivegramLookup) FrequencyOf(ngramText string, length int) float32 {
	runes := []rune(ngramText)
	key := encodeNgram64(runes, 0, length)
	if key != noNgram64 {
		if f := l.FrequencyOfPrimitive(key, length); f != 0 {
			return f
		}
	}
	return l.FrequencyOfString(ngramText, length)
}

// WriteBinary serializes the lookup as, for length 4 then length 5, the
// primitive section followed by the string-keyed section.
func (l *QuadriFivegramLookup) WriteBinary() []byte {
	var out []byte
	for _, t := range l.tables {
		out = append(out, t.primitive.WriteBinary()...)
		out = append(out, t.fallback.WriteBinary()...)
	}
	return out
}

// QuadriFivegramLookupFromBinary deserializes a blob produced by
// WriteBinary.
func QuadriFivegramLookupFromBinary(blob []byte) (*QuadriFivegramLookup, error) {
	l := &QuadriFivegramLookup{}
	off := 0
	for i := 0; i < 2; i++ {
		prim, n, err := Int64FloatMapFromBinary(blob[off:])
		if err != nil {
			return nil, fmt.Errorf("langdetect: QuadriFivegramLookup length-%d primitive section: %w", i+4, err)
		}
		off += n

		fallback, n, err := StringFloatMapFromBinary(blob[off:])
		if err != nil {
			return nil, fmt.Errorf("langdetect: QuadriFivegramLookup length-%d string section: %w", i+4, err)
		}
		off += n

		l.tables[i] = quadriFivegramLengthTable{primitive: prim, fallback: fallback}
	}
	if off != len(blob) {
		return nil, fmt.Errorf("langdetect: QuadriFivegramLookup blob has %d trailing bytes", len(blob)-off)
	}
	return l, nil
}
