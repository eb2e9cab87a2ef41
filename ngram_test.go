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
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeNgram32(t *testing.T) {
	for _, s := range []string{"a", "ab", "abc"} {
		n := encodeNgram32String(s)
		require.NotEqual(t, noNgram32, n, "expected %q to be primitively encodable", s)
		require.Equal(t, s, n.String())

		gotLen, gotRunes := decodeNgram32(n)
		require.Equal(t, len([]rune(s)), gotLen)
		require.Equal(t, []rune(s), gotRunes)
	}
}

func TestEncodeDecodeNgram64(t *testing.T) {
	for _, s := range []string{"abcd", "abcde"} {
		n := encodeNgram64String(s)
		require.NotEqual(t, noNgram64, n, "expected %q to be primitively encodable", s)
		require.Equal(t, s, n.String())

		gotLen, gotRunes := decodeNgram64(n)
		require.Equal(t, len([]rune(s)), gotLen)
		require.Equal(t, []rune(s), gotRunes)
	}
}

func TestNgram32RoundTrip(t *testing.T) {
	for length := 1; length <= 3; length++ {
		length := length
		width := charWidth32(length)
		limit := int64(1) << width

		f := func(seed int64) bool {
			r := rand.New(rand.NewSource(seed))
			runes := make([]rune, length)
			for i := range runes {
				runes[i] = rune(r.Int63n(limit))
			}
			key := encodeNgram32(runes, 0, length)
			if key == noNgram32 {
				return false
			}
			gotLen, gotRunes := decodeNgram32(key)
			if gotLen != length {
				return false
			}
			for i := range runes {
				if runes[i] != gotRunes[i] {
					return false
				}
			}
			return true
		}
		if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
			t.Errorf("length %d: %v", length, err)
		}
	}
}

func TestNgram64RoundTrip(t *testing.T) {
	for length := 4; length <= 5; length++ {
		length := length
		width := charWidth64(length)
		limit := int64(1) << width

		f := func(seed int64) bool {
			r := rand.New(rand.NewSource(seed))
			runes := make([]rune, length)
			for i := range runes {
				// avoid code point 0: real input is always letters.
				runes[i] = 1 + rune(r.Int63n(limit-1))
			}
			key := encodeNgram64(runes, 0, length)
			if key == noNgram64 {
				return false
			}
			gotLen, gotRunes := decodeNgram64(key)
			if gotLen != length {
				return false
			}
			for i := range runes {
				if runes[i] != gotRunes[i] {
					return false
				}
			}
			return true
		}
		if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
			t.Errorf("length %d: %v", length, err)
		}
	}
}

func TestEncodeOutsideBitBudgetReturnsNone(t *testing.T) {
	// Georgian U+10D0 exceeds the 10-bit trigram budget.
	runes := []rune{'a', 'b', 'ა'}
	require.Equal(t, noNgram32, encodeNgram32(runes, 0, 3))

	// Georgian also exceeds the 12-bit fivegram budget.
	runes5 := []rune{'a', 'b', 'c', 'd', 'ა'}
	require.Equal(t, noNgram64, encodeNgram64(runes5, 0, 5))
}

func TestTwoEncodingsEqualIffNgramsEqual(t *testing.T) {
	require.Equal(t, encodeNgram32String("cat"), encodeNgram32String("cat"))
	require.NotEqual(t, encodeNgram32String("cat"), encodeNgram32String("cot"))
	require.NotEqual(t, encodeNgram32String("a"), encodeNgram32String("ab"))
}
