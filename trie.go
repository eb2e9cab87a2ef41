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

// Int32FloatMap is the immutable, packed uint32 -> float32 map that every
// per-language, per-length array in lookup.go is built from: a
// length-prefixed, key-sorted pair of arrays, loaded with one read and
// queried with binary search -- sorted parallel arrays read straight off
// the wire, so no tree or hash table needs rebuilding after load.
//
// 0 is reserved to mean "absent": Get never returns a stored value of
// exactly 0, and the encoder rejects attempts to store one.
type Int32FloatMap struct {
	keys   []uint32
	values []float32
}

// NewInt32FloatMap builds a map from parallel key/value slices. keys must
// already be sorted ascending and free of duplicates, and every value must
// be strictly positive; violating either is a programmer error and
// panics, matching the rest of the package's builder-misuse-only panics.
// This constructor is what an offline model builder would call before
// serializing with WriteBinary.
func NewInt32FloatMap(keys []uint32, values []float32) *Int32FloatMap {
	if len(keys) != len(values) {
		panic("langdetect: Int32FloatMap keys/values length mismatch")
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] <= keys[i-1] {
			panic("langdetect: Int32FloatMap keys must be strictly ascending")
		}
	}
	for _, v := range values {
		if v <= 0 {
			panic("langdetect: Int32FloatMap values must be strictly positive")
		}
	}
	return &Int32FloatMap{keys: keys, values: values}
}

// Get returns the frequency stored for key, or 0 if key is absent.
func (m *Int32FloatMap) Get(key uint32) float32 {
	i, ok := slices.BinarySearch(m.keys, key)
	if !ok {
		return 0
	}
	return m.values[i]
}

// Len returns the number of stored entries.
func (m *Int32FloatMap) Len() int {
	return len(m.keys)
}

// WriteBinary serializes the map as a u32 count, count ascending u32
// keys, then count f32 values, all big-endian. Given the same ordered
// input, WriteBinary always produces byte-identical output.
func (m *Int32FloatMap) WriteBinary() []byte {
	n := len(m.keys)
	buf := make([]byte, 4+8*n)
	binary.BigEndian.PutUint32(buf[0:4], uint32(n))
	off := 4
	for _, k := range m.keys {
		binary.BigEndian.PutUint32(buf[off:off+4], k)
		off += 4
	}
	for _, v := range m.values {
		binary.BigEndian.PutUint32(buf[off:off+4], math.Float32bits(v))
		off += 4
	}
	return buf
}

// Int32FloatMapFromBinary deserializes a blob produced by WriteBinary. It
// returns the number of bytes consumed, which must equal len(blob)
// exactly once the caller has finished slicing out this section; a
// mismatch, a truncated stream, or non-ascending keys is a malformed-model
// error, never a panic.
func Int32FloatMapFromBinary(blob []byte) (*Int32FloatMap, int, error) {
	if len(blob) < 4 {
		return nil, 0, fmt.Errorf("langdetect: truncated Int32FloatMap blob: %d bytes", len(blob))
	}
	n := int(binary.BigEndian.Uint32(blob[0:4]))
	want := 4 + 8*n
	if len(blob) < want {
		return nil, 0, fmt.Errorf("langdetect: truncated Int32FloatMap blob: have %d bytes, want %d", len(blob), want)
	}

	keys := make([]uint32, n)
	off := 4
	for i := 0; i < n; i++ {
		keys[i] = binary.BigEndian.Uint32(blob[off : off+4])
		off += 4
		if i > 0 && keys[i] <= keys[i-1] {
			return nil, 0, fmt.Errorf("langdetect: malformed Int32FloatMap: keys not strictly ascending at index %d", i)
		}
	}

	values := make([]float32, n)
	for i := 0; i < n; i++ {
		bits := binary.BigEndian.Uint32(blob[off : off+4])
		v := math.Float32frombits(bits)
		if v <= 0 {
			return nil, 0, fmt.Errorf("langdetect: malformed Int32FloatMap: non-positive value at index %d", i)
		}
		values[i] = v
		off += 4
	}

	return &Int32FloatMap{keys: keys, values: values}, want, nil
}
