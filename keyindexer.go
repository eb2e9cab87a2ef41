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

// NoIndex is the sentinel returned by KeyIndexer.IndexOf for a language the
// indexer was not built with.
const NoIndex = -1

// KeyIndexer is a bijective map between a Language and a dense [0, N) index,
// used to size and address the array-backed structures in numericmap.go.
// It generalizes plain enum-ordinal addressing to an arbitrary subset: a
// detector restricted to a handful of languages gets an indexer sized to
// exactly that handful, rather than wasting array slots on the full
// supported set.
type KeyIndexer struct {
	keys       []Language
	keyToIndex map[Language]int
}

// NewKeyIndexer builds an indexer over keys, in the order given. keys must
// be non-empty and free of duplicates; violating either is a programmer
// error and panics, since it cannot happen at runtime without a bug in the
// caller.
func NewKeyIndexer(keys []Language) *KeyIndexer {
	if len(keys) == 0 {
		panic("langdetect: NewKeyIndexer requires at least one key")
	}
	idx := &KeyIndexer{
		keys:       append([]Language(nil), keys...),
		keyToIndex: make(map[Language]int, len(keys)),
	}
	for i, k := range keys {
		if _, dup := idx.keyToIndex[k]; dup {
			panic("langdetect: NewKeyIndexer given duplicate key " + k.String())
		}
		idx.keyToIndex[k] = i
	}
	return idx
}

// Len returns the cardinality N of the index space [0, N).
func (idx *KeyIndexer) Len() int {
	return len(idx.keys)
}

// IndexOf returns key's dense index, or NoIndex if key was not part of the
// set this indexer was built from.
func (idx *KeyIndexer) IndexOf(key Language) int {
	if i, ok := idx.keyToIndex[key]; ok {
		return i
	}
	return NoIndex
}

// KeyAt returns the key at a dense index produced by this indexer.
// Behavior is undefined if i is out of [0, Len()) — the sentinel NoIndex in
// particular must never be passed here.
func (idx *KeyIndexer) KeyAt(i int) Language {
	return idx.keys[i]
}

// Keys returns the indexer's keys in index order. The caller must not
// mutate the returned slice.
func (idx *KeyIndexer) Keys() []Language {
	return idx.keys
}

// Contains reports whether key is part of this indexer's key set.
func (idx *KeyIndexer) Contains(key Language) bool {
	_, ok := idx.keyToIndex[key]
	return ok
}
