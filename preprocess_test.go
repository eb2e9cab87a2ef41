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
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestCleanTextLowercasesAndCollapsesPunctuation(t *testing.T) {
	require.Equal(t, "hello world", cleanText("Hello, World!!"))
	require.Equal(t, "the quick fox", cleanText("  The Quick   Fox.\t"))
	require.Equal(t, "", cleanText("123 !?"))
}

func TestCleanTextIsIdempotent(t *testing.T) {
	f := func(s string) bool {
		once := cleanText(s)
		twice := cleanText(once)
		return once == twice
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestNgramsOfLengthNeverSpansWordBoundary(t *testing.T) {
	got := ngramsOfLength("ab cd", 3)
	require.Empty(t, got)
}

func TestNgramsOfLengthDedupesWithinText(t *testing.T) {
	got := ngramsOfLength("banana", 2)
	require.Equal(t, []string{"ba", "an", "na"}, got)
}

func TestNgramsOfLengthSkipsShortWords(t *testing.T) {
	require.Empty(t, ngramsOfLength("a bb", 3))
}
