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
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// textLowerer performs the locale-insensitive lowercasing step of
// cleanText. golang.org/x/text/cases with language.Und ("undetermined
// locale") does full Unicode case folding without any locale-specific
// tailoring (e.g. Turkish dotless-i rules), which is what
// locale-insensitive lowercasing requires; strings.ToLower alone would
// work for ASCII but doesn't fully case-fold Unicode the way x/text does.
var textLowerer = cases.Lower(language.Und)

// cleanText lowercases text, replaces runs of non-letter characters with a
// single space, trims, and collapses internal whitespace. It is
// idempotent: cleanText(cleanText(x)) == cleanText(x).
func cleanText(text string) string {
	lowered := textLowerer.String(text)

	var b strings.Builder
	b.Grow(len(lowered))
	inGap := true // collapses a leading gap too, so the result is pre-trimmed
	for _, r := range lowered {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
			inGap = false
			continue
		}
		if !inGap {
			b.WriteByte(' ')
			inGap = true
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// ngramsOfLength emits every distinct ngram of exactly length letters in
// cleaned (a string already passed through cleanText), sliding a window
// across each space-delimited, letter-only run. An ngram never spans a
// space boundary. Ngrams are returned in first-seen order but with
// duplicates removed -- ngrams are enumerated with set semantics per text
// per length, so the detector's scorer must not let a repeated ngram
// count twice.
func ngramsOfLength(cleaned string, length int) []string {
	seen := make(map[string]bool)
	var out []string

	for _, word := range strings.Split(cleaned, " ") {
		if word == "" {
			continue
		}
		runes := []rune(word)
		if len(runes) < length {
			continue
		}
		for i := 0; i+length <= len(runes); i++ {
			ng := string(runes[i : i+length])
			if !seen[ng] {
				seen[ng] = true
				out = append(out, ng)
			}
		}
	}
	return out
}
