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
	"unicode"

	"github.com/RoaringBitmap/roaring"
)

// Script is a Unicode script family used to prune candidate languages
// before ngram scoring: a cheap bitset test that throws away most of the
// search space before the expensive per-language scoring work even
// starts.
type Script int

const (
	ScriptLatin Script = iota
	ScriptCyrillic
	ScriptGreek
	ScriptArabic
	ScriptHan
	ScriptHiragana
	ScriptKatakana
	ScriptHangul
	ScriptHebrew
	ScriptDevanagari
	ScriptArmenian
	ScriptGeorgian
	ScriptThai
	ScriptTamil
	ScriptTelugu
	ScriptGujarati
	ScriptBengali
	ScriptGurmukhi
	numScripts
)

// scriptRanges maps each Script to the stdlib's Unicode range table for it.
// unicode.Scripts is the standard library's own copy of the Unicode
// Character Database script property; reusing it means the script list
// here tracks the Go toolchain's Unicode version instead of a hand-copied
// table that can drift out of date.
var scriptRanges = map[Script]*unicode.RangeTable{
	ScriptLatin:      unicode.Latin,
	ScriptCyrillic:   unicode.Cyrillic,
	ScriptGreek:      unicode.Greek,
	ScriptArabic:     unicode.Arabic,
	ScriptHan:        unicode.Han,
	ScriptHiragana:   unicode.Hiragana,
	ScriptKatakana:   unicode.Katakana,
	ScriptHangul:     unicode.Hangul,
	ScriptHebrew:     unicode.Hebrew,
	ScriptDevanagari: unicode.Devanagari,
	ScriptArmenian:   unicode.Armenian,
	ScriptGeorgian:   unicode.Georgian,
	ScriptThai:       unicode.Thai,
	ScriptTamil:      unicode.Tamil,
	ScriptTelugu:     unicode.Telugu,
	ScriptGujarati:   unicode.Gujarati,
	ScriptBengali:    unicode.Bengali,
	ScriptGurmukhi:   unicode.Gurmukhi,
}

// scriptOrder fixes the iteration order used by scriptOf, so results are deterministic instead of following Go's
// randomized map iteration.
var scriptOrder = []Script{
	ScriptLatin, ScriptCyrillic, ScriptGreek, ScriptArabic, ScriptHan,
	ScriptHiragana, ScriptKatakana, ScriptHangul, ScriptHebrew,
	ScriptDevanagari, ScriptArmenian, ScriptGeorgian, ScriptThai,
	ScriptTamil, ScriptTelugu, ScriptGujarati, ScriptBengali, ScriptGurmukhi,
}

// scriptOf classifies a single rune into the Script it belongs to, or
// (-1, false) if the rune is not a letter of any recognized script (digits,
// punctuation, or a script this package does not distinguish).
func scriptOf(r rune) (Script, bool) {
	for _, s := range scriptOrder {
		if unicode.Is(scriptRanges[s], r) {
			return s, true
		}
	}
	return -1, false
}

// languageScripts declares, per language, the scripts its text is normally
// written in. Languages sharing a script (e.g. every Latin-script
// language) are only pruned apart by ngram scoring or the unique-character
// shortcut below, not by this table.
var languageScripts = map[Language][]Script{
	Russian:    {ScriptCyrillic},
	Bulgarian:  {ScriptCyrillic},
	Ukrainian:  {ScriptCyrillic},
	Belarusian: {ScriptCyrillic},
	Macedonian: {ScriptCyrillic},
	Serbian:    {ScriptCyrillic, ScriptLatin},
	Mongolian:  {ScriptCyrillic},
	Kazakh:     {ScriptCyrillic},
	Greek:      {ScriptGreek},
	Arabic:     {ScriptArabic},
	Persian:    {ScriptArabic},
	Urdu:       {ScriptArabic},
	Chinese:    {ScriptHan},
	Japanese:   {ScriptHan, ScriptHiragana, ScriptKatakana},
	Korean:     {ScriptHangul},
	Hebrew:     {ScriptHebrew},
	Hindi:      {ScriptDevanagari},
	Marathi:    {ScriptDevanagari},
	Armenian:   {ScriptArmenian},
	Georgian:   {ScriptGeorgian},
	Thai:       {ScriptThai},
	Tamil:      {ScriptTamil},
	Telugu:     {ScriptTelugu},
	Gujarati:   {ScriptGujarati},
	Bengali:    {ScriptBengali},
	Punjabi:    {ScriptGurmukhi},
}

// defaultScript is what every language not listed in languageScripts is
// assumed to use: the large Latin-alphabet majority of the supported
// languages -- English, German, French, Swahili, Tagalog, and so on.
const defaultScript = ScriptLatin

// scriptsOf returns the scripts language ℓ is compatible with.
func scriptsOf(l Language) []Script {
	if s, ok := languageScripts[l]; ok {
		return s
	}
	return []Script{defaultScript}
}

// languageUniqueCharacters declares characters that, by themselves, point
// to a single language or a small group of languages -- ß for German,
// specific accented glyphs for others. Some characters are listed under
// more than one language (đ for Bosnian and Croatian, ā for Latvian and
// Maori). This is a representative subset of well-known
// language-distinguishing letters, not a transcription of a frequency
// model's full alphabet (see DESIGN.md).
var languageUniqueCharacters = map[Language]string{
	German:      "ß",
	Afrikaans:   "ŉ",
	Azerbaijani: "əğı",
	Bosnian:     "đ",
	Croatian:    "đ",
	Czech:       "ěřůĚŘŮ",
	Danish:      "øå",
	Dutch:       "ĳ",
	Esperanto:   "ĉĝĥĵŝŭ",
	Estonian:    "õäöü",
	Hungarian:   "őű",
	Icelandic:   "þðÞÐ",
	Latvian:     "ā ē ī ū ģ ķ ļ ņ ŗ",
	Lithuanian:  "ąęįųėūĄĘĮŲĖŪ",
	Maori:       "ā ē ī ō ū",
	Polish:      "ąćęłńśźżĄĆĘŁŃŚŹŻ",
	Romanian:    "ăâîșțĂÂÎȘȚ",
	Slovak:      "ĺľŕäôĹĽŔÄÔ",
	Slovene:     "čšžČŠŽ",
	Somali:      "ʼ",
	Swedish:     "åäö",
	Turkish:     "ığşĞİĞŞ",
	Vietnamese:  "ạảấầẩẫậắằẳẵặ",
	Yoruba:      "ẹọṣẸỌṢ",
}

// uniqueCharToLanguages maps each code point in languageUniqueCharacters back
// to the (normally single-element) set of languages it identifies, built
// once at init from the table above.
var uniqueCharToLanguages = func() map[rune][]Language {
	m := make(map[rune][]Language)
	for lang, chars := range languageUniqueCharacters {
		for _, r := range chars {
			if r == ' ' {
				continue
			}
			m[r] = append(m[r], lang)
		}
	}
	return m
}()

// CandidateLanguages returns the subset of languages whose declared
// scripts overlap with the scripts observed in text, restricted to the
// supplied universe. It is used as the first filter in the detection
// pipeline.
func CandidateLanguages(text string, universe []Language) []Language {
	observed := roaring.New()
	for _, r := range text {
		if s, ok := scriptOf(r); ok {
			observed.Add(uint32(s))
		}
	}
	if observed.IsEmpty() {
		return nil
	}

	var out []Language
	for _, l := range universe {
		for _, s := range scriptsOf(l) {
			if observed.Contains(uint32(s)) {
				out = append(out, l)
				break
			}
		}
	}
	return out
}

// UniqueCharacterCounts implements the unique-character shortcut: for each
// code point in text listed in languageUniqueCharacters, it increments the
// counter of every language the code point is listed under. The result is meant to be consulted only when
// it is non-empty and the text is short.
func UniqueCharacterCounts(text string) map[Language]int {
	counts := make(map[Language]int)
	for _, r := range text {
		for _, lang := range uniqueCharToLanguages[unicode.ToLower(r)] {
			counts[lang]++
		}
	}
	return counts
}
