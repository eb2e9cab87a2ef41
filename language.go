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

import "fmt"

// Language is one member of the fixed, closed set of natural languages this
// package can distinguish between. Its declaration order is significant: it
// is the total order used to break ties between equally-scored languages.
type Language int

// The supported languages, in declaration order. This list is the closed
// set referenced throughout the package; a Builder may restrict detection
// to any non-empty subset of it.
const (
	Afrikaans Language = iota
	Albanian
	Arabic
	Armenian
	Azerbaijani
	Basque
	Belarusian
	Bengali
	Bokmal
	Bosnian
	Bulgarian
	Catalan
	Chinese
	Croatian
	Czech
	Danish
	Dutch
	English
	Esperanto
	Estonian
	Finnish
	French
	Ganda
	Georgian
	German
	Greek
	Gujarati
	Hebrew
	Hindi
	Hungarian
	Icelandic
	Indonesian
	Irish
	Italian
	Japanese
	Kazakh
	Korean
	Latin
	Latvian
	Lithuanian
	Macedonian
	Malay
	Maori
	Marathi
	Mongolian
	Nynorsk
	Oromo
	Persian
	Polish
	Portuguese
	Punjabi
	Romanian
	Russian
	Serbian
	Shona
	Slovak
	Slovene
	Somali
	Sotho
	Spanish
	Swahili
	Swedish
	Tagalog
	Tamil
	Telugu
	Thai
	Tsonga
	Tswana
	Turkish
	Ukrainian
	Urdu
	Vietnamese
	Welsh
	Xhosa
	Yoruba
	Zulu

	numLanguages = iota
)

// AllLanguages returns the complete supported set, in declaration order.
// Callers may pass a subset of this slice to NewKeyIndexer or
// Builder.WithLanguages.
func AllLanguages() []Language {
	out := make([]Language, numLanguages)
	for i := range out {
		out[i] = Language(i)
	}
	return out
}

var languageNames = [numLanguages]string{
	"AFRIKAANS", "ALBANIAN", "ARABIC", "ARMENIAN", "AZERBAIJANI", "BASQUE",
	"BELARUSIAN", "BENGALI", "BOKMAL", "BOSNIAN", "BULGARIAN", "CATALAN",
	"CHINESE", "CROATIAN", "CZECH", "DANISH", "DUTCH", "ENGLISH", "ESPERANTO",
	"ESTONIAN", "FINNISH", "FRENCH", "GANDA", "GEORGIAN", "GERMAN", "GREEK",
	"GUJARATI", "HEBREW", "HINDI", "HUNGARIAN", "ICELANDIC", "INDONESIAN",
	"IRISH", "ITALIAN", "JAPANESE", "KAZAKH", "KOREAN", "LATIN", "LATVIAN",
	"LITHUANIAN", "MACEDONIAN", "MALAY", "MAORI", "MARATHI", "MONGOLIAN",
	"NYNORSK", "OROMO", "PERSIAN", "POLISH", "PORTUGUESE", "PUNJABI",
	"ROMANIAN", "RUSSIAN", "SERBIAN", "SHONA", "SLOVAK", "SLOVENE", "SOMALI",
	"SOTHO", "SPANISH", "SWAHILI", "SWEDISH", "TAGALOG", "TAMIL", "TELUGU",
	"THAI", "TSONGA", "TSWANA", "TURKISH", "UKRAINIAN", "URDU", "VIETNAMESE",
	"WELSH", "XHOSA", "YORUBA", "ZULU",
}

// isoCodes639_1 holds the two-letter ISO 639-1 code where the language has
// one. An empty entry means the language has no ISO 639-1 assignment.
var isoCodes639_1 = [numLanguages]string{
	"af", "sq", "ar", "hy", "az", "eu", "be", "bn", "nb", "bs", "bg", "ca",
	"zh", "hr", "cs", "da", "nl", "en", "eo", "et", "fi", "fr", "lg", "ka",
	"de", "el", "gu", "he", "hi", "hu", "is", "id", "ga", "it", "ja", "kk",
	"ko", "la", "lv", "lt", "mk", "ms", "mi", "mr", "mn", "nn", "om", "fa",
	"pl", "pt", "pa", "ro", "ru", "sr", "sn", "sk", "sl", "so", "st", "es",
	"sw", "sv", "tl", "ta", "te", "th", "ts", "tn", "tr", "uk", "ur", "vi",
	"cy", "xh", "yo", "zu",
}

// String returns the language's declared name, e.g. "ENGLISH".
func (l Language) String() string {
	if l < 0 || int(l) >= int(numLanguages) {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return languageNames[l]
}

// IsoCode639_1 returns the language's two-letter ISO 639-1 code, or "" if
// none is assigned.
func (l Language) IsoCode639_1() string {
	if l < 0 || int(l) >= int(numLanguages) {
		return ""
	}
	return isoCodes639_1[l]
}

// Valid reports whether l is one of the declared constants.
func (l Language) Valid() bool {
	return l >= 0 && int(l) < int(numLanguages)
}
