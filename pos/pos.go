// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pos

import (
	"fmt"
	"strings"
)

// Scheme specifies how raw PoS values obtained from
// tags are interpreted and labeled.
type Scheme string

const (
	// SchemePPTagset is the Czech positional tagset where the first
	// character of a tag represents a part of speech.
	SchemePPTagset Scheme = "ppTagset"

	// SchemeDirectPos means values are already PoS identifiers
	// and are used as they are.
	SchemeDirectPos Scheme = "directPos"

	DfltLabelLang = "en"
)

func (s Scheme) Validate() error {
	if s != SchemePPTagset && s != SchemeDirectPos {
		return fmt.Errorf("unsupported PoS scheme `%s`", s)
	}
	return nil
}

func (s Scheme) String() string {
	return string(s)
}

// Item is a normalized PoS value with a human readable label.
type Item struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type labels map[string]string

var ppTagsetLabels = map[string]labels{
	"A": {"cs": "přídavné jméno", "en": "adjective"},
	"C": {"cs": "číslovka", "en": "numeral"},
	"D": {"cs": "příslovce", "en": "adverb"},
	"I": {"cs": "citoslovce", "en": "interjection"},
	"J": {"cs": "spojka", "en": "conjunction"},
	"N": {"cs": "podstatné jméno", "en": "noun"},
	"P": {"cs": "zájmeno", "en": "pronoun"},
	"V": {"cs": "sloveso", "en": "verb"},
	"R": {"cs": "předložka", "en": "preposition"},
	"T": {"cs": "částice", "en": "particle"},
	"X": {"cs": "neznámý nebo neurčený slovní druh", "en": "unknown or undetermined part of speech"},
	"Z": {"cs": "interpunkce", "en": "punctuation"},
}

func (lb labels) forLang(lang string) string {
	if v, ok := lb[lang]; ok {
		return v
	}
	return lb[DfltLabelLang]
}

// normalizeLang reduces e.g. `cs-CZ` or `en_US` to `cs`, `en`
func normalizeLang(lang string) string {
	if i := strings.IndexAny(lang, "-_"); i > -1 {
		return lang[:i]
	}
	return lang
}

func importValue(v string, scheme Scheme) string {
	switch scheme {
	case SchemePPTagset:
		return strings.ToUpper(v)
	default:
		return v
	}
}

func labelValue(v string, scheme Scheme, lang string) string {
	if scheme == SchemePPTagset {
		if lb, ok := ppTagsetLabels[v]; ok {
			return lb.forLang(lang)
		}
	}
	return v
}

// ImportQueryPos splits a space-separated PoS expression
// into normalized values. Empty tokens are ignored.
func ImportQueryPos(s string, scheme Scheme) []string {
	ans := make([]string, 0, 3)
	for _, v := range strings.Split(s, " ") {
		if v == "" {
			continue
		}
		ans = append(ans, importValue(v, scheme))
	}
	return ans
}

// ImportQueryPosWithLabel is like ImportQueryPos but it also
// attaches a label (in a specified language) to each value.
func ImportQueryPosWithLabel(s string, scheme Scheme, lang string) []Item {
	lang = normalizeLang(lang)
	values := ImportQueryPos(s, scheme)
	ans := make([]Item, len(values))
	for i, v := range values {
		ans[i] = Item{Value: v, Label: labelValue(v, scheme, lang)}
	}
	return ans
}

// Values extracts raw PoS values from items
func Values(items []Item) []string {
	ans := make([]string, len(items))
	for i, v := range items {
		ans[i] = v.Value
	}
	return ans
}

// EqualValues compares two PoS sequences by their normalized
// values. Order matters and lengths must be the same.
func EqualValues(p1 []Item, p2 []string) bool {
	if len(p1) != len(p2) {
		return false
	}
	for i := range p1 {
		if p1[i].Value != p2[i] {
			return false
		}
	}
	return true
}
