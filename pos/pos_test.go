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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportQueryPosPPTagset(t *testing.T) {
	ans := ImportQueryPos("n v", SchemePPTagset)
	assert.Equal(t, []string{"N", "V"}, ans)
}

func TestImportQueryPosSkipsEmpty(t *testing.T) {
	ans := ImportQueryPos(" N  A ", SchemePPTagset)
	assert.Equal(t, []string{"N", "A"}, ans)
}

func TestImportQueryPosDirect(t *testing.T) {
	ans := ImportQueryPos("NOUN verb", SchemeDirectPos)
	assert.Equal(t, []string{"NOUN", "verb"}, ans)
}

func TestImportQueryPosWithLabel(t *testing.T) {
	ans := ImportQueryPosWithLabel("N A", SchemePPTagset, "cs-CZ")
	assert.Equal(
		t,
		[]Item{
			{Value: "N", Label: "podstatné jméno"},
			{Value: "A", Label: "přídavné jméno"},
		},
		ans,
	)
}

func TestImportQueryPosWithLabelFallbackLang(t *testing.T) {
	ans := ImportQueryPosWithLabel("V", SchemePPTagset, "de")
	assert.Equal(t, []Item{{Value: "V", Label: "verb"}}, ans)
}

func TestImportQueryPosWithLabelUnknown(t *testing.T) {
	ans := ImportQueryPosWithLabel("Q", SchemePPTagset, "en")
	assert.Equal(t, []Item{{Value: "Q", Label: "Q"}}, ans)
}

func TestImportQueryPosWithLabelEmpty(t *testing.T) {
	ans := ImportQueryPosWithLabel("", SchemePPTagset, "en")
	assert.NotNil(t, ans)
	assert.Len(t, ans, 0)
}

func TestEqualValues(t *testing.T) {
	items := []Item{{Value: "N", Label: "noun"}, {Value: "V", Label: "verb"}}
	assert.True(t, EqualValues(items, []string{"N", "V"}))
	assert.False(t, EqualValues(items, []string{"V", "N"}))
	assert.False(t, EqualValues(items, []string{"N"}))
	assert.True(t, EqualValues([]Item{}, []string{}))
}

func TestSchemeValidate(t *testing.T) {
	assert.NoError(t, SchemePPTagset.Validate())
	assert.NoError(t, SchemeDirectPos.Validate())
	assert.Error(t, Scheme("foo").Validate())
}
