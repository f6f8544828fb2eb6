// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of FREQGATE.
//
//  FREQGATE is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  FREQGATE is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with FREQGATE.  If not, see <https://www.gnu.org/licenses/>.

package qmatch

import (
	"context"
	"testing"

	"freqgate/merror"
	"freqgate/pos"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcFreqBand(t *testing.T) {
	assert.Equal(t, FreqBand(1), CalcFreqBand(0))
	assert.Equal(t, FreqBand(1), CalcFreqBand(0.99))
	assert.Equal(t, FreqBand(2), CalcFreqBand(1))
	assert.Equal(t, FreqBand(2), CalcFreqBand(9.9))
	assert.Equal(t, FreqBand(3), CalcFreqBand(10))
	assert.Equal(t, FreqBand(4), CalcFreqBand(500))
	assert.Equal(t, FreqBand(5), CalcFreqBand(1000))
	assert.Equal(t, FreqBand(5), CalcFreqBand(52000))
}

func TestQueryMatchAddFreqUpdatesBand(t *testing.T) {
	var qm QueryMatch
	qm.AddFreq(5, 5)
	assert.Equal(t, FreqBand(2), qm.FLevel)
	qm.AddFreq(10, 10)
	assert.Equal(t, int64(15), qm.Abs)
	assert.Equal(t, 15.0, qm.IPM)
	assert.Equal(t, FreqBand(3), qm.FLevel)
}

func TestAggregateSingleForm(t *testing.T) {
	conf := testConf()
	srch := newFakeSearcher()
	srch.add(conf.LemmaField, "hlava", mkRecord("hlava", "hlava", "NNFS1-----A----", conf.TokenFcrit, 500))
	cat := newFakeCatalog(conf.NormPath, 1000000)
	ag := NewAggregator(srch, conf)

	ans, err := ag.Aggregate(context.Background(), cat.snap, "hlava", []string{"N"}, pos.SchemePPTagset, "en")
	require.NoError(t, err)
	require.Len(t, ans, 1)
	assert.Equal(t, "hlava", ans[0].Word)
	assert.Equal(t, "hlava", ans[0].Lemma)
	assert.Equal(t, int64(500), ans[0].Abs)
	assert.Equal(t, 500.0, ans[0].IPM)
	assert.Equal(t, CalcFreqBand(500), ans[0].FLevel)
	assert.Equal(t, float64(ARFNotAvailable), ans[0].ARF)
	assert.False(t, ans[0].IsCurrent)
	assert.Equal(t, []pos.Item{}, ans[0].Upos)
	assert.Equal(t, []pos.Item{{Value: "N", Label: "noun"}}, ans[0].Pos)

	require.Len(t, srch.history, 1)
	assert.Equal(t, []string{"hlava"}, srch.history[0].Values)
	assert.False(t, srch.history[0].CaseInsensitive)
	assert.Equal(t, conf.TokenFcrit, srch.history[0].Fcrit)
}

func TestAggregatePosMismatch(t *testing.T) {
	conf := testConf()
	srch := newFakeSearcher()
	srch.add(conf.LemmaField, "hlava", mkRecord("hlava", "hlava", "NNFS1-----A----", conf.TokenFcrit, 500))
	cat := newFakeCatalog(conf.NormPath, 1000000)
	ag := NewAggregator(srch, conf)

	ans, err := ag.Aggregate(context.Background(), cat.snap, "hlava", []string{"V"}, pos.SchemePPTagset, "en")
	assert.NoError(t, err)
	assert.Len(t, ans, 0)
}

func TestAggregateMergesSameWord(t *testing.T) {
	conf := testConf()
	srch := newFakeSearcher()
	srch.add(
		conf.LemmaField,
		"hlava",
		mkRecord("hlava", "hlava", "NNFS1-----A----", conf.TokenFcrit, 300),
		mkRecord("hlavy", "hlava", "NNFS2-----A----", conf.TokenFcrit, 120),
		mkRecord("hlava", "hlava", "NNFS5-----A----", conf.TokenFcrit, 7),
	)
	cat := newFakeCatalog(conf.NormPath, 2000000)
	ag := NewAggregator(srch, conf)

	ans, err := ag.Aggregate(context.Background(), cat.snap, "hlava", []string{"N"}, pos.SchemePPTagset, "en")
	require.NoError(t, err)
	require.Len(t, ans, 2)
	assert.Equal(t, "hlava", ans[0].Word)
	assert.Equal(t, int64(307), ans[0].Abs)
	assert.InDelta(t, 1e6*300/2e6+1e6*7/2e6, ans[0].IPM, 1e-9)
	assert.Equal(t, CalcFreqBand(ans[0].IPM), ans[0].FLevel)
	assert.Equal(t, "hlavy", ans[1].Word)
	assert.Equal(t, int64(120), ans[1].Abs)
	assert.InDelta(t, 60.0, ans[1].IPM, 1e-9)
}

func TestAggregateEmptyPosFilterPassesAll(t *testing.T) {
	conf := testConf()
	srch := newFakeSearcher()
	srch.add(
		conf.LemmaField,
		"stát",
		mkRecord("stát", "stát", "NNIS1-----A----", conf.TokenFcrit, 900),
		mkRecord("stát", "stát", "Vf--------A----", conf.TokenFcrit, 100),
		mkRecord("stojí", "stát", "VB-S---3P-AA---", conf.TokenFcrit, 50),
		mkRecord("státu", "stát", "NNIS2-----A----", conf.TokenFcrit, 0),
	)
	cat := newFakeCatalog(conf.NormPath, 1000000)
	ag := NewAggregator(srch, conf)

	ans, err := ag.Aggregate(context.Background(), cat.snap, "stát", []string{}, pos.SchemePPTagset, "en")
	require.NoError(t, err)
	require.Len(t, ans, 2)
	assert.Equal(t, "stát", ans[0].Word)
	assert.Equal(t, int64(1000), ans[0].Abs)
	assert.Equal(t, "stojí", ans[1].Word)
}

func TestAggregateNgram(t *testing.T) {
	conf := testConf()
	srch := newFakeSearcher()
	srch.add(
		conf.LemmaField,
		"ruka noha",
		mkRecord("ruce nohy", "ruka noha", "NNFS3-----A---- NNFP1-----A----", conf.NgramFcrit, 20),
		mkRecord("ruka noha", "ruka noha", "NNFS1-----A---- NNFS1-----A----", conf.TokenFcrit, 20),
	)
	cat := newFakeCatalog(conf.NormPath, 1000000)
	ag := NewAggregator(srch, conf)

	ans, err := ag.Aggregate(context.Background(), cat.snap, "ruka noha", []string{"N", "N"}, pos.SchemePPTagset, "en")
	require.NoError(t, err)
	// the second record does not provide the n-gram statistics
	require.Len(t, ans, 1)
	assert.Equal(t, "ruce nohy", ans[0].Word)
	assert.Equal(t, "ruka noha", ans[0].Lemma)
	assert.Equal(t, conf.NgramFcrit, srch.history[0].Fcrit)
	assert.Equal(t, []string{"ruka", "noha"}, srch.history[0].Values)
}

func TestAggregateSearchError(t *testing.T) {
	conf := testConf()
	srch := newFakeSearcher()
	srch.fail(conf.LemmaField, "hlava", merror.TransportError{URL: "http://localhost/query", Status: 500})
	cat := newFakeCatalog(conf.NormPath, 1000000)
	ag := NewAggregator(srch, conf)

	_, err := ag.Aggregate(context.Background(), cat.snap, "hlava", nil, pos.SchemePPTagset, "en")
	var tErr merror.TransportError
	assert.ErrorAs(t, err, &tErr)
}

func TestAggregateMissingNormResource(t *testing.T) {
	conf := testConf()
	srch := newFakeSearcher()
	cat := newFakeCatalog("other", 1000000)
	ag := NewAggregator(srch, conf)

	_, err := ag.Aggregate(context.Background(), cat.snap, "hlava", nil, pos.SchemePPTagset, "en")
	var mErr merror.MalformedResponseError
	assert.ErrorAs(t, err, &mErr)
}

func TestAggregateSlotWithoutTagKeepsPosLength(t *testing.T) {
	conf := testConf()
	srch := newFakeSearcher()
	srch.add(
		conf.LemmaField,
		"foo hlava",
		mkRecord("foo hlava", "foo hlava", " NNFS1-----A----", conf.NgramFcrit, 30),
	)
	cat := newFakeCatalog(conf.NormPath, 1000000)
	ag := NewAggregator(srch, conf)

	ans, err := ag.Aggregate(context.Background(), cat.snap, "foo hlava", []string{"N"}, pos.SchemePPTagset, "en")
	require.NoError(t, err)
	assert.Len(t, ans, 0)

	ans, err = ag.Aggregate(context.Background(), cat.snap, "foo hlava", []string{"X", "N"}, pos.SchemePPTagset, "en")
	require.NoError(t, err)
	require.Len(t, ans, 1)
	assert.Equal(t, []string{"X", "N"}, pos.Values(ans[0].Pos))
}
