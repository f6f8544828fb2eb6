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

	"freqgate/kdb"
	"freqgate/merror"
	"freqgate/pos"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(srch *fakeSearcher, cat *fakeCatalog, conf *kdb.Conf) *Resolver {
	return NewResolver(srch, cat, NewAggregator(srch, conf), conf)
}

func prepareHlavy(srch *fakeSearcher, conf *kdb.Conf, query string) {
	srch.add(
		conf.WordField,
		query,
		mkRecord("hlavy", "hlava", "NNFS2-----A----", conf.TokenFcrit, 100),
		mkRecord("Hlavy", "hlava", "NNFP1-----A----", conf.TokenFcrit, 50),
		mkRecord("hlavy", "hlavý", "AAFP1----1A----", conf.TokenFcrit, 10),
		mkRecord("hlavy", "hlavec", "NNMP4-----A----", conf.TokenFcrit, 0),
		mkRecord("hlavou", "hlava", "NNFS7-----A----", conf.TokenFcrit, 40),
	)
	srch.add(
		conf.LemmaField,
		"hlava",
		mkRecord("hlava", "hlava", "NNFS1-----A----", conf.TokenFcrit, 500),
		mkRecord("hlavy", "hlava", "NNFS2-----A----", conf.TokenFcrit, 100),
		mkRecord("hlavou", "hlava", "NNFS7-----A----", conf.TokenFcrit, 40),
		mkRecord("hlava", "hlava", "NNFS5-----A----", conf.TokenFcrit, 2),
	)
	srch.add(
		conf.LemmaField,
		"hlavý",
		mkRecord("hlavy", "hlavý", "AAFP1----1A----", conf.TokenFcrit, 10),
		mkRecord("hlavá", "hlavý", "AAFS1----1A----", conf.TokenFcrit, 1800),
	)
}

func TestResolveDeduplicatesCandidates(t *testing.T) {
	conf := testConf()
	srch := newFakeSearcher()
	prepareHlavy(srch, conf, "hlavy")
	res := newTestResolver(srch, newFakeCatalog(conf.NormPath, 1000000), conf)

	ans, err := res.Resolve(context.Background(), "hlavy", pos.SchemePPTagset, "en", 0)
	require.NoError(t, err)
	require.Len(t, ans, 2)

	// sorted by ipm
	assert.Equal(t, "hlavý", ans[0].Lemma)
	assert.Equal(t, int64(1810), ans[0].Abs)
	assert.InDelta(t, 1810.0, ans[0].IPM, 1e-9)
	assert.Equal(t, CalcFreqBand(ans[0].IPM), ans[0].FLevel)
	assert.Equal(t, []pos.Item{{Value: "A", Label: "adjective"}}, ans[0].Pos)

	assert.Equal(t, "hlava", ans[1].Lemma)
	assert.Equal(t, int64(642), ans[1].Abs)
	assert.InDelta(t, 642.0, ans[1].IPM, 1e-9)
	assert.Equal(t, CalcFreqBand(ans[1].IPM), ans[1].FLevel)
	assert.Equal(t, []pos.Item{{Value: "N", Label: "noun"}}, ans[1].Pos)

	for _, item := range ans {
		assert.Equal(t, "hlavy", item.Word)
		assert.Equal(t, float64(0), item.ARF)
		assert.False(t, item.IsCurrent)
		assert.Equal(t, []pos.Item{}, item.Upos)
	}
}

func TestResolveCandidateLookupArgs(t *testing.T) {
	conf := testConf()
	srch := newFakeSearcher()
	prepareHlavy(srch, conf, "hlavy")
	res := newTestResolver(srch, newFakeCatalog(conf.NormPath, 1000000), conf)

	_, err := res.Resolve(context.Background(), "hlavy", pos.SchemePPTagset, "en", 0)
	require.NoError(t, err)
	var wordLookups []kdb.SearchArgs
	for _, h := range srch.history {
		if h.Field == conf.WordField {
			wordLookups = append(wordLookups, h)
		}
	}
	require.Len(t, wordLookups, 1)
	assert.True(t, wordLookups[0].CaseInsensitive)
	assert.Equal(t, 1000, wordLookups[0].Size)
	assert.Equal(t, conf.TokenFcrit, wordLookups[0].Fcrit)
	assert.Len(t, srch.history, 3)
}

func TestResolveCaseInsensitiveMatch(t *testing.T) {
	conf := testConf()
	srch := newFakeSearcher()
	prepareHlavy(srch, conf, "HLAVY")
	res := newTestResolver(srch, newFakeCatalog(conf.NormPath, 1000000), conf)

	ans, err := res.Resolve(context.Background(), "HLAVY", pos.SchemePPTagset, "en", 0)
	require.NoError(t, err)
	require.Len(t, ans, 2)
	for _, item := range ans {
		assert.Equal(t, "HLAVY", item.Word)
	}
}

func TestResolveNgramSelectsNgramFcrit(t *testing.T) {
	conf := testConf()
	srch := newFakeSearcher()
	srch.add(
		conf.WordField,
		"ruka noha",
		mkRecord("ruka noha", "ruka noha", "NNFS1-----A---- NNFS1-----A----", conf.NgramFcrit, 12),
	)
	srch.add(
		conf.LemmaField,
		"ruka noha",
		mkRecord("ruka noha", "ruka noha", "NNFS1-----A---- NNFS1-----A----", conf.NgramFcrit, 12),
		mkRecord("ruce nohy", "ruka noha", "NNFS3-----A---- NNFP1-----A----", conf.NgramFcrit, 3),
	)
	res := newTestResolver(srch, newFakeCatalog(conf.NormPath, 1000000), conf)

	ans, err := res.Resolve(context.Background(), "ruka noha", pos.SchemePPTagset, "en", 0)
	require.NoError(t, err)
	require.Len(t, ans, 1)
	assert.Equal(t, "ruka noha", ans[0].Lemma)
	assert.Equal(t, int64(15), ans[0].Abs)
	assert.Equal(t, []string{"N", "N"}, pos.Values(ans[0].Pos))

	require.NotEmpty(t, srch.history)
	for _, h := range srch.history {
		assert.Equal(t, conf.NgramFcrit, h.Fcrit)
		assert.Equal(t, []string{"ruka", "noha"}, h.Values)
	}
}

func TestResolveNoMatches(t *testing.T) {
	conf := testConf()
	srch := newFakeSearcher()
	res := newTestResolver(srch, newFakeCatalog(conf.NormPath, 1000000), conf)

	ans, err := res.Resolve(context.Background(), "xyz", pos.SchemePPTagset, "en", 0)
	assert.NoError(t, err)
	assert.NotNil(t, ans)
	assert.Len(t, ans, 0)
}

func TestResolveAggregationFailureFailsAll(t *testing.T) {
	conf := testConf()
	srch := newFakeSearcher()
	prepareHlavy(srch, conf, "hlavy")
	srch.fail(conf.LemmaField, "hlavý", merror.TransportError{URL: "http://localhost/query", Status: 502})
	res := newTestResolver(srch, newFakeCatalog(conf.NormPath, 1000000), conf)

	ans, err := res.Resolve(context.Background(), "hlavy", pos.SchemePPTagset, "en", 0)
	var tErr merror.TransportError
	assert.ErrorAs(t, err, &tErr)
	assert.Nil(t, ans)
}

func TestResolveCatalogFailure(t *testing.T) {
	conf := testConf()
	srch := newFakeSearcher()
	prepareHlavy(srch, conf, "hlavy")
	cat := &fakeCatalog{err: merror.MalformedResponseError{Msg: "not an object"}}
	res := newTestResolver(srch, cat, conf)

	_, err := res.Resolve(context.Background(), "hlavy", pos.SchemePPTagset, "en", 0)
	var mErr merror.MalformedResponseError
	assert.ErrorAs(t, err, &mErr)
}

func TestResolveSortOrder(t *testing.T) {
	conf := testConf()
	srch := newFakeSearcher()
	srch.add(
		conf.WordField,
		"tři",
		mkRecord("tři", "tři", "ClXP1----------", conf.TokenFcrit, 5),
		mkRecord("tři", "třít", "Vi-S---2--A----", conf.TokenFcrit, 1),
		mkRecord("tři", "tř", "NNXXX-----A----", conf.TokenFcrit, 1),
	)
	srch.add(conf.LemmaField, "tři", mkRecord("tři", "tři", "ClXP1----------", conf.TokenFcrit, 50))
	srch.add(conf.LemmaField, "třít", mkRecord("třít", "třít", "Vf--------A----", conf.TokenFcrit, 900))
	srch.add(conf.LemmaField, "tř", mkRecord("tř", "tř", "NNXXX-----A----", conf.TokenFcrit, 60))
	res := newTestResolver(srch, newFakeCatalog(conf.NormPath, 1000000), conf)

	ans, err := res.Resolve(context.Background(), "tři", pos.SchemePPTagset, "en", 0)
	require.NoError(t, err)
	require.Len(t, ans, 3)
	assert.Equal(t, "třít", ans[0].Lemma)
	assert.Equal(t, "tř", ans[1].Lemma)
	assert.Equal(t, "tři", ans[2].Lemma)
	for i := 1; i < len(ans); i++ {
		assert.GreaterOrEqual(t, ans[i-1].IPM, ans[i].IPM)
	}
}

func TestFindCandidatesFirstWins(t *testing.T) {
	conf := testConf()
	res := newTestResolver(newFakeSearcher(), newFakeCatalog(conf.NormPath, 1), conf)
	records := []kdb.Record{
		mkRecord("Praha", "Praha", "NNFS1-----A----", conf.TokenFcrit, 10),
		mkRecord("praha", "Praha", "NNFS1-----A----", conf.TokenFcrit, 300),
		mkRecord("praha", "praha", "NNFS1-----A----", conf.TokenFcrit, 1),
	}
	ans := res.findCandidates(records, "praha", conf.TokenFcrit, pos.SchemePPTagset, "cs")
	require.Len(t, ans, 2)
	assert.Equal(t, "Praha", ans[0].Lemma)
	assert.Equal(t, "praha", ans[1].Lemma)
	assert.Equal(t, int64(0), ans[0].Abs)
	assert.Equal(t, "podstatné jméno", ans[0].Pos[0].Label)
}

func TestResolveCandidateWithoutFormsHasLowestBand(t *testing.T) {
	conf := testConf()
	srch := newFakeSearcher()
	srch.add(
		conf.WordField,
		"hlavy",
		mkRecord("hlavy", "hlava", "NNFS2-----A----", conf.TokenFcrit, 100),
	)
	res := newTestResolver(srch, newFakeCatalog(conf.NormPath, 1000000), conf)

	ans, err := res.Resolve(context.Background(), "hlavy", pos.SchemePPTagset, "en", 0)
	require.NoError(t, err)
	require.Len(t, ans, 1)
	assert.Equal(t, int64(0), ans[0].Abs)
	assert.Equal(t, 0.0, ans[0].IPM)
	assert.Equal(t, CalcFreqBand(0), ans[0].FLevel)
	assert.Equal(t, FreqBand(1), ans[0].FLevel)
}
