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

package handlers

import (
	"context"

	"freqgate/merror"
	"freqgate/pos"
	"freqgate/qmatch"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/unireq"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

const (
	dfltSimilarFreqRange = 10
)

// FreqDatabase provides all the frequency related operations
// exposed by the HTTP API. It is implemented by qmatch.Pipeline.
type FreqDatabase interface {
	ResolveQueryMatches(
		ctx context.Context, query string, scheme pos.Scheme, lang string, minFreq int,
	) ([]*qmatch.QueryMatch, error)
	GetWordForms(
		ctx context.Context, lemma string, posFilter []string, scheme pos.Scheme, lang string,
	) ([]*qmatch.QueryMatch, error)
	GetSourceDescription(ctx context.Context, lang, corpusID string) (qmatch.SourceDetails, error)
	GetSimilarFreqWords(
		ctx context.Context, lemma string, posFilter []string, rng int,
	) ([]*qmatch.QueryMatch, error)
}

type matchesResponse struct {
	Matches []*qmatch.QueryMatch `json:"matches"`
}

type Actions struct {
	freqDB        FreqDatabase
	dfltPosScheme pos.Scheme
	dfltLanguage  string
}

// QueryMatches godoc
// @Summary      QueryMatches
// @Description  Find all the readings (lemma + PoS) of a word or an n-gram along with their frequencies
// @Produce      json
// @Param        q query string true "searched word or n-gram (words separated by single spaces)"
// @Param        posScheme query string false "PoS encoding" enums(ppTagset, directPos)
// @Param        minFreq query int false "minimum frequency (currently ignored)" minimum(0) default(0)
// @Param        lang query string false "language of PoS labels" default(en)
// @Success      200 {object} matchesResponse
// @Router       /query-matches [get]
func (a *Actions) QueryMatches(ctx *gin.Context) {
	query := ctx.Query("q")
	if err := validateQuery(query); err != nil {
		respondWithError(ctx, err)
		return
	}
	scheme, ok := a.posSchemeOrFail(ctx)
	if !ok {
		return
	}
	minFreq, ok := unireq.GetURLIntArgOrFail(ctx, "minFreq", 0)
	if !ok {
		return
	}
	if minFreq < 0 {
		respondWithError(ctx, merror.InputError{Msg: "minFreq must be a non-negative integer"})
		return
	}
	logging.AddLogEvent(ctx, "query", query)
	ans, err := a.freqDB.ResolveQueryMatches(
		ctx.Request.Context(), query, scheme, a.language(ctx), minFreq)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, matchesResponse{Matches: ans})
}

// WordForms godoc
// @Summary      WordForms
// @Description  Find all the word forms of a lemma along with their frequencies
// @Produce      json
// @Param        lemma path string true "lemma (multiple words separated by single spaces)"
// @Param        pos query string false "space separated PoS values (one per word); empty means any PoS"
// @Param        posScheme query string false "PoS encoding" enums(ppTagset, directPos)
// @Param        lang query string false "language of PoS labels" default(en)
// @Success      200 {object} matchesResponse
// @Router       /word-forms/{lemma} [get]
func (a *Actions) WordForms(ctx *gin.Context) {
	lemma := ctx.Param("lemma")
	if err := validateQuery(lemma); err != nil {
		respondWithError(ctx, err)
		return
	}
	scheme, ok := a.posSchemeOrFail(ctx)
	if !ok {
		return
	}
	posFilter := pos.ImportQueryPos(ctx.Query("pos"), scheme)
	ans, err := a.freqDB.GetWordForms(
		ctx.Request.Context(), lemma, posFilter, scheme, a.language(ctx))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, matchesResponse{Matches: ans})
}

// SourceInfo godoc
// @Summary      SourceInfo
// @Description  Get information about a resource frequencies are derived from
// @Produce      json
// @Param        corpusId path string true "resource ID"
// @Param        lang query string false "language of the title" default(en)
// @Success      200 {object} qmatch.SourceDetails
// @Router       /source-info/{corpusId} [get]
func (a *Actions) SourceInfo(ctx *gin.Context) {
	ans, err := a.freqDB.GetSourceDescription(
		ctx.Request.Context(), a.language(ctx), ctx.Param("corpusId"))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// SimilarFreqWords godoc
// @Summary      SimilarFreqWords
// @Description  Find words with a frequency similar to the provided lemma. Not supported by the frequency database - the result is always empty.
// @Produce      json
// @Param        lemma query string true "lemma"
// @Param        pos query string false "space separated PoS values"
// @Param        rng query int false "number of words" default(10)
// @Success      200 {object} matchesResponse
// @Router       /similar-freq-words [get]
func (a *Actions) SimilarFreqWords(ctx *gin.Context) {
	lemma := ctx.Query("lemma")
	if lemma == "" {
		respondWithError(ctx, merror.InputError{Msg: "missing `lemma` argument"})
		return
	}
	rng, ok := unireq.GetURLIntArgOrFail(ctx, "rng", dfltSimilarFreqRange)
	if !ok {
		return
	}
	posFilter := pos.ImportQueryPos(ctx.Query("pos"), a.dfltPosScheme)
	ans, err := a.freqDB.GetSimilarFreqWords(ctx.Request.Context(), lemma, posFilter, rng)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, matchesResponse{Matches: ans})
}

func NewActions(
	freqDB FreqDatabase,
	dfltPosScheme pos.Scheme,
	dfltLanguage string,
) *Actions {
	return &Actions{
		freqDB:        freqDB,
		dfltPosScheme: dfltPosScheme,
		dfltLanguage:  dfltLanguage,
	}
}
