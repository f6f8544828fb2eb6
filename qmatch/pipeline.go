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
	"strings"

	"freqgate/kdb"
	"freqgate/pos"
	"freqgate/rdb"
)

const (
	cacheFnQueryMatches = "queryMatches"
	cacheFnWordForms    = "wordForms"
)

// Pipeline is the entry point for all the frequency related
// operations. It composes Resolver and Aggregator and optionally
// caches their results.
type Pipeline struct {
	conf       *kdb.Conf
	catalog    CatalogProvider
	resolver   *Resolver
	aggregator *Aggregator
	cache      *rdb.Cache
}

// ResolveQueryMatches finds all the readings of a query along with their
// frequencies. The query must not contain leading, trailing or repeated
// spaces.
func (p *Pipeline) ResolveQueryMatches(
	ctx context.Context,
	query string,
	scheme pos.Scheme,
	lang string,
	minFreq int,
) ([]*QueryMatch, error) {
	return rdb.GetOrCompute(
		ctx,
		p.cache,
		cacheFnQueryMatches,
		[]any{query, scheme, lang, minFreq},
		func(ctx context.Context) ([]*QueryMatch, error) {
			return p.resolver.Resolve(ctx, query, scheme, lang, minFreq)
		},
	)
}

// GetWordForms returns frequencies of all the forms of a known lemma
// (optionally restricted by posFilter).
func (p *Pipeline) GetWordForms(
	ctx context.Context,
	lemma string,
	posFilter []string,
	scheme pos.Scheme,
	lang string,
) ([]*QueryMatch, error) {
	return rdb.GetOrCompute(
		ctx,
		p.cache,
		cacheFnWordForms,
		[]any{lemma, strings.Join(posFilter, " "), scheme, lang},
		func(ctx context.Context) ([]*QueryMatch, error) {
			snap, err := p.catalog.Fetch(ctx)
			if err != nil {
				return nil, err
			}
			return p.aggregator.Aggregate(ctx, snap, lemma, posFilter, scheme, lang)
		},
	)
}

// GetSourceDescription provides information about a resource
// as reported by the frequency database. In case corpusID is empty,
// the resource used for ipm normalization is described.
func (p *Pipeline) GetSourceDescription(
	ctx context.Context,
	lang string,
	corpusID string,
) (SourceDetails, error) {
	if corpusID == "" {
		corpusID = p.conf.NormPath
	}
	snap, err := p.catalog.Fetch(ctx)
	if err != nil {
		return SourceDetails{}, err
	}
	res, err := snap.Resource(corpusID)
	if err != nil {
		return SourceDetails{}, err
	}
	ans := SourceDetails{
		ID:          corpusID,
		Title:       res.LocaleLabel(lang),
		Description: res.Description,
	}
	if res.Params != nil && res.Params.SizeTokens != nil {
		ans.Size = *res.Params.SizeTokens
	}
	return ans, nil
}

// GetSimilarFreqWords is not supported by the frequency database
// backend and always returns an empty list.
func (p *Pipeline) GetSimilarFreqWords(
	ctx context.Context,
	lemma string,
	posFilter []string,
	rng int,
) ([]*QueryMatch, error) {
	return []*QueryMatch{}, nil
}

func NewPipeline(
	searcher UnitSearcher,
	catalog CatalogProvider,
	conf *kdb.Conf,
	cache *rdb.Cache,
) *Pipeline {
	aggregator := NewAggregator(searcher, conf)
	return &Pipeline{
		conf:       conf,
		catalog:    catalog,
		resolver:   NewResolver(searcher, catalog, aggregator, conf),
		aggregator: aggregator,
		cache:      cache,
	}
}
