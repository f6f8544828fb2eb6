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
	"slices"
	"sort"
	"strings"

	"freqgate/kdb"
	"freqgate/merror"
	"freqgate/pos"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Resolver finds all the readings (lemma + PoS) of a query
// and calculates their frequencies.
type Resolver struct {
	searcher   UnitSearcher
	catalog    CatalogProvider
	aggregator *Aggregator
	conf       *kdb.Conf
}

// findCandidates extracts unique (lemma, PoS) readings from records
// matching the query. For each reading, only the first record is used.
// The `word` of each candidate is always the query itself.
func (r *Resolver) findCandidates(
	records []kdb.Record,
	query string,
	fcrit string,
	scheme pos.Scheme,
	lang string,
) []*QueryMatch {
	ans := make([]*QueryMatch, 0, 5)
	lcQuery := strings.ToLower(query)
	for _, rec := range records {
		if strings.ToLower(rec.Name) != lcQuery {
			continue
		}
		if _, ok := rec.Stat(fcrit); !ok {
			continue
		}
		lemma := rec.Lemma()
		posItems := pos.ImportQueryPosWithLabel(rec.RawPos(), scheme, lang)
		posValues := pos.Values(posItems)
		isDuplicate := slices.ContainsFunc(
			ans,
			func(item *QueryMatch) bool {
				return item.Lemma == lemma && pos.EqualValues(item.Pos, posValues)
			},
		)
		if isDuplicate {
			continue
		}
		ans = append(
			ans,
			&QueryMatch{
				Word:   query,
				Lemma:  lemma,
				Pos:    posItems,
				Upos:   []pos.Item{},
				FLevel: CalcFreqBand(0),
			},
		)
	}
	return ans
}

func recoverToErr(err *error) {
	if v := recover(); v != nil {
		*err = merror.PanicValueToErr(v)
	}
}

// Resolve finds all the readings of a query (a single word or
// a space separated n-gram) and for each reading it calculates
// total frequency of all the forms of the reading's lemma
// (with the same PoS). The result is sorted by ipm in descending
// order.
//
// The minFreq argument is accepted for compatibility with other
// frequency backends but it is not applied.
func (r *Resolver) Resolve(
	ctx context.Context,
	query string,
	scheme pos.Scheme,
	lang string,
	minFreq int,
) ([]*QueryMatch, error) {
	words := strings.Split(query, " ")
	fcrit := r.conf.Fcrit(len(words))

	var snap *kdb.CatalogSnapshot
	var records []kdb.Record
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		defer recoverToErr(&err)
		snap, err = r.catalog.Fetch(egCtx)
		return
	})
	eg.Go(func() (err error) {
		defer recoverToErr(&err)
		records, err = r.searcher.SearchUnits(
			egCtx,
			kdb.SearchArgs{
				Values:          words,
				Field:           r.conf.WordField,
				CaseInsensitive: true,
				Fcrit:           fcrit,
				Size:            r.conf.MaxCandidates,
			},
		)
		return
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	candidates := r.findCandidates(records, query, fcrit, scheme, lang)
	log.Debug().
		Str("query", query).
		Int("minFreq", minFreq).
		Int("numRecords", len(records)).
		Int("numCandidates", len(candidates)).
		Msg("resolved query candidates")

	forms := make([][]*QueryMatch, len(candidates))
	eg, egCtx = errgroup.WithContext(ctx)
	for i, cand := range candidates {
		eg.Go(func() (err error) {
			defer recoverToErr(&err)
			forms[i], err = r.aggregator.Aggregate(
				egCtx, snap, cand.Lemma, pos.Values(cand.Pos), scheme, lang)
			return
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for i, cand := range candidates {
		for _, form := range forms[i] {
			cand.AddFreq(form.Abs, form.IPM)
		}
	}
	sort.SliceStable(
		candidates,
		func(i, j int) bool {
			return candidates[i].IPM > candidates[j].IPM
		},
	)
	return candidates, nil
}

func NewResolver(
	searcher UnitSearcher,
	catalog CatalogProvider,
	aggregator *Aggregator,
	conf *kdb.Conf,
) *Resolver {
	return &Resolver{
		searcher:   searcher,
		catalog:    catalog,
		aggregator: aggregator,
		conf:       conf,
	}
}
