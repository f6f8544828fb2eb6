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
)

// Aggregator calculates frequencies of all the forms of a lemma
type Aggregator struct {
	searcher UnitSearcher
	conf     *kdb.Conf
}

// Aggregate searches for all the units with a specified lemma, keeps
// the ones matching posFilter (an empty filter matches everything)
// and merges them by their surface form.
// The returned list keeps the order in which the forms were
// first encountered.
func (ag *Aggregator) Aggregate(
	ctx context.Context,
	snap *kdb.CatalogSnapshot,
	lemma string,
	posFilter []string,
	scheme pos.Scheme,
	lang string,
) ([]*QueryMatch, error) {
	corpusSize, err := snap.CorpusSize(ag.conf.NormPath)
	if err != nil {
		return nil, err
	}
	lemmaWords := strings.Split(lemma, " ")
	fcrit := ag.conf.Fcrit(len(lemmaWords))
	records, err := ag.searcher.SearchUnits(
		ctx,
		kdb.SearchArgs{
			Values: lemmaWords,
			Field:  ag.conf.LemmaField,
			Fcrit:  fcrit,
			Size:   ag.conf.MaxCandidates,
		},
	)
	if err != nil {
		return nil, err
	}
	ans := make([]*QueryMatch, 0, len(records))
	byWord := make(map[string]*QueryMatch)
	for _, rec := range records {
		value, ok := rec.Stat(fcrit)
		if !ok {
			continue
		}
		posItems := pos.ImportQueryPosWithLabel(rec.RawPos(), scheme, lang)
		if len(posFilter) > 0 && !pos.EqualValues(posItems, posFilter) {
			continue
		}
		ipm := calcIPM(value, corpusSize)
		if curr, ok := byWord[rec.Name]; ok {
			curr.AddFreq(toAbs(value), ipm)

		} else {
			item := &QueryMatch{
				Word:  rec.Name,
				Lemma: rec.Lemma(),
				Pos:   posItems,
				Upos:  []pos.Item{},
				ARF:   ARFNotAvailable,
			}
			item.AddFreq(toAbs(value), ipm)
			byWord[rec.Name] = item
			ans = append(ans, item)
		}
	}
	return ans, nil
}

func NewAggregator(searcher UnitSearcher, conf *kdb.Conf) *Aggregator {
	return &Aggregator{
		searcher: searcher,
		conf:     conf,
	}
}
