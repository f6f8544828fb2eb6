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
	"math"

	"freqgate/kdb"
	"freqgate/pos"
)

const (
	// ARFNotAvailable is used for average reduced frequency
	// which is not provided by the frequency database.
	ARFNotAvailable = -1
)

// FreqBand is a coarse classification of a word frequency
// (1 = very rare, 5 = very frequent)
type FreqBand int

// CalcFreqBand classifies an ipm value into a frequency band
func CalcFreqBand(ipm float64) FreqBand {
	switch {
	case ipm < 1:
		return 1
	case ipm < 10:
		return 2
	case ipm < 100:
		return 3
	case ipm < 1000:
		return 4
	default:
		return 5
	}
}

// QueryMatch describes a single word (or n-gram) reading
// along with its frequency information.
//
// Upos and IsCurrent are not filled in by the frequency database
// backend. They are kept so the output structure is compatible
// with other frequency backends.
type QueryMatch struct {
	Word      string     `json:"word"`
	Lemma     string     `json:"lemma"`
	Pos       []pos.Item `json:"pos"`
	Upos      []pos.Item `json:"upos"`
	IPM       float64    `json:"ipm"`
	FLevel    FreqBand   `json:"flevel"`
	Abs       int64      `json:"abs"`
	ARF       float64    `json:"arf"`
	IsCurrent bool       `json:"isCurrent"`
}

// AddFreq adds absolute frequency and ipm to the match and
// recalculates the frequency band. Please note that ipm
// is additive here (i.e. it is not derived from the total abs).
func (qm *QueryMatch) AddFreq(abs int64, ipm float64) {
	qm.Abs += abs
	qm.IPM += ipm
	qm.FLevel = CalcFreqBand(qm.IPM)
}

// SourceDetails provides basic information about
// a resource (corpus) frequencies are derived from.
type SourceDetails struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Size        int64  `json:"size,omitempty"`
}

// UnitSearcher searches for tokens/n-grams in the frequency database
type UnitSearcher interface {
	SearchUnits(ctx context.Context, args kdb.SearchArgs) ([]kdb.Record, error)
}

// CatalogProvider provides information about available resources
type CatalogProvider interface {
	Fetch(ctx context.Context) (*kdb.CatalogSnapshot, error)
}

func calcIPM(value float64, corpusSize int64) float64 {
	return 1e6 * value / float64(corpusSize)
}

func toAbs(value float64) int64 {
	return int64(math.Round(value))
}
