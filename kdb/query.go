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

package kdb

import "fmt"

const (
	UnitTypeToken = ":token:form"
	unitTypeNgram = ":ngram:form:%d"

	SortDesc = "desc"
)

// UnitType returns a type discriminator of a searched
// unit based on number of its words.
func UnitType(numWords int) string {
	if numWords > 1 {
		return fmt.Sprintf(unitTypeNgram, numWords)
	}
	return UnitTypeToken
}

// SearchArgs is a high level description of a unit lookup.
// Each item of Values is matched against Field in a respective
// slot (i.e. len(Values) determines the unit type).
type SearchArgs struct {
	Values          []string
	Field           string
	CaseInsensitive bool
	Fcrit           string
	Size            int
}

type FeatFilter struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	CI    bool   `json:"ci"`
}

type SlotFilter struct {
	Feats []FeatFilter `json:"feats"`
}

type QueryExpr struct {
	Feats []FeatFilter `json:"feats"`
	Type  string       `json:"type"`
	Slots []SlotFilter `json:"_slots"`
}

type SortOrder struct {
	Order string `json:"order"`
}

// SearchRequest is a body of the POST lookup request
type SearchRequest struct {
	Feats []string               `json:"feats"`
	Sort  []map[string]SortOrder `json:"sort"`
	From  int                    `json:"from"`
	Size  int                    `json:"size"`
	Query QueryExpr              `json:"query"`
}

func sortKey(fcrit string) string {
	return "feats." + fcrit
}

// NewSearchRequest converts search arguments into the form
// expected by the frequency database.
func NewSearchRequest(args SearchArgs) SearchRequest {
	slots := make([]SlotFilter, len(args.Values))
	for i, v := range args.Values {
		slots[i] = SlotFilter{
			Feats: []FeatFilter{
				{
					Type:  args.Field,
					Value: v,
					CI:    args.CaseInsensitive,
				},
			},
		}
	}
	return SearchRequest{
		Feats: []string{args.Fcrit},
		Sort: []map[string]SortOrder{
			{sortKey(args.Fcrit): {Order: SortDesc}},
		},
		From: 0,
		Size: args.Size,
		Query: QueryExpr{
			Feats: []FeatFilter{},
			Type:  UnitType(len(args.Values)),
			Slots: slots,
		},
	}
}
