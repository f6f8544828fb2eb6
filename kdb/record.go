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

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// UnknownPos is used for slots with a missing tag
const UnknownPos = "X"

type Filler struct {
	Lemma string `json:"lemma"`
	Tag   string `json:"tag"`
	Word  string `json:"word"`
}

type Slot struct {
	Fillers []Filler `json:"_fillers"`
}

// Filler returns the first (and in practice the only) filler
// of the slot.
func (s Slot) Filler() Filler {
	if len(s.Fillers) == 0 {
		return Filler{}
	}
	return s.Fillers[0]
}

// Record represents one indexed unit (a token or an n-gram)
// as returned by the frequency database. Besides the fixed
// attributes, a record contains values of statistics requested
// via SearchRequest.Feats. As the keys are chosen by a client,
// they are stored in Stats.
type Record struct {
	ID    string
	Name  string
	Slots []Slot
	Stats map[string]float64
}

// Stat returns a value of a statistic and a flag whether
// the value is non-empty (zero is considered empty).
func (rec Record) Stat(fcrit string) (float64, bool) {
	v, ok := rec.Stats[fcrit]
	return v, ok && v != 0
}

// Lemma joins lemmas of all the slots
func (rec Record) Lemma() string {
	ans := make([]string, len(rec.Slots))
	for i, s := range rec.Slots {
		ans[i] = s.Filler().Lemma
	}
	return strings.Join(ans, " ")
}

// RawPos produces a space-separated string of the first
// characters of each slot's tag (i.e. a PoS in positional tagsets).
// A slot without a tag yields UnknownPos so there is always
// one value per slot.
func (rec Record) RawPos() string {
	ans := make([]string, len(rec.Slots))
	for i, s := range rec.Slots {
		tag := s.Filler().Tag
		if len(tag) > 0 {
			ans[i] = tag[:1]

		} else {
			ans[i] = UnknownPos
		}
	}
	return strings.Join(ans, " ")
}

func (rec *Record) UnmarshalJSON(data []byte) error {
	var tmp map[string]json.RawMessage
	if err := sonic.Unmarshal(data, &tmp); err != nil {
		return err
	}
	rec.Stats = make(map[string]float64)
	for k, v := range tmp {
		switch k {
		case "_id":
			if err := sonic.Unmarshal(v, &rec.ID); err != nil {
				return fmt.Errorf("failed to decode record _id: %w", err)
			}
		case "_name":
			if err := sonic.Unmarshal(v, &rec.Name); err != nil {
				return fmt.Errorf("failed to decode record _name: %w", err)
			}
		case "_slots":
			if err := sonic.Unmarshal(v, &rec.Slots); err != nil {
				return fmt.Errorf("failed to decode record _slots: %w", err)
			}
		default:
			var num float64
			// non-numeric extra attributes are of no interest to us
			if err := sonic.Unmarshal(v, &num); err == nil {
				rec.Stats[k] = num
			}
		}
	}
	return nil
}

type searchResponse struct {
	Data []Record `json:"data"`
}
