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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordRawPosKeepsSlotWithoutTag(t *testing.T) {
	rec := Record{
		Name: "foo hlava",
		Slots: []Slot{
			{Fillers: []Filler{{Lemma: "foo", Tag: "", Word: "foo"}}},
			{Fillers: []Filler{{Lemma: "hlava", Tag: "NNFS1-----A----", Word: "hlava"}}},
		},
	}
	assert.Equal(t, "X N", rec.RawPos())
	assert.Equal(t, "foo hlava", rec.Lemma())
}

func TestRecordRawPosSlotWithoutFillers(t *testing.T) {
	rec := Record{Slots: []Slot{{}, {Fillers: []Filler{{Tag: "Vf--------A----"}}}}}
	assert.Equal(t, "X V", rec.RawPos())
}
