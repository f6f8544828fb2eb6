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

package monitoring

import (
	"time"

	"github.com/bytedance/sonic"
)

// CallLog describes a single call of the frequency database API
type CallLog struct {
	Func  string
	Begin time.Time
	End   time.Time
	Err   error
}

func (cl CallLog) TimeSpent() time.Duration {
	return cl.End.Sub(cl.Begin)
}

// UpstreamLoad summarizes a series of CallLog records
type UpstreamLoad struct {
	NumCalls      int
	NumErrors     int
	TotalTimeSecs float64
	FirstUpdate   time.Time
	LastUpdate    time.Time
}

func (ul UpstreamLoad) AvgDurationSecs() float64 {
	if ul.NumCalls == 0 {
		return 0
	}
	return ul.TotalTimeSecs / float64(ul.NumCalls)
}

func (ul UpstreamLoad) ErrorRate() float64 {
	if ul.NumCalls == 0 {
		return 0
	}
	return float64(ul.NumErrors) / float64(ul.NumCalls)
}

func (ul UpstreamLoad) MarshalJSON() ([]byte, error) {
	var t0, t1 *time.Time
	if !ul.FirstUpdate.IsZero() {
		t0 = &ul.FirstUpdate
	}
	if !ul.LastUpdate.IsZero() {
		t1 = &ul.LastUpdate
	}
	return sonic.Marshal(
		struct {
			NumCalls        int        `json:"numCalls"`
			NumErrors       int        `json:"numErrors"`
			TotalTimeSecs   float64    `json:"totalTimeSecs"`
			AvgDurationSecs float64    `json:"avgDurationSecs"`
			ErrorRate       float64    `json:"errorRate"`
			FirstUpdate     *time.Time `json:"firstUpdate,omitempty"`
			LastUpdate      *time.Time `json:"lastUpdate,omitempty"`
		}{
			NumCalls:        ul.NumCalls,
			NumErrors:       ul.NumErrors,
			TotalTimeSecs:   ul.TotalTimeSecs,
			AvgDurationSecs: ul.AvgDurationSecs(),
			ErrorRate:       ul.ErrorRate(),
			FirstUpdate:     t0,
			LastUpdate:      t1,
		},
	)
}
