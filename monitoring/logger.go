// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Martin Zimandl <martin.zimandl@gmail.com>
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
	"context"
	"sync"
	"time"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"
)

const (
	recentLogSize     = 100
	reportingInterval = 10 * time.Minute
)

// CallLogger collects information about frequency database calls.
// It keeps a limited number of recent calls, summary per each API
// function and it forwards each call to Prometheus metrics and
// to a StatusWriter.
type CallLogger struct {
	dataLock     sync.RWMutex
	totals       map[string]UpstreamLoad
	recentLog    *collections.CircularList[CallLog]
	statusWriter StatusWriter
	metrics      *Metrics
}

// ObserveCall is called by the frequency database client
// after each finished request.
func (w *CallLogger) ObserveCall(fn string, begin, end time.Time, err error) {
	w.Log(CallLog{Func: fn, Begin: begin, End: end, Err: err})
}

func (w *CallLogger) Log(rec CallLog) {
	w.dataLock.Lock()
	entry, ok := w.totals[rec.Func]
	if !ok {
		entry.FirstUpdate = rec.Begin
	}
	entry.NumCalls++
	entry.LastUpdate = rec.End
	if rec.Err != nil {
		entry.NumErrors++
	}
	entry.TotalTimeSecs += rec.TimeSpent().Seconds()
	w.totals[rec.Func] = entry
	w.recentLog.Append(rec)
	w.dataLock.Unlock()

	w.metrics.Observe(rec)
	w.statusWriter.Write(rec)
}

// RecentLoad summarizes recent calls finished within the [from, to]
// interval. Only a limited number of recent calls is available.
func (w *CallLogger) RecentLoad(from, to time.Time) UpstreamLoad {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	var ans UpstreamLoad
	w.recentLog.ForEach(func(i int, item CallLog) bool {
		if item.End.Before(from) || item.End.After(to) {
			return true
		}
		if ans.NumCalls == 0 {
			ans.FirstUpdate = item.Begin
		}
		ans.LastUpdate = item.End
		if item.Err != nil {
			ans.NumErrors++
		}
		ans.NumCalls++
		ans.TotalTimeSecs += item.TimeSpent().Seconds()
		return true
	})
	return ans
}

func (w *CallLogger) RecentRecords() []CallLog {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	ans := make([]CallLog, 0, w.recentLog.Len())
	w.recentLog.ForEach(func(i int, item CallLog) bool {
		ans = append(ans, item)
		return true
	})
	return ans
}

// TotalLoad returns summaries of all the calls since the start
// grouped by API function.
func (w *CallLogger) TotalLoad() map[string]UpstreamLoad {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	ans := make(map[string]UpstreamLoad, len(w.totals))
	for k, v := range w.totals {
		ans[k] = v
	}
	return ans
}

func (w *CallLogger) report() {
	for fn, load := range w.TotalLoad() {
		log.Info().
			Str("func", fn).
			Int("numCalls", load.NumCalls).
			Int("numErrors", load.NumErrors).
			Float64("avgDurationSecs", load.AvgDurationSecs()).
			Msg("frequency database load report")
	}
}

func (w *CallLogger) Start(ctx context.Context) {
	log.Info().Msg("starting upstream call logger")
	w.statusWriter.Start(ctx)
	go func() {
		ticker := time.NewTicker(reportingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("requesting upstream call logger stop")
				return
			case <-ticker.C:
				w.report()
			}
		}
	}()
}

func (w *CallLogger) Stop(ctx context.Context) error {
	log.Info().Msg("shutting down upstream call logger")
	return w.statusWriter.Stop(ctx)
}

// NewCallLogger creates a new logger. Both statusWriter and
// metrics are optional.
func NewCallLogger(
	statusWriter StatusWriter,
	metrics *Metrics,
) *CallLogger {
	if statusWriter == nil {
		statusWriter = &NullStatusWriter{}
	}
	return &CallLogger{
		totals:       make(map[string]UpstreamLoad),
		recentLog:    collections.NewCircularList[CallLog](recentLogSize),
		statusWriter: statusWriter,
		metrics:      metrics,
	}
}
