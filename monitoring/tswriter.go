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
	"context"
	"time"

	"github.com/czcorpus/hltscl"
	"github.com/rs/zerolog/log"
)

/*
Expected table:

create table freqgate_upstream_calls (
  "time" timestamp with time zone NOT NULL,
  func text,
  num_calls int,
  num_errors int,
  duration_secs float
);
select create_hypertable('freqgate_upstream_calls', 'time');
*/

const (
	upstreamCallsTable = "freqgate_upstream_calls"
)

type Conf struct {
	DB hltscl.PgConf `json:"db" toml:"db"`
}

// StatusWriter stores CallLog records to some persistent
// storage for later analysis
type StatusWriter interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Write(item CallLog)
}

// ------------------------------

type NullStatusWriter struct{}

func (n *NullStatusWriter) Start(ctx context.Context) {}

func (n *NullStatusWriter) Stop(ctx context.Context) error {
	return nil
}

func (n *NullStatusWriter) Write(item CallLog) {}

// ------------------------------

type TimescaleDBWriter struct {
	tableWriter *hltscl.TableWriter
	dataCh      chan<- hltscl.Entry
	errCh       <-chan hltscl.WriteError
	location    *time.Location
}

func (sw *TimescaleDBWriter) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("about to close StatusWriter")
				return
			case err := <-sw.errCh:
				log.Error().
					Err(err.Err).
					Str("entry", err.Entry.String()).
					Str("table", upstreamCallsTable).
					Msg("error writing data to TimescaleDB")
			}
		}
	}()
}

func (sw *TimescaleDBWriter) Stop(ctx context.Context) error {
	log.Warn().Msg("stopping StatusWriter")
	return nil
}

func (sw *TimescaleDBWriter) Write(item CallLog) {
	if sw.tableWriter != nil {
		var numErr int
		if item.Err != nil {
			numErr++
		}
		sw.dataCh <- *sw.tableWriter.NewEntry(item.End.In(sw.location)).
			Str("func", item.Func).
			Int("num_calls", 1).
			Int("num_errors", numErr).
			Float("duration_secs", item.TimeSpent().Seconds())
	}
}

func NewTimescaleDBWriter(
	ctx context.Context,
	conf hltscl.PgConf,
	tz *time.Location,
) (*TimescaleDBWriter, error) {

	conn, err := hltscl.CreatePool(conf)
	if err != nil {
		return nil, err
	}
	twriter := hltscl.NewTableWriter(conn, upstreamCallsTable, "time", tz)
	dataCh, errCh := twriter.Activate(
		ctx,
		hltscl.WithTimeout(20*time.Second),
	)
	return &TimescaleDBWriter{
		tableWriter: twriter,
		dataCh:      dataCh,
		errCh:       errCh,
		location:    tz,
	}, nil
}
