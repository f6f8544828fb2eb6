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
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"freqgate/merror"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/httpclient"
	"github.com/rs/zerolog/log"
)

const (
	FuncMetadata    = "metadata"
	FuncSearchUnits = "searchUnits"
)

// CallObserver is notified about each finished request
// to the frequency database.
type CallObserver interface {
	ObserveCall(fn string, begin, end time.Time, err error)
}

type nullObserver struct{}

func (no nullObserver) ObserveCall(fn string, begin, end time.Time, err error) {}

// Client provides access to the frequency database HTTP API.
// It is safe for concurrent use.
type Client struct {
	conf       *Conf
	httpClient *http.Client
	observer   CallObserver
}

func (c *Client) Conf() *Conf {
	return c.conf
}

func (c *Client) newRequest(ctx context.Context, method, url string, body []byte) (*http.Request, error) {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.conf.AuthHeaderName != "" {
		req.Header.Set(c.conf.AuthHeaderName, c.conf.AuthToken)
	}
	return req, nil
}

// do performs a request and returns the response body. Any failure
// (including non-success HTTP status) is reported as merror.TransportError.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, merror.TransportError{URL: req.URL.String(), Cause: err}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, merror.TransportError{URL: req.URL.String(), Status: resp.StatusCode, Cause: err}
	}
	if resp.StatusCode >= 400 {
		return nil, merror.TransportError{URL: req.URL.String(), Status: resp.StatusCode}
	}
	return body, nil
}

func (c *Client) observe(fn string, begin time.Time, err error) {
	end := time.Now()
	log.Debug().
		Str("func", fn).
		Dur("duration", end.Sub(begin)).
		Err(err).
		Msg("frequency database call finished")
	c.observer.ObserveCall(fn, begin, end, err)
}

// FetchMetadata loads raw metadata document describing
// available resources.
func (c *Client) FetchMetadata(ctx context.Context) (ans []byte, err error) {
	begin := time.Now()
	defer func() { c.observe(FuncMetadata, begin, err) }()
	req, err := c.newRequest(ctx, http.MethodGet, c.conf.MetadataURL(), nil)
	if err != nil {
		return nil, merror.TransportError{URL: c.conf.MetadataURL(), Cause: err}
	}
	return c.do(req)
}

// SearchUnits searches for tokens/n-grams matching provided args.
func (c *Client) SearchUnits(ctx context.Context, args SearchArgs) (ans []Record, err error) {
	begin := time.Now()
	defer func() { c.observe(FuncSearchUnits, begin, err) }()
	body, err := sonic.Marshal(NewSearchRequest(args))
	if err != nil {
		return nil, merror.InternalError{Msg: fmt.Sprintf("failed to encode search request: %s", err)}
	}
	log.Debug().
		Str("url", c.conf.QueryURL()).
		RawJSON("body", body).
		Msg("searching units")
	req, err := c.newRequest(ctx, http.MethodPost, c.conf.QueryURL(), body)
	if err != nil {
		return nil, merror.TransportError{URL: c.conf.QueryURL(), Cause: err}
	}
	respBody, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if !isJSONObject(respBody) {
		return nil, merror.MalformedResponseError{Msg: "search response is not an object"}
	}
	var resp searchResponse
	if err := sonic.Unmarshal(respBody, &resp); err != nil {
		return nil, merror.MalformedResponseError{Msg: err.Error()}
	}
	return resp.Data, nil
}

func NewClient(conf *Conf, observer CallObserver) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = httpclient.TransportMaxIdleConns
	transport.MaxConnsPerHost = httpclient.TransportMaxConnsPerHost
	transport.MaxIdleConnsPerHost = httpclient.TransportMaxIdleConnsPerHost
	transport.IdleConnTimeout = time.Duration(conf.IdleConnTimeoutSecs) * time.Second
	if observer == nil {
		observer = nullObserver{}
	}
	return &Client{
		conf: conf,
		httpClient: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
			Timeout:   time.Duration(conf.RequestTimeoutSecs) * time.Second,
			Transport: transport,
		},
		observer: observer,
	}
}
