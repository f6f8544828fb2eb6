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
	"sync/atomic"

	"freqgate/merror"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

func isJSONObject(data []byte) bool {
	tmp := bytes.TrimSpace(data)
	return len(tmp) > 0 && tmp[0] == '{'
}

type ResourceParams struct {
	SizeTokens *int64 `json:"size_tokens"`
}

type ResourceDescriptor struct {
	Label       map[string]string `json:"label"`
	Description string            `json:"description"`
	Params      *ResourceParams   `json:"params"`
}

// LocaleLabel returns a label in a specified language with
// a fallback to English.
func (rd ResourceDescriptor) LocaleLabel(lang string) string {
	if v := rd.Label[lang]; v != "" {
		return v
	}
	return rd.Label["en"]
}

type metadataResources struct {
	Corpus map[string]ResourceDescriptor `json:"corpus"`
}

type metadataItem struct {
	Resources *metadataResources `json:"resources"`
}

// CatalogSnapshot is a point-in-time view of resources
// provided by the frequency database. Once created, it is
// never modified.
type CatalogSnapshot struct {
	Data []metadataItem `json:"data"`
}

func (snap *CatalogSnapshot) corpora() (map[string]ResourceDescriptor, error) {
	if len(snap.Data) == 0 {
		return nil, merror.MalformedResponseError{Msg: "missing metadata `data[0]`"}
	}
	if snap.Data[0].Resources == nil {
		return nil, merror.MalformedResponseError{Msg: "missing metadata `data[0].resources`"}
	}
	if snap.Data[0].Resources.Corpus == nil {
		return nil, merror.MalformedResponseError{Msg: "missing metadata `data[0].resources.corpus`"}
	}
	return snap.Data[0].Resources.Corpus, nil
}

// Resource returns a descriptor of a resource. In case the
// metadata document itself is incomplete, MalformedResponseError
// is returned. For an unknown resource, merror.ErrNotFound is returned.
func (snap *CatalogSnapshot) Resource(id string) (ResourceDescriptor, error) {
	corpora, err := snap.corpora()
	if err != nil {
		return ResourceDescriptor{}, err
	}
	ans, ok := corpora[id]
	if !ok {
		return ResourceDescriptor{}, fmt.Errorf("resource %s: %w", id, merror.ErrNotFound)
	}
	return ans, nil
}

// CorpusSize returns `data[0].resources.corpus[id].params.size_tokens`.
// Any missing key along the path (including the resource itself)
// is reported as MalformedResponseError as we expect the value
// to be always present for a configured resource.
func (snap *CatalogSnapshot) CorpusSize(id string) (int64, error) {
	corpora, err := snap.corpora()
	if err != nil {
		return 0, err
	}
	res, ok := corpora[id]
	if !ok {
		return 0, merror.MalformedResponseError{
			Msg: fmt.Sprintf("missing metadata `data[0].resources.corpus[%s]`", id)}
	}
	if res.Params == nil || res.Params.SizeTokens == nil {
		return 0, merror.MalformedResponseError{
			Msg: fmt.Sprintf("missing metadata `data[0].resources.corpus[%s].params.size_tokens`", id)}
	}
	if *res.Params.SizeTokens <= 0 {
		return 0, merror.MalformedResponseError{
			Msg: fmt.Sprintf("invalid size_tokens for %s: %d", id, *res.Params.SizeTokens)}
	}
	return *res.Params.SizeTokens, nil
}

// ParseCatalogSnapshot decodes a metadata document. The frequency
// database sometimes responds with status 200 and a non-object body
// so we have to check this explicitly.
func ParseCatalogSnapshot(data []byte) (*CatalogSnapshot, error) {
	if !isJSONObject(data) {
		return nil, merror.MalformedResponseError{Msg: "metadata response is not an object"}
	}
	var ans CatalogSnapshot
	if err := sonic.Unmarshal(data, &ans); err != nil {
		return nil, merror.MalformedResponseError{Msg: err.Error()}
	}
	return &ans, nil
}

type MetadataFetcher interface {
	FetchMetadata(ctx context.Context) ([]byte, error)
}

// Catalog provides (lazily loaded) information about resources
// available in the frequency database. The first successfully
// loaded snapshot is kept for the whole lifetime of the instance.
//
// There is no locking on the first load: concurrent callers may
// both reach the database but they will store structurally equal
// snapshots and the pointer swap is atomic.
type Catalog struct {
	fetcher  MetadataFetcher
	snapshot atomic.Pointer[CatalogSnapshot]
}

func (cat *Catalog) Fetch(ctx context.Context) (*CatalogSnapshot, error) {
	if snap := cat.snapshot.Load(); snap != nil {
		return snap, nil
	}
	data, err := cat.fetcher.FetchMetadata(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := ParseCatalogSnapshot(data)
	if err != nil {
		return nil, err
	}
	cat.snapshot.Store(snap)
	log.Info().Msg("frequency database resources catalog loaded")
	return snap, nil
}

func NewCatalog(fetcher MetadataFetcher) *Catalog {
	return &Catalog{fetcher: fetcher}
}
