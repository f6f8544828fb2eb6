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
	"strconv"
	"strings"
	"sync"

	"freqgate/kdb"
)

type fakeSearcher struct {
	lock    sync.Mutex
	data    map[string][]kdb.Record
	errs    map[string]error
	history []kdb.SearchArgs
}

func (fs *fakeSearcher) mkKey(field string, values []string) string {
	return field + "#" + strings.Join(values, " ")
}

func (fs *fakeSearcher) add(field, value string, recs ...kdb.Record) {
	key := fs.mkKey(field, strings.Split(value, " "))
	fs.data[key] = append(fs.data[key], recs...)
}

func (fs *fakeSearcher) fail(field, value string, err error) {
	fs.errs[fs.mkKey(field, strings.Split(value, " "))] = err
}

func (fs *fakeSearcher) SearchUnits(ctx context.Context, args kdb.SearchArgs) ([]kdb.Record, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.history = append(fs.history, args)
	key := fs.mkKey(args.Field, args.Values)
	if err, ok := fs.errs[key]; ok {
		return nil, err
	}
	return fs.data[key], nil
}

func newFakeSearcher() *fakeSearcher {
	return &fakeSearcher{
		data: make(map[string][]kdb.Record),
		errs: make(map[string]error),
	}
}

type fakeCatalog struct {
	snap *kdb.CatalogSnapshot
	err  error
}

func (fc *fakeCatalog) Fetch(ctx context.Context) (*kdb.CatalogSnapshot, error) {
	return fc.snap, fc.err
}

func newFakeCatalog(normPath string, size int64) *fakeCatalog {
	snap, err := kdb.ParseCatalogSnapshot([]byte(
		`{"data": [{"resources": {"corpus": {"` + normPath + `": {
			"label": {"en": "Test corpus", "cs": "Testovací korpus"},
			"description": "a testing corpus",
			"params": {"size_tokens": ` + strconv.FormatInt(size, 10) + `}}}}}]}`,
	))
	if err != nil {
		panic(err)
	}
	return &fakeCatalog{snap: snap}
}

// mkRecord creates a record; words, lemmas and tags are
// space separated (one item per slot)
func mkRecord(name, lemmas, tags string, fcrit string, value float64) kdb.Record {
	lemmaList := strings.Split(lemmas, " ")
	tagList := strings.Split(tags, " ")
	wordList := strings.Split(name, " ")
	slots := make([]kdb.Slot, len(lemmaList))
	for i := range lemmaList {
		slots[i] = kdb.Slot{
			Fillers: []kdb.Filler{
				{Lemma: lemmaList[i], Tag: tagList[i], Word: wordList[i]},
			},
		}
	}
	ans := kdb.Record{
		Name:  name,
		Slots: slots,
		Stats: map[string]float64{},
	}
	if value != 0 {
		ans.Stats[fcrit] = value
	}
	return ans
}

func testConf() *kdb.Conf {
	conf := &kdb.Conf{
		APIURL:   "http://localhost",
		NormPath: "syn2020",
	}
	if err := conf.ValidateAndDefaults("korpusDb"); err != nil {
		panic(err)
	}
	return conf
}
