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
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	DfltTokenFcrit          = ":stats:fq:abs:cnc"
	DfltNgramFcrit          = ":stats:fq:abs:cnc:ngram"
	DfltWordField           = ":form:attr:cnc:w"
	DfltLemmaField          = ":form:attr:cnc:l"
	DfltMaxCandidates       = 1000
	DfltRequestTimeoutSecs  = 10
	DfltIdleConnTimeoutSecs = 60
)

// Conf configures access to the frequency database (KorpusDB-like API)
type Conf struct {
	APIURL string `json:"apiUrl"`

	// AuthHeaderName and AuthToken are injected into each request
	// in case both are defined
	AuthHeaderName string `json:"authHeaderName"`
	AuthToken      string `json:"authToken"`

	// NormPath is an ID of a corpus resource whose size (in tokens)
	// is used to calculate instances per million
	NormPath string `json:"normPath"`

	TokenFcrit string `json:"tokenFcrit"`
	NgramFcrit string `json:"ngramFcrit"`
	WordField  string `json:"wordField"`
	LemmaField string `json:"lemmaField"`

	MaxCandidates       int `json:"maxCandidates"`
	RequestTimeoutSecs  int `json:"requestTimeoutSecs"`
	IdleConnTimeoutSecs int `json:"idleConnTimeoutSecs"`
}

// Fcrit returns a proper frequency criterion identifier
// based on number of words in a query (or lemma)
func (conf *Conf) Fcrit(numWords int) string {
	if numWords > 1 {
		return conf.NgramFcrit
	}
	return conf.TokenFcrit
}

func (conf *Conf) MetadataURL() string {
	return strings.TrimRight(conf.APIURL, "/") + "/metadata"
}

func (conf *Conf) QueryURL() string {
	return strings.TrimRight(conf.APIURL, "/") + "/query"
}

func (conf *Conf) ValidateAndDefaults(confContext string) error {
	if conf == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	if conf.APIURL == "" {
		return fmt.Errorf("missing `%s.apiUrl`", confContext)
	}
	if _, err := url.Parse(conf.APIURL); err != nil {
		return fmt.Errorf("invalid `%s.apiUrl`: %w", confContext, err)
	}
	if conf.NormPath == "" {
		return fmt.Errorf("missing `%s.normPath`", confContext)
	}
	if (conf.AuthHeaderName == "") != (conf.AuthToken == "") {
		return fmt.Errorf(
			"`%s.authHeaderName` and `%s.authToken` must be set together", confContext, confContext)
	}
	if conf.TokenFcrit == "" {
		conf.TokenFcrit = DfltTokenFcrit
		log.Warn().
			Str("value", conf.TokenFcrit).
			Msgf("`%s.tokenFcrit` not set, using default", confContext)
	}
	if conf.NgramFcrit == "" {
		conf.NgramFcrit = DfltNgramFcrit
		log.Warn().
			Str("value", conf.NgramFcrit).
			Msgf("`%s.ngramFcrit` not set, using default", confContext)
	}
	if conf.WordField == "" {
		conf.WordField = DfltWordField
	}
	if conf.LemmaField == "" {
		conf.LemmaField = DfltLemmaField
	}
	if conf.MaxCandidates <= 0 {
		conf.MaxCandidates = DfltMaxCandidates
	}
	if conf.RequestTimeoutSecs <= 0 {
		conf.RequestTimeoutSecs = DfltRequestTimeoutSecs
		log.Warn().
			Int("value", conf.RequestTimeoutSecs).
			Msgf("`%s.requestTimeoutSecs` not set, using default", confContext)
	}
	if conf.IdleConnTimeoutSecs <= 0 {
		conf.IdleConnTimeoutSecs = DfltIdleConnTimeoutSecs
	}
	return nil
}
