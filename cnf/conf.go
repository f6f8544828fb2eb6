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

package cnf

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"freqgate/kdb"
	"freqgate/monitoring"
	"freqgate/pos"
	"freqgate/rdb"

	"github.com/BurntSushi/toml"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
)

const (
	dfltServerWriteTimeoutSecs = 30
	dfltServerReadTimeoutSecs  = 15
	dfltListenPort             = 8080
	dfltLanguage               = "en"
	dfltTimeZone               = "Europe/Prague"
	dfltPosScheme              = pos.SchemePPTagset
)

type LocaleConf struct {
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
}

type LocalesConf []LocaleConf

func (conf LocalesConf) SupportsLocale(name string) bool {
	elms := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' })
	if len(elms) == 0 {
		return false
	}
	for _, locConf := range conf {
		if locConf.Name == elms[0] {
			return true
		}
	}
	return false
}

func (conf LocalesConf) DefaultLocale() string {
	for _, v := range conf {
		if v.IsDefault {
			return v.Name
		}
	}
	return dfltLanguage
}

// Conf is a global configuration of the app
type Conf struct {
	ListenAddress          string           `json:"listenAddress"`
	PublicURL              string           `json:"publicUrl"`
	ListenPort             int              `json:"listenPort"`
	ServerReadTimeoutSecs  int              `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int              `json:"serverWriteTimeoutSecs"`
	CorsAllowedOrigins     []string         `json:"corsAllowedOrigins"`
	KorpusDB               *kdb.Conf        `json:"korpusDb"`
	Redis                  *rdb.Conf        `json:"redis"`
	Monitoring             *monitoring.Conf `json:"monitoring"`
	LogFile                string           `json:"logFile"`
	LogLevel               logging.LogLevel `json:"logLevel"`
	Locales                LocalesConf      `json:"locales"`
	TimeZone               string           `json:"timeZone"`
	DefaultPosScheme       pos.Scheme       `json:"defaultPosScheme"`

	srcPath string
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

func (conf *Conf) TimezoneLocation() *time.Location {
	// we can ignore the error here as we always call ValidateAndDefaults()
	// first (which also tries to load the location and report possible
	// error)
	loc, _ := time.LoadLocation(conf.TimeZone)
	return loc
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

// decodeConfig decodes data as JSON or, in case path ends
// with `.toml`, as TOML.
func decodeConfig(path string, data []byte) (*Conf, error) {
	var conf Conf
	conf.srcPath = path
	if strings.HasSuffix(strings.ToLower(path), ".toml") {
		if _, err := toml.Decode(string(data), &conf); err != nil {
			return nil, fmt.Errorf("failed to decode TOML config: %w", err)
		}
		return &conf, nil
	}
	if err := json.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("failed to decode JSON config: %w", err)
	}
	return &conf, nil
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	conf, err := decodeConfig(path, rawData)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return conf
}

func validateAndDefaults(conf *Conf) error {
	if conf.ListenPort == 0 {
		conf.ListenPort = dfltListenPort
		log.Warn().Msgf("listenPort not specified, using default: %d", dfltListenPort)
	}
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default: %d",
			dfltServerWriteTimeoutSecs,
		)
	}
	if conf.ServerReadTimeoutSecs == 0 {
		conf.ServerReadTimeoutSecs = dfltServerReadTimeoutSecs
		log.Warn().Msgf(
			"serverReadTimeoutSecs not specified, using default: %d",
			dfltServerReadTimeoutSecs,
		)
	}
	if conf.PublicURL == "" {
		conf.PublicURL = fmt.Sprintf("http://%s", conf.ListenAddress)
		log.Warn().Str("address", conf.PublicURL).Msg("publicUrl not set, using listenAddress")
	}

	// check locales conf.
	if len(conf.Locales) == 0 {
		conf.Locales = []LocaleConf{{
			Name:      dfltLanguage,
			IsDefault: true,
		}}
		log.Warn().Msgf("language not specified, using default: %s", conf.Locales.DefaultLocale())

	} else if !conf.Locales.SupportsLocale(dfltLanguage) {
		log.Warn().Msgf("missing `en` locale - adding")
		conf.Locales = append(conf.Locales, LocaleConf{
			Name: dfltLanguage,
		})
	}
	var numDefault int
	for _, v := range conf.Locales {
		if v.IsDefault {
			numDefault++
		}
	}
	if numDefault != 1 {
		return errors.New("exactly one locale must be set as default")
	}

	if conf.DefaultPosScheme == "" {
		conf.DefaultPosScheme = dfltPosScheme
		log.Warn().
			Str("defaultPosScheme", dfltPosScheme.String()).
			Msg("PoS scheme not specified, using default")
	}
	if err := conf.DefaultPosScheme.Validate(); err != nil {
		return fmt.Errorf("invalid defaultPosScheme: %w", err)
	}

	if err := conf.KorpusDB.ValidateAndDefaults("korpusDb"); err != nil {
		return err
	}
	if err := conf.Redis.ValidateAndDefaults("redis"); err != nil {
		return err
	}
	if conf.Redis == nil {
		log.Warn().Msg("redis not configured, results will not be cached")
	}
	if conf.Monitoring == nil {
		log.Warn().Msg("monitoring database not configured, upstream calls will not be stored")
	}

	if conf.TimeZone == "" {
		conf.TimeZone = dfltTimeZone
		log.Warn().
			Str("timeZone", dfltTimeZone).
			Msg("time zone not specified, using default")
	}
	if _, err := time.LoadLocation(conf.TimeZone); err != nil {
		return fmt.Errorf("invalid time zone: %w", err)
	}
	return nil
}

func ValidateAndDefaults(conf *Conf) {
	if err := validateAndDefaults(conf); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
}
