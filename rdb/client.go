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

package rdb

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultKeyPrefix = "freqgate"
	DefaultTTLSecs   = 3600
	DefaultPort      = 6379
)

type Conf struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	DB        int    `json:"db"`
	Password  string `json:"password"`
	KeyPrefix string `json:"keyPrefix"`
	TTLSecs   int    `json:"ttlSecs"`
}

func (conf *Conf) ValidateAndDefaults(confContext string) error {
	if conf == nil {
		return nil
	}
	if conf.Host == "" {
		return fmt.Errorf("missing `%s.host`", confContext)
	}
	if conf.Port == 0 {
		conf.Port = DefaultPort
		log.Warn().
			Int("port", conf.Port).
			Msgf("`%s.port` not specified, using default", confContext)
	}
	if conf.KeyPrefix == "" {
		conf.KeyPrefix = DefaultKeyPrefix
	}
	if conf.TTLSecs <= 0 {
		conf.TTLSecs = DefaultTTLSecs
		log.Warn().
			Int("ttlSecs", conf.TTLSecs).
			Msgf("`%s.ttlSecs` not specified, using default", confContext)
	}
	return nil
}

// Cache stores computed results in Redis. A nil *Cache is valid
// and means "no caching".
type Cache struct {
	c      *redis.Client
	prefix string
	ttl    time.Duration
	group  singleflight.Group
	hits   atomic.Int64
	misses atomic.Int64
}

func (a *Cache) TestConnection(timeout time.Duration) error {
	if a == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	tick := time.NewTicker(2 * time.Second)
	defer tick.Stop()
	for {
		err := a.c.Ping(ctx).Err()
		if err == nil {
			log.Info().Msg("Redis connection OK")
			return nil
		}
		log.Error().Err(err).Msg("failed to test Redis connection, retrying")
		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to connect to Redis: %w", err)
		case <-tick.C:
		}
	}
}

// Stats returns number of cache hits and misses
// since the start of the service.
func (a *Cache) Stats() (hits, misses int64) {
	if a == nil {
		return 0, 0
	}
	return a.hits.Load(), a.misses.Load()
}

func (a *Cache) Close() error {
	if a == nil {
		return nil
	}
	return a.c.Close()
}

func NewCache(conf *Conf) *Cache {
	if conf == nil {
		log.Warn().Msg("Redis not configured, results will not be cached")
		return nil
	}
	return &Cache{
		c: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		prefix: conf.KeyPrefix,
		ttl:    time.Duration(conf.TTLSecs) * time.Second,
	}
}
