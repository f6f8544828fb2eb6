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

package rdb

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
)

// MkKey creates a cache key for a function and its arguments
func MkKey(prefix, fn string, args ...any) string {
	argKey := ""
	for _, v := range args {
		argKey += fmt.Sprintf("%v\x1f", v)
	}
	hashKey := sha1.Sum([]byte(argKey))
	return fmt.Sprintf("%s:%s:%s", prefix, fn, hex.EncodeToString(hashKey[:]))
}

func (a *Cache) load(ctx context.Context, key string, dest any) bool {
	data, err := a.c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false

	} else if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to read cached result")
		return false
	}
	if err := msgpack.Unmarshal(data, dest); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to decode cached result")
		return false
	}
	return true
}

func (a *Cache) store(ctx context.Context, key string, value any) {
	data, err := msgpack.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to encode result for caching")
		return
	}
	if err := a.c.Set(ctx, key, data, a.ttl).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to store cached result")
	}
}

// GetOrCompute returns a cached value for fn+args or calls compute
// and stores its result. Errors are never cached and cache failures
// only fall back to computing. Concurrent requests for the same
// key share a single computation. The shared computation runs on
// a context detached from cancellation of any individual caller;
// a caller whose ctx is done stops waiting and gets ctx.Err().
func GetOrCompute[T any](
	ctx context.Context,
	cache *Cache,
	fn string,
	args []any,
	compute func(ctx context.Context) (T, error),
) (T, error) {
	if cache == nil {
		return compute(ctx)
	}
	var zero T
	key := MkKey(cache.prefix, fn, args...)
	var ans T
	if cache.load(ctx, key, &ans) {
		cache.hits.Add(1)
		return ans, nil
	}
	cache.misses.Add(1)
	sharedCtx := context.WithoutCancel(ctx)
	resCh := cache.group.DoChan(key, func() (any, error) {
		value, err := compute(sharedCtx)
		if err != nil {
			return value, err
		}
		cache.store(sharedCtx, key, value)
		return value, nil
	})
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-resCh:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
