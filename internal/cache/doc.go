// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

// Package cache provides a thread-safe in-memory TTL cache for API responses
// derived from the whole dataset (stats overview, map zones). Force summaries
// and predictions are never cached.
//
// Lookups are counted in the airdefence_cache_hits_total and
// airdefence_cache_misses_total collectors, labelled by the cache name.
// Concurrent misses for the same key are collapsed with singleflight so an
// expensive aggregate is computed once.
//
// Example:
//
//	c := cache.New("api", 10*time.Minute)
//	v, err := c.GetOrCompute(ctx, "stats:overview", func(ctx context.Context) (interface{}, error) {
//	    return db.StatsOverview(ctx)
//	})
package cache
