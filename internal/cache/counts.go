// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// counts.go provides an in-process TTL cache for per-category joke
// counts (L1). Counting requires scanning the jokes table per category
// and language, so the category listing page would otherwise hammer
// the database on every request.
package cache

import (
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"humoraq/internal/category"
	"humoraq/internal/models"
)

// DefaultCountTTL is how long a computed count stays fresh.
const DefaultCountTTL = 5 * time.Minute

// CountSource supplies the queries the count cache is built from.
// *store.JokeStore satisfies it.
type CountSource interface {
	CountPublished(categoryValue, language string) (int, error)
	ListPublishedByLanguage(language string) ([]models.Joke, error)
}

// CountCache caches published joke counts per (category, language set).
type CountCache struct {
	counts CountSource
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]countEntry
}

type countEntry struct {
	count     int
	createdAt time.Time
}

// NewCountCache creates a count cache over the given source. A zero
// ttl uses the default.
func NewCountCache(counts CountSource, ttl time.Duration) *CountCache {
	if ttl == 0 {
		ttl = DefaultCountTTL
	}
	return &CountCache{
		counts:  counts,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]countEntry),
	}
}

// countKey builds a deterministic key: the same category with the same
// language set always hits the same entry, regardless of slice order.
func countKey(categoryValue string, languages []string) string {
	langs := append([]string(nil), languages...)
	sort.Strings(langs)
	return categoryValue + "|" + strings.Join(langs, ",")
}

// GetCount returns the number of published jokes in one category
// across the given languages, recomputing when the cached entry is
// older than the TTL. Per-language counts run in parallel.
func (cc *CountCache) GetCount(categoryValue string, languages []string) (int, error) {
	key := countKey(categoryValue, languages)

	cc.mu.Lock()
	entry, ok := cc.entries[key]
	fresh := ok && cc.now().Sub(entry.createdAt) < cc.ttl
	cc.mu.Unlock()
	if fresh {
		return entry.count, nil
	}

	// Recompute outside the lock so a slow query doesn't serialize
	// every other category lookup behind it.
	perLang := make([]int, len(languages))
	var g errgroup.Group
	for i, lang := range languages {
		g.Go(func() error {
			n, err := cc.counts.CountPublished(categoryValue, lang)
			if err != nil {
				return err
			}
			perLang[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int
	for _, n := range perLang {
		total += n
	}

	cc.mu.Lock()
	cc.entries[key] = countEntry{count: total, createdAt: cc.now()}
	cc.mu.Unlock()
	return total, nil
}

// GetAll returns counts for every registry category across the given
// languages. Instead of one count query per (category, language) pair
// it scans each language once and tallies in memory, then primes the
// per-category entries so subsequent GetCount calls are warm.
func (cc *CountCache) GetAll(languages []string) (map[string]int, error) {
	totals := make(map[string]int, len(category.Values()))
	for _, v := range category.Values() {
		totals[v] = 0
	}

	var mu sync.Mutex
	var g errgroup.Group
	for _, lang := range languages {
		g.Go(func() error {
			jokes, err := cc.counts.ListPublishedByLanguage(lang)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			for _, j := range jokes {
				for _, c := range j.Categories {
					if category.IsValidValue(c) {
						totals[c]++
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := cc.now()
	cc.mu.Lock()
	for v, n := range totals {
		cc.entries[countKey(v, languages)] = countEntry{count: n, createdAt: now}
	}
	cc.mu.Unlock()
	return totals, nil
}

// Invalidate drops every cached count. Called after any submission is
// accepted; entries are cheap to rebuild and partial invalidation is
// not worth the bookkeeping.
func (cc *CountCache) Invalidate() {
	cc.mu.Lock()
	cc.entries = make(map[string]countEntry)
	cc.mu.Unlock()
}
