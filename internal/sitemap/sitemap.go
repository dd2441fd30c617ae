// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sitemap builds the full sitemap.xml for the site: static
// routes, category pages, comedian pages, every published joke and
// every video, each URL annotated with hreflang alternates for the
// supported languages.
package sitemap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"humoraq/internal/category"
	"humoraq/internal/comedian"
	"humoraq/internal/jokeurl"
	"humoraq/internal/language"
	"humoraq/internal/models"
)

// staticRoute is one fixed site page with its crawl hints.
type staticRoute struct {
	path       string
	changefreq string
	priority   string
}

// staticRoutes are emitted first, ordered by descending priority.
var staticRoutes = []staticRoute{
	{"/", "daily", "1.0"},
	{"/feed", "hourly", "0.9"},
	{"/spotlight", "daily", "0.8"},
	{"/videos", "daily", "0.8"},
	{"/blogs", "weekly", "0.8"},
	{"/categories", "weekly", "0.7"},
	{"/submit", "monthly", "0.5"},
	{"/about", "monthly", "0.4"},
	{"/legal", "monthly", "0.3"},
}

// JokeSource supplies the joke queries the generator needs.
// *store.JokeStore satisfies it.
type JokeSource interface {
	ListPublished() ([]models.Joke, error)
	LatestUpdatedForCategory(categoryValue string) (time.Time, error)
}

// VideoSource supplies the video listing. *store.VideoStore satisfies it.
type VideoSource interface {
	ListAll() ([]models.Video, error)
}

// Stats summarizes one generation run.
type Stats struct {
	Total       int
	Jokes       int
	Videos      int
	PerCategory map[string]int
}

// Generator assembles sitemap XML from the content stores.
type Generator struct {
	jokes   JokeSource
	videos  VideoSource
	baseURL string
	now     func() time.Time
}

// New creates a Generator. The base URL must carry no trailing slash.
func New(jokes JokeSource, videos VideoSource, baseURL string) *Generator {
	return &Generator{
		jokes:   jokes,
		videos:  videos,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// Generate builds the complete sitemap document. Only the joke
// enumeration is mandatory: a failing joke query aborts the run.
// Category lastmod queries and the video listing are best-effort and
// log a warning on failure, so a broken lastmod query or video table
// never blocks search indexing of the jokes.
func (g *Generator) Generate() (string, Stats, error) {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9" xmlns:xhtml="http://www.w3.org/1999/xhtml">` + "\n")

	stats := Stats{PerCategory: make(map[string]int)}
	today := formatDate(g.now())

	for _, r := range staticRoutes {
		g.writeURL(&b, g.baseURL+r.path, today, r.changefreq, r.priority)
		stats.Total++
	}

	g.writeCategories(&b, &stats, today)

	for _, c := range comedian.All() {
		g.writeURL(&b, g.baseURL+"/blogs/"+c.Slug, today, "monthly", "0.7")
		stats.Total++
	}

	jokes, err := g.jokes.ListPublished()
	if err != nil {
		return "", Stats{}, fmt.Errorf("sitemap list jokes: %w", err)
	}
	for _, j := range jokes {
		g.writeURL(&b, g.baseURL+jokeurl.Encode(&j), formatDate(j.LastModified()), "monthly", "0.6")
		stats.Total++
		stats.Jokes++
		stats.PerCategory[j.PrimaryCategory()]++
	}

	videos, err := g.videos.ListAll()
	if err != nil {
		slog.Warn("sitemap: video listing failed, continuing without videos", "error", err)
		videos = nil
	}
	for _, v := range videos {
		g.writeURL(&b, g.baseURL+"/video/"+v.ID, formatDate(v.LastModified()), "monthly", "0.5")
		stats.Total++
		stats.Videos++
	}

	b.WriteString("</urlset>\n")

	for cat, n := range stats.PerCategory {
		slog.Debug("sitemap category", "category", cat, "jokes", n)
	}
	slog.Info("sitemap generated",
		"urls", stats.Total,
		"jokes", stats.Jokes,
		"videos", stats.Videos,
	)
	return b.String(), stats, nil
}

// writeCategories emits one URL per registry category. The lastmod
// queries run in parallel; results land in an indexed slice so the
// output order stays the registry order regardless of which query
// finishes first. A failed lastmod query degrades that one category to
// the generation date; every category page still ends up in the sitemap.
func (g *Generator) writeCategories(b *strings.Builder, stats *Stats, today string) {
	cats := category.All()
	lastmods := make([]string, len(cats))

	var eg errgroup.Group
	for i, c := range cats {
		eg.Go(func() error {
			latest, err := g.jokes.LatestUpdatedForCategory(c.Value)
			switch {
			case err != nil:
				slog.Warn("sitemap: category lastmod query failed, using today", "category", c.Value, "error", err)
				lastmods[i] = today
			case latest.IsZero():
				lastmods[i] = today
			default:
				lastmods[i] = formatDate(latest)
			}
			return nil
		})
	}
	// The goroutines always return nil; Wait is only the join point.
	_ = eg.Wait()

	for i, c := range cats {
		g.writeURL(b, g.baseURL+"/category/"+c.Slug, lastmods[i], "weekly", "0.7")
		stats.Total++
	}
}

// writeURL appends one url entry with hreflang alternates for every
// supported language plus x-default. All alternates point at the same
// href; the site localizes in place rather than per-language paths.
func (g *Generator) writeURL(b *strings.Builder, loc, lastmod, changefreq, priority string) {
	b.WriteString("  <url>\n")
	fmt.Fprintf(b, "    <loc>%s</loc>\n", loc)
	fmt.Fprintf(b, "    <lastmod>%s</lastmod>\n", lastmod)
	fmt.Fprintf(b, "    <changefreq>%s</changefreq>\n", changefreq)
	fmt.Fprintf(b, "    <priority>%s</priority>\n", priority)
	for _, lang := range language.Supported() {
		fmt.Fprintf(b, "    <xhtml:link rel=\"alternate\" hreflang=\"%s\" href=\"%s\"/>\n", lang, loc)
	}
	fmt.Fprintf(b, "    <xhtml:link rel=\"alternate\" hreflang=\"x-default\" href=\"%s\"/>\n", loc)
	b.WriteString("  </url>\n")
}

// formatDate renders a sitemap lastmod value (UTC, date only).
func formatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// maxURLs is the sitemap protocol's per-file limit.
const maxURLs = 50000

// Validate checks structural consistency of a generated document.
// Mismatched url/loc/lastmod counts mean the writer itself is broken
// and return an error; softer issues come back as warnings.
func Validate(doc string) ([]string, error) {
	urls := strings.Count(doc, "<url>")
	locs := strings.Count(doc, "<loc>")
	lastmods := strings.Count(doc, "<lastmod>")

	if urls != locs || urls != lastmods {
		return nil, fmt.Errorf("sitemap validate: url/loc/lastmod counts diverge (%d/%d/%d)", urls, locs, lastmods)
	}

	var warnings []string
	wantHreflang := urls * (len(language.Supported()) + 1)
	if got := strings.Count(doc, "<xhtml:link"); got != wantHreflang {
		warnings = append(warnings, fmt.Sprintf("hreflang link count %d, expected %d", got, wantHreflang))
	}
	if urls > maxURLs {
		warnings = append(warnings, fmt.Sprintf("%d URLs exceed the %d per-file limit, split into a sitemap index", urls, maxURLs))
	}
	return warnings, nil
}

// WriteFile writes the document to disk, creating parent directories
// as needed.
func WriteFile(path, doc string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("sitemap mkdir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("sitemap write: %w", err)
	}
	return nil
}
