// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"humoraq/internal/cache"
	"humoraq/internal/category"
	"humoraq/internal/comedian"
	"humoraq/internal/jokeurl"
	"humoraq/internal/language"
	"humoraq/internal/models"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 50
)

// JokeStore is the joke storage surface the public handlers need.
// *store.JokeStore satisfies it.
type JokeStore interface {
	Feed(language string, cursor time.Time, limit int) ([]models.Joke, error)
	FindByID(id string) (*models.Joke, error)
	ListPublishedByCategory(categoryValue string) ([]models.Joke, error)
	Create(j *models.Joke) (*models.Joke, error)
	TrackInteraction(id, kind string) error
	Random(language, categoryValue string) (*models.Joke, error)
}

// VideoStore is the video storage surface the public handlers need.
type VideoStore interface {
	ListAll() ([]models.Video, error)
	FindByID(id string) (*models.Video, error)
}

// CountProvider supplies cached per-category joke counts.
// *cache.CountCache satisfies it.
type CountProvider interface {
	GetAll(languages []string) (map[string]int, error)
	Invalidate()
}

// Public groups the JSON handlers for the public site. Responses for
// the heavier pages go through the L2 Valkey page cache; the cache may
// be nil, which disables it.
type Public struct {
	jokes     JokeStore
	videos    VideoStore
	counts    CountProvider
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group. pageCache may be nil
// when Valkey is not configured.
func NewPublic(jokes JokeStore, videos VideoStore, counts CountProvider, pageCache *cache.PageCache) *Public {
	return &Public{
		jokes:     jokes,
		videos:    videos,
		counts:    counts,
		pageCache: pageCache,
	}
}

// jokeResponse is a joke plus its canonical public URL.
type jokeResponse struct {
	models.Joke
	URL string `json:"url"`
}

func toJokeResponse(j models.Joke) jokeResponse {
	return jokeResponse{Joke: j, URL: jokeurl.Encode(&j)}
}

func toJokeResponses(jokes []models.Joke) []jokeResponse {
	out := make([]jokeResponse, 0, len(jokes))
	for _, j := range jokes {
		out = append(out, toJokeResponse(j))
	}
	return out
}

// Feed serves the home feed: published jokes newest first, paginated
// by a created_at cursor. The first page of each language's feed goes
// through the page cache; cursor pages always hit the store.
func (p *Public) Feed(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang != "" {
		lang = language.Normalize(lang)
		if !language.IsSupported(lang) {
			writeError(w, http.StatusBadRequest, "unsupported language")
			return
		}
	}

	limit := defaultFeedLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(n, maxFeedLimit)
	}

	var cursor time.Time
	if v := r.URL.Query().Get("cursor"); v != "" {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid cursor")
			return
		}
		cursor = t
	}

	ctx := r.Context()
	cacheable := cursor.IsZero() && limit == defaultFeedLimit
	if cacheable {
		if cached, ok := p.pageCache.Get(ctx, cache.FeedKey(lang)); ok {
			writeCachedJSON(w, cached)
			return
		}
	}

	jokes, err := p.jokes.Feed(lang, cursor, limit)
	if err != nil {
		slog.Error("feed query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := map[string]any{"jokes": toJokeResponses(jokes)}
	if len(jokes) == limit {
		resp["nextCursor"] = jokes[len(jokes)-1].CreatedAt.Format(time.RFC3339Nano)
	}
	body, err := json.Marshal(resp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if cacheable {
		p.pageCache.Set(ctx, cache.FeedKey(lang), body)
	}
	writeCachedJSON(w, body)
}

// FeedRedirect sends the legacy /feed path to the home feed.
func (p *Public) FeedRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusMovedPermanently)
}

// Spotlight picks one random published joke, optionally filtered by
// lang and category query parameters.
func (p *Public) Spotlight(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang != "" {
		lang = language.Normalize(lang)
	}
	catValue := ""
	if slug := r.URL.Query().Get("category"); slug != "" {
		v, ok := category.ValueFor(slug)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown category")
			return
		}
		catValue = v
	}

	j, err := p.jokes.Random(lang, catValue)
	if err != nil {
		slog.Error("spotlight query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if j == nil {
		writeError(w, http.StatusNotFound, "no jokes match")
		return
	}
	writeJSON(w, http.StatusOK, toJokeResponse(*j))
}

// Categories lists the category registry with cached joke counts. The
// langs query parameter narrows which languages count; it defaults to
// all supported languages.
func (p *Public) Categories(w http.ResponseWriter, r *http.Request) {
	langs := language.Supported()
	if v := r.URL.Query().Get("langs"); v != "" {
		langs = nil
		for _, l := range splitCSV(v) {
			l = language.Normalize(l)
			if !language.IsSupported(l) {
				writeError(w, http.StatusBadRequest, "unsupported language")
				return
			}
			langs = append(langs, l)
		}
	}

	countMap, err := p.counts.GetAll(langs)
	if err != nil {
		slog.Error("category counts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	type categoryResponse struct {
		category.Category
		Count int `json:"count"`
	}
	out := make([]categoryResponse, 0, len(category.All()))
	for _, c := range category.All() {
		out = append(out, categoryResponse{Category: c, Count: countMap[c.Value]})
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": out})
}

// CategoryPage serves one category's published jokes. Unknown slugs
// redirect to the category listing instead of erroring: stale links to
// renamed categories should land somewhere useful.
func (p *Public) CategoryPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	cat, ok := category.BySlug(slug)
	if !ok {
		http.Redirect(w, r, "/categories", http.StatusFound)
		return
	}

	ctx := r.Context()
	if cached, ok := p.pageCache.Get(ctx, cache.CategoryKey(cat.Slug)); ok {
		writeCachedJSON(w, cached)
		return
	}

	jokes, err := p.jokes.ListPublishedByCategory(cat.Value)
	if err != nil {
		slog.Error("category page query failed", "error", err, "category", cat.Value)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	body, err := json.Marshal(map[string]any{
		"category": cat,
		"jokes":    toJokeResponses(jokes),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	p.pageCache.Set(ctx, cache.CategoryKey(cat.Slug), body)
	writeCachedJSON(w, body)
}

// JokePage handles the two-segment catch-all route. Legacy joke URL
// shapes redirect to the home page; canonical URLs are decoded and the
// joke looked up by id. The category slug in the URL is cosmetic and
// not checked against the joke's stored categories, so old links keep
// working after a joke is recategorized.
func (p *Public) JokePage(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if jokeurl.IsLegacy(path) {
		http.Redirect(w, r, "/", http.StatusMovedPermanently)
		return
	}

	ref, err := jokeurl.Decode(path)
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	ctx := r.Context()
	if cached, ok := p.pageCache.Get(ctx, cache.JokeKey(ref.ID)); ok {
		writeCachedJSON(w, cached)
		return
	}

	j, err := p.jokes.FindByID(ref.ID)
	if err != nil {
		slog.Error("joke lookup failed", "error", err, "id", ref.ID)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if j == nil || !j.IsPublished() {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	// View tracking is best-effort; a failed increment never breaks the page.
	if err := p.jokes.TrackInteraction(j.ID, "view"); err != nil {
		slog.Warn("view tracking failed", "error", err, "id", j.ID)
	}

	body, err := json.Marshal(map[string]any{
		"joke":         toJokeResponse(*j),
		"canonicalUrl": jokeurl.Encode(j),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	p.pageCache.Set(ctx, cache.JokeKey(ref.ID), body)
	writeCachedJSON(w, body)
}

// LegacyJoke serves the deprecated /joke/{id} route with a permanent
// redirect home. The id alone cannot rebuild the canonical URL without
// a lookup, and these links are old enough that the home page is the
// better landing spot.
func (p *Public) LegacyJoke(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusMovedPermanently)
}

// Interaction handles POST /jokes/{id}/{kind} for like and share.
// Views are tracked implicitly by JokePage.
func (p *Public) Interaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	kind := chi.URLParam(r, "kind")
	if kind != "like" && kind != "share" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	j, err := p.jokes.FindByID(id)
	if err != nil {
		slog.Error("interaction lookup failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if j == nil || !j.IsPublished() {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := p.jokes.TrackInteraction(id, kind); err != nil {
		slog.Error("interaction tracking failed", "error", err, "id", id, "kind", kind)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	p.pageCache.InvalidatePage(r.Context(), cache.JokeKey(id))
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Videos lists all videos with their YouTube embed URLs.
func (p *Public) Videos(w http.ResponseWriter, r *http.Request) {
	videos, err := p.videos.ListAll()
	if err != nil {
		slog.Error("video listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	type videoResponse struct {
		models.Video
		EmbedURL     string `json:"embedUrl"`
		WatchURL     string `json:"watchUrl"`
		ThumbnailURL string `json:"thumbnailUrl"`
	}
	out := make([]videoResponse, 0, len(videos))
	for _, v := range videos {
		out = append(out, videoResponse{
			Video:        v,
			EmbedURL:     v.EmbedURL(),
			WatchURL:     v.WatchURL(),
			ThumbnailURL: v.ThumbnailURL(""),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"videos": out})
}

// Video serves one video by id.
func (p *Public) Video(w http.ResponseWriter, r *http.Request) {
	v, err := p.videos.FindByID(chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("video lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if v == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"video":    v,
		"embedUrl": v.EmbedURL(),
		"watchUrl": v.WatchURL(),
	})
}

// Blogs lists the comedian roster.
func (p *Public) Blogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"comedians": comedian.All()})
}

// BlogComedian serves one comedian page. Unknown slugs redirect to the
// roster, mirroring how unknown categories are handled.
func (p *Public) BlogComedian(w http.ResponseWriter, r *http.Request) {
	c, ok := comedian.BySlug(chi.URLParam(r, "slug"))
	if !ok {
		http.Redirect(w, r, "/blogs", http.StatusFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"comedian": c})
}

// About serves the about page content.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"title": "About Humoraq",
		"text":  "Humoraq is a multilingual collection of jokes in English, French, Spanish and Arabic, curated and submitted by readers.",
	})
}

// Legal serves the legal notice content.
func (p *Public) Legal(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"title": "Legal Notice",
		"text":  "Submitted jokes are published under the site's terms. Takedown requests are handled via the contact address.",
	})
}

// Health reports liveness for load balancers.
func (p *Public) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON serializes v with the proper content type.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", "error", err)
	}
}

// writeCachedJSON writes a pre-marshaled JSON body.
func writeCachedJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(body)
}

// writeError writes a JSON error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
