// Package router sets up all HTTP routes and middleware chains for the
// Humoraq API. Static pages get explicit routes; the two-segment
// catch-all at the bottom serves canonical joke URLs, whose first
// segment is a category slug and cannot be matched by a fixed pattern.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"humoraq/internal/handlers"
	"humoraq/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLogger)

	// Write endpoints sit behind a per-IP limiter.
	writeLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check.
	r.Get("/health", public.Health)

	// Feed and discovery.
	r.Get("/", public.Feed)
	r.Get("/feed", public.FeedRedirect)
	r.Get("/spotlight", public.Spotlight)

	// Categories.
	r.Get("/categories", public.Categories)
	r.Get("/category/{slug}", public.CategoryPage)

	// Submissions and interactions.
	r.Get("/submit", public.SubmitMeta)
	r.Group(func(r chi.Router) {
		r.Use(writeLimiter.Middleware)
		r.Post("/submit", public.Submit)
		r.Post("/jokes/{id}/{kind}", public.Interaction)
	})

	// Videos and comedian blogs.
	r.Get("/videos", public.Videos)
	r.Get("/video/{id}", public.Video)
	r.Get("/blogs", public.Blogs)
	r.Get("/blogs/{slug}", public.BlogComedian)

	// Info pages.
	r.Get("/about", public.About)
	r.Get("/legal", public.Legal)

	// Deprecated joke URL shape; redirects home.
	r.Get("/joke/{id}", public.LegacyJoke)

	// Canonical joke URLs: /{categorySlug}-jokes/{titleSlug}-{id}.
	// Explicit routes above win over this param pair, so only unclaimed
	// two-segment paths reach the joke decoder.
	r.Get("/{a}/{b}", public.JokePage)

	// Everything else is a JSON 404.
	r.NotFound(notFoundHandler)

	return r
}

// notFoundHandler returns a JSON 404 response.
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"not found"}`))
}
