// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"humoraq/internal/category"
	"humoraq/internal/language"
	"humoraq/internal/models"
)

// submitRequest is the joke submission payload.
type submitRequest struct {
	Title      string   `json:"title"`
	Text       string   `json:"text"`
	Categories []string `json:"categories"`
	Language   string   `json:"language"`
	AuthorName string   `json:"authorName"`
}

// SubmitMeta serves the data the submission form needs: the category
// registry and the supported languages.
func (p *Public) SubmitMeta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": category.All(),
		"languages":  language.Supported(),
	})
}

// Submit accepts a new joke. Accepted submissions invalidate both the
// count cache and the page cache, since category counts, feeds and
// category pages all change.
func (p *Public) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Text = strings.TrimSpace(req.Text)
	req.AuthorName = strings.TrimSpace(req.AuthorName)
	req.Language = language.Normalize(req.Language)

	if msg := validateSubmission(&req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := p.jokes.Create(&models.Joke{
		Title:      req.Title,
		Text:       req.Text,
		Categories: req.Categories,
		Language:   req.Language,
		AuthorName: req.AuthorName,
	})
	if err != nil {
		slog.Error("joke submission failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	p.counts.Invalidate()
	p.pageCache.InvalidateAll(r.Context())

	slog.Info("joke submitted",
		"id", created.ID,
		"language", created.Language,
		"categories", strings.Join(created.Categories, ","),
	)
	writeJSON(w, http.StatusCreated, map[string]any{
		"joke": toJokeResponse(*created),
	})
}
