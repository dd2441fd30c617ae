// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package jokeurl implements the bidirectional mapping between a
// joke's database identity and its public SEO-friendly URL:
//
//	/{categorySlug}-jokes/{titleSlug}-{id}
//
// Title slugs contain hyphens themselves, so the id is always the
// token after the LAST hyphen of the second path segment. When the
// segment has no hyphen at all, the whole segment is the id.
package jokeurl

import (
	"errors"
	"strings"

	"humoraq/internal/category"
	"humoraq/internal/models"
	"humoraq/internal/slug"
)

// Decode failure modes. Callers pick the response (404, redirect)
// with errors.Is; Decode itself never panics.
var (
	ErrInvalidFormat   = errors.New("jokeurl: path does not match the joke URL shape")
	ErrInvalidCategory = errors.New("jokeurl: unknown category slug")
)

// Ref is the decoded identity carried by a canonical joke URL.
type Ref struct {
	CategorySlug string
	ID           string
}

const (
	pathSuffix = "-jokes"
	// textPreviewLength caps how much of the joke body feeds the title
	// slug when no title is set.
	textPreviewLength = 80
)

// Encode builds the canonical public path for a joke. Unknown category
// values fall back to the default slug; a joke without an id has no
// canonical page and maps to the site root.
func Encode(j *models.Joke) string {
	if j == nil || j.ID == "" {
		return "/"
	}

	catSlug, ok := category.SlugFor(j.PrimaryCategory())
	if !ok {
		catSlug = category.DefaultSlug
	}

	return "/" + catSlug + pathSuffix + "/" + TitleSlug(j) + "-" + j.ID
}

// TitleSlug derives the human-readable part of a joke URL from the
// title, falling back to a preview of the body text.
func TitleSlug(j *models.Joke) string {
	if j == nil {
		return slug.Fallback
	}
	if t := strings.TrimSpace(j.Title); t != "" {
		return slug.Generate(t)
	}
	if t := strings.TrimSpace(j.Text); t != "" {
		runes := []rune(t)
		if len(runes) > textPreviewLength {
			runes = runes[:textPreviewLength]
		}
		return slug.Generate(strings.TrimSpace(string(runes)))
	}
	return slug.Fallback
}

// Decode parses an incoming path back into a category slug and joke
// id. It returns ErrInvalidFormat when the path doesn't match the
// two-segment shape and ErrInvalidCategory when the shape matches but
// the category slug isn't in the registry.
func Decode(path string) (Ref, error) {
	segs := strings.Split(strings.Trim(path, "/"), "/")
	if len(segs) != 2 {
		return Ref{}, ErrInvalidFormat
	}

	catSlug, ok := strings.CutSuffix(segs[0], pathSuffix)
	if !ok || catSlug == "" || segs[1] == "" {
		return Ref{}, ErrInvalidFormat
	}
	if !category.IsValidSlug(catSlug) {
		return Ref{}, ErrInvalidCategory
	}

	id := segs[1]
	if i := strings.LastIndex(id, "-"); i >= 0 {
		id = id[i+1:]
	}
	if id == "" {
		return Ref{}, ErrInvalidFormat
	}

	return Ref{CategorySlug: strings.ToLower(catSlug), ID: id}, nil
}

// IsLegacy reports whether path uses one of the deprecated joke URL
// shapes (/joke/{id} or /joke-about-{categorySlug}/{id}). Legacy URLs
// don't carry enough information to rebuild the canonical URL without
// a store lookup, so the routing layer redirects them to the home
// page. The third deprecated shape, /{categorySlug}-jokes/{id} with no
// title slug, is indistinguishable from a canonical URL and is handled
// by Decode's trailing-token rule.
func IsLegacy(path string) bool {
	segs := strings.Split(strings.Trim(path, "/"), "/")
	if len(segs) != 2 || segs[1] == "" {
		return false
	}
	if segs[0] == "joke" {
		return true
	}
	return strings.HasPrefix(segs[0], "joke-about-")
}
