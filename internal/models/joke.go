// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// JokeStatus represents the moderation state of a joke.
type JokeStatus string

const (
	JokeStatusPublished JokeStatus = "published"
	JokeStatusPending   JokeStatus = "pending"
	JokeStatusRejected  JokeStatus = "rejected"
)

// Joke is a published content item. IDs are opaque strings assigned by
// the content store. Categories holds canonical category values; the
// first entry is the primary category for URL purposes.
type Joke struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Text       string     `json:"text"`
	Categories []string   `json:"categories"`
	Language   string     `json:"language"`
	Status     JokeStatus `json:"status"`
	AuthorName string     `json:"authorName"`
	Likes      int        `json:"likes"`
	Views      int        `json:"views"`
	Shares     int        `json:"shares"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// IsPublished reports whether the joke is publicly visible.
func (j *Joke) IsPublished() bool {
	return j.Status == JokeStatusPublished
}

// PrimaryCategory returns the first category value, or "General" when
// the joke carries none.
func (j *Joke) PrimaryCategory() string {
	if len(j.Categories) > 0 {
		return j.Categories[0]
	}
	return "General"
}

// LastModified returns the freshness signal used for sitemap lastmod:
// UpdatedAt when set, otherwise CreatedAt.
func (j *Joke) LastModified() time.Time {
	if !j.UpdatedAt.IsZero() {
		return j.UpdatedAt
	}
	return j.CreatedAt
}

// NormalizeCategories maps the two stored document shapes onto one
// canonical slice: the current categories array wins, the legacy
// singular category field is wrapped, and documents with neither get
// "General". All old-vs-new shape branching lives here.
func NormalizeCategories(categories []string, legacy string) []string {
	if len(categories) > 0 {
		return categories
	}
	if legacy != "" {
		return []string{legacy}
	}
	return []string{"General"}
}
