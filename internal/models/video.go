// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"time"
)

// Video is a content-store item pointing at a hosted video. YouTubeID
// is the external player id; the document id stays our own.
type Video struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	YouTubeID string    `json:"youtubeId"`
	Category  string    `json:"category"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LastModified returns UpdatedAt when set, otherwise CreatedAt.
func (v *Video) LastModified() time.Time {
	if !v.UpdatedAt.IsZero() {
		return v.UpdatedAt
	}
	return v.CreatedAt
}

// EmbedURL returns the embeddable player URL.
func (v *Video) EmbedURL() string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s?rel=0&modestbranding=1", v.YouTubeID)
}

// WatchURL returns the direct watch link.
func (v *Video) WatchURL() string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", v.YouTubeID)
}

// ThumbnailURL returns the thumbnail for the given quality
// (default, mqdefault, hqdefault, sddefault, maxresdefault).
func (v *Video) ThumbnailURL(quality string) string {
	if quality == "" {
		quality = "hqdefault"
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/%s.jpg", v.YouTubeID, quality)
}
