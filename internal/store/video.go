// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"humoraq/internal/models"
)

// VideoStore handles video-related database operations.
type VideoStore struct {
	db *sql.DB
}

// NewVideoStore creates a new VideoStore with the given database connection.
func NewVideoStore(db *sql.DB) *VideoStore {
	return &VideoStore{db: db}
}

// ListAll returns every video, newest first.
func (s *VideoStore) ListAll() ([]models.Video, error) {
	rows, err := s.db.Query(`
		SELECT id, title, youtube_id, category, language, created_at, updated_at
		FROM videos
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer rows.Close()

	var videos []models.Video
	for rows.Next() {
		var v models.Video
		if err := rows.Scan(
			&v.ID, &v.Title, &v.YouTubeID, &v.Category, &v.Language,
			&v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// FindByID retrieves a video by id. Returns nil if not found.
func (s *VideoStore) FindByID(id string) (*models.Video, error) {
	v := &models.Video{}
	err := s.db.QueryRow(`
		SELECT id, title, youtube_id, category, language, created_at, updated_at
		FROM videos WHERE id = $1
	`, id).Scan(
		&v.ID, &v.Title, &v.YouTubeID, &v.Category, &v.Language,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find video by id: %w", err)
	}
	return v, nil
}
