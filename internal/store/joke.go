// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"humoraq/internal/models"
)

// jokeColumns is the shared select list. The categories array is
// flattened to a comma-joined string because database/sql has no
// native scanner for text[]; scanJoke splits it back.
const jokeColumns = `
	id, title, text,
	array_to_string(categories, ','), category,
	language, status, author_name,
	likes, views, shares,
	created_at, updated_at`

// JokeStore handles all joke-related database operations.
type JokeStore struct {
	db *sql.DB
}

// NewJokeStore creates a new JokeStore with the given database connection.
func NewJokeStore(db *sql.DB) *JokeStore {
	return &JokeStore{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanJoke reads one row into a Joke. Rows written by the old schema
// carry a singular category field instead of the array; both shapes
// are normalized here so callers only ever see Categories.
func scanJoke(row scanner) (*models.Joke, error) {
	var (
		j          models.Joke
		categories string
		legacy     string
	)
	if err := row.Scan(
		&j.ID, &j.Title, &j.Text,
		&categories, &legacy,
		&j.Language, &j.Status, &j.AuthorName,
		&j.Likes, &j.Views, &j.Shares,
		&j.CreatedAt, &j.UpdatedAt,
	); err != nil {
		return nil, err
	}

	var list []string
	if categories != "" {
		list = strings.Split(categories, ",")
	}
	j.Categories = models.NormalizeCategories(list, legacy)
	return &j, nil
}

func (s *JokeStore) queryJokes(query string, args ...any) ([]models.Joke, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jokes []models.Joke
	for rows.Next() {
		j, err := scanJoke(rows)
		if err != nil {
			return nil, fmt.Errorf("scan joke: %w", err)
		}
		jokes = append(jokes, *j)
	}
	return jokes, rows.Err()
}

// ListPublished returns every published joke, newest first. The
// sitemap generator walks this to emit one URL per joke.
func (s *JokeStore) ListPublished() ([]models.Joke, error) {
	jokes, err := s.queryJokes(`
		SELECT `+jokeColumns+`
		FROM jokes
		WHERE status = 'published'
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list published jokes: %w", err)
	}
	return jokes, nil
}

// ListPublishedByLanguage returns published jokes in one language, newest first.
func (s *JokeStore) ListPublishedByLanguage(language string) ([]models.Joke, error) {
	jokes, err := s.queryJokes(`
		SELECT `+jokeColumns+`
		FROM jokes
		WHERE status = 'published' AND language = $1
		ORDER BY created_at DESC
	`, language)
	if err != nil {
		return nil, fmt.Errorf("list published jokes by language: %w", err)
	}
	return jokes, nil
}

// ListPublishedByCategory returns published jokes tagged with the given
// category value. Rows from the old schema match through the singular field.
func (s *JokeStore) ListPublishedByCategory(categoryValue string) ([]models.Joke, error) {
	jokes, err := s.queryJokes(`
		SELECT `+jokeColumns+`
		FROM jokes
		WHERE status = 'published' AND ($1 = ANY(categories) OR category = $1)
		ORDER BY created_at DESC
	`, categoryValue)
	if err != nil {
		return nil, fmt.Errorf("list published jokes by category: %w", err)
	}
	return jokes, nil
}

// CountPublished counts published jokes in one category and language.
func (s *JokeStore) CountPublished(categoryValue, language string) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM jokes
		WHERE status = 'published' AND language = $2
		  AND ($1 = ANY(categories) OR category = $1)
	`, categoryValue, language).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count published jokes: %w", err)
	}
	return count, nil
}

// LatestUpdatedForCategory returns the most recent modification time of
// any published joke in the category. The zero time means the category
// has no published jokes.
func (s *JokeStore) LatestUpdatedForCategory(categoryValue string) (time.Time, error) {
	var latest sql.NullTime
	err := s.db.QueryRow(`
		SELECT MAX(GREATEST(updated_at, created_at)) FROM jokes
		WHERE status = 'published' AND ($1 = ANY(categories) OR category = $1)
	`, categoryValue).Scan(&latest)
	if err != nil {
		return time.Time{}, fmt.Errorf("latest updated for category: %w", err)
	}
	if !latest.Valid {
		return time.Time{}, nil
	}
	return latest.Time, nil
}

// FindByID retrieves a joke by id regardless of status. Returns nil if not found.
func (s *JokeStore) FindByID(id string) (*models.Joke, error) {
	j, err := scanJoke(s.db.QueryRow(`
		SELECT `+jokeColumns+`
		FROM jokes WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find joke by id: %w", err)
	}
	return j, nil
}

// Feed returns a page of published jokes older than the cursor, newest
// first. A zero cursor starts from the top; language is optional.
func (s *JokeStore) Feed(language string, cursor time.Time, limit int) ([]models.Joke, error) {
	if cursor.IsZero() {
		cursor = time.Now().Add(time.Hour)
	}
	query := `
		SELECT ` + jokeColumns + `
		FROM jokes
		WHERE status = 'published' AND created_at < $1`
	args := []any{cursor}
	if language != "" {
		query += ` AND language = $2`
		args = append(args, language)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d`, limit)

	jokes, err := s.queryJokes(query, args...)
	if err != nil {
		return nil, fmt.Errorf("joke feed: %w", err)
	}
	return jokes, nil
}

// Create inserts a new joke and returns it with the generated id and
// timestamps. The id is a UUID with the hyphens stripped: the public
// URL codec extracts the id as the token after the last hyphen of the
// path segment, so ids must never contain one.
func (s *JokeStore) Create(j *models.Joke) (*models.Joke, error) {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if j.Status == "" {
		j.Status = models.JokeStatusPublished
	}
	categories := models.NormalizeCategories(j.Categories, "")

	result, err := scanJoke(s.db.QueryRow(`
		INSERT INTO jokes (id, title, text, categories, language, status, author_name)
		VALUES ($1, $2, $3, string_to_array($4, ','), $5, $6, $7)
		RETURNING `+jokeColumns+`
	`, id, j.Title, j.Text, strings.Join(categories, ","), j.Language, j.Status, j.AuthorName))
	if err != nil {
		return nil, fmt.Errorf("create joke: %w", err)
	}
	return result, nil
}

// TrackInteraction increments one engagement counter. Kind must be
// "like", "view" or "share".
func (s *JokeStore) TrackInteraction(id, kind string) error {
	var column string
	switch kind {
	case "like":
		column = "likes"
	case "view":
		column = "views"
	case "share":
		column = "shares"
	default:
		return fmt.Errorf("track interaction: unknown kind %q", kind)
	}

	_, err := s.db.Exec(`
		UPDATE jokes SET `+column+` = `+column+` + 1, updated_at = NOW()
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("track interaction: %w", err)
	}
	return nil
}

// Random picks one published joke at random, optionally filtered by
// language and category. Returns nil when nothing matches.
func (s *JokeStore) Random(language, categoryValue string) (*models.Joke, error) {
	query := `
		SELECT ` + jokeColumns + `
		FROM jokes
		WHERE status = 'published'`
	var args []any
	if language != "" {
		args = append(args, language)
		query += fmt.Sprintf(" AND language = $%d", len(args))
	}
	if categoryValue != "" {
		args = append(args, categoryValue)
		query += fmt.Sprintf(" AND ($%d = ANY(categories) OR category = $%d)", len(args), len(args))
	}
	query += ` ORDER BY random() LIMIT 1`

	j, err := scanJoke(s.db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("random joke: %w", err)
	}
	return j, nil
}
