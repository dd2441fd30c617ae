package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// seedJoke is one development fixture row.
type seedJoke struct {
	title      string
	text       string
	categories []string
	language   string
}

var seedJokes = []seedJoke{
	{
		title:      "Why did the chicken cross the road",
		text:       "Why did the chicken cross the road? To get to the other side.",
		categories: []string{"Animals", "General"},
		language:   "en",
	},
	{
		title:      "A programmer's wife",
		text:       "A programmer's wife says: go to the store, buy a loaf of bread, and if they have eggs, buy a dozen. He comes back with 12 loaves of bread.",
		categories: []string{"Tech"},
		language:   "en",
	},
	{
		title:      "Le comble du jardinier",
		text:       "Quel est le comble pour un jardinier ? Raconter des salades.",
		categories: []string{"Food"},
		language:   "fr",
	},
	{
		text:       "لماذا لا تلعب الأسماك كرة السلة؟ لأنها تخاف من الشبكة.",
		categories: []string{"Animals", "Kids"},
		language:   "ar",
	},
	{
		title:      "Doctor, doctor",
		text:       "Doctor, doctor, I feel like a pair of curtains! Pull yourself together.",
		categories: []string{"General"},
		language:   "en",
	},
}

// Seed populates the database with a handful of sample jokes for
// development. It does nothing when the jokes table already has rows.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM jokes").Scan(&count); err != nil {
		return fmt.Errorf("seed check jokes: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	for _, j := range seedJokes {
		// Joke ids must not contain hyphens: the public URL codec reads the
		// id as everything after the last hyphen of the path segment.
		id := strings.ReplaceAll(uuid.NewString(), "-", "")
		_, err := db.Exec(`
			INSERT INTO jokes (id, title, text, categories, language, status)
			VALUES ($1, $2, $3, string_to_array($4, ','), $5, 'published')
		`, id, j.title, j.text, strings.Join(j.categories, ","), j.language)
		if err != nil {
			return fmt.Errorf("seed insert joke: %w", err)
		}
	}

	slog.Info("database seeded with sample jokes", "count", len(seedJokes))
	return nil
}
