package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"humoraq/internal/handlers"
	"humoraq/internal/models"
)

type stubJokes struct {
	jokes map[string]*models.Joke
}

func (s *stubJokes) Feed(language string, cursor time.Time, limit int) ([]models.Joke, error) {
	return nil, nil
}
func (s *stubJokes) FindByID(id string) (*models.Joke, error) { return s.jokes[id], nil }
func (s *stubJokes) ListPublishedByCategory(categoryValue string) ([]models.Joke, error) {
	return nil, nil
}
func (s *stubJokes) Create(j *models.Joke) (*models.Joke, error)       { return j, nil }
func (s *stubJokes) TrackInteraction(id, kind string) error            { return nil }
func (s *stubJokes) Random(language, categoryValue string) (*models.Joke, error) {
	return nil, nil
}

type stubVideos struct{}

func (stubVideos) ListAll() ([]models.Video, error)            { return nil, nil }
func (stubVideos) FindByID(id string) (*models.Video, error)   { return nil, nil }

type stubCounts struct{}

func (stubCounts) GetAll(languages []string) (map[string]int, error) {
	return map[string]int{}, nil
}
func (stubCounts) Invalidate() {}

func testRouter() http.Handler {
	jokes := &stubJokes{jokes: map[string]*models.Joke{
		"abc123": {
			ID: "abc123", Title: "Routed joke",
			Categories: []string{"Tech"}, Status: models.JokeStatusPublished,
		},
	}}
	public := handlers.NewPublic(jokes, stubVideos{}, stubCounts{}, nil)
	return New(public)
}

func TestRouting(t *testing.T) {
	r := testRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantLoc    string
	}{
		{"home feed", http.MethodGet, "/", http.StatusOK, ""},
		{"health", http.MethodGet, "/health", http.StatusOK, ""},
		{"feed redirects home", http.MethodGet, "/feed", http.StatusMovedPermanently, "/"},
		{"categories", http.MethodGet, "/categories", http.StatusOK, ""},
		{"category page wins over catch-all", http.MethodGet, "/category/tech", http.StatusOK, ""},
		{"unknown category redirects", http.MethodGet, "/category/quantum", http.StatusFound, "/categories"},
		{"canonical joke via catch-all", http.MethodGet, "/tech-jokes/routed-joke-abc123", http.StatusOK, ""},
		{"legacy joke id route", http.MethodGet, "/joke/abc123", http.StatusMovedPermanently, "/"},
		{"legacy joke-about shape", http.MethodGet, "/joke-about-tech/abc123", http.StatusMovedPermanently, "/"},
		{"garbage two-segment path", http.MethodGet, "/not-a-category/thing", http.StatusNotFound, ""},
		{"blogs roster", http.MethodGet, "/blogs", http.StatusOK, ""},
		{"submit metadata", http.MethodGet, "/submit", http.StatusOK, ""},
		{"videos", http.MethodGet, "/videos", http.StatusOK, ""},
		{"about", http.MethodGet, "/about", http.StatusOK, ""},
		{"legal", http.MethodGet, "/legal", http.StatusOK, ""},
		{"deep path is 404", http.MethodGet, "/a/b/c", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantLoc != "" {
				if loc := rr.Header().Get("Location"); loc != tt.wantLoc {
					t.Errorf("Location = %q, want %q", loc, tt.wantLoc)
				}
			}
		})
	}
}

func TestNotFoundIsJSON(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/nope/nope/nope", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q, want JSON", ct)
	}
}
