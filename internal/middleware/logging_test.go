package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestLogger(t *testing.T) {
	t.Run("calls next handler and returns correct status", func(t *testing.T) {
		var called bool
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		})

		handler := RequestLogger(inner)

		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if !called {
			t.Error("next handler should have been called")
		}
		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rr.Code)
		}
	})

	t.Run("captures non-200 status code", func(t *testing.T) {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		handler := RequestLogger(inner)

		req := httptest.NewRequest(http.MethodGet, "/not-found", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", rr.Code)
		}
	})

	t.Run("handles write without explicit WriteHeader", func(t *testing.T) {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Write body without calling WriteHeader — Go defaults to 200.
			w.Write([]byte("hello"))
		})

		handler := RequestLogger(inner)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rr.Code)
		}
		if rr.Body.String() != "hello" {
			t.Errorf("body: got %q, want %q", rr.Body.String(), "hello")
		}
	})

	t.Run("health endpoint passes through unwrapped", func(t *testing.T) {
		var gotWriter http.ResponseWriter
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotWriter = w
			w.WriteHeader(http.StatusOK)
		})

		handler := RequestLogger(inner)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if _, wrapped := gotWriter.(*statusRecorder); wrapped {
			t.Error("health requests should skip the logging wrapper")
		}
		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rr.Code)
		}
	})

	t.Run("works with POST requests", func(t *testing.T) {
		var gotMethod string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			w.WriteHeader(http.StatusCreated)
		})

		handler := RequestLogger(inner)

		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if gotMethod != http.MethodPost {
			t.Errorf("method: got %q, want %q", gotMethod, http.MethodPost)
		}
		if rr.Code != http.StatusCreated {
			t.Errorf("status: got %d, want 201", rr.Code)
		}
	})
}

// TestStatusRecorder tests the wrapper used by RequestLogger to verify
// it captures status codes and response sizes.
func TestStatusRecorder(t *testing.T) {
	t.Run("WriteHeader captures status code", func(t *testing.T) {
		rr := httptest.NewRecorder()
		sr := &statusRecorder{ResponseWriter: rr, status: http.StatusOK}

		sr.WriteHeader(http.StatusNotFound)

		if sr.status != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", sr.status)
		}
		if !sr.wrote {
			t.Error("wrote should be true after WriteHeader")
		}
	})

	t.Run("WriteHeader only captures first call", func(t *testing.T) {
		rr := httptest.NewRecorder()
		sr := &statusRecorder{ResponseWriter: rr, status: http.StatusOK}

		sr.WriteHeader(http.StatusNotFound)
		sr.WriteHeader(http.StatusInternalServerError) // Should be ignored.

		if sr.status != http.StatusNotFound {
			t.Errorf("status: got %d, want 404 (first call)", sr.status)
		}
	})

	t.Run("Write sets default 200 status and counts bytes", func(t *testing.T) {
		rr := httptest.NewRecorder()
		sr := &statusRecorder{ResponseWriter: rr, status: http.StatusOK}

		n, err := sr.Write([]byte("test"))
		if err != nil {
			t.Fatalf("Write error: %v", err)
		}
		if n != 4 {
			t.Errorf("bytes written: got %d, want 4", n)
		}
		if sr.status != http.StatusOK {
			t.Errorf("status: got %d, want 200", sr.status)
		}

		sr.Write([]byte("more"))
		if sr.bytes != 8 {
			t.Errorf("bytes counted: got %d, want 8", sr.bytes)
		}
	})
}
