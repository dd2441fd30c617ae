package handlers

import (
	"reflect"
	"strings"
	"testing"
)

func TestValidateSubmission(t *testing.T) {
	valid := func() *submitRequest {
		return &submitRequest{
			Text:       "Why did the chicken cross the road? To get to the other side.",
			Categories: []string{"Animals"},
			Language:   "en",
		}
	}

	t.Run("accepts a valid submission", func(t *testing.T) {
		if msg := validateSubmission(valid()); msg != "" {
			t.Errorf("unexpected validation error: %s", msg)
		}
	})

	t.Run("ten characters is the floor", func(t *testing.T) {
		req := valid()
		req.Text = "0123456789"
		if msg := validateSubmission(req); msg != "" {
			t.Errorf("10-char text rejected: %s", msg)
		}
		req.Text = "012345678"
		if msg := validateSubmission(req); msg == "" {
			t.Error("9-char text accepted")
		}
	})

	t.Run("multibyte text counts runes not bytes", func(t *testing.T) {
		req := valid()
		req.Text = "مرحبا بكم جميعا" // 15 runes, more bytes
		req.Language = "ar"
		if msg := validateSubmission(req); msg != "" {
			t.Errorf("Arabic text rejected: %s", msg)
		}
	})

	t.Run("rejects oversized text", func(t *testing.T) {
		req := valid()
		req.Text = strings.Repeat("a", maxTextLen+1)
		if msg := validateSubmission(req); msg == "" {
			t.Error("oversized text accepted")
		}
	})

	t.Run("rejects oversized title", func(t *testing.T) {
		req := valid()
		req.Title = strings.Repeat("t", maxTitleLen+1)
		if msg := validateSubmission(req); msg == "" {
			t.Error("oversized title accepted")
		}
	})
}

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"en,fr", []string{"en", "fr"}},
		{" en , fr ", []string{"en", "fr"}},
		{"en,,fr,", []string{"en", "fr"}},
		{"", nil},
	}

	for _, tt := range tests {
		if got := splitCSV(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitCSV(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
