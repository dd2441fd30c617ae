package handlers

import (
	"strings"
	"unicode/utf8"

	"humoraq/internal/category"
	"humoraq/internal/language"
)

// Validation limits for joke submissions.
const (
	minTextLen   = 10
	maxTextLen   = 5_000
	maxTitleLen  = 300
	maxAuthorLen = 100
)

// validateSubmission checks a submission and returns the first error
// found, or empty when the payload is acceptable. The request fields
// are expected to be trimmed and the language normalized already.
func validateSubmission(req *submitRequest) string {
	if utf8.RuneCountInString(req.Text) < minTextLen {
		return "Joke text must be at least 10 characters."
	}
	if utf8.RuneCountInString(req.Text) > maxTextLen {
		return "Joke text is too long (max 5,000 characters)."
	}
	if utf8.RuneCountInString(req.Title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(req.AuthorName) > maxAuthorLen {
		return "Author name is too long (max 100 characters)."
	}
	if !language.IsSupported(req.Language) {
		return "Unsupported language."
	}
	if len(req.Categories) == 0 {
		return "At least one category is required."
	}
	for _, c := range req.Categories {
		if !category.IsValidValue(c) {
			return "Unknown category: " + c + "."
		}
	}
	return ""
}

// splitCSV splits a comma-separated query value, dropping empty parts.
func splitCSV(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
