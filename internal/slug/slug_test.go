// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import (
	"regexp"
	"strings"
	"testing"
)

// TestGenerate exercises the slug generator with a broad range of inputs
// covering typical titles, special characters, transliteration, edge
// cases, and boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Normal titles ---
		{
			name:  "simple two words",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "classic joke title",
			input: "Why did the chicken cross the road",
			want:  "why-did-the-chicken-cross-the-road",
		},
		{
			name:  "already lowercase",
			input: "already lowercase",
			want:  "already-lowercase",
		},
		{
			name:  "title with year",
			input: "Best Jokes of 2026",
			want:  "best-jokes-of-2026",
		},

		// --- Special characters ---
		{
			name:  "punctuation marks",
			input: "Knock, knock! Who's there?",
			want:  "knock-knock-who-s-there",
		},
		{
			name:  "ampersand and at sign",
			input: "Cats & Dogs @ the Vet",
			want:  "cats-dogs-the-vet",
		},
		{
			name:  "underscores collapse to hyphens",
			input: "snake_case_title",
			want:  "snake-case-title",
		},
		{
			name:  "hash and dollar",
			input: "Joke #42 costs $100",
			want:  "joke-42-costs-100",
		},

		// --- Transliteration ---
		{
			name:  "french accents",
			input: "Café résumé Noël",
			want:  "cafe-resume-noel",
		},
		{
			name:  "mixed accents and punctuation",
			input: "Crème brûlée & Döner",
			want:  "creme-brulee-doner",
		},
		{
			name:  "oe and ae ligatures",
			input: "Œuf ærø",
			want:  "oeuf-aer",
		},
		{
			name:  "arabic greeting",
			input: "مرحبا",
			want:  "mrhba",
		},
		{
			name:  "arabic with digraphs",
			input: "شكرا",
			want:  "shkra",
		},

		// --- Emoji and unsupported scripts ---
		{
			name:  "emoji stripped without gap",
			input: "Hello 😂 World",
			want:  "hello-world",
		},
		{
			name:  "pictograph only",
			input: "🎭🎪",
			want:  "untitled",
		},
		{
			name:  "cjk reduces to fallback",
			input: "你好",
			want:  "untitled",
		},

		// --- Whitespace and hyphen handling ---
		{
			name:  "surrounding whitespace",
			input: "  hello world  ",
			want:  "hello-world",
		},
		{
			name:  "multiple spaces collapsed",
			input: "hello    world",
			want:  "hello-world",
		},
		{
			name:  "leading and trailing hyphens",
			input: "--hello world--",
			want:  "hello-world",
		},
		{
			name:  "single hyphen preserved",
			input: "well-known fact",
			want:  "well-known-fact",
		},

		// --- Edge cases ---
		{
			name:  "empty string",
			input: "",
			want:  "untitled",
		},
		{
			name:  "only spaces",
			input: "     ",
			want:  "untitled",
		},
		{
			name:  "only symbols",
			input: "!!!???",
			want:  "untitled",
		},
		{
			name:  "only hyphens",
			input: "-----",
			want:  "untitled",
		},
		{
			name:  "single character",
			input: "A",
			want:  "a",
		},
		{
			name:  "all numbers",
			input: "123456",
			want:  "123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.input)
			if got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerateWithLimit_Truncation verifies length capping and the
// word-boundary cut that applies when a hyphen falls in the last 30%
// of the limit.
func TestGenerateWithLimit_Truncation(t *testing.T) {
	t.Run("word boundary cut", func(t *testing.T) {
		input := "the-quick-brown-fox-jumps-over-the-lazy-dog-and-keeps-running-forever"
		want := "the-quick-brown-fox-jumps-over-the-lazy-dog-and-keeps"
		if got := GenerateWithLimit(input, 60); got != want {
			t.Errorf("GenerateWithLimit(%q, 60) = %q, want %q", input, got, want)
		}
	})

	t.Run("hard cut without hyphen", func(t *testing.T) {
		input := strings.Repeat("a", 70)
		got := GenerateWithLimit(input, 60)
		if len(got) != 60 {
			t.Errorf("len = %d, want 60", len(got))
		}
		if got != strings.Repeat("a", 60) {
			t.Errorf("got %q, want 60 a's", got)
		}
	})

	t.Run("early hyphen keeps hard cut", func(t *testing.T) {
		// Only hyphen at index 2, well before 70% of the limit, so the
		// hard truncation stands.
		input := "ab-" + strings.Repeat("c", 80)
		got := GenerateWithLimit(input, 60)
		if len(got) != 60 {
			t.Errorf("len = %d, want 60", len(got))
		}
	})

	t.Run("no trailing hyphen after cut", func(t *testing.T) {
		input := strings.Repeat("abcde-", 20)
		got := GenerateWithLimit(input, 60)
		if strings.HasSuffix(got, "-") {
			t.Errorf("got %q, want no trailing hyphen", got)
		}
	})
}

// TestGenerate_Totality checks that every input, however hostile,
// produces a non-empty slug containing only [a-z0-9-] within the
// length limit.
func TestGenerate_Totality(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9-]+$`)

	inputs := []string{
		"",
		" ",
		"-",
		"!@#$%^&*()",
		"😀😀😀",
		"العمل الجاد يؤتي ثماره دائما في النهاية",
		"Une blague très drôle sur les chats et les chiens",
		"\t\n\r",
		"___",
		strings.Repeat("z", 500),
		"mixed العربية and English ensemble",
		string(rune(0xFFFD)),
	}

	for _, input := range inputs {
		got := Generate(input)
		if got == "" {
			t.Errorf("Generate(%q) returned empty string", input)
		}
		if !valid.MatchString(got) {
			t.Errorf("Generate(%q) = %q, contains invalid characters", input, got)
		}
		if len(got) > DefaultMaxLength {
			t.Errorf("Generate(%q) = %q, exceeds max length", input, got)
		}
	}
}

// TestGenerate_Idempotent verifies that generating a slug from an
// already valid slug produces the same result.
func TestGenerate_Idempotent(t *testing.T) {
	slugs := []string{
		"hello-world",
		"why-did-the-chicken-cross-the-road",
		"a",
		"123",
		"untitled",
	}

	for _, s := range slugs {
		t.Run(s, func(t *testing.T) {
			if got := Generate(s); got != s {
				t.Errorf("Generate(%q) = %q, want idempotent result %q", s, got, s)
			}
		})
	}
}
