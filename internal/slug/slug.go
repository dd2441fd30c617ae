// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary
// strings, including transliteration of accented Latin and Arabic text.
package slug

import (
	"regexp"
	"strings"
)

// DefaultMaxLength is the maximum slug length used by Generate.
const DefaultMaxLength = 60

// Fallback is returned when the input produces no usable characters.
const Fallback = "untitled"

var (
	// nonWord matches anything that isn't a word character, whitespace,
	// or a hyphen. Such runs become single spaces before hyphenation.
	nonWord = regexp.MustCompile(`[^\w\s-]`)
	// separators collapses any run of whitespace, underscores, and
	// hyphens into a single hyphen.
	separators = regexp.MustCompile(`[\s_-]+`)
)

// translit maps accented Latin and Arabic letters to ASCII
// approximations. Arabic letters without a single-letter equivalent
// use digraphs (th, kh, sh, ...).
var translit = map[rune]string{
	// Accented Latin
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'ä': "a", 'å': "a",
	'è': "e", 'é': "e", 'ê': "e", 'ë': "e",
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i",
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o", 'ö': "o",
	'ù': "u", 'ú': "u", 'û': "u", 'ü': "u",
	'ý': "y", 'ÿ': "y",
	'ñ': "n", 'ç': "c",
	'œ': "oe", 'æ': "ae",

	// Arabic
	'ا': "a", 'ب': "b", 'ت': "t", 'ث': "th", 'ج': "j",
	'ح': "h", 'خ': "kh", 'د': "d", 'ذ': "dh", 'ر': "r",
	'ز': "z", 'س': "s", 'ش': "sh", 'ص': "s", 'ض': "d",
	'ط': "t", 'ظ': "z", 'ع': "a", 'غ': "gh", 'ف': "f",
	'ق': "q", 'ك': "k", 'ل': "l", 'م': "m", 'ن': "n",
	'ه': "h", 'و': "w", 'ي': "y", 'ة': "h", 'ى': "a",
	'ء': "a", 'أ': "a", 'إ': "i", 'آ': "a", 'ؤ': "o",
	'ئ': "e",
}

// Generate creates a URL-friendly slug from the given string, limited
// to DefaultMaxLength characters.
// Example: "Pourquoi les poules traversent ?" → "pourquoi-les-poules-traversent"
func Generate(text string) string {
	return GenerateWithLimit(text, DefaultMaxLength)
}

// GenerateWithLimit creates a URL-friendly slug capped at maxLength
// characters, truncating at a word boundary when one falls in the last
// 30% of the limit. The result is never empty: inputs that reduce to
// nothing yield Fallback.
func GenerateWithLimit(text string, maxLength int) string {
	if text == "" {
		return Fallback
	}

	s := strings.ToLower(strings.TrimSpace(text))
	s = transliterate(s)
	s = stripPictographs(s)
	s = nonWord.ReplaceAllString(s, " ")
	s = separators.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	// The slug is pure ASCII [a-z0-9-] by now, so byte indexing is safe.
	if len(s) > maxLength {
		s = s[:maxLength]
		if i := strings.LastIndex(s, "-"); float64(i) > 0.7*float64(maxLength) {
			s = s[:i]
		}
	}

	s = strings.TrimRight(s, "-")
	if s == "" {
		return Fallback
	}
	return s
}

// transliterate replaces every mapped rune with its ASCII approximation.
func transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := translit[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// stripPictographs removes emoji and pictographic characters outright
// (no replacement space), covering the emoticon, symbol-and-pictograph,
// transport, miscellaneous-symbol, and dingbat blocks.
func stripPictographs(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 0x1F600 && r <= 0x1F64F,
			r >= 0x1F300 && r <= 0x1F5FF,
			r >= 0x1F680 && r <= 0x1F6FF,
			r >= 0x2600 && r <= 0x26FF,
			r >= 0x2700 && r <= 0x27BF:
			return -1
		}
		return r
	}, s)
}
