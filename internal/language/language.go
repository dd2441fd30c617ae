// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package language defines the supported content languages and small
// helpers for script direction and language detection.
package language

import "strings"

// DefaultCode is the language assumed when nothing else matches.
const DefaultCode = "en"

var supported = []string{"en", "fr", "es", "ar"}

// Supported returns the full set of supported language codes.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether code is a supported language.
func IsSupported(code string) bool {
	for _, s := range supported {
		if s == code {
			return true
		}
	}
	return false
}

// Normalize reduces a BCP 47-ish tag to a bare lowercase language code:
// "fr-FR" → "fr".
func Normalize(tag string) string {
	code, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(tag)), "-")
	return code
}

// IsRTL reports whether text contains right-to-left script characters
// (Arabic, Hebrew, and their presentation forms).
func IsRTL(text string) bool {
	for _, r := range text {
		switch {
		case r >= 0x0591 && r <= 0x07FF,
			r >= 0xFB1D && r <= 0xFDFD,
			r >= 0xFE70 && r <= 0xFEFC:
			return true
		}
	}
	return false
}

// Direction returns "rtl" or "ltr" for the given text.
func Direction(text string) string {
	if IsRTL(text) {
		return "rtl"
	}
	return "ltr"
}

// Detect guesses the language of a text sample. Arabic script wins,
// then French accented characters, otherwise English.
func Detect(text string) string {
	if text == "" {
		return DefaultCode
	}
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return "ar"
		}
	}
	if strings.ContainsAny(text, "àâäæçéèêëïîôùûüÿœÀÂÄÆÇÉÈÊËÏÎÔÙÛÜŸŒ") {
		return "fr"
	}
	return DefaultCode
}
