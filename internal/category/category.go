// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package category is the single source of truth for joke categories.
// The registry is fixed at build time: values are what joke documents
// store, slugs are what URLs carry. Both are unique across the table.
package category

import "strings"

// Category describes one registry entry. Value is the canonical
// identifier stored on joke documents; Slug is the URL token.
type Category struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Slug        string `json:"slug"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// DefaultSlug is used when a joke carries a category value the
// registry doesn't know.
const DefaultSlug = "general"

var categories = []Category{
	{
		Value:       "General",
		Label:       "General",
		Slug:        "general",
		Icon:        "bi-chat-square-text",
		Color:       "info",
		Description: "Enjoy the best funny jokes of all kinds, from classic humor to trending jokes loved by everyone.",
	},
	{
		Value:       "Relationships",
		Label:       "Relationships",
		Slug:        "relationships",
		Icon:        "bi-heart",
		Color:       "danger",
		Description: "Funny relationship jokes about love, dating, couples, and the ups and downs of romantic life.",
	},
	{
		Value:       "Family",
		Label:       "Family",
		Slug:        "family",
		Icon:        "bi-people",
		Color:       "success",
		Description: "Relatable family jokes about parents, kids, marriage, and everyday family life moments.",
	},
	{
		Value:       "Work",
		Label:       "Work",
		Slug:        "work",
		Icon:        "bi-briefcase",
		Color:       "primary",
		Description: "Hilarious work jokes about office life, coworkers, bosses, meetings, and workplace struggles.",
	},
	{
		Value:       "School",
		Label:       "School",
		Slug:        "school",
		Icon:        "bi-mortarboard",
		Color:       "warning",
		Description: "Funny school jokes about students, teachers, exams, homework, and classroom life.",
	},
	{
		Value:       "Friends",
		Label:       "Friends",
		Slug:        "friends",
		Icon:        "bi-person-hearts",
		Color:       "info",
		Description: "Laugh with funny friends jokes about friendship, social life, best friends, and shared memories.",
	},
	{
		Value:       "Adult",
		Label:       "Adult",
		Slug:        "adult",
		Icon:        "bi-shield-exclamation",
		Color:       "dark",
		Description: "Adult humor jokes for mature audiences, featuring bold, edgy, and uncensored comedy.",
	},
	{
		Value:       "Animals",
		Label:       "Animals",
		Slug:        "animals",
		Icon:        "bi-bug",
		Color:       "warning",
		Description: "Cute and funny animal jokes about pets, dogs, cats, and hilarious animal behavior.",
	},
	{
		Value:       "Food",
		Label:       "Food",
		Slug:        "food",
		Icon:        "bi-cup-hot",
		Color:       "danger",
		Description: "Delicious food jokes about cooking, eating, restaurants, snacks, and foodie life.",
	},
	{
		Value:       "Tech",
		Label:       "Tech",
		Slug:        "tech",
		Icon:        "bi-code-slash",
		Color:       "primary",
		Description: "Tech jokes about programming, developers, coding bugs, computers, and modern technology.",
	},
	{
		Value:       "Sports",
		Label:       "Sports",
		Slug:        "sports",
		Icon:        "bi-trophy",
		Color:       "success",
		Description: "Funny sports jokes about football, fitness, athletes, competitions, and sports fans.",
	},
	{
		Value:       "Old People",
		Label:       "Old People",
		Slug:        "senior",
		Icon:        "bi-clock-history",
		Color:       "secondary",
		Description: "Lighthearted jokes about aging, seniors, retirement, and funny moments of getting older.",
	},
	{
		Value:       "Women",
		Label:       "Women",
		Slug:        "women",
		Icon:        "bi-person-standing-dress",
		Color:       "danger",
		Description: "Humorous jokes inspired by women, daily life situations, and modern lifestyle humor.",
	},
	{
		Value:       "Men",
		Label:       "Men",
		Slug:        "men",
		Icon:        "bi-person-standing",
		Color:       "primary",
		Description: "Funny jokes about men, everyday struggles, relationships, and modern man life.",
	},
	{
		Value:       "Kids",
		Label:       "Kids",
		Slug:        "kids",
		Icon:        "bi-emoji-smile",
		Color:       "success",
		Description: "Fun, clean, and family-friendly kids jokes perfect for children, parents, and all ages.",
	},
}

// Index maps built once at init so lookups are O(1).
var (
	byValue = make(map[string]Category, len(categories))
	bySlug  = make(map[string]Category, len(categories))
)

func init() {
	for _, c := range categories {
		byValue[c.Value] = c
		bySlug[c.Slug] = c
	}
}

// All returns every registry category in display order.
func All() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ByValue looks up a category by its canonical value (e.g. "Tech").
func ByValue(value string) (Category, bool) {
	c, ok := byValue[value]
	return c, ok
}

// BySlug looks up a category by its URL slug, case-insensitively.
func BySlug(slug string) (Category, bool) {
	c, ok := bySlug[strings.ToLower(slug)]
	return c, ok
}

// IsValidValue reports whether value exists in the registry.
func IsValidValue(value string) bool {
	_, ok := byValue[value]
	return ok
}

// IsValidSlug reports whether slug exists in the registry.
func IsValidSlug(slug string) bool {
	_, ok := bySlug[strings.ToLower(slug)]
	return ok
}

// SlugFor converts a canonical value to its URL slug.
func SlugFor(value string) (string, bool) {
	c, ok := byValue[value]
	if !ok {
		return "", false
	}
	return c.Slug, true
}

// ValueFor converts a URL slug to its canonical value.
func ValueFor(slug string) (string, bool) {
	c, ok := bySlug[strings.ToLower(slug)]
	if !ok {
		return "", false
	}
	return c.Value, true
}

// Values returns every canonical category value.
func Values() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = c.Value
	}
	return out
}

// Slugs returns every category URL slug.
func Slugs() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = c.Slug
	}
	return out
}
