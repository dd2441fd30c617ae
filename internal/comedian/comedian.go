// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package comedian holds the static comedian biography registry served
// under /blogs/{slug}. Bios are build-time content with no stored
// modification timestamps.
package comedian

import "strings"

// Era groups comedians on the blog index page.
type Era string

const (
	EraClassic       Era = "classic"
	EraModern        Era = "modern"
	EraInternational Era = "international"
)

// Comedian is one biography entry.
type Comedian struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Era  Era    `json:"era"`
}

var comedians = []Comedian{
	// Classic
	{Slug: "eddie-murphy", Name: "Eddie Murphy", Era: EraClassic},
	{Slug: "charlie-chaplin", Name: "Charlie Chaplin", Era: EraClassic},
	{Slug: "jim-carrey", Name: "Jim Carrey", Era: EraClassic},
	{Slug: "robin-williams", Name: "Robin Williams", Era: EraClassic},
	{Slug: "lucille-ball", Name: "Lucille Ball", Era: EraClassic},
	{Slug: "richard-pryor", Name: "Richard Pryor", Era: EraClassic},
	{Slug: "george-carlin", Name: "George Carlin", Era: EraClassic},
	{Slug: "whoopi-goldberg", Name: "Whoopi Goldberg", Era: EraClassic},
	{Slug: "steve-martin", Name: "Steve Martin", Era: EraClassic},
	{Slug: "chris-rock", Name: "Chris Rock", Era: EraClassic},

	// Modern
	{Slug: "dave-chappelle", Name: "Dave Chappelle", Era: EraModern},
	{Slug: "kevin-hart", Name: "Kevin Hart", Era: EraModern},
	{Slug: "ricky-gervais", Name: "Ricky Gervais", Era: EraModern},
	{Slug: "bill-burr", Name: "Bill Burr", Era: EraModern},
	{Slug: "ali-wong", Name: "Ali Wong", Era: EraModern},
	{Slug: "trevor-noah", Name: "Trevor Noah", Era: EraModern},
	{Slug: "amy-schumer", Name: "Amy Schumer", Era: EraModern},
	{Slug: "hasan-minhaj", Name: "Hasan Minhaj", Era: EraModern},
	{Slug: "john-mulaney", Name: "John Mulaney", Era: EraModern},
	{Slug: "bo-burnham", Name: "Bo Burnham", Era: EraModern},

	// International
	{Slug: "adel-imam", Name: "Adel Imam", Era: EraInternational},
	{Slug: "gad-elmaleh", Name: "Gad Elmaleh", Era: EraInternational},
	{Slug: "jamel-debbouze", Name: "Jamel Debbouze", Era: EraInternational},
	{Slug: "paul-mirabel", Name: "Paul Mirabel", Era: EraInternational},
	{Slug: "florence-foresti", Name: "Florence Foresti", Era: EraInternational},
}

var bySlug = func() map[string]Comedian {
	m := make(map[string]Comedian, len(comedians))
	for _, c := range comedians {
		m[c.Slug] = c
	}
	return m
}()

// All returns every comedian in display order.
func All() []Comedian {
	out := make([]Comedian, len(comedians))
	copy(out, comedians)
	return out
}

// BySlug looks up a comedian by slug, case-insensitively.
func BySlug(slug string) (Comedian, bool) {
	c, ok := bySlug[strings.ToLower(slug)]
	return c, ok
}

// IsValidSlug reports whether slug belongs to a known comedian.
func IsValidSlug(slug string) bool {
	_, ok := bySlug[strings.ToLower(slug)]
	return ok
}

// Slugs returns every comedian slug, used by the sitemap generator.
func Slugs() []string {
	out := make([]string, len(comedians))
	for i, c := range comedians {
		out[i] = c.Slug
	}
	return out
}
