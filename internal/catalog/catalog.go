// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog holds the in-memory filtering, searching and sorting the
// public site applies to the set of published tutorials. Every function
// returns a new slice and leaves its input untouched.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"interviewcms/internal/models"
	"interviewcms/internal/slug"
)

// Sort orders accepted by Sort.
const (
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortPopular = "popular"
	SortTitle   = "title"
)

// FeaturedLimit caps the number of tutorials Featured returns.
const FeaturedLimit = 6

// DefaultRecent is the number of tutorials Recent returns for a non-positive n.
const DefaultRecent = 5

// Search returns tutorials whose title, description, category or any tag
// contains term, ignoring case. A blank term matches nothing.
func Search(items []models.Tutorial, term string) []models.Tutorial {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return []models.Tutorial{}
	}
	return filter(items, func(t models.Tutorial) bool {
		if contains(t.Title, term) || contains(t.Description, term) || contains(t.Category, term) {
			return true
		}
		return slices.ContainsFunc(t.Tags, func(tag string) bool { return contains(tag, term) })
	})
}

func contains(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}

// FilterByDifficulty keeps tutorials of difficulty d. An empty d keeps all.
func FilterByDifficulty(items []models.Tutorial, d models.Difficulty) []models.Tutorial {
	if d == "" {
		return slices.Clone(items)
	}
	return filter(items, func(t models.Tutorial) bool { return t.Difficulty == d })
}

// FilterByCategory keeps tutorials whose categorySlug equals categorySlug.
// An empty categorySlug keeps all.
func FilterByCategory(items []models.Tutorial, categorySlug string) []models.Tutorial {
	if categorySlug == "" {
		return slices.Clone(items)
	}
	return filter(items, func(t models.Tutorial) bool { return t.CategorySlug == categorySlug })
}

// FilterByTag keeps tutorials carrying tag. Tags compare by their slug form,
// so "two-pointers" matches a tutorial tagged "Two Pointers".
func FilterByTag(items []models.Tutorial, tag string) []models.Tutorial {
	want := slug.Generate(tag)
	if want == "" {
		return []models.Tutorial{}
	}
	return filter(items, func(t models.Tutorial) bool {
		return slices.ContainsFunc(t.Tags, func(have string) bool { return slug.Generate(have) == want })
	})
}

// Sort returns items in the given order. Unknown orders fall back to newest.
// Ties keep their input order.
func Sort(items []models.Tutorial, order string) []models.Tutorial {
	out := slices.Clone(items)
	var less func(a, b models.Tutorial) int
	switch order {
	case SortOldest:
		less = func(a, b models.Tutorial) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case SortPopular:
		less = func(a, b models.Tutorial) int { return cmp.Compare(b.Views, a.Views) }
	case SortTitle:
		less = func(a, b models.Tutorial) int {
			return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	default:
		less = func(a, b models.Tutorial) int { return b.CreatedAt.Compare(a.CreatedAt) }
	}
	slices.SortStableFunc(out, less)
	return out
}

// Featured returns up to FeaturedLimit featured tutorials in input order.
func Featured(items []models.Tutorial) []models.Tutorial {
	out := filter(items, func(t models.Tutorial) bool { return t.Featured })
	if len(out) > FeaturedLimit {
		out = out[:FeaturedLimit]
	}
	return out
}

// Recent returns the n most recently published tutorials. Tutorials that
// were never published sort last.
func Recent(items []models.Tutorial, n int) []models.Tutorial {
	if n <= 0 {
		n = DefaultRecent
	}
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b models.Tutorial) int {
		switch {
		case a.PublishedAt == nil && b.PublishedAt == nil:
			return 0
		case a.PublishedAt == nil:
			return 1
		case b.PublishedAt == nil:
			return -1
		}
		return b.PublishedAt.Compare(*a.PublishedAt)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func filter(items []models.Tutorial, keep func(models.Tutorial) bool) []models.Tutorial {
	out := make([]models.Tutorial, 0, len(items))
	for _, t := range items {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
