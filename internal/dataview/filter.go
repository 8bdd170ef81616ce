// Package dataview implements the derived-view pipeline over the article
// set: filter predicate, stable sort comparator, pagination slicing and the
// display formatting helpers the presentation layer consumes.
package dataview

import (
	"strings"

	"content-dashboard/internal/domain"
)

// Matches reports whether an article belongs in the filtered set. The four
// clauses combine with AND; an empty clause matches everything.
//
// Search is a case-insensitive substring match against the title, author is
// exact equality, and the date bounds are inclusive. ISO dates compare
// correctly as plain strings, so the bounds use string comparison; malformed
// dates get no special handling.
func Matches(a domain.Article, f domain.Filters) bool {
	if !strings.Contains(strings.ToLower(a.Title), strings.ToLower(f.Search)) {
		return false
	}
	if f.Author != "" && a.Author != f.Author {
		return false
	}
	if f.DateFrom != "" && a.PublishedDate < f.DateFrom {
		return false
	}
	if f.DateTo != "" && a.PublishedDate > f.DateTo {
		return false
	}
	return true
}

// Filter returns the articles that satisfy the criteria, in their original
// relative order.
func Filter(articles []domain.Article, f domain.Filters) []domain.Article {
	filtered := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if Matches(a, f) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
