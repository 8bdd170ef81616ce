package dataview

import (
	"sort"
	"strings"
	"time"

	"content-dashboard/internal/domain"
)

const isoDate = "2006-01-02"

// Compare orders two articles under the given sort configuration, returning
// a negative, zero or positive value in the manner of strings.Compare.
//
// A "none" key compares everything equal, which together with a stable sort
// preserves the incoming order. Descending flips the sign of the comparison,
// not the input sequence, so ties keep their original relative order in both
// directions.
func Compare(a, b domain.Article, cfg domain.SortConfig) int {
	if cfg.Key == domain.SortNone {
		return 0
	}

	c := compareByKey(a, b, cfg.Key)
	if cfg.Direction == domain.Desc {
		return -c
	}
	return c
}

func compareByKey(a, b domain.Article, key domain.SortField) int {
	switch key {
	case domain.SortTitle:
		return strings.Compare(a.Title, b.Title)
	case domain.SortAuthor:
		return strings.Compare(a.Author, b.Author)
	case domain.SortStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	case domain.SortPublishedDate:
		return compareDates(a.PublishedDate, b.PublishedDate)
	case domain.SortViews:
		return compareInts(a.Views, b.Views)
	case domain.SortLikes:
		return compareInts(a.Likes, b.Likes)
	case domain.SortComments:
		return compareInts(a.Comments, b.Comments)
	}
	return 0
}

// compareDates treats the field as temporal rather than textual. Values that
// do not parse as ISO dates fall back to string comparison.
func compareDates(a, b string) int {
	ta, errA := time.Parse(isoDate, a)
	tb, errB := time.Parse(isoDate, b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	switch {
	case ta.Before(tb):
		return -1
	case ta.After(tb):
		return 1
	}
	return 0
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Sort returns a new slice ordered by the sort configuration. The sort is
// stable: ties on the chosen key, and the "none" key entirely, preserve the
// incoming relative order.
func Sort(articles []domain.Article, cfg domain.SortConfig) []domain.Article {
	sorted := make([]domain.Article, len(articles))
	copy(sorted, articles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Compare(sorted[i], sorted[j], cfg) < 0
	})
	return sorted
}
