package dataview

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"content-dashboard/internal/domain"
)

// FormatNumber renders an engagement counter in compact form: 12540 becomes
// "12.5K", 1200000 becomes "1.2M".
func FormatNumber(n int) string {
	switch {
	case n >= 1000000:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	case n >= 1000:
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return strconv.Itoa(n)
}

// FormatDate renders an ISO date for display, e.g. "Jan 15, 2024". Values
// that do not parse are returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}

// FormatDayLabel renders an ISO date as a short chart axis label, e.g.
// "Jan 15". Values that do not parse are returned unchanged.
func FormatDayLabel(date string) string {
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 02")
}

// FormatMonthLabel renders a "2006-01" month key as "Jan 2006". Values that
// do not parse are returned unchanged.
func FormatMonthLabel(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("Jan 2006")
}

// UniqueAuthors returns the distinct author names in sorted order, for the
// author filter dropdown.
func UniqueAuthors(articles []domain.Article) []string {
	seen := make(map[string]struct{}, len(articles))
	authors := make([]string, 0, len(articles))
	for _, a := range articles {
		if _, ok := seen[a.Author]; ok {
			continue
		}
		seen[a.Author] = struct{}{}
		authors = append(authors, a.Author)
	}
	sort.Strings(authors)
	return authors
}
