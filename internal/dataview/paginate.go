package dataview

import "content-dashboard/internal/domain"

// Page is one visible window of the filtered and sorted sequence.
type Page struct {
	Items      []domain.Article `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalItems int              `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
}

// Paginate slices the ordered sequence into the 1-indexed page of the given
// size. An out-of-range page yields an empty window, never an error; keeping
// requests in range is the caller's job. An empty sequence reports one total
// page, so "page 1 of 1, showing 0 results" stays well defined.
func Paginate(articles []domain.Article, page, pageSize int) Page {
	totalPages := (len(articles) + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start < 0 || start >= len(articles) {
		start, end = 0, 0
	} else if end > len(articles) {
		end = len(articles)
	}

	return Page{
		Items:      articles[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalItems: len(articles),
		TotalPages: totalPages,
	}
}
