package service

import (
	"context"

	"content-dashboard/internal/domain"
	"content-dashboard/internal/validator"
)

// ArticleServiceInterface defines the article editing operations.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// UpdateArticle validates the edit form and commits it to the article
	// with the given ID after the simulated network delay.
	UpdateArticle(ctx context.Context, id string, form validator.EditForm) (domain.Article, error)
}

// AnalyticsServiceInterface defines access to the performance time series.
type AnalyticsServiceInterface interface {
	// Series returns the engagement series aggregated at the given interval.
	Series(interval string) ([]domain.PerformancePoint, error)
}
