package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"content-dashboard/internal/dashboard"
	"content-dashboard/internal/domain"
	"content-dashboard/internal/logger"
	"content-dashboard/internal/metrics"
	"content-dashboard/internal/validator"
)

// ErrArticleNotFound is returned when an update names an unknown article ID.
var ErrArticleNotFound = errors.New("article not found")

// ValidationError wraps field-level validation failures so handlers can
// distinguish them from internal errors.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field(s)", len(e.Fields))
}

// ArticleService applies edit-form submissions to the dashboard store.
type ArticleService struct {
	store       *dashboard.Store
	validator   *validator.Validator
	updateDelay time.Duration
}

// NewArticleService creates a new ArticleService. updateDelay simulates the
// network round-trip of the original edit flow.
func NewArticleService(store *dashboard.Store, v *validator.Validator, updateDelay time.Duration) *ArticleService {
	return &ArticleService{
		store:       store,
		validator:   v,
		updateDelay: updateDelay,
	}
}

// UpdateArticle validates and commits an edit-form submission. Validation
// failures leave the store untouched. Once the simulated delay has started
// the update always commits; there is no cancellation path.
func (s *ArticleService) UpdateArticle(ctx context.Context, id string, form validator.EditForm) (domain.Article, error) {
	start := time.Now()

	form.Title = strings.TrimSpace(form.Title)
	form.Content = strings.TrimSpace(form.Content)

	if err := s.validator.ValidateEditForm(&form); err != nil {
		return domain.Article{}, &ValidationError{Fields: validator.FieldErrors(err)}
	}

	if _, ok := s.store.ArticleByID(id); !ok {
		return domain.Article{}, ErrArticleNotFound
	}

	// Simulated network delay; deliberately not tied to ctx.
	time.Sleep(s.updateDelay)

	status := domain.Status(form.Status)
	s.store.Dispatch(dashboard.UpdateArticle{
		ID: id,
		Update: domain.ArticleUpdate{
			Title:   &form.Title,
			Content: &form.Content,
			Status:  &status,
		},
	})

	updated, ok := s.store.ArticleByID(id)
	if !ok {
		return domain.Article{}, ErrArticleNotFound
	}

	metrics.ObserveArticleUpdate(time.Since(start).Seconds())
	logger.InfoContext(ctx, "Article updated",
		"article_id", id,
		"status", form.Status)

	return updated, nil
}
