package dashboard

import "content-dashboard/internal/domain"

// Action is a dashboard intent. The concrete types below form a closed set;
// Reduce handles each one exhaustively.
type Action interface {
	actionName() string
}

// SetFilters merges a partial criteria change into the current filters and
// resets the current page to 1.
type SetFilters struct {
	Patch domain.FilterPatch
}

// SetSortConfig replaces the sort configuration wholesale. The current page
// is kept.
type SetSortConfig struct {
	Config domain.SortConfig
}

// SetCurrentPage replaces the current page number.
type SetCurrentPage struct {
	Page int
}

// UpdateArticle merges a partial update into the article with the given ID.
// An unknown ID is a silent no-op.
type UpdateArticle struct {
	ID     string
	Update domain.ArticleUpdate
}

// SetUser replaces the authenticated identity. Nil means logged out.
type SetUser struct {
	User *domain.User
}

func (SetFilters) actionName() string     { return "set_filters" }
func (SetSortConfig) actionName() string  { return "set_sort_config" }
func (SetCurrentPage) actionName() string { return "set_current_page" }
func (UpdateArticle) actionName() string  { return "update_article" }
func (SetUser) actionName() string        { return "set_user" }
