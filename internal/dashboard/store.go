// Package dashboard holds the view-state store: the canonical article set,
// the current filter, sort and pagination inputs, and the derived view
// recomputed from them. State changes flow through dispatched actions; the
// displayed view is never mutated directly.
package dashboard

import (
	"sync"
	"time"

	"content-dashboard/internal/dataview"
	"content-dashboard/internal/debounce"
	"content-dashboard/internal/domain"
	"content-dashboard/internal/metrics"
)

// State is the composite dashboard state. Filtered is derived from
// (Articles, Filters, SortConfig) and recomputed on every change to any of
// them; the visible window is derived lazily at read time.
type State struct {
	Articles    []domain.Article
	Filtered    []domain.Article
	Filters     domain.Filters
	SortConfig  domain.SortConfig
	CurrentPage int
	PageSize    int
	User        *domain.User
}

// Reduce applies one action to the state and returns the next state. It is
// a pure function; the caller owns locking.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case SetFilters:
		a.Patch.Apply(&s.Filters)
		s.CurrentPage = 1
		return recompute(s)

	case SetSortConfig:
		s.SortConfig = a.Config
		return recompute(s)

	case SetCurrentPage:
		s.CurrentPage = a.Page
		return s

	case UpdateArticle:
		articles := make([]domain.Article, len(s.Articles))
		copy(articles, s.Articles)
		for i := range articles {
			if articles[i].ID == a.ID {
				a.Update.Apply(&articles[i])
				break
			}
		}
		s.Articles = articles
		return recompute(s)

	case SetUser:
		s.User = a.User
		return s
	}
	return s
}

func recompute(s State) State {
	s.Filtered = dataview.Sort(dataview.Filter(s.Articles, s.Filters), s.SortConfig)
	return s
}

// Store wraps the state with dispatch, intent helpers and read access. All
// transitions are synchronous; the mutex only guards against concurrent HTTP
// readers, there is no background mutation.
type Store struct {
	mu       sync.RWMutex
	state    State
	searchDb *debounce.Debouncer
}

// NewStore creates a store seeded with the given articles, an empty filter,
// no sort key and page 1.
func NewStore(articles []domain.Article, pageSize int, searchDelay time.Duration) *Store {
	st := State{
		Articles:    articles,
		Filters:     domain.Filters{},
		SortConfig:  domain.SortConfig{Key: domain.SortNone, Direction: domain.Asc},
		CurrentPage: 1,
		PageSize:    pageSize,
	}
	return &Store{
		state:    recompute(st),
		searchDb: debounce.New(searchDelay),
	}
}

// Dispatch applies an action to the store.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, action)
	metrics.ActionsTotal.WithLabelValues(action.actionName()).Inc()
}

// ToggleSort applies the sort intent for a column header click: the same key
// flips asc to desc and back, a new key starts ascending.
func (s *Store) ToggleSort(key domain.SortField) domain.SortConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := domain.SortConfig{Key: key, Direction: domain.Asc}
	if s.state.SortConfig.Key == key && s.state.SortConfig.Direction == domain.Asc {
		cfg.Direction = domain.Desc
	}
	s.state = Reduce(s.state, SetSortConfig{Config: cfg})
	metrics.ActionsTotal.WithLabelValues("set_sort_config").Inc()
	return cfg
}

// Search coalesces rapid search input into a single filter change after the
// quiet period; only the last value within a burst is applied.
func (s *Store) Search(value string) {
	s.searchDb.Do(func() {
		s.Dispatch(SetFilters{Patch: domain.FilterPatch{Search: &value}})
	})
}

// Close cancels any pending debounced search.
func (s *Store) Close() {
	s.searchDb.Stop()
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// VisiblePage derives the current visible window from the filtered, sorted
// sequence and the pagination inputs.
func (s *Store) VisiblePage() dataview.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dataview.Paginate(s.state.Filtered, s.state.CurrentPage, s.state.PageSize)
}

// Snapshot returns the state together with its derived visible window under
// a single lock acquisition, so the window is always consistent with the
// filter, sort and page inputs it echoes.
func (s *Store) Snapshot() (State, dataview.Page) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, dataview.Paginate(s.state.Filtered, s.state.CurrentPage, s.state.PageSize)
}

// ArticleByID returns the article with the given ID from the canonical set,
// or false if no such article exists.
func (s *Store) ArticleByID(id string) (domain.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.state.Articles {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Article{}, false
}

// Authors returns the distinct author names across the canonical set.
func (s *Store) Authors() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dataview.UniqueAuthors(s.state.Articles)
}
