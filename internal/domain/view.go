package domain

// SortField selects which article field a sort orders by.
type SortField string

const (
	SortNone          SortField = ""
	SortTitle         SortField = "title"
	SortAuthor        SortField = "author"
	SortPublishedDate SortField = "publishedDate"
	SortViews         SortField = "views"
	SortLikes         SortField = "likes"
	SortComments      SortField = "comments"
	SortStatus        SortField = "status"
)

// IsValidSortField checks if a field name is sortable. The empty field is
// valid and means "no sort".
func IsValidSortField(field string) bool {
	switch SortField(field) {
	case SortNone, SortTitle, SortAuthor, SortPublishedDate, SortViews, SortLikes, SortComments, SortStatus:
		return true
	}
	return false
}

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortConfig is a field plus direction pair defining a total order over the
// filtered article set.
type SortConfig struct {
	Key       SortField `json:"key"`
	Direction Direction `json:"direction"`
}

// Filters narrows the visible article set. Every empty field matches
// everything; active fields combine with AND.
type Filters struct {
	Author   string `json:"author"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Search   string `json:"search"`
}

// FilterPatch is a partial filter change merged into the current criteria.
// Nil fields keep their current value.
type FilterPatch struct {
	Author   *string `json:"author,omitempty"`
	DateFrom *string `json:"dateFrom,omitempty"`
	DateTo   *string `json:"dateTo,omitempty"`
	Search   *string `json:"search,omitempty"`
}

// Apply merges the patch into the filters.
func (p FilterPatch) Apply(f *Filters) {
	if p.Author != nil {
		f.Author = *p.Author
	}
	if p.DateFrom != nil {
		f.DateFrom = *p.DateFrom
	}
	if p.DateTo != nil {
		f.DateTo = *p.DateTo
	}
	if p.Search != nil {
		f.Search = *p.Search
	}
}
