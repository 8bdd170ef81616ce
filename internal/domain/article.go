package domain

// Status is the publication status of an article.
type Status string

const (
	StatusPublished Status = "Published"
	StatusDraft     Status = "Draft"
)

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []Status{StatusPublished, StatusDraft}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

// Article represents an article entity in the system.
// ID, Author and PublishedDate are immutable; Title, Content and Status
// may change through an update.
type Article struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	PublishedDate string `json:"publishedDate"`
	Views         int    `json:"views"`
	Likes         int    `json:"likes"`
	Comments      int    `json:"comments"`
	Content       string `json:"content"`
	Status        Status `json:"status"`
}

// ArticleUpdate is a partial update applied to an article. Nil fields are
// left untouched.
type ArticleUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Status  *Status `json:"status,omitempty"`
}

// Apply merges the update into the article, field by field.
func (u ArticleUpdate) Apply(a *Article) {
	if u.Title != nil {
		a.Title = *u.Title
	}
	if u.Content != nil {
		a.Content = *u.Content
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
}
