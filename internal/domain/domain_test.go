package domain

import (
	"testing"
)

func TestIsValidStatus(t *testing.T) {
	tests := []struct {
		status string
		valid  bool
	}{
		{"Published", true},
		{"Draft", true},
		{"published", false},
		{"Archived", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := IsValidStatus(tt.status); got != tt.valid {
				t.Errorf("IsValidStatus(%q) = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		role  string
		valid bool
	}{
		{"admin", true},
		{"editor", true},
		{"moderator", false},
		{"ADMIN", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := IsValidRole(tt.role); got != tt.valid {
				t.Errorf("IsValidRole(%q) = %v, want %v", tt.role, got, tt.valid)
			}
		})
	}
}

func TestIsValidSortField(t *testing.T) {
	tests := []struct {
		field string
		valid bool
	}{
		{"", true}, // "none"
		{"title", true},
		{"author", true},
		{"publishedDate", true},
		{"views", true},
		{"likes", true},
		{"comments", true},
		{"status", true},
		{"content", false},
		{"id", false},
	}

	for _, tt := range tests {
		name := tt.field
		if name == "" {
			name = "none"
		}
		t.Run(name, func(t *testing.T) {
			if got := IsValidSortField(tt.field); got != tt.valid {
				t.Errorf("IsValidSortField(%q) = %v, want %v", tt.field, got, tt.valid)
			}
		})
	}
}

func TestArticleUpdate_Apply(t *testing.T) {
	article := Article{
		ID:      "1",
		Title:   "Original",
		Content: "Original content",
		Status:  StatusPublished,
		Views:   100,
	}

	title := "Changed"
	ArticleUpdate{Title: &title}.Apply(&article)

	if article.Title != "Changed" {
		t.Errorf("Title = %v, want Changed", article.Title)
	}
	if article.Content != "Original content" {
		t.Errorf("Content changed unexpectedly: %v", article.Content)
	}
	if article.Status != StatusPublished {
		t.Errorf("Status changed unexpectedly: %v", article.Status)
	}
}

func TestSeedArticles(t *testing.T) {
	articles := SeedArticles()
	if len(articles) != 8 {
		t.Fatalf("len(SeedArticles()) = %d, want 8", len(articles))
	}

	seen := make(map[string]bool)
	for _, a := range articles {
		if seen[a.ID] {
			t.Errorf("duplicate article ID %q", a.ID)
		}
		seen[a.ID] = true
		if a.Title == "" {
			t.Errorf("article %s has empty title", a.ID)
		}
		if a.Views < 0 || a.Likes < 0 || a.Comments < 0 {
			t.Errorf("article %s has negative counters", a.ID)
		}
		if !IsValidStatus(string(a.Status)) {
			t.Errorf("article %s has invalid status %q", a.ID, a.Status)
		}
	}
}
