package domain

import (
	"math/rand"
	"time"
)

// SeedUsers is the fixed identity set the dashboard authenticates against.
func SeedUsers() []User {
	return []User{
		{
			ID:    "1",
			Name:  "Admin User",
			Email: "admin@example.com",
			Role:  RoleAdmin,
			Token: "admin-token-123",
		},
		{
			ID:    "2",
			Name:  "Editor User",
			Email: "editor@example.com",
			Role:  RoleEditor,
			Token: "editor-token-456",
		},
	}
}

// SeedArticles returns the initial article set the dashboard serves.
func SeedArticles() []Article {
	return []Article{
		{
			ID:            "1",
			Title:         "Getting Started with React Hooks",
			Author:        "Sarah Johnson",
			PublishedDate: "2024-01-15",
			Views:         12540,
			Likes:         892,
			Comments:      156,
			Content:       "React Hooks have revolutionized how we write React components...",
			Status:        StatusPublished,
		},
		{
			ID:            "2",
			Title:         "Advanced TypeScript Patterns",
			Author:        "Mike Chen",
			PublishedDate: "2024-01-12",
			Views:         8920,
			Likes:         654,
			Comments:      89,
			Content:       "TypeScript offers powerful patterns for building scalable applications...",
			Status:        StatusPublished,
		},
		{
			ID:            "3",
			Title:         "Building Responsive Web Applications",
			Author:        "Emma Davis",
			PublishedDate: "2024-01-10",
			Views:         15230,
			Likes:         1203,
			Comments:      234,
			Content:       "Creating responsive designs that work across all devices...",
			Status:        StatusPublished,
		},
		{
			ID:            "4",
			Title:         "State Management Best Practices",
			Author:        "Alex Rodriguez",
			PublishedDate: "2024-01-08",
			Views:         7890,
			Likes:         567,
			Comments:      123,
			Content:       "Managing state effectively is crucial for modern applications...",
			Status:        StatusDraft,
		},
		{
			ID:            "5",
			Title:         "CSS Grid vs Flexbox: When to Use Which",
			Author:        "Sarah Johnson",
			PublishedDate: "2024-01-05",
			Views:         11200,
			Likes:         834,
			Comments:      178,
			Content:       "Understanding the differences between CSS Grid and Flexbox...",
			Status:        StatusPublished,
		},
		{
			ID:            "6",
			Title:         "API Design Principles",
			Author:        "Mike Chen",
			PublishedDate: "2024-01-03",
			Views:         6540,
			Likes:         445,
			Comments:      67,
			Content:       "Designing APIs that are intuitive and maintainable...",
			Status:        StatusPublished,
		},
		{
			ID:            "7",
			Title:         "Performance Optimization Techniques",
			Author:        "Emma Davis",
			PublishedDate: "2024-01-01",
			Views:         9876,
			Likes:         723,
			Comments:      145,
			Content:       "Optimizing web applications for better performance...",
			Status:        StatusPublished,
		},
		{
			ID:            "8",
			Title:         "Modern JavaScript Features",
			Author:        "Alex Rodriguez",
			PublishedDate: "2023-12-28",
			Views:         13450,
			Likes:         987,
			Comments:      201,
			Content:       "Exploring the latest features in modern JavaScript...",
			Status:        StatusPublished,
		},
	}
}

// SeedPerformanceData generates one engagement point per day between
// 2024-01-01 and 2024-01-15 inclusive. Values are random within fixed
// bounds; the series shape is what the chart consumers care about.
func SeedPerformanceData(rng *rand.Rand) []PerformancePoint {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	var data []PerformancePoint
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		data = append(data, PerformancePoint{
			Date:     d.Format("2006-01-02"),
			Views:    rng.Intn(5000) + 1000,
			Likes:    rng.Intn(500) + 50,
			Comments: rng.Intn(100) + 10,
		})
	}
	return data
}
