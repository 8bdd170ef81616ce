package service

import (
	"fmt"
	"math"
	"sort"

	"content-dashboard/internal/domain"
)

// Chart aggregation intervals.
const (
	IntervalDaily   = "daily"
	IntervalMonthly = "monthly"
)

// AnalyticsService serves the engagement time series consumed by the
// performance chart.
type AnalyticsService struct {
	data []domain.PerformancePoint
}

// NewAnalyticsService creates an AnalyticsService over a fixed series.
func NewAnalyticsService(data []domain.PerformancePoint) *AnalyticsService {
	return &AnalyticsService{data: data}
}

// Series returns the engagement series at the requested interval. Daily is
// the stored series as-is; monthly averages each counter over the days of
// the calendar month, rounded to the nearest integer. Dates stay in their
// raw form ("2006-01-02" daily, "2006-01" monthly); display labels are the
// caller's concern.
func (s *AnalyticsService) Series(interval string) ([]domain.PerformancePoint, error) {
	switch interval {
	case IntervalDaily:
		out := make([]domain.PerformancePoint, len(s.data))
		copy(out, s.data)
		return out, nil
	case IntervalMonthly:
		return s.monthly(), nil
	}
	return nil, fmt.Errorf("invalid interval %q: must be %s or %s", interval, IntervalDaily, IntervalMonthly)
}

func (s *AnalyticsService) monthly() []domain.PerformancePoint {
	type bucket struct {
		views, likes, comments, count int
	}
	buckets := make(map[string]*bucket)
	for _, p := range s.data {
		month := p.Date
		if len(month) >= 7 {
			month = month[:7]
		}
		b, ok := buckets[month]
		if !ok {
			b = &bucket{}
			buckets[month] = b
		}
		b.views += p.Views
		b.likes += p.Likes
		b.comments += p.Comments
		b.count++
	}

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]domain.PerformancePoint, 0, len(months))
	for _, m := range months {
		b := buckets[m]
		out = append(out, domain.PerformancePoint{
			Date:     m,
			Views:    roundedAvg(b.views, b.count),
			Likes:    roundedAvg(b.likes, b.count),
			Comments: roundedAvg(b.comments, b.count),
		})
	}
	return out
}

func roundedAvg(sum, count int) int {
	return int(math.Round(float64(sum) / float64(count)))
}
