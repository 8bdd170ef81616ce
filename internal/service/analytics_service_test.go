package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-dashboard/internal/domain"
)

func TestSeries_Daily(t *testing.T) {
	data := domain.SeedPerformanceData(rand.New(rand.NewSource(1)))
	svc := NewAnalyticsService(data)

	got, err := svc.Series(IntervalDaily)
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Len(t, got, 15)

	// The returned slice is a copy; mutating it does not touch the source
	got[0].Views = -1
	again, err := svc.Series(IntervalDaily)
	require.NoError(t, err)
	assert.NotEqual(t, -1, again[0].Views)
}

func TestSeries_Monthly(t *testing.T) {
	svc := NewAnalyticsService([]domain.PerformancePoint{
		{Date: "2023-12-30", Views: 100, Likes: 10, Comments: 1},
		{Date: "2023-12-31", Views: 200, Likes: 20, Comments: 2},
		{Date: "2024-01-01", Views: 1000, Likes: 100, Comments: 10},
		{Date: "2024-01-15", Views: 2000, Likes: 200, Comments: 20},
	})

	got, err := svc.Series(IntervalMonthly)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Each month is the per-day average of its counters, rounded.
	assert.Equal(t, domain.PerformancePoint{Date: "2023-12", Views: 150, Likes: 15, Comments: 2}, got[0])
	assert.Equal(t, domain.PerformancePoint{Date: "2024-01", Views: 1500, Likes: 150, Comments: 15}, got[1])
}

func TestSeries_MonthlyRoundsHalfUp(t *testing.T) {
	svc := NewAnalyticsService([]domain.PerformancePoint{
		{Date: "2024-03-01", Views: 100, Likes: 7, Comments: 3},
		{Date: "2024-03-02", Views: 101, Likes: 8, Comments: 4},
	})

	got, err := svc.Series(IntervalMonthly)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, 101, got[0].Views, "100.5 rounds up")
	assert.Equal(t, 8, got[0].Likes, "7.5 rounds up")
	assert.Equal(t, 4, got[0].Comments, "3.5 rounds up")
}

func TestSeries_MonthlyOverSeedData(t *testing.T) {
	data := domain.SeedPerformanceData(rand.New(rand.NewSource(7)))
	svc := NewAnalyticsService(data)

	got, err := svc.Series(IntervalMonthly)
	require.NoError(t, err)
	require.Len(t, got, 1, "seed series spans a single month")

	var views int
	for _, p := range data {
		views += p.Views
	}
	assert.Equal(t, "2024-01", got[0].Date)
	assert.Equal(t, roundedAvg(views, len(data)), got[0].Views)
}

func TestSeries_InvalidInterval(t *testing.T) {
	svc := NewAnalyticsService(nil)

	_, err := svc.Series("weekly")
	assert.Error(t, err)
}
