package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-dashboard/internal/dataview"
	"content-dashboard/internal/domain"
	"content-dashboard/internal/service"
)

// AnalyticsHandler serves the performance chart data.
type AnalyticsHandler struct {
	analytics service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analytics service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// PerformancePointResponse is one chart point: the raw date key plus its
// axis label ("Jan 15" for daily points, "Jan 2024" for monthly buckets).
type PerformancePointResponse struct {
	Date        string `json:"date"`
	DateDisplay string `json:"dateDisplay"`
	Views       int    `json:"views"`
	Likes       int    `json:"likes"`
	Comments    int    `json:"comments"`
}

func toPerformancePointResponse(p domain.PerformancePoint, interval string) PerformancePointResponse {
	label := dataview.FormatDayLabel(p.Date)
	if interval == service.IntervalMonthly {
		label = dataview.FormatMonthLabel(p.Date)
	}
	return PerformancePointResponse{
		Date:        p.Date,
		DateDisplay: label,
		Views:       p.Views,
		Likes:       p.Likes,
		Comments:    p.Comments,
	}
}

// Performance handles GET /api/v1/performance?interval=daily|monthly.
// Interval defaults to daily.
func (h *AnalyticsHandler) Performance(c *gin.Context) {
	interval := c.DefaultQuery("interval", service.IntervalDaily)

	series, err := h.analytics.Series(interval)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	points := make([]PerformancePointResponse, 0, len(series))
	for _, p := range series {
		points = append(points, toPerformancePointResponse(p, interval))
	}

	c.JSON(http.StatusOK, gin.H{
		"interval": interval,
		"data":     points,
	})
}
