package domain

// PerformancePoint is one bucket of the engagement time series consumed by
// the performance chart.
type PerformancePoint struct {
	Date     string `json:"date"`
	Views    int    `json:"views"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
}
