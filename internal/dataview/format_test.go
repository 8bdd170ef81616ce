package dataview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"content-dashboard/internal/domain"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{12540, "12.5K"},
		{999999, "1000.0K"},
		{1000000, "1.0M"},
		{1200000, "1.2M"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jan 15, 2024", FormatDate("2024-01-15"))
	assert.Equal(t, "Dec 28, 2023", FormatDate("2023-12-28"))

	// Unparseable values pass through untouched
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))
}

func TestFormatDayLabel(t *testing.T) {
	assert.Equal(t, "Jan 01", FormatDayLabel("2024-01-01"))
	assert.Equal(t, "Dec 28", FormatDayLabel("2023-12-28"))
	assert.Equal(t, "not-a-date", FormatDayLabel("not-a-date"))
}

func TestFormatMonthLabel(t *testing.T) {
	assert.Equal(t, "Jan 2024", FormatMonthLabel("2024-01"))
	assert.Equal(t, "Dec 2023", FormatMonthLabel("2023-12"))
	assert.Equal(t, "bogus", FormatMonthLabel("bogus"))
}

func TestUniqueAuthors(t *testing.T) {
	authors := UniqueAuthors(domain.SeedArticles())
	assert.Equal(t, []string{"Alex Rodriguez", "Emma Davis", "Mike Chen", "Sarah Johnson"}, authors)
}

func TestUniqueAuthors_Empty(t *testing.T) {
	assert.Empty(t, UniqueAuthors(nil))
}
