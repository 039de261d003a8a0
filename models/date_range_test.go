package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilemobilul/campaign-backend/utils"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := utils.ParseCivilDate(s)
	require.NoError(t, err)
	return parsed
}

func dateRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	return DateRange{Start: day(t, start), End: day(t, end)}
}

func TestDateRangeValid(t *testing.T) {
	assert.True(t, dateRange(t, "2025-06-01", "2025-06-30").Valid())
	assert.True(t, dateRange(t, "2025-06-01", "2025-06-01").Valid())
	assert.False(t, dateRange(t, "2025-06-30", "2025-06-01").Valid())
}

func TestDateRangeContains(t *testing.T) {
	r := dateRange(t, "2025-06-10", "2025-06-20")

	assert.True(t, r.Contains(day(t, "2025-06-10")), "start boundary is inclusive")
	assert.True(t, r.Contains(day(t, "2025-06-20")), "end boundary is inclusive")
	assert.True(t, r.Contains(day(t, "2025-06-15")))
	assert.False(t, r.Contains(day(t, "2025-06-09")))
	assert.False(t, r.Contains(day(t, "2025-06-21")))
}

func TestDateRangeOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        DateRange
		b        DateRange
		overlaps bool
	}{
		{
			name:     "disjoint ranges",
			a:        dateRange(t, "2025-06-01", "2025-06-10"),
			b:        dateRange(t, "2025-06-11", "2025-06-20"),
			overlaps: false,
		},
		{
			name:     "shared boundary day counts as overlap",
			a:        dateRange(t, "2025-06-01", "2025-06-10"),
			b:        dateRange(t, "2025-06-10", "2025-06-20"),
			overlaps: true,
		},
		{
			name:     "fully contained",
			a:        dateRange(t, "2025-06-01", "2025-06-30"),
			b:        dateRange(t, "2025-06-10", "2025-06-15"),
			overlaps: true,
		},
		{
			name:     "partial overlap",
			a:        dateRange(t, "2025-06-01", "2025-06-15"),
			b:        dateRange(t, "2025-06-10", "2025-06-25"),
			overlaps: true,
		},
		{
			name:     "identical ranges",
			a:        dateRange(t, "2025-06-01", "2025-06-10"),
			b:        dateRange(t, "2025-06-01", "2025-06-10"),
			overlaps: true,
		},
		{
			name:     "single-day ranges on adjacent days",
			a:        dateRange(t, "2025-06-01", "2025-06-01"),
			b:        dateRange(t, "2025-06-02", "2025-06-02"),
			overlaps: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a), "overlap is symmetric")
		})
	}
}
