package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kerem/learnhub/internal/app/models/dto"
)

var fixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newAnalyticsForTest() *analyticsServiceImpl {
	return &analyticsServiceImpl{now: func() time.Time { return fixedNow }}
}

func TestBucketFormats(t *testing.T) {
	assert.Equal(t, "YYYY-MM-DD", bucketFormats["daily"])
	assert.Equal(t, "IYYY-IW", bucketFormats["weekly"])
	assert.Equal(t, "YYYY-MM", bucketFormats["monthly"])
	assert.Equal(t, "YYYY", bucketFormats["yearly"])
}

func TestResolveWindowDefaults(t *testing.T) {
	svc := newAnalyticsForTest()

	tests := []struct {
		period string
		span   time.Duration
	}{
		{"daily", 30 * 24 * time.Hour},
		{"weekly", 12 * 7 * 24 * time.Hour},
		{"monthly", 365 * 24 * time.Hour},
		{"yearly", 5 * 365 * 24 * time.Hour},
	}

	for _, tc := range tests {
		t.Run(tc.period, func(t *testing.T) {
			period, start, end := svc.resolveWindow(&dto.RevenueStatsQuery{Period: tc.period})
			assert.Equal(t, tc.period, period)
			assert.Equal(t, fixedNow, end)
			assert.Equal(t, fixedNow.Add(-tc.span), start)
		})
	}
}

func TestResolveWindowDefaultPeriod(t *testing.T) {
	svc := newAnalyticsForTest()
	period, start, end := svc.resolveWindow(&dto.RevenueStatsQuery{})
	assert.Equal(t, "monthly", period)
	assert.Equal(t, fixedNow, end)
	assert.Equal(t, fixedNow.Add(-365*24*time.Hour), start)
}

func TestResolveWindowExplicitDates(t *testing.T) {
	svc := newAnalyticsForTest()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	period, gotStart, gotEnd := svc.resolveWindow(&dto.RevenueStatsQuery{
		Period: "weekly",
		Start:  &start,
		End:    &end,
	})
	assert.Equal(t, "weekly", period)
	assert.Equal(t, start, gotStart)
	assert.Equal(t, end, gotEnd)
}

func TestResolveWindowExplicitStartOnly(t *testing.T) {
	svc := newAnalyticsForTest()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, gotStart, gotEnd := svc.resolveWindow(&dto.RevenueStatsQuery{
		Period: "daily",
		Start:  &start,
	})
	assert.Equal(t, start, gotStart)
	assert.Equal(t, fixedNow, gotEnd)
}

func TestResolveWindowExplicitEndOnly(t *testing.T) {
	svc := newAnalyticsForTest()

	end := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	_, gotStart, gotEnd := svc.resolveWindow(&dto.RevenueStatsQuery{
		Period: "daily",
		End:    &end,
	})
	// The default span reaches back from the explicit end, not from now.
	assert.Equal(t, end.Add(-30*24*time.Hour), gotStart)
	assert.Equal(t, end, gotEnd)
}
