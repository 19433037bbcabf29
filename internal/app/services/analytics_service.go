package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/app/repositories"
)

// bucketFormats maps a report period to the Postgres to_char pattern that
// labels its buckets. Weekly buckets use ISO week numbering.
var bucketFormats = map[string]string{
	"daily":   "YYYY-MM-DD",
	"weekly":  "IYYY-IW",
	"monthly": "YYYY-MM",
	"yearly":  "YYYY",
}

// defaultWindow returns how far back the report reaches when no explicit
// start date is given.
func defaultWindow(period string) time.Duration {
	switch period {
	case "daily":
		return 30 * 24 * time.Hour
	case "weekly":
		return 12 * 7 * 24 * time.Hour
	case "yearly":
		return 5 * 365 * 24 * time.Hour
	default: // monthly
		return 365 * 24 * time.Hour
	}
}

// AnalyticsService defines the interface for the admin report operations
type AnalyticsService interface {
	GetRevenueStats(ctx context.Context, query *dto.RevenueStatsQuery) (*dto.RevenueStatsResponse, error)
	GetDashboardStats(ctx context.Context) (*dto.DashboardStats, error)
}

// analyticsServiceImpl implements AnalyticsService
type analyticsServiceImpl struct {
	statsRepo *repositories.StatsRepository
	now       func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(statsRepo *repositories.StatsRepository) AnalyticsService {
	return &analyticsServiceImpl{
		statsRepo: statsRepo,
		now:       time.Now,
	}
}

// resolveWindow fills in the report window. The window ends now unless an
// explicit end date is given and reaches back the period's default span
// unless an explicit start date is given.
func (s *analyticsServiceImpl) resolveWindow(query *dto.RevenueStatsQuery) (period string, start, end time.Time) {
	period = query.Period
	if period == "" {
		period = "monthly"
	}

	end = s.now()
	if query.End != nil {
		end = *query.End
	}
	if query.Start != nil {
		start = *query.Start
	} else {
		start = end.Add(-defaultWindow(period))
	}
	return period, start, end
}

// GetRevenueStats builds the full revenue report: the bucketed time series
// over the window plus window totals and the per-plan breakdown.
func (s *analyticsServiceImpl) GetRevenueStats(ctx context.Context, query *dto.RevenueStatsQuery) (*dto.RevenueStatsResponse, error) {
	period, start, end := s.resolveWindow(query)

	series, err := s.statsRepo.GetRevenueSeries(ctx, bucketFormats[period], start, end)
	if err != nil {
		return nil, fmt.Errorf("error building revenue series: %w", err)
	}

	totalRevenue, totalSubs, activeSubs, err := s.statsRepo.GetRevenueTotals(ctx, start, end, s.now())
	if err != nil {
		return nil, fmt.Errorf("error computing revenue totals: %w", err)
	}

	breakdown, err := s.statsRepo.GetSubscriptionTypeBreakdown(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("error computing plan breakdown: %w", err)
	}

	return &dto.RevenueStatsResponse{
		Period:      period,
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		RevenueData: series,
		Stats: dto.RevenueStats{
			TotalRevenue:        totalRevenue,
			TotalSubscriptions:  totalSubs,
			ActiveSubscriptions: activeSubs,
			SubscriptionTypes:   breakdown,
		},
	}, nil
}

// GetDashboardStats returns the entity totals for the admin overview.
func (s *analyticsServiceImpl) GetDashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	return s.statsRepo.GetDashboardStats(ctx)
}
