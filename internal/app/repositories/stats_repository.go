package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/pkg/logger"
)

// StatsRepository runs the aggregation queries behind the admin reports.
type StatsRepository struct {
	DB *pgxpool.Pool
}

// NewStatsRepository creates a new instance of StatsRepository.
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{DB: db}
}

// GetRevenueSeries groups subscriptions started inside the window into
// buckets labeled by bucketFormat (a to_char pattern) and sums plan prices
// per bucket. Buckets with no subscriptions produce no row.
func (r *StatsRepository) GetRevenueSeries(ctx context.Context, bucketFormat string, start, end time.Time) ([]dto.RevenueBucket, error) {
	sqlStr := `SELECT to_char(s.start_date, $1) AS bucket,
			COALESCE(sum(t.price), 0) AS revenue,
			count(*) AS subscription_count
		FROM subscriptions s
		JOIN subscription_types t ON s.subscription_type_id = t.id
		WHERE s.deleted_at IS NULL
			AND s.start_date >= $2 AND s.start_date <= $3
		GROUP BY bucket
		ORDER BY bucket`

	rows, err := r.DB.Query(ctx, sqlStr, bucketFormat, start, end)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing revenue series query")
		return nil, err
	}
	defer rows.Close()

	series := make([]dto.RevenueBucket, 0)
	for rows.Next() {
		var b dto.RevenueBucket
		if err := rows.Scan(&b.Period, &b.Revenue, &b.SubscriptionCount); err != nil {
			logger.Error().Err(err).Msg("Error scanning revenue series row")
			return nil, err
		}
		series = append(series, b)
	}
	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating revenue series rows")
		return nil, err
	}
	return series, nil
}

// GetRevenueTotals returns the window's total revenue and subscription count
// plus the number of currently active subscriptions. The active count is
// measured against now and is independent of the window.
func (r *StatsRepository) GetRevenueTotals(ctx context.Context, start, end, now time.Time) (float64, int64, int64, error) {
	sqlStr := `SELECT
			COALESCE((SELECT sum(t.price)
				FROM subscriptions s
				JOIN subscription_types t ON s.subscription_type_id = t.id
				WHERE s.deleted_at IS NULL AND s.start_date >= $1 AND s.start_date <= $2), 0),
			(SELECT count(*) FROM subscriptions s
				WHERE s.deleted_at IS NULL AND s.start_date >= $1 AND s.start_date <= $2),
			(SELECT count(*) FROM subscriptions s
				WHERE s.deleted_at IS NULL AND s.end_date >= $3)`

	var revenue float64
	var total, active int64
	err := r.DB.QueryRow(ctx, sqlStr, start, end, now).Scan(&revenue, &total, &active)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing revenue totals query")
		return 0, 0, 0, err
	}
	return revenue, total, active, nil
}

// GetSubscriptionTypeBreakdown reports, for every plan, how many
// subscriptions started inside the window and the revenue they produced.
// Plans with no matching subscriptions appear with zeros. Cheapest plan
// first.
func (r *StatsRepository) GetSubscriptionTypeBreakdown(ctx context.Context, start, end time.Time) ([]dto.SubscriptionTypeStat, error) {
	sqlStr := `SELECT t.id, t.name, t.price,
			count(s.id) FILTER (WHERE s.start_date >= $1 AND s.start_date <= $2) AS subscription_count,
			t.price * count(s.id) FILTER (WHERE s.start_date >= $1 AND s.start_date <= $2) AS revenue
		FROM subscription_types t
		LEFT JOIN subscriptions s ON s.subscription_type_id = t.id AND s.deleted_at IS NULL
		WHERE t.deleted_at IS NULL
		GROUP BY t.id, t.name, t.price
		ORDER BY t.price ASC`

	rows, err := r.DB.Query(ctx, sqlStr, start, end)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing subscription type breakdown query")
		return nil, err
	}
	defer rows.Close()

	stats := make([]dto.SubscriptionTypeStat, 0)
	for rows.Next() {
		var s dto.SubscriptionTypeStat
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.SubscriptionCount, &s.Revenue); err != nil {
			logger.Error().Err(err).Msg("Error scanning subscription type breakdown row")
			return nil, err
		}
		stats = append(stats, s)
	}
	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating subscription type breakdown rows")
		return nil, err
	}
	return stats, nil
}

// GetDashboardStats counts live rows per entity for the admin overview.
func (r *StatsRepository) GetDashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	sqlStr := `SELECT
		(SELECT count(*) FROM users WHERE deleted_at IS NULL),
		(SELECT count(*) FROM instructors WHERE deleted_at IS NULL),
		(SELECT count(*) FROM courses WHERE deleted_at IS NULL),
		(SELECT count(*) FROM blogs WHERE deleted_at IS NULL)`

	var stats dto.DashboardStats
	err := r.DB.QueryRow(ctx, sqlStr).Scan(&stats.Users, &stats.Instructors, &stats.Courses, &stats.Blogs)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing dashboard stats query")
		return nil, err
	}
	return &stats, nil
}
