package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kerem/learnhub/internal/app/models"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/pkg/apperrors"
	"github.com/kerem/learnhub/internal/pkg/helpers"
	"github.com/kerem/learnhub/internal/pkg/logger"
)

var subscriptionSortColumns = map[string]string{
	"start_date": "s.start_date",
	"end_date":   "s.end_date",
	"price":      "t.price",
}

// SubscriptionRepository handles database operations for Subscription.
type SubscriptionRepository struct {
	DB *pgxpool.Pool
}

// NewSubscriptionRepository creates a new instance of SubscriptionRepository.
func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) selectSubscriptionListQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"s.id", "s.start_date", "s.end_date", "s.created_at",
		"u.id", "u.name", "u.email",
		"t.id", "t.name", "t.price",
	).From("subscriptions s").
		Join("users u ON s.user_id = u.id").
		Join("subscription_types t ON s.subscription_type_id = t.id").
		Where("s.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)
}

// applySubscriptionFilters adds filter conditions. Active means the end date
// has not yet passed at instant now.
func applySubscriptionFilters(builder squirrel.SelectBuilder, params dto.ListSubscriptionsQuery, now time.Time) squirrel.SelectBuilder {
	switch params.Status {
	case "active":
		builder = builder.Where(squirrel.GtOrEq{"s.end_date": now})
	case "expired":
		builder = builder.Where(squirrel.Lt{"s.end_date": now})
	}
	if params.SubscriptionTypeID != nil {
		builder = builder.Where(squirrel.Eq{"s.subscription_type_id": *params.SubscriptionTypeID})
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"u.name": pattern},
			squirrel.ILike{"u.email": pattern},
		})
	}
	return builder
}

// GetAllSubscriptions retrieves a paginated and filtered list of
// subscriptions with owner and plan references.
func (r *SubscriptionRepository) GetAllSubscriptions(ctx context.Context, params dto.ListSubscriptionsQuery, page, size int) ([]dto.SubscriptionListItem, dto.PaginationInfo, error) {
	now := time.Now()
	sqlBuilder := applySubscriptionFilters(r.selectSubscriptionListQuery(), params, now)
	countBuilder := applySubscriptionFilters(
		squirrel.Select("count(*)").From("subscriptions s").
			Join("users u ON s.user_id = u.id").
			Join("subscription_types t ON s.subscription_type_id = t.id").
			Where("s.deleted_at IS NULL").
			PlaceholderFormat(squirrel.Dollar),
		params, now,
	)

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building subscription count SQL")
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	err = r.DB.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing subscription count query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []dto.SubscriptionListItem{}, pagination, nil
	}

	sortColumn := "s.start_date"
	if col, ok := subscriptionSortColumns[params.SortBy]; ok {
		sortColumn = col
	}
	sortDir := "DESC"
	if params.SortDir == "asc" {
		sortDir = "ASC"
	}
	sqlBuilder = sqlBuilder.OrderBy(fmt.Sprintf("%s %s", sortColumn, sortDir))

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlBuilder = sqlBuilder.Limit(uint64(limit)).Offset(offset)

	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all subscriptions SQL")
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all subscriptions query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	subs := make([]dto.SubscriptionListItem, 0, limit)
	for rows.Next() {
		var item dto.SubscriptionListItem
		err := rows.Scan(
			&item.ID, &item.StartDate, &item.EndDate, &item.CreatedAt,
			&item.User.ID, &item.User.Name, &item.User.Email,
			&item.Type.ID, &item.Type.Name, &item.Type.Price,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning subscription list item")
			return nil, dto.PaginationInfo{}, err
		}
		subs = append(subs, item)
	}
	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating subscription rows")
		return nil, dto.PaginationInfo{}, err
	}

	return subs, pagination, nil
}

// GetSubscriptionByID retrieves a single subscription with references.
func (r *SubscriptionRepository) GetSubscriptionByID(ctx context.Context, id int64) (*dto.SubscriptionListItem, error) {
	sqlBuilder := r.selectSubscriptionListQuery().Where(squirrel.Eq{"s.id": id})
	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get subscription by ID SQL")
		return nil, err
	}

	var item dto.SubscriptionListItem
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(
		&item.ID, &item.StartDate, &item.EndDate, &item.CreatedAt,
		&item.User.ID, &item.User.Name, &item.User.Email,
		&item.Type.ID, &item.Type.Name, &item.Type.Price,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		logger.Error().Err(err).Msg("Error executing get subscription by ID query")
		return nil, err
	}
	return &item, nil
}

// CreateSubscription inserts a new subscription and returns its id.
func (r *SubscriptionRepository) CreateSubscription(ctx context.Context, sub *models.Subscription) (int64, error) {
	sqlStr, args, err := squirrel.Insert("subscriptions").
		Columns("user_id", "subscription_type_id", "start_date", "end_date").
		Values(sub.UserID, sub.SubscriptionTypeID, sub.StartDate, sub.EndDate).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create subscription SQL")
		return 0, err
	}

	var id int64
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create subscription query")
		return 0, err
	}
	return id, nil
}

// DeleteSubscriptionsByUserTx soft deletes every subscription of a user
// within the given transaction. Used by the user cascade delete.
func (r *SubscriptionRepository) DeleteSubscriptionsByUserTx(ctx context.Context, tx pgx.Tx, userID int64) error {
	sqlStr, args, err := squirrel.Update("subscriptions").
		Set("deleted_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete subscriptions by user SQL")
		return err
	}

	_, err = tx.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete subscriptions by user query")
		return err
	}
	return nil
}
