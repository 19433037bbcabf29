package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kerem/learnhub/internal/app/models"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/pkg/apperrors"
	"github.com/kerem/learnhub/internal/pkg/dberrors"
	"github.com/kerem/learnhub/internal/pkg/logger"
)

// SubscriptionTypeRepository handles database operations for SubscriptionType.
type SubscriptionTypeRepository struct {
	DB *pgxpool.Pool
}

// NewSubscriptionTypeRepository creates a new instance of SubscriptionTypeRepository.
func NewSubscriptionTypeRepository(db *pgxpool.Pool) *SubscriptionTypeRepository {
	return &SubscriptionTypeRepository{DB: db}
}

// GetAllSubscriptionTypes lists every plan with its subscription count,
// cheapest first.
func (r *SubscriptionTypeRepository) GetAllSubscriptionTypes(ctx context.Context) ([]dto.SubscriptionTypeWithCount, error) {
	sqlStr, args, err := squirrel.Select(
		"t.id", "t.name", "t.description", "t.price", "t.duration_days", "t.features",
		"t.is_active", "t.created_at",
		"(SELECT count(*) FROM subscriptions s WHERE s.subscription_type_id = t.id AND s.deleted_at IS NULL) as subscriptions_count",
	).From("subscription_types t").
		Where("t.deleted_at IS NULL").
		OrderBy("t.price ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all subscription types SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all subscription types query")
		return nil, err
	}
	defer rows.Close()

	types := make([]dto.SubscriptionTypeWithCount, 0)
	for rows.Next() {
		var item dto.SubscriptionTypeWithCount
		err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Price, &item.DurationDays, &item.Features,
			&item.IsActive, &item.CreatedAt,
			&item.SubscriptionsCount,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning subscription type row")
			return nil, err
		}
		if item.Features == nil {
			item.Features = []string{}
		}
		types = append(types, item)
	}
	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating subscription type rows")
		return nil, err
	}
	return types, nil
}

// GetSubscriptionTypeByID retrieves a single plan.
func (r *SubscriptionTypeRepository) GetSubscriptionTypeByID(ctx context.Context, id int64) (*models.SubscriptionType, error) {
	sqlStr, args, err := squirrel.Select(
		"id", "name", "description", "price", "duration_days", "features", "is_active",
		"created_at", "updated_at",
	).From("subscription_types").
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get subscription type by ID SQL")
		return nil, err
	}

	var st models.SubscriptionType
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(
		&st.ID, &st.Name, &st.Description, &st.Price, &st.DurationDays, &st.Features, &st.IsActive,
		&st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSubscriptionTypeNotFound
		}
		logger.Error().Err(err).Msg("Error executing get subscription type by ID query")
		return nil, err
	}
	if st.Features == nil {
		st.Features = []string{}
	}
	return &st, nil
}

// CreateSubscriptionType inserts a new plan and returns its id.
func (r *SubscriptionTypeRepository) CreateSubscriptionType(ctx context.Context, st *models.SubscriptionType) (int64, error) {
	sqlStr, args, err := squirrel.Insert("subscription_types").
		Columns("name", "description", "price", "duration_days", "features", "is_active").
		Values(st.Name, st.Description, st.Price, st.DurationDays, st.Features, st.IsActive).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create subscription type SQL")
		return 0, err
	}

	var id int64
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrSubscriptionTypeNameAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create subscription type query")
		return 0, err
	}
	return id, nil
}

// UpdateSubscriptionType applies a partial plan update.
func (r *SubscriptionTypeRepository) UpdateSubscriptionType(ctx context.Context, id int64, req *dto.UpdateSubscriptionTypeRequest) error {
	builder := squirrel.Update("subscription_types").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)

	if req.Name != nil {
		builder = builder.Set("name", *req.Name)
	}
	if req.Description != nil {
		builder = builder.Set("description", *req.Description)
	}
	if req.Price != nil {
		builder = builder.Set("price", *req.Price)
	}
	if req.Duration != nil {
		builder = builder.Set("duration_days", *req.Duration)
	}
	if req.Features != nil {
		builder = builder.Set("features", req.Features)
	}
	if req.IsActive != nil {
		builder = builder.Set("is_active", *req.IsActive)
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update subscription type SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSubscriptionTypeNameAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing update subscription type query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubscriptionTypeNotFound
	}
	return nil
}

// ToggleActive flips the plan's active flag and returns the new state.
func (r *SubscriptionTypeRepository) ToggleActive(ctx context.Context, id int64) (bool, error) {
	sqlStr := `UPDATE subscription_types SET is_active = NOT is_active, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL RETURNING is_active`

	var active bool
	err := r.DB.QueryRow(ctx, sqlStr, id).Scan(&active)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, apperrors.ErrSubscriptionTypeNotFound
		}
		logger.Error().Err(err).Msg("Error executing toggle subscription type active query")
		return false, err
	}
	return active, nil
}

// DeleteSubscriptionType soft deletes a plan. Existing subscriptions keep
// their reference.
func (r *SubscriptionTypeRepository) DeleteSubscriptionType(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Update("subscription_types").
		Set("deleted_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete subscription type SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete subscription type query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubscriptionTypeNotFound
	}
	return nil
}

// SubscriptionTypeExists reports whether a plan exists and is not deleted.
// Used to validate referential filter parameters before listing.
func (r *SubscriptionTypeRepository) SubscriptionTypeExists(ctx context.Context, id int64) (bool, error) {
	sqlStr := `SELECT EXISTS (SELECT 1 FROM subscription_types WHERE id = $1 AND deleted_at IS NULL)`

	var exists bool
	err := r.DB.QueryRow(ctx, sqlStr, id).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing subscription type exists query")
		return false, err
	}
	return exists, nil
}
