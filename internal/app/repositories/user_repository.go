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
	"github.com/kerem/learnhub/internal/pkg/dberrors"
	"github.com/kerem/learnhub/internal/pkg/helpers"
	"github.com/kerem/learnhub/internal/pkg/logger"
)

var userSortColumns = map[string]string{
	"name":       "u.name",
	"email":      "u.email",
	"created_at": "u.created_at",
}

// UserRepository handles database operations for User.
type UserRepository struct {
	DB *pgxpool.Pool
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) selectUserListQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"u.id", "u.name", "u.email", "u.phone", "u.is_active", "u.created_at",
		"(SELECT count(*) FROM subscriptions s WHERE s.user_id = u.id AND s.deleted_at IS NULL) as subscriptions_count",
		"(SELECT count(*) FROM lesson_progress p WHERE p.user_id = u.id) as progress_count",
	).From("users u").
		Where("u.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)
}

// applyUserFilters adds filter conditions. The paid filter means the user
// holds at least one subscription that has not yet ended.
func applyUserFilters(builder squirrel.SelectBuilder, params dto.ListUsersQuery, now time.Time) squirrel.SelectBuilder {
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"u.name": pattern},
			squirrel.ILike{"u.email": pattern},
		})
	}
	switch params.Status {
	case "active":
		builder = builder.Where(squirrel.Eq{"u.is_active": true})
	case "inactive":
		builder = builder.Where(squirrel.Eq{"u.is_active": false})
	}
	switch params.Subscription {
	case "paid":
		builder = builder.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM subscriptions s WHERE s.user_id = u.id AND s.deleted_at IS NULL AND s.end_date >= ?)", now))
	case "free":
		builder = builder.Where(squirrel.Expr(
			"NOT EXISTS (SELECT 1 FROM subscriptions s WHERE s.user_id = u.id AND s.deleted_at IS NULL AND s.end_date >= ?)", now))
	}
	return builder
}

// GetAllUsers retrieves a paginated and filtered list of users with
// subscription and progress counts.
func (r *UserRepository) GetAllUsers(ctx context.Context, params dto.ListUsersQuery, page, size int) ([]dto.UserListItem, dto.PaginationInfo, error) {
	now := time.Now()
	sqlBuilder := applyUserFilters(r.selectUserListQuery(), params, now)
	countBuilder := applyUserFilters(
		squirrel.Select("count(*)").From("users u").
			Where("u.deleted_at IS NULL").
			PlaceholderFormat(squirrel.Dollar),
		params, now,
	)

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building user count SQL")
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	err = r.DB.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing user count query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []dto.UserListItem{}, pagination, nil
	}

	sortColumn := "u.created_at"
	if col, ok := userSortColumns[params.SortBy]; ok {
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
		logger.Error().Err(err).Msg("Error building get all users SQL")
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all users query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	users := make([]dto.UserListItem, 0, limit)
	for rows.Next() {
		var item dto.UserListItem
		err := rows.Scan(
			&item.ID, &item.Name, &item.Email, &item.Phone, &item.IsActive, &item.CreatedAt,
			&item.SubscriptionsCount, &item.ProgressCount,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning user list item")
			return nil, dto.PaginationInfo{}, err
		}
		users = append(users, item)
	}
	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating user rows")
		return nil, dto.PaginationInfo{}, err
	}

	return users, pagination, nil
}

// GetUserByID retrieves a single user with progress count and subscriptions.
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*dto.UserDetails, error) {
	sqlStr, args, err := squirrel.Select(
		"u.id", "u.name", "u.email", "u.phone", "u.is_active", "u.created_at", "u.updated_at",
		"(SELECT count(*) FROM lesson_progress p WHERE p.user_id = u.id) as progress_count",
	).From("users u").
		Where(squirrel.Eq{"u.id": id}).
		Where("u.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by ID SQL")
		return nil, err
	}

	var details dto.UserDetails
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(
		&details.ID, &details.Name, &details.Email, &details.Phone,
		&details.IsActive, &details.CreatedAt, &details.UpdatedAt,
		&details.ProgressCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error executing get user by ID query")
		return nil, err
	}

	details.Subscriptions, err = r.getUserSubscriptions(ctx, id)
	if err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *UserRepository) getUserSubscriptions(ctx context.Context, userID int64) ([]models.Subscription, error) {
	sqlStr, args, err := squirrel.Select(
		"s.id", "s.user_id", "s.subscription_type_id", "s.start_date", "s.end_date",
		"s.created_at", "s.updated_at",
		"t.id", "t.name", "t.description", "t.price", "t.duration_days", "t.features", "t.is_active",
		"t.created_at", "t.updated_at",
	).From("subscriptions s").
		Join("subscription_types t ON s.subscription_type_id = t.id").
		Where(squirrel.Eq{"s.user_id": userID}).
		Where("s.deleted_at IS NULL").
		OrderBy("s.start_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building user subscriptions SQL")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing user subscriptions query")
		return nil, err
	}
	defer rows.Close()

	subs := make([]models.Subscription, 0)
	for rows.Next() {
		var sub models.Subscription
		var st models.SubscriptionType
		err := rows.Scan(
			&sub.ID, &sub.UserID, &sub.SubscriptionTypeID, &sub.StartDate, &sub.EndDate,
			&sub.CreatedAt, &sub.UpdatedAt,
			&st.ID, &st.Name, &st.Description, &st.Price, &st.DurationDays, &st.Features, &st.IsActive,
			&st.CreatedAt, &st.UpdatedAt,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning user subscription row")
			return nil, err
		}
		sub.SubscriptionType = &st
		subs = append(subs, sub)
	}
	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating user subscription rows")
		return nil, err
	}
	return subs, nil
}

// GetUserByEmail retrieves a user account for authentication.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	sqlStr, args, err := squirrel.Select(
		"id", "name", "email", "phone", "password", "is_active", "created_at", "updated_at",
	).From("users").
		Where(squirrel.Eq{"email": email}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by email SQL")
		return nil, err
	}

	var user models.User
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(
		&user.ID, &user.Name, &user.Email, &user.Phone, &user.Password,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error executing get user by email query")
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user account and returns its id.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	sqlStr, args, err := squirrel.Insert("users").
		Columns("name", "email", "phone", "password", "is_active").
		Values(user.Name, user.Email, user.Phone, user.Password, user.IsActive).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, err
	}

	var id int64
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return 0, err
	}
	return id, nil
}

// UpdateUserProfile applies a partial profile update.
func (r *UserRepository) UpdateUserProfile(ctx context.Context, id int64, req *dto.UpdateUserProfileRequest) error {
	builder := squirrel.Update("users").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)

	if req.Name != nil {
		builder = builder.Set("name", *req.Name)
	}
	if req.Phone != nil {
		builder = builder.Set("phone", *req.Phone)
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update user profile SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update user profile query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetActive sets the user's account status to an explicit value.
func (r *UserRepository) SetActive(ctx context.Context, id int64, active bool) error {
	sqlStr, args, err := squirrel.Update("users").
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building set user active SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing set user active query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// DeleteUserTx soft deletes the user row within the given transaction. Owned
// subscriptions and progress rows are removed by the caller in the same
// transaction.
func (r *UserRepository) DeleteUserTx(ctx context.Context, tx pgx.Tx, id int64) error {
	sqlStr, args, err := squirrel.Update("users").
		Set("deleted_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete user SQL")
		return err
	}

	cmdTag, err := tx.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete user query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// DeleteProgressByUserTx removes a user's lesson progress within the given
// transaction. Progress rows are hard deleted.
func (r *UserRepository) DeleteProgressByUserTx(ctx context.Context, tx pgx.Tx, userID int64) error {
	sqlStr, args, err := squirrel.Delete("lesson_progress").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete progress by user SQL")
		return err
	}

	_, err = tx.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete progress by user query")
		return err
	}
	return nil
}
