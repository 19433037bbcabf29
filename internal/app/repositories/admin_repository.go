package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kerem/learnhub/internal/app/models"
	"github.com/kerem/learnhub/internal/pkg/apperrors"
	"github.com/kerem/learnhub/internal/pkg/dberrors"
	"github.com/kerem/learnhub/internal/pkg/logger"
)

// AdminRepository handles database operations for Admin.
type AdminRepository struct {
	DB *pgxpool.Pool
}

// NewAdminRepository creates a new instance of AdminRepository.
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{DB: db}
}

// GetAdminByEmail retrieves an admin account for authentication.
func (r *AdminRepository) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	sqlStr, args, err := squirrel.Select(
		"id", "name", "email", "password", "created_at", "updated_at",
	).From("admins").
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get admin by email SQL")
		return nil, err
	}

	var admin models.Admin
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(
		&admin.ID, &admin.Name, &admin.Email, &admin.Password, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Msg("Error executing get admin by email query")
		return nil, err
	}
	return &admin, nil
}

// GetAdminByID retrieves a single admin account.
func (r *AdminRepository) GetAdminByID(ctx context.Context, id int64) (*models.Admin, error) {
	sqlStr, args, err := squirrel.Select(
		"id", "name", "email", "password", "created_at", "updated_at",
	).From("admins").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get admin by ID SQL")
		return nil, err
	}

	var admin models.Admin
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(
		&admin.ID, &admin.Name, &admin.Email, &admin.Password, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Msg("Error executing get admin by ID query")
		return nil, err
	}
	return &admin, nil
}

// CreateAdmin inserts a new admin account. Used by seeding.
func (r *AdminRepository) CreateAdmin(ctx context.Context, admin *models.Admin) (int64, error) {
	sqlStr, args, err := squirrel.Insert("admins").
		Columns("name", "email", "password").
		Values(admin.Name, admin.Email, admin.Password).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create admin SQL")
		return 0, err
	}

	var id int64
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create admin query")
		return 0, err
	}
	return id, nil
}

// AdminExists reports whether any admin account exists.
func (r *AdminRepository) AdminExists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM admins)`).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing admin exists query")
		return false, err
	}
	return exists, nil
}
