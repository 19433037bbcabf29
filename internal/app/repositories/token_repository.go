package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kerem/learnhub/internal/app/models"
	"github.com/kerem/learnhub/internal/pkg/apperrors"
	"github.com/kerem/learnhub/internal/pkg/logger"
)

// TokenRepository handles stored refresh tokens.
type TokenRepository struct {
	DB *pgxpool.Pool
}

// NewTokenRepository creates a new instance of TokenRepository.
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{DB: db}
}

// StoreRefreshToken persists a freshly issued refresh token.
func (r *TokenRepository) StoreRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	sqlStr, args, err := squirrel.Insert("refresh_tokens").
		Columns("token", "principal_type", "principal_id", "expires_at").
		Values(token.Token, token.PrincipalType, token.PrincipalID, token.ExpiresAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building store refresh token SQL")
		return err
	}

	_, err = r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing store refresh token query")
		return err
	}
	return nil
}

// GetRefreshToken loads a stored refresh token by its opaque value.
func (r *TokenRepository) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	sqlStr, args, err := squirrel.Select(
		"id", "token", "principal_type", "principal_id", "expires_at", "revoked", "created_at",
	).From("refresh_tokens").
		Where(squirrel.Eq{"token": token}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get refresh token SQL")
		return nil, err
	}

	var rt models.RefreshToken
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(
		&rt.ID, &rt.Token, &rt.PrincipalType, &rt.PrincipalID, &rt.ExpiresAt, &rt.Revoked, &rt.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTokenNotFound
		}
		logger.Error().Err(err).Msg("Error executing get refresh token query")
		return nil, err
	}
	return &rt, nil
}

// RevokeRefreshToken marks one token as revoked.
func (r *TokenRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	sqlStr, args, err := squirrel.Update("refresh_tokens").
		Set("revoked", true).
		Where(squirrel.Eq{"token": token}).
		Where(squirrel.Eq{"revoked": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building revoke refresh token SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing revoke refresh token query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTokenNotFound
	}
	return nil
}

// DeleteExpiredTokens removes tokens past their expiry. Intended for a
// periodic cleanup.
func (r *TokenRepository) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	cmdTag, err := r.DB.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < now()`)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete expired tokens query")
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}
