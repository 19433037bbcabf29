package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kerem/learnhub/internal/app/models"
	appRepos "github.com/kerem/learnhub/internal/app/repositories"
	"github.com/kerem/learnhub/internal/pkg/apperrors"
	"github.com/kerem/learnhub/internal/pkg/auth"
)

const (
	defaultAdminName     = "Administrator"
	defaultAdminEmail    = "admin@learnhub.local"
	defaultAdminPassword = "ChangeMe123!"
)

// CreateDefaultData seeds the default admin account and the starter
// subscription plans when the database is empty.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)
	typeRepo := appRepos.NewSubscriptionTypeRepository(dbPool)

	var finalErr error

	exists, err := adminRepo.AdminExists(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for existing admin accounts")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		hashed, err := auth.HashPassword(defaultAdminPassword)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing default admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.Admin{
				Name:     defaultAdminName,
				Email:    defaultAdminEmail,
				Password: hashed,
			}
			if _, err := adminRepo.CreateAdmin(ctx, admin); err != nil {
				lgr.Error().Err(err).Msg("Error creating default admin account")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created, change its password")
			}
		}
	}

	starterPlans := []appModels.SubscriptionType{
		{
			Name:         "Monthly",
			Description:  "Full access to all published courses for one month",
			Price:        9.99,
			DurationDays: 30,
			Features:     []string{"All courses", "Progress tracking"},
			IsActive:     true,
		},
		{
			Name:         "Yearly",
			Description:  "Full access to all published courses for one year",
			Price:        99.99,
			DurationDays: 365,
			Features:     []string{"All courses", "Progress tracking", "Two months free"},
			IsActive:     true,
		},
	}

	for i := range starterPlans {
		plan := &starterPlans[i]
		if _, err := typeRepo.CreateSubscriptionType(ctx, plan); err != nil {
			if errors.Is(err, apperrors.ErrSubscriptionTypeNameAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("plan", plan.Name).Msg("Error creating starter subscription plan")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
