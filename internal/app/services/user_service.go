package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/app/repositories"
	"github.com/kerem/learnhub/internal/db"
)

// UserService defines the interface for user operations
type UserService interface {
	ListUsers(ctx context.Context, query *dto.ListUsersQuery, page, size int) (*dto.UserListResponse, error)
	GetUser(ctx context.Context, id int64) (*dto.UserDetails, error)
	SetActive(ctx context.Context, id int64, active bool) (*dto.UserDetails, error)
	DeleteUser(ctx context.Context, id int64) error
	UpdateProfile(ctx context.Context, id int64, req *dto.UpdateUserProfileRequest) (*dto.UserDetails, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	pool             *pgxpool.Pool
	userRepo         *repositories.UserRepository
	subscriptionRepo *repositories.SubscriptionRepository
}

// NewUserService creates a new UserService
func NewUserService(
	pool *pgxpool.Pool,
	userRepo *repositories.UserRepository,
	subscriptionRepo *repositories.SubscriptionRepository,
) UserService {
	return &userServiceImpl{
		pool:             pool,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// ListUsers retrieves a filtered, sorted, paginated user listing.
func (s *userServiceImpl) ListUsers(ctx context.Context, query *dto.ListUsersQuery, page, size int) (*dto.UserListResponse, error) {
	items, pagination, err := s.userRepo.GetAllUsers(ctx, *query, page, size)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return &dto.UserListResponse{Items: items, Pagination: pagination}, nil
}

// GetUser retrieves one user with subscriptions and progress count.
func (s *userServiceImpl) GetUser(ctx context.Context, id int64) (*dto.UserDetails, error) {
	return s.userRepo.GetUserByID(ctx, id)
}

// SetActive sets the user's account status and returns the updated user.
func (s *userServiceImpl) SetActive(ctx context.Context, id int64, active bool) (*dto.UserDetails, error) {
	if err := s.userRepo.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	return s.userRepo.GetUserByID(ctx, id)
}

// DeleteUser removes the user together with their subscriptions and lesson
// progress, atomically.
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.subscriptionRepo.DeleteSubscriptionsByUserTx(ctx, tx, id); err != nil {
			return err
		}
		if err := s.userRepo.DeleteProgressByUserTx(ctx, tx, id); err != nil {
			return err
		}
		return s.userRepo.DeleteUserTx(ctx, tx, id)
	})
}

// UpdateProfile applies a partial profile update by the user.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, id int64, req *dto.UpdateUserProfileRequest) (*dto.UserDetails, error) {
	if err := s.userRepo.UpdateUserProfile(ctx, id, req); err != nil {
		return nil, err
	}
	return s.userRepo.GetUserByID(ctx, id)
}
