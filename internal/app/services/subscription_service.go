package services

import (
	"context"
	"fmt"

	"github.com/kerem/learnhub/internal/app/models"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/app/repositories"
)

// SubscriptionService defines the interface for subscription and plan
// operations
type SubscriptionService interface {
	ListSubscriptions(ctx context.Context, query *dto.ListSubscriptionsQuery, page, size int) (*dto.SubscriptionListResponse, error)
	GetSubscription(ctx context.Context, id int64) (*dto.SubscriptionListItem, error)
	ListSubscriptionTypes(ctx context.Context) ([]dto.SubscriptionTypeWithCount, error)
	GetSubscriptionType(ctx context.Context, id int64) (*models.SubscriptionType, error)
	CreateSubscriptionType(ctx context.Context, req *dto.CreateSubscriptionTypeRequest) (*models.SubscriptionType, error)
	UpdateSubscriptionType(ctx context.Context, id int64, req *dto.UpdateSubscriptionTypeRequest) (*models.SubscriptionType, error)
	ToggleSubscriptionTypeActive(ctx context.Context, id int64) (bool, error)
	DeleteSubscriptionType(ctx context.Context, id int64) error
	SubscriptionTypeExists(ctx context.Context, id int64) (bool, error)
}

// subscriptionServiceImpl implements SubscriptionService
type subscriptionServiceImpl struct {
	subscriptionRepo *repositories.SubscriptionRepository
	typeRepo         *repositories.SubscriptionTypeRepository
}

// NewSubscriptionService creates a new SubscriptionService
func NewSubscriptionService(
	subscriptionRepo *repositories.SubscriptionRepository,
	typeRepo *repositories.SubscriptionTypeRepository,
) SubscriptionService {
	return &subscriptionServiceImpl{
		subscriptionRepo: subscriptionRepo,
		typeRepo:         typeRepo,
	}
}

// ListSubscriptions retrieves a filtered, sorted, paginated subscription
// listing.
func (s *subscriptionServiceImpl) ListSubscriptions(ctx context.Context, query *dto.ListSubscriptionsQuery, page, size int) (*dto.SubscriptionListResponse, error) {
	items, pagination, err := s.subscriptionRepo.GetAllSubscriptions(ctx, *query, page, size)
	if err != nil {
		return nil, fmt.Errorf("error listing subscriptions: %w", err)
	}
	return &dto.SubscriptionListResponse{Items: items, Pagination: pagination}, nil
}

// GetSubscription retrieves one subscription with its references.
func (s *subscriptionServiceImpl) GetSubscription(ctx context.Context, id int64) (*dto.SubscriptionListItem, error) {
	return s.subscriptionRepo.GetSubscriptionByID(ctx, id)
}

// ListSubscriptionTypes lists every plan with counts, cheapest first.
func (s *subscriptionServiceImpl) ListSubscriptionTypes(ctx context.Context) ([]dto.SubscriptionTypeWithCount, error) {
	return s.typeRepo.GetAllSubscriptionTypes(ctx)
}

// GetSubscriptionType retrieves one plan.
func (s *subscriptionServiceImpl) GetSubscriptionType(ctx context.Context, id int64) (*models.SubscriptionType, error) {
	return s.typeRepo.GetSubscriptionTypeByID(ctx, id)
}

// CreateSubscriptionType creates a plan. New plans default to active unless
// the request says otherwise.
func (s *subscriptionServiceImpl) CreateSubscriptionType(ctx context.Context, req *dto.CreateSubscriptionTypeRequest) (*models.SubscriptionType, error) {
	st := &models.SubscriptionType{
		Name:         req.Name,
		Description:  req.Description,
		Price:        *req.Price,
		DurationDays: *req.Duration,
		Features:     req.Features,
		IsActive:     true,
	}
	if st.Features == nil {
		st.Features = []string{}
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}

	id, err := s.typeRepo.CreateSubscriptionType(ctx, st)
	if err != nil {
		return nil, err
	}
	return s.typeRepo.GetSubscriptionTypeByID(ctx, id)
}

// UpdateSubscriptionType applies a partial plan update.
func (s *subscriptionServiceImpl) UpdateSubscriptionType(ctx context.Context, id int64, req *dto.UpdateSubscriptionTypeRequest) (*models.SubscriptionType, error) {
	if err := s.typeRepo.UpdateSubscriptionType(ctx, id, req); err != nil {
		return nil, err
	}
	return s.typeRepo.GetSubscriptionTypeByID(ctx, id)
}

// ToggleSubscriptionTypeActive flips the plan's active flag.
func (s *subscriptionServiceImpl) ToggleSubscriptionTypeActive(ctx context.Context, id int64) (bool, error) {
	return s.typeRepo.ToggleActive(ctx, id)
}

// DeleteSubscriptionType removes a plan.
func (s *subscriptionServiceImpl) DeleteSubscriptionType(ctx context.Context, id int64) error {
	return s.typeRepo.DeleteSubscriptionType(ctx, id)
}

// SubscriptionTypeExists reports whether the id refers to a live plan.
func (s *subscriptionServiceImpl) SubscriptionTypeExists(ctx context.Context, id int64) (bool, error) {
	return s.typeRepo.SubscriptionTypeExists(ctx, id)
}
