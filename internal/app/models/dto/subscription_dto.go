package dto

import (
	"strings"
	"time"
)

// SubscriptionUserRef identifies the owning user inside a subscription row.
type SubscriptionUserRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SubscriptionTypeRef identifies the plan inside a subscription row.
type SubscriptionTypeRef struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// SubscriptionListItem is one row of the subscription listing.
type SubscriptionListItem struct {
	ID        int64               `json:"id"`
	StartDate time.Time           `json:"start_date"`
	EndDate   time.Time           `json:"end_date"`
	CreatedAt time.Time           `json:"created_at"`
	User      SubscriptionUserRef `json:"user"`
	Type      SubscriptionTypeRef `json:"subscription_type"`
}

// SubscriptionListResponse is a paginated subscription listing.
type SubscriptionListResponse struct {
	Items      []SubscriptionListItem `json:"items"`
	Pagination PaginationInfo         `json:"pagination"`
}

// SubscriptionTypeWithCount is a plan together with how many subscriptions
// reference it.
type SubscriptionTypeWithCount struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Price              float64   `json:"price"`
	DurationDays       int       `json:"duration"`
	Features           []string  `json:"features"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	SubscriptionsCount int64     `json:"subscriptions_count"`
}

// CreateSubscriptionTypeRequest creates a new plan.
type CreateSubscriptionTypeRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	Features    []string `json:"features"`
	IsActive    *bool    `json:"is_active"`
}

func (r *CreateSubscriptionTypeRequest) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	if strings.TrimSpace(r.Name) == "" {
		ve.Add("name", "the name field is required")
	} else if len(r.Name) > 255 {
		ve.Add("name", "the name may not be greater than 255 characters")
	}
	if strings.TrimSpace(r.Description) == "" {
		ve.Add("description", "the description field is required")
	}
	if r.Price == nil {
		ve.Add("price", "the price field is required")
	} else if *r.Price < 0 {
		ve.Add("price", "the price must be at least 0")
	}
	if r.Duration == nil {
		ve.Add("duration", "the duration field is required")
	} else if *r.Duration < 1 {
		ve.Add("duration", "the duration must be at least 1")
	}
	return ve
}

// UpdateSubscriptionTypeRequest is a partial plan update.
type UpdateSubscriptionTypeRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	Features    []string `json:"features"`
	IsActive    *bool    `json:"is_active"`
}

func (r *UpdateSubscriptionTypeRequest) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			ve.Add("name", "the name field is required")
		} else if len(*r.Name) > 255 {
			ve.Add("name", "the name may not be greater than 255 characters")
		}
	}
	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		ve.Add("description", "the description field is required")
	}
	if r.Price != nil && *r.Price < 0 {
		ve.Add("price", "the price must be at least 0")
	}
	if r.Duration != nil && *r.Duration < 1 {
		ve.Add("duration", "the duration must be at least 1")
	}
	return ve
}
