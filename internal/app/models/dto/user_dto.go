package dto

import (
	"strings"
	"time"

	"github.com/kerem/learnhub/internal/app/models"
)

// UserListItem is one row of the user listing with subscription and progress
// counts.
type UserListItem struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              *string   `json:"phone,omitempty"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	SubscriptionsCount int64     `json:"subscriptions_count"`
	ProgressCount      int64     `json:"progress_count"`
}

// UserListResponse is a paginated user listing.
type UserListResponse struct {
	Items      []UserListItem `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// UserDetails is the full admin view of one user, including subscriptions
// with their types.
type UserDetails struct {
	models.User
	ProgressCount int64 `json:"progress_count"`
}

// ToggleUserStatusRequest sets a user's account status.
type ToggleUserStatusRequest struct {
	IsActive *bool `json:"is_active"`
}

func (r *ToggleUserStatusRequest) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	if r.IsActive == nil {
		ve.Add("is_active", "the is_active field is required")
	}
	return ve
}

// UpdateUserProfileRequest represents a partial profile update by the user.
type UpdateUserProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

func (r *UpdateUserProfileRequest) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			ve.Add("name", "the name field is required")
		} else if len(*r.Name) > 255 {
			ve.Add("name", "the name may not be greater than 255 characters")
		}
	}
	return ve
}
