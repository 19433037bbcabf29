package models

import "time"

// SubscriptionType is a purchasable plan.
type SubscriptionType struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description" db:"description"`
	Price        float64   `json:"price" db:"price"`
	DurationDays int       `json:"duration" db:"duration_days"`
	Features     []string  `json:"features" db:"features"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Subscription links a user to a subscription type for a date range.
type Subscription struct {
	ID                 int64     `json:"id" db:"id"`
	UserID             int64     `json:"user_id" db:"user_id"`
	SubscriptionTypeID int64     `json:"subscription_type_id" db:"subscription_type_id"`
	StartDate          time.Time `json:"start_date" db:"start_date"`
	EndDate            time.Time `json:"end_date" db:"end_date"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`

	// Relations (populated when needed)
	User             *User             `json:"user,omitempty"`
	SubscriptionType *SubscriptionType `json:"subscription_type,omitempty"`
}

// IsActive reports whether the subscription is active at instant now.
func (s *Subscription) IsActive(now time.Time) bool {
	return !s.EndDate.Before(now)
}

// LessonProgress records a user's completion of a lesson.
type LessonProgress struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	LessonID    int64     `json:"lesson_id" db:"lesson_id"`
	CompletedAt time.Time `json:"completed_at" db:"completed_at"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
