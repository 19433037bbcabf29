package models

import "time"

// Instructor represents a content author. Instructors own courses and blogs;
// ownership never changes after creation.
type Instructor struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Expertise  *string   `json:"expertise,omitempty" db:"expertise"`
	Bio        *string   `json:"bio,omitempty" db:"bio"`
	Password   string    `json:"-" db:"password"`
	IsVerified bool      `json:"is_verified" db:"is_verified"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
