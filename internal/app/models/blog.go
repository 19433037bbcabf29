package models

import "time"

// Blog represents a blog post owned by an instructor. A post is published
// once published_at is in the past; a future published_at means it is
// scheduled. Publication state is always evaluated against the current
// instant, never cached.
type Blog struct {
	ID           int64     `json:"id" db:"id"`
	InstructorID int64     `json:"instructor_id" db:"instructor_id"`
	Title        string    `json:"title" db:"title"`
	Content      string    `json:"content" db:"content"`
	Thumbnail    *string   `json:"thumbnail,omitempty" db:"thumbnail"`
	PublishedAt  time.Time `json:"published_at" db:"published_at"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	// Relations (populated when needed)
	Instructor *Instructor `json:"instructor,omitempty"`
}

// IsPublished reports whether the post is visible at instant now.
func (b *Blog) IsPublished(now time.Time) bool {
	return !b.PublishedAt.After(now)
}
