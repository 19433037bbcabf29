package dto

import (
	"strings"
	"time"
)

// BlogListItem is one row of a blog listing with the owning instructor's name.
type BlogListItem struct {
	ID             int64     `json:"id"`
	InstructorID   int64     `json:"instructor_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Thumbnail      *string   `json:"thumbnail,omitempty"`
	PublishedAt    time.Time `json:"published_at"`
	CreatedAt      time.Time `json:"created_at"`
	InstructorName string    `json:"instructor_name"`
}

// BlogListResponse is a paginated blog listing.
type BlogListResponse struct {
	Items      []BlogListItem `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// CreateBlogRequest represents blog creation data. A missing published_at
// means publish immediately.
type CreateBlogRequest struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Thumbnail   *string    `json:"thumbnail"`
	PublishedAt *time.Time `json:"published_at"`
}

func (r *CreateBlogRequest) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	if strings.TrimSpace(r.Title) == "" {
		ve.Add("title", "the title field is required")
	} else if len(r.Title) > 255 {
		ve.Add("title", "the title may not be greater than 255 characters")
	}
	if strings.TrimSpace(r.Content) == "" {
		ve.Add("content", "the content field is required")
	}
	return ve
}

// UpdateBlogRequest represents a partial blog update.
type UpdateBlogRequest struct {
	Title       *string    `json:"title"`
	Content     *string    `json:"content"`
	Thumbnail   *string    `json:"thumbnail"`
	PublishedAt *time.Time `json:"published_at"`
}

func (r *UpdateBlogRequest) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			ve.Add("title", "the title field is required")
		} else if len(*r.Title) > 255 {
			ve.Add("title", "the title may not be greater than 255 characters")
		}
	}
	if r.Content != nil && strings.TrimSpace(*r.Content) == "" {
		ve.Add("content", "the content field is required")
	}
	return ve
}

// ScheduleBlogRequest schedules a post for future publication.
type ScheduleBlogRequest struct {
	PublishedAt *time.Time `json:"published_at"`
}

func (r *ScheduleBlogRequest) Validate(now time.Time) *ValidationErrors {
	ve := NewValidationErrors()
	if r.PublishedAt == nil {
		ve.Add("published_at", "the published_at field is required")
	} else if !r.PublishedAt.After(now) {
		ve.Add("published_at", "the published_at must be a date after now")
	}
	return ve
}
