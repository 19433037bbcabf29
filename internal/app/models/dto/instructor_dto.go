package dto

import (
	"strings"
	"time"
)

// InstructorListItem is one row of the instructor listing with owned-content
// counts.
type InstructorListItem struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Expertise    *string   `json:"expertise,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	CoursesCount int64     `json:"courses_count"`
	BlogsCount   int64     `json:"blogs_count"`
}

// InstructorListResponse is a paginated instructor listing.
type InstructorListResponse struct {
	Items      []InstructorListItem `json:"items"`
	Pagination PaginationInfo       `json:"pagination"`
}

// InstructorDetails is the full admin view of one instructor.
type InstructorDetails struct {
	InstructorListItem
	Bio *string `json:"bio,omitempty"`
}

// UpdateInstructorProfileRequest represents a partial profile update by the
// instructor themselves.
type UpdateInstructorProfileRequest struct {
	Name      *string `json:"name"`
	Expertise *string `json:"expertise"`
	Bio       *string `json:"bio"`
}

func (r *UpdateInstructorProfileRequest) Validate() *ValidationErrors {
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

// InstructorDashboardStats carries an instructor's own content counts.
type InstructorDashboardStats struct {
	Courses int64 `json:"courses"`
	Blogs   int64 `json:"blogs"`
}
