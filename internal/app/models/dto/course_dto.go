package dto

import (
	"strings"
	"time"

	"github.com/kerem/learnhub/internal/app/models"
)

// CourseListItem is one row of a course listing: the course plus its
// instructor's name and its module count. The aggregates never affect which
// rows qualify, only what is reported per row.
type CourseListItem struct {
	ID             int64   `json:"id"`
	InstructorID   int64   `json:"instructor_id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Thumbnail      *string `json:"thumbnail,omitempty"`
	Level          string  `json:"level"`
	IsPublished    bool    `json:"is_published"`
	CreatedAt      time.Time `json:"created_at"`
	InstructorName string  `json:"instructor_name"`
	ModulesCount   int64   `json:"modules_count"`
}

// CourseListResponse is a paginated course listing.
type CourseListResponse struct {
	Items      []CourseListItem `json:"items"`
	Pagination PaginationInfo   `json:"pagination"`
}

// CourseDetails is the full view of one course.
type CourseDetails struct {
	models.Course
	InstructorName string `json:"instructor_name"`
	ModulesCount   int64  `json:"modules_count"`
	LessonsCount   int64  `json:"lessons_count"`
}

// CreateCourseRequest represents course creation data.
type CreateCourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
	Level       string  `json:"level"`
	IsPublished *bool   `json:"is_published"`
}

// Validate checks all fields and reports every failure.
func (r *CreateCourseRequest) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	if strings.TrimSpace(r.Title) == "" {
		ve.Add("title", "the title field is required")
	} else if len(r.Title) > 255 {
		ve.Add("title", "the title may not be greater than 255 characters")
	}
	if strings.TrimSpace(r.Description) == "" {
		ve.Add("description", "the description field is required")
	}
	if !models.ValidCourseLevel(r.Level) {
		ve.Add("level", "the selected level is invalid")
	}
	return ve
}

// UpdateCourseRequest represents a partial course update; only supplied
// fields mutate.
type UpdateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
	Level       *string `json:"level"`
	IsPublished *bool   `json:"is_published"`
}

func (r *UpdateCourseRequest) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			ve.Add("title", "the title field is required")
		} else if len(*r.Title) > 255 {
			ve.Add("title", "the title may not be greater than 255 characters")
		}
	}
	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		ve.Add("description", "the description field is required")
	}
	if r.Level != nil && !models.ValidCourseLevel(*r.Level) {
		ve.Add("level", "the selected level is invalid")
	}
	return ve
}
