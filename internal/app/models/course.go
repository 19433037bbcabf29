package models

import "time"

// CourseLevel enumerates the difficulty levels a course can carry.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// ValidCourseLevel reports whether s names a known course level.
func ValidCourseLevel(s string) bool {
	switch CourseLevel(s) {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Course represents a course owned by an instructor.
type Course struct {
	ID           int64       `json:"id" db:"id"`
	InstructorID int64       `json:"instructor_id" db:"instructor_id"`
	Title        string      `json:"title" db:"title"`
	Description  string      `json:"description" db:"description"`
	Thumbnail    *string     `json:"thumbnail,omitempty" db:"thumbnail"`
	Level        CourseLevel `json:"level" db:"level"`
	IsPublished  bool        `json:"is_published" db:"is_published"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`

	// Relations (populated when needed)
	Instructor *Instructor `json:"instructor,omitempty"`
	Modules    []Module    `json:"modules,omitempty"`
}

// Module groups lessons within a course, ordered by position.
type Module struct {
	ID        int64     `json:"id" db:"id"`
	CourseID  int64     `json:"course_id" db:"course_id"`
	Title     string    `json:"title" db:"title"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Lessons []Lesson `json:"lessons,omitempty"`
}

// Lesson is a single unit of course content.
type Lesson struct {
	ID        int64     `json:"id" db:"id"`
	ModuleID  int64     `json:"module_id" db:"module_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
