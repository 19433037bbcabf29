package dto

import (
	"strconv"
	"strings"
	"time"
)

// List query parameter types. Every recognized parameter has an enumerated
// allowed shape; Validate checks all of them and reports every offending
// field at once, before any query is built. The sentinel "all" (or omission)
// imposes no constraint for categorical filters.

const maxSearchLength = 255

// SearchTerm returns the trimmed search string, empty when no search filter
// should apply.
func searchTerm(s string) string {
	return strings.TrimSpace(s)
}

func validateSearch(ve *ValidationErrors, field, value string) {
	if len(value) > maxSearchLength {
		ve.Addf(field, "the %s may not be greater than %d characters", field, maxSearchLength)
	}
}

func validateIn(ve *ValidationErrors, field, value string, allowed ...string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	ve.Addf(field, "the selected %s is invalid", field)
}

func validateSortDir(ve *ValidationErrors, value string) {
	validateIn(ve, "sort_dir", value, "asc", "desc")
}

// parseOptionalID parses an optional id parameter. Empty input yields nil;
// malformed input records a validation error.
func parseOptionalID(ve *ValidationErrors, field, value string) *int64 {
	if value == "" {
		return nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		ve.Addf(field, "the %s must be an integer", field)
		return nil
	}
	return &id
}

// ListCoursesQuery carries the recognized parameters of the admin course list.
type ListCoursesQuery struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	Instructor string `form:"instructor"`
	Level      string `form:"level"`
	SortBy     string `form:"sort_by"`
	SortDir    string `form:"sort_dir"`

	InstructorID *int64 `form:"-"`
}

// Validate checks every parameter and returns the full set of failures.
func (q *ListCoursesQuery) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	q.Search = searchTerm(q.Search)
	validateSearch(ve, "search", q.Search)
	validateIn(ve, "status", q.Status, "published", "unpublished", "all")
	validateIn(ve, "level", q.Level, "beginner", "intermediate", "advanced", "all")
	validateIn(ve, "sort_by", q.SortBy, "title", "created_at", "instructor_name")
	validateSortDir(ve, q.SortDir)
	q.InstructorID = parseOptionalID(ve, "instructor", q.Instructor)
	return ve
}

// ListBlogsQuery carries the recognized parameters of the admin blog list.
type ListBlogsQuery struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	Instructor string `form:"instructor"`
	SortBy     string `form:"sort_by"`
	SortDir    string `form:"sort_dir"`

	InstructorID *int64 `form:"-"`
}

func (q *ListBlogsQuery) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	q.Search = searchTerm(q.Search)
	validateSearch(ve, "search", q.Search)
	validateIn(ve, "status", q.Status, "published", "scheduled", "all")
	validateIn(ve, "sort_by", q.SortBy, "title", "created_at", "published_at", "instructor_name")
	validateSortDir(ve, q.SortDir)
	q.InstructorID = parseOptionalID(ve, "instructor", q.Instructor)
	return ve
}

// ListInstructorsQuery carries the recognized parameters of the instructor list.
type ListInstructorsQuery struct {
	Search       string `form:"search"`
	Verification string `form:"verification"`
	SortBy       string `form:"sort_by"`
	SortDir      string `form:"sort_dir"`
}

func (q *ListInstructorsQuery) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	q.Search = searchTerm(q.Search)
	validateSearch(ve, "search", q.Search)
	validateIn(ve, "verification", q.Verification, "verified", "unverified", "all")
	validateIn(ve, "sort_by", q.SortBy, "name", "email", "created_at")
	validateSortDir(ve, q.SortDir)
	return ve
}

// ListUsersQuery carries the recognized parameters of the user list.
type ListUsersQuery struct {
	Search       string `form:"search"`
	Status       string `form:"status"`
	Subscription string `form:"subscription"`
	SortBy       string `form:"sort_by"`
	SortDir      string `form:"sort_dir"`
}

func (q *ListUsersQuery) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	q.Search = searchTerm(q.Search)
	validateSearch(ve, "search", q.Search)
	validateIn(ve, "status", q.Status, "active", "inactive", "all")
	validateIn(ve, "subscription", q.Subscription, "free", "paid", "all")
	validateIn(ve, "sort_by", q.SortBy, "name", "email", "created_at")
	validateSortDir(ve, q.SortDir)
	return ve
}

// ListSubscriptionsQuery carries the recognized parameters of the
// subscription list. Search matches the owning user's name or email.
type ListSubscriptionsQuery struct {
	Status           string `form:"status"`
	SubscriptionType string `form:"subscription_type"`
	Search           string `form:"search"`
	SortBy           string `form:"sort_by"`
	SortDir          string `form:"sort_dir"`

	SubscriptionTypeID *int64 `form:"-"`
}

func (q *ListSubscriptionsQuery) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	q.Search = searchTerm(q.Search)
	validateSearch(ve, "search", q.Search)
	validateIn(ve, "status", q.Status, "active", "expired", "all")
	validateIn(ve, "sort_by", q.SortBy, "start_date", "end_date", "price")
	validateSortDir(ve, q.SortDir)
	q.SubscriptionTypeID = parseOptionalID(ve, "subscription_type", q.SubscriptionType)
	return ve
}

// RevenueStatsQuery carries the recognized parameters of the revenue report.
type RevenueStatsQuery struct {
	Period    string `form:"period"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`

	Start *time.Time `form:"-"`
	End   *time.Time `form:"-"`
}

const dateLayout = "2006-01-02"

// Validate checks the period and date window. A start_date later than
// end_date fails here, before any aggregation runs.
func (q *RevenueStatsQuery) Validate() *ValidationErrors {
	ve := NewValidationErrors()
	validateIn(ve, "period", q.Period, "daily", "weekly", "monthly", "yearly")

	if q.StartDate != "" {
		t, err := time.Parse(dateLayout, q.StartDate)
		if err != nil {
			ve.Add("start_date", "the start_date is not a valid date")
		} else {
			q.Start = &t
		}
	}
	if q.EndDate != "" {
		t, err := time.Parse(dateLayout, q.EndDate)
		if err != nil {
			ve.Add("end_date", "the end_date is not a valid date")
		} else {
			q.End = &t
		}
	}
	if q.Start != nil && q.End != nil && q.End.Before(*q.Start) {
		ve.Add("end_date", "the end_date must be a date after or equal to start_date")
	}
	return ve
}
