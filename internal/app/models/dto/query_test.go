package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCoursesQueryValidate(t *testing.T) {
	q := &ListCoursesQuery{
		Search:     "  go basics  ",
		Status:     "published",
		Instructor: "7",
		Level:      "beginner",
		SortBy:     "title",
		SortDir:    "asc",
	}
	ve := q.Validate()
	assert.False(t, ve.HasErrors())
	assert.Equal(t, "go basics", q.Search)
	require.NotNil(t, q.InstructorID)
	assert.Equal(t, int64(7), *q.InstructorID)
}

func TestListCoursesQueryValidateCollectsAllFailures(t *testing.T) {
	// Every offending parameter is reported in one pass.
	q := &ListCoursesQuery{
		Search:     strings.Repeat("x", 300),
		Status:     "archived",
		Instructor: "abc",
		Level:      "expert",
		SortBy:     "price",
		SortDir:    "sideways",
	}
	ve := q.Validate()
	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Errors, "search")
	assert.Contains(t, ve.Errors, "status")
	assert.Contains(t, ve.Errors, "instructor")
	assert.Contains(t, ve.Errors, "level")
	assert.Contains(t, ve.Errors, "sort_by")
	assert.Contains(t, ve.Errors, "sort_dir")
	assert.Nil(t, q.InstructorID)
}

func TestListCoursesQueryValidateAllSentinel(t *testing.T) {
	q := &ListCoursesQuery{Status: "all", Level: "all"}
	assert.False(t, q.Validate().HasErrors())

	q = &ListCoursesQuery{}
	assert.False(t, q.Validate().HasErrors())
}

func TestParseOptionalID(t *testing.T) {
	ve := NewValidationErrors()
	assert.Nil(t, parseOptionalID(ve, "instructor", ""))
	assert.False(t, ve.HasErrors())

	id := parseOptionalID(ve, "instructor", "42")
	require.NotNil(t, id)
	assert.Equal(t, int64(42), *id)

	assert.Nil(t, parseOptionalID(ve, "instructor", "0"))
	assert.Nil(t, parseOptionalID(ve, "instructor", "-3"))
	assert.Nil(t, parseOptionalID(ve, "instructor", "4.5"))
	assert.Len(t, ve.Errors["instructor"], 3)
}

func TestListBlogsQueryValidate(t *testing.T) {
	q := &ListBlogsQuery{Status: "scheduled", SortBy: "published_at", SortDir: "desc"}
	assert.False(t, q.Validate().HasErrors())

	q = &ListBlogsQuery{Status: "draft"}
	ve := q.Validate()
	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Errors, "status")
}

func TestListInstructorsQueryValidate(t *testing.T) {
	q := &ListInstructorsQuery{Verification: "verified", SortBy: "email", SortDir: "asc"}
	assert.False(t, q.Validate().HasErrors())

	q = &ListInstructorsQuery{Verification: "pending", SortBy: "expertise"}
	ve := q.Validate()
	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Errors, "verification")
	assert.Contains(t, ve.Errors, "sort_by")
}

func TestListUsersQueryValidate(t *testing.T) {
	q := &ListUsersQuery{Status: "active", Subscription: "paid", SortBy: "name", SortDir: "desc"}
	assert.False(t, q.Validate().HasErrors())

	q = &ListUsersQuery{Subscription: "trial"}
	ve := q.Validate()
	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Errors, "subscription")
}

func TestListSubscriptionsQueryValidate(t *testing.T) {
	q := &ListSubscriptionsQuery{
		Status:           "active",
		SubscriptionType: "3",
		SortBy:           "price",
		SortDir:          "asc",
	}
	ve := q.Validate()
	assert.False(t, ve.HasErrors())
	require.NotNil(t, q.SubscriptionTypeID)
	assert.Equal(t, int64(3), *q.SubscriptionTypeID)

	q = &ListSubscriptionsQuery{Status: "cancelled", SubscriptionType: "x"}
	ve = q.Validate()
	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Errors, "status")
	assert.Contains(t, ve.Errors, "subscription_type")
}

func TestRevenueStatsQueryValidate(t *testing.T) {
	q := &RevenueStatsQuery{Period: "weekly", StartDate: "2025-01-01", EndDate: "2025-03-01"}
	ve := q.Validate()
	assert.False(t, ve.HasErrors())
	require.NotNil(t, q.Start)
	require.NotNil(t, q.End)
	assert.Equal(t, "2025-01-01", q.Start.Format("2006-01-02"))
}

func TestRevenueStatsQueryValidateBadPeriod(t *testing.T) {
	q := &RevenueStatsQuery{Period: "hourly"}
	ve := q.Validate()
	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Errors, "period")
}

func TestRevenueStatsQueryValidateBadDates(t *testing.T) {
	q := &RevenueStatsQuery{StartDate: "01/02/2025", EndDate: "not-a-date"}
	ve := q.Validate()
	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Errors, "start_date")
	assert.Contains(t, ve.Errors, "end_date")
}

func TestRevenueStatsQueryValidateInvertedWindow(t *testing.T) {
	q := &RevenueStatsQuery{StartDate: "2025-06-01", EndDate: "2025-01-01"}
	ve := q.Validate()
	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Errors, "end_date")

	// Equal endpoints are a valid single-day window.
	q = &RevenueStatsQuery{StartDate: "2025-06-01", EndDate: "2025-06-01"}
	assert.False(t, q.Validate().HasErrors())
}
