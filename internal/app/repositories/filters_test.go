package repositories

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/learnhub/internal/app/models/dto"
)

var filterNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func baseBuilder(from string) squirrel.SelectBuilder {
	return squirrel.Select("count(*)").From(from).PlaceholderFormat(squirrel.Dollar)
}

func int64Ptr(v int64) *int64 { return &v }

func TestApplyCourseFiltersSearch(t *testing.T) {
	builder := applyCourseFilters(baseBuilder("courses c"), dto.ListCoursesQuery{Search: "go"})
	sql, args, err := builder.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "c.title ILIKE $1 OR c.description ILIKE $2")
	assert.Equal(t, []interface{}{"%go%", "%go%"}, args)
}

func TestApplyCourseFiltersStatus(t *testing.T) {
	sql, args, err := applyCourseFilters(baseBuilder("courses c"), dto.ListCoursesQuery{Status: "published"}).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "c.is_published = $1")
	assert.Equal(t, []interface{}{true}, args)

	sql, args, err = applyCourseFilters(baseBuilder("courses c"), dto.ListCoursesQuery{Status: "unpublished"}).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "c.is_published = $1")
	assert.Equal(t, []interface{}{false}, args)

	// "all" and absence impose no publication constraint.
	sql, _, err = applyCourseFilters(baseBuilder("courses c"), dto.ListCoursesQuery{Status: "all"}).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, sql, "is_published")
}

func TestApplyCourseFiltersInstructorAndLevel(t *testing.T) {
	params := dto.ListCoursesQuery{InstructorID: int64Ptr(7), Level: "advanced"}
	sql, args, err := applyCourseFilters(baseBuilder("courses c"), params).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "c.instructor_id = $1")
	assert.Contains(t, sql, "c.level = $2")
	assert.Equal(t, []interface{}{int64(7), "advanced"}, args)

	sql, _, err = applyCourseFilters(baseBuilder("courses c"), dto.ListCoursesQuery{Level: "all"}).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, sql, "c.level")
}

func TestApplyBlogFiltersStatus(t *testing.T) {
	// Publication state is computed against the passed instant.
	sql, args, err := applyBlogFilters(baseBuilder("blogs b"), dto.ListBlogsQuery{Status: "published"}, filterNow).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "b.published_at <= $1")
	assert.Equal(t, []interface{}{filterNow}, args)

	sql, args, err = applyBlogFilters(baseBuilder("blogs b"), dto.ListBlogsQuery{Status: "scheduled"}, filterNow).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "b.published_at > $1")
	assert.Equal(t, []interface{}{filterNow}, args)
}

func TestApplyUserFiltersSubscription(t *testing.T) {
	sql, args, err := applyUserFilters(baseBuilder("users u"), dto.ListUsersQuery{Subscription: "paid"}, filterNow).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "EXISTS (SELECT 1 FROM subscriptions s WHERE s.user_id = u.id AND s.deleted_at IS NULL AND s.end_date >= $1)")
	assert.Equal(t, []interface{}{filterNow}, args)

	sql, _, err = applyUserFilters(baseBuilder("users u"), dto.ListUsersQuery{Subscription: "free"}, filterNow).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "NOT EXISTS (SELECT 1 FROM subscriptions s")
}

func TestApplyUserFiltersStatusAndSearch(t *testing.T) {
	params := dto.ListUsersQuery{Search: "ada", Status: "inactive"}
	sql, args, err := applyUserFilters(baseBuilder("users u"), params, filterNow).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "u.name ILIKE $1 OR u.email ILIKE $2")
	assert.Contains(t, sql, "u.is_active = $3")
	assert.Equal(t, []interface{}{"%ada%", "%ada%", false}, args)
}

func TestApplySubscriptionFilters(t *testing.T) {
	params := dto.ListSubscriptionsQuery{
		Status:             "active",
		SubscriptionTypeID: int64Ptr(2),
		Search:             "ada",
	}
	sql, args, err := applySubscriptionFilters(baseBuilder("subscriptions s"), params, filterNow).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "s.end_date >= $1")
	assert.Contains(t, sql, "s.subscription_type_id = $2")
	assert.Contains(t, sql, "u.name ILIKE $3 OR u.email ILIKE $4")
	assert.Equal(t, []interface{}{filterNow, int64(2), "%ada%", "%ada%"}, args)

	sql, args, err = applySubscriptionFilters(baseBuilder("subscriptions s"), dto.ListSubscriptionsQuery{Status: "expired"}, filterNow).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "s.end_date < $1")
	assert.Equal(t, []interface{}{filterNow}, args)
}

func TestSortColumnWhitelists(t *testing.T) {
	// Sort keys map to qualified columns; anything else falls back to the
	// default ordering instead of reaching the SQL text.
	assert.Equal(t, "i.name", courseSortColumns["instructor_name"])
	assert.Equal(t, "c.title", courseSortColumns["title"])
	_, ok := courseSortColumns["price"]
	assert.False(t, ok)

	assert.Equal(t, "b.published_at", blogSortColumns["published_at"])
	assert.Equal(t, "i.name", blogSortColumns["instructor_name"])

	assert.Equal(t, "u.created_at", userSortColumns["created_at"])

	assert.Equal(t, "t.price", subscriptionSortColumns["price"])
	assert.Equal(t, "s.start_date", subscriptionSortColumns["start_date"])
}
