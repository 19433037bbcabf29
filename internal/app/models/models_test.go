package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBlogIsPublished(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	past := &Blog{PublishedAt: now.Add(-time.Hour)}
	assert.True(t, past.IsPublished(now))

	// A publication instant equal to now counts as published.
	exact := &Blog{PublishedAt: now}
	assert.True(t, exact.IsPublished(now))

	future := &Blog{PublishedAt: now.Add(time.Hour)}
	assert.False(t, future.IsPublished(now))
}

func TestSubscriptionIsActive(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	active := &Subscription{EndDate: now.Add(24 * time.Hour)}
	assert.True(t, active.IsActive(now))

	// An end date equal to now is still active.
	ending := &Subscription{EndDate: now}
	assert.True(t, ending.IsActive(now))

	expired := &Subscription{EndDate: now.Add(-time.Minute)}
	assert.False(t, expired.IsActive(now))
}

func TestValidCourseLevel(t *testing.T) {
	assert.True(t, ValidCourseLevel("beginner"))
	assert.True(t, ValidCourseLevel("intermediate"))
	assert.True(t, ValidCourseLevel("advanced"))
	assert.False(t, ValidCourseLevel("expert"))
	assert.False(t, ValidCourseLevel(""))
}
