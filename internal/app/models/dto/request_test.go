package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string       { return &s }
func floatPtr(f float64) *float64   { return &f }
func intPtr(i int) *int             { return &i }
func boolPtr(b bool) *bool          { return &b }
func timePtr(t time.Time) *time.Time { return &t }

func TestRegisterUserRequestValidate(t *testing.T) {
	r := &RegisterUserRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"}
	assert.False(t, r.Validate().HasErrors())

	r = &RegisterUserRequest{Name: "", Email: "not-an-email", Password: "short"}
	ve := r.Validate()
	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Errors, "name")
	assert.Contains(t, ve.Errors, "email")
	assert.Contains(t, ve.Errors, "password")
}

func TestRegisterInstructorRequestValidate(t *testing.T) {
	r := &RegisterInstructorRequest{
		Name:      "Grace",
		Email:     "grace@example.com",
		Password:  "secret123",
		Expertise: strPtr("Distributed systems"),
	}
	assert.False(t, r.Validate().HasErrors())

	r.Expertise = strPtr(strings.Repeat("x", 300))
	ve := r.Validate()
	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Errors, "expertise")
}

func TestLoginRequestValidate(t *testing.T) {
	r := &LoginRequest{Email: "ada@example.com", Password: "pw"}
	assert.False(t, r.Validate().HasErrors())

	r = &LoginRequest{}
	ve := r.Validate()
	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Errors, "email")
	assert.Contains(t, ve.Errors, "password")
}

func TestRefreshTokenRequestValidate(t *testing.T) {
	r := &RefreshTokenRequest{}
	ve := r.Validate()
	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Errors, "refresh_token")
}

func TestCreateCourseRequestValidate(t *testing.T) {
	r := &CreateCourseRequest{Title: "Go Basics", Description: "Intro course", Level: "beginner"}
	assert.False(t, r.Validate().HasErrors())

	r = &CreateCourseRequest{Title: "   ", Description: "", Level: "expert"}
	ve := r.Validate()
	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Errors, "title")
	assert.Contains(t, ve.Errors, "description")
	assert.Contains(t, ve.Errors, "level")
}

func TestScheduleBlogRequestValidate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	r := &ScheduleBlogRequest{PublishedAt: timePtr(now.Add(24 * time.Hour))}
	assert.False(t, r.Validate(now).HasErrors())

	// A past or present instant cannot be scheduled.
	r = &ScheduleBlogRequest{PublishedAt: timePtr(now)}
	require.True(t, r.Validate(now).HasErrors())

	r = &ScheduleBlogRequest{PublishedAt: timePtr(now.Add(-time.Hour))}
	require.True(t, r.Validate(now).HasErrors())

	r = &ScheduleBlogRequest{}
	ve := r.Validate(now)
	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Errors, "published_at")
}

func TestCreateSubscriptionTypeRequestValidate(t *testing.T) {
	r := &CreateSubscriptionTypeRequest{
		Name:        "Monthly",
		Description: "One month of access",
		Price:       floatPtr(9.99),
		Duration:    intPtr(30),
	}
	assert.False(t, r.Validate().HasErrors())

	// A free plan is allowed.
	r.Price = floatPtr(0)
	assert.False(t, r.Validate().HasErrors())

	r = &CreateSubscriptionTypeRequest{
		Name:     "",
		Price:    floatPtr(-1),
		Duration: intPtr(0),
	}
	ve := r.Validate()
	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Errors, "name")
	assert.Contains(t, ve.Errors, "description")
	assert.Contains(t, ve.Errors, "price")
	assert.Contains(t, ve.Errors, "duration")
}

func TestUpdateSubscriptionTypeRequestValidate(t *testing.T) {
	// Absent fields impose no constraint.
	r := &UpdateSubscriptionTypeRequest{}
	assert.False(t, r.Validate().HasErrors())

	r = &UpdateSubscriptionTypeRequest{Name: strPtr("  "), Price: floatPtr(-0.01), Duration: intPtr(0)}
	ve := r.Validate()
	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Errors, "name")
	assert.Contains(t, ve.Errors, "price")
	assert.Contains(t, ve.Errors, "duration")
}

func TestToggleUserStatusRequestValidate(t *testing.T) {
	r := &ToggleUserStatusRequest{IsActive: boolPtr(false)}
	assert.False(t, r.Validate().HasErrors())

	r = &ToggleUserStatusRequest{}
	ve := r.Validate()
	require.True(t, ve.HasErrors())
	assert.Contains(t, ve.Errors, "is_active")
}

func TestUpdateUserProfileRequestValidate(t *testing.T) {
	r := &UpdateUserProfileRequest{Name: strPtr("Ada Lovelace"), Phone: strPtr("+1-555-0100")}
	assert.False(t, r.Validate().HasErrors())

	r = &UpdateUserProfileRequest{Name: strPtr("")}
	require.True(t, r.Validate().HasErrors())
}
