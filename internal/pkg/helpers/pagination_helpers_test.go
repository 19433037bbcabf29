package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 15)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, 15, limit)

	offset, limit = CalculateOffsetLimit(3, 10)
	assert.Equal(t, uint64(20), offset)
	assert.Equal(t, 10, limit)

	// Page below 1 falls back to the first page.
	offset, _ = CalculateOffsetLimit(0, 15)
	assert.Equal(t, uint64(0), offset)

	offset, _ = CalculateOffsetLimit(-5, 15)
	assert.Equal(t, uint64(0), offset)

	// Non-positive size falls back to the default page size.
	_, limit = CalculateOffsetLimit(1, 0)
	assert.Equal(t, DefaultPageSize, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(31, 2, 15)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.LastPage)
	assert.Equal(t, 15, info.PerPage)
	assert.Equal(t, int64(31), info.Total)

	// Exact multiple of the page size.
	info = NewPaginationInfo(30, 1, 15)
	assert.Equal(t, 2, info.LastPage)
}

func TestNewPaginationInfoOutOfRangePage(t *testing.T) {
	// A request past the last page keeps the requested page number so the
	// caller gets an empty item list with accurate metadata.
	info := NewPaginationInfo(10, 99, 15)
	assert.Equal(t, 99, info.CurrentPage)
	assert.Equal(t, 1, info.LastPage)
	assert.Equal(t, int64(10), info.Total)
}

func TestNewPaginationInfoEmpty(t *testing.T) {
	info := NewPaginationInfo(0, 1, 15)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 1, info.LastPage)
	assert.Equal(t, int64(0), info.Total)

	info = NewPaginationInfo(0, 4, 15)
	assert.Equal(t, 4, info.CurrentPage)
	assert.Equal(t, 0, info.LastPage)
}

func newTestContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", url, nil)
	return c
}

func TestParsePageParam(t *testing.T) {
	c := newTestContext(t, "/courses?page=3")
	require.Equal(t, 3, ParsePageParam(c))

	c = newTestContext(t, "/courses")
	require.Equal(t, 1, ParsePageParam(c))

	c = newTestContext(t, "/courses?page=abc")
	require.Equal(t, 1, ParsePageParam(c))

	c = newTestContext(t, "/courses?page=0")
	require.Equal(t, 1, ParsePageParam(c))

	c = newTestContext(t, "/courses?page=-2")
	require.Equal(t, 1, ParsePageParam(c))
}
