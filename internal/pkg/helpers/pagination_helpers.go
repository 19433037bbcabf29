package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kerem/learnhub/internal/app/models/dto"
)

const (
	// DefaultPageSize is the fixed page size for admin and public listings.
	DefaultPageSize = 15
	// InstructorPageSize is the fixed page size for instructor-scoped "my content" listings.
	InstructorPageSize = 10
	// DefaultPage is 1-based
	DefaultPage = 1
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	if size <= 0 {
		limit = DefaultPageSize
	} else {
		limit = size
	}

	if page < 1 {
		page = DefaultPage
	}

	offset = uint64((page - 1) * limit)
	return offset, limit
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page should be the 1-based page number. The requested page is kept as-is even
// when it lies past the last page, so an out-of-range request yields an empty
// item list with accurate metadata rather than an error.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	lastPage := 0
	if totalItems > 0 {
		lastPage = int(math.Ceil(float64(totalItems) / float64(size)))
	} else if page == 1 {
		lastPage = 1
	}

	return dto.PaginationInfo{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     size,
		Total:       totalItems,
	}
}

// ParsePageParam extracts the 1-based page number from the request.
// Absent or invalid values default to page 1; the page size is fixed per
// listing and never taken from the client.
func ParsePageParam(c *gin.Context) int {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}
