package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/app/services"
	"github.com/kerem/learnhub/internal/middleware"
	"github.com/kerem/learnhub/internal/pkg/helpers"
)

// AdminContentController handles the admin course and blog endpoints
type AdminContentController struct {
	courseService     services.CourseService
	blogService       services.BlogService
	instructorService services.InstructorService
}

// NewAdminContentController creates a new AdminContentController
func NewAdminContentController(
	courseService services.CourseService,
	blogService services.BlogService,
	instructorService services.InstructorService,
) *AdminContentController {
	return &AdminContentController{
		courseService:     courseService,
		blogService:       blogService,
		instructorService: instructorService,
	}
}

// checkInstructorFilter verifies a referential instructor filter before any
// listing query runs, so a dangling id fails alongside the other parameters.
func (c *AdminContentController) checkInstructorFilter(ctx *gin.Context, ve *dto.ValidationErrors, instructorID *int64) error {
	if instructorID == nil {
		return nil
	}
	exists, err := c.instructorService.InstructorExists(ctx, *instructorID)
	if err != nil {
		return err
	}
	if !exists {
		ve.Add("instructor", "the selected instructor is invalid")
	}
	return nil
}

// ListCourses godoc
// @Summary List courses
// @Description Filtered, sorted, paginated course listing with instructor names and module counts
// @Tags admin-content
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "Match title or description"
// @Param status query string false "published, unpublished or all"
// @Param instructor query int false "Filter by instructor ID"
// @Param level query string false "beginner, intermediate, advanced or all"
// @Param sort_by query string false "title, created_at or instructor_name"
// @Param sort_dir query string false "asc or desc"
// @Param page query int false "Page number"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse}
// @Failure 422 {object} dto.ValidationErrors
// @Router /admin/courses [get]
func (c *AdminContentController) ListCourses(ctx *gin.Context) {
	var query dto.ListCoursesQuery
	_ = ctx.ShouldBindQuery(&query)
	ve := query.Validate()
	if err := c.checkInstructorFilter(ctx, ve, query.InstructorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	page := helpers.ParsePageParam(ctx)
	result, err := c.courseService.ListCourses(ctx, &query, page, helpers.DefaultPageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// GetCourse godoc
// @Summary Get one course
// @Tags admin-content
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseDetails}
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/courses/{id} [get]
func (c *AdminContentController) GetCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// ToggleCoursePublished godoc
// @Summary Toggle a course's publication flag
// @Tags admin-content
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/courses/{id}/toggle-published [patch]
func (c *AdminContentController) ToggleCoursePublished(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	published, err := c.courseService.TogglePublished(ctx, id, nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Publication updated",
		Data:    gin.H{"is_published": published},
	})
}

// DeleteCourse godoc
// @Summary Delete a course
// @Tags admin-content
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/courses/{id} [delete]
func (c *AdminContentController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id, nil); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Course deleted"})
}

// ListBlogs godoc
// @Summary List blog posts
// @Description Filtered, sorted, paginated blog listing. Publication state is evaluated against the current instant.
// @Tags admin-content
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "Match title or content"
// @Param status query string false "published, scheduled or all"
// @Param instructor query int false "Filter by instructor ID"
// @Param sort_by query string false "title, created_at, published_at or instructor_name"
// @Param sort_dir query string false "asc or desc"
// @Param page query int false "Page number"
// @Success 200 {object} dto.APIResponse{data=dto.BlogListResponse}
// @Failure 422 {object} dto.ValidationErrors
// @Router /admin/blogs [get]
func (c *AdminContentController) ListBlogs(ctx *gin.Context) {
	var query dto.ListBlogsQuery
	_ = ctx.ShouldBindQuery(&query)
	ve := query.Validate()
	if err := c.checkInstructorFilter(ctx, ve, query.InstructorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	page := helpers.ParsePageParam(ctx)
	result, err := c.blogService.ListBlogs(ctx, &query, page, helpers.DefaultPageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// GetBlog godoc
// @Summary Get one blog post
// @Tags admin-content
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.APIResponse{data=dto.BlogListItem}
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/blogs/{id} [get]
func (c *AdminContentController) GetBlog(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	blog, err := c.blogService.GetBlog(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(blog))
}

// DeleteBlog godoc
// @Summary Delete a blog post
// @Tags admin-content
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/blogs/{id} [delete]
func (c *AdminContentController) DeleteBlog(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.blogService.DeleteBlog(ctx, id, nil); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Blog deleted"})
}
