package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/app/services"
	"github.com/kerem/learnhub/internal/middleware"
	"github.com/kerem/learnhub/internal/pkg/helpers"
)

// InstructorCourseController handles the instructor's own course endpoints.
// Every operation is scoped to the authenticated instructor.
type InstructorCourseController struct {
	courseService services.CourseService
}

// NewInstructorCourseController creates a new InstructorCourseController
func NewInstructorCourseController(courseService services.CourseService) *InstructorCourseController {
	return &InstructorCourseController{courseService: courseService}
}

// ListMyCourses godoc
// @Summary List the instructor's own courses
// @Tags instructor-courses
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "Match title or description"
// @Param status query string false "published, unpublished or all"
// @Param level query string false "beginner, intermediate, advanced or all"
// @Param sort_by query string false "title or created_at"
// @Param sort_dir query string false "asc or desc"
// @Param page query int false "Page number"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse}
// @Failure 422 {object} dto.ValidationErrors
// @Router /instructor/courses [get]
func (c *InstructorCourseController) ListMyCourses(ctx *gin.Context) {
	var query dto.ListCoursesQuery
	_ = ctx.ShouldBindQuery(&query)
	query.Instructor = ""
	if ve := query.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	instructorID := middleware.PrincipalID(ctx)
	query.InstructorID = &instructorID

	page := helpers.ParsePageParam(ctx)
	result, err := c.courseService.ListCourses(ctx, &query, page, helpers.InstructorPageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// CreateCourse godoc
// @Summary Create a course
// @Tags instructor-courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateCourseRequest true "Course data"
// @Success 201 {object} dto.APIResponse{data=dto.CourseDetails}
// @Failure 422 {object} dto.ValidationErrors
// @Router /instructor/courses [post]
func (c *InstructorCourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if ve := req.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	course, err := c.courseService.CreateCourse(ctx, middleware.PrincipalID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(course))
}

// GetCourse godoc
// @Summary Get one of the instructor's courses
// @Tags instructor-courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseDetails}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructor/courses/{id} [get]
func (c *InstructorCourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if course.InstructorID != middleware.PrincipalID(ctx) {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// UpdateCourse godoc
// @Summary Update one of the instructor's courses
// @Tags instructor-courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Changed fields"
// @Success 200 {object} dto.APIResponse{data=dto.CourseDetails}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrors
// @Router /instructor/courses/{id} [put]
func (c *InstructorCourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if ve := req.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	instructorID := middleware.PrincipalID(ctx)
	course, err := c.courseService.UpdateCourse(ctx, id, &instructorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// TogglePublished godoc
// @Summary Toggle publication of one of the instructor's courses
// @Tags instructor-courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructor/courses/{id}/toggle-published [patch]
func (c *InstructorCourseController) TogglePublished(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	instructorID := middleware.PrincipalID(ctx)
	published, err := c.courseService.TogglePublished(ctx, id, &instructorID)
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
// @Summary Delete one of the instructor's courses
// @Tags instructor-courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructor/courses/{id} [delete]
func (c *InstructorCourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	instructorID := middleware.PrincipalID(ctx)
	if err := c.courseService.DeleteCourse(ctx, id, &instructorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Course deleted"})
}

// UploadThumbnail godoc
// @Summary Upload a course thumbnail
// @Tags instructor-courses
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Param thumbnail formData file true "Image file"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructor/courses/{id}/thumbnail [post]
func (c *InstructorCourseController) UploadThumbnail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("thumbnail")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Thumbnail file is required")))
		return
	}

	instructorID := middleware.PrincipalID(ctx)
	path, err := c.courseService.UploadThumbnail(ctx, id, &instructorID, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Thumbnail uploaded",
		Data:    gin.H{"thumbnail": path},
	})
}
