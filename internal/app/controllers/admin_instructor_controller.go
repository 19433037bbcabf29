package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/app/services"
	"github.com/kerem/learnhub/internal/middleware"
	"github.com/kerem/learnhub/internal/pkg/helpers"
)

// AdminInstructorController handles the admin instructor management endpoints
type AdminInstructorController struct {
	instructorService services.InstructorService
}

// NewAdminInstructorController creates a new AdminInstructorController
func NewAdminInstructorController(instructorService services.InstructorService) *AdminInstructorController {
	return &AdminInstructorController{instructorService: instructorService}
}

// ListInstructors godoc
// @Summary List instructors
// @Description Filtered, sorted, paginated instructor listing with content counts
// @Tags admin-instructors
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "Match name, email or expertise"
// @Param verification query string false "verified, unverified or all"
// @Param sort_by query string false "name, email or created_at"
// @Param sort_dir query string false "asc or desc"
// @Param page query int false "Page number"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorListResponse}
// @Failure 422 {object} dto.ValidationErrors
// @Router /admin/instructors [get]
func (c *AdminInstructorController) ListInstructors(ctx *gin.Context) {
	var query dto.ListInstructorsQuery
	_ = ctx.ShouldBindQuery(&query)
	if ve := query.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	page := helpers.ParsePageParam(ctx)
	result, err := c.instructorService.ListInstructors(ctx, &query, page, helpers.DefaultPageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// GetInstructor godoc
// @Summary Get one instructor
// @Tags admin-instructors
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorDetails}
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/instructors/{id} [get]
func (c *AdminInstructorController) GetInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	instructor, err := c.instructorService.GetInstructor(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(instructor))
}

// ToggleVerification godoc
// @Summary Toggle an instructor's verification flag
// @Tags admin-instructors
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/instructors/{id}/toggle-verification [patch]
func (c *AdminInstructorController) ToggleVerification(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	verified, err := c.instructorService.ToggleVerification(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Verification updated",
		Data:    gin.H{"is_verified": verified},
	})
}

// DeleteInstructor godoc
// @Summary Delete an instructor
// @Description Removes the instructor together with every course and blog they own
// @Tags admin-instructors
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/instructors/{id} [delete]
func (c *AdminInstructorController) DeleteInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.instructorService.DeleteInstructor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Instructor deleted"})
}
