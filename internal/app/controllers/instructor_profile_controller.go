package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/app/services"
	"github.com/kerem/learnhub/internal/middleware"
)

// InstructorProfileController handles the instructor's own profile and
// dashboard endpoints
type InstructorProfileController struct {
	instructorService services.InstructorService
}

// NewInstructorProfileController creates a new InstructorProfileController
func NewInstructorProfileController(instructorService services.InstructorService) *InstructorProfileController {
	return &InstructorProfileController{instructorService: instructorService}
}

// GetProfile godoc
// @Summary Get the instructor's own profile
// @Tags instructor-profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.InstructorDetails}
// @Router /instructor/profile [get]
func (c *InstructorProfileController) GetProfile(ctx *gin.Context) {
	profile, err := c.instructorService.GetInstructor(ctx, middleware.PrincipalID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile))
}

// UpdateProfile godoc
// @Summary Update the instructor's own profile
// @Tags instructor-profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.UpdateInstructorProfileRequest true "Changed fields"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorDetails}
// @Failure 422 {object} dto.ValidationErrors
// @Router /instructor/profile [put]
func (c *InstructorProfileController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateInstructorProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if ve := req.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	profile, err := c.instructorService.UpdateProfile(ctx, middleware.PrincipalID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile))
}

// DashboardStats godoc
// @Summary The instructor's own content counts
// @Tags instructor-profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.InstructorDashboardStats}
// @Router /instructor/dashboard [get]
func (c *InstructorProfileController) DashboardStats(ctx *gin.Context) {
	stats, err := c.instructorService.GetDashboardStats(ctx, middleware.PrincipalID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}
