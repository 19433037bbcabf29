package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/app/services"
	"github.com/kerem/learnhub/internal/middleware"
	"github.com/kerem/learnhub/internal/pkg/helpers"
)

// AdminUserController handles the admin user management endpoints
type AdminUserController struct {
	userService services.UserService
}

// NewAdminUserController creates a new AdminUserController
func NewAdminUserController(userService services.UserService) *AdminUserController {
	return &AdminUserController{userService: userService}
}

// ListUsers godoc
// @Summary List users
// @Description Filtered, sorted, paginated user listing with subscription and progress counts
// @Tags admin-users
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "Match name or email"
// @Param status query string false "active, inactive or all"
// @Param subscription query string false "paid, free or all"
// @Param sort_by query string false "name, email or created_at"
// @Param sort_dir query string false "asc or desc"
// @Param page query int false "Page number"
// @Success 200 {object} dto.APIResponse{data=dto.UserListResponse}
// @Failure 422 {object} dto.ValidationErrors
// @Router /admin/users [get]
func (c *AdminUserController) ListUsers(ctx *gin.Context) {
	var query dto.ListUsersQuery
	_ = ctx.ShouldBindQuery(&query)
	if ve := query.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	page := helpers.ParsePageParam(ctx)
	result, err := c.userService.ListUsers(ctx, &query, page, helpers.DefaultPageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// GetUser godoc
// @Summary Get one user
// @Tags admin-users
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserDetails}
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/users/{id} [get]
func (c *AdminUserController) GetUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.userService.GetUser(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// ToggleUserStatus godoc
// @Summary Set a user's account status
// @Description Explicitly activate or deactivate an account
// @Tags admin-users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Param request body dto.ToggleUserStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.UserDetails}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrors
// @Router /admin/users/{id}/toggle-status [patch]
func (c *AdminUserController) ToggleUserStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ToggleUserStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if ve := req.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	user, err := c.userService.SetActive(ctx, id, *req.IsActive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Removes the user together with their subscriptions and lesson progress
// @Tags admin-users
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/users/{id} [delete]
func (c *AdminUserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted"})
}
