package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/app/services"
	"github.com/kerem/learnhub/internal/middleware"
)

// UserController handles the authenticated user's own profile endpoints
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetProfile godoc
// @Summary Get the user's own profile
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserDetails}
// @Router /users/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	profile, err := c.userService.GetUser(ctx, middleware.PrincipalID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile))
}

// UpdateProfile godoc
// @Summary Update the user's own profile
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.UpdateUserProfileRequest true "Changed fields"
// @Success 200 {object} dto.APIResponse{data=dto.UserDetails}
// @Failure 422 {object} dto.ValidationErrors
// @Router /users/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateUserProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if ve := req.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	profile, err := c.userService.UpdateProfile(ctx, middleware.PrincipalID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile))
}
