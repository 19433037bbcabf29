package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kerem/learnhub/internal/app/models"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/app/services"
	"github.com/kerem/learnhub/internal/middleware"
)

// parseIDParam parses an ID parameter from the request path
func parseIDParam(ctx *gin.Context, paramName string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(paramName), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")))
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body, reporting a 400 on malformed JSON.
func bindJSON(ctx *gin.Context, target interface{}) bool {
	if err := ctx.ShouldBindJSON(target); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")))
		return false
	}
	return true
}

// AuthController handles registration, login and token lifecycle
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterUser godoc
// @Summary Register a user account
// @Description Create a learner account and return a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "Registration data"
// @Success 201 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrors
// @Router /auth/register [post]
func (c *AuthController) RegisterUser(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if ve := req.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	tokens, err := c.authService.RegisterUser(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(tokens))
}

// RegisterInstructor godoc
// @Summary Register an instructor account
// @Description Create an instructor account and return a token pair. New instructors start unverified.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterInstructorRequest true "Registration data"
// @Success 201 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrors
// @Router /auth/instructor/register [post]
func (c *AuthController) RegisterInstructor(ctx *gin.Context) {
	var req dto.RegisterInstructorRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if ve := req.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	tokens, err := c.authService.RegisterInstructor(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(tokens))
}

func (c *AuthController) login(ctx *gin.Context, role models.Role) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if ve := req.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	tokens, err := c.authService.Login(ctx, &req, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(tokens))
}

// LoginUser godoc
// @Summary Log in as a user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrors
// @Router /auth/login [post]
func (c *AuthController) LoginUser(ctx *gin.Context) {
	c.login(ctx, models.RoleUser)
}

// LoginInstructor godoc
// @Summary Log in as an instructor
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrors
// @Router /auth/instructor/login [post]
func (c *AuthController) LoginInstructor(ctx *gin.Context) {
	c.login(ctx, models.RoleInstructor)
}

// LoginAdmin godoc
// @Summary Log in as an admin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrors
// @Router /auth/admin/login [post]
func (c *AuthController) LoginAdmin(ctx *gin.Context) {
	c.login(ctx, models.RoleAdmin)
}

// Refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrors
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if ve := req.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	tokens, err := c.authService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(tokens))
}

// Logout godoc
// @Summary Revoke a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LogoutRequest true "Refresh token"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrors
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if ve := req.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	if err := c.authService.Logout(ctx, req.RefreshToken); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}
