package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/app/services"
	"github.com/kerem/learnhub/internal/middleware"
	"github.com/kerem/learnhub/internal/pkg/helpers"
)

// AdminSubscriptionController handles the admin subscription and plan
// endpoints
type AdminSubscriptionController struct {
	subscriptionService services.SubscriptionService
}

// NewAdminSubscriptionController creates a new AdminSubscriptionController
func NewAdminSubscriptionController(subscriptionService services.SubscriptionService) *AdminSubscriptionController {
	return &AdminSubscriptionController{subscriptionService: subscriptionService}
}

// ListSubscriptions godoc
// @Summary List subscriptions
// @Description Filtered, sorted, paginated subscription listing. Active means the end date has not yet passed.
// @Tags admin-subscriptions
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "active, expired or all"
// @Param subscription_type query int false "Filter by plan ID"
// @Param search query string false "Match the owning user's name or email"
// @Param sort_by query string false "start_date, end_date or price"
// @Param sort_dir query string false "asc or desc"
// @Param page query int false "Page number"
// @Success 200 {object} dto.APIResponse{data=dto.SubscriptionListResponse}
// @Failure 422 {object} dto.ValidationErrors
// @Router /admin/subscriptions [get]
func (c *AdminSubscriptionController) ListSubscriptions(ctx *gin.Context) {
	var query dto.ListSubscriptionsQuery
	_ = ctx.ShouldBindQuery(&query)
	ve := query.Validate()
	if query.SubscriptionTypeID != nil {
		exists, err := c.subscriptionService.SubscriptionTypeExists(ctx, *query.SubscriptionTypeID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		if !exists {
			ve.Add("subscription_type", "the selected subscription_type is invalid")
		}
	}
	if ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	page := helpers.ParsePageParam(ctx)
	result, err := c.subscriptionService.ListSubscriptions(ctx, &query, page, helpers.DefaultPageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// GetSubscription godoc
// @Summary Get one subscription
// @Tags admin-subscriptions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Subscription ID"
// @Success 200 {object} dto.APIResponse{data=dto.SubscriptionListItem}
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/subscriptions/{id} [get]
func (c *AdminSubscriptionController) GetSubscription(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	sub, err := c.subscriptionService.GetSubscription(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(sub))
}

// ListSubscriptionTypes godoc
// @Summary List subscription plans
// @Description Every plan with its subscription count, cheapest first
// @Tags admin-subscriptions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.SubscriptionTypeWithCount}
// @Router /admin/subscription-types [get]
func (c *AdminSubscriptionController) ListSubscriptionTypes(ctx *gin.Context) {
	types, err := c.subscriptionService.ListSubscriptionTypes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(types))
}

// GetSubscriptionType godoc
// @Summary Get one plan
// @Tags admin-subscriptions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} dto.APIResponse{data=models.SubscriptionType}
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/subscription-types/{id} [get]
func (c *AdminSubscriptionController) GetSubscriptionType(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	st, err := c.subscriptionService.GetSubscriptionType(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(st))
}

// CreateSubscriptionType godoc
// @Summary Create a plan
// @Tags admin-subscriptions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateSubscriptionTypeRequest true "Plan data"
// @Success 201 {object} dto.APIResponse{data=models.SubscriptionType}
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrors
// @Router /admin/subscription-types [post]
func (c *AdminSubscriptionController) CreateSubscriptionType(ctx *gin.Context) {
	var req dto.CreateSubscriptionTypeRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if ve := req.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	st, err := c.subscriptionService.CreateSubscriptionType(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(st))
}

// UpdateSubscriptionType godoc
// @Summary Update a plan
// @Tags admin-subscriptions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Plan ID"
// @Param request body dto.UpdateSubscriptionTypeRequest true "Changed fields"
// @Success 200 {object} dto.APIResponse{data=models.SubscriptionType}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrors
// @Router /admin/subscription-types/{id} [put]
func (c *AdminSubscriptionController) UpdateSubscriptionType(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubscriptionTypeRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if ve := req.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	st, err := c.subscriptionService.UpdateSubscriptionType(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(st))
}

// ToggleSubscriptionTypeStatus godoc
// @Summary Toggle a plan's active flag
// @Tags admin-subscriptions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/subscription-types/{id}/toggle-status [patch]
func (c *AdminSubscriptionController) ToggleSubscriptionTypeStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	active, err := c.subscriptionService.ToggleSubscriptionTypeActive(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Status updated",
		Data:    gin.H{"is_active": active},
	})
}

// DeleteSubscriptionType godoc
// @Summary Delete a plan
// @Description Existing subscriptions keep their reference to the removed plan
// @Tags admin-subscriptions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/subscription-types/{id} [delete]
func (c *AdminSubscriptionController) DeleteSubscriptionType(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.subscriptionService.DeleteSubscriptionType(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Subscription type deleted"})
}
