package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/app/services"
	"github.com/kerem/learnhub/internal/middleware"
)

// AdminAnalyticsController handles the admin report endpoints
type AdminAnalyticsController struct {
	analyticsService services.AnalyticsService
}

// NewAdminAnalyticsController creates a new AdminAnalyticsController
func NewAdminAnalyticsController(analyticsService services.AnalyticsService) *AdminAnalyticsController {
	return &AdminAnalyticsController{analyticsService: analyticsService}
}

// RevenueStats godoc
// @Summary Revenue report
// @Description Bucketed revenue time series over a window plus window totals and a per-plan breakdown. The window defaults to the period's natural span ending now.
// @Tags admin-analytics
// @Produce json
// @Security ApiKeyAuth
// @Param period query string false "daily, weekly, monthly or yearly (default monthly)"
// @Param start_date query string false "Window start (YYYY-MM-DD)"
// @Param end_date query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.RevenueStatsResponse}
// @Failure 422 {object} dto.ValidationErrors
// @Router /admin/analytics/revenue [get]
func (c *AdminAnalyticsController) RevenueStats(ctx *gin.Context) {
	var query dto.RevenueStatsQuery
	_ = ctx.ShouldBindQuery(&query)
	if ve := query.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	report, err := c.analyticsService.GetRevenueStats(ctx, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report))
}

// DashboardStats godoc
// @Summary Admin dashboard totals
// @Tags admin-analytics
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStats}
// @Router /admin/analytics/dashboard [get]
func (c *AdminAnalyticsController) DashboardStats(ctx *gin.Context) {
	stats, err := c.analyticsService.GetDashboardStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}
