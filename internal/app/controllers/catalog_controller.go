package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/app/services"
	"github.com/kerem/learnhub/internal/middleware"
	"github.com/kerem/learnhub/internal/pkg/helpers"
)

// CatalogController handles the public, unauthenticated content endpoints.
// Only published content is visible here.
type CatalogController struct {
	courseService       services.CourseService
	blogService         services.BlogService
	subscriptionService services.SubscriptionService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(
	courseService services.CourseService,
	blogService services.BlogService,
	subscriptionService services.SubscriptionService,
) *CatalogController {
	return &CatalogController{
		courseService:       courseService,
		blogService:         blogService,
		subscriptionService: subscriptionService,
	}
}

// ListCourses godoc
// @Summary List published courses
// @Tags catalog
// @Produce json
// @Param search query string false "Match title or description"
// @Param level query string false "beginner, intermediate, advanced or all"
// @Param sort_by query string false "title or created_at"
// @Param sort_dir query string false "asc or desc"
// @Param page query int false "Page number"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse}
// @Failure 422 {object} dto.ValidationErrors
// @Router /courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	var query dto.ListCoursesQuery
	_ = ctx.ShouldBindQuery(&query)
	query.Status = "published"
	query.Instructor = ""
	if ve := query.Validate(); ve.HasErrors() {
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
// @Summary Get one published course
// @Tags catalog
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseDetails}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [get]
func (c *CatalogController) GetCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !course.IsPublished {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found")))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// ListBlogs godoc
// @Summary List published blog posts
// @Tags catalog
// @Produce json
// @Param search query string false "Match title or content"
// @Param sort_by query string false "title, created_at or published_at"
// @Param sort_dir query string false "asc or desc"
// @Param page query int false "Page number"
// @Success 200 {object} dto.APIResponse{data=dto.BlogListResponse}
// @Failure 422 {object} dto.ValidationErrors
// @Router /blogs [get]
func (c *CatalogController) ListBlogs(ctx *gin.Context) {
	var query dto.ListBlogsQuery
	_ = ctx.ShouldBindQuery(&query)
	query.Status = "published"
	query.Instructor = ""
	if ve := query.Validate(); ve.HasErrors() {
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
// @Summary Get one published blog post
// @Tags catalog
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.APIResponse{data=dto.BlogListItem}
// @Failure 404 {object} dto.ErrorResponse
// @Router /blogs/{id} [get]
func (c *CatalogController) GetBlog(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	blog, err := c.blogService.GetBlog(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if blog.PublishedAt.After(time.Now()) {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Blog not found")))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(blog))
}

// ListSubscriptionTypes godoc
// @Summary List purchasable plans
// @Description Every live plan, cheapest first
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.SubscriptionTypeWithCount}
// @Router /subscription-types [get]
func (c *CatalogController) ListSubscriptionTypes(ctx *gin.Context) {
	types, err := c.subscriptionService.ListSubscriptionTypes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	active := make([]dto.SubscriptionTypeWithCount, 0, len(types))
	for _, st := range types {
		if st.IsActive {
			active = append(active, st)
		}
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(active))
}
