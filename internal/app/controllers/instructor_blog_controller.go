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

// InstructorBlogController handles the instructor's own blog endpoints.
type InstructorBlogController struct {
	blogService services.BlogService
}

// NewInstructorBlogController creates a new InstructorBlogController
func NewInstructorBlogController(blogService services.BlogService) *InstructorBlogController {
	return &InstructorBlogController{blogService: blogService}
}

// ListMyBlogs godoc
// @Summary List the instructor's own blog posts
// @Tags instructor-blogs
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "Match title or content"
// @Param status query string false "published, scheduled or all"
// @Param sort_by query string false "title, created_at or published_at"
// @Param sort_dir query string false "asc or desc"
// @Param page query int false "Page number"
// @Success 200 {object} dto.APIResponse{data=dto.BlogListResponse}
// @Failure 422 {object} dto.ValidationErrors
// @Router /instructor/blogs [get]
func (c *InstructorBlogController) ListMyBlogs(ctx *gin.Context) {
	var query dto.ListBlogsQuery
	_ = ctx.ShouldBindQuery(&query)
	query.Instructor = ""
	if ve := query.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	instructorID := middleware.PrincipalID(ctx)
	query.InstructorID = &instructorID

	page := helpers.ParsePageParam(ctx)
	result, err := c.blogService.ListBlogs(ctx, &query, page, helpers.InstructorPageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// CreateBlog godoc
// @Summary Create a blog post
// @Description A missing published_at publishes immediately; a future one schedules the post
// @Tags instructor-blogs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateBlogRequest true "Blog data"
// @Success 201 {object} dto.APIResponse{data=dto.BlogListItem}
// @Failure 422 {object} dto.ValidationErrors
// @Router /instructor/blogs [post]
func (c *InstructorBlogController) CreateBlog(ctx *gin.Context) {
	var req dto.CreateBlogRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if ve := req.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	blog, err := c.blogService.CreateBlog(ctx, middleware.PrincipalID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(blog))
}

// GetBlog godoc
// @Summary Get one of the instructor's blog posts
// @Tags instructor-blogs
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.APIResponse{data=dto.BlogListItem}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructor/blogs/{id} [get]
func (c *InstructorBlogController) GetBlog(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	blog, err := c.blogService.GetBlog(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if blog.InstructorID != middleware.PrincipalID(ctx) {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(blog))
}

// UpdateBlog godoc
// @Summary Update one of the instructor's blog posts
// @Tags instructor-blogs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Blog ID"
// @Param request body dto.UpdateBlogRequest true "Changed fields"
// @Success 200 {object} dto.APIResponse{data=dto.BlogListItem}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrors
// @Router /instructor/blogs/{id} [put]
func (c *InstructorBlogController) UpdateBlog(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBlogRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if ve := req.Validate(); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	instructorID := middleware.PrincipalID(ctx)
	blog, err := c.blogService.UpdateBlog(ctx, id, &instructorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(blog))
}

// ScheduleBlog godoc
// @Summary Schedule a blog post for future publication
// @Tags instructor-blogs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Blog ID"
// @Param request body dto.ScheduleBlogRequest true "Future publication instant"
// @Success 200 {object} dto.APIResponse{data=dto.BlogListItem}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrors
// @Router /instructor/blogs/{id}/schedule [patch]
func (c *InstructorBlogController) ScheduleBlog(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ScheduleBlogRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if ve := req.Validate(time.Now()); ve.HasErrors() {
		middleware.HandleValidationErrors(ctx, ve)
		return
	}

	instructorID := middleware.PrincipalID(ctx)
	blog, err := c.blogService.ScheduleBlog(ctx, id, &instructorID, *req.PublishedAt)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(blog))
}

// PublishNow godoc
// @Summary Publish a scheduled blog post immediately
// @Tags instructor-blogs
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.APIResponse{data=dto.BlogListItem}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructor/blogs/{id}/publish [patch]
func (c *InstructorBlogController) PublishNow(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	instructorID := middleware.PrincipalID(ctx)
	blog, err := c.blogService.PublishBlogNow(ctx, id, &instructorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(blog))
}

// DeleteBlog godoc
// @Summary Delete one of the instructor's blog posts
// @Tags instructor-blogs
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructor/blogs/{id} [delete]
func (c *InstructorBlogController) DeleteBlog(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	instructorID := middleware.PrincipalID(ctx)
	if err := c.blogService.DeleteBlog(ctx, id, &instructorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Blog deleted"})
}

// UploadThumbnail godoc
// @Summary Upload a blog thumbnail
// @Tags instructor-blogs
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Blog ID"
// @Param thumbnail formData file true "Image file"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructor/blogs/{id}/thumbnail [post]
func (c *InstructorBlogController) UploadThumbnail(ctx *gin.Context) {
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
	path, err := c.blogService.UploadThumbnail(ctx, id, &instructorID, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Thumbnail uploaded",
		Data:    gin.H{"thumbnail": path},
	})
}
