package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/kerem/learnhub/internal/app/models"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/app/repositories"
	"github.com/kerem/learnhub/internal/pkg/apperrors"
	"github.com/kerem/learnhub/internal/pkg/filestorage"
)

// BlogService defines the interface for blog operations
type BlogService interface {
	ListBlogs(ctx context.Context, query *dto.ListBlogsQuery, page, size int) (*dto.BlogListResponse, error)
	GetBlog(ctx context.Context, id int64) (*dto.BlogListItem, error)
	CreateBlog(ctx context.Context, instructorID int64, req *dto.CreateBlogRequest) (*dto.BlogListItem, error)
	UpdateBlog(ctx context.Context, id int64, actorID *int64, req *dto.UpdateBlogRequest) (*dto.BlogListItem, error)
	ScheduleBlog(ctx context.Context, id int64, actorID *int64, at time.Time) (*dto.BlogListItem, error)
	PublishBlogNow(ctx context.Context, id int64, actorID *int64) (*dto.BlogListItem, error)
	DeleteBlog(ctx context.Context, id int64, actorID *int64) error
	UploadThumbnail(ctx context.Context, id int64, actorID *int64, file *multipart.FileHeader) (string, error)
}

// blogServiceImpl implements BlogService
type blogServiceImpl struct {
	blogRepo *repositories.BlogRepository
	storage  filestorage.FileStorage
}

// NewBlogService creates a new BlogService
func NewBlogService(blogRepo *repositories.BlogRepository, storage filestorage.FileStorage) BlogService {
	return &blogServiceImpl{
		blogRepo: blogRepo,
		storage:  storage,
	}
}

func (s *blogServiceImpl) checkOwnership(ctx context.Context, id int64, actorID *int64) error {
	if actorID == nil {
		return nil
	}
	ownerID, err := s.blogRepo.GetBlogOwner(ctx, id)
	if err != nil {
		return err
	}
	if ownerID != *actorID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ListBlogs retrieves a filtered, sorted, paginated blog listing.
func (s *blogServiceImpl) ListBlogs(ctx context.Context, query *dto.ListBlogsQuery, page, size int) (*dto.BlogListResponse, error) {
	items, pagination, err := s.blogRepo.GetAllBlogs(ctx, *query, page, size)
	if err != nil {
		return nil, fmt.Errorf("error listing blogs: %w", err)
	}
	return &dto.BlogListResponse{Items: items, Pagination: pagination}, nil
}

// GetBlog retrieves one blog post.
func (s *blogServiceImpl) GetBlog(ctx context.Context, id int64) (*dto.BlogListItem, error) {
	return s.blogRepo.GetBlogByID(ctx, id)
}

// CreateBlog creates a post owned by instructorID. A missing published_at
// publishes immediately.
func (s *blogServiceImpl) CreateBlog(ctx context.Context, instructorID int64, req *dto.CreateBlogRequest) (*dto.BlogListItem, error) {
	publishedAt := time.Now()
	if req.PublishedAt != nil {
		publishedAt = *req.PublishedAt
	}
	blog := &models.Blog{
		InstructorID: instructorID,
		Title:        req.Title,
		Content:      req.Content,
		Thumbnail:    req.Thumbnail,
		PublishedAt:  publishedAt,
	}

	id, err := s.blogRepo.CreateBlog(ctx, blog)
	if err != nil {
		return nil, fmt.Errorf("error creating blog: %w", err)
	}
	return s.blogRepo.GetBlogByID(ctx, id)
}

// UpdateBlog applies a partial update after an ownership check.
func (s *blogServiceImpl) UpdateBlog(ctx context.Context, id int64, actorID *int64, req *dto.UpdateBlogRequest) (*dto.BlogListItem, error) {
	if err := s.checkOwnership(ctx, id, actorID); err != nil {
		return nil, err
	}
	if err := s.blogRepo.UpdateBlog(ctx, id, req); err != nil {
		return nil, err
	}
	return s.blogRepo.GetBlogByID(ctx, id)
}

// ScheduleBlog moves the publication instant into the future.
func (s *blogServiceImpl) ScheduleBlog(ctx context.Context, id int64, actorID *int64, at time.Time) (*dto.BlogListItem, error) {
	if err := s.checkOwnership(ctx, id, actorID); err != nil {
		return nil, err
	}
	if err := s.blogRepo.SetPublishedAt(ctx, id, at); err != nil {
		return nil, err
	}
	return s.blogRepo.GetBlogByID(ctx, id)
}

// PublishBlogNow makes a scheduled post visible immediately.
func (s *blogServiceImpl) PublishBlogNow(ctx context.Context, id int64, actorID *int64) (*dto.BlogListItem, error) {
	if err := s.checkOwnership(ctx, id, actorID); err != nil {
		return nil, err
	}
	if err := s.blogRepo.SetPublishedAt(ctx, id, time.Now()); err != nil {
		return nil, err
	}
	return s.blogRepo.GetBlogByID(ctx, id)
}

// DeleteBlog removes a post after an ownership check.
func (s *blogServiceImpl) DeleteBlog(ctx context.Context, id int64, actorID *int64) error {
	if err := s.checkOwnership(ctx, id, actorID); err != nil {
		return err
	}
	return s.blogRepo.DeleteBlog(ctx, id)
}

// UploadThumbnail stores the uploaded image and points the post at it.
func (s *blogServiceImpl) UploadThumbnail(ctx context.Context, id int64, actorID *int64, file *multipart.FileHeader) (string, error) {
	if err := s.checkOwnership(ctx, id, actorID); err != nil {
		return "", err
	}
	path, err := s.storage.SaveFileWithPath(file, "blogs")
	if err != nil {
		return "", fmt.Errorf("error saving blog thumbnail: %w", err)
	}
	if err := s.blogRepo.SetThumbnail(ctx, id, path); err != nil {
		return "", err
	}
	return path, nil
}
