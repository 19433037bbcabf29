package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/kerem/learnhub/internal/app/models"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/app/repositories"
	"github.com/kerem/learnhub/internal/pkg/apperrors"
	"github.com/kerem/learnhub/internal/pkg/filestorage"
)

// CourseService defines the interface for course operations
type CourseService interface {
	ListCourses(ctx context.Context, query *dto.ListCoursesQuery, page, size int) (*dto.CourseListResponse, error)
	GetCourse(ctx context.Context, id int64) (*dto.CourseDetails, error)
	CreateCourse(ctx context.Context, instructorID int64, req *dto.CreateCourseRequest) (*dto.CourseDetails, error)
	UpdateCourse(ctx context.Context, id int64, actorID *int64, req *dto.UpdateCourseRequest) (*dto.CourseDetails, error)
	TogglePublished(ctx context.Context, id int64, actorID *int64) (bool, error)
	DeleteCourse(ctx context.Context, id int64, actorID *int64) error
	UploadThumbnail(ctx context.Context, id int64, actorID *int64, file *multipart.FileHeader) (string, error)
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
	storage    filestorage.FileStorage
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo *repositories.CourseRepository, storage filestorage.FileStorage) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		storage:    storage,
	}
}

// checkOwnership rejects the operation when actorID is set and does not own
// the course. A nil actorID means an admin acting without ownership limits.
func (s *courseServiceImpl) checkOwnership(ctx context.Context, id int64, actorID *int64) error {
	if actorID == nil {
		return nil
	}
	ownerID, err := s.courseRepo.GetCourseOwner(ctx, id)
	if err != nil {
		return err
	}
	if ownerID != *actorID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ListCourses retrieves a filtered, sorted, paginated course listing.
func (s *courseServiceImpl) ListCourses(ctx context.Context, query *dto.ListCoursesQuery, page, size int) (*dto.CourseListResponse, error) {
	items, pagination, err := s.courseRepo.GetAllCourses(ctx, *query, page, size)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	return &dto.CourseListResponse{Items: items, Pagination: pagination}, nil
}

// GetCourse retrieves one course with its counts.
func (s *courseServiceImpl) GetCourse(ctx context.Context, id int64) (*dto.CourseDetails, error) {
	return s.courseRepo.GetCourseByID(ctx, id)
}

// CreateCourse creates a course owned by instructorID.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, instructorID int64, req *dto.CreateCourseRequest) (*dto.CourseDetails, error) {
	course := &models.Course{
		InstructorID: instructorID,
		Title:        req.Title,
		Description:  req.Description,
		Thumbnail:    req.Thumbnail,
		Level:        models.CourseLevel(req.Level),
	}
	if req.IsPublished != nil {
		course.IsPublished = *req.IsPublished
	}

	id, err := s.courseRepo.CreateCourse(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	return s.courseRepo.GetCourseByID(ctx, id)
}

// UpdateCourse applies a partial update after an ownership check.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, actorID *int64, req *dto.UpdateCourseRequest) (*dto.CourseDetails, error) {
	if err := s.checkOwnership(ctx, id, actorID); err != nil {
		return nil, err
	}
	if err := s.courseRepo.UpdateCourse(ctx, id, req); err != nil {
		return nil, err
	}
	return s.courseRepo.GetCourseByID(ctx, id)
}

// TogglePublished flips the publication flag and returns the new state.
func (s *courseServiceImpl) TogglePublished(ctx context.Context, id int64, actorID *int64) (bool, error) {
	if err := s.checkOwnership(ctx, id, actorID); err != nil {
		return false, err
	}
	return s.courseRepo.TogglePublished(ctx, id)
}

// DeleteCourse removes a course after an ownership check.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64, actorID *int64) error {
	if err := s.checkOwnership(ctx, id, actorID); err != nil {
		return err
	}
	return s.courseRepo.DeleteCourse(ctx, id)
}

// UploadThumbnail stores the uploaded image and points the course at it.
func (s *courseServiceImpl) UploadThumbnail(ctx context.Context, id int64, actorID *int64, file *multipart.FileHeader) (string, error) {
	if err := s.checkOwnership(ctx, id, actorID); err != nil {
		return "", err
	}
	path, err := s.storage.SaveFileWithPath(file, "courses")
	if err != nil {
		return "", fmt.Errorf("error saving course thumbnail: %w", err)
	}
	if err := s.courseRepo.SetThumbnail(ctx, id, path); err != nil {
		return "", err
	}
	return path, nil
}
