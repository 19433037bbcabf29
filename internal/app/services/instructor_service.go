package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/app/repositories"
	"github.com/kerem/learnhub/internal/db"
)

// InstructorService defines the interface for instructor operations
type InstructorService interface {
	ListInstructors(ctx context.Context, query *dto.ListInstructorsQuery, page, size int) (*dto.InstructorListResponse, error)
	GetInstructor(ctx context.Context, id int64) (*dto.InstructorDetails, error)
	ToggleVerification(ctx context.Context, id int64) (bool, error)
	DeleteInstructor(ctx context.Context, id int64) error
	InstructorExists(ctx context.Context, id int64) (bool, error)
	UpdateProfile(ctx context.Context, id int64, req *dto.UpdateInstructorProfileRequest) (*dto.InstructorDetails, error)
	GetDashboardStats(ctx context.Context, id int64) (*dto.InstructorDashboardStats, error)
}

// instructorServiceImpl implements InstructorService
type instructorServiceImpl struct {
	pool           *pgxpool.Pool
	instructorRepo *repositories.InstructorRepository
	courseRepo     *repositories.CourseRepository
	blogRepo       *repositories.BlogRepository
}

// NewInstructorService creates a new InstructorService
func NewInstructorService(
	pool *pgxpool.Pool,
	instructorRepo *repositories.InstructorRepository,
	courseRepo *repositories.CourseRepository,
	blogRepo *repositories.BlogRepository,
) InstructorService {
	return &instructorServiceImpl{
		pool:           pool,
		instructorRepo: instructorRepo,
		courseRepo:     courseRepo,
		blogRepo:       blogRepo,
	}
}

// ListInstructors retrieves a filtered, sorted, paginated instructor listing.
func (s *instructorServiceImpl) ListInstructors(ctx context.Context, query *dto.ListInstructorsQuery, page, size int) (*dto.InstructorListResponse, error) {
	items, pagination, err := s.instructorRepo.GetAllInstructors(ctx, *query, page, size)
	if err != nil {
		return nil, fmt.Errorf("error listing instructors: %w", err)
	}
	return &dto.InstructorListResponse{Items: items, Pagination: pagination}, nil
}

// GetInstructor retrieves one instructor with content counts.
func (s *instructorServiceImpl) GetInstructor(ctx context.Context, id int64) (*dto.InstructorDetails, error) {
	return s.instructorRepo.GetInstructorByID(ctx, id)
}

// ToggleVerification flips the verification flag and returns the new state.
func (s *instructorServiceImpl) ToggleVerification(ctx context.Context, id int64) (bool, error) {
	return s.instructorRepo.ToggleVerification(ctx, id)
}

// DeleteInstructor removes the instructor together with every course and
// blog they own, atomically. Either all rows go or none do.
func (s *instructorServiceImpl) DeleteInstructor(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.courseRepo.DeleteCoursesByInstructorTx(ctx, tx, id); err != nil {
			return err
		}
		if err := s.blogRepo.DeleteBlogsByInstructorTx(ctx, tx, id); err != nil {
			return err
		}
		return s.instructorRepo.DeleteInstructorTx(ctx, tx, id)
	})
}

// InstructorExists reports whether the id refers to a live instructor.
func (s *instructorServiceImpl) InstructorExists(ctx context.Context, id int64) (bool, error) {
	return s.instructorRepo.InstructorExists(ctx, id)
}

// UpdateProfile applies a partial profile update by the instructor.
func (s *instructorServiceImpl) UpdateProfile(ctx context.Context, id int64, req *dto.UpdateInstructorProfileRequest) (*dto.InstructorDetails, error) {
	if err := s.instructorRepo.UpdateInstructorProfile(ctx, id, req); err != nil {
		return nil, err
	}
	return s.instructorRepo.GetInstructorByID(ctx, id)
}

// GetDashboardStats returns the instructor's own content counts.
func (s *instructorServiceImpl) GetDashboardStats(ctx context.Context, id int64) (*dto.InstructorDashboardStats, error) {
	return s.instructorRepo.GetContentCounts(ctx, id)
}
