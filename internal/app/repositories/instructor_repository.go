package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kerem/learnhub/internal/app/models"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/pkg/apperrors"
	"github.com/kerem/learnhub/internal/pkg/dberrors"
	"github.com/kerem/learnhub/internal/pkg/helpers"
	"github.com/kerem/learnhub/internal/pkg/logger"
)

var instructorSortColumns = map[string]string{
	"name":       "i.name",
	"email":      "i.email",
	"created_at": "i.created_at",
}

// InstructorRepository handles database operations for Instructor.
type InstructorRepository struct {
	DB *pgxpool.Pool
}

// NewInstructorRepository creates a new instance of InstructorRepository.
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{DB: db}
}

func (r *InstructorRepository) selectInstructorListQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"i.id", "i.name", "i.email", "i.expertise", "i.is_verified", "i.created_at",
		"(SELECT count(*) FROM courses c WHERE c.instructor_id = i.id AND c.deleted_at IS NULL) as courses_count",
		"(SELECT count(*) FROM blogs b WHERE b.instructor_id = i.id AND b.deleted_at IS NULL) as blogs_count",
	).From("instructors i").
		Where("i.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)
}

func applyInstructorFilters(builder squirrel.SelectBuilder, params dto.ListInstructorsQuery) squirrel.SelectBuilder {
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"i.name": pattern},
			squirrel.ILike{"i.email": pattern},
			squirrel.ILike{"i.expertise": pattern},
		})
	}
	switch params.Verification {
	case "verified":
		builder = builder.Where(squirrel.Eq{"i.is_verified": true})
	case "unverified":
		builder = builder.Where(squirrel.Eq{"i.is_verified": false})
	}
	return builder
}

// GetAllInstructors retrieves a paginated and filtered list of instructors
// with content counts.
func (r *InstructorRepository) GetAllInstructors(ctx context.Context, params dto.ListInstructorsQuery, page, size int) ([]dto.InstructorListItem, dto.PaginationInfo, error) {
	sqlBuilder := applyInstructorFilters(r.selectInstructorListQuery(), params)
	countBuilder := applyInstructorFilters(
		squirrel.Select("count(*)").From("instructors i").
			Where("i.deleted_at IS NULL").
			PlaceholderFormat(squirrel.Dollar),
		params,
	)

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building instructor count SQL")
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	err = r.DB.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing instructor count query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []dto.InstructorListItem{}, pagination, nil
	}

	sortColumn := "i.created_at"
	if col, ok := instructorSortColumns[params.SortBy]; ok {
		sortColumn = col
	}
	sortDir := "DESC"
	if params.SortDir == "asc" {
		sortDir = "ASC"
	}
	sqlBuilder = sqlBuilder.OrderBy(fmt.Sprintf("%s %s", sortColumn, sortDir))

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlBuilder = sqlBuilder.Limit(uint64(limit)).Offset(offset)

	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all instructors SQL")
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all instructors query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	instructors := make([]dto.InstructorListItem, 0, limit)
	for rows.Next() {
		var item dto.InstructorListItem
		err := rows.Scan(
			&item.ID, &item.Name, &item.Email, &item.Expertise, &item.IsVerified, &item.CreatedAt,
			&item.CoursesCount, &item.BlogsCount,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning instructor list item")
			return nil, dto.PaginationInfo{}, err
		}
		instructors = append(instructors, item)
	}
	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating instructor rows")
		return nil, dto.PaginationInfo{}, err
	}

	return instructors, pagination, nil
}

// GetInstructorByID retrieves a single instructor with content counts.
func (r *InstructorRepository) GetInstructorByID(ctx context.Context, id int64) (*dto.InstructorDetails, error) {
	sqlStr, args, err := squirrel.Select(
		"i.id", "i.name", "i.email", "i.expertise", "i.bio", "i.is_verified", "i.created_at",
		"(SELECT count(*) FROM courses c WHERE c.instructor_id = i.id AND c.deleted_at IS NULL) as courses_count",
		"(SELECT count(*) FROM blogs b WHERE b.instructor_id = i.id AND b.deleted_at IS NULL) as blogs_count",
	).From("instructors i").
		Where(squirrel.Eq{"i.id": id}).
		Where("i.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get instructor by ID SQL")
		return nil, err
	}

	var details dto.InstructorDetails
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(
		&details.ID, &details.Name, &details.Email, &details.Expertise, &details.Bio,
		&details.IsVerified, &details.CreatedAt,
		&details.CoursesCount, &details.BlogsCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrInstructorNotFound
		}
		logger.Error().Err(err).Msg("Error executing get instructor by ID query")
		return nil, err
	}
	return &details, nil
}

// GetInstructorByEmail retrieves an instructor account for authentication.
func (r *InstructorRepository) GetInstructorByEmail(ctx context.Context, email string) (*models.Instructor, error) {
	sqlStr, args, err := squirrel.Select(
		"id", "name", "email", "expertise", "bio", "password", "is_verified", "created_at", "updated_at",
	).From("instructors").
		Where(squirrel.Eq{"email": email}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get instructor by email SQL")
		return nil, err
	}

	var instructor models.Instructor
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(
		&instructor.ID, &instructor.Name, &instructor.Email, &instructor.Expertise, &instructor.Bio,
		&instructor.Password, &instructor.IsVerified, &instructor.CreatedAt, &instructor.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrInstructorNotFound
		}
		logger.Error().Err(err).Msg("Error executing get instructor by email query")
		return nil, err
	}
	return &instructor, nil
}

// CreateInstructor inserts a new instructor account and returns its id.
func (r *InstructorRepository) CreateInstructor(ctx context.Context, instructor *models.Instructor) (int64, error) {
	sqlStr, args, err := squirrel.Insert("instructors").
		Columns("name", "email", "expertise", "bio", "password", "is_verified").
		Values(instructor.Name, instructor.Email, instructor.Expertise, instructor.Bio, instructor.Password, instructor.IsVerified).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create instructor SQL")
		return 0, err
	}

	var id int64
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create instructor query")
		return 0, err
	}
	return id, nil
}

// UpdateInstructorProfile applies a partial profile update.
func (r *InstructorRepository) UpdateInstructorProfile(ctx context.Context, id int64, req *dto.UpdateInstructorProfileRequest) error {
	builder := squirrel.Update("instructors").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)

	if req.Name != nil {
		builder = builder.Set("name", *req.Name)
	}
	if req.Expertise != nil {
		builder = builder.Set("expertise", *req.Expertise)
	}
	if req.Bio != nil {
		builder = builder.Set("bio", *req.Bio)
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update instructor profile SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update instructor profile query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}
	return nil
}

// ToggleVerification flips the verification flag and returns the new state.
func (r *InstructorRepository) ToggleVerification(ctx context.Context, id int64) (bool, error) {
	sqlStr := `UPDATE instructors SET is_verified = NOT is_verified, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL RETURNING is_verified`

	var verified bool
	err := r.DB.QueryRow(ctx, sqlStr, id).Scan(&verified)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, apperrors.ErrInstructorNotFound
		}
		logger.Error().Err(err).Msg("Error executing toggle instructor verification query")
		return false, err
	}
	return verified, nil
}

// DeleteInstructorTx soft deletes the instructor row within the given
// transaction. Owned courses and blogs are removed by the caller in the same
// transaction.
func (r *InstructorRepository) DeleteInstructorTx(ctx context.Context, tx pgx.Tx, id int64) error {
	sqlStr, args, err := squirrel.Update("instructors").
		Set("deleted_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete instructor SQL")
		return err
	}

	cmdTag, err := tx.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete instructor query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}
	return nil
}

// InstructorExists reports whether an instructor row exists and is not
// deleted. Used to validate referential filter parameters before listing.
func (r *InstructorRepository) InstructorExists(ctx context.Context, id int64) (bool, error) {
	sqlStr := `SELECT EXISTS (SELECT 1 FROM instructors WHERE id = $1 AND deleted_at IS NULL)`

	var exists bool
	err := r.DB.QueryRow(ctx, sqlStr, id).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing instructor exists query")
		return false, err
	}
	return exists, nil
}

// GetContentCounts returns the instructor's own course and blog counts.
func (r *InstructorRepository) GetContentCounts(ctx context.Context, id int64) (*dto.InstructorDashboardStats, error) {
	sqlStr := `SELECT
		(SELECT count(*) FROM courses WHERE instructor_id = $1 AND deleted_at IS NULL),
		(SELECT count(*) FROM blogs WHERE instructor_id = $1 AND deleted_at IS NULL)`

	var stats dto.InstructorDashboardStats
	err := r.DB.QueryRow(ctx, sqlStr, id).Scan(&stats.Courses, &stats.Blogs)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing instructor content counts query")
		return nil, err
	}
	return &stats, nil
}
