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
	"github.com/kerem/learnhub/internal/pkg/helpers"
	"github.com/kerem/learnhub/internal/pkg/logger"
)

// courseSortColumns maps recognized sort keys to ORDER BY expressions.
// instructor_name sorts by the joined instructor row, everything else by a
// course column.
var courseSortColumns = map[string]string{
	"title":           "c.title",
	"created_at":      "c.created_at",
	"instructor_name": "i.name",
}

// CourseRepository handles database operations for Course.
type CourseRepository struct {
	DB *pgxpool.Pool
}

// NewCourseRepository creates a new instance of CourseRepository.
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{DB: db}
}

// Common select query builder for course list rows with instructor name and
// module count.
func (r *CourseRepository) selectCourseListQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"c.id", "c.instructor_id", "c.title", "c.description", "c.thumbnail",
		"c.level", "c.is_published", "c.created_at",
		"i.name as instructor_name",
		"(SELECT count(*) FROM modules m WHERE m.course_id = c.id AND m.deleted_at IS NULL) as modules_count",
	).From("courses c").
		Join("instructors i ON c.instructor_id = i.id").
		Where("c.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)
}

func scanCourseListItem(row pgx.Row) (*dto.CourseListItem, error) {
	var item dto.CourseListItem
	err := row.Scan(
		&item.ID, &item.InstructorID, &item.Title, &item.Description, &item.Thumbnail,
		&item.Level, &item.IsPublished, &item.CreatedAt,
		&item.InstructorName, &item.ModulesCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error scanning course list item")
		return nil, err
	}
	return &item, nil
}

// applyCourseFilters adds the filter conditions of params to both the select
// and the count builder so the two queries always agree.
func applyCourseFilters(builder squirrel.SelectBuilder, params dto.ListCoursesQuery) squirrel.SelectBuilder {
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"c.title": pattern},
			squirrel.ILike{"c.description": pattern},
		})
	}
	switch params.Status {
	case "published":
		builder = builder.Where(squirrel.Eq{"c.is_published": true})
	case "unpublished":
		builder = builder.Where(squirrel.Eq{"c.is_published": false})
	}
	if params.InstructorID != nil {
		builder = builder.Where(squirrel.Eq{"c.instructor_id": *params.InstructorID})
	}
	if params.Level != "" && params.Level != "all" {
		builder = builder.Where(squirrel.Eq{"c.level": params.Level})
	}
	return builder
}

// GetAllCourses retrieves a paginated and filtered list of courses.
func (r *CourseRepository) GetAllCourses(ctx context.Context, params dto.ListCoursesQuery, page, size int) ([]dto.CourseListItem, dto.PaginationInfo, error) {
	sqlBuilder := applyCourseFilters(r.selectCourseListQuery(), params)
	countBuilder := applyCourseFilters(
		squirrel.Select("count(*)").From("courses c").
			Join("instructors i ON c.instructor_id = i.id").
			Where("c.deleted_at IS NULL").
			PlaceholderFormat(squirrel.Dollar),
		params,
	)

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building course count SQL")
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	err = r.DB.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing course count query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []dto.CourseListItem{}, pagination, nil
	}

	sortColumn := "c.created_at"
	if col, ok := courseSortColumns[params.SortBy]; ok {
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
		logger.Error().Err(err).Msg("Error building get all courses SQL")
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	courses := make([]dto.CourseListItem, 0, limit)
	for rows.Next() {
		item, err := scanCourseListItem(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		courses = append(courses, *item)
	}
	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, dto.PaginationInfo{}, err
	}

	return courses, pagination, nil
}

// GetCourseByID retrieves a single course with instructor name and counts.
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*dto.CourseDetails, error) {
	sqlStr, args, err := squirrel.Select(
		"c.id", "c.instructor_id", "c.title", "c.description", "c.thumbnail",
		"c.level", "c.is_published", "c.created_at", "c.updated_at",
		"i.name as instructor_name",
		"(SELECT count(*) FROM modules m WHERE m.course_id = c.id AND m.deleted_at IS NULL) as modules_count",
		"(SELECT count(*) FROM lessons l JOIN modules m ON l.module_id = m.id WHERE m.course_id = c.id AND l.deleted_at IS NULL AND m.deleted_at IS NULL) as lessons_count",
	).From("courses c").
		Join("instructors i ON c.instructor_id = i.id").
		Where(squirrel.Eq{"c.id": id}).
		Where("c.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, err
	}

	var details dto.CourseDetails
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(
		&details.ID, &details.InstructorID, &details.Title, &details.Description, &details.Thumbnail,
		&details.Level, &details.IsPublished, &details.CreatedAt, &details.UpdatedAt,
		&details.InstructorName, &details.ModulesCount, &details.LessonsCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing get course by ID query")
		return nil, err
	}
	return &details, nil
}

// CreateCourse inserts a new course and returns its id.
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	sqlStr, args, err := squirrel.Insert("courses").
		Columns("instructor_id", "title", "description", "thumbnail", "level", "is_published").
		Values(course.InstructorID, course.Title, course.Description, course.Thumbnail, course.Level, course.IsPublished).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return 0, err
	}

	var id int64
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, err
	}
	return id, nil
}

// UpdateCourse applies a partial update. Only non-nil fields change.
func (r *CourseRepository) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) error {
	builder := squirrel.Update("courses").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)

	if req.Title != nil {
		builder = builder.Set("title", *req.Title)
	}
	if req.Description != nil {
		builder = builder.Set("description", *req.Description)
	}
	if req.Thumbnail != nil {
		builder = builder.Set("thumbnail", *req.Thumbnail)
	}
	if req.Level != nil {
		builder = builder.Set("level", *req.Level)
	}
	if req.IsPublished != nil {
		builder = builder.Set("is_published", *req.IsPublished)
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update course query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// SetThumbnail updates only the thumbnail path of a course.
func (r *CourseRepository) SetThumbnail(ctx context.Context, id int64, path string) error {
	sqlStr, args, err := squirrel.Update("courses").
		Set("thumbnail", path).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building set course thumbnail SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing set course thumbnail query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// TogglePublished flips the publication flag and returns the new state.
func (r *CourseRepository) TogglePublished(ctx context.Context, id int64) (bool, error) {
	sqlStr := `UPDATE courses SET is_published = NOT is_published, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL RETURNING is_published`

	var published bool
	err := r.DB.QueryRow(ctx, sqlStr, id).Scan(&published)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing toggle course published query")
		return false, err
	}
	return published, nil
}

// DeleteCourse soft deletes a course.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Update("courses").
		Set("deleted_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete course query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// DeleteCoursesByInstructorTx soft deletes every course of an instructor
// within the given transaction. Used by the instructor cascade delete.
func (r *CourseRepository) DeleteCoursesByInstructorTx(ctx context.Context, tx pgx.Tx, instructorID int64) error {
	sqlStr, args, err := squirrel.Update("courses").
		Set("deleted_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"instructor_id": instructorID}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete courses by instructor SQL")
		return err
	}

	_, err = tx.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete courses by instructor query")
		return err
	}
	return nil
}

// GetCourseOwner returns the instructor id owning the course.
func (r *CourseRepository) GetCourseOwner(ctx context.Context, id int64) (int64, error) {
	sqlStr, args, err := squirrel.Select("instructor_id").
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course owner SQL")
		return 0, err
	}

	var ownerID int64
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&ownerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing get course owner query")
		return 0, err
	}
	return ownerID, nil
}
