package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kerem/learnhub/internal/app/models"
	"github.com/kerem/learnhub/internal/app/models/dto"
	"github.com/kerem/learnhub/internal/pkg/apperrors"
	"github.com/kerem/learnhub/internal/pkg/helpers"
	"github.com/kerem/learnhub/internal/pkg/logger"
)

var blogSortColumns = map[string]string{
	"title":           "b.title",
	"created_at":      "b.created_at",
	"published_at":    "b.published_at",
	"instructor_name": "i.name",
}

// BlogRepository handles database operations for Blog.
type BlogRepository struct {
	DB *pgxpool.Pool
}

// NewBlogRepository creates a new instance of BlogRepository.
func NewBlogRepository(db *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{DB: db}
}

func (r *BlogRepository) selectBlogListQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"b.id", "b.instructor_id", "b.title", "b.content", "b.thumbnail",
		"b.published_at", "b.created_at",
		"i.name as instructor_name",
	).From("blogs b").
		Join("instructors i ON b.instructor_id = i.id").
		Where("b.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)
}

func scanBlogListItem(row pgx.Row) (*dto.BlogListItem, error) {
	var item dto.BlogListItem
	err := row.Scan(
		&item.ID, &item.InstructorID, &item.Title, &item.Content, &item.Thumbnail,
		&item.PublishedAt, &item.CreatedAt,
		&item.InstructorName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBlogNotFound
		}
		logger.Error().Err(err).Msg("Error scanning blog list item")
		return nil, err
	}
	return &item, nil
}

// applyBlogFilters adds filter conditions to a builder. Publication state is
// a comparison of published_at against now, evaluated per request.
func applyBlogFilters(builder squirrel.SelectBuilder, params dto.ListBlogsQuery, now time.Time) squirrel.SelectBuilder {
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"b.title": pattern},
			squirrel.ILike{"b.content": pattern},
		})
	}
	switch params.Status {
	case "published":
		builder = builder.Where(squirrel.LtOrEq{"b.published_at": now})
	case "scheduled":
		builder = builder.Where(squirrel.Gt{"b.published_at": now})
	}
	if params.InstructorID != nil {
		builder = builder.Where(squirrel.Eq{"b.instructor_id": *params.InstructorID})
	}
	return builder
}

// GetAllBlogs retrieves a paginated and filtered list of blog posts.
func (r *BlogRepository) GetAllBlogs(ctx context.Context, params dto.ListBlogsQuery, page, size int) ([]dto.BlogListItem, dto.PaginationInfo, error) {
	now := time.Now()
	sqlBuilder := applyBlogFilters(r.selectBlogListQuery(), params, now)
	countBuilder := applyBlogFilters(
		squirrel.Select("count(*)").From("blogs b").
			Join("instructors i ON b.instructor_id = i.id").
			Where("b.deleted_at IS NULL").
			PlaceholderFormat(squirrel.Dollar),
		params, now,
	)

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building blog count SQL")
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	err = r.DB.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing blog count query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []dto.BlogListItem{}, pagination, nil
	}

	sortColumn := "b.created_at"
	if col, ok := blogSortColumns[params.SortBy]; ok {
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
		logger.Error().Err(err).Msg("Error building get all blogs SQL")
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all blogs query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	blogs := make([]dto.BlogListItem, 0, limit)
	for rows.Next() {
		item, err := scanBlogListItem(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		blogs = append(blogs, *item)
	}
	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating blog rows")
		return nil, dto.PaginationInfo{}, err
	}

	return blogs, pagination, nil
}

// GetBlogByID retrieves a single blog post with its instructor's name.
func (r *BlogRepository) GetBlogByID(ctx context.Context, id int64) (*dto.BlogListItem, error) {
	sqlBuilder := r.selectBlogListQuery().Where(squirrel.Eq{"b.id": id})
	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get blog by ID SQL")
		return nil, err
	}

	row := r.DB.QueryRow(ctx, sqlStr, args...)
	return scanBlogListItem(row)
}

// CreateBlog inserts a new blog post and returns its id.
func (r *BlogRepository) CreateBlog(ctx context.Context, blog *models.Blog) (int64, error) {
	sqlStr, args, err := squirrel.Insert("blogs").
		Columns("instructor_id", "title", "content", "thumbnail", "published_at").
		Values(blog.InstructorID, blog.Title, blog.Content, blog.Thumbnail, blog.PublishedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create blog SQL")
		return 0, err
	}

	var id int64
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create blog query")
		return 0, err
	}
	return id, nil
}

// UpdateBlog applies a partial update. Only non-nil fields change.
func (r *BlogRepository) UpdateBlog(ctx context.Context, id int64, req *dto.UpdateBlogRequest) error {
	builder := squirrel.Update("blogs").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)

	if req.Title != nil {
		builder = builder.Set("title", *req.Title)
	}
	if req.Content != nil {
		builder = builder.Set("content", *req.Content)
	}
	if req.Thumbnail != nil {
		builder = builder.Set("thumbnail", *req.Thumbnail)
	}
	if req.PublishedAt != nil {
		builder = builder.Set("published_at", *req.PublishedAt)
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update blog SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update blog query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBlogNotFound
	}
	return nil
}

// SetPublishedAt moves the publication instant of a post.
func (r *BlogRepository) SetPublishedAt(ctx context.Context, id int64, at time.Time) error {
	sqlStr, args, err := squirrel.Update("blogs").
		Set("published_at", at).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building set blog published_at SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing set blog published_at query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBlogNotFound
	}
	return nil
}

// SetThumbnail updates only the thumbnail path of a post.
func (r *BlogRepository) SetThumbnail(ctx context.Context, id int64, path string) error {
	sqlStr, args, err := squirrel.Update("blogs").
		Set("thumbnail", path).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building set blog thumbnail SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing set blog thumbnail query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBlogNotFound
	}
	return nil
}

// DeleteBlog soft deletes a blog post.
func (r *BlogRepository) DeleteBlog(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Update("blogs").
		Set("deleted_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete blog SQL")
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete blog query")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBlogNotFound
	}
	return nil
}

// DeleteBlogsByInstructorTx soft deletes every post of an instructor within
// the given transaction.
func (r *BlogRepository) DeleteBlogsByInstructorTx(ctx context.Context, tx pgx.Tx, instructorID int64) error {
	sqlStr, args, err := squirrel.Update("blogs").
		Set("deleted_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"instructor_id": instructorID}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete blogs by instructor SQL")
		return err
	}

	_, err = tx.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete blogs by instructor query")
		return err
	}
	return nil
}

// GetBlogOwner returns the instructor id owning the post.
func (r *BlogRepository) GetBlogOwner(ctx context.Context, id int64) (int64, error) {
	sqlStr, args, err := squirrel.Select("instructor_id").
		From("blogs").
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get blog owner SQL")
		return 0, err
	}

	var ownerID int64
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&ownerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, apperrors.ErrBlogNotFound
		}
		logger.Error().Err(err).Msg("Error executing get blog owner query")
		return 0, err
	}
	return ownerID, nil
}
