package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/prernajain1224/MHPS-Website/internal/models"
)

const articleColumns = "id, parent_id, article_type, publish_date, publish_time, author_name, title, short_description, body, featured_image_id, is_featured, published, created_at, updated_at"

// ArticleRepository manages persistence for articles.
type ArticleRepository struct {
	db *sqlx.DB
}

// NewArticleRepository constructs an ArticleRepository.
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// List returns published articles under one index page, latest first,
// along with the total count.
func (r *ArticleRepository) List(ctx context.Context, filter models.ArticleFilter) ([]models.Article, int, error) {
	base := "FROM articles WHERE parent_id = $1 AND published = TRUE"
	args := []interface{}{filter.ParentID}
	var conditions []string

	if filter.ArticleType != "" {
		conditions = append(conditions, fmt.Sprintf("article_type = $%d", len(args)+1))
		args = append(args, filter.ArticleType)
	}
	if filter.Featured != nil {
		conditions = append(conditions, fmt.Sprintf("is_featured = $%d", len(args)+1))
		args = append(args, *filter.Featured)
	}
	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 9
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY publish_date DESC, publish_time DESC LIMIT %d OFFSET %d", articleColumns, base, size, offset)
	var articles []models.Article
	if err := r.db.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}
	return articles, total, nil
}

// ListAll returns every published article under one index page, latest
// first, without pagination. Used by exports.
func (r *ArticleRepository) ListAll(ctx context.Context, parentID string) ([]models.Article, error) {
	query := fmt.Sprintf("SELECT %s FROM articles WHERE parent_id = $1 AND published = TRUE ORDER BY publish_date DESC, publish_time DESC", articleColumns)
	var articles []models.Article
	if err := r.db.SelectContext(ctx, &articles, query, parentID); err != nil {
		return nil, fmt.Errorf("list all articles: %w", err)
	}
	return articles, nil
}

// GetByID returns an article by identifier.
func (r *ArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := fmt.Sprintf("SELECT %s FROM articles WHERE id = $1", articleColumns)
	var article models.Article
	if err := r.db.GetContext(ctx, &article, query, id); err != nil {
		return nil, err
	}
	return &article, nil
}

// Create inserts an article together with its registry row.
func (r *ArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	article.CreatedAt = now
	article.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create article: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	page := &models.Page{ID: article.ID, Type: models.PageTypeArticle, ParentID: &article.ParentID, Published: article.Published}
	if err := insertPageTx(ctx, tx, page); err != nil {
		return err
	}
	const query = `INSERT INTO articles (id, parent_id, article_type, publish_date, publish_time, author_name, title, short_description, body, featured_image_id, is_featured, published, created_at, updated_at)
VALUES (:id, :parent_id, :article_type, :publish_date, :publish_time, :author_name, :title, :short_description, :body, :featured_image_id, :is_featured, :published, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, query, article); err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	return tx.Commit()
}

// Update modifies an existing article.
func (r *ArticleRepository) Update(ctx context.Context, article *models.Article) error {
	article.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update article: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const query = `UPDATE articles SET article_type = :article_type, publish_date = :publish_date, publish_time = :publish_time,
author_name = :author_name, title = :title, short_description = :short_description, body = :body,
featured_image_id = :featured_image_id, is_featured = :is_featured, published = :published, updated_at = :updated_at
WHERE id = :id`
	if _, err := tx.NamedExecContext(ctx, query, article); err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if err := setPagePublishedTx(ctx, tx, article.ID, article.Published); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes an article and its registry row.
func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete article: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if err := deletePageTx(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit()
}
