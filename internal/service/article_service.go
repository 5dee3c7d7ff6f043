package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/prernajain1224/MHPS-Website/internal/dto"
	"github.com/prernajain1224/MHPS-Website/internal/models"
	appErrors "github.com/prernajain1224/MHPS-Website/pkg/errors"
)

const articlePageSize = 9

type articleRepository interface {
	List(ctx context.Context, filter models.ArticleFilter) ([]models.Article, int, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id string) error
}

// ArticleService handles article workflows.
type ArticleService struct {
	repo      articleRepository
	pages     pageReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewArticleService constructs the service.
func NewArticleService(repo articleRepository, pages pageReader, validate *validator.Validate, logger *zap.Logger) *ArticleService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ArticleService{repo: repo, pages: pages, validator: validate, logger: logger}
}

// List returns one page of articles. Unknown type filters are ignored.
func (s *ArticleService) List(ctx context.Context, req dto.ArticleListRequest) ([]models.Article, *models.Pagination, error) {
	filter := models.ArticleFilter{
		ParentID: req.IndexID,
		Featured: parseBoolFlag(req.Featured),
		Page:     resolvePage(req.Page),
		PageSize: articlePageSize,
	}
	if models.ValidArticleType(req.ArticleType) {
		filter.ArticleType = models.ArticleType(req.ArticleType)
	}
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list articles")
	}
	if pages := totalPages(total, filter.PageSize); pages > 0 && filter.Page > pages {
		filter.Page = pages
		rows, total, err = s.repo.List(ctx, filter)
		if err != nil {
			return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list articles")
		}
	}
	return rows, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns an article by id.
func (s *ArticleService) Get(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "article not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get article")
	}
	return article, nil
}

// Create registers a new article under an article index page.
func (s *ArticleService) Create(ctx context.Context, req dto.CreateArticleRequest) (*models.Article, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	publishTime, ok := normalizeClock(req.PublishTime)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "publish_time must be HH:MM")
	}
	if err := ensureParent(ctx, s.pages, req.ParentID, models.PageTypeArticle); err != nil {
		return nil, err
	}
	publishDate, _ := time.Parse("2006-01-02", req.PublishDate)
	article := &models.Article{
		ParentID:         req.ParentID,
		ArticleType:      models.ArticleType(req.ArticleType),
		PublishDate:      publishDate,
		PublishTime:      publishTime,
		AuthorName:       req.AuthorName,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Body:             req.Body,
		FeaturedImageID:  req.FeaturedImageID,
		IsFeatured:       req.IsFeatured,
		Published:        req.Published,
	}
	if err := s.repo.Create(ctx, article); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create article")
	}
	return article, nil
}

// Update modifies an existing article.
func (s *ArticleService) Update(ctx context.Context, id string, req dto.UpdateArticleRequest) (*models.Article, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	publishTime, ok := normalizeClock(req.PublishTime)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "publish_time must be HH:MM")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "article not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load article")
	}
	publishDate, _ := time.Parse("2006-01-02", req.PublishDate)
	existing.ArticleType = models.ArticleType(req.ArticleType)
	existing.PublishDate = publishDate
	existing.PublishTime = publishTime
	existing.AuthorName = req.AuthorName
	existing.Title = req.Title
	existing.ShortDescription = req.ShortDescription
	existing.Body = req.Body
	existing.FeaturedImageID = req.FeaturedImageID
	existing.IsFeatured = req.IsFeatured
	existing.Published = req.Published
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update article")
	}
	return existing, nil
}

// Delete removes an article by id.
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "article not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load article")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete article")
	}
	return nil
}
