package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prernajain1224/MHPS-Website/internal/dto"
	"github.com/prernajain1224/MHPS-Website/internal/models"
	appErrors "github.com/prernajain1224/MHPS-Website/pkg/errors"
)

type articleRepoStub struct {
	articles  []models.Article
	total     int
	listCalls []models.ArticleFilter
	created   *models.Article
}

func (s *articleRepoStub) List(ctx context.Context, filter models.ArticleFilter) ([]models.Article, int, error) {
	s.listCalls = append(s.listCalls, filter)
	return s.articles, s.total, nil
}

func (s *articleRepoStub) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return &models.Article{ID: id}, nil
}

func (s *articleRepoStub) Create(ctx context.Context, article *models.Article) error {
	s.created = article
	return nil
}

func (s *articleRepoStub) Update(ctx context.Context, article *models.Article) error { return nil }
func (s *articleRepoStub) Delete(ctx context.Context, id string) error               { return nil }

func TestArticleServiceListIgnoresUnknownType(t *testing.T) {
	repo := &articleRepoStub{}
	svc := NewArticleService(repo, &pageReaderStub{}, nil, nil)

	_, _, err := svc.List(context.Background(), dto.ArticleListRequest{IndexID: "idx-1", ArticleType: "gossip"})
	require.NoError(t, err)
	assert.Empty(t, repo.listCalls[0].ArticleType)
}

func TestArticleServiceCreateNormalizesPublishTime(t *testing.T) {
	repo := &articleRepoStub{}
	svc := NewArticleService(repo, &pageReaderStub{pageType: models.PageTypeArticleIndex}, nil, nil)

	article, err := svc.Create(context.Background(), dto.CreateArticleRequest{
		ParentID:         "8e7b1f4a-0c3d-4f6e-9a2b-1d5c8e7f0a3b",
		ArticleType:      "analysis",
		PublishDate:      "2024-05-01",
		PublishTime:      "8:05",
		Title:            "Quarterly analysis",
		ShortDescription: "Short",
		Body:             "Body",
	})
	require.NoError(t, err)
	assert.Equal(t, "08:05", article.PublishTime)
	require.NotNil(t, repo.created)
	assert.Equal(t, "08:05", repo.created.PublishTime)
}

func TestArticleServiceCreateRejectsInvalidType(t *testing.T) {
	svc := NewArticleService(&articleRepoStub{}, &pageReaderStub{pageType: models.PageTypeArticleIndex}, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateArticleRequest{
		ParentID:         "8e7b1f4a-0c3d-4f6e-9a2b-1d5c8e7f0a3b",
		ArticleType:      "gossip",
		PublishDate:      "2024-05-01",
		PublishTime:      "08:05",
		Title:            "Quarterly analysis",
		ShortDescription: "Short",
		Body:             "Body",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
