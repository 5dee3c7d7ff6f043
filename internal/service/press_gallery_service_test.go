package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prernajain1224/MHPS-Website/internal/dto"
	"github.com/prernajain1224/MHPS-Website/internal/models"
	appErrors "github.com/prernajain1224/MHPS-Website/pkg/errors"
)

type pressGalleryRepoStub struct {
	categories   []models.PressCategory
	categoryResp *models.PressCategory
	categoryErr  error
	albums       []models.PressAlbumListing
	total        int
	listCalls    []models.AlbumFilter
	albumResp    *models.PressAlbum
	albumErr     error
	images       []models.PressImage
	deletedCats  []string
}

func (s *pressGalleryRepoStub) ListCategories(ctx context.Context, parentID string) ([]models.PressCategory, error) {
	return s.categories, nil
}

func (s *pressGalleryRepoStub) GetCategoryByID(ctx context.Context, id string) (*models.PressCategory, error) {
	if s.categoryErr != nil {
		return nil, s.categoryErr
	}
	return s.categoryResp, nil
}

func (s *pressGalleryRepoStub) CreateCategory(ctx context.Context, category *models.PressCategory) error {
	return nil
}

func (s *pressGalleryRepoStub) UpdateCategory(ctx context.Context, category *models.PressCategory) error {
	return nil
}

func (s *pressGalleryRepoStub) DeleteCategory(ctx context.Context, id string) error {
	s.deletedCats = append(s.deletedCats, id)
	return nil
}

func (s *pressGalleryRepoStub) ListAlbums(ctx context.Context, filter models.AlbumFilter) ([]models.PressAlbumListing, int, error) {
	s.listCalls = append(s.listCalls, filter)
	return s.albums, s.total, nil
}

func (s *pressGalleryRepoStub) GetAlbumByID(ctx context.Context, id string) (*models.PressAlbum, error) {
	if s.albumErr != nil {
		return nil, s.albumErr
	}
	return s.albumResp, nil
}

func (s *pressGalleryRepoStub) ListAlbumImages(ctx context.Context, albumID string) ([]models.PressImage, error) {
	return s.images, nil
}

func (s *pressGalleryRepoStub) CreateAlbum(ctx context.Context, album *models.PressAlbum) error {
	return nil
}

func (s *pressGalleryRepoStub) UpdateAlbum(ctx context.Context, album *models.PressAlbum) error {
	return nil
}

func (s *pressGalleryRepoStub) DeleteAlbum(ctx context.Context, id string) error { return nil }

func (s *pressGalleryRepoStub) AddAlbumImage(ctx context.Context, image *models.PressImage) error {
	return nil
}

func (s *pressGalleryRepoStub) RemoveAlbumImage(ctx context.Context, albumID, imageID string) error {
	return nil
}

func TestPressGalleryServiceDeleteCategoryWithAlbumsConflicts(t *testing.T) {
	repo := &pressGalleryRepoStub{categoryResp: &models.PressCategory{ID: "cat-1", AlbumCount: 3}}
	svc := NewPressGalleryService(repo, &pageReaderStub{}, nil, nil)

	err := svc.DeleteCategory(context.Background(), "cat-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.deletedCats)
}

func TestPressGalleryServiceDeleteEmptyCategory(t *testing.T) {
	repo := &pressGalleryRepoStub{categoryResp: &models.PressCategory{ID: "cat-1"}}
	svc := NewPressGalleryService(repo, &pageReaderStub{}, nil, nil)

	require.NoError(t, svc.DeleteCategory(context.Background(), "cat-1"))
	assert.Equal(t, []string{"cat-1"}, repo.deletedCats)
}

func TestPressGalleryServiceListAlbumsClampsOverflow(t *testing.T) {
	repo := &pressGalleryRepoStub{total: 25}
	svc := NewPressGalleryService(repo, &pageReaderStub{}, nil, nil)

	_, pagination, err := svc.ListAlbums(context.Background(), "cat-1", dto.AlbumListRequest{Page: "9"})
	require.NoError(t, err)
	require.Len(t, repo.listCalls, 2)
	assert.Equal(t, 9, repo.listCalls[0].Page)
	assert.Equal(t, 3, repo.listCalls[1].Page)
	assert.Equal(t, 3, pagination.Page)
	assert.Equal(t, 12, pagination.PageSize)
}

func TestPressGalleryServiceGetAlbumResolvesCover(t *testing.T) {
	repo := &pressGalleryRepoStub{
		albumResp: &models.PressAlbum{ID: "alb-1"},
		images: []models.PressImage{
			{ID: "att-1", ImageID: "img-x", SortOrder: 1},
		},
	}
	svc := NewPressGalleryService(repo, &pageReaderStub{}, nil, nil)

	detail, err := svc.GetAlbum(context.Background(), "alb-1")
	require.NoError(t, err)
	require.NotNil(t, detail.Cover)
	assert.Equal(t, "img-x", *detail.Cover)
}

func TestPressGalleryServiceGetAlbumNotFound(t *testing.T) {
	svc := NewPressGalleryService(&pressGalleryRepoStub{albumErr: sql.ErrNoRows}, &pageReaderStub{}, nil, nil)

	_, err := svc.GetAlbum(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
