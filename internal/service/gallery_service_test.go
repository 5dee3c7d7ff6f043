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

type galleryRepoStub struct {
	albums       []models.AlbumListing
	total        int
	listCalls    []models.AlbumFilter
	getResp      *models.GalleryAlbum
	getErr       error
	images       []models.GalleryImage
	removeErr    error
	reorderCalls [][]string
}

func (s *galleryRepoStub) List(ctx context.Context, filter models.AlbumFilter) ([]models.AlbumListing, int, error) {
	s.listCalls = append(s.listCalls, filter)
	return s.albums, s.total, nil
}

func (s *galleryRepoStub) GetByID(ctx context.Context, id string) (*models.GalleryAlbum, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getResp, nil
}

func (s *galleryRepoStub) ListImages(ctx context.Context, albumID string) ([]models.GalleryImage, error) {
	return s.images, nil
}

func (s *galleryRepoStub) Create(ctx context.Context, album *models.GalleryAlbum) error { return nil }
func (s *galleryRepoStub) Update(ctx context.Context, album *models.GalleryAlbum) error { return nil }
func (s *galleryRepoStub) Delete(ctx context.Context, id string) error                  { return nil }
func (s *galleryRepoStub) AddImage(ctx context.Context, image *models.GalleryImage) error {
	return nil
}

func (s *galleryRepoStub) RemoveImage(ctx context.Context, albumID, imageID string) error {
	return s.removeErr
}

func (s *galleryRepoStub) ReorderImages(ctx context.Context, albumID string, imageIDs []string) error {
	s.reorderCalls = append(s.reorderCalls, imageIDs)
	return nil
}

func TestGalleryServiceListIgnoresMalformedDates(t *testing.T) {
	repo := &galleryRepoStub{total: 1}
	svc := NewGalleryService(repo, &pageReaderStub{}, nil, nil)

	_, _, err := svc.List(context.Background(), dto.AlbumListRequest{
		IndexID:  "gal-1",
		DateFrom: "last tuesday",
		DateTo:   "2024-06-30",
	})
	require.NoError(t, err)
	filter := repo.listCalls[0]
	assert.Nil(t, filter.DateFrom)
	require.NotNil(t, filter.DateTo)
	assert.Equal(t, "2024-06-30", filter.DateTo.Format("2006-01-02"))
	assert.Equal(t, 12, filter.PageSize)
}

func TestGalleryServiceGetResolvesCoverFallback(t *testing.T) {
	repo := &galleryRepoStub{
		getResp: &models.GalleryAlbum{ID: "alb-1"},
		images: []models.GalleryImage{
			{ID: "att-1", ImageID: "img-a", SortOrder: 1},
			{ID: "att-2", ImageID: "img-b", SortOrder: 2},
		},
	}
	svc := NewGalleryService(repo, &pageReaderStub{}, nil, nil)

	detail, err := svc.Get(context.Background(), "alb-1")
	require.NoError(t, err)
	require.NotNil(t, detail.Cover)
	assert.Equal(t, "img-a", *detail.Cover)
	assert.Equal(t, 2, detail.PhotoCount)
}

func TestGalleryServiceRemoveImageNotFound(t *testing.T) {
	repo := &galleryRepoStub{removeErr: sql.ErrNoRows}
	svc := NewGalleryService(repo, &pageReaderStub{}, nil, nil)

	err := svc.RemoveImage(context.Background(), "alb-1", "att-9")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestGalleryServiceReorderRequiresExistingAlbum(t *testing.T) {
	repo := &galleryRepoStub{getErr: sql.ErrNoRows}
	svc := NewGalleryService(repo, &pageReaderStub{}, nil, nil)

	err := svc.ReorderImages(context.Background(), "alb-1", dto.ReorderImagesRequest{
		ImageIDs: []string{"7c0b9a2d-4e5f-4a6b-8c9d-0e1f2a3b4c5d"},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.reorderCalls)
}

func TestGalleryServiceReorder(t *testing.T) {
	repo := &galleryRepoStub{getResp: &models.GalleryAlbum{ID: "alb-1"}}
	svc := NewGalleryService(repo, &pageReaderStub{}, nil, nil)

	ids := []string{"7c0b9a2d-4e5f-4a6b-8c9d-0e1f2a3b4c5d", "9d1c0b3e-5f6a-4b7c-9d0e-1f2a3b4c5d6e"}
	require.NoError(t, svc.ReorderImages(context.Background(), "alb-1", dto.ReorderImagesRequest{ImageIDs: ids}))
	require.Len(t, repo.reorderCalls, 1)
	assert.Equal(t, ids, repo.reorderCalls[0])
}
