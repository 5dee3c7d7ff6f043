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

type pressRepoStub struct {
	items     []models.PressItem
	total     int
	listCalls []models.PressFilter
	getResp   *models.PressItem
	getErr    error
	created   *models.PressItem
}

func (s *pressRepoStub) List(ctx context.Context, filter models.PressFilter) ([]models.PressItem, int, error) {
	s.listCalls = append(s.listCalls, filter)
	return s.items, s.total, nil
}

func (s *pressRepoStub) GetByID(ctx context.Context, id string) (*models.PressItem, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getResp, nil
}

func (s *pressRepoStub) Create(ctx context.Context, item *models.PressItem) error {
	s.created = item
	return nil
}

func (s *pressRepoStub) Update(ctx context.Context, item *models.PressItem) error { return nil }
func (s *pressRepoStub) Delete(ctx context.Context, id string) error              { return nil }

type pageReaderStub struct {
	pageType models.PageType
	err      error
}

func (s *pageReaderStub) GetType(ctx context.Context, id string) (models.PageType, error) {
	return s.pageType, s.err
}

func TestPressServiceListDefaultsToFirstTab(t *testing.T) {
	repo := &pressRepoStub{total: 3}
	svc := NewPressService(repo, &pageReaderStub{}, nil, nil)

	_, kind, pagination, err := svc.List(context.Background(), dto.PressListRequest{IndexID: "idx-1", Tab: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, models.PressKindRelease, kind)
	assert.Equal(t, 1, pagination.Page)
	require.Len(t, repo.listCalls, 1)
	assert.Equal(t, models.PressKindRelease, repo.listCalls[0].Kind)
	assert.Equal(t, 9, repo.listCalls[0].PageSize)
}

func TestPressServiceListMalformedPageDegradesToOne(t *testing.T) {
	repo := &pressRepoStub{total: 3}
	svc := NewPressService(repo, &pageReaderStub{}, nil, nil)

	_, _, pagination, err := svc.List(context.Background(), dto.PressListRequest{IndexID: "idx-1", Page: "abc"})
	require.NoError(t, err)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 1, repo.listCalls[0].Page)
}

func TestPressServiceListClampsOverflowToLastPage(t *testing.T) {
	repo := &pressRepoStub{total: 20}
	svc := NewPressService(repo, &pageReaderStub{}, nil, nil)

	_, _, pagination, err := svc.List(context.Background(), dto.PressListRequest{IndexID: "idx-1", Page: "5"})
	require.NoError(t, err)
	require.Len(t, repo.listCalls, 2)
	assert.Equal(t, 5, repo.listCalls[0].Page)
	assert.Equal(t, 3, repo.listCalls[1].Page)
	assert.Equal(t, 3, pagination.Page)
	assert.Equal(t, 3, pagination.TotalPages)
}

func TestPressServiceListEmptySetReportsPageOne(t *testing.T) {
	repo := &pressRepoStub{total: 0}
	svc := NewPressService(repo, &pageReaderStub{}, nil, nil)

	_, _, pagination, err := svc.List(context.Background(), dto.PressListRequest{IndexID: "idx-1", Page: "4"})
	require.NoError(t, err)
	require.Len(t, repo.listCalls, 1)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 0, pagination.TotalPages)
}

func TestPressServiceCreateRejectsWrongParent(t *testing.T) {
	repo := &pressRepoStub{}
	svc := NewPressService(repo, &pageReaderStub{pageType: models.PageTypeEventIndex}, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreatePressItemRequest{
		ParentID:   "8e7b1f4a-0c3d-4f6e-9a2b-1d5c8e7f0a3b",
		Kind:       string(models.PressKindNews),
		ItemDate:   "2024-05-01",
		ShortTitle: "Budget briefing",
		Body:       "Full text",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidParent.Code, appErr.Code)
	assert.Nil(t, repo.created)
}

func TestPressServiceCreate(t *testing.T) {
	repo := &pressRepoStub{}
	svc := NewPressService(repo, &pageReaderStub{pageType: models.PageTypePressIndex}, nil, nil)

	item, err := svc.Create(context.Background(), dto.CreatePressItemRequest{
		ParentID:   "8e7b1f4a-0c3d-4f6e-9a2b-1d5c8e7f0a3b",
		Kind:       string(models.PressKindInterview),
		ItemDate:   "2024-05-01",
		ShortTitle: "Director interview",
		Body:       "Full text",
		Published:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PressKindInterview, item.Kind)
	assert.Equal(t, "2024-05-01", item.ItemDate.Format("2006-01-02"))
	require.NotNil(t, repo.created)
}

func TestPressServiceCreateInvalidKind(t *testing.T) {
	svc := NewPressService(&pressRepoStub{}, &pageReaderStub{pageType: models.PageTypePressIndex}, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreatePressItemRequest{
		ParentID:   "8e7b1f4a-0c3d-4f6e-9a2b-1d5c8e7f0a3b",
		Kind:       "broadcast",
		ItemDate:   "2024-05-01",
		ShortTitle: "Title",
		Body:       "Body",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestPressServiceGetNotFound(t *testing.T) {
	svc := NewPressService(&pressRepoStub{getErr: sql.ErrNoRows}, &pageReaderStub{}, nil, nil)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
