package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prernajain1224/MHPS-Website/internal/dto"
	"github.com/prernajain1224/MHPS-Website/internal/models"
	appErrors "github.com/prernajain1224/MHPS-Website/pkg/errors"
)

type timelineRepoStub struct {
	events    []models.HistoricalEvent
	total     int
	dates     []time.Time
	listCalls []models.TimelineFilter
	getResp   *models.HistoricalEvent
	getErr    error
	deleted   []string
}

func (s *timelineRepoStub) List(ctx context.Context, filter models.TimelineFilter) ([]models.HistoricalEvent, int, error) {
	s.listCalls = append(s.listCalls, filter)
	return s.events, s.total, nil
}

func (s *timelineRepoStub) ListDates(ctx context.Context, parentID string) ([]time.Time, error) {
	return s.dates, nil
}

func (s *timelineRepoStub) GetByID(ctx context.Context, id string) (*models.HistoricalEvent, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getResp, nil
}

func (s *timelineRepoStub) Create(ctx context.Context, event *models.HistoricalEvent) error {
	return nil
}
func (s *timelineRepoStub) Update(ctx context.Context, event *models.HistoricalEvent) error {
	return nil
}
func (s *timelineRepoStub) Delete(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func dates(days ...string) []time.Time {
	out := make([]time.Time, 0, len(days))
	for _, d := range days {
		t, _ := time.Parse("2006-01-02", d)
		out = append(out, t)
	}
	return out
}

func TestBuildPeriods(t *testing.T) {
	periods := buildPeriods(dates("1998-01-10", "2001-05-20", "2004-09-01", "2006-03-15"))

	require.Len(t, periods, 3)
	assert.Equal(t, models.TimelinePeriod{Start: 1995, End: 2000, Label: "1995-2000", Count: 1}, periods[0])
	assert.Equal(t, models.TimelinePeriod{Start: 2000, End: 2005, Label: "2000-2005", Count: 2}, periods[1])
	assert.Equal(t, models.TimelinePeriod{Start: 2005, End: 2010, Label: "2005-2010", Count: 1}, periods[2])
}

func TestBuildPeriodsEmpty(t *testing.T) {
	assert.Empty(t, buildPeriods(nil))
}

func TestTimelineServiceListAppliesPeriodSelector(t *testing.T) {
	repo := &timelineRepoStub{total: 2, dates: dates("1998-01-10", "2001-05-20")}
	svc := NewTimelineService(repo, &pageReaderStub{}, nil, 0, nil, nil)

	timeline, pagination, err := svc.List(context.Background(), dto.TimelineListRequest{IndexID: "about-1", Period: "1995-2000"})
	require.NoError(t, err)
	filter := repo.listCalls[0]
	require.NotNil(t, filter.StartYear)
	require.NotNil(t, filter.EndYear)
	assert.Equal(t, 1995, *filter.StartYear)
	assert.Equal(t, 2000, *filter.EndYear)
	assert.Equal(t, 10, pagination.PageSize)

	// the menu ignores the active selector
	require.Len(t, timeline.Periods, 2)
}

func TestTimelineServiceListMalformedPeriodListsAll(t *testing.T) {
	repo := &timelineRepoStub{total: 4}
	svc := NewTimelineService(repo, &pageReaderStub{}, nil, 0, nil, nil)

	_, _, err := svc.List(context.Background(), dto.TimelineListRequest{IndexID: "about-1", Period: "bogus"})
	require.NoError(t, err)
	assert.Nil(t, repo.listCalls[0].StartYear)
	assert.Nil(t, repo.listCalls[0].EndYear)
}

func TestTimelineServiceGetAddsPeriodLabel(t *testing.T) {
	event := &models.HistoricalEvent{ID: "h1", EventDate: time.Date(2006, 3, 15, 0, 0, 0, 0, time.UTC)}
	svc := NewTimelineService(&timelineRepoStub{getResp: event}, &pageReaderStub{}, nil, 0, nil, nil)

	detail, err := svc.Get(context.Background(), "h1")
	require.NoError(t, err)
	assert.Equal(t, "2005-2010", detail.PeriodLabel)
}

type cacheRepoStub struct {
	deleted []string
}

func (s *cacheRepoStub) Get(ctx context.Context, key string, dest interface{}) error {
	return appErrors.ErrCacheMiss
}

func (s *cacheRepoStub) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (s *cacheRepoStub) DeleteByPattern(ctx context.Context, pattern string) error {
	s.deleted = append(s.deleted, pattern)
	return nil
}

func TestTimelineServiceWriteInvalidatesPeriodCache(t *testing.T) {
	cacheRepo := &cacheRepoStub{}
	cacheSvc := NewCacheService(cacheRepo, nil, time.Minute, nil, true)
	repo := &timelineRepoStub{getResp: &models.HistoricalEvent{ID: "h1", ParentID: "about-1"}}
	svc := NewTimelineService(repo, &pageReaderStub{}, cacheSvc, time.Minute, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "h1"))
	assert.Contains(t, cacheRepo.deleted, "timeline:periods:about-1")
}
