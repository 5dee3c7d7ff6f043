package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePage(t *testing.T) {
	assert.Equal(t, 1, resolvePage(""))
	assert.Equal(t, 1, resolvePage("abc"))
	assert.Equal(t, 1, resolvePage("0"))
	assert.Equal(t, 1, resolvePage("-3"))
	assert.Equal(t, 5, resolvePage("5"))
	assert.Equal(t, 2, resolvePage(" 2 "))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 9))
	assert.Equal(t, 1, totalPages(1, 9))
	assert.Equal(t, 1, totalPages(9, 9))
	assert.Equal(t, 2, totalPages(10, 9))
	assert.Equal(t, 2, totalPages(11, 9))
}

func TestPaginationForEmptySetReportsPageOne(t *testing.T) {
	p := paginationFor(4, 9, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.TotalPages)
	assert.Equal(t, 0, p.TotalCount)
}

func TestParseDateFilter(t *testing.T) {
	assert.Nil(t, parseDateFilter(""))
	assert.Nil(t, parseDateFilter("not-a-date"))
	assert.Nil(t, parseDateFilter("2024-13-40"))

	got := parseDateFilter("2024-06-01")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *got)
}

func TestParsePeriod(t *testing.T) {
	start, end := parsePeriod("1995-2000")
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, 1995, *start)
	assert.Equal(t, 2000, *end)

	for _, raw := range []string{"", "all", "ALL", "nonsense", "1995", "a-b"} {
		start, end = parsePeriod(raw)
		assert.Nil(t, start, "raw %q", raw)
		assert.Nil(t, end, "raw %q", raw)
	}
}

func TestNormalizeClock(t *testing.T) {
	got, ok := normalizeClock("9:30")
	require.True(t, ok)
	assert.Equal(t, "09:30", got)

	got, ok = normalizeClock("14:05")
	require.True(t, ok)
	assert.Equal(t, "14:05", got)

	_, ok = normalizeClock("25:00")
	assert.False(t, ok)
	_, ok = normalizeClock("")
	assert.False(t, ok)
}

func TestParseBoolFlag(t *testing.T) {
	require.NotNil(t, parseBoolFlag("true"))
	assert.True(t, *parseBoolFlag("true"))
	require.NotNil(t, parseBoolFlag("0"))
	assert.False(t, *parseBoolFlag("0"))
	assert.Nil(t, parseBoolFlag(""))
	assert.Nil(t, parseBoolFlag("maybe"))
}
