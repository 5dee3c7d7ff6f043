package service

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prernajain1224/MHPS-Website/internal/models"
	appErrors "github.com/prernajain1224/MHPS-Website/pkg/errors"
)

// resolvePage turns the raw page query parameter into a usable page
// number. Unparseable or non-positive values degrade to page 1.
func resolvePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// totalPages returns the number of pages covering total rows, zero for an
// empty set.
func totalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return pages
}

// paginationFor builds the pagination block echoed in list responses. An
// empty result set reports page 1.
func paginationFor(page, size, total int) *models.Pagination {
	pages := totalPages(total, size)
	if pages == 0 {
		page = 1
	}
	return &models.Pagination{Page: page, PageSize: size, TotalCount: total, TotalPages: pages}
}

// parseDateFilter parses a "YYYY-MM-DD" filter value. Blank or malformed
// values yield nil so the filter becomes a no-op.
func parseDateFilter(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

// parsePeriod parses a "{start}-{end}" period selector. "all", blank and
// malformed selectors yield nil bounds, which lists every period.
func parsePeriod(raw string) (start, end *int) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return nil, nil
	}
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return nil, nil
	}
	s, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, nil
	}
	e, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, nil
	}
	return &s, &e
}

// normalizeClock parses an "HH:MM" wall-clock value and returns it
// zero-padded, so stored times compare and sort lexicographically.
// Reports false when the value does not parse.
func normalizeClock(raw string) (string, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	return t.Format("15:04"), true
}

// parseBoolFlag interprets an optional boolean query parameter. Blank or
// unrecognised values yield nil.
func parseBoolFlag(raw string) *bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		v := true
		return &v
	case "false", "0", "no":
		v := false
		return &v
	}
	return nil
}

type pageReader interface {
	GetType(ctx context.Context, id string) (models.PageType, error)
}

// ensureParent checks that the parent page exists and that the tree
// placement rules allow the child type beneath it.
func ensureParent(ctx context.Context, pages pageReader, parentID string, child models.PageType) error {
	parentType, err := pages.GetType(ctx, parentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrInvalidParent, "parent page not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve parent page")
	}
	if !models.ParentAllowed(child, parentType) {
		return appErrors.Clone(appErrors.ErrInvalidParent, fmt.Sprintf("%s cannot be placed under %s", child, parentType))
	}
	return nil
}
