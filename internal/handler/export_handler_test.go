package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prernajain1224/MHPS-Website/internal/service"
)

type exportServiceStub struct {
	family, format, indexID string
	result                  *service.ExportResult
	err                     error
}

func (s *exportServiceStub) Generate(_ context.Context, family, format, indexID string) (*service.ExportResult, error) {
	s.family, s.format, s.indexID = family, format, indexID
	return s.result, s.err
}

func newExportRouter(svc *exportServiceStub, enabled bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewExportHandler(svc, enabled)
	r := gin.New()
	r.GET("/export/:family/:format", h.Download)
	return r
}

func TestExportHandlerDisabled(t *testing.T) {
	svc := &exportServiceStub{}
	r := newExportRouter(svc, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/export/press/csv?index_id=idx-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "EXPORT_DISABLED")
	assert.Empty(t, svc.family)
}

func TestExportHandlerRequiresIndexID(t *testing.T) {
	svc := &exportServiceStub{}
	r := newExportRouter(svc, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/export/press/csv", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "index_id is required")
}

func TestExportHandlerStreamsAttachment(t *testing.T) {
	svc := &exportServiceStub{result: &service.ExportResult{
		Payload:     []byte("Date,Kind,Title,Authors,Featured\n"),
		ContentType: "text/csv",
		Filename:    "press-20240501.csv",
	}}
	r := newExportRouter(svc, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/export/press/csv?index_id=idx-1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "press", svc.family)
	assert.Equal(t, "csv", svc.format)
	assert.Equal(t, "idx-1", svc.indexID)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="press-20240501.csv"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "Date,Kind,Title")
}
