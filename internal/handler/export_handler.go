package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prernajain1224/MHPS-Website/internal/service"
	appErrors "github.com/prernajain1224/MHPS-Website/pkg/errors"
	"github.com/prernajain1224/MHPS-Website/pkg/response"
)

type exportService interface {
	Generate(ctx context.Context, family, format, indexID string) (*service.ExportResult, error)
}

// ExportHandler streams CSV and PDF listing exports.
type ExportHandler struct {
	service exportService
	enabled bool
}

// NewExportHandler builds a new handler.
func NewExportHandler(service exportService, enabled bool) *ExportHandler {
	return &ExportHandler{service: service, enabled: enabled}
}

// Download godoc
// @Summary Download a content listing export
// @Tags Export
// @Produce text/csv
// @Produce application/pdf
// @Param family path string true "press, events or articles"
// @Param format path string true "csv or pdf"
// @Param index_id query string true "Index page id"
// @Success 200 {file} file
// @Router /export/{family}/{format} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	if !h.enabled {
		response.Error(c, appErrors.New("EXPORT_DISABLED", http.StatusServiceUnavailable, "exports are disabled"))
		return
	}
	indexID := c.Query("index_id")
	if indexID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "index_id is required"))
		return
	}
	result, err := h.service.Generate(c.Request.Context(), c.Param("family"), c.Param("format"), indexID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}
