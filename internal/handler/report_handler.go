package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/landy-api/internal/dto"
	"github.com/noah-isme/landy-api/pkg/response"
)

// ExportCacheHeader reports whether a report was served from cache.
const ExportCacheHeader = "X-Export-Cache"

type reportService interface {
	Generate(ctx context.Context, ownerID, format string, at *time.Time) (*dto.ReportFile, error)
}

// ReportHandler streams compliance reports.
type ReportHandler struct {
	service reportService
}

// NewReportHandler constructs a report handler.
func NewReportHandler(service reportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Compliance godoc
// @Summary Download the portfolio compliance report
// @Tags Reports
// @Produce application/pdf
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "pdf (default), csv or xlsx"
// @Param at query string false "Evaluation instant (RFC3339 or YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /reports/compliance [get]
func (h *ReportHandler) Compliance(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	at, ok := evaluationInstant(c)
	if !ok {
		return
	}
	file, err := h.service.Generate(c.Request.Context(), owner, c.Query("format"), at)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header(ExportCacheHeader, cacheLabel(file.Cached))
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}

func cacheLabel(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
