package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/landy-api/internal/dto"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

type reportServiceMock struct {
	format string
	file   *dto.ReportFile
	err    error
}

func (m *reportServiceMock) Generate(_ context.Context, _ string, format string, _ *time.Time) (*dto.ReportFile, error) {
	m.format = format
	return m.file, m.err
}

func TestReportHandlerStreamsFile(t *testing.T) {
	svc := &reportServiceMock{file: &dto.ReportFile{
		Filename:    "compliance-report-20260501.csv",
		ContentType: "text/csv",
		Body:        []byte("Section,Item\n"),
		Cached:      true,
	}}
	h := NewReportHandler(svc)

	c, w := newRequestContext(t, http.MethodGet, "/reports/compliance?format=csv", nil)
	h.Compliance(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", svc.format)
	assert.Equal(t, `attachment; filename="compliance-report-20260501.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "HIT", w.Header().Get(ExportCacheHeader))
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "13", w.Header().Get("Content-Length"))
	assert.Equal(t, "Section,Item\n", w.Body.String())
}

func TestReportHandlerCacheMissLabel(t *testing.T) {
	svc := &reportServiceMock{file: &dto.ReportFile{Filename: "r.pdf", ContentType: "application/pdf", Body: []byte("%PDF")}}
	h := NewReportHandler(svc)

	c, w := newRequestContext(t, http.MethodGet, "/reports/compliance", nil)
	h.Compliance(c)

	assert.Equal(t, "MISS", w.Header().Get(ExportCacheHeader))
	assert.Empty(t, svc.format)
}

func TestReportHandlerInvalidFormat(t *testing.T) {
	svc := &reportServiceMock{err: appErrors.WithDetails(appErrors.ErrValidation, "unsupported report format", "format must be one of pdf, csv, xlsx")}
	h := NewReportHandler(svc)

	c, w := newRequestContext(t, http.MethodGet, "/reports/compliance?format=docx", nil)
	h.Compliance(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}
