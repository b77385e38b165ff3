package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/landy-api/internal/dto"
	"github.com/noah-isme/landy-api/pkg/response"
)

type dashboardService interface {
	Get(ctx context.Context, ownerID string, at *time.Time) (*dto.DashboardResponse, error)
}

// DashboardHandler serves the portfolio compliance overview.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get godoc
// @Summary Portfolio compliance dashboard
// @Description Score, band, traffic light, action alerts and risk exposure, computed fresh for the evaluation instant.
// @Tags Dashboard
// @Produce json
// @Param at query string false "Evaluation instant (RFC3339 or YYYY-MM-DD), defaults to now"
// @Success 200 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	at, ok := evaluationInstant(c)
	if !ok {
		return
	}
	data, err := h.service.Get(c.Request.Context(), owner, at)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, data, nil)
}
