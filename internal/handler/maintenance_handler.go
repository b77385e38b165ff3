package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/landy-api/internal/dto"
	"github.com/noah-isme/landy-api/internal/models"
	"github.com/noah-isme/landy-api/pkg/response"
)

type maintenanceService interface {
	List(ctx context.Context, ownerID, propertyID string) ([]dto.MaintenanceView, error)
	Report(ctx context.Context, ownerID, propertyID string, req dto.ReportIssueRequest) (*dto.MaintenanceView, error)
	UpdateStatus(ctx context.Context, ownerID, requestID string, req dto.MaintenanceStatusRequest) (*dto.MaintenanceView, error)
	AwaabsTimeline(ctx context.Context, ownerID, requestID string) (*dto.AwaabsTimelineResponse, error)
}

type communicationService interface {
	List(ctx context.Context, ownerID, propertyID string) ([]models.CommunicationLog, error)
	Append(ctx context.Context, ownerID, propertyID string, req dto.AppendCommunicationRequest) (*models.CommunicationLog, error)
}

// MaintenanceHandler exposes the maintenance tracker and the tenant contact
// log.
type MaintenanceHandler struct {
	service        maintenanceService
	communications communicationService
}

// NewMaintenanceHandler builds a new handler.
func NewMaintenanceHandler(service maintenanceService, communications communicationService) *MaintenanceHandler {
	return &MaintenanceHandler{service: service, communications: communications}
}

// List godoc
// @Summary List maintenance requests of a property
// @Tags Maintenance
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Envelope
// @Router /properties/{id}/maintenance [get]
func (h *MaintenanceHandler) List(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	items, err := h.service.List(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// Report godoc
// @Summary Log a maintenance request
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param payload body dto.ReportIssueRequest true "Issue"
// @Success 201 {object} response.Envelope
// @Router /properties/{id}/maintenance [post]
func (h *MaintenanceHandler) Report(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	var req dto.ReportIssueRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.service.Report(c.Request.Context(), owner, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// UpdateStatus godoc
// @Summary Move a maintenance request to a new status
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param payload body dto.MaintenanceStatusRequest true "New status"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /maintenance/{id}/status [post]
func (h *MaintenanceHandler) UpdateStatus(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	var req dto.MaintenanceStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.service.UpdateStatus(c.Request.Context(), owner, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// AwaabsTimeline godoc
// @Summary Advisory Awaab's Law dates for a damp or mould report
// @Tags Maintenance
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Envelope
// @Router /maintenance/{id}/awaabs-timeline [get]
func (h *MaintenanceHandler) AwaabsTimeline(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	item, err := h.service.AwaabsTimeline(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// ListCommunications godoc
// @Summary Tenant contact log of a property
// @Tags Communications
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Envelope
// @Router /properties/{id}/communications [get]
func (h *MaintenanceHandler) ListCommunications(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	items, err := h.communications.List(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// AppendCommunication godoc
// @Summary Append to the tenant contact log
// @Tags Communications
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param payload body dto.AppendCommunicationRequest true "Contact entry"
// @Success 201 {object} response.Envelope
// @Router /properties/{id}/communications [post]
func (h *MaintenanceHandler) AppendCommunication(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	var req dto.AppendCommunicationRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.communications.Append(c.Request.Context(), owner, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}
