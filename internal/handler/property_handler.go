package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/landy-api/internal/dto"
	"github.com/noah-isme/landy-api/pkg/response"
)

type propertyService interface {
	List(ctx context.Context, ownerID string) ([]dto.PropertyView, error)
	Create(ctx context.Context, ownerID string, req dto.CreatePropertyRequest) (*dto.PropertyView, error)
	ToggleCompliance(ctx context.Context, ownerID, propertyID, field string) (*dto.PropertyView, error)
	SetNotApplicable(ctx context.Context, ownerID, propertyID, field string, req dto.SetNotApplicableRequest) (*dto.PropertyView, error)
	RecordSafetyCheck(ctx context.Context, ownerID, propertyID string, req dto.SafetyCheckRequest) (*dto.PropertyView, error)
	Delete(ctx context.Context, ownerID, propertyID string) error
}

// PropertyHandler exposes the property portfolio endpoints.
type PropertyHandler struct {
	service propertyService
}

// NewPropertyHandler builds a new handler.
func NewPropertyHandler(service propertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// List godoc
// @Summary List properties
// @Tags Properties
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	items, err := h.service.List(c.Request.Context(), owner)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// Create godoc
// @Summary Add a property
// @Tags Properties
// @Accept json
// @Produce json
// @Param payload body dto.CreatePropertyRequest true "Property payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	var req dto.CreatePropertyRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), owner, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// ToggleCompliance godoc
// @Summary Toggle a compliance item
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Param field path string true "gasSafety, eicr, epc, rentersRightsAct or tenantInfoStatement"
// @Success 200 {object} response.Envelope
// @Router /properties/{id}/compliance/{field}/toggle [post]
func (h *PropertyHandler) ToggleCompliance(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	item, err := h.service.ToggleCompliance(c.Request.Context(), owner, c.Param("id"), c.Param("field"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// SetNotApplicable godoc
// @Summary Mark a compliance item as not applicable
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param field path string true "Compliance field"
// @Param payload body dto.SetNotApplicableRequest true "Override"
// @Success 200 {object} response.Envelope
// @Router /properties/{id}/compliance/{field}/na [put]
func (h *PropertyHandler) SetNotApplicable(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	var req dto.SetNotApplicableRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.service.SetNotApplicable(c.Request.Context(), owner, c.Param("id"), c.Param("field"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// RecordSafetyCheck godoc
// @Summary Record induction safety checks
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param payload body dto.SafetyCheckRequest true "Safety check results"
// @Success 200 {object} response.Envelope
// @Router /properties/{id}/safety [put]
func (h *PropertyHandler) RecordSafetyCheck(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	var req dto.SafetyCheckRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.service.RecordSafetyCheck(c.Request.Context(), owner, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// Delete godoc
// @Summary Remove a property
// @Description Removes the property with its documents, maintenance requests and tenancies.
// @Tags Properties
// @Param id path string true "Property ID"
// @Success 204
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), owner, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
