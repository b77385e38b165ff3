package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/landy-api/internal/dto"
	"github.com/noah-isme/landy-api/internal/models"
	"github.com/noah-isme/landy-api/pkg/response"
)

type tenancyService interface {
	List(ctx context.Context, ownerID, propertyID string) ([]models.Tenancy, error)
	Create(ctx context.Context, ownerID, propertyID string, req dto.CreateTenancyRequest) (*models.Tenancy, error)
	Update(ctx context.Context, ownerID, tenancyID string, req dto.UpdateTenancyRequest) (*models.Tenancy, error)
	End(ctx context.Context, ownerID, tenancyID string) (*models.Tenancy, error)
	ListRentIncreases(ctx context.Context, ownerID, tenancyID string) ([]models.RentIncrease, error)
	ProposeRentIncrease(ctx context.Context, ownerID, tenancyID string, req dto.RentIncreaseRequest) (*models.RentIncrease, error)
}

// TenancyHandler exposes tenancy and rent increase endpoints.
type TenancyHandler struct {
	service tenancyService
}

// NewTenancyHandler builds a new handler.
func NewTenancyHandler(service tenancyService) *TenancyHandler {
	return &TenancyHandler{service: service}
}

// List godoc
// @Summary List tenancies of a property
// @Tags Tenancies
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Envelope
// @Router /properties/{id}/tenancies [get]
func (h *TenancyHandler) List(c *gin.Context) {
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

// Create godoc
// @Summary Start a tenancy
// @Tags Tenancies
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param payload body dto.CreateTenancyRequest true "Tenancy payload"
// @Success 201 {object} response.Envelope
// @Router /properties/{id}/tenancies [post]
func (h *TenancyHandler) Create(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateTenancyRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), owner, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Update tenant contact and deposit details
// @Tags Tenancies
// @Accept json
// @Produce json
// @Param id path string true "Tenancy ID"
// @Param payload body dto.UpdateTenancyRequest true "Tenancy changes"
// @Success 200 {object} response.Envelope
// @Router /tenancies/{id} [patch]
func (h *TenancyHandler) Update(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	var req dto.UpdateTenancyRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.service.Update(c.Request.Context(), owner, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// End godoc
// @Summary End a tenancy
// @Tags Tenancies
// @Produce json
// @Param id path string true "Tenancy ID"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /tenancies/{id}/end [post]
func (h *TenancyHandler) End(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	item, err := h.service.End(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// ListRentIncreases godoc
// @Summary Rent history of a tenancy
// @Tags Tenancies
// @Produce json
// @Param id path string true "Tenancy ID"
// @Success 200 {object} response.Envelope
// @Router /tenancies/{id}/rent-increases [get]
func (h *TenancyHandler) ListRentIncreases(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	items, err := h.service.ListRentIncreases(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// ProposeRentIncrease godoc
// @Summary Record a Section 13 rent increase
// @Description Every failed rule is listed in error.details.
// @Tags Tenancies
// @Accept json
// @Produce json
// @Param id path string true "Tenancy ID"
// @Param payload body dto.RentIncreaseRequest true "Rent increase"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /tenancies/{id}/rent-increases [post]
func (h *TenancyHandler) ProposeRentIncrease(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	var req dto.RentIncreaseRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.service.ProposeRentIncrease(c.Request.Context(), owner, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}
