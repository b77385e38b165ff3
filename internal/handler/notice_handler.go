package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/landy-api/internal/compliance"
	"github.com/noah-isme/landy-api/internal/dto"
	"github.com/noah-isme/landy-api/pkg/response"
)

type noticeService interface {
	List(ctx context.Context, ownerID, tenancyID string) ([]dto.NoticeView, error)
	Draft(ctx context.Context, ownerID, tenancyID string, req dto.DraftNoticeRequest) (*dto.DraftNoticeResponse, error)
	Advance(ctx context.Context, ownerID, noticeID string, req dto.NoticeStatusRequest) (*dto.NoticeView, error)
	Catalogue() *compliance.Catalogue
}

// NoticeHandler exposes the legal notice wizard and the ground catalogue.
type NoticeHandler struct {
	service noticeService
}

// NewNoticeHandler builds a new handler.
func NewNoticeHandler(service noticeService) *NoticeHandler {
	return &NoticeHandler{service: service}
}

// Grounds godoc
// @Summary List Section 8 possession grounds
// @Tags Notices
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /grounds [get]
func (h *NoticeHandler) Grounds(c *gin.Context) {
	catalogue := h.service.Catalogue()
	response.JSON(c, http.StatusOK, catalogue.Grounds, map[string]interface{}{
		"version":        catalogue.Version,
		"default_period": catalogue.DefaultPeriod,
	})
}

// List godoc
// @Summary List notices served on a tenancy
// @Tags Notices
// @Produce json
// @Param id path string true "Tenancy ID"
// @Success 200 {object} response.Envelope
// @Router /tenancies/{id}/notices [get]
func (h *NoticeHandler) List(c *gin.Context) {
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

// Draft godoc
// @Summary Draft a Section 8 or Section 13 notice
// @Tags Notices
// @Accept json
// @Produce json
// @Param id path string true "Tenancy ID"
// @Param payload body dto.DraftNoticeRequest true "Notice wizard"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /tenancies/{id}/notices [post]
func (h *NoticeHandler) Draft(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	var req dto.DraftNoticeRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.service.Draft(c.Request.Context(), owner, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Advance godoc
// @Summary Mark a notice served or actioned
// @Tags Notices
// @Accept json
// @Produce json
// @Param id path string true "Notice ID"
// @Param payload body dto.NoticeStatusRequest true "New status"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /notices/{id}/status [post]
func (h *NoticeHandler) Advance(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	var req dto.NoticeStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.service.Advance(c.Request.Context(), owner, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}
