package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/landy-api/internal/dto"
	"github.com/noah-isme/landy-api/internal/models"
	"github.com/noah-isme/landy-api/pkg/response"
)

type documentService interface {
	List(ctx context.Context, ownerID, propertyID string) ([]models.Document, error)
	Create(ctx context.Context, ownerID, propertyID string, req dto.CreateDocumentRequest) (*models.Document, error)
	Delete(ctx context.Context, ownerID, documentID string) error
}

// DocumentHandler exposes the document vault metadata endpoints.
type DocumentHandler struct {
	service documentService
}

// NewDocumentHandler builds a new handler.
func NewDocumentHandler(service documentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// List godoc
// @Summary List vault documents of a property
// @Tags Documents
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Envelope
// @Router /properties/{id}/documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	docs, err := h.service.List(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, docs, nil)
}

// Create godoc
// @Summary Register a vault document
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param payload body dto.CreateDocumentRequest true "Document metadata"
// @Success 201 {object} response.Envelope
// @Router /properties/{id}/documents [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	owner, ok := ownerFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateDocumentRequest
	if !bindJSON(c, &req) {
		return
	}
	doc, err := h.service.Create(c.Request.Context(), owner, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, doc)
}

// Delete godoc
// @Summary Remove a vault document
// @Tags Documents
// @Param id path string true "Document ID"
// @Success 204
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
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
