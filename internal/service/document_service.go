package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/landy-api/internal/dto"
	"github.com/noah-isme/landy-api/internal/models"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

type documentRepository interface {
	ListByProperty(ctx context.Context, propertyID string) ([]models.Document, error)
	FindByID(ctx context.Context, id string) (*models.Document, error)
	Create(ctx context.Context, doc *models.Document) error
	Delete(ctx context.Context, id string) error
}

// DocumentService keeps vault metadata for a property's certificates.
type DocumentService struct {
	repo       documentRepository
	properties propertyFinder
	validator  *validator.Validate
	logger     *zap.Logger
	now        func() time.Time
}

// NewDocumentService constructs a DocumentService.
func NewDocumentService(repo documentRepository, properties propertyFinder, validate *validator.Validate, logger *zap.Logger) *DocumentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{repo: repo, properties: properties, validator: validate, logger: logger, now: time.Now}
}

// List returns the documents held for a property.
func (s *DocumentService) List(ctx context.Context, ownerID, propertyID string) ([]models.Document, error) {
	if _, err := ownedProperty(ctx, s.properties, ownerID, propertyID); err != nil {
		return nil, err
	}
	docs, err := s.repo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, internalError(err, "failed to list documents")
	}
	return docs, nil
}

// Create records a document against a property.
func (s *DocumentService) Create(ctx context.Context, ownerID, propertyID string, req dto.CreateDocumentRequest) (*models.Document, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err, "invalid document payload")
	}
	if _, err := ownedProperty(ctx, s.properties, ownerID, propertyID); err != nil {
		return nil, err
	}
	doc := &models.Document{
		PropertyID: propertyID,
		Name:       strings.TrimSpace(req.Name),
		Type:       models.DocumentType(req.Type),
		AddedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, internalError(err, "failed to create document")
	}
	return doc, nil
}

// Delete removes a document's metadata.
func (s *DocumentService) Delete(ctx context.Context, ownerID, documentID string) error {
	doc, err := s.repo.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "document not found")
		}
		return internalError(err, "failed to load document")
	}
	if _, err := ownedProperty(ctx, s.properties, ownerID, doc.PropertyID); err != nil {
		return renameNotFound(err, "document not found")
	}
	if err := s.repo.Delete(ctx, documentID); err != nil {
		return internalError(err, "failed to delete document")
	}
	s.logger.Info("document removed", zap.String("document_id", documentID))
	return nil
}
