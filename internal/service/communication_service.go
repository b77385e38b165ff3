package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/landy-api/internal/compliance"
	"github.com/noah-isme/landy-api/internal/dto"
	"github.com/noah-isme/landy-api/internal/models"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

type communicationRepository interface {
	ListByProperty(ctx context.Context, propertyID string) ([]models.CommunicationLog, error)
	Append(ctx context.Context, entry *models.CommunicationLog) error
}

type maintenanceFinder interface {
	FindByID(ctx context.Context, id string) (*models.MaintenanceRequest, error)
}

// CommunicationService keeps the append-only tenant contact log. Entries are
// never edited or removed.
type CommunicationService struct {
	repo        communicationRepository
	properties  propertyFinder
	maintenance maintenanceFinder
	validator   *validator.Validate
	logger      *zap.Logger
	now         func() time.Time
}

// NewCommunicationService constructs a CommunicationService.
func NewCommunicationService(repo communicationRepository, properties propertyFinder, maintenance maintenanceFinder, validate *validator.Validate, logger *zap.Logger) *CommunicationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommunicationService{
		repo:        repo,
		properties:  properties,
		maintenance: maintenance,
		validator:   validate,
		logger:      logger,
		now:         time.Now,
	}
}

// List returns a property's contact log, newest first.
func (s *CommunicationService) List(ctx context.Context, ownerID, propertyID string) ([]models.CommunicationLog, error) {
	if _, err := ownedProperty(ctx, s.properties, ownerID, propertyID); err != nil {
		return nil, err
	}
	logs, err := s.repo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, internalError(err, "failed to list communication logs")
	}
	return logs, nil
}

// Append records a tenant contact.
func (s *CommunicationService) Append(ctx context.Context, ownerID, propertyID string, req dto.AppendCommunicationRequest) (*models.CommunicationLog, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err, "invalid communication payload")
	}
	if _, err := ownedProperty(ctx, s.properties, ownerID, propertyID); err != nil {
		return nil, err
	}
	entry := compliance.ContactEntry{
		PropertyID: propertyID,
		TenantName: req.TenantName,
		Method:     models.ContactMethod(req.Method),
		Summary:    req.Summary,
	}
	if req.RelatedRequestID != nil && strings.TrimSpace(*req.RelatedRequestID) != "" {
		related, err := s.maintenance.FindByID(ctx, strings.TrimSpace(*req.RelatedRequestID))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.WithDetails(appErrors.ErrValidation, "invalid communication log entry", "related maintenance request not found")
			}
			return nil, internalError(err, "failed to load related maintenance request")
		}
		entry.Related = related
	}
	record, err := compliance.LogContact(entry, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Append(ctx, &record); err != nil {
		return nil, internalError(err, "failed to append communication log")
	}
	return &record, nil
}
