package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/landy-api/internal/compliance"
	"github.com/noah-isme/landy-api/internal/dto"
	"github.com/noah-isme/landy-api/internal/models"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

type maintenanceRepository interface {
	ListByProperty(ctx context.Context, propertyID string) ([]models.MaintenanceRequest, error)
	FindByID(ctx context.Context, id string) (*models.MaintenanceRequest, error)
	Create(ctx context.Context, request *models.MaintenanceRequest) error
	UpdateStatus(ctx context.Context, request *models.MaintenanceRequest) error
}

// MaintenanceService logs defects and tracks their remedy.
type MaintenanceService struct {
	repo       maintenanceRepository
	properties propertyFinder
	validator  *validator.Validate
	logger     *zap.Logger
	now        func() time.Time
}

// NewMaintenanceService constructs a MaintenanceService.
func NewMaintenanceService(repo maintenanceRepository, properties propertyFinder, validate *validator.Validate, logger *zap.Logger) *MaintenanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaintenanceService{repo: repo, properties: properties, validator: validate, logger: logger, now: time.Now}
}

// List returns a property's requests with their overdue flag.
func (s *MaintenanceService) List(ctx context.Context, ownerID, propertyID string) ([]dto.MaintenanceView, error) {
	if _, err := ownedProperty(ctx, s.properties, ownerID, propertyID); err != nil {
		return nil, err
	}
	requests, err := s.repo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, internalError(err, "failed to list maintenance requests")
	}
	at := s.now()
	views := make([]dto.MaintenanceView, 0, len(requests))
	for _, r := range requests {
		views = append(views, dto.MaintenanceView{MaintenanceRequest: r, Overdue: compliance.IsOverdue(r, at)})
	}
	return views, nil
}

// Report logs a new defect as open.
func (s *MaintenanceService) Report(ctx context.Context, ownerID, propertyID string, req dto.ReportIssueRequest) (*dto.MaintenanceView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err, "invalid maintenance payload")
	}
	if _, err := ownedProperty(ctx, s.properties, ownerID, propertyID); err != nil {
		return nil, err
	}
	at := s.now().UTC()
	var deadline *time.Time
	if req.RemedialDeadline != nil {
		d := req.RemedialDeadline.UTC()
		deadline = &d
	}
	request, err := compliance.ReportIssue(compliance.IssueReport{
		PropertyID:       propertyID,
		IssueType:        models.IssueType(req.IssueType),
		Description:      req.Description,
		Responsibility:   models.Responsibility(req.Responsibility),
		Priority:         models.MaintenancePriority(req.Priority),
		RemedialDeadline: deadline,
	}, at)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &request); err != nil {
		return nil, internalError(err, "failed to create maintenance request")
	}
	s.logger.Info("maintenance reported",
		zap.String("request_id", request.ID),
		zap.String("property_id", propertyID),
		zap.String("issue_type", string(request.IssueType)),
	)
	return &dto.MaintenanceView{MaintenanceRequest: request, Overdue: compliance.IsOverdue(request, at)}, nil
}

// UpdateStatus moves a request to a new status.
func (s *MaintenanceService) UpdateStatus(ctx context.Context, ownerID, requestID string, req dto.MaintenanceStatusRequest) (*dto.MaintenanceView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err, "invalid maintenance status payload")
	}
	current, err := s.owned(ctx, ownerID, requestID)
	if err != nil {
		return nil, err
	}
	at := s.now().UTC()
	updated, err := compliance.UpdateStatus(*current, models.MaintenanceStatus(req.Status), at)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, &updated); err != nil {
		return nil, internalError(err, "failed to update maintenance request")
	}
	s.logger.Info("maintenance status changed",
		zap.String("request_id", requestID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)),
	)
	return &dto.MaintenanceView{MaintenanceRequest: updated, Overdue: compliance.IsOverdue(updated, at)}, nil
}

// AwaabsTimeline returns the advisory Awaab's Law dates for a damp or mould
// report. Other issue types have no statutory timeline.
func (s *MaintenanceService) AwaabsTimeline(ctx context.Context, ownerID, requestID string) (*dto.AwaabsTimelineResponse, error) {
	request, err := s.owned(ctx, ownerID, requestID)
	if err != nil {
		return nil, err
	}
	if request.IssueType != models.IssueDampMould {
		return nil, appErrors.Clone(appErrors.ErrInvalidState, "Awaab's Law timeline applies to damp and mould reports only")
	}
	timeline := compliance.AwaabsLawTimeline(request.ReportedAt)
	return &dto.AwaabsTimelineResponse{
		RequestID:       request.ID,
		ReportedAt:      request.ReportedAt,
		InvestigateBy:   timeline.InvestigateBy,
		RemedialStartBy: timeline.RemedialStartBy,
	}, nil
}

func (s *MaintenanceService) owned(ctx context.Context, ownerID, requestID string) (*models.MaintenanceRequest, error) {
	request, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "maintenance request not found")
		}
		return nil, internalError(err, "failed to load maintenance request")
	}
	if _, err := ownedProperty(ctx, s.properties, ownerID, request.PropertyID); err != nil {
		return nil, renameNotFound(err, "maintenance request not found")
	}
	return request, nil
}
