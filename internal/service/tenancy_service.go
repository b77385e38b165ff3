package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/landy-api/internal/compliance"
	"github.com/noah-isme/landy-api/internal/dto"
	"github.com/noah-isme/landy-api/internal/models"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

type tenancyRepository interface {
	ListByProperty(ctx context.Context, propertyID string) ([]models.Tenancy, error)
	FindByID(ctx context.Context, id string) (*models.Tenancy, error)
	Create(ctx context.Context, tenancy *models.Tenancy) error
	UpdateDetails(ctx context.Context, tenancy *models.Tenancy) error
	End(ctx context.Context, id string) error
	ListRentIncreases(ctx context.Context, tenancyID string) ([]models.RentIncrease, error)
	RecordRentIncrease(ctx context.Context, increase *models.RentIncrease) error
}

// TenancyService manages tenancies and their rent history.
type TenancyService struct {
	repo       tenancyRepository
	properties propertyFinder
	metrics    *MetricsService
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewTenancyService constructs a TenancyService.
func NewTenancyService(repo tenancyRepository, properties propertyFinder, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *TenancyService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TenancyService{repo: repo, properties: properties, metrics: metrics, validator: validate, logger: logger}
}

// List returns every tenancy of a property, active or ended.
func (s *TenancyService) List(ctx context.Context, ownerID, propertyID string) ([]models.Tenancy, error) {
	if _, err := ownedProperty(ctx, s.properties, ownerID, propertyID); err != nil {
		return nil, err
	}
	tenancies, err := s.repo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, internalError(err, "failed to list tenancies")
	}
	return tenancies, nil
}

// Create starts a tenancy on a property.
func (s *TenancyService) Create(ctx context.Context, ownerID, propertyID string, req dto.CreateTenancyRequest) (*models.Tenancy, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err, "invalid tenancy payload")
	}
	if _, err := ownedProperty(ctx, s.properties, ownerID, propertyID); err != nil {
		return nil, err
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, invalidPayload(err, "invalid start date")
	}
	tenancy, err := compliance.StartTenancy(compliance.TenancyTerms{
		PropertyID:       propertyID,
		TenantName:       req.TenantName,
		TenantEmail:      trimOptional(req.TenantEmail),
		TenantPhone:      trimOptional(req.TenantPhone),
		StartDate:        start,
		MonthlyRent:      req.MonthlyRent,
		DepositAmount:    req.DepositAmount,
		DepositSchemeRef: trimOptional(req.DepositSchemeRef),
	})
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &tenancy); err != nil {
		return nil, internalError(err, "failed to create tenancy")
	}
	s.logger.Info("tenancy started", zap.String("tenancy_id", tenancy.ID), zap.String("property_id", propertyID))
	return &tenancy, nil
}

// Update changes tenant contact and deposit details. Rent is untouched.
func (s *TenancyService) Update(ctx context.Context, ownerID, tenancyID string, req dto.UpdateTenancyRequest) (*models.Tenancy, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err, "invalid tenancy payload")
	}
	tenancy, err := ownedTenancy(ctx, s.repo, s.properties, ownerID, tenancyID)
	if err != nil {
		return nil, err
	}
	if req.TenantName != nil {
		name := strings.TrimSpace(*req.TenantName)
		if name == "" {
			return nil, appErrors.WithDetails(appErrors.ErrValidation, "invalid tenancy payload", "tenant name required")
		}
		tenancy.TenantName = name
	}
	if req.TenantEmail != nil {
		tenancy.TenantEmail = trimOptional(req.TenantEmail)
	}
	if req.TenantPhone != nil {
		tenancy.TenantPhone = trimOptional(req.TenantPhone)
	}
	if req.DepositAmount != nil {
		tenancy.DepositAmount = req.DepositAmount
	}
	if req.DepositSchemeRef != nil {
		tenancy.DepositSchemeRef = trimOptional(req.DepositSchemeRef)
	}
	if err := s.repo.UpdateDetails(ctx, tenancy); err != nil {
		return nil, internalError(err, "failed to update tenancy")
	}
	return tenancy, nil
}

// End closes an active tenancy.
func (s *TenancyService) End(ctx context.Context, ownerID, tenancyID string) (*models.Tenancy, error) {
	tenancy, err := ownedTenancy(ctx, s.repo, s.properties, ownerID, tenancyID)
	if err != nil {
		return nil, err
	}
	ended, err := compliance.EndTenancy(*tenancy)
	if err != nil {
		return nil, err
	}
	if err := s.repo.End(ctx, tenancyID); err != nil {
		return nil, internalError(err, "failed to end tenancy")
	}
	s.logger.Info("tenancy ended", zap.String("tenancy_id", tenancyID))
	return &ended, nil
}

// ListRentIncreases returns the rent history of a tenancy.
func (s *TenancyService) ListRentIncreases(ctx context.Context, ownerID, tenancyID string) ([]models.RentIncrease, error) {
	if _, err := ownedTenancy(ctx, s.repo, s.properties, ownerID, tenancyID); err != nil {
		return nil, err
	}
	increases, err := s.repo.ListRentIncreases(ctx, tenancyID)
	if err != nil {
		return nil, internalError(err, "failed to list rent increases")
	}
	return increases, nil
}

// ProposeRentIncrease checks a Section 13 increase and, when every rule
// passes, records it and moves the tenancy to the new rent atomically.
func (s *TenancyService) ProposeRentIncrease(ctx context.Context, ownerID, tenancyID string, req dto.RentIncreaseRequest) (*models.RentIncrease, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err, "invalid rent increase payload")
	}
	tenancy, err := ownedTenancy(ctx, s.repo, s.properties, ownerID, tenancyID)
	if err != nil {
		return nil, err
	}
	noticeDate, err := parseDate(req.NoticeServedDate)
	if err != nil {
		return nil, invalidPayload(err, "invalid notice served date")
	}
	effectiveDate, err := parseDate(req.EffectiveDate)
	if err != nil {
		return nil, invalidPayload(err, "invalid effective date")
	}
	prior, err := s.repo.ListRentIncreases(ctx, tenancyID)
	if err != nil {
		return nil, internalError(err, "failed to load rent history")
	}

	s.metrics.RecordEvaluation(EvaluationRentIncrease)
	proposed, err := compliance.ProposeIncrease(*tenancy, prior, req.NewRent, noticeDate, effectiveDate)
	if err != nil {
		s.metrics.RecordRejection(EvaluationRentIncrease, appErrors.FromError(err).Code)
		return nil, err
	}
	increase := proposed.Increase
	if err := s.repo.RecordRentIncrease(ctx, &increase); err != nil {
		if appErrors.IsInvalidState(err) {
			s.metrics.RecordRejection(EvaluationRentIncrease, appErrors.ErrInvalidState.Code)
			return nil, err
		}
		return nil, internalError(err, "failed to record rent increase")
	}
	s.logger.Info("rent increase recorded",
		zap.String("tenancy_id", tenancyID),
		zap.Float64("current_rent", increase.CurrentRent),
		zap.Float64("new_rent", increase.NewRent),
		zap.Time("effective_date", increase.EffectiveDate),
	)
	return &increase, nil
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
