package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/landy-api/internal/compliance"
	"github.com/noah-isme/landy-api/internal/dto"
	"github.com/noah-isme/landy-api/internal/models"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

type propertyRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Property, error)
	FindByID(ctx context.Context, id string) (*models.Property, error)
	Create(ctx context.Context, property *models.Property) error
	UpdateCompliance(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id string) error
}

// PropertyService manages a landlord's properties and their compliance items.
type PropertyService struct {
	repo      propertyRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPropertyService constructs a PropertyService.
func NewPropertyService(repo propertyRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *PropertyService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &PropertyService{repo: repo, cache: cache, validator: validate, logger: logger}
	_ = svc.validator.RegisterValidation("heating_type", func(fl validator.FieldLevel) bool {
		switch models.HeatingType(fl.Field().String()) {
		case models.HeatingGas, models.HeatingElectric, models.HeatingOil:
			return true
		}
		return false
	})
	_ = svc.validator.RegisterValidation("property_category", func(fl validator.FieldLevel) bool {
		switch models.PropertyCategory(fl.Field().String()) {
		case models.CategoryHouse, models.CategoryFlat, models.CategoryHMO:
			return true
		}
		return false
	})
	return svc
}

// List returns the owner's properties as dashboard cards.
func (s *PropertyService) List(ctx context.Context, ownerID string) ([]dto.PropertyView, error) {
	properties, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, internalError(err, "failed to list properties")
	}
	views := make([]dto.PropertyView, 0, len(properties))
	for _, p := range properties {
		views = append(views, propertyView(p))
	}
	return views, nil
}

// Create adds a property with every compliance item outstanding.
func (s *PropertyService) Create(ctx context.Context, ownerID string, req dto.CreatePropertyRequest) (*dto.PropertyView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err, "invalid property payload")
	}
	property, err := compliance.NewProperty(ownerID, req.Address, models.HeatingType(req.HeatingType), models.PropertyCategory(req.Category))
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &property); err != nil {
		return nil, internalError(err, "failed to create property")
	}
	s.cache.Invalidate(ctx, reportCachePattern(ownerID))
	s.logger.Info("property added", zap.String("property_id", property.ID), zap.String("owner_id", ownerID))
	view := propertyView(property)
	return &view, nil
}

// ToggleCompliance flips one compliance item.
func (s *PropertyService) ToggleCompliance(ctx context.Context, ownerID, propertyID, field string) (*dto.PropertyView, error) {
	key, err := complianceField(field)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, ownerID, propertyID, func(p models.Property) models.Property {
		return compliance.ToggleCompliance(p, key)
	})
}

// SetNotApplicable marks or clears one compliance item as not applicable.
func (s *PropertyService) SetNotApplicable(ctx context.Context, ownerID, propertyID, field string, req dto.SetNotApplicableRequest) (*dto.PropertyView, error) {
	key, err := complianceField(field)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidPayload(err, "invalid not applicable payload")
	}
	return s.update(ctx, ownerID, propertyID, func(p models.Property) models.Property {
		return compliance.SetNotApplicable(p, key, *req.NotApplicable)
	})
}

// RecordSafetyCheck stores induction safety check results.
func (s *PropertyService) RecordSafetyCheck(ctx context.Context, ownerID, propertyID string, req dto.SafetyCheckRequest) (*dto.PropertyView, error) {
	return s.update(ctx, ownerID, propertyID, func(p models.Property) models.Property {
		return compliance.RecordSafetyCheck(p, req.MouldCheckPassed, req.WindowRestrictorsOk)
	})
}

// Delete removes a property with its documents, maintenance requests and
// tenancies.
func (s *PropertyService) Delete(ctx context.Context, ownerID, propertyID string) error {
	if _, err := ownedProperty(ctx, s.repo, ownerID, propertyID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, propertyID); err != nil {
		return internalError(err, "failed to delete property")
	}
	s.cache.Invalidate(ctx, reportCachePattern(ownerID))
	s.logger.Info("property removed", zap.String("property_id", propertyID), zap.String("owner_id", ownerID))
	return nil
}

func (s *PropertyService) update(ctx context.Context, ownerID, propertyID string, apply func(models.Property) models.Property) (*dto.PropertyView, error) {
	current, err := ownedProperty(ctx, s.repo, ownerID, propertyID)
	if err != nil {
		return nil, err
	}
	updated := apply(*current)
	if err := s.repo.UpdateCompliance(ctx, &updated); err != nil {
		return nil, internalError(err, "failed to update property")
	}
	s.cache.Invalidate(ctx, reportCachePattern(ownerID))
	view := propertyView(updated)
	return &view, nil
}

func complianceField(raw string) (models.ComplianceField, error) {
	field := models.ComplianceField(raw)
	if !field.Valid() {
		return "", appErrors.WithDetails(appErrors.ErrValidation, "invalid compliance field", fmt.Sprintf("unknown compliance field %q", raw))
	}
	return field, nil
}

func propertyView(p models.Property) dto.PropertyView {
	return dto.PropertyView{
		Property:       p,
		SatisfiedCount: compliance.SatisfiedCount(p),
		TrackedCount:   len(models.ComplianceFields),
	}
}
