package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/landy-api/internal/models"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

const dateLayout = "2006-01-02"

type propertyFinder interface {
	FindByID(ctx context.Context, id string) (*models.Property, error)
}

type tenancyFinder interface {
	FindByID(ctx context.Context, id string) (*models.Tenancy, error)
}

// ownedProperty loads a property and hides it unless ownerID owns it.
func ownedProperty(ctx context.Context, repo propertyFinder, ownerID, propertyID string) (*models.Property, error) {
	property, err := repo.FindByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "property not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load property")
	}
	if ownerID == "" || property.OwnerID != ownerID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "property not found")
	}
	return property, nil
}

// ownedTenancy loads a tenancy whose property belongs to ownerID.
func ownedTenancy(ctx context.Context, tenancies tenancyFinder, properties propertyFinder, ownerID, tenancyID string) (*models.Tenancy, error) {
	tenancy, err := tenancies.FindByID(ctx, tenancyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "tenancy not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load tenancy")
	}
	if _, err := ownedProperty(ctx, properties, ownerID, tenancy.PropertyID); err != nil {
		return nil, renameNotFound(err, "tenancy not found")
	}
	return tenancy, nil
}

// renameNotFound rewords a not found error so a record hidden by ownership
// reads the same as a missing one.
func renameNotFound(err error, message string) error {
	if errors.Is(err, appErrors.ErrNotFound) {
		return appErrors.Clone(appErrors.ErrNotFound, message)
	}
	return err
}

// invalidPayload turns a struct validation failure into a validation error
// listing each failed field.
func invalidPayload(err error, message string) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
		wrapped := appErrors.WithDetails(appErrors.ErrValidation, message, details...)
		wrapped.Err = err
		return wrapped
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}

func internalError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

// parseDate reads an optional YYYY-MM-DD value. Empty input yields the zero
// time so the rules engine can report it as missing.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, raw)
}

func reportCachePattern(ownerID string) string {
	return "report:" + ownerID + ":*"
}
