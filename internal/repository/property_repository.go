package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/landy-api/internal/models"
)

const propertyColumns = `id, owner_id, address, heating_type, category,
	gas_safety AS "compliance.gas_safety", eicr AS "compliance.eicr", epc AS "compliance.epc",
	renters_rights_act AS "compliance.renters_rights_act", tenant_info_statement AS "compliance.tenant_info_statement",
	na_gas_safety AS "na.gas_safety", na_eicr AS "na.eicr", na_epc AS "na.epc",
	na_renters_rights_act AS "na.renters_rights_act", na_tenant_info_statement AS "na.tenant_info_statement",
	mould_check_passed, window_restrictors_ok, created_at, updated_at`

// PropertyRepository manages persistence for properties.
type PropertyRepository struct {
	db *sqlx.DB
}

// NewPropertyRepository constructs a PropertyRepository.
func NewPropertyRepository(db *sqlx.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// ListByOwner returns every property owned by ownerID, oldest first.
func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE owner_id = $1 ORDER BY created_at ASC, id ASC`
	properties := make([]models.Property, 0)
	if err := r.db.SelectContext(ctx, &properties, query, ownerID); err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return properties, nil
}

// FindByID fetches a property by ID.
func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*models.Property, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	var property models.Property
	if err := r.db.GetContext(ctx, &property, query, id); err != nil {
		return nil, err
	}
	return &property, nil
}

// Create inserts a new property record.
func (r *PropertyRepository) Create(ctx context.Context, property *models.Property) error {
	if property.ID == "" {
		property.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if property.CreatedAt.IsZero() {
		property.CreatedAt = now
	}
	property.UpdatedAt = now

	const query = `INSERT INTO properties (id, owner_id, address, heating_type, category,
		gas_safety, eicr, epc, renters_rights_act, tenant_info_statement,
		na_gas_safety, na_eicr, na_epc, na_renters_rights_act, na_tenant_info_statement,
		mould_check_passed, window_restrictors_ok, created_at, updated_at)
		VALUES (:id, :owner_id, :address, :heating_type, :category,
		:compliance.gas_safety, :compliance.eicr, :compliance.epc, :compliance.renters_rights_act, :compliance.tenant_info_statement,
		:na.gas_safety, :na.eicr, :na.epc, :na.renters_rights_act, :na.tenant_info_statement,
		:mould_check_passed, :window_restrictors_ok, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, property); err != nil {
		return fmt.Errorf("create property: %w", err)
	}
	return nil
}

// UpdateCompliance persists the compliance flags, N/A overrides and safety
// check results of property.
func (r *PropertyRepository) UpdateCompliance(ctx context.Context, property *models.Property) error {
	property.UpdatedAt = time.Now().UTC()
	const query = `UPDATE properties SET
		gas_safety = :compliance.gas_safety, eicr = :compliance.eicr, epc = :compliance.epc,
		renters_rights_act = :compliance.renters_rights_act, tenant_info_statement = :compliance.tenant_info_statement,
		na_gas_safety = :na.gas_safety, na_eicr = :na.eicr, na_epc = :na.epc,
		na_renters_rights_act = :na.renters_rights_act, na_tenant_info_statement = :na.tenant_info_statement,
		mould_check_passed = :mould_check_passed, window_restrictors_ok = :window_restrictors_ok,
		updated_at = :updated_at
		WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, property); err != nil {
		return fmt.Errorf("update property compliance: %w", err)
	}
	return nil
}

// Delete removes a property together with its documents, maintenance
// requests and tenancies in one transaction. Rent increases, legal notices
// and communication logs are left in place.
func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete property tx: %w", err)
	}
	statements := []struct {
		label string
		query string
	}{
		{"documents", `DELETE FROM documents WHERE property_id = $1`},
		{"maintenance requests", `DELETE FROM maintenance_requests WHERE property_id = $1`},
		{"tenancies", `DELETE FROM tenancies WHERE property_id = $1`},
		{"property", `DELETE FROM properties WHERE id = $1`},
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt.query, id); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("delete %s: %w", stmt.label, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete property tx: %w", err)
	}
	return nil
}
