package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/landy-api/internal/models"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

const tenancyColumns = `id, property_id, tenant_name, tenant_email, tenant_phone, start_date, monthly_rent,
	deposit_amount, deposit_scheme_ref, is_active, created_at`

// TenancyRepository manages persistence for tenancies and their rent history.
type TenancyRepository struct {
	db *sqlx.DB
}

// NewTenancyRepository constructs a TenancyRepository.
func NewTenancyRepository(db *sqlx.DB) *TenancyRepository {
	return &TenancyRepository{db: db}
}

// ListByProperty returns the tenancies of a property, active ones first.
func (r *TenancyRepository) ListByProperty(ctx context.Context, propertyID string) ([]models.Tenancy, error) {
	query := `SELECT ` + tenancyColumns + ` FROM tenancies WHERE property_id = $1 ORDER BY is_active DESC, start_date DESC`
	tenancies := make([]models.Tenancy, 0)
	if err := r.db.SelectContext(ctx, &tenancies, query, propertyID); err != nil {
		return nil, fmt.Errorf("list tenancies: %w", err)
	}
	return tenancies, nil
}

// FindByID fetches a tenancy by ID.
func (r *TenancyRepository) FindByID(ctx context.Context, id string) (*models.Tenancy, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	query := `SELECT ` + tenancyColumns + ` FROM tenancies WHERE id = $1`
	var tenancy models.Tenancy
	if err := r.db.GetContext(ctx, &tenancy, query, id); err != nil {
		return nil, err
	}
	return &tenancy, nil
}

// Create inserts a new tenancy record.
func (r *TenancyRepository) Create(ctx context.Context, tenancy *models.Tenancy) error {
	if tenancy.ID == "" {
		tenancy.ID = uuid.NewString()
	}
	if tenancy.CreatedAt.IsZero() {
		tenancy.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO tenancies (id, property_id, tenant_name, tenant_email, tenant_phone, start_date, monthly_rent,
		deposit_amount, deposit_scheme_ref, is_active, created_at)
		VALUES (:id, :property_id, :tenant_name, :tenant_email, :tenant_phone, :start_date, :monthly_rent,
		:deposit_amount, :deposit_scheme_ref, :is_active, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, tenancy); err != nil {
		return fmt.Errorf("create tenancy: %w", err)
	}
	return nil
}

// UpdateDetails writes the tenant contact and deposit fields. Rent is never
// written here; it only changes through RecordRentIncrease.
func (r *TenancyRepository) UpdateDetails(ctx context.Context, tenancy *models.Tenancy) error {
	const query = `UPDATE tenancies SET tenant_name = :tenant_name, tenant_email = :tenant_email, tenant_phone = :tenant_phone,
		deposit_amount = :deposit_amount, deposit_scheme_ref = :deposit_scheme_ref
		WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, tenancy); err != nil {
		return fmt.Errorf("update tenancy: %w", err)
	}
	return nil
}

// End marks a tenancy as no longer active.
func (r *TenancyRepository) End(ctx context.Context, id string) error {
	const query = `UPDATE tenancies SET is_active = FALSE WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("end tenancy: %w", err)
	}
	return nil
}

// ListRentIncreases returns the rent history of a tenancy, newest first.
func (r *TenancyRepository) ListRentIncreases(ctx context.Context, tenancyID string) ([]models.RentIncrease, error) {
	const query = `SELECT id, tenancy_id, current_rent, new_rent, notice_served_date, effective_date, created_at
		FROM rent_increases WHERE tenancy_id = $1 ORDER BY effective_date DESC`
	increases := make([]models.RentIncrease, 0)
	if err := r.db.SelectContext(ctx, &increases, query, tenancyID); err != nil {
		return nil, fmt.Errorf("list rent increases: %w", err)
	}
	return increases, nil
}

// RecordRentIncrease inserts increase and moves the tenancy to the new rent
// in a single transaction. The tenancy must still be on increase.CurrentRent,
// otherwise nothing is written and an invalid state error is returned.
func (r *TenancyRepository) RecordRentIncrease(ctx context.Context, increase *models.RentIncrease) error {
	if increase.ID == "" {
		increase.ID = uuid.NewString()
	}
	if increase.CreatedAt.IsZero() {
		increase.CreatedAt = time.Now().UTC()
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rent increase tx: %w", err)
	}
	const insert = `INSERT INTO rent_increases (id, tenancy_id, current_rent, new_rent, notice_served_date, effective_date, created_at)
		VALUES (:id, :tenancy_id, :current_rent, :new_rent, :notice_served_date, :effective_date, :created_at)`
	if _, err := tx.NamedExecContext(ctx, insert, increase); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert rent increase: %w", err)
	}
	const update = `UPDATE tenancies SET monthly_rent = $1 WHERE id = $2 AND monthly_rent = $3`
	result, err := tx.ExecContext(ctx, update, increase.NewRent, increase.TenancyID, increase.CurrentRent)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("update tenancy rent: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("update tenancy rent: %w", err)
	}
	if rows == 0 {
		_ = tx.Rollback()
		return appErrors.Clone(appErrors.ErrInvalidState, "tenancy rent changed while the increase was being recorded")
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rent increase tx: %w", err)
	}
	return nil
}
