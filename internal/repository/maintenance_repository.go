package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/landy-api/internal/models"
)

const maintenanceColumns = `id, property_id, issue_type, description, responsibility, priority, status,
	remedial_deadline, resolved_at, reported_at, updated_at`

// MaintenanceRepository manages persistence for maintenance requests.
type MaintenanceRepository struct {
	db *sqlx.DB
}

// NewMaintenanceRepository constructs a MaintenanceRepository.
func NewMaintenanceRepository(db *sqlx.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// ListByProperty returns requests for a property, newest first.
func (r *MaintenanceRepository) ListByProperty(ctx context.Context, propertyID string) ([]models.MaintenanceRequest, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests WHERE property_id = $1 ORDER BY reported_at DESC`
	requests := make([]models.MaintenanceRequest, 0)
	if err := r.db.SelectContext(ctx, &requests, query, propertyID); err != nil {
		return nil, fmt.Errorf("list maintenance requests: %w", err)
	}
	return requests, nil
}

// FindByID fetches a request by ID.
func (r *MaintenanceRepository) FindByID(ctx context.Context, id string) (*models.MaintenanceRequest, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests WHERE id = $1`
	var request models.MaintenanceRequest
	if err := r.db.GetContext(ctx, &request, query, id); err != nil {
		return nil, err
	}
	return &request, nil
}

// Create inserts a new request. Timestamps are set by the caller.
func (r *MaintenanceRepository) Create(ctx context.Context, request *models.MaintenanceRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	const query = `INSERT INTO maintenance_requests (id, property_id, issue_type, description, responsibility, priority, status,
		remedial_deadline, resolved_at, reported_at, updated_at)
		VALUES (:id, :property_id, :issue_type, :description, :responsibility, :priority, :status,
		:remedial_deadline, :resolved_at, :reported_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, request); err != nil {
		return fmt.Errorf("create maintenance request: %w", err)
	}
	return nil
}

// UpdateStatus writes the lifecycle fields of a request.
func (r *MaintenanceRepository) UpdateStatus(ctx context.Context, request *models.MaintenanceRequest) error {
	const query = `UPDATE maintenance_requests SET status = :status, resolved_at = :resolved_at, updated_at = :updated_at
		WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, request); err != nil {
		return fmt.Errorf("update maintenance status: %w", err)
	}
	return nil
}
