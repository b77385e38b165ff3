package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/landy-api/internal/models"
)

// CommunicationRepository stores the tenant communication log. It is
// append-only: there is no update or delete.
type CommunicationRepository struct {
	db *sqlx.DB
}

// NewCommunicationRepository constructs a CommunicationRepository.
func NewCommunicationRepository(db *sqlx.DB) *CommunicationRepository {
	return &CommunicationRepository{db: db}
}

// ListByProperty returns log entries for a property, newest first.
func (r *CommunicationRepository) ListByProperty(ctx context.Context, propertyID string) ([]models.CommunicationLog, error) {
	const query = `SELECT id, property_id, tenant_name, method, summary, related_request_id, logged_at
		FROM communication_logs WHERE property_id = $1 ORDER BY logged_at DESC`
	entries := make([]models.CommunicationLog, 0)
	if err := r.db.SelectContext(ctx, &entries, query, propertyID); err != nil {
		return nil, fmt.Errorf("list communication logs: %w", err)
	}
	return entries, nil
}

// Append inserts a log entry.
func (r *CommunicationRepository) Append(ctx context.Context, entry *models.CommunicationLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	const query = `INSERT INTO communication_logs (id, property_id, tenant_name, method, summary, related_request_id, logged_at)
		VALUES (:id, :property_id, :tenant_name, :method, :summary, :related_request_id, :logged_at)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("append communication log: %w", err)
	}
	return nil
}
