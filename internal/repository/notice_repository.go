package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/landy-api/internal/models"
)

const noticeColumns = `id, tenancy_id, notice_type, grounds, notice_date, expiry_date, status, notes, created_at`

// NoticeRepository manages persistence for legal notices. Notices are never
// deleted.
type NoticeRepository struct {
	db *sqlx.DB
}

// NewNoticeRepository constructs a NoticeRepository.
func NewNoticeRepository(db *sqlx.DB) *NoticeRepository {
	return &NoticeRepository{db: db}
}

// ListByTenancy returns notices served on a tenancy, newest first.
func (r *NoticeRepository) ListByTenancy(ctx context.Context, tenancyID string) ([]models.LegalNotice, error) {
	query := `SELECT ` + noticeColumns + ` FROM legal_notices WHERE tenancy_id = $1 ORDER BY notice_date DESC, created_at DESC`
	notices := make([]models.LegalNotice, 0)
	if err := r.db.SelectContext(ctx, &notices, query, tenancyID); err != nil {
		return nil, fmt.Errorf("list legal notices: %w", err)
	}
	return notices, nil
}

// FindByID fetches a notice by ID.
func (r *NoticeRepository) FindByID(ctx context.Context, id string) (*models.LegalNotice, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	query := `SELECT ` + noticeColumns + ` FROM legal_notices WHERE id = $1`
	var notice models.LegalNotice
	if err := r.db.GetContext(ctx, &notice, query, id); err != nil {
		return nil, err
	}
	return &notice, nil
}

// Create inserts a new notice.
func (r *NoticeRepository) Create(ctx context.Context, notice *models.LegalNotice) error {
	if notice.ID == "" {
		notice.ID = uuid.NewString()
	}
	if notice.CreatedAt.IsZero() {
		notice.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO legal_notices (id, tenancy_id, notice_type, grounds, notice_date, expiry_date, status, notes, created_at)
		VALUES (:id, :tenancy_id, :notice_type, :grounds, :notice_date, :expiry_date, :status, :notes, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, notice); err != nil {
		return fmt.Errorf("create legal notice: %w", err)
	}
	return nil
}

// UpdateStatus writes a stored notice status.
func (r *NoticeRepository) UpdateStatus(ctx context.Context, id string, status models.NoticeStatus) error {
	const query = `UPDATE legal_notices SET status = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("update legal notice status: %w", err)
	}
	return nil
}
