package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/landy-api/internal/models"
)

func TestMaintenanceRepositoryCreateAndResolve(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewMaintenanceRepository(db)

	reported := time.Date(2026, time.February, 2, 9, 0, 0, 0, time.UTC)
	request := &models.MaintenanceRequest{
		PropertyID:     "p1",
		IssueType:      models.IssueDampMould,
		Description:    "Mould in bathroom",
		Responsibility: models.ResponsibilityLandlord,
		Priority:       models.PriorityHigh,
		Status:         models.MaintenanceOpen,
		ReportedAt:     reported,
		UpdatedAt:      reported,
	}
	mock.ExpectExec("INSERT INTO maintenance_requests").
		WithArgs(sqlmock.AnyArg(), "p1", models.IssueDampMould, "Mould in bathroom", models.ResponsibilityLandlord,
			models.PriorityHigh, models.MaintenanceOpen, nil, nil, reported, reported).
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Create(context.Background(), request))

	resolved := reported.Add(time.Hour)
	request.Status = models.MaintenanceResolved
	request.ResolvedAt = &resolved
	request.UpdatedAt = resolved
	mock.ExpectExec("UPDATE maintenance_requests SET status").
		WithArgs(models.MaintenanceResolved, resolved, resolved, request.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateStatus(context.Background(), request))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaintenanceRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewMaintenanceRepository(db)

	const missing = "0b7d1a52-8c3e-4f6a-9d21-5e4f3a2b1c00"
	mock.ExpectQuery("SELECT .* FROM maintenance_requests WHERE id = \\$1").WithArgs(missing).WillReturnError(sql.ErrNoRows)
	_, err := repo.FindByID(context.Background(), missing)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaintenanceRepositoryFindByIDMalformed(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewMaintenanceRepository(db)

	_, err := repo.FindByID(context.Background(), "r1'; --")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
