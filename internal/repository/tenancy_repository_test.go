package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/landy-api/internal/models"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

const tenancyID = "3c9e6f1a-2b4d-4e8f-a1c3-7d5b9e0f2a11"

func TestTenancyRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTenancyRepository(db)

	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "property_id", "tenant_name", "tenant_email", "tenant_phone", "start_date",
		"monthly_rent", "deposit_amount", "deposit_scheme_ref", "is_active", "created_at"}).
		AddRow(tenancyID, "p1", "Sam Jones", "sam@example.com", nil, start, 950.0, nil, nil, true, start)
	mock.ExpectQuery("SELECT .* FROM tenancies WHERE id = \\$1").WithArgs(tenancyID).WillReturnRows(rows)

	tenancy, err := repo.FindByID(context.Background(), tenancyID)
	require.NoError(t, err)
	assert.Equal(t, 950.0, tenancy.MonthlyRent)
	require.NotNil(t, tenancy.TenantEmail)
	assert.Equal(t, "sam@example.com", *tenancy.TenantEmail)
	assert.True(t, tenancy.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenancyRepositoryCreateAndEnd(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTenancyRepository(db)

	mock.ExpectExec("INSERT INTO tenancies").
		WithArgs(sqlmock.AnyArg(), "p1", "Sam Jones", nil, nil, sqlmock.AnyArg(), 950.0, nil, nil, true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	tenancy := &models.Tenancy{PropertyID: "p1", TenantName: "Sam Jones", MonthlyRent: 950, Active: true, StartDate: time.Now()}
	require.NoError(t, repo.Create(context.Background(), tenancy))
	assert.NotEmpty(t, tenancy.ID)

	mock.ExpectExec("UPDATE tenancies SET is_active = FALSE").WithArgs(tenancy.ID).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.End(context.Background(), tenancy.ID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenancyRepositoryUpdateDetailsLeavesRent(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTenancyRepository(db)

	mock.ExpectExec("UPDATE tenancies SET tenant_name = .*deposit_scheme_ref = .* WHERE id").
		WithArgs("Sam Jones", "sam@example.com", nil, nil, "DPS-1", "t1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateDetails(context.Background(), &models.Tenancy{
		ID:               "t1",
		TenantName:       "Sam Jones",
		TenantEmail:      stringPtr("sam@example.com"),
		DepositSchemeRef: stringPtr("DPS-1"),
		MonthlyRent:      2000,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenancyRepositoryRecordRentIncrease(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTenancyRepository(db)

	notice := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	effective := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO rent_increases").
		WithArgs(sqlmock.AnyArg(), "t1", 1000.0, 1100.0, notice, effective, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE tenancies SET monthly_rent = \\$1 WHERE id = \\$2 AND monthly_rent = \\$3").
		WithArgs(1100.0, "t1", 1000.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	increase := &models.RentIncrease{TenancyID: "t1", CurrentRent: 1000, NewRent: 1100, NoticeServedDate: notice, EffectiveDate: effective}
	require.NoError(t, repo.RecordRentIncrease(context.Background(), increase))
	assert.NotEmpty(t, increase.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenancyRepositoryRecordRentIncreaseRollsBack(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTenancyRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO rent_increases").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE tenancies SET monthly_rent").WillReturnError(errors.New("conn reset"))
	mock.ExpectRollback()

	err := repo.RecordRentIncrease(context.Background(), &models.RentIncrease{TenancyID: "t1", NewRent: 1100})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenancyRepositoryRecordRentIncreaseStaleRent(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTenancyRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO rent_increases").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE tenancies SET monthly_rent").
		WithArgs(1100.0, "t1", 1000.0).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.RecordRentIncrease(context.Background(), &models.RentIncrease{TenancyID: "t1", CurrentRent: 1000, NewRent: 1100})
	require.Error(t, err)
	assert.True(t, appErrors.IsInvalidState(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenancyRepositoryListRentIncreases(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewTenancyRepository(db)

	d := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "tenancy_id", "current_rent", "new_rent", "notice_served_date", "effective_date", "created_at"}).
		AddRow("r1", "t1", 1000.0, 1100.0, d.AddDate(0, -2, 0), d, d)
	mock.ExpectQuery("SELECT .* FROM rent_increases WHERE tenancy_id = \\$1 ORDER BY effective_date DESC").
		WithArgs("t1").
		WillReturnRows(rows)

	list, err := repo.ListRentIncreases(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, d, list[0].EffectiveDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
