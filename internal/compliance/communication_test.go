package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/landy-api/internal/models"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

func TestLogContact(t *testing.T) {
	at := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)
	related := &models.MaintenanceRequest{ID: "m1", PropertyID: "p1"}

	record, err := LogContact(ContactEntry{
		PropertyID: "p1",
		TenantName: "Sam Jones",
		Method:     models.ContactPhone,
		Summary:    "Booked mould inspection",
		Related:    related,
	}, at)
	require.NoError(t, err)
	require.NotNil(t, record.RelatedRequestID)
	assert.Equal(t, "m1", *record.RelatedRequestID)
	assert.Equal(t, at, record.LoggedAt)
}

func TestLogContactRejectsForeignRequest(t *testing.T) {
	_, err := LogContact(ContactEntry{
		PropertyID: "p1",
		TenantName: "Sam Jones",
		Method:     models.ContactEmail,
		Summary:    "Chased access",
		Related:    &models.MaintenanceRequest{ID: "m9", PropertyID: "p2"},
	}, time.Now())
	appErr := requireAppError(t, err, appErrors.ErrValidation)
	assert.Equal(t, []string{"related maintenance request belongs to another property"}, appErr.Details)
}

func TestLogContactUnknownMethod(t *testing.T) {
	_, err := LogContact(ContactEntry{PropertyID: "p1", TenantName: "Sam", Method: "fax", Summary: "x"}, time.Now())
	requireAppError(t, err, appErrors.ErrValidation)
}
