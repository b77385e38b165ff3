package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

func TestStartTenancy(t *testing.T) {
	tenancy, err := StartTenancy(TenancyTerms{
		PropertyID:  "p1",
		TenantName:  "Sam Jones",
		StartDate:   time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC),
		MonthlyRent: 950,
	})
	require.NoError(t, err)
	assert.True(t, tenancy.Active)
	assert.Equal(t, day(2025, time.September, 1), tenancy.StartDate)

	_, err = StartTenancy(TenancyTerms{PropertyID: "p1", TenantName: "Sam", StartDate: day(2025, time.September, 1)})
	appErr := requireAppError(t, err, appErrors.ErrValidation)
	assert.Equal(t, []string{"monthly rent must be greater than zero"}, appErr.Details)
}

func TestEndTenancy(t *testing.T) {
	ended, err := EndTenancy(activeTenancy())
	require.NoError(t, err)
	assert.False(t, ended.Active)

	_, err = EndTenancy(ended)
	requireAppError(t, err, appErrors.ErrInvalidState)
}
