package compliance

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/landy-api/internal/models"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

func TestProposeIncreaseNoticeTooShort(t *testing.T) {
	_, err := ProposeIncrease(activeTenancy(), nil, 1100, day(2026, time.January, 1), day(2026, time.February, 15))
	appErr := requireAppError(t, err, appErrors.ErrValidation)
	require.Len(t, appErr.Details, 1)
	assert.Contains(t, appErr.Details[0], "2026-03-01")
}

func TestProposeIncreaseAccepted(t *testing.T) {
	tenancy := activeTenancy()
	result, err := ProposeIncrease(tenancy, nil, 1100, day(2026, time.January, 1), day(2026, time.March, 1))
	require.NoError(t, err)

	assert.Equal(t, 1000.0, result.Increase.CurrentRent)
	assert.Equal(t, 1100.0, result.Increase.NewRent)
	assert.Equal(t, "t1", result.Increase.TenancyID)
	assert.Equal(t, day(2026, time.March, 1), result.Increase.EffectiveDate)
	assert.Equal(t, 1100.0, result.Tenancy.MonthlyRent)
	assert.Equal(t, 1000.0, tenancy.MonthlyRent)
}

func TestProposeIncreaseTwelveMonthRule(t *testing.T) {
	tenancy := activeTenancy()
	first, err := ProposeIncrease(tenancy, nil, 1100, day(2026, time.January, 1), day(2026, time.March, 1))
	require.NoError(t, err)
	prior := []models.RentIncrease{first.Increase}

	_, err = ProposeIncrease(first.Tenancy, prior, 1200, day(2026, time.May, 1), day(2026, time.August, 1))
	appErr := requireAppError(t, err, appErrors.ErrValidation)
	require.Len(t, appErr.Details, 1)
	assert.Contains(t, appErr.Details[0], "2027-03-01")

	_, err = ProposeIncrease(first.Tenancy, prior, 1200, day(2026, time.December, 1), day(2027, time.March, 1))
	require.NoError(t, err)
}

func TestProposeIncreaseIgnoresOtherTenancies(t *testing.T) {
	prior := []models.RentIncrease{{TenancyID: "other", EffectiveDate: day(2026, time.March, 1)}}
	_, err := ProposeIncrease(activeTenancy(), prior, 1100, day(2026, time.April, 1), day(2026, time.June, 1))
	require.NoError(t, err)
}

func TestProposeIncreaseReportsEveryViolation(t *testing.T) {
	prior := []models.RentIncrease{{TenancyID: "t1", EffectiveDate: day(2026, time.January, 1)}}
	_, err := ProposeIncrease(activeTenancy(), prior, 900, day(2026, time.January, 1), day(2026, time.February, 1))
	appErr := requireAppError(t, err, appErrors.ErrValidation)
	assert.Len(t, appErr.Details, 3)
	assert.Contains(t, appErr.Details[0], "higher than the current rent")
}

func TestProposeIncreaseEqualRentRejected(t *testing.T) {
	_, err := ProposeIncrease(activeTenancy(), nil, 1000, day(2026, time.January, 1), day(2026, time.March, 1))
	requireAppError(t, err, appErrors.ErrValidation)
}

func TestProposeIncreaseEndedTenancy(t *testing.T) {
	tenancy := activeTenancy()
	tenancy.Active = false
	_, err := ProposeIncrease(tenancy, nil, 900, day(2026, time.January, 1), day(2026, time.February, 1))
	requireAppError(t, err, appErrors.ErrInvalidState)
}

func TestProposeIncreaseRoundsToPence(t *testing.T) {
	_, err := ProposeIncrease(activeTenancy(), nil, 1000.004, day(2026, time.January, 1), day(2026, time.March, 1))
	appErr := requireAppError(t, err, appErrors.ErrValidation)
	require.Len(t, appErr.Details, 1)
	assert.Contains(t, appErr.Details[0], "higher than the current rent")

	result, err := ProposeIncrease(activeTenancy(), nil, 1000.0149, day(2026, time.January, 1), day(2026, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, 1000.01, result.Increase.NewRent)
	assert.Equal(t, 1000.01, result.Tenancy.MonthlyRent)
}

func TestProposeIncreaseRejectsNonFiniteRent(t *testing.T) {
	for _, rent := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := ProposeIncrease(activeTenancy(), nil, rent, day(2026, time.January, 1), day(2026, time.March, 1))
		appErr := requireAppError(t, err, appErrors.ErrValidation)
		require.Len(t, appErr.Details, 1)
		assert.Equal(t, "new rent must be a finite amount", appErr.Details[0])
	}
}
