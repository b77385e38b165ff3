package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/landy-api/internal/models"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

func TestToggleComplianceClearsNotApplicable(t *testing.T) {
	p := models.Property{}
	p = SetNotApplicable(p, models.FieldGasSafety, true)
	require.True(t, p.NotApplicable.GasSafety)

	p = ToggleCompliance(p, models.FieldGasSafety)
	assert.True(t, p.Compliance.GasSafety)
	assert.False(t, p.NotApplicable.GasSafety)

	p = ToggleCompliance(p, models.FieldGasSafety)
	assert.False(t, p.Compliance.GasSafety)
	assert.False(t, p.NotApplicable.GasSafety)
}

func TestSetNotApplicableClearsFlag(t *testing.T) {
	p := ToggleCompliance(models.Property{}, models.FieldEPC)
	require.True(t, p.Compliance.EPC)

	p = SetNotApplicable(p, models.FieldEPC, true)
	assert.False(t, p.Compliance.EPC)
	assert.True(t, p.NotApplicable.EPC)
	assert.True(t, Satisfied(p, models.FieldEPC))

	p = SetNotApplicable(p, models.FieldEPC, false)
	assert.False(t, p.Compliance.EPC)
	assert.False(t, p.NotApplicable.EPC)
	assert.False(t, Satisfied(p, models.FieldEPC))
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	original := models.Property{ID: "p1"}
	_ = ToggleCompliance(original, models.FieldEICR)
	assert.False(t, original.Compliance.EICR)
}

func TestUnknownFieldPanics(t *testing.T) {
	assert.PanicsWithValue(t, "compliance: unknown compliance field boiler", func() {
		ToggleCompliance(models.Property{}, models.ComplianceField("boiler"))
	})
}

func TestSatisfiedCount(t *testing.T) {
	p := ToggleCompliance(models.Property{}, models.FieldGasSafety)
	p = SetNotApplicable(p, models.FieldEPC, true)
	assert.Equal(t, 2, SatisfiedCount(p))
}

func TestRecordSafetyCheckCopiesValues(t *testing.T) {
	mould := boolPtr(false)
	p := RecordSafetyCheck(models.Property{}, mould, nil)
	*mould = true
	require.NotNil(t, p.MouldCheckPassed)
	assert.False(t, *p.MouldCheckPassed)
	assert.Nil(t, p.WindowRestrictorsOk)
}

func TestNewProperty(t *testing.T) {
	p, err := NewProperty("owner-1", "  1 High Street ", models.HeatingGas, models.CategoryFlat)
	require.NoError(t, err)
	assert.Equal(t, "1 High Street", p.Address)
	assert.Equal(t, 0, SatisfiedCount(p))

	_, err = NewProperty("owner-1", "", models.HeatingType("coal"), models.CategoryHMO)
	appErr := requireAppError(t, err, appErrors.ErrValidation)
	assert.Len(t, appErr.Details, 2)
}
