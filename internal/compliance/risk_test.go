package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/landy-api/internal/models"
)

func TestAssessRiskAllClear(t *testing.T) {
	p := models.Property{Compliance: models.ComplianceStatus{
		GasSafety: true, EICR: true, EPC: true, RentersRightsAct: true,
	}}
	report := AssessRisk([]models.Property{p})
	assert.True(t, report.AllClear)
	assert.Empty(t, report.Lines)
	assert.Zero(t, report.Total)
}

func TestAssessRiskEmptyPortfolioIsClear(t *testing.T) {
	report := AssessRisk(nil)
	assert.True(t, report.AllClear)
	assert.Zero(t, report.Total)
}

func TestAssessRiskTotals(t *testing.T) {
	gasOnly := models.Property{Compliance: models.ComplianceStatus{GasSafety: true}}
	// N/A does not mitigate exposure.
	naGas := SetNotApplicable(models.Property{}, models.FieldGasSafety, true)

	report := AssessRisk([]models.Property{gasOnly, naGas})
	require.False(t, report.AllClear)
	require.Len(t, report.Lines, 4)

	assert.Equal(t, "Gas Safety (1 property)", report.Lines[0].Label)
	assert.Equal(t, int64(6000), report.Lines[0].MaxFine)
	assert.Equal(t, "EICR (2 properties)", report.Lines[1].Label)
	assert.Equal(t, int64(60000), report.Lines[1].MaxFine)
	assert.Equal(t, int64(10000), report.Lines[2].MaxFine)
	assert.Equal(t, int64(14000), report.Lines[3].MaxFine)
	assert.Equal(t, int64(6000+60000+10000+14000), report.Total)
}

func TestAssessRiskIgnoresTenantStatement(t *testing.T) {
	p := models.Property{Compliance: models.ComplianceStatus{
		GasSafety: true, EICR: true, EPC: true, RentersRightsAct: true,
	}}
	report := AssessRisk([]models.Property{p})
	assert.True(t, report.AllClear)
}
