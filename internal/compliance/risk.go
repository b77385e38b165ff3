package compliance

import (
	"fmt"

	"github.com/noah-isme/landy-api/internal/models"
)

type riskDimension struct {
	field   models.ComplianceField
	label   string
	finePer int64
	note    string
}

// Maximum penalty per property for each unmitigated dimension, in pounds.
var riskDimensions = []riskDimension{
	{models.FieldGasSafety, "Gas Safety", 6000, "Up to £6,000 fine & potential criminal prosecution per property"},
	{models.FieldEICR, "EICR", 30000, "Up to £30,000 civil penalty per property"},
	{models.FieldEPC, "EPC below 'E'", 5000, "Up to £5,000 fine per property"},
	{models.FieldRentersRightsAct, "Renters' Rights Act", 7000, "Up to £7,000 fine for first-time offences per property"},
}

// AssessRisk returns the maximum fine exposure for properties. N/A overrides
// do not exempt a property here: only a positive compliance flag mitigates.
func AssessRisk(properties []models.Property) models.RiskReport {
	report := models.RiskReport{Lines: make([]models.RiskLine, 0, len(riskDimensions))}
	for _, dim := range riskDimensions {
		missing := countWhere(properties, func(p models.Property) bool {
			return !p.Compliance.Get(dim.field)
		})
		if missing == 0 {
			continue
		}
		line := models.RiskLine{
			Label:   fmt.Sprintf("%s (%d %s)", dim.label, missing, plural(missing, "property", "properties")),
			MaxFine: int64(missing) * dim.finePer,
			Note:    dim.note,
		}
		report.Lines = append(report.Lines, line)
		report.Total += line.MaxFine
	}
	report.AllClear = len(report.Lines) == 0
	return report
}
