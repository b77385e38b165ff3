package compliance

import (
	"fmt"
	"sort"
	"time"

	"github.com/noah-isme/landy-api/internal/models"
)

// DefaultStatementDeadline is the last instant the Tenant Information
// Statement can be issued under the 2026 rules.
var DefaultStatementDeadline = time.Date(2026, time.May, 31, 23, 59, 59, 0, time.UTC)

// Alert identifiers are stable so callers can key UI state on them.
const (
	AlertAwaabsLaw       = "awaabs-law"
	AlertTenantStatement = "tenant-statement-2026"
	AlertWindowRestrict  = "decent-homes-windows"
	AlertHMO             = "hmo-compliance-2026"
)

// AlertPolicy carries the dated inputs of the alert rules.
type AlertPolicy struct {
	StatementDeadline time.Time
}

// DefaultAlertPolicy returns the policy for the current rule set.
func DefaultAlertPolicy() AlertPolicy {
	return AlertPolicy{StatementDeadline: DefaultStatementDeadline}
}

// GenerateAlerts evaluates every alert rule against properties at instant at
// and returns the triggered alerts ordered by ascending priority. The result is
// empty, never nil, when nothing triggers.
func GenerateAlerts(properties []models.Property, at time.Time, policy AlertPolicy) []models.ActionAlert {
	alerts := make([]models.ActionAlert, 0, 4)
	if len(properties) == 0 {
		return alerts
	}
	if policy.StatementDeadline.IsZero() {
		policy.StatementDeadline = DefaultStatementDeadline
	}

	if at.Before(policy.StatementDeadline) {
		missing := countWhere(properties, func(p models.Property) bool {
			return !Satisfied(p, models.FieldTenantInfoStatement)
		})
		if missing > 0 {
			alerts = append(alerts, models.ActionAlert{
				ID:       AlertTenantStatement,
				Severity: models.SeveritySage,
				Title:    "Legal Action Required",
				Message: fmt.Sprintf("Issue your Tenant Info Statement before the %s deadline to maintain possession rights. (%d %s outstanding)",
					policy.StatementDeadline.Format("2 January 2006"), missing, plural(missing, "property", "properties")),
				Priority: 1,
			})
		}
	}

	mould := countWhere(properties, func(p models.Property) bool {
		return p.MouldCheckPassed != nil && !*p.MouldCheckPassed
	})
	if mould > 0 {
		alerts = append(alerts, models.ActionAlert{
			ID:       AlertAwaabsLaw,
			Severity: models.SeverityRed,
			Title:    "Emergency: Awaab's Law",
			Message: fmt.Sprintf("Awaab's Law requires an inspection within 24 hours for reported damp or mould. (%d %s flagged)",
				mould, plural(mould, "property", "properties")),
			Priority: 0,
		})
	}

	windows := countWhere(properties, func(p models.Property) bool {
		return p.WindowRestrictorsOk != nil && !*p.WindowRestrictorsOk
	})
	if windows > 0 {
		alerts = append(alerts, models.ActionAlert{
			ID:       AlertWindowRestrict,
			Severity: models.SeverityAmber,
			Title:    "Safety Update",
			Message: fmt.Sprintf("2026 Decent Homes Standard requires child-resistant window restrictors on upper floors. (%d %s affected)",
				windows, plural(windows, "property", "properties")),
			Priority: 2,
		})
	}

	hmos := countWhere(properties, func(p models.Property) bool {
		return p.Category == models.CategoryHMO
	})
	if hmos > 0 {
		alerts = append(alerts, models.ActionAlert{
			ID:       AlertHMO,
			Severity: models.SeveritySage,
			Title:    "2026 HMO Compliance",
			Message: fmt.Sprintf("Ensure your HMO license is displayed in a communal area and fire doors are inspected. (%d HMO %s)",
				hmos, plural(hmos, "property", "properties")),
			Priority: 3,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Priority < alerts[j].Priority
	})
	return alerts
}

func countWhere(properties []models.Property, match func(models.Property) bool) int {
	n := 0
	for _, p := range properties {
		if match(p) {
			n++
		}
	}
	return n
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
