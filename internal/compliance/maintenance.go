package compliance

import (
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/landy-api/internal/models"
)

// Awaab's Law response windows for damp and mould hazards.
const (
	AwaabsInvestigationWindow = 14 * 24 * time.Hour
	AwaabsRemedialStartWindow = 7 * 24 * time.Hour
)

// AwaabsTimeline holds the statutory dates that follow a damp or mould report.
type AwaabsTimeline struct {
	InvestigateBy   time.Time `json:"investigate_by"`
	RemedialStartBy time.Time `json:"remedial_start_by"`
}

// AwaabsLawTimeline returns the investigation and remedial start deadlines for
// a hazard reported at reportedAt. Remedial works must start within seven days
// of the investigation deadline.
func AwaabsLawTimeline(reportedAt time.Time) AwaabsTimeline {
	investigate := reportedAt.Add(AwaabsInvestigationWindow)
	return AwaabsTimeline{
		InvestigateBy:   investigate,
		RemedialStartBy: investigate.Add(AwaabsRemedialStartWindow),
	}
}

// IssueReport is the input for logging a new maintenance request.
type IssueReport struct {
	PropertyID       string
	IssueType        models.IssueType
	Description      string
	Responsibility   models.Responsibility
	Priority         models.MaintenancePriority
	RemedialDeadline *time.Time
}

// ReportIssue validates report and returns an open request stamped at at.
// Responsibility defaults to the landlord and priority to medium.
func ReportIssue(report IssueReport, at time.Time) (models.MaintenanceRequest, error) {
	var v violations
	if report.PropertyID == "" {
		v.add("property id required")
	}
	if !validIssueType(report.IssueType) {
		v.add(fmt.Sprintf("unknown issue type %q", report.IssueType))
	}
	if strings.TrimSpace(report.Description) == "" {
		v.add("description required")
	}
	if report.Responsibility == "" {
		report.Responsibility = models.ResponsibilityLandlord
	}
	if report.Responsibility != models.ResponsibilityLandlord && report.Responsibility != models.ResponsibilityTenant {
		v.add(fmt.Sprintf("unknown responsibility %q", report.Responsibility))
	}
	if report.Priority == "" {
		report.Priority = models.PriorityMedium
	}
	if !validPriority(report.Priority) {
		v.add(fmt.Sprintf("unknown priority %q", report.Priority))
	}
	if err := v.err("invalid maintenance request"); err != nil {
		return models.MaintenanceRequest{}, err
	}

	return models.MaintenanceRequest{
		PropertyID:       report.PropertyID,
		IssueType:        report.IssueType,
		Description:      strings.TrimSpace(report.Description),
		Responsibility:   report.Responsibility,
		Priority:         report.Priority,
		Status:           models.MaintenanceOpen,
		RemedialDeadline: report.RemedialDeadline,
		ReportedAt:       at,
		UpdatedAt:        at,
	}, nil
}

var maintenanceTransitions = map[models.MaintenanceStatus][]models.MaintenanceStatus{
	models.MaintenanceOpen:       {models.MaintenanceInProgress, models.MaintenanceResolved, models.MaintenanceEscalated},
	models.MaintenanceInProgress: {models.MaintenanceResolved, models.MaintenanceEscalated},
	models.MaintenanceResolved:   nil,
	models.MaintenanceEscalated:  nil,
}

// UpdateStatus moves req to status to at instant at. Resolved and escalated
// requests are terminal. ResolvedAt is set exactly when the new status is
// resolved.
func UpdateStatus(req models.MaintenanceRequest, to models.MaintenanceStatus, at time.Time) (models.MaintenanceRequest, error) {
	allowed, known := maintenanceTransitions[req.Status]
	if !known {
		panic("compliance: unknown maintenance status " + string(req.Status))
	}
	if _, ok := maintenanceTransitions[to]; !ok {
		return req, validationFailed("invalid maintenance status", fmt.Sprintf("unknown maintenance status %q", to))
	}
	if len(allowed) == 0 {
		return req, invalidState(fmt.Sprintf("maintenance request is %s and can no longer be updated", req.Status))
	}
	permitted := false
	for _, s := range allowed {
		if s == to {
			permitted = true
			break
		}
	}
	if !permitted {
		return req, invalidState(fmt.Sprintf("maintenance request cannot move from %s to %s", req.Status, to))
	}

	req.Status = to
	req.UpdatedAt = at
	if to == models.MaintenanceResolved {
		resolved := at
		req.ResolvedAt = &resolved
	} else {
		req.ResolvedAt = nil
	}
	return req, nil
}

// IsOverdue reports whether an unresolved request has passed its remedial
// deadline at instant at.
func IsOverdue(req models.MaintenanceRequest, at time.Time) bool {
	if req.RemedialDeadline == nil || req.Status == models.MaintenanceResolved {
		return false
	}
	return req.RemedialDeadline.Before(at)
}

func validIssueType(t models.IssueType) bool {
	switch t {
	case models.IssueDampMould, models.IssuePlumbing, models.IssueElectrical, models.IssueStructural,
		models.IssueLogBurner, models.IssuePest, models.IssueOther:
		return true
	}
	return false
}

func validPriority(p models.MaintenancePriority) bool {
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityEmergency:
		return true
	}
	return false
}
