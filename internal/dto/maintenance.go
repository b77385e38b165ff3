package dto

import (
	"time"

	"github.com/noah-isme/landy-api/internal/models"
)

// ReportIssueRequest logs a new maintenance request.
type ReportIssueRequest struct {
	IssueType        string     `json:"issue_type" validate:"required"`
	Description      string     `json:"description" validate:"required,max=4000"`
	Responsibility   string     `json:"responsibility" validate:"omitempty,oneof=landlord tenant"`
	Priority         string     `json:"priority"`
	RemedialDeadline *time.Time `json:"remedial_deadline"`
}

// MaintenanceStatusRequest moves a request through its lifecycle.
type MaintenanceStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// MaintenanceView is a request with its derived overdue flag.
type MaintenanceView struct {
	models.MaintenanceRequest
	Overdue bool `json:"overdue"`
}

// AwaabsTimelineResponse lists the advisory Awaab's Law dates of a damp or
// mould report.
type AwaabsTimelineResponse struct {
	RequestID       string    `json:"request_id"`
	ReportedAt      time.Time `json:"reported_at"`
	InvestigateBy   time.Time `json:"investigate_by"`
	RemedialStartBy time.Time `json:"remedial_start_by"`
}

// AppendCommunicationRequest adds an entry to the tenant contact log.
type AppendCommunicationRequest struct {
	TenantName       string  `json:"tenant_name" validate:"required,max=255"`
	Method           string  `json:"method" validate:"required"`
	Summary          string  `json:"summary" validate:"required,max=4000"`
	RelatedRequestID *string `json:"related_request_id" validate:"omitempty,uuid"`
}
