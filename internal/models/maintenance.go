package models

import "time"

// IssueType classifies a reported defect.
type IssueType string

const (
	IssueDampMould  IssueType = "damp_mould"
	IssuePlumbing   IssueType = "plumbing"
	IssueElectrical IssueType = "electrical"
	IssueStructural IssueType = "structural"
	IssueLogBurner  IssueType = "log_burner"
	IssuePest       IssueType = "pest"
	IssueOther      IssueType = "other"
)

// MaintenancePriority ranks urgency of a defect.
type MaintenancePriority string

const (
	PriorityLow       MaintenancePriority = "low"
	PriorityMedium    MaintenancePriority = "medium"
	PriorityHigh      MaintenancePriority = "high"
	PriorityEmergency MaintenancePriority = "emergency"
)

// MaintenanceStatus is the lifecycle state of a request.
type MaintenanceStatus string

const (
	MaintenanceOpen       MaintenanceStatus = "open"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceResolved   MaintenanceStatus = "resolved"
	MaintenanceEscalated  MaintenanceStatus = "escalated"
)

// Responsibility records who must remedy a defect.
type Responsibility string

const (
	ResponsibilityLandlord Responsibility = "landlord"
	ResponsibilityTenant   Responsibility = "tenant"
)

// MaintenanceRequest is a reported defect at a property.
type MaintenanceRequest struct {
	ID               string              `db:"id" json:"id"`
	PropertyID       string              `db:"property_id" json:"property_id"`
	IssueType        IssueType           `db:"issue_type" json:"issue_type"`
	Description      string              `db:"description" json:"description"`
	Responsibility   Responsibility      `db:"responsibility" json:"responsibility"`
	Priority         MaintenancePriority `db:"priority" json:"priority"`
	Status           MaintenanceStatus   `db:"status" json:"status"`
	RemedialDeadline *time.Time          `db:"remedial_deadline" json:"remedial_deadline,omitempty"`
	ResolvedAt       *time.Time          `db:"resolved_at" json:"resolved_at,omitempty"`
	ReportedAt       time.Time           `db:"reported_at" json:"reported_at"`
	UpdatedAt        time.Time           `db:"updated_at" json:"updated_at"`
}

// ContactMethod is how a tenant was contacted.
type ContactMethod string

const (
	ContactEmail    ContactMethod = "email"
	ContactSMS      ContactMethod = "sms"
	ContactPhone    ContactMethod = "phone"
	ContactInPerson ContactMethod = "in_person"
	ContactLetter   ContactMethod = "letter"
	ContactOther    ContactMethod = "other"
)

// CommunicationLog is an append-only record of tenant contact.
type CommunicationLog struct {
	ID               string        `db:"id" json:"id"`
	PropertyID       string        `db:"property_id" json:"property_id"`
	TenantName       string        `db:"tenant_name" json:"tenant_name"`
	Method           ContactMethod `db:"method" json:"method"`
	Summary          string        `db:"summary" json:"summary"`
	RelatedRequestID *string       `db:"related_request_id" json:"related_request_id,omitempty"`
	LoggedAt         time.Time     `db:"logged_at" json:"logged_at"`
}
