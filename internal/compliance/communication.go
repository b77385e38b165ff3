package compliance

import (
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/landy-api/internal/models"
)

// ContactEntry is the input for appending to a property's communication log.
type ContactEntry struct {
	PropertyID string
	TenantName string
	Method     models.ContactMethod
	Summary    string
	// Related is the maintenance request the contact concerns, if any.
	Related *models.MaintenanceRequest
}

// LogContact validates entry and returns the log record stamped at at.
func LogContact(entry ContactEntry, at time.Time) (models.CommunicationLog, error) {
	var v violations
	if entry.PropertyID == "" {
		v.add("property id required")
	}
	if strings.TrimSpace(entry.TenantName) == "" {
		v.add("tenant name required")
	}
	switch entry.Method {
	case models.ContactEmail, models.ContactSMS, models.ContactPhone,
		models.ContactInPerson, models.ContactLetter, models.ContactOther:
	default:
		v.add(fmt.Sprintf("unknown contact method %q", entry.Method))
	}
	if strings.TrimSpace(entry.Summary) == "" {
		v.add("summary required")
	}
	if entry.Related != nil && entry.Related.PropertyID != entry.PropertyID {
		v.add("related maintenance request belongs to another property")
	}
	if err := v.err("invalid communication log entry"); err != nil {
		return models.CommunicationLog{}, err
	}

	record := models.CommunicationLog{
		PropertyID: entry.PropertyID,
		TenantName: strings.TrimSpace(entry.TenantName),
		Method:     entry.Method,
		Summary:    strings.TrimSpace(entry.Summary),
		LoggedAt:   at,
	}
	if entry.Related != nil {
		id := entry.Related.ID
		record.RelatedRequestID = &id
	}
	return record, nil
}
