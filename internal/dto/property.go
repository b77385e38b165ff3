package dto

import "github.com/noah-isme/landy-api/internal/models"

// CreatePropertyRequest is the add-property form.
type CreatePropertyRequest struct {
	Address     string `json:"address" validate:"required,max=255"`
	HeatingType string `json:"heating_type" validate:"required,heating_type"`
	Category    string `json:"category" validate:"required,property_category"`
}

// SetNotApplicableRequest marks or clears a compliance item as not applicable.
type SetNotApplicableRequest struct {
	NotApplicable *bool `json:"not_applicable" validate:"required"`
}

// SafetyCheckRequest carries induction safety results. A null value leaves
// the result unset.
type SafetyCheckRequest struct {
	MouldCheckPassed    *bool `json:"mould_check_passed"`
	WindowRestrictorsOk *bool `json:"window_restrictors_ok"`
}

// PropertyView is a property card with its satisfied item count.
type PropertyView struct {
	models.Property
	SatisfiedCount int `json:"satisfied_count"`
	TrackedCount   int `json:"tracked_count"`
}

// CreateDocumentRequest registers a vault document.
type CreateDocumentRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	Type string `json:"type" validate:"required,oneof=gas eicr epc tenant-info other"`
}
