package models

import "time"

// HeatingType describes how a property is heated.
type HeatingType string

const (
	HeatingGas      HeatingType = "gas"
	HeatingElectric HeatingType = "electric"
	HeatingOil      HeatingType = "oil"
)

// PropertyCategory classifies a rental unit.
type PropertyCategory string

const (
	CategoryHouse PropertyCategory = "house"
	CategoryFlat  PropertyCategory = "flat"
	CategoryHMO   PropertyCategory = "hmo"
)

// ComplianceField names one of the tracked compliance items.
type ComplianceField string

const (
	FieldGasSafety           ComplianceField = "gasSafety"
	FieldEICR                ComplianceField = "eicr"
	FieldEPC                 ComplianceField = "epc"
	FieldRentersRightsAct    ComplianceField = "rentersRightsAct"
	FieldTenantInfoStatement ComplianceField = "tenantInfoStatement"
)

// ComplianceFields lists every tracked field in display order.
var ComplianceFields = []ComplianceField{
	FieldGasSafety,
	FieldEICR,
	FieldEPC,
	FieldRentersRightsAct,
	FieldTenantInfoStatement,
}

// Valid reports whether f is one of the tracked fields.
func (f ComplianceField) Valid() bool {
	for _, known := range ComplianceFields {
		if f == known {
			return true
		}
	}
	return false
}

// ComplianceStatus holds one boolean per tracked field. The same shape is used
// for the not-applicable overrides.
type ComplianceStatus struct {
	GasSafety           bool `db:"gas_safety" json:"gasSafety"`
	EICR                bool `db:"eicr" json:"eicr"`
	EPC                 bool `db:"epc" json:"epc"`
	RentersRightsAct    bool `db:"renters_rights_act" json:"rentersRightsAct"`
	TenantInfoStatement bool `db:"tenant_info_statement" json:"tenantInfoStatement"`
}

// Get returns the flag for field. It panics on an unknown field.
func (c ComplianceStatus) Get(field ComplianceField) bool {
	return *c.ref(field)
}

// Set returns a copy of c with field set to value.
func (c ComplianceStatus) Set(field ComplianceField, value bool) ComplianceStatus {
	*c.ref(field) = value
	return c
}

func (c *ComplianceStatus) ref(field ComplianceField) *bool {
	switch field {
	case FieldGasSafety:
		return &c.GasSafety
	case FieldEICR:
		return &c.EICR
	case FieldEPC:
		return &c.EPC
	case FieldRentersRightsAct:
		return &c.RentersRightsAct
	case FieldTenantInfoStatement:
		return &c.TenantInfoStatement
	}
	panic("compliance: unknown compliance field " + string(field))
}

// Property is a rental unit and its compliance state.
type Property struct {
	ID                  string           `db:"id" json:"id"`
	OwnerID             string           `db:"owner_id" json:"owner_id"`
	Address             string           `db:"address" json:"address"`
	HeatingType         HeatingType      `db:"heating_type" json:"heating_type"`
	Category            PropertyCategory `db:"category" json:"category"`
	Compliance          ComplianceStatus `db:"compliance" json:"compliance"`
	NotApplicable       ComplianceStatus `db:"na" json:"not_applicable"`
	MouldCheckPassed    *bool            `db:"mould_check_passed" json:"mould_check_passed,omitempty"`
	WindowRestrictorsOk *bool            `db:"window_restrictors_ok" json:"window_restrictors_ok,omitempty"`
	CreatedAt           time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time        `db:"updated_at" json:"updated_at"`
}

// Document is metadata for a certificate or statement held in the vault. The
// file itself lives with the storage collaborator.
type Document struct {
	ID         string       `db:"id" json:"id"`
	PropertyID string       `db:"property_id" json:"property_id"`
	Name       string       `db:"name" json:"name"`
	Type       DocumentType `db:"type" json:"type"`
	AddedAt    time.Time    `db:"added_at" json:"added_at"`
}

// DocumentType classifies a vault document.
type DocumentType string

const (
	DocumentGas        DocumentType = "gas"
	DocumentEICR       DocumentType = "eicr"
	DocumentEPC        DocumentType = "epc"
	DocumentTenantInfo DocumentType = "tenant-info"
	DocumentOther      DocumentType = "other"
)
