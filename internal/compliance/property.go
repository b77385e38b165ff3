// Package compliance is the landlord compliance rules engine. Every function is
// a pure computation over the records passed in: nothing here reads a clock,
// touches storage or logs. Recoverable rule failures are returned as
// *errors.Error values (validation or invalid-state); malformed input that can
// only come from a caller bug panics.
package compliance

import (
	"fmt"
	"strings"

	"github.com/noah-isme/landy-api/internal/models"
)

// ToggleCompliance flips field on p. Turning a flag on clears its N/A
// override so the two are never both set.
func ToggleCompliance(p models.Property, field models.ComplianceField) models.Property {
	mustField(field)
	next := !p.Compliance.Get(field)
	p.Compliance = p.Compliance.Set(field, next)
	if next {
		p.NotApplicable = p.NotApplicable.Set(field, false)
	}
	return p
}

// SetNotApplicable marks field as not applicable (na=true), clearing its
// compliance flag, or removes the override (na=false) leaving the flag unset.
func SetNotApplicable(p models.Property, field models.ComplianceField, na bool) models.Property {
	mustField(field)
	p.NotApplicable = p.NotApplicable.Set(field, na)
	if na {
		p.Compliance = p.Compliance.Set(field, false)
	}
	return p
}

// RecordSafetyCheck stores induction safety results. A nil value means the
// check was not carried out or does not apply.
func RecordSafetyCheck(p models.Property, mouldCheckPassed, windowRestrictorsOk *bool) models.Property {
	p.MouldCheckPassed = copyBool(mouldCheckPassed)
	p.WindowRestrictorsOk = copyBool(windowRestrictorsOk)
	return p
}

// Satisfied reports whether field counts towards the score for p.
func Satisfied(p models.Property, field models.ComplianceField) bool {
	return p.Compliance.Get(field) || p.NotApplicable.Get(field)
}

// SatisfiedCount returns how many of the tracked fields p satisfies.
func SatisfiedCount(p models.Property) int {
	count := 0
	for _, field := range models.ComplianceFields {
		if Satisfied(p, field) {
			count++
		}
	}
	return count
}

func mustField(field models.ComplianceField) {
	if !field.Valid() {
		panic("compliance: unknown compliance field " + string(field))
	}
}

func copyBool(v *bool) *bool {
	if v == nil {
		return nil
	}
	b := *v
	return &b
}

// NewProperty validates the user-supplied attributes of a property and returns
// it with every compliance flag unset.
func NewProperty(ownerID, address string, heating models.HeatingType, category models.PropertyCategory) (models.Property, error) {
	var v violations
	if strings.TrimSpace(address) == "" {
		v.add("address required")
	}
	switch heating {
	case models.HeatingGas, models.HeatingElectric, models.HeatingOil:
	default:
		v.add(fmt.Sprintf("unknown heating type %q", heating))
	}
	switch category {
	case models.CategoryHouse, models.CategoryFlat, models.CategoryHMO:
	default:
		v.add(fmt.Sprintf("unknown property category %q", category))
	}
	if err := v.err("invalid property"); err != nil {
		return models.Property{}, err
	}
	return models.Property{
		OwnerID:     ownerID,
		Address:     strings.TrimSpace(address),
		HeatingType: heating,
		Category:    category,
	}, nil
}
