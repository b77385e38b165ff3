package compliance

import (
	"strings"
	"time"

	"github.com/noah-isme/landy-api/internal/models"
)

// TenancyTerms is the input for starting a tenancy.
type TenancyTerms struct {
	PropertyID       string
	TenantName       string
	TenantEmail      *string
	TenantPhone      *string
	StartDate        time.Time
	MonthlyRent      float64
	DepositAmount    *float64
	DepositSchemeRef *string
}

// StartTenancy validates terms and returns an active tenancy.
func StartTenancy(terms TenancyTerms) (models.Tenancy, error) {
	var v violations
	if terms.PropertyID == "" {
		v.add("property id required")
	}
	if strings.TrimSpace(terms.TenantName) == "" {
		v.add("tenant name required")
	}
	if terms.StartDate.IsZero() {
		v.add("start date required")
	}
	if terms.MonthlyRent <= 0 {
		v.add("monthly rent must be greater than zero")
	}
	if terms.DepositAmount != nil && *terms.DepositAmount < 0 {
		v.add("deposit amount cannot be negative")
	}
	if err := v.err("invalid tenancy"); err != nil {
		return models.Tenancy{}, err
	}
	return models.Tenancy{
		PropertyID:       terms.PropertyID,
		TenantName:       strings.TrimSpace(terms.TenantName),
		TenantEmail:      terms.TenantEmail,
		TenantPhone:      terms.TenantPhone,
		StartDate:        dateOnly(terms.StartDate),
		MonthlyRent:      terms.MonthlyRent,
		DepositAmount:    terms.DepositAmount,
		DepositSchemeRef: terms.DepositSchemeRef,
		Active:           true,
	}, nil
}

// EndTenancy marks t as ended.
func EndTenancy(t models.Tenancy) (models.Tenancy, error) {
	if !t.Active {
		return t, invalidState("tenancy has already ended")
	}
	t.Active = false
	return t, nil
}
