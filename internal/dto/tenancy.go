package dto

// CreateTenancyRequest starts a tenancy on a property. Dates use YYYY-MM-DD.
type CreateTenancyRequest struct {
	TenantName       string   `json:"tenant_name" validate:"required,max=255"`
	TenantEmail      *string  `json:"tenant_email" validate:"omitempty,email"`
	TenantPhone      *string  `json:"tenant_phone" validate:"omitempty,max=50"`
	StartDate        string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	MonthlyRent      float64  `json:"monthly_rent" validate:"gt=0"`
	DepositAmount    *float64 `json:"deposit_amount" validate:"omitempty,gte=0"`
	DepositSchemeRef *string  `json:"deposit_scheme_ref" validate:"omitempty,max=100"`
}

// UpdateTenancyRequest patches tenant contact and deposit details. Rent is
// absent on purpose; it only changes through a rent increase.
type UpdateTenancyRequest struct {
	TenantName       *string  `json:"tenant_name" validate:"omitempty,min=1,max=255"`
	TenantEmail      *string  `json:"tenant_email" validate:"omitempty,email"`
	TenantPhone      *string  `json:"tenant_phone" validate:"omitempty,max=50"`
	DepositAmount    *float64 `json:"deposit_amount" validate:"omitempty,gte=0"`
	DepositSchemeRef *string  `json:"deposit_scheme_ref" validate:"omitempty,max=100"`
}

// RentIncreaseRequest is the Section 13 rent increase form. Missing dates are
// reported together with the other rent rules.
type RentIncreaseRequest struct {
	NewRent          float64 `json:"new_rent"`
	NoticeServedDate string  `json:"notice_served_date" validate:"omitempty,datetime=2006-01-02"`
	EffectiveDate    string  `json:"effective_date" validate:"omitempty,datetime=2006-01-02"`
}
