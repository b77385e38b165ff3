package models

import (
	"time"

	"github.com/lib/pq"
)

// Tenancy is a periodic letting of one property to one named tenant.
type Tenancy struct {
	ID               string    `db:"id" json:"id"`
	PropertyID       string    `db:"property_id" json:"property_id"`
	TenantName       string    `db:"tenant_name" json:"tenant_name"`
	TenantEmail      *string   `db:"tenant_email" json:"tenant_email,omitempty"`
	TenantPhone      *string   `db:"tenant_phone" json:"tenant_phone,omitempty"`
	StartDate        time.Time `db:"start_date" json:"start_date"`
	MonthlyRent      float64   `db:"monthly_rent" json:"monthly_rent"`
	DepositAmount    *float64  `db:"deposit_amount" json:"deposit_amount,omitempty"`
	DepositSchemeRef *string   `db:"deposit_scheme_ref" json:"deposit_scheme_ref,omitempty"`
	Active           bool      `db:"is_active" json:"is_active"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// RentIncrease is the immutable record of one rent change.
type RentIncrease struct {
	ID               string    `db:"id" json:"id"`
	TenancyID        string    `db:"tenancy_id" json:"tenancy_id"`
	CurrentRent      float64   `db:"current_rent" json:"current_rent"`
	NewRent          float64   `db:"new_rent" json:"new_rent"`
	NoticeServedDate time.Time `db:"notice_served_date" json:"notice_served_date"`
	EffectiveDate    time.Time `db:"effective_date" json:"effective_date"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// NoticeType identifies the statutory notice being served.
type NoticeType string

const (
	NoticeSection8  NoticeType = "section_8"
	NoticeSection13 NoticeType = "section_13"
)

// NoticeStatus tracks a legal notice lifecycle. NoticeExpired is never stored;
// it is derived at read time.
type NoticeStatus string

const (
	NoticeDraft    NoticeStatus = "draft"
	NoticeServed   NoticeStatus = "served"
	NoticeExpired  NoticeStatus = "expired"
	NoticeActioned NoticeStatus = "actioned"
)

// LegalNotice is a notice served against a tenancy.
type LegalNotice struct {
	ID         string         `db:"id" json:"id"`
	TenancyID  string         `db:"tenancy_id" json:"tenancy_id"`
	NoticeType NoticeType     `db:"notice_type" json:"notice_type"`
	Grounds    pq.StringArray `db:"grounds" json:"grounds,omitempty"`
	NoticeDate time.Time      `db:"notice_date" json:"notice_date"`
	ExpiryDate time.Time      `db:"expiry_date" json:"expiry_date"`
	Status     NoticeStatus   `db:"status" json:"status"`
	Notes      *string        `db:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}
