package dto

import "github.com/noah-isme/landy-api/internal/models"

// DraftNoticeRequest is the notice wizard payload.
type DraftNoticeRequest struct {
	NoticeType string   `json:"notice_type" validate:"required"`
	Grounds    []string `json:"grounds"`
	NoticeDate string   `json:"notice_date" validate:"required,datetime=2006-01-02"`
	Notes      *string  `json:"notes" validate:"omitempty,max=2000"`
}

// NoticeStatusRequest records that a notice was served or actioned.
type NoticeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// NoticeView is a stored notice with the status a reader should see.
type NoticeView struct {
	models.LegalNotice
	EffectiveStatus models.NoticeStatus `json:"effective_status"`
}

// DraftNoticeResponse returns the saved draft and advisory warnings.
type DraftNoticeResponse struct {
	Notice   NoticeView `json:"notice"`
	Warnings []string   `json:"warnings,omitempty"`
}
