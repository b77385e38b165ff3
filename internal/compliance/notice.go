package compliance

import (
	"fmt"
	"time"

	"github.com/noah-isme/landy-api/internal/models"
)

// Section13Period is the minimum notice for a rent increase.
var Section13Period = Period{Months: 2}

// NoticeRequest is the input of the notice wizard.
type NoticeRequest struct {
	Tenancy    models.Tenancy
	NoticeType models.NoticeType
	Grounds    []string
	NoticeDate time.Time
	Notes      *string
}

// DraftedNotice is a new draft notice and any advisory warnings for it.
type DraftedNotice struct {
	Notice   models.LegalNotice `json:"notice"`
	Warnings []string           `json:"warnings,omitempty"`
}

// DraftNotice validates req against catalogue and builds a draft notice with
// its computed expiry date.
func DraftNotice(catalogue *Catalogue, req NoticeRequest) (*DraftedNotice, error) {
	if catalogue == nil {
		panic("compliance: nil ground catalogue")
	}
	if !req.Tenancy.Active {
		return nil, invalidState("notices cannot be served on an ended tenancy")
	}

	var v violations
	grounds := dedupe(req.Grounds)
	switch req.NoticeType {
	case "":
		v.add("notice type required")
	case models.NoticeSection8:
		if len(grounds) == 0 {
			v.add("grounds required")
		}
		for _, code := range grounds {
			if _, ok := catalogue.Lookup(code); !ok {
				v.add(fmt.Sprintf("unknown ground %q", code))
			}
		}
	case models.NoticeSection13:
		if len(grounds) > 0 {
			v.add("grounds are not permitted on a section_13 notice")
		}
	default:
		v.add(fmt.Sprintf("unknown notice type %q", req.NoticeType))
	}
	if req.NoticeDate.IsZero() {
		v.add("notice date required")
	}
	if err := v.err("invalid notice"); err != nil {
		return nil, err
	}

	noticeDate := dateOnly(req.NoticeDate)
	notice := models.LegalNotice{
		TenancyID:  req.Tenancy.ID,
		NoticeType: req.NoticeType,
		NoticeDate: noticeDate,
		ExpiryDate: NoticeExpiry(catalogue, req.NoticeType, grounds, noticeDate),
		Status:     models.NoticeDraft,
		Notes:      req.Notes,
	}
	if req.NoticeType == models.NoticeSection8 {
		notice.Grounds = grounds
	}

	drafted := &DraftedNotice{Notice: notice}
	for _, code := range notice.Grounds {
		if g, _ := catalogue.Lookup(code); g.Advisory != "" {
			drafted.Warnings = append(drafted.Warnings, g.Advisory)
		}
	}
	return drafted, nil
}

// NoticeExpiry computes the expiry date of a notice. Section 13 notices run
// for two calendar months. Section 8 notices use the catalogue default unless
// a cited ground carries a precedence period, in which case the shortest such
// period applies.
func NoticeExpiry(catalogue *Catalogue, noticeType models.NoticeType, grounds []string, noticeDate time.Time) time.Time {
	start := dateOnly(noticeDate)
	if noticeType == models.NoticeSection13 {
		return Section13Period.From(start)
	}
	var chosen *Period
	for _, code := range grounds {
		g, ok := catalogue.Lookup(code)
		if !ok || g.PrecedencePeriod == nil {
			continue
		}
		if chosen == nil || g.PrecedencePeriod.shorterThan(*chosen) {
			p := *g.PrecedencePeriod
			chosen = &p
		}
	}
	if chosen != nil {
		return chosen.From(start)
	}
	return catalogue.DefaultPeriod.From(start)
}

// AdvanceNotice applies an externally driven status write. Only draft→served
// and served→actioned are permitted; expired is never written.
func AdvanceNotice(notice models.LegalNotice, to models.NoticeStatus) (models.LegalNotice, error) {
	switch to {
	case models.NoticeServed, models.NoticeActioned:
	case models.NoticeExpired:
		return notice, validationFailed("invalid notice status", "expired is derived from the expiry date and cannot be set")
	default:
		return notice, validationFailed("invalid notice status", fmt.Sprintf("unknown notice status %q", to))
	}
	allowed := (notice.Status == models.NoticeDraft && to == models.NoticeServed) ||
		(notice.Status == models.NoticeServed && to == models.NoticeActioned)
	if !allowed {
		return notice, invalidState(fmt.Sprintf("notice cannot move from %s to %s", notice.Status, to))
	}
	notice.Status = to
	return notice, nil
}

// EffectiveStatus returns the status a reader should see at instant at: a
// notice past its expiry date that has not been actioned reads as expired.
func EffectiveStatus(notice models.LegalNotice, at time.Time) models.NoticeStatus {
	if notice.Status != models.NoticeActioned && !notice.ExpiryDate.IsZero() && notice.ExpiryDate.Before(at) {
		return models.NoticeExpired
	}
	return notice.Status
}

func dedupe(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
