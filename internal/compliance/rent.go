package compliance

import (
	"fmt"
	"math"
	"time"

	"github.com/noah-isme/landy-api/internal/models"
)

// RentIncreaseInterval is the minimum gap between two effective rent increases
// on the same tenancy.
var RentIncreaseInterval = Period{Months: 12}

// ProposedIncrease is an accepted rent increase and the tenancy as it reads
// once the increase is recorded.
type ProposedIncrease struct {
	Increase models.RentIncrease
	Tenancy  models.Tenancy
}

// ProposeIncrease checks a Section 13 rent increase against tenancy and its
// previous increases. Every failed rule is reported in the returned
// validation error, not only the first. Increases belonging to other
// tenancies in prior are ignored.
func ProposeIncrease(tenancy models.Tenancy, prior []models.RentIncrease, newRent float64, noticeDate, effectiveDate time.Time) (*ProposedIncrease, error) {
	if tenancy.MonthlyRent <= 0 {
		panic("compliance: tenancy has non-positive rent")
	}
	if !tenancy.Active {
		return nil, invalidState("rent cannot be increased on an ended tenancy")
	}

	var v violations
	newRent = roundPence(newRent)
	if math.IsNaN(newRent) || math.IsInf(newRent, 0) {
		v.add("new rent must be a finite amount")
	} else if newRent <= tenancy.MonthlyRent {
		v.add(fmt.Sprintf("new rent must be higher than the current rent of £%.2f", tenancy.MonthlyRent))
	}
	if noticeDate.IsZero() {
		v.add("notice served date required")
	}
	if effectiveDate.IsZero() {
		v.add("effective date required")
	}

	notice := dateOnly(noticeDate)
	effective := dateOnly(effectiveDate)
	if !noticeDate.IsZero() && !effectiveDate.IsZero() {
		earliest := Section13Period.From(notice)
		if effective.Before(earliest) {
			v.add(fmt.Sprintf("effective date must be on or after %s, two months after the notice date",
				earliest.Format(dateLayout)))
		}
	}
	if last, ok := lastEffectiveDate(tenancy.ID, prior); ok && !effectiveDate.IsZero() {
		earliest := RentIncreaseInterval.From(last)
		if effective.Before(earliest) {
			v.add(fmt.Sprintf("rent can only be increased once every 12 months; next increase may take effect on or after %s",
				earliest.Format(dateLayout)))
		}
	}
	if err := v.err("invalid rent increase"); err != nil {
		return nil, err
	}

	increase := models.RentIncrease{
		TenancyID:        tenancy.ID,
		CurrentRent:      tenancy.MonthlyRent,
		NewRent:          newRent,
		NoticeServedDate: notice,
		EffectiveDate:    effective,
	}
	tenancy.MonthlyRent = newRent
	return &ProposedIncrease{Increase: increase, Tenancy: tenancy}, nil
}

func lastEffectiveDate(tenancyID string, prior []models.RentIncrease) (time.Time, bool) {
	var last time.Time
	found := false
	for _, inc := range prior {
		if inc.TenancyID != tenancyID {
			continue
		}
		d := dateOnly(inc.EffectiveDate)
		if !found || d.After(last) {
			last = d
			found = true
		}
	}
	return last, found
}

// roundPence rounds an amount to the two decimal places rent is stored with.
func roundPence(amount float64) float64 {
	return math.Round(amount*100) / 100
}
