package compliance

import (
	"time"

	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

func validationFailed(message string, details ...string) error {
	return appErrors.WithDetails(appErrors.ErrValidation, message, details...)
}

func invalidState(message string) error {
	return appErrors.Clone(appErrors.ErrInvalidState, message)
}

// violations collects independent rule failures so every one is reported.
type violations []string

func (v *violations) add(msg string) {
	*v = append(*v, msg)
}

func (v violations) err(message string) error {
	if len(v) == 0 {
		return nil
	}
	return validationFailed(message, v...)
}

// dateOnly drops the clock part of t, keeping its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const dateLayout = "2006-01-02"
