package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func boolPtr(v bool) *bool { return &v }

func requireAppError(t *testing.T, err error, sentinel *appErrors.Error) *appErrors.Error {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*appErrors.Error)
	require.True(t, ok, "expected *errors.Error, got %T", err)
	require.Equal(t, sentinel.Code, appErr.Code)
	require.Equal(t, sentinel.Status, appErr.Status)
	return appErr
}
