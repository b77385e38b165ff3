package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/landy-api/internal/dto"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func exitCode(err error) int {
	var ee *exitErr
	if errors.As(err, &ee) {
		return ee.code
	}
	return -1
}

func TestEvaluatePortfolioSnapshot(t *testing.T) {
	out, err := execute(t, "evaluate", "-f", "testdata/portfolio.yaml", "--at", "2026-05-01")
	require.NoError(t, err)

	var resp dto.DashboardResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 2, resp.PropertyCount)
	assert.Equal(t, 50, resp.Score)
	assert.Equal(t, "fair", resp.Band)
	assert.Equal(t, "amber", resp.Light)

	ids := make([]string, 0, len(resp.Alerts))
	for _, a := range resp.Alerts {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"awaabs-law", "tenant-statement-2026", "hmo-compliance-2026"}, ids)
	assert.EqualValues(t, 48000, resp.Risk.Total)
}

func TestEvaluateAfterStatementDeadline(t *testing.T) {
	out, err := execute(t, "evaluate", "-f", "testdata/portfolio.yaml", "--at", "2026-06-01T00:00:00Z")
	require.NoError(t, err)
	assert.NotContains(t, out, "tenant-statement-2026")
	assert.Contains(t, out, "awaabs-law")
}

func TestEvaluateRejectsInvalidSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("properties:\n  - address: 3 Example Street\n    heating_type: coal\n    category: flat\n"), 0o600))

	_, err := execute(t, "evaluate", "-f", path)
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
	assert.Contains(t, err.Error(), `unknown heating type "coal"`)
}

func TestEvaluateMissingSnapshot(t *testing.T) {
	_, err := execute(t, "evaluate", "-f", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, 3, exitCode(err))
	assert.Contains(t, err.Error(), "read snapshot")
}

func TestFailureCode(t *testing.T) {
	assert.Equal(t, 2, failureCode(fmt.Errorf("property 1: %w", appErrors.Clone(appErrors.ErrValidation, "bad"))))
	assert.Equal(t, 4, failureCode(appErrors.Clone(appErrors.ErrInvalidState, "tenancy has ended")))
	assert.Equal(t, 3, failureCode(errors.New("disk on fire")))
}

func TestEvaluateRejectsFlagAndNotApplicable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conflict.yaml")
	snapshot := strings.Join([]string{
		"properties:",
		"  - address: 4 Example Street",
		"    heating_type: electric",
		"    category: flat",
		"    compliance: {gas_safety: true}",
		"    not_applicable: {gas_safety: true}",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(snapshot), 0o600))

	_, err := execute(t, "evaluate", "-f", path)
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
	assert.Contains(t, err.Error(), "both set and not applicable")
}

func TestEvaluateRejectsBadInstant(t *testing.T) {
	_, err := execute(t, "evaluate", "-f", "testdata/portfolio.yaml", "--at", "tomorrow")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}

func TestGroundsListsCatalogue(t *testing.T) {
	out, err := execute(t, "grounds")
	require.NoError(t, err)
	assert.Contains(t, out, `"code": "ground14"`)
	assert.Contains(t, out, `"version"`)
}

func TestNoticeExpiry(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		expiry string
	}{
		{"ground14 precedence", []string{"--type", "section_8", "--grounds", "ground14", "--date", "2026-04-01"}, "2026-04-15"},
		{"section 13", []string{"--type", "section_13", "--date", "2026-01-01"}, "2026-03-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"notice-expiry"}, tt.args...)...)
			require.NoError(t, err)
			var res noticeExpiryResult
			require.NoError(t, json.Unmarshal([]byte(out), &res))
			assert.Equal(t, tt.expiry, res.ExpiryDate)
		})
	}
}

func TestNoticeExpiryGround8Warning(t *testing.T) {
	out, err := execute(t, "notice-expiry", "--grounds", "ground8", "--date", "2026-04-01")
	require.NoError(t, err)
	var res noticeExpiryResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.NotEmpty(t, res.Warnings)
}

func TestNoticeExpiryUnknownGround(t *testing.T) {
	_, err := execute(t, "notice-expiry", "--grounds", "ground99", "--date", "2026-04-01")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
	assert.Contains(t, err.Error(), `unknown ground "ground99"`)
}
