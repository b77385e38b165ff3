package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/noah-isme/landy-api/internal/compliance"
	"github.com/noah-isme/landy-api/internal/models"
	"github.com/noah-isme/landy-api/internal/service"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

type evaluateFlags struct {
	file     string
	at       string
	deadline string
}

type noticeFlags struct {
	noticeType string
	grounds    []string
	date       string
	catalogue  string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "landyctl",
		Short:         "Evaluate landlord compliance offline",
		Long:          "landyctl runs the compliance rules engine against a YAML portfolio snapshot without a database.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEvaluateCommand(), newGroundsCommand(), newNoticeExpiryCommand())
	return root
}

func newEvaluateCommand() *cobra.Command {
	var flags evaluateFlags
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a portfolio snapshot and list alerts and risk exposure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEvaluate(cmd.OutOrStdout(), flags)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.file, "file", "f", "", "Portfolio snapshot YAML (- for stdin)")
	f.StringVar(&flags.at, "at", "", "Evaluation instant, RFC3339 or YYYY-MM-DD (default now)")
	f.StringVar(&flags.deadline, "statement-deadline", "", "Override the Tenant Information Statement deadline (RFC3339)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newGroundsCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "grounds",
		Short: "List the Section 8 ground catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalogue, err := compliance.LoadCatalogue(path)
			if err != nil {
				return codeError(3, "loading catalogue: %s", err)
			}
			return writeJSON(cmd.OutOrStdout(), catalogue)
		},
	}
	cmd.Flags().StringVar(&path, "catalogue", "", "Ground catalogue YAML (default embedded)")
	return cmd
}

func newNoticeExpiryCommand() *cobra.Command {
	var flags noticeFlags
	cmd := &cobra.Command{
		Use:   "notice-expiry",
		Short: "Compute the expiry date of a notice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNoticeExpiry(cmd.OutOrStdout(), flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.noticeType, "type", string(models.NoticeSection8), "Notice type: section_8 or section_13")
	f.StringSliceVar(&flags.grounds, "grounds", nil, "Comma separated ground codes (section_8 only)")
	f.StringVar(&flags.date, "date", "", "Notice date YYYY-MM-DD")
	f.StringVar(&flags.catalogue, "catalogue", "", "Ground catalogue YAML (default embedded)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func runEvaluate(out io.Writer, flags evaluateFlags) error {
	at := time.Now().UTC()
	if flags.at != "" {
		parsed, err := parseInstant(flags.at)
		if err != nil {
			return codeError(2, "invalid --at: %s", err)
		}
		at = parsed
	}
	policy := compliance.DefaultAlertPolicy()
	if flags.deadline != "" {
		deadline, err := time.Parse(time.RFC3339, flags.deadline)
		if err != nil {
			return codeError(2, "invalid --statement-deadline: %s", err)
		}
		policy.StatementDeadline = deadline.UTC()
	}

	properties, err := loadSnapshot(flags.file)
	if err != nil {
		return codeError(failureCode(err), "%s", describe(err))
	}
	return writeJSON(out, service.EvaluatePortfolio(properties, at, policy))
}

type noticeExpiryResult struct {
	NoticeType models.NoticeType `json:"notice_type"`
	Grounds    []string          `json:"grounds,omitempty"`
	NoticeDate string            `json:"notice_date"`
	ExpiryDate string            `json:"expiry_date"`
	Warnings   []string          `json:"warnings,omitempty"`
}

func runNoticeExpiry(out io.Writer, flags noticeFlags) error {
	catalogue, err := compliance.LoadCatalogue(flags.catalogue)
	if err != nil {
		return codeError(3, "loading catalogue: %s", err)
	}
	date, err := time.Parse("2006-01-02", flags.date)
	if err != nil {
		return codeError(2, "invalid --date: expected YYYY-MM-DD")
	}
	drafted, err := compliance.DraftNotice(catalogue, compliance.NoticeRequest{
		Tenancy:    models.Tenancy{Active: true},
		NoticeType: models.NoticeType(flags.noticeType),
		Grounds:    flags.grounds,
		NoticeDate: date,
	})
	if err != nil {
		return codeError(failureCode(err), "%s", describe(err))
	}
	return writeJSON(out, noticeExpiryResult{
		NoticeType: drafted.Notice.NoticeType,
		Grounds:    drafted.Notice.Grounds,
		NoticeDate: drafted.Notice.NoticeDate.Format("2006-01-02"),
		ExpiryDate: drafted.Notice.ExpiryDate.Format("2006-01-02"),
		Warnings:   drafted.Warnings,
	})
}

func parseInstant(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.New("expected RFC3339 timestamp or YYYY-MM-DD")
	}
	return t, nil
}

// failureCode maps an error to the exit status: 2 for rejected input, 4 for
// a lifecycle conflict and 3 for anything else.
func failureCode(err error) int {
	switch {
	case appErrors.IsValidation(err):
		return 2
	case appErrors.IsInvalidState(err):
		return 4
	default:
		return 3
	}
}

// describe flattens an engine error and its details into one line.
func describe(err error) string {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) && len(appErr.Details) > 0 {
		return err.Error() + ": " + strings.Join(appErr.Details, "; ")
	}
	return err.Error()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
