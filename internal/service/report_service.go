package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/landy-api/internal/compliance"
	"github.com/noah-isme/landy-api/internal/dto"
	"github.com/noah-isme/landy-api/internal/models"
	appErrors "github.com/noah-isme/landy-api/pkg/errors"
	"github.com/noah-isme/landy-api/pkg/export"
)

// ReportServiceParams groups constructor dependencies.
type ReportServiceParams struct {
	Properties portfolioLister
	Cache      *CacheService
	Metrics    *MetricsService
	Logger     *zap.Logger
	Config     DashboardServiceConfig
	CacheTTL   time.Duration
}

// ReportService renders the portfolio compliance report. Rendered files are
// cached under a digest of the portfolio snapshot and evaluation instant, so
// any change to the portfolio misses the cache.
type ReportService struct {
	properties portfolioLister
	cache      *CacheService
	metrics    *MetricsService
	logger     *zap.Logger
	policy     compliance.AlertPolicy
	cacheTTL   time.Duration
	now        func() time.Time
}

// NewReportService constructs a ReportService.
func NewReportService(params ReportServiceParams) *ReportService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	policy := compliance.DefaultAlertPolicy()
	if !params.Config.StatementDeadline.IsZero() {
		policy.StatementDeadline = params.Config.StatementDeadline
	}
	return &ReportService{
		properties: params.Properties,
		cache:      params.Cache,
		metrics:    params.Metrics,
		logger:     logger,
		policy:     policy,
		cacheTTL:   params.CacheTTL,
		now:        time.Now,
	}
}

// Generate renders the owner's compliance report in the requested format.
func (s *ReportService) Generate(ctx context.Context, ownerID, format string, at *time.Time) (*dto.ReportFile, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, appErrors.WithDetails(appErrors.ErrValidation, "invalid report format", err.Error())
	}
	properties, err := s.properties.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, internalError(err, "failed to load portfolio")
	}
	instant := s.now().UTC()
	if at != nil && !at.IsZero() {
		instant = at.UTC()
	}
	// The report prints to the minute; finer precision would defeat the cache.
	instant = instant.Truncate(time.Minute)

	file := &dto.ReportFile{
		Filename:    fmt.Sprintf("compliance-report-%s.%s", instant.Format("20060102"), f),
		ContentType: f.ContentType(),
	}
	key, err := s.cacheKey(ownerID, properties, instant, f)
	if err != nil {
		s.logger.Warn("report digest failed", zap.Error(err))
	}
	if key != "" {
		var body []byte
		if s.cache.Get(ctx, key, &body) && len(body) > 0 {
			file.Body = body
			file.Cached = true
			s.metrics.RecordReport(string(f), true)
			return file, nil
		}
	}

	s.metrics.RecordEvaluation(EvaluationReport)
	evaluation := EvaluatePortfolio(properties, instant, s.policy)
	body, err := export.NewRenderer(f).Render(buildReport(evaluation, properties))
	if err != nil {
		return nil, internalError(err, "failed to render report")
	}
	if key != "" {
		s.cache.Set(ctx, key, body, s.cacheTTL)
	}
	s.metrics.RecordReport(string(f), false)
	s.logger.Info("report rendered",
		zap.String("owner_id", ownerID),
		zap.String("format", string(f)),
		zap.Int("bytes", len(body)),
	)
	file.Body = body
	return file, nil
}

func (s *ReportService) cacheKey(ownerID string, properties []models.Property, at time.Time, f export.Format) (string, error) {
	snapshot, err := json.Marshal(struct {
		Properties []models.Property `json:"properties"`
		At         time.Time         `json:"at"`
		Deadline   time.Time         `json:"deadline"`
	}{properties, at, s.policy.StatementDeadline})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(snapshot)
	return fmt.Sprintf("report:%s:%s:%s", ownerID, hex.EncodeToString(sum[:]), f), nil
}

func buildReport(eval dto.DashboardResponse, properties []models.Property) export.Document {
	doc := export.Document{
		Title:    "Portfolio Compliance Report",
		Subtitle: "Evaluated " + eval.EvaluatedAt.Format("2 January 2006 15:04 MST"),
		Summary: []export.Field{
			{Label: "Properties", Value: strconv.Itoa(eval.PropertyCount)},
			{Label: "Compliance score", Value: strconv.Itoa(eval.Score) + "%"},
			{Label: "Rating", Value: eval.Band},
			{Label: "Status", Value: eval.Light},
			{Label: "Maximum exposure", Value: formatPounds(eval.Risk.Total)},
		},
	}

	alerts := export.Dataset{Headers: []string{"Severity", "Alert", "Detail"}}
	for _, a := range eval.Alerts {
		alerts.Rows = append(alerts.Rows, map[string]string{
			"Severity": string(a.Severity),
			"Alert":    a.Title,
			"Detail":   a.Message,
		})
	}
	risk := export.Dataset{Headers: []string{"Exposure", "Maximum fine", "Note"}}
	for _, line := range eval.Risk.Lines {
		risk.Rows = append(risk.Rows, map[string]string{
			"Exposure":     line.Label,
			"Maximum fine": formatPounds(line.MaxFine),
			"Note":         line.Note,
		})
	}

	grid := export.Dataset{Headers: []string{"Address", "Category", "Heating"}}
	for _, field := range models.ComplianceFields {
		grid.Headers = append(grid.Headers, fieldLabel(field))
	}
	grid.Headers = append(grid.Headers, "Satisfied")
	for _, p := range properties {
		row := map[string]string{
			"Address":   p.Address,
			"Category":  string(p.Category),
			"Heating":   string(p.HeatingType),
			"Satisfied": fmt.Sprintf("%d/%d", compliance.SatisfiedCount(p), len(models.ComplianceFields)),
		}
		for _, field := range models.ComplianceFields {
			row[fieldLabel(field)] = fieldState(p, field)
		}
		grid.Rows = append(grid.Rows, row)
	}

	doc.Sections = []export.Section{
		{Title: "Action alerts", Data: alerts},
		{Title: "Risk exposure", Data: risk},
		{Title: "Properties", Data: grid},
	}
	return doc
}

var fieldLabels = map[models.ComplianceField]string{
	models.FieldGasSafety:           "Gas safety",
	models.FieldEICR:                "EICR",
	models.FieldEPC:                 "EPC",
	models.FieldRentersRightsAct:    "Renters' Rights Act",
	models.FieldTenantInfoStatement: "Tenant info statement",
}

func fieldLabel(field models.ComplianceField) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return string(field)
}

func fieldState(p models.Property, field models.ComplianceField) string {
	switch {
	case p.NotApplicable.Get(field):
		return "N/A"
	case p.Compliance.Get(field):
		return "Yes"
	default:
		return "No"
	}
}

// formatPounds renders whole pounds with thousands separators.
func formatPounds(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	if amount < 0 {
		digits = digits[1:]
	}
	out := make([]byte, 0, len(digits)+len(digits)/3)
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	if amount < 0 {
		return "-£" + string(out)
	}
	return "£" + string(out)
}
