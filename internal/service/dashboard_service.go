package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/landy-api/internal/compliance"
	"github.com/noah-isme/landy-api/internal/dto"
	"github.com/noah-isme/landy-api/internal/models"
)

type portfolioLister interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Property, error)
}

// DashboardServiceConfig tunes portfolio evaluation.
type DashboardServiceConfig struct {
	StatementDeadline time.Time
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Properties portfolioLister
	Metrics    *MetricsService
	Logger     *zap.Logger
	Config     DashboardServiceConfig
}

// DashboardService evaluates a landlord's portfolio: score, alerts and risk.
// Results are always computed fresh for the evaluation instant.
type DashboardService struct {
	properties portfolioLister
	metrics    *MetricsService
	logger     *zap.Logger
	policy     compliance.AlertPolicy
	now        func() time.Time
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	policy := compliance.DefaultAlertPolicy()
	if !params.Config.StatementDeadline.IsZero() {
		policy.StatementDeadline = params.Config.StatementDeadline
	}
	return &DashboardService{
		properties: params.Properties,
		metrics:    params.Metrics,
		logger:     logger,
		policy:     policy,
		now:        time.Now,
	}
}

// Get evaluates the owner's portfolio at the given instant, or now when at is
// nil.
func (s *DashboardService) Get(ctx context.Context, ownerID string, at *time.Time) (*dto.DashboardResponse, error) {
	properties, err := s.properties.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, internalError(err, "failed to load portfolio")
	}
	instant := s.instant(at)
	resp := EvaluatePortfolio(properties, instant, s.policy)
	s.metrics.RecordEvaluation(EvaluationDashboard)
	s.metrics.RecordPortfolio(resp.Score, resp.Alerts)
	s.logger.Debug("portfolio evaluated",
		zap.String("owner_id", ownerID),
		zap.Int("properties", resp.PropertyCount),
		zap.Int("score", resp.Score),
		zap.Int("alerts", len(resp.Alerts)),
	)
	return &resp, nil
}

func (s *DashboardService) instant(at *time.Time) time.Time {
	if at != nil && !at.IsZero() {
		return at.UTC()
	}
	return s.now().UTC()
}

// EvaluatePortfolio computes the score, alerts and risk of properties at
// instant at. It is pure and shared by the dashboard, reports and landyctl.
func EvaluatePortfolio(properties []models.Property, at time.Time, policy compliance.AlertPolicy) dto.DashboardResponse {
	score := compliance.Score(properties)
	return dto.DashboardResponse{
		EvaluatedAt:   at,
		PropertyCount: len(properties),
		Score:         score,
		Band:          string(compliance.ScoreBand(score)),
		Light:         string(compliance.TrafficLight(score)),
		Alerts:        compliance.GenerateAlerts(properties, at, policy),
		Risk:          compliance.AssessRisk(properties),
	}
}
