package dto

import (
	"time"

	"github.com/noah-isme/landy-api/internal/models"
)

// DashboardResponse is the portfolio compliance overview.
type DashboardResponse struct {
	EvaluatedAt   time.Time            `json:"evaluated_at"`
	PropertyCount int                  `json:"property_count"`
	Score         int                  `json:"score"`
	Band          string               `json:"band"`
	Light         string               `json:"light"`
	Alerts        []models.ActionAlert `json:"alerts"`
	Risk          models.RiskReport    `json:"risk"`
}
