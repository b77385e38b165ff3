package compliance

import (
	"math"

	"github.com/noah-isme/landy-api/internal/models"
)

// Band is a qualitative reading of a compliance score.
type Band string

const (
	BandExcellent      Band = "excellent"
	BandGood           Band = "good"
	BandFair           Band = "fair"
	BandNeedsAttention Band = "needs_attention"
)

// Light is the traffic-light reading of a compliance score.
type Light string

const (
	LightGreen Light = "green"
	LightAmber Light = "amber"
	LightRed   Light = "red"
)

// Score returns the portfolio compliance percentage in [0,100]. A field counts
// when its flag or its N/A override is set. An empty portfolio scores 0.
func Score(properties []models.Property) int {
	if len(properties) == 0 {
		return 0
	}
	total := len(properties) * len(models.ComplianceFields)
	satisfied := 0
	for _, p := range properties {
		satisfied += SatisfiedCount(p)
	}
	return int(math.Round(100 * float64(satisfied) / float64(total)))
}

// ScoreBand classifies a score.
func ScoreBand(score int) Band {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 60:
		return BandGood
	case score >= 40:
		return BandFair
	default:
		return BandNeedsAttention
	}
}

// TrafficLight maps a score onto green, amber or red.
func TrafficLight(score int) Light {
	switch {
	case score >= 80:
		return LightGreen
	case score >= 50:
		return LightAmber
	default:
		return LightRed
	}
}
