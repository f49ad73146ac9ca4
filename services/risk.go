package services

import (
	"time"

	"salonbook-backend/models"
)

// RiskInput holds the customer counters the score is derived from.
type RiskInput struct {
	CancelCount int
	NoShowCount int
	VisitCount  int
	LastVisitAt *time.Time
}

type RiskResult struct {
	Score int              `json:"score"`
	Level models.RiskLevel `json:"level"`
}

// CalculateRisk maps behaviour counters to a 0-100 no-show risk score.
//
// Score:
//   - cancellations: +10 each, capped at 30
//   - no-shows: +25 each, capped at 50
//   - fewer than 3 visits: +10
//   - no recorded visit, or last visit 90+ days before now: +10
//
// Level: 0-29 LOW, 30-59 MEDIUM, 60+ HIGH.
func CalculateRisk(input RiskInput, now time.Time) RiskResult {
	score := 0

	score += min(input.CancelCount*10, 30)
	score += min(input.NoShowCount*25, 50)

	if input.VisitCount < 3 {
		score += 10
	}

	if input.LastVisitAt == nil {
		score += 10
	} else if daysSince(*input.LastVisitAt, now) >= 90 {
		score += 10
	}

	if score > 100 {
		score = 100
	}

	level := models.RiskLow
	switch {
	case score >= 60:
		level = models.RiskHigh
	case score >= 30:
		level = models.RiskMedium
	}

	return RiskResult{Score: score, Level: level}
}

// daysSince is elapsed whole days, floored, not calendar days.
func daysSince(t, now time.Time) int {
	return int(now.Sub(t).Hours() / 24)
}
