package compliance

import "github.com/appclacks/scorecard/pkg/compliance/aggregates"

// Classify compares a score to its objective and to its minimum.
func Classify(score float64, slo float64, sloMin float64) aggregates.Status {
	if score >= slo {
		return aggregates.StatusOK
	}
	if score >= sloMin {
		return aggregates.StatusWarn
	}
	return aggregates.StatusCritical
}
