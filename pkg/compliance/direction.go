package compliance

import "github.com/appclacks/scorecard/pkg/compliance/aggregates"

// a series must move by more than one point of percentage to have a direction
const trendThreshold = 0.01

// Direction compares the last and the first score of a series ordered by date.
func Direction(series []aggregates.Point) aggregates.TrendDirection {
	if len(series) < 2 {
		return aggregates.TrendNone
	}
	delta := series[len(series)-1].Score - series[0].Score
	if delta > trendThreshold {
		return aggregates.TrendImproving
	}
	if delta < -trendThreshold {
		return aggregates.TrendDeclining
	}
	return aggregates.TrendFlat
}
