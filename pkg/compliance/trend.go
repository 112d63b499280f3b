package compliance

import (
	"sort"

	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
)

type weightedSum struct {
	score  float64
	slo    float64
	sloMin float64
	weight float64
}

func (w *weightedSum) add(record aggregates.ObservationRecord) {
	w.score += ratio(record.TotalOK, record.Total) * record.Weight
	w.slo += record.SLO * record.Weight
	w.sloMin += record.SLOMin * record.Weight
	w.weight += record.Weight
}

func (w *weightedSum) point(key string) aggregates.Point {
	if w.weight == 0 {
		return aggregates.Point{Key: key}
	}
	return aggregates.Point{
		Key:    key,
		Score:  w.score / w.weight,
		SLO:    w.slo / w.weight,
		SLOMin: w.sloMin / w.weight,
	}
}

func ratio(ok int64, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(ok) / float64(total)
}

// weighted filters the records and drops the ones without a positive weight.
func weighted(records []aggregates.ObservationRecord, filters aggregates.FilterSet) []aggregates.ObservationRecord {
	filtered := Apply(records, filters)
	result := []aggregates.ObservationRecord{}
	for i := range filtered {
		if filtered[i].Weight > 0 {
			result = append(result, filtered[i])
		}
	}
	return result
}

// WeightedTrend computes one weighted point per date. The second return value
// is false when no record contributes to the trend.
func WeightedTrend(records []aggregates.ObservationRecord, filters aggregates.FilterSet) ([]aggregates.Point, bool) {
	contributing := weighted(records, filters)
	if len(contributing) == 0 {
		return nil, false
	}
	sums := make(map[string]*weightedSum)
	for i := range contributing {
		record := contributing[i]
		sum, ok := sums[record.Datestamp]
		if !ok {
			sum = &weightedSum{}
			sums[record.Datestamp] = sum
		}
		sum.add(record)
	}
	dates := make([]string, 0, len(sums))
	for date := range sums {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	result := make([]aggregates.Point, 0, len(dates))
	for _, date := range dates {
		result = append(result, sums[date].point(date))
	}
	return result, true
}

// LatestOverallScores computes the weighted scores of the latest date having
// contributing records.
func LatestOverallScores(records []aggregates.ObservationRecord, filters aggregates.FilterSet) (aggregates.OverallScores, bool) {
	latest := LatestSlice(weighted(records, filters))
	if len(latest) == 0 {
		return aggregates.OverallScores{}, false
	}
	sum := weightedSum{}
	for i := range latest {
		sum.add(latest[i])
	}
	point := sum.point(latest[0].Datestamp)
	return aggregates.OverallScores{
		OverallScore:  point.Score,
		AverageSLO:    point.SLO,
		AverageSLOMin: point.SLOMin,
		Datestamp:     point.Key,
	}, true
}

func Stats(points []aggregates.Point) aggregates.TrendStats {
	if len(points) == 0 {
		return aggregates.TrendStats{}
	}
	stats := aggregates.TrendStats{
		Points:   len(points),
		MinScore: points[0].Score,
		MaxScore: points[0].Score,
	}
	var score, slo, sloMin float64
	for _, point := range points {
		score += point.Score
		slo += point.SLO
		sloMin += point.SLOMin
		if point.Score < stats.MinScore {
			stats.MinScore = point.Score
		}
		if point.Score > stats.MaxScore {
			stats.MaxScore = point.Score
		}
	}
	count := float64(len(points))
	stats.AverageScore = score / count
	stats.AverageSLO = slo / count
	stats.AverageSLOMin = sloMin / count
	return stats
}
