package compliance

import (
	"sort"
	"strings"

	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
	er "github.com/mcorbin/corbierror"
)

// pool sums the raw counts of a group of records. The thresholds of the group
// are the greatest ones seen.
type pool struct {
	key     string
	title   string
	totalOK int64
	total   int64
	slo     float64
	sloMin  float64
}

func newPool(key string, record aggregates.ObservationRecord) *pool {
	return &pool{
		key:    key,
		title:  record.Title,
		slo:    record.SLO,
		sloMin: record.SLOMin,
	}
}

func (p *pool) add(record aggregates.ObservationRecord) {
	p.totalOK += record.TotalOK
	p.total += record.Total
	if record.SLO > p.slo {
		p.slo = record.SLO
	}
	if record.SLOMin > p.sloMin {
		p.sloMin = record.SLOMin
	}
}

func (p *pool) point() aggregates.Point {
	return aggregates.Point{
		Key:    p.key,
		Score:  ratio(p.totalOK, p.total),
		SLO:    p.slo,
		SLOMin: p.sloMin,
	}
}

// groupBy pools the records by key, returning the pools in first seen order.
func groupBy(records []aggregates.ObservationRecord, key func(aggregates.ObservationRecord) string) []*pool {
	pools := make(map[string]*pool)
	result := []*pool{}
	for i := range records {
		record := records[i]
		k := key(record)
		p, ok := pools[k]
		if !ok {
			p = newPool(k, record)
			pools[k] = p
			result = append(result, p)
		}
		p.add(record)
	}
	return result
}

// CurrentScores pools the records of the latest date by metric. Rows are
// ordered by title.
func CurrentScores(records []aggregates.ObservationRecord, filters aggregates.FilterSet) []aggregates.ScorecardRow {
	latest := LatestSlice(Apply(records, filters))
	pools := groupBy(latest, func(r aggregates.ObservationRecord) string { return r.MetricID })
	rows := make([]aggregates.ScorecardRow, 0, len(pools))
	for _, p := range pools {
		point := p.point()
		rows = append(rows, aggregates.ScorecardRow{
			MetricID:     p.key,
			Title:        p.title,
			CurrentScore: point.Score,
			SLO:          point.SLO,
			SLOMin:       point.SLOMin,
			Status:       Classify(point.Score, point.SLO, point.SLOMin),
			Trend:        aggregates.TrendNone,
		})
	}
	// error impossible, the sort parameters are constants
	sorted, _ := SortScorecard(rows, aggregates.SortByTitle, aggregates.Ascending)
	return sorted
}

// HistoricalScores pools the records by metric and date. Each metric series
// is ordered by date.
func HistoricalScores(records []aggregates.ObservationRecord, filters aggregates.FilterSet) map[string][]aggregates.Point {
	filtered := Apply(records, filters)
	byMetric := make(map[string][]aggregates.ObservationRecord)
	for i := range filtered {
		byMetric[filtered[i].MetricID] = append(byMetric[filtered[i].MetricID], filtered[i])
	}
	result := make(map[string][]aggregates.Point, len(byMetric))
	for metricID, metricRecords := range byMetric {
		pools := groupBy(metricRecords, func(r aggregates.ObservationRecord) string { return r.Datestamp })
		series := make([]aggregates.Point, 0, len(pools))
		for _, p := range pools {
			series = append(series, p.point())
		}
		sort.Slice(series, func(i, j int) bool {
			return series[i].Key < series[j].Key
		})
		result[metricID] = series
	}
	return result
}

// MetricHistory pools the records of a metric by date.
func MetricHistory(records []aggregates.ObservationRecord, filters aggregates.FilterSet, metricID string) ([]aggregates.Point, bool) {
	metricRecords := []aggregates.ObservationRecord{}
	for i := range records {
		if records[i].MetricID == metricID {
			metricRecords = append(metricRecords, records[i])
		}
	}
	series := HistoricalScores(metricRecords, filters)[metricID]
	if len(series) == 0 {
		return nil, false
	}
	return series, true
}

// BuildScorecard computes the current scores of every metric with their
// history and sorts them.
func BuildScorecard(records []aggregates.ObservationRecord, filters aggregates.FilterSet, key aggregates.ScorecardSortKey, direction aggregates.SortDirection) (aggregates.Scorecard, error) {
	rows := CurrentScores(records, filters)
	if len(rows) == 0 {
		return aggregates.Scorecard{Rows: []aggregates.ScorecardRow{}, NoData: true}, nil
	}
	history := HistoricalScores(records, filters)
	for i := range rows {
		series := history[rows[i].MetricID]
		rows[i].Series = series
		rows[i].Trend = Direction(series)
	}
	sorted, err := SortScorecard(rows, key, direction)
	if err != nil {
		return aggregates.Scorecard{}, err
	}
	return aggregates.Scorecard{
		Rows:        sorted,
		LastUpdated: LatestDatestamp(Apply(records, filters)),
	}, nil
}

func compareDirection(comparison int, direction aggregates.SortDirection) int {
	if direction == aggregates.Descending {
		return -comparison
	}
	return comparison
}

func checkDirection(direction aggregates.SortDirection) error {
	if direction != aggregates.Ascending && direction != aggregates.Descending {
		return er.Newf("invalid sort direction %s", er.BadRequest, true, direction)
	}
	return nil
}

// SortScorecard returns the rows sorted by title (case insensitive) or score.
// Equal rows keep their relative order.
func SortScorecard(rows []aggregates.ScorecardRow, key aggregates.ScorecardSortKey, direction aggregates.SortDirection) ([]aggregates.ScorecardRow, error) {
	if err := checkDirection(direction); err != nil {
		return nil, err
	}
	var compare func(a, b aggregates.ScorecardRow) int
	switch key {
	case aggregates.SortByTitle:
		compare = func(a, b aggregates.ScorecardRow) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case aggregates.SortByScore:
		compare = func(a, b aggregates.ScorecardRow) int {
			return compareFloat(a.CurrentScore, b.CurrentScore)
		}
	default:
		return nil, er.Newf("invalid scorecard sort key %s", er.BadRequest, true, key)
	}
	result := make([]aggregates.ScorecardRow, len(rows))
	copy(result, rows)
	sort.SliceStable(result, func(i, j int) bool {
		return compareDirection(compare(result[i], result[j]), direction) < 0
	})
	return result, nil
}

func compareFloat(a float64, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
