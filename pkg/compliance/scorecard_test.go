package compliance_test

import (
	"testing"

	"github.com/appclacks/scorecard/pkg/compliance"
	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
	"github.com/stretchr/testify/assert"
)

func titled(record aggregates.ObservationRecord, title string) aggregates.ObservationRecord {
	record.Title = title
	return record
}

func TestCurrentScoresPooling(t *testing.T) {
	records := []aggregates.ObservationRecord{
		observation("m1", "2024-01-01", 2, 10, 8),
		observation("m1", "2024-01-01", 1, 30, 30),
	}
	rows := compliance.CurrentScores(records, aggregates.FilterSet{})
	assert.Len(t, rows, 1)
	assert.Equal(t, "m1", rows[0].MetricID)
	// (8 + 30) / (10 + 30)
	assert.InDelta(t, 0.95, rows[0].CurrentScore, 0.0001)
	assert.Equal(t, aggregates.StatusOK, rows[0].Status)

	points, ok := compliance.WeightedTrend(records, aggregates.FilterSet{})
	assert.True(t, ok)
	// (0.8 * 2 + 1 * 1) / 3
	assert.InDelta(t, 0.8667, points[0].Score, 0.0001)
}

func TestPooledScoreDoesNotDependOnWeight(t *testing.T) {
	light := []aggregates.ObservationRecord{
		observation("m1", "2024-01-01", 1, 10, 9),
		observation("m1", "2024-01-01", 1, 20, 10),
	}
	heavy := []aggregates.ObservationRecord{
		observation("m1", "2024-01-01", 1, 10, 9),
		observation("m1", "2024-01-01", 5, 20, 10),
	}
	lightRows := compliance.CurrentScores(light, aggregates.FilterSet{})
	heavyRows := compliance.CurrentScores(heavy, aggregates.FilterSet{})
	assert.InDelta(t, 19.0/30.0, lightRows[0].CurrentScore, 0.0001)
	assert.Equal(t, lightRows[0].CurrentScore, heavyRows[0].CurrentScore)

	lightTrend, _ := compliance.WeightedTrend(light, aggregates.FilterSet{})
	heavyTrend, _ := compliance.WeightedTrend(heavy, aggregates.FilterSet{})
	assert.InDelta(t, 0.7, lightTrend[0].Score, 0.0001)
	assert.InDelta(t, 3.4/6, heavyTrend[0].Score, 0.0001)
	assert.NotEqual(t, lightTrend[0].Score, heavyTrend[0].Score)
}

func TestCurrentScoresUsesLatestSlice(t *testing.T) {
	strict := observation("m2", "2024-01-02", 1, 10, 8)
	strict.SLO = 0.95
	strict.SLOMin = 0.9
	records := []aggregates.ObservationRecord{
		titled(observation("m1", "2024-01-01", 1, 10, 1), "gamma"),
		titled(observation("m1", "2024-01-02", 1, 10, 10), "gamma"),
		titled(observation("m2", "2024-01-02", 1, 10, 8), "beta"),
		titled(strict, "beta"),
		titled(observation("m3", "2024-01-02", 1, 10, 5), "Alpha"),
		titled(observation("m4", "2024-01-01", 1, 10, 5), "delta"),
		titled(observation("m5", "2024-01-02", 1, 0, 0), "epsilon"),
	}
	rows := compliance.CurrentScores(records, aggregates.FilterSet{})
	titles := []string{}
	for _, row := range rows {
		titles = append(titles, row.Title)
	}
	assert.Equal(t, []string{"Alpha", "beta", "epsilon", "gamma"}, titles)

	assert.InDelta(t, 0.5, rows[0].CurrentScore, 0.0001)
	assert.Equal(t, aggregates.StatusCritical, rows[0].Status)

	// the greatest thresholds of the group are kept
	assert.InDelta(t, 0.8, rows[1].CurrentScore, 0.0001)
	assert.InDelta(t, 0.95, rows[1].SLO, 0.0001)
	assert.InDelta(t, 0.9, rows[1].SLOMin, 0.0001)
	assert.Equal(t, aggregates.StatusCritical, rows[1].Status)

	assert.InDelta(t, 0, rows[2].CurrentScore, 0.0001)
	assert.InDelta(t, 1, rows[3].CurrentScore, 0.0001)
	assert.Equal(t, aggregates.StatusOK, rows[3].Status)

	assert.Empty(t, compliance.CurrentScores(records, aggregates.FilterSet{BusinessUnit: "bank"}))
}

func TestHistoricalScores(t *testing.T) {
	records := []aggregates.ObservationRecord{
		observation("m1", "2024-01-03", 1, 10, 9),
		observation("m1", "2024-01-01", 1, 10, 5),
		observation("m1", "2024-01-01", 4, 30, 5),
		observation("m2", "2024-01-02", 1, 10, 2),
		located(observation("m1", "2024-01-02", 1, 10, 0), "bank", "data", "lyon"),
	}
	history := compliance.HistoricalScores(records, aggregates.FilterSet{})
	assert.Len(t, history, 2)
	series := history["m1"]
	assert.Len(t, series, 3)
	assert.Equal(t, "2024-01-01", series[0].Key)
	assert.InDelta(t, 0.25, series[0].Score, 0.0001)
	assert.Equal(t, "2024-01-02", series[1].Key)
	assert.InDelta(t, 0, series[1].Score, 0.0001)
	assert.Equal(t, "2024-01-03", series[2].Key)
	assert.InDelta(t, 0.9, series[2].Score, 0.0001)

	history = compliance.HistoricalScores(records, aggregates.FilterSet{BusinessUnit: "retail"})
	assert.Len(t, history["m1"], 2)

	points, ok := compliance.MetricHistory(records, aggregates.FilterSet{}, "m2")
	assert.True(t, ok)
	assert.Equal(t, []aggregates.Point{{Key: "2024-01-02", Score: 0.2, SLO: 0.9, SLOMin: 0.7}}, points)

	_, ok = compliance.MetricHistory(records, aggregates.FilterSet{}, "unknown")
	assert.False(t, ok)
}

func TestBuildScorecard(t *testing.T) {
	records := []aggregates.ObservationRecord{
		titled(observation("m1", "2024-01-01", 1, 10, 5), "first"),
		titled(observation("m1", "2024-01-02", 1, 10, 9), "first"),
		titled(observation("m2", "2024-01-01", 1, 10, 9), "second"),
		titled(observation("m2", "2024-01-02", 1, 10, 5), "second"),
		titled(observation("m3", "2024-01-02", 1, 10, 5), "third"),
		titled(observation("m4", "2024-01-01", 1, 10, 7), "fourth"),
		titled(observation("m4", "2024-01-02", 1, 20, 14), "fourth"),
	}
	scorecard, err := compliance.BuildScorecard(records, aggregates.FilterSet{}, aggregates.SortByScore, aggregates.Descending)
	assert.NoError(t, err)
	assert.False(t, scorecard.NoData)
	assert.Equal(t, "2024-01-02", scorecard.LastUpdated)
	ids := []string{}
	for _, row := range scorecard.Rows {
		ids = append(ids, row.MetricID)
	}
	// second and third are tied and keep their title order
	assert.Equal(t, []string{"m1", "m4", "m2", "m3"}, ids)

	trends := map[string]aggregates.TrendDirection{}
	for _, row := range scorecard.Rows {
		trends[row.MetricID] = row.Trend
	}
	assert.Equal(t, aggregates.TrendImproving, trends["m1"])
	assert.Equal(t, aggregates.TrendDeclining, trends["m2"])
	assert.Equal(t, aggregates.TrendNone, trends["m3"])
	assert.Equal(t, aggregates.TrendFlat, trends["m4"])
	assert.Len(t, scorecard.Rows[0].Series, 2)

	empty, err := compliance.BuildScorecard(records, aggregates.FilterSet{Team: "nobody"}, aggregates.SortByTitle, aggregates.Ascending)
	assert.NoError(t, err)
	assert.True(t, empty.NoData)
	assert.NotNil(t, empty.Rows)
	assert.Empty(t, empty.Rows)

	_, err = compliance.BuildScorecard(records, aggregates.FilterSet{}, aggregates.ScorecardSortKey("weight"), aggregates.Ascending)
	assert.Error(t, err)
	_, err = compliance.BuildScorecard(records, aggregates.FilterSet{}, aggregates.SortByTitle, aggregates.SortDirection("up"))
	assert.Error(t, err)
}

func TestSortScorecard(t *testing.T) {
	rows := []aggregates.ScorecardRow{
		{MetricID: "a", Title: "b", CurrentScore: 0.5},
		{MetricID: "b", Title: "A", CurrentScore: 0.9},
		{MetricID: "c", Title: "C", CurrentScore: 0.5},
		{MetricID: "d", Title: "a", CurrentScore: 0.1},
	}
	cases := []struct {
		key       aggregates.ScorecardSortKey
		direction aggregates.SortDirection
		expected  []string
	}{
		{key: aggregates.SortByTitle, direction: aggregates.Ascending, expected: []string{"b", "d", "a", "c"}},
		{key: aggregates.SortByTitle, direction: aggregates.Descending, expected: []string{"c", "a", "b", "d"}},
		{key: aggregates.SortByScore, direction: aggregates.Ascending, expected: []string{"d", "a", "c", "b"}},
		{key: aggregates.SortByScore, direction: aggregates.Descending, expected: []string{"b", "a", "c", "d"}},
	}
	for _, c := range cases {
		sorted, err := compliance.SortScorecard(rows, c.key, c.direction)
		assert.NoError(t, err)
		ids := []string{}
		for _, row := range sorted {
			ids = append(ids, row.MetricID)
		}
		assert.Equal(t, c.expected, ids, "%s %s", c.key, c.direction)
	}
	// the input is not modified
	assert.Equal(t, "a", rows[0].MetricID)
}
