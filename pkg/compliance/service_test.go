package compliance_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	mocks "github.com/appclacks/scorecard/mocks/github.com/appclacks/scorecard/pkg/compliance"
	"github.com/appclacks/scorecard/pkg/compliance"
	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
	er "github.com/mcorbin/corbierror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func rawObservation(metricID string, title string, datestamp string, weight float64, total float64, totalOK float64) aggregates.RawObservation {
	return aggregates.RawObservation{
		MetricID:     str(metricID),
		Title:        str(title),
		Datestamp:    str(datestamp),
		BusinessUnit: str("retail"),
		Team:         str("sre"),
		Location:     str("paris"),
		Weight:       num(weight),
		Total:        num(total),
		TotalOK:      num(totalOK),
		SLO:          num(0.9),
		SLOMin:       num(0.7),
	}
}

func serviceObservations() []aggregates.RawObservation {
	return []aggregates.RawObservation{
		rawObservation("m1", "Patched hosts", "2024-01-01", 1, 10, 6),
		rawObservation("m1", "Patched hosts", "2024-01-02", 1, 10, 9),
		rawObservation("m2", "Encrypted disks", "2024-01-02", 3, 10, 5),
		{Title: str("no metric")},
	}
}

func newService(t *testing.T, store compliance.Store) *compliance.Service {
	t.Helper()
	service, err := compliance.New(slog.Default(), store, prometheus.NewRegistry(), compliance.DefaultTTL)
	assert.NoError(t, err)
	return service
}

func TestServiceCachesRecords(t *testing.T) {
	store := new(mocks.MockStore)
	store.On("ListObservations", mock.Anything).Return(serviceObservations(), nil)
	service := newService(t, store)
	ctx := context.Background()

	trend, err := service.OverviewTrend(ctx, aggregates.FilterSet{})
	assert.NoError(t, err)
	assert.False(t, trend.NoData)
	assert.Len(t, trend.Points, 2)

	overview, err := service.LatestOverview(ctx, aggregates.FilterSet{})
	assert.NoError(t, err)
	// (0.9 * 1 + 0.5 * 3) / 4
	assert.InDelta(t, 0.6, overview.Scores.OverallScore, 0.0001)
	assert.Equal(t, aggregates.StatusCritical, overview.Status)

	scorecard, err := service.Scorecard(ctx, aggregates.FilterSet{}, aggregates.SortByTitle, aggregates.Ascending)
	assert.NoError(t, err)
	assert.Len(t, scorecard.Rows, 2)
	assert.Equal(t, "Encrypted disks", scorecard.Rows[0].Title)
	assert.Equal(t, aggregates.TrendImproving, scorecard.Rows[1].Trend)

	store.AssertNumberOfCalls(t, "ListObservations", 1)

	stats := service.CacheStats()
	assert.Len(t, stats, 1)
	assert.Equal(t, compliance.SummarySource, stats[0].Key)
	assert.False(t, stats[0].Expired)

	service.Invalidate()
	assert.Empty(t, service.CacheStats())
	_, err = service.FilterChoices(ctx)
	assert.NoError(t, err)
	store.AssertNumberOfCalls(t, "ListObservations", 2)
}

func TestServiceSourceUnavailable(t *testing.T) {
	store := new(mocks.MockStore)
	call := store.On("ListObservations", mock.Anything).Return(nil, errors.New("connection refused"))
	store.On("ListEvidence", mock.Anything).Return(nil, errors.New("connection refused"))
	service := newService(t, store)
	ctx := context.Background()

	_, err := service.Scorecard(ctx, aggregates.FilterSet{}, aggregates.SortByTitle, aggregates.Ascending)
	assert.ErrorIs(t, err, compliance.ErrSourceUnavailable)
	_, err = service.EvidencePage(ctx, aggregates.NewEvidenceQuery("m1", aggregates.FilterSet{}))
	assert.ErrorIs(t, err, compliance.ErrSourceUnavailable)

	// failures are not cached
	call.Unset()
	store.On("ListObservations", mock.Anything).Return(serviceObservations(), nil)
	choices, err := service.FilterChoices(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"retail"}, choices[aggregates.BusinessUnit])
}

func TestServiceMetric(t *testing.T) {
	store := new(mocks.MockStore)
	store.On("ListObservations", mock.Anything).Return(serviceObservations(), nil)
	service := newService(t, store)
	ctx := context.Background()

	row, err := service.MetricDetail(ctx, aggregates.FilterSet{}, "m1")
	assert.NoError(t, err)
	assert.Equal(t, "Patched hosts", row.Title)
	assert.InDelta(t, 0.9, row.CurrentScore, 0.0001)
	assert.Equal(t, aggregates.StatusOK, row.Status)

	_, err = service.MetricDetail(ctx, aggregates.FilterSet{}, "m3")
	var corbiErr *er.Error
	assert.ErrorAs(t, err, &corbiErr)
	assert.Equal(t, er.NotFound, corbiErr.Type)

	history, err := service.MetricHistory(ctx, aggregates.FilterSet{}, "m1")
	assert.NoError(t, err)
	assert.Len(t, history.Points, 2)
	assert.InDelta(t, 0.75, history.Stats.AverageScore, 0.0001)

	history, err = service.MetricHistory(ctx, aggregates.FilterSet{Team: "data"}, "m1")
	assert.NoError(t, err)
	assert.True(t, history.NoData)
	assert.Empty(t, history.Points)
}

func TestServiceEvidence(t *testing.T) {
	store := new(mocks.MockStore)
	store.On("ListEvidence", mock.Anything).Return([]aggregates.RawEvidence{
		{MetricID: str("m1"), Resource: str("host-1"), Compliance: num(1)},
		{MetricID: str("m1"), Resource: str("host-2"), Compliance: num(0)},
		{MetricID: str("m2"), Resource: str("host-3"), Compliance: num(0.5)},
	}, nil)
	service := newService(t, store)

	page, err := service.EvidencePage(context.Background(), aggregates.NewEvidenceQuery("m1", aggregates.FilterSet{}))
	assert.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, "host-2", page.Rows[0].Resource)
	assert.Equal(t, "Non-Compliant", page.Rows[0].ComplianceLabel)
	assert.Equal(t, "Compliant", page.Rows[1].ComplianceLabel)
	store.AssertNotCalled(t, "ListObservations", mock.Anything)
}
