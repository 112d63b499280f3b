package handlers

import (
	"context"

	"github.com/appclacks/scorecard/internal/cache"
	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
)

type ComplianceService interface {
	FilterChoices(ctx context.Context) (map[aggregates.Dimension][]string, error)
	OverviewTrend(ctx context.Context, filters aggregates.FilterSet) (aggregates.Trend, error)
	LatestOverview(ctx context.Context, filters aggregates.FilterSet) (aggregates.Overview, error)
	Scorecard(ctx context.Context, filters aggregates.FilterSet, key aggregates.ScorecardSortKey, direction aggregates.SortDirection) (aggregates.Scorecard, error)
	MetricDetail(ctx context.Context, filters aggregates.FilterSet, metricID string) (*aggregates.ScorecardRow, error)
	MetricHistory(ctx context.Context, filters aggregates.FilterSet, metricID string) (aggregates.Trend, error)
	EvidencePage(ctx context.Context, query aggregates.EvidenceQuery) (aggregates.EvidencePage, error)
	Invalidate()
	CacheStats() []cache.Stat
}

type Builder struct {
	compliance ComplianceService
}

func NewBuilder(compliance ComplianceService) *Builder {
	return &Builder{
		compliance: compliance,
	}
}
