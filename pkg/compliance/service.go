package compliance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/appclacks/scorecard/internal/cache"
	"github.com/appclacks/scorecard/pkg/compliance/aggregates"
	er "github.com/mcorbin/corbierror"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	SummarySource = "summary"
	DetailSource  = "detail"
	DefaultTTL    = time.Hour
)

type Store interface {
	ListObservations(ctx context.Context) ([]aggregates.RawObservation, error)
	ListEvidence(ctx context.Context) ([]aggregates.RawEvidence, error)
}

type Service struct {
	logger  *slog.Logger
	store   Store
	tracer  trace.Tracer
	summary *cache.Cache[[]aggregates.ObservationRecord]
	detail  *cache.Cache[[]aggregates.EvidenceRecord]
}

func New(logger *slog.Logger, store Store, registry *prometheus.Registry, ttl time.Duration) (*Service, error) {
	metrics, err := cache.NewMetrics(registry)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Service{
		logger: logger,
		store:  store,
		tracer: otel.Tracer("github.com/appclacks/scorecard/pkg/compliance"),
	}
	s.summary = cache.New[[]aggregates.ObservationRecord](logger, ttl, s.loadObservations, metrics)
	s.detail = cache.New[[]aggregates.EvidenceRecord](logger, ttl, s.loadEvidence, metrics)
	return s, nil
}

func (s *Service) loadObservations(ctx context.Context, source string) ([]aggregates.ObservationRecord, error) {
	raw, err := s.store.ListObservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: fail to load %s records: %w", ErrSourceUnavailable, source, err)
	}
	records, dropped := ParseObservations(raw)
	if dropped > 0 {
		s.logger.Warn(fmt.Sprintf("%d %s records dropped: missing metric_id or invalid datestamp", dropped, source))
	}
	s.logger.Info(fmt.Sprintf("loaded %d %s records", len(records), source))
	return records, nil
}

func (s *Service) loadEvidence(ctx context.Context, source string) ([]aggregates.EvidenceRecord, error) {
	raw, err := s.store.ListEvidence(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: fail to load %s records: %w", ErrSourceUnavailable, source, err)
	}
	records, dropped := ParseEvidence(raw)
	if dropped > 0 {
		s.logger.Warn(fmt.Sprintf("%d %s records dropped: missing metric_id or invalid datestamp", dropped, source))
	}
	s.logger.Info(fmt.Sprintf("loaded %d %s records", len(records), source))
	return records, nil
}

func (s *Service) Observations(ctx context.Context) ([]aggregates.ObservationRecord, error) {
	return s.summary.Get(ctx, SummarySource)
}

func (s *Service) Evidence(ctx context.Context) ([]aggregates.EvidenceRecord, error) {
	return s.detail.Get(ctx, DetailSource)
}

func (s *Service) span(ctx context.Context, name string, filters aggregates.FilterSet) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("filter.business_unit", filters.BusinessUnit),
		attribute.String("filter.team", filters.Team),
		attribute.String("filter.location", filters.Location),
	))
}

func (s *Service) FilterChoices(ctx context.Context) (map[aggregates.Dimension][]string, error) {
	records, err := s.Observations(ctx)
	if err != nil {
		return nil, err
	}
	return FilterChoices(records), nil
}

func (s *Service) OverviewTrend(ctx context.Context, filters aggregates.FilterSet) (aggregates.Trend, error) {
	ctx, span := s.span(ctx, "overview-trend", filters)
	defer span.End()
	records, err := s.Observations(ctx)
	if err != nil {
		return aggregates.Trend{}, err
	}
	points, ok := WeightedTrend(records, filters)
	if !ok {
		return aggregates.Trend{Points: []aggregates.Point{}, NoData: true}, nil
	}
	return aggregates.Trend{
		Points: points,
		Stats:  Stats(points),
	}, nil
}

func (s *Service) LatestOverview(ctx context.Context, filters aggregates.FilterSet) (aggregates.Overview, error) {
	ctx, span := s.span(ctx, "latest-overview", filters)
	defer span.End()
	records, err := s.Observations(ctx)
	if err != nil {
		return aggregates.Overview{}, err
	}
	scores, ok := LatestOverallScores(records, filters)
	if !ok {
		return aggregates.Overview{NoData: true}, nil
	}
	return aggregates.Overview{
		Scores: scores,
		Status: Classify(scores.OverallScore, scores.AverageSLO, scores.AverageSLOMin),
	}, nil
}

func (s *Service) Scorecard(ctx context.Context, filters aggregates.FilterSet, key aggregates.ScorecardSortKey, direction aggregates.SortDirection) (aggregates.Scorecard, error) {
	ctx, span := s.span(ctx, "scorecard", filters)
	defer span.End()
	records, err := s.Observations(ctx)
	if err != nil {
		return aggregates.Scorecard{}, err
	}
	return BuildScorecard(records, filters, key, direction)
}

// MetricDetail returns the current scorecard row of a metric.
func (s *Service) MetricDetail(ctx context.Context, filters aggregates.FilterSet, metricID string) (*aggregates.ScorecardRow, error) {
	ctx, span := s.span(ctx, "metric-detail", filters)
	defer span.End()
	span.SetAttributes(attribute.String("metric.id", metricID))
	records, err := s.Observations(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range CurrentScores(records, filters) {
		if row.MetricID == metricID {
			return &row, nil
		}
	}
	return nil, er.Newf("metric %s not found", er.NotFound, true, metricID)
}

func (s *Service) MetricHistory(ctx context.Context, filters aggregates.FilterSet, metricID string) (aggregates.Trend, error) {
	ctx, span := s.span(ctx, "metric-history", filters)
	defer span.End()
	span.SetAttributes(attribute.String("metric.id", metricID))
	records, err := s.Observations(ctx)
	if err != nil {
		return aggregates.Trend{}, err
	}
	points, ok := MetricHistory(records, filters, metricID)
	if !ok {
		return aggregates.Trend{Points: []aggregates.Point{}, NoData: true}, nil
	}
	return aggregates.Trend{
		Points: points,
		Stats:  Stats(points),
	}, nil
}

func (s *Service) EvidencePage(ctx context.Context, query aggregates.EvidenceQuery) (aggregates.EvidencePage, error) {
	ctx, span := s.span(ctx, "evidence", query.Filters)
	defer span.End()
	span.SetAttributes(
		attribute.String("metric.id", query.MetricID),
		attribute.Int("page.number", query.PageNumber),
		attribute.Int("page.size", query.PageSize))
	records, err := s.Evidence(ctx)
	if err != nil {
		return aggregates.EvidencePage{}, err
	}
	return QueryEvidence(records, query)
}

// Invalidate forces the next queries to reload the records from the store.
func (s *Service) Invalidate() {
	s.summary.Invalidate()
	s.detail.Invalidate()
}

func (s *Service) CacheStats() []cache.Stat {
	return append(s.summary.Stats(), s.detail.Stats()...)
}
